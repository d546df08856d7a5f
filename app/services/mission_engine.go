package services

import (
	"database/sql"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/wellnestapp/wellnest-backend/app/models"
	"github.com/wellnestapp/wellnest-backend/app/queries"
)

// MissionEngine owns the user-mission state machine:
//
//	available (no row) -> active -> completed | cancelled
//
// Terminal states never transition again and points are credited exactly
// once, at the moment a row flips to completed. All guards are
// check-and-set UPDATEs so two racing callers cannot both win a
// transition.
type MissionEngine struct {
	DB *sql.DB
	// Events receives a completion event per finished mission when set.
	// Sends never block; a full channel drops the event.
	Events chan<- models.MissionEvent
}

// ProgressResult is the outcome of an UpdateProgress call.
type ProgressResult struct {
	UserMission   models.UserMission
	PointsAwarded int
}

// ComputeProgress returns the completion percentage for a current value
// against a target, rounded and capped at 100.
func ComputeProgress(current, target float64) int {
	if target <= 0 || current <= 0 {
		return 0
	}
	p := int(math.Round(current / target * 100))
	if p > 100 {
		p = 100
	}
	return p
}

// Accept creates an active user mission for the given calendar day. The
// mission must exist in the catalog and be active; at most one active
// acceptance per (user, mission, day) can exist.
func (e *MissionEngine) Accept(userID, missionID uuid.UUID, missionDate time.Time) (models.UserMission, error) {
	um := models.UserMission{}

	mq := queries.MissionsQueries{DB: e.DB}
	mission, err := mq.GetMissionByID(missionID)
	if err != nil {
		if err == sql.ErrNoRows {
			return um, ErrMissionNotFound
		}
		return um, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if !mission.IsActive {
		return um, ErrMissionInactive
	}

	day := time.Date(missionDate.Year(), missionDate.Month(), missionDate.Day(), 0, 0, 0, 0, time.UTC)
	now := time.Now()
	um = models.UserMission{
		ID:           uuid.New(),
		UserID:       userID,
		MissionID:    missionID,
		Status:       models.MissionStatusActive,
		CurrentValue: 0,
		Progress:     0,
		MissionDate:  day,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	umq := queries.UserMissionsQueries{DB: e.DB}
	inserted, err := umq.InsertIfAbsent(&um)
	if err != nil {
		return um, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if !inserted {
		return um, ErrAlreadyActive
	}

	log.Printf("event=mission_accepted user=%s mission=%s date=%s", userID, missionID, day.Format("2006-01-02"))
	return um, nil
}

// UpdateProgress advances an active user mission to newValue. The value
// is monotonic: decreases and negatives are rejected before any write.
// Reaching the target (or an explicit completed request) flips the row to
// completed and credits the mission's points in the same transaction.
// Calling this on an already-completed row is a no-op that returns the
// completed state; points are never credited twice.
func (e *MissionEngine) UpdateProgress(id uuid.UUID, newValue float64, requestedStatus string) (ProgressResult, error) {
	res := ProgressResult{}

	umq := queries.UserMissionsQueries{DB: e.DB}
	d, err := umq.GetDetailByID(id)
	if err != nil {
		if err == sql.ErrNoRows {
			return res, ErrUserMissionNotFound
		}
		return res, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	switch d.Status {
	case models.MissionStatusCompleted:
		res.UserMission = d.UserMission
		return res, nil
	case models.MissionStatusCancelled:
		return res, ErrAlreadyCancelled
	}

	if newValue < 0 {
		return res, fmt.Errorf("%w: current_value must not be negative", ErrValidation)
	}
	if newValue < d.CurrentValue {
		return res, fmt.Errorf("%w: current_value must not decrease (stored %.2f)", ErrValidation, d.CurrentValue)
	}

	progress := ComputeProgress(newValue, d.TargetValue)
	completing := newValue >= d.TargetValue || requestedStatus == models.MissionStatusCompleted

	if completing {
		credited, err := umq.CompleteAndCredit(d.ID, d.UserID, newValue, progress, d.Points, "mission completed: "+d.MissionTitle)
		if err != nil {
			return res, fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		if !credited {
			return e.resolveLostRace(&umq, id)
		}

		d.Status = models.MissionStatusCompleted
		d.CurrentValue = newValue
		d.Progress = progress
		res.UserMission = d.UserMission
		res.PointsAwarded = d.Points

		if e.Events != nil {
			select {
			case e.Events <- models.MissionEvent{
				UserID:        d.UserID,
				UserMissionID: d.ID,
				MissionTitle:  d.MissionTitle,
				PointsAwarded: d.Points,
			}:
			default:
				log.Printf("event=mission_event_dropped user_mission=%s", d.ID)
			}
		}
		log.Printf("event=mission_completed user=%s user_mission=%s points=%d", d.UserID, d.ID, d.Points)
		return res, nil
	}

	rows, err := umq.UpdateProgressActive(d.ID, newValue, progress)
	if err != nil {
		return res, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if rows == 0 {
		return e.resolveLostRace(&umq, id)
	}

	d.CurrentValue = newValue
	d.Progress = progress
	res.UserMission = d.UserMission
	return res, nil
}

// resolveLostRace handles a check-and-set update that matched no row: the
// record moved to a terminal state, was reset away, or a concurrent
// writer advanced current_value past ours between our read and our
// write. In the last case the stored state is simply further along, so
// it is returned as the result.
func (e *MissionEngine) resolveLostRace(umq *queries.UserMissionsQueries, id uuid.UUID) (ProgressResult, error) {
	res := ProgressResult{}
	status, err := umq.GetStatus(id)
	if err != nil {
		if err == sql.ErrNoRows {
			return res, ErrUserMissionNotFound
		}
		return res, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if status == models.MissionStatusCancelled {
		return res, ErrAlreadyCancelled
	}
	// completed or advanced by a concurrent caller: report the stored
	// state, credit nothing
	d, err := umq.GetDetailByID(id)
	if err != nil {
		return res, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	res.UserMission = d.UserMission
	return res, nil
}

// Cancel moves an active user mission to cancelled.
func (e *MissionEngine) Cancel(id uuid.UUID) (models.UserMission, error) {
	um := models.UserMission{}

	umq := queries.UserMissionsQueries{DB: e.DB}
	rows, err := umq.CancelActive(id)
	if err != nil {
		return um, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if rows == 0 {
		status, err := umq.GetStatus(id)
		if err != nil {
			if err == sql.ErrNoRows {
				return um, ErrUserMissionNotFound
			}
			return um, fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		if status == models.MissionStatusCompleted {
			return um, ErrAlreadyCompleted
		}
		return um, ErrAlreadyCancelled
	}

	d, err := umq.GetDetailByID(id)
	if err != nil {
		return um, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	log.Printf("event=mission_cancelled user=%s user_mission=%s", d.UserID, d.ID)
	return d.UserMission, nil
}

// Stats aggregates a user's mission counters, optionally filtered to a
// single mission_date. Read-only.
func (e *MissionEngine) Stats(userID uuid.UUID, date *time.Time) (models.MissionStats, error) {
	umq := queries.UserMissionsQueries{DB: e.DB}
	stats, err := umq.Stats(userID, date)
	if err != nil {
		return stats, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	finishStats(&stats)
	return stats, nil
}

// Reset bulk-deletes a user's non-terminal missions (optionally one
// mission) so they can be re-accepted. Destructive; admin only. Returns
// the number of rows removed.
func (e *MissionEngine) Reset(userID uuid.UUID, missionID *uuid.UUID) (int64, error) {
	umq := queries.UserMissionsQueries{DB: e.DB}
	rows, err := umq.DeleteActive(userID, missionID)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	log.Printf("event=missions_reset user=%s rows=%d", userID, rows)
	return rows, nil
}

func finishStats(s *models.MissionStats) {
	if s.TotalMissions > 0 {
		s.CompletionRate = math.Round(float64(s.CompletedMissions)/float64(s.TotalMissions)*100*100) / 100
	}
}
