package queries

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/wellnestapp/wellnest-backend/app/models"
)

type UserMissionsQueries struct {
	DB *sql.DB
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}

// InsertIfAbsent inserts a new active user mission unless an active row
// for the same (user_id, mission_id, mission_date) already exists. Returns
// false when the row was not inserted because of such a conflict. The
// WHERE NOT EXISTS guard plus the partial unique index make concurrent
// accepts resolve to exactly one winner.
func (q *UserMissionsQueries) InsertIfAbsent(um *models.UserMission) (bool, error) {
	query := `INSERT INTO user_missions (id, user_id, mission_id, status, current_value, progress, mission_date, created_at, updated_at)
		SELECT $1, $2, $3, $4, $5, $6, $7, $8, $9
		WHERE NOT EXISTS (
			SELECT 1 FROM user_missions
			WHERE user_id = $2 AND mission_id = $3 AND mission_date = $7 AND status = 'active'
		)`
	res, err := q.DB.Exec(query, um.ID, um.UserID, um.MissionID, um.Status, um.CurrentValue, um.Progress, um.MissionDate, um.CreatedAt, um.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return false, nil
		}
		return false, errors.New("unable to insert user mission, DB error")
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows == 1, nil
}

// GetDetailByID returns a user mission joined with the catalog fields the
// engine needs (target, points, title).
func (q *UserMissionsQueries) GetDetailByID(id uuid.UUID) (models.UserMissionDetail, error) {
	d := models.UserMissionDetail{}
	query := `SELECT um.id, um.user_id, um.mission_id, um.status, um.current_value, um.progress, um.mission_date, um.created_at, um.updated_at,
			m.title, m.target_value, m.target_unit, m.points
		FROM user_missions um JOIN missions m ON um.mission_id = m.id
		WHERE um.id = $1`
	err := q.DB.QueryRow(query, id).Scan(
		&d.ID,
		&d.UserID,
		&d.MissionID,
		&d.Status,
		&d.CurrentValue,
		&d.Progress,
		&d.MissionDate,
		&d.CreatedAt,
		&d.UpdatedAt,
		&d.MissionTitle,
		&d.TargetValue,
		&d.TargetUnit,
		&d.Points,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return d, sql.ErrNoRows
		}
		return d, errors.New("unable to query user mission")
	}
	return d, nil
}

// UpdateProgressActive advances current_value/progress on a row that is
// still active and has not moved past the new value; both predicates are
// the check-and-set guard, so racing writers can neither revive a
// terminal row nor regress current_value. Returns rows affected.
func (q *UserMissionsQueries) UpdateProgressActive(id uuid.UUID, value float64, progress int) (int64, error) {
	query := `UPDATE user_missions SET current_value = $1, progress = $2, updated_at = now() WHERE id = $3 AND status = 'active' AND current_value <= $1`
	res, err := q.DB.Exec(query, value, progress, id)
	if err != nil {
		return 0, errors.New("unable to update user mission, DB error")
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return rows, nil
}

// CompleteAndCredit transitions an active row to completed and credits the
// mission's points in the same transaction. The status predicate on the
// UPDATE makes the transition atomic: only the call that flips the row
// writes a ledger entry, so points are credited exactly once no matter how
// many callers race. Returns false when the row was no longer active.
func (q *UserMissionsQueries) CompleteAndCredit(id, userID uuid.UUID, value float64, progress int, points int, reason string) (bool, error) {
	tx, err := q.DB.Begin()
	if err != nil {
		return false, errors.New("unable to start transaction")
	}

	res, err := tx.Exec(
		`UPDATE user_missions SET current_value = $1, progress = $2, status = 'completed', updated_at = now() WHERE id = $3 AND status = 'active'`,
		value, progress, id,
	)
	if err != nil {
		tx.Rollback()
		return false, errors.New("unable to complete user mission, DB error")
	}
	rows, err := res.RowsAffected()
	if err != nil {
		tx.Rollback()
		return false, err
	}
	if rows == 0 {
		tx.Rollback()
		return false, nil
	}

	_, err = tx.Exec(
		`INSERT INTO point_ledger (id, user_id, amount, reason, user_mission_id, created_at) VALUES ($1, $2, $3, $4, $5, now())`,
		uuid.New(), userID, points, reason, id,
	)
	if err != nil {
		tx.Rollback()
		return false, errors.New("unable to credit points, DB error")
	}

	if err := tx.Commit(); err != nil {
		return false, errors.New("unable to commit transaction")
	}
	return true, nil
}

// CancelActive marks an active row cancelled; returns rows affected.
func (q *UserMissionsQueries) CancelActive(id uuid.UUID) (int64, error) {
	query := `UPDATE user_missions SET status = 'cancelled', updated_at = now() WHERE id = $1 AND status = 'active'`
	res, err := q.DB.Exec(query, id)
	if err != nil {
		return 0, errors.New("unable to cancel user mission, DB error")
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return rows, nil
}

func (q *UserMissionsQueries) GetStatus(id uuid.UUID) (string, error) {
	var status string
	err := q.DB.QueryRow(`SELECT status FROM user_missions WHERE id = $1`, id).Scan(&status)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", sql.ErrNoRows
		}
		return "", errors.New("unable to query user mission status")
	}
	return status, nil
}

// Stats aggregates a user's mission counters, optionally restricted to a
// single mission_date.
func (q *UserMissionsQueries) Stats(userID uuid.UUID, date *time.Time) (models.MissionStats, error) {
	stats := models.MissionStats{}
	query := `SELECT
			count(*),
			count(*) FILTER (WHERE um.status = 'active'),
			count(*) FILTER (WHERE um.status = 'completed'),
			count(*) FILTER (WHERE um.status = 'cancelled'),
			COALESCE(sum(m.points) FILTER (WHERE um.status = 'completed'), 0)
		FROM user_missions um JOIN missions m ON um.mission_id = m.id
		WHERE um.user_id = $1 AND ($2::date IS NULL OR um.mission_date = $2)`

	var dateArg interface{}
	if date != nil {
		dateArg = *date
	}
	err := q.DB.QueryRow(query, userID, dateArg).Scan(
		&stats.TotalMissions,
		&stats.ActiveMissions,
		&stats.CompletedMissions,
		&stats.CancelledMissions,
		&stats.TotalPointsEarned,
	)
	if err != nil {
		return stats, errors.New("unable to query mission stats")
	}
	return stats, nil
}

// StatsBetween aggregates over mission_date in [from, to).
func (q *UserMissionsQueries) StatsBetween(userID uuid.UUID, from, to time.Time) (models.MissionStats, error) {
	stats := models.MissionStats{}
	query := `SELECT
			count(*),
			count(*) FILTER (WHERE um.status = 'active'),
			count(*) FILTER (WHERE um.status = 'completed'),
			count(*) FILTER (WHERE um.status = 'cancelled'),
			COALESCE(sum(m.points) FILTER (WHERE um.status = 'completed'), 0)
		FROM user_missions um JOIN missions m ON um.mission_id = m.id
		WHERE um.user_id = $1 AND um.mission_date >= $2 AND um.mission_date < $3`
	err := q.DB.QueryRow(query, userID, from, to).Scan(
		&stats.TotalMissions,
		&stats.ActiveMissions,
		&stats.CompletedMissions,
		&stats.CancelledMissions,
		&stats.TotalPointsEarned,
	)
	if err != nil {
		return stats, errors.New("unable to query mission stats")
	}
	return stats, nil
}

// DeleteActive bulk-deletes a user's non-terminal rows, optionally scoped
// to one mission. Completed and cancelled history is never touched.
func (q *UserMissionsQueries) DeleteActive(userID uuid.UUID, missionID *uuid.UUID) (int64, error) {
	query := `DELETE FROM user_missions WHERE user_id = $1 AND status = 'active' AND ($2::uuid IS NULL OR mission_id = $2)`
	var missionArg interface{}
	if missionID != nil {
		missionArg = *missionID
	}
	res, err := q.DB.Exec(query, userID, missionArg)
	if err != nil {
		return 0, errors.New("unable to reset user missions, DB error")
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return rows, nil
}
