package services

import (
	"database/sql"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wellnestapp/wellnest-backend/app/models"
	"github.com/wellnestapp/wellnest-backend/app/queries"
	"github.com/wellnestapp/wellnest-backend/pkg/database"
)

// These tests exercise the state machine against a real Postgres. Point
// TEST_DATABASE_URL at a disposable database; they are skipped otherwise.
// All rows are keyed by fresh UUIDs so repeated runs do not collide.

func setupEngineTest(t *testing.T) (*MissionEngine, uuid.UUID, uuid.UUID, func()) {
	t.Helper()
	databaseURL := os.Getenv("TEST_DATABASE_URL")
	if databaseURL == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := sql.Open("postgres", databaseURL)
	require.NoError(t, err)
	require.NoError(t, db.Ping())
	require.NoError(t, database.Migrate(db))

	userID := uuid.New()
	_, err = db.Exec(
		`INSERT INTO users (uid, username, user_role, email, password_hash, verified, created_at, updated_at) VALUES ($1, $2, 'user', $3, 'x', true, now(), now())`,
		userID, "tester", fmt.Sprintf("%s@test.local", userID),
	)
	require.NoError(t, err)

	missionID := uuid.New()
	_, err = db.Exec(
		`INSERT INTO missions (id, title, category, points, target_value, target_unit, duration_days, is_active, created_at) VALUES ($1, 'Walk 10k steps', 'fitness', 50, 10000, 'steps', 1, true, now())`,
		missionID,
	)
	require.NoError(t, err)

	engine := &MissionEngine{DB: db}
	cleanup := func() {
		_, _ = db.Exec(`DELETE FROM point_ledger WHERE user_id = $1`, userID)
		_, _ = db.Exec(`DELETE FROM user_missions WHERE user_id = $1`, userID)
		_, _ = db.Exec(`DELETE FROM missions WHERE id = $1`, missionID)
		_, _ = db.Exec(`DELETE FROM users WHERE uid = $1`, userID)
		db.Close()
	}
	return engine, userID, missionID, cleanup
}

func TestAcceptTwiceSameDayConflicts(t *testing.T) {
	engine, userID, missionID, cleanup := setupEngineTest(t)
	defer cleanup()

	day := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	um, err := engine.Accept(userID, missionID, day)
	require.NoError(t, err)
	assert.Equal(t, models.MissionStatusActive, um.Status)
	assert.Equal(t, 0, um.Progress)

	_, err = engine.Accept(userID, missionID, day)
	assert.ErrorIs(t, err, ErrAlreadyActive)

	// a different day is a separate acceptance
	_, err = engine.Accept(userID, missionID, day.Add(24*time.Hour))
	assert.NoError(t, err)
}

func TestCompleteCreditsPointsOnce(t *testing.T) {
	engine, userID, missionID, cleanup := setupEngineTest(t)
	defer cleanup()

	um, err := engine.Accept(userID, missionID, time.Now().UTC())
	require.NoError(t, err)

	res, err := engine.UpdateProgress(um.ID, 10000, "")
	require.NoError(t, err)
	assert.Equal(t, models.MissionStatusCompleted, res.UserMission.Status)
	assert.Equal(t, 100, res.UserMission.Progress)
	assert.Equal(t, 50, res.PointsAwarded)

	// a follow-up update on the completed record is a no-op
	res2, err := engine.UpdateProgress(um.ID, 12000, "")
	require.NoError(t, err)
	assert.Equal(t, models.MissionStatusCompleted, res2.UserMission.Status)
	assert.Equal(t, 0, res2.PointsAwarded)

	pq := queries.PointsQueries{DB: engine.DB}
	balance, err := pq.GetBalance(userID)
	require.NoError(t, err)
	assert.Equal(t, 50, balance)
}

func TestUpdateProgressRejectsDecrease(t *testing.T) {
	engine, userID, missionID, cleanup := setupEngineTest(t)
	defer cleanup()

	um, err := engine.Accept(userID, missionID, time.Now().UTC())
	require.NoError(t, err)

	res, err := engine.UpdateProgress(um.ID, 4000, "")
	require.NoError(t, err)
	assert.Equal(t, 40, res.UserMission.Progress)

	_, err = engine.UpdateProgress(um.ID, 3000, "")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = engine.UpdateProgress(um.ID, -1, "")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestExplicitCompletionBeforeTarget(t *testing.T) {
	engine, userID, missionID, cleanup := setupEngineTest(t)
	defer cleanup()

	um, err := engine.Accept(userID, missionID, time.Now().UTC())
	require.NoError(t, err)

	res, err := engine.UpdateProgress(um.ID, 8000, models.MissionStatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, models.MissionStatusCompleted, res.UserMission.Status)
	assert.Equal(t, 80, res.UserMission.Progress)
	assert.Equal(t, 50, res.PointsAwarded)
}

func TestCancelIsTerminal(t *testing.T) {
	engine, userID, missionID, cleanup := setupEngineTest(t)
	defer cleanup()

	um, err := engine.Accept(userID, missionID, time.Now().UTC())
	require.NoError(t, err)

	cancelled, err := engine.Cancel(um.ID)
	require.NoError(t, err)
	assert.Equal(t, models.MissionStatusCancelled, cancelled.Status)

	_, err = engine.Cancel(um.ID)
	assert.ErrorIs(t, err, ErrAlreadyCancelled)

	_, err = engine.UpdateProgress(um.ID, 5000, "")
	assert.ErrorIs(t, err, ErrAlreadyCancelled)
}

func TestResetKeepsTerminalHistory(t *testing.T) {
	engine, userID, missionID, cleanup := setupEngineTest(t)
	defer cleanup()

	day1 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	day2 := day1.Add(24 * time.Hour)

	um1, err := engine.Accept(userID, missionID, day1)
	require.NoError(t, err)
	_, err = engine.UpdateProgress(um1.ID, 10000, "")
	require.NoError(t, err)

	_, err = engine.Accept(userID, missionID, day2)
	require.NoError(t, err)

	deleted, err := engine.Reset(userID, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	// re-acceptance works after reset even though completed history remains
	_, err = engine.Accept(userID, missionID, day2)
	assert.NoError(t, err)

	stats, err := engine.Stats(userID, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.CompletedMissions)
	assert.Equal(t, 1, stats.ActiveMissions)
	assert.Equal(t, 50, stats.TotalPointsEarned)
}

func TestConcurrentAcceptsOneWinner(t *testing.T) {
	engine, userID, missionID, cleanup := setupEngineTest(t)
	defer cleanup()

	day := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	const workers = 8

	var wg sync.WaitGroup
	errs := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = engine.Accept(userID, missionID, day)
		}(i)
	}
	wg.Wait()

	winners := 0
	for _, err := range errs {
		if err == nil {
			winners++
		} else {
			assert.ErrorIs(t, err, ErrAlreadyActive)
		}
	}
	assert.Equal(t, 1, winners)
}

func TestConcurrentCompletionsCreditOnce(t *testing.T) {
	engine, userID, missionID, cleanup := setupEngineTest(t)
	defer cleanup()

	um, err := engine.Accept(userID, missionID, time.Now().UTC())
	require.NoError(t, err)

	const workers = 8
	var wg sync.WaitGroup
	awarded := make([]int, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			res, err := engine.UpdateProgress(um.ID, 10000, "")
			if err == nil {
				awarded[i] = res.PointsAwarded
			}
		}(i)
	}
	wg.Wait()

	total := 0
	for _, a := range awarded {
		total += a
	}
	assert.Equal(t, 50, total)

	pq := queries.PointsQueries{DB: engine.DB}
	balance, err := pq.GetBalance(userID)
	require.NoError(t, err)
	assert.Equal(t, 50, balance)
}

func TestProgressWriteGuardRejectsRegression(t *testing.T) {
	engine, userID, missionID, cleanup := setupEngineTest(t)
	defer cleanup()

	um, err := engine.Accept(userID, missionID, time.Now().UTC())
	require.NoError(t, err)
	_, err = engine.UpdateProgress(um.ID, 4000, "")
	require.NoError(t, err)

	// a stale writer that read an older value must match no row
	umq := queries.UserMissionsQueries{DB: engine.DB}
	rows, err := umq.UpdateProgressActive(um.ID, 3000, 30)
	require.NoError(t, err)
	assert.Equal(t, int64(0), rows)

	d, err := umq.GetDetailByID(um.ID)
	require.NoError(t, err)
	assert.Equal(t, 4000.0, d.CurrentValue)
}

func TestStatsFilteredByDate(t *testing.T) {
	engine, userID, missionID, cleanup := setupEngineTest(t)
	defer cleanup()

	day1 := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	day2 := day1.Add(24 * time.Hour)

	_, err := engine.Accept(userID, missionID, day1)
	require.NoError(t, err)
	_, err = engine.Accept(userID, missionID, day2)
	require.NoError(t, err)

	stats, err := engine.Stats(userID, &day1)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalMissions)
	assert.Equal(t, 1, stats.ActiveMissions)
	assert.Equal(t, 0.0, stats.CompletionRate)
}
