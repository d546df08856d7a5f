package queries

import (
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/wellnestapp/wellnest-backend/app/models"
)

type PointsQueries struct {
	DB *sql.DB
}

func (q *PointsQueries) GetBalance(userID uuid.UUID) (int, error) {
	var balance int
	query := `SELECT COALESCE(sum(amount), 0) FROM point_ledger WHERE user_id = $1`
	if err := q.DB.QueryRow(query, userID).Scan(&balance); err != nil {
		return 0, errors.New("unable to query point balance")
	}
	return balance, nil
}

func (q *PointsQueries) GetHistory(userID uuid.UUID, limit int) ([]models.PointEntry, error) {
	entries := []models.PointEntry{}
	query := `SELECT id, user_id, amount, reason, user_mission_id, created_at FROM point_ledger WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2`
	rows, err := q.DB.Query(query, userID, limit)
	if err != nil {
		return entries, errors.New("unable to query point history")
	}
	defer rows.Close()

	for rows.Next() {
		var e models.PointEntry
		var missionID uuid.NullUUID
		if err := rows.Scan(&e.ID, &e.UserID, &e.Amount, &e.Reason, &missionID, &e.CreatedAt); err != nil {
			return entries, errors.New("error scanning point entry row")
		}
		if missionID.Valid {
			id := missionID.UUID
			e.UserMissionID = &id
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return entries, errors.New("error iterating point entry rows")
	}
	return entries, nil
}
