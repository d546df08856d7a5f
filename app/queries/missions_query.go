package queries

import (
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/wellnestapp/wellnest-backend/app/models"
)

type MissionsQueries struct {
	DB *sql.DB
}

const missionColumns = `id, title, description, category, sub_category, points, target_value, target_unit, duration_days, difficulty, mission_type, is_active, created_at`

func scanMission(row interface {
	Scan(dest ...interface{}) error
}, m *models.Mission) error {
	return row.Scan(
		&m.ID,
		&m.Title,
		&m.Description,
		&m.Category,
		&m.SubCategory,
		&m.Points,
		&m.TargetValue,
		&m.TargetUnit,
		&m.DurationDays,
		&m.Difficulty,
		&m.MissionType,
		&m.IsActive,
		&m.CreatedAt,
	)
}

func (q *MissionsQueries) CreateMission(m *models.Mission) error {
	query := `INSERT INTO missions (` + missionColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := q.DB.Exec(query, m.ID, m.Title, m.Description, m.Category, m.SubCategory, m.Points, m.TargetValue, m.TargetUnit, m.DurationDays, m.Difficulty, m.MissionType, m.IsActive, m.CreatedAt)
	if err != nil {
		return errors.New("unable to create mission, DB error")
	}
	return nil
}

func (q *MissionsQueries) GetMissionByID(id uuid.UUID) (models.Mission, error) {
	m := models.Mission{}
	query := `SELECT ` + missionColumns + ` FROM missions WHERE id = $1`
	err := scanMission(q.DB.QueryRow(query, id), &m)
	if err != nil {
		if err == sql.ErrNoRows {
			return m, sql.ErrNoRows
		}
		return m, errors.New("unable to query mission")
	}
	return m, nil
}

// GetMissions lists catalog missions, optionally filtered to active ones
// and/or a category.
func (q *MissionsQueries) GetMissions(activeOnly bool, category string) ([]models.Mission, error) {
	var missions []models.Mission
	query := `SELECT ` + missionColumns + ` FROM missions WHERE ($1 = false OR is_active = true) AND ($2 = '' OR category = $2) ORDER BY created_at DESC`
	rows, err := q.DB.Query(query, activeOnly, category)
	if err != nil {
		return missions, errors.New("unable to query missions")
	}
	defer rows.Close()
	for rows.Next() {
		var m models.Mission
		if err := scanMission(rows, &m); err != nil {
			return missions, err
		}
		missions = append(missions, m)
	}
	if err := rows.Err(); err != nil {
		return missions, errors.New("error iterating mission rows")
	}
	return missions, nil
}

func (q *MissionsQueries) SetMissionActive(id uuid.UUID, active bool) (int64, error) {
	query := `UPDATE missions SET is_active = $1 WHERE id = $2`
	res, err := q.DB.Exec(query, active, id)
	if err != nil {
		return 0, errors.New("unable to update mission, DB error")
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return rows, nil
}
