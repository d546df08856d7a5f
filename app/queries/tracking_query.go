package queries

import (
	"database/sql"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/wellnestapp/wellnest-backend/app/models"
)

type TrackingQueries struct {
	DB *sql.DB
}

// Tracking value columns are text for compatibility with rows written by
// the old mobile clients; new writes always store canonical numeric
// strings.
func numStr(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func nullToStr(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func (q *TrackingQueries) InsertMeal(userID uuid.UUID, req *models.CreateMealRequest) (uuid.UUID, error) {
	id := uuid.New()
	query := `INSERT INTO meals (id, user_id, name, meal_type, calories, protein, carbs, fat, created_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now())`
	_, err := q.DB.Exec(query, id, userID, req.Name, req.MealType, numStr(req.Calories), numStr(req.Protein), numStr(req.Carbs), numStr(req.Fat))
	if err != nil {
		return uuid.Nil, errors.New("unable to insert meal, DB error")
	}
	return id, nil
}

func (q *TrackingQueries) InsertWater(userID uuid.UUID, req *models.CreateWaterRequest) (uuid.UUID, error) {
	id := uuid.New()
	query := `INSERT INTO water_entries (id, user_id, amount_ml, created_at) VALUES ($1, $2, $3, now())`
	_, err := q.DB.Exec(query, id, userID, numStr(req.AmountMl))
	if err != nil {
		return uuid.Nil, errors.New("unable to insert water entry, DB error")
	}
	return id, nil
}

func (q *TrackingQueries) InsertSleep(userID uuid.UUID, req *models.CreateSleepRequest) (uuid.UUID, error) {
	id := uuid.New()
	query := `INSERT INTO sleep_entries (id, user_id, duration_minutes, quality, created_at) VALUES ($1, $2, $3, $4, now())`
	_, err := q.DB.Exec(query, id, userID, numStr(req.DurationMinutes), numStr(req.Quality))
	if err != nil {
		return uuid.Nil, errors.New("unable to insert sleep entry, DB error")
	}
	return id, nil
}

func (q *TrackingQueries) InsertFitness(userID uuid.UUID, req *models.CreateFitnessRequest) (uuid.UUID, error) {
	id := uuid.New()
	query := `INSERT INTO fitness_sessions (id, user_id, activity, duration_minutes, steps, distance_km, calories_burned, created_at) VALUES ($1, $2, $3, $4, $5, $6, $7, now())`
	_, err := q.DB.Exec(query, id, userID, req.Activity, numStr(req.DurationMinutes), numStr(req.Steps), numStr(req.DistanceKm), numStr(req.CaloriesBurned))
	if err != nil {
		return uuid.Nil, errors.New("unable to insert fitness session, DB error")
	}
	return id, nil
}

func (q *TrackingQueries) InsertMood(userID uuid.UUID, req *models.CreateMoodRequest) (uuid.UUID, error) {
	id := uuid.New()
	query := `INSERT INTO mood_entries (id, user_id, score, note, created_at) VALUES ($1, $2, $3, $4, now())`
	_, err := q.DB.Exec(query, id, userID, numStr(req.Score), req.Note)
	if err != nil {
		return uuid.Nil, errors.New("unable to insert mood entry, DB error")
	}
	return id, nil
}

// MealRows returns raw meal rows with created_at in [from, to).
func (q *TrackingQueries) MealRows(userID uuid.UUID, from, to time.Time) ([]models.MealRow, error) {
	var out []models.MealRow
	query := `SELECT id, name, meal_type, calories, protein, carbs, fat, created_at FROM meals WHERE user_id = $1 AND created_at >= $2 AND created_at < $3 ORDER BY created_at`
	rows, err := q.DB.Query(query, userID, from, to)
	if err != nil {
		return out, errors.New("unable to query meals")
	}
	defer rows.Close()
	for rows.Next() {
		var r models.MealRow
		var cal, prot, carbs, fat sql.NullString
		if err := rows.Scan(&r.ID, &r.Name, &r.MealType, &cal, &prot, &carbs, &fat, &r.CreatedAt); err != nil {
			return out, errors.New("error scanning meal row")
		}
		r.Calories, r.Protein, r.Carbs, r.Fat = nullToStr(cal), nullToStr(prot), nullToStr(carbs), nullToStr(fat)
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return out, errors.New("error iterating meal rows")
	}
	return out, nil
}

func (q *TrackingQueries) WaterRows(userID uuid.UUID, from, to time.Time) ([]models.WaterRow, error) {
	var out []models.WaterRow
	query := `SELECT id, amount_ml, created_at FROM water_entries WHERE user_id = $1 AND created_at >= $2 AND created_at < $3 ORDER BY created_at`
	rows, err := q.DB.Query(query, userID, from, to)
	if err != nil {
		return out, errors.New("unable to query water entries")
	}
	defer rows.Close()
	for rows.Next() {
		var r models.WaterRow
		var amount sql.NullString
		if err := rows.Scan(&r.ID, &amount, &r.CreatedAt); err != nil {
			return out, errors.New("error scanning water row")
		}
		r.AmountMl = nullToStr(amount)
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return out, errors.New("error iterating water rows")
	}
	return out, nil
}

func (q *TrackingQueries) SleepRows(userID uuid.UUID, from, to time.Time) ([]models.SleepRow, error) {
	var out []models.SleepRow
	query := `SELECT id, duration_minutes, quality, created_at FROM sleep_entries WHERE user_id = $1 AND created_at >= $2 AND created_at < $3 ORDER BY created_at`
	rows, err := q.DB.Query(query, userID, from, to)
	if err != nil {
		return out, errors.New("unable to query sleep entries")
	}
	defer rows.Close()
	for rows.Next() {
		var r models.SleepRow
		var duration, quality sql.NullString
		if err := rows.Scan(&r.ID, &duration, &quality, &r.CreatedAt); err != nil {
			return out, errors.New("error scanning sleep row")
		}
		r.DurationMinutes, r.Quality = nullToStr(duration), nullToStr(quality)
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return out, errors.New("error iterating sleep rows")
	}
	return out, nil
}

func (q *TrackingQueries) FitnessRows(userID uuid.UUID, from, to time.Time) ([]models.FitnessRow, error) {
	var out []models.FitnessRow
	query := `SELECT id, activity, duration_minutes, steps, distance_km, calories_burned, created_at FROM fitness_sessions WHERE user_id = $1 AND created_at >= $2 AND created_at < $3 ORDER BY created_at`
	rows, err := q.DB.Query(query, userID, from, to)
	if err != nil {
		return out, errors.New("unable to query fitness sessions")
	}
	defer rows.Close()
	for rows.Next() {
		var r models.FitnessRow
		var duration, steps, distance, calories sql.NullString
		if err := rows.Scan(&r.ID, &r.Activity, &duration, &steps, &distance, &calories, &r.CreatedAt); err != nil {
			return out, errors.New("error scanning fitness row")
		}
		r.DurationMinutes, r.Steps, r.DistanceKm, r.CaloriesBurned = nullToStr(duration), nullToStr(steps), nullToStr(distance), nullToStr(calories)
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return out, errors.New("error iterating fitness rows")
	}
	return out, nil
}

func (q *TrackingQueries) MoodRows(userID uuid.UUID, from, to time.Time) ([]models.MoodRow, error) {
	var out []models.MoodRow
	query := `SELECT id, score, note, created_at FROM mood_entries WHERE user_id = $1 AND created_at >= $2 AND created_at < $3 ORDER BY created_at`
	rows, err := q.DB.Query(query, userID, from, to)
	if err != nil {
		return out, errors.New("unable to query mood entries")
	}
	defer rows.Close()
	for rows.Next() {
		var r models.MoodRow
		var score, note sql.NullString
		if err := rows.Scan(&r.ID, &score, &note, &r.CreatedAt); err != nil {
			return out, errors.New("error scanning mood row")
		}
		r.Score, r.Note = nullToStr(score), nullToStr(note)
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return out, errors.New("error iterating mood rows")
	}
	return out, nil
}
