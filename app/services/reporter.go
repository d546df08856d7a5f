package services

import (
	"database/sql"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/wellnestapp/wellnest-backend/app/models"
	"github.com/wellnestapp/wellnest-backend/app/queries"
	"github.com/wellnestapp/wellnest-backend/pkg/utils"
)

// Reporter derives day- and week-scoped rollups from the raw tracking
// tables. It is a pure read-side projector: no writes, no coordination
// with the mission engine beyond reading committed state. Raw numeric
// values are coerced here, at the boundary, so nothing stringly-typed
// leaks into a summary.
type Reporter struct {
	DB *sql.DB
}

// Daily reference targets for the wellness score. One fully met target
// contributes a 100 component.
const (
	targetSleepMinutes  = 480
	targetWaterMl       = 2000
	targetActiveMinutes = 30
)

func dayRange(date time.Time) (time.Time, time.Time) {
	from := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	return from, from.Add(24 * time.Hour)
}

// DailySummary aggregates one calendar day. Every numeric field is
// zero-filled when no rows exist; the response never carries null or NaN.
func (r *Reporter) DailySummary(userID uuid.UUID, date time.Time) (models.DailySummary, error) {
	from, to := dayRange(date)
	summary := models.DailySummary{Date: from.Format("2006-01-02")}

	tq := queries.TrackingQueries{DB: r.DB}

	meals, err := tq.MealRows(userID, from, to)
	if err != nil {
		return summary, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	water, err := tq.WaterRows(userID, from, to)
	if err != nil {
		return summary, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	sleep, err := tq.SleepRows(userID, from, to)
	if err != nil {
		return summary, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	fitness, err := tq.FitnessRows(userID, from, to)
	if err != nil {
		return summary, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	mood, err := tq.MoodRows(userID, from, to)
	if err != nil {
		return summary, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	summary.Meals = sumMeals(meals)
	summary.Water = sumWater(water)
	summary.Sleep = sumSleep(sleep)
	summary.Fitness = sumFitness(fitness)
	summary.Mood = sumMood(mood)
	return summary, nil
}

// WeeklySummary aggregates the 7 days starting at weekStart and derives
// the wellness score from per-day averages plus the week's mission
// completion rate.
func (r *Reporter) WeeklySummary(userID uuid.UUID, weekStart time.Time) (models.WeeklySummary, error) {
	from := time.Date(weekStart.Year(), weekStart.Month(), weekStart.Day(), 0, 0, 0, 0, time.UTC)
	to := from.Add(7 * 24 * time.Hour)
	summary := models.WeeklySummary{WeekStart: from.Format("2006-01-02"), Days: 7}

	tq := queries.TrackingQueries{DB: r.DB}

	meals, err := tq.MealRows(userID, from, to)
	if err != nil {
		return summary, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	water, err := tq.WaterRows(userID, from, to)
	if err != nil {
		return summary, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	sleep, err := tq.SleepRows(userID, from, to)
	if err != nil {
		return summary, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	fitness, err := tq.FitnessRows(userID, from, to)
	if err != nil {
		return summary, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	mood, err := tq.MoodRows(userID, from, to)
	if err != nil {
		return summary, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	umq := queries.UserMissionsQueries{DB: r.DB}
	stats, err := umq.StatsBetween(userID, from, to)
	if err != nil {
		return summary, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	finishStats(&stats)

	summary.Meals = sumMeals(meals)
	summary.Water = sumWater(water)
	summary.Sleep = sumSleep(sleep)
	summary.Fitness = sumFitness(fitness)
	summary.Mood = sumMood(mood)
	summary.Missions = stats
	summary.WellnessScore = WellnessScore(
		summary.Sleep.DurationMinutes/7,
		summary.Water.TotalMl/7,
		summary.Fitness.DurationMinutes/7,
		summary.Mood.AverageScore,
		stats.CompletionRate,
	)
	return summary, nil
}

// WellnessScore combines five components, each capped at 100: sleep
// against 480 min/day, water against 2000 ml/day, active minutes against
// 30 min/day, mood on its 1-10 scale times ten, and mission completion
// rate. Weights: sleep 25, water 20, activity 25, mood 20, missions 10.
func WellnessScore(sleepMinutesPerDay, waterMlPerDay, activeMinutesPerDay, moodScore, missionRate float64) int {
	cap100 := func(v float64) float64 {
		if v < 0 {
			return 0
		}
		if v > 100 {
			return 100
		}
		return v
	}

	sleepC := cap100(sleepMinutesPerDay / targetSleepMinutes * 100)
	waterC := cap100(waterMlPerDay / targetWaterMl * 100)
	activeC := cap100(activeMinutesPerDay / targetActiveMinutes * 100)
	moodC := cap100(moodScore * 10)
	missionC := cap100(missionRate)

	score := 0.25*sleepC + 0.20*waterC + 0.25*activeC + 0.20*moodC + 0.10*missionC
	return int(math.Round(score))
}

func sumMeals(rows []models.MealRow) models.MealSummary {
	s := models.MealSummary{Entries: len(rows)}
	for _, r := range rows {
		s.Calories += utils.ParseNumeric(r.Calories)
		s.Protein += utils.ParseNumeric(r.Protein)
		s.Carbs += utils.ParseNumeric(r.Carbs)
		s.Fat += utils.ParseNumeric(r.Fat)
	}
	return s
}

func sumWater(rows []models.WaterRow) models.WaterSummary {
	s := models.WaterSummary{Entries: len(rows)}
	for _, r := range rows {
		s.TotalMl += utils.ParseNumeric(r.AmountMl)
	}
	return s
}

func sumSleep(rows []models.SleepRow) models.SleepSummary {
	s := models.SleepSummary{Entries: len(rows)}
	var qualityTotal float64
	for _, r := range rows {
		s.DurationMinutes += utils.ParseNumeric(r.DurationMinutes)
		qualityTotal += utils.ParseNumeric(r.Quality)
	}
	if len(rows) > 0 {
		s.AverageQuality = round2(qualityTotal / float64(len(rows)))
	}
	return s
}

func sumFitness(rows []models.FitnessRow) models.FitnessSummary {
	s := models.FitnessSummary{Sessions: len(rows)}
	for _, r := range rows {
		s.DurationMinutes += utils.ParseNumeric(r.DurationMinutes)
		s.Steps += utils.ParseNumeric(r.Steps)
		s.DistanceKm += utils.ParseNumeric(r.DistanceKm)
		s.CaloriesBurned += utils.ParseNumeric(r.CaloriesBurned)
	}
	return s
}

func sumMood(rows []models.MoodRow) models.MoodSummary {
	s := models.MoodSummary{Entries: len(rows)}
	var total float64
	for _, r := range rows {
		total += utils.ParseNumeric(r.Score)
	}
	if len(rows) > 0 {
		s.AverageScore = round2(total / float64(len(rows)))
	}
	return s
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// CoerceMeal converts a raw row into a typed entry for API responses.
func CoerceMeal(userID uuid.UUID, r models.MealRow) models.MealEntry {
	return models.MealEntry{
		ID:        r.ID,
		UserID:    userID,
		Name:      r.Name,
		MealType:  r.MealType,
		Calories:  utils.ParseNumeric(r.Calories),
		Protein:   utils.ParseNumeric(r.Protein),
		Carbs:     utils.ParseNumeric(r.Carbs),
		Fat:       utils.ParseNumeric(r.Fat),
		CreatedAt: r.CreatedAt,
	}
}

func CoerceWater(userID uuid.UUID, r models.WaterRow) models.WaterEntry {
	return models.WaterEntry{
		ID:        r.ID,
		UserID:    userID,
		AmountMl:  utils.ParseNumeric(r.AmountMl),
		CreatedAt: r.CreatedAt,
	}
}

func CoerceSleep(userID uuid.UUID, r models.SleepRow) models.SleepEntry {
	return models.SleepEntry{
		ID:              r.ID,
		UserID:          userID,
		DurationMinutes: utils.ParseNumeric(r.DurationMinutes),
		Quality:         utils.ParseNumeric(r.Quality),
		CreatedAt:       r.CreatedAt,
	}
}

func CoerceFitness(userID uuid.UUID, r models.FitnessRow) models.FitnessEntry {
	return models.FitnessEntry{
		ID:              r.ID,
		UserID:          userID,
		Activity:        r.Activity,
		DurationMinutes: utils.ParseNumeric(r.DurationMinutes),
		Steps:           utils.ParseNumeric(r.Steps),
		DistanceKm:      utils.ParseNumeric(r.DistanceKm),
		CaloriesBurned:  utils.ParseNumeric(r.CaloriesBurned),
		CreatedAt:       r.CreatedAt,
	}
}

func CoerceMood(userID uuid.UUID, r models.MoodRow) models.MoodEntry {
	return models.MoodEntry{
		ID:        r.ID,
		UserID:    userID,
		Score:     utils.ParseNumeric(r.Score),
		Note:      r.Note,
		CreatedAt: r.CreatedAt,
	}
}
