package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/wellnestapp/wellnest-backend/app/models"
)

func TestSumMealsCoercesLegacyText(t *testing.T) {
	rows := []models.MealRow{
		{Name: "oatmeal", Calories: "350", Protein: "12.5", Carbs: "60", Fat: "7"},
		{Name: "imported row", Calories: " 420 ", Protein: "", Carbs: "not-a-number", Fat: "NaN"},
	}
	s := sumMeals(rows)
	assert.Equal(t, 2, s.Entries)
	assert.Equal(t, 770.0, s.Calories)
	assert.Equal(t, 12.5, s.Protein)
	assert.Equal(t, 60.0, s.Carbs)
	assert.Equal(t, 7.0, s.Fat)
}

func TestSummariesZeroFilledWhenEmpty(t *testing.T) {
	meals := sumMeals(nil)
	assert.Equal(t, models.MealSummary{}, meals)

	water := sumWater(nil)
	assert.Equal(t, models.WaterSummary{}, water)

	sleep := sumSleep(nil)
	assert.Equal(t, models.SleepSummary{}, sleep)

	fitness := sumFitness(nil)
	assert.Equal(t, models.FitnessSummary{}, fitness)

	mood := sumMood(nil)
	assert.Equal(t, models.MoodSummary{}, mood)
}

func TestSumSleepAveragesQuality(t *testing.T) {
	rows := []models.SleepRow{
		{DurationMinutes: "420", Quality: "8"},
		{DurationMinutes: "390", Quality: "5"},
	}
	s := sumSleep(rows)
	assert.Equal(t, 810.0, s.DurationMinutes)
	assert.Equal(t, 6.5, s.AverageQuality)
}

func TestSumMoodAverage(t *testing.T) {
	rows := []models.MoodRow{
		{Score: "7"},
		{Score: "4"},
		{Score: "garbage"},
	}
	s := sumMood(rows)
	assert.Equal(t, 3, s.Entries)
	// the garbage row coerces to zero and still counts as an entry
	assert.InDelta(t, 3.67, s.AverageScore, 0.001)
}

func TestWellnessScore(t *testing.T) {
	tests := []struct {
		name                                 string
		sleep, water, active, mood, missions float64
		want                                 int
	}{
		{"all targets met", 480, 2000, 30, 10, 100, 100},
		{"nothing logged", 0, 0, 0, 0, 0, 0},
		{"half of everything", 240, 1000, 15, 5, 50, 50},
		{"overshoot is capped", 960, 5000, 120, 10, 100, 100},
		{"sleep only", 480, 0, 0, 0, 0, 25},
		{"negative inputs clamp to zero", -10, -1, -5, -2, -50, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WellnessScore(tt.sleep, tt.water, tt.active, tt.mood, tt.missions))
		})
	}
}

func TestCoerceFitnessRow(t *testing.T) {
	row := models.FitnessRow{
		Activity:        "running",
		DurationMinutes: "45",
		Steps:           "6200",
		DistanceKm:      "7.4",
		CaloriesBurned:  "",
	}
	e := CoerceFitness(uuid.Nil, row)
	assert.Equal(t, "running", e.Activity)
	assert.Equal(t, 45.0, e.DurationMinutes)
	assert.Equal(t, 6200.0, e.Steps)
	assert.Equal(t, 7.4, e.DistanceKm)
	assert.Equal(t, 0.0, e.CaloriesBurned)
}
