package models

import (
	"time"

	"github.com/google/uuid"
)

type MealEntry struct {
	ID        uuid.UUID `json:"id" db:"id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	Name      string    `json:"name" db:"name"`
	MealType  string    `json:"meal_type" db:"meal_type"`
	Calories  float64   `json:"calories" db:"calories"`
	Protein   float64   `json:"protein" db:"protein"`
	Carbs     float64   `json:"carbs" db:"carbs"`
	Fat       float64   `json:"fat" db:"fat"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type WaterEntry struct {
	ID        uuid.UUID `json:"id" db:"id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	AmountMl  float64   `json:"amount_ml" db:"amount_ml"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type SleepEntry struct {
	ID              uuid.UUID `json:"id" db:"id"`
	UserID          uuid.UUID `json:"user_id" db:"user_id"`
	DurationMinutes float64   `json:"duration_minutes" db:"duration_minutes"`
	Quality         float64   `json:"quality" db:"quality"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
}

type FitnessEntry struct {
	ID              uuid.UUID `json:"id" db:"id"`
	UserID          uuid.UUID `json:"user_id" db:"user_id"`
	Activity        string    `json:"activity" db:"activity"`
	DurationMinutes float64   `json:"duration_minutes" db:"duration_minutes"`
	Steps           float64   `json:"steps" db:"steps"`
	DistanceKm      float64   `json:"distance_km" db:"distance_km"`
	CaloriesBurned  float64   `json:"calories_burned" db:"calories_burned"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
}

type MoodEntry struct {
	ID        uuid.UUID `json:"id" db:"id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	Score     float64   `json:"score" db:"score"`
	Note      string    `json:"note,omitempty" db:"note"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Raw tracking rows as they come off the persistence layer. Legacy rows
// written by the old mobile clients stored numerics as text, so every
// numeric column is carried as a string here and coerced at the reporter
// boundary, never inside a handler.
type MealRow struct {
	ID        uuid.UUID
	Name      string
	MealType  string
	Calories  string
	Protein   string
	Carbs     string
	Fat       string
	CreatedAt time.Time
}

type WaterRow struct {
	ID        uuid.UUID
	AmountMl  string
	CreatedAt time.Time
}

type SleepRow struct {
	ID              uuid.UUID
	DurationMinutes string
	Quality         string
	CreatedAt       time.Time
}

type FitnessRow struct {
	ID              uuid.UUID
	Activity        string
	DurationMinutes string
	Steps           string
	DistanceKm      string
	CaloriesBurned  string
	CreatedAt       time.Time
}

type MoodRow struct {
	ID        uuid.UUID
	Score     string
	Note      string
	CreatedAt time.Time
}

type CreateMealRequest struct {
	Name     string  `json:"name" validate:"required,lte=255"`
	MealType string  `json:"meal_type" validate:"required,oneof=breakfast lunch dinner snack"`
	Calories float64 `json:"calories" validate:"gte=0"`
	Protein  float64 `json:"protein" validate:"gte=0"`
	Carbs    float64 `json:"carbs" validate:"gte=0"`
	Fat      float64 `json:"fat" validate:"gte=0"`
}

type CreateWaterRequest struct {
	AmountMl float64 `json:"amount_ml" validate:"required,gt=0"`
}

type CreateSleepRequest struct {
	DurationMinutes float64 `json:"duration_minutes" validate:"required,gt=0"`
	Quality         float64 `json:"quality" validate:"omitempty,gte=1,lte=10"`
}

type CreateFitnessRequest struct {
	Activity        string  `json:"activity" validate:"required,lte=64"`
	DurationMinutes float64 `json:"duration_minutes" validate:"required,gt=0"`
	Steps           float64 `json:"steps" validate:"gte=0"`
	DistanceKm      float64 `json:"distance_km" validate:"gte=0"`
	CaloriesBurned  float64 `json:"calories_burned" validate:"gte=0"`
}

type CreateMoodRequest struct {
	Score float64 `json:"score" validate:"required,gte=1,lte=10"`
	Note  string  `json:"note" validate:"omitempty,lte=500"`
}
