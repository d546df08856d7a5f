package models

type MealSummary struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Entries  int     `json:"entries"`
}

type WaterSummary struct {
	TotalMl float64 `json:"total_ml"`
	Entries int     `json:"entries"`
}

type SleepSummary struct {
	DurationMinutes float64 `json:"duration_minutes"`
	AverageQuality  float64 `json:"average_quality"`
	Entries         int     `json:"entries"`
}

type FitnessSummary struct {
	DurationMinutes float64 `json:"duration_minutes"`
	Steps           float64 `json:"steps"`
	DistanceKm      float64 `json:"distance_km"`
	CaloriesBurned  float64 `json:"calories_burned"`
	Sessions        int     `json:"sessions"`
}

type MoodSummary struct {
	AverageScore float64 `json:"average_score"`
	Entries      int     `json:"entries"`
}

type DailySummary struct {
	Date    string         `json:"date"`
	Meals   MealSummary    `json:"meals"`
	Water   WaterSummary   `json:"water"`
	Sleep   SleepSummary   `json:"sleep"`
	Fitness FitnessSummary `json:"fitness"`
	Mood    MoodSummary    `json:"mood"`
}

type WeeklySummary struct {
	WeekStart     string         `json:"week_start"`
	Days          int            `json:"days"`
	Meals         MealSummary    `json:"meals"`
	Water         WaterSummary   `json:"water"`
	Sleep         SleepSummary   `json:"sleep"`
	Fitness       FitnessSummary `json:"fitness"`
	Mood          MoodSummary    `json:"mood"`
	Missions      MissionStats   `json:"missions"`
	WellnessScore int            `json:"wellness_score"`
}
