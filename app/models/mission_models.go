package models

import (
	"time"

	"github.com/google/uuid"
)

// UserMission status values. A user mission starts active and ends in
// exactly one of the terminal states; there is no way back out of either.
const (
	MissionStatusActive    = "active"
	MissionStatusCompleted = "completed"
	MissionStatusCancelled = "cancelled"
)

type Mission struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Title        string    `json:"title" db:"title"`
	Description  string    `json:"description" db:"description"`
	Category     string    `json:"category" db:"category"`
	SubCategory  string    `json:"sub_category,omitempty" db:"sub_category"`
	Points       int       `json:"points" db:"points"`
	TargetValue  float64   `json:"target_value" db:"target_value"`
	TargetUnit   string    `json:"target_unit" db:"target_unit"`
	DurationDays int       `json:"duration_days" db:"duration_days"`
	Difficulty   string    `json:"difficulty,omitempty" db:"difficulty"`
	MissionType  string    `json:"mission_type,omitempty" db:"mission_type"`
	IsActive     bool      `json:"is_active" db:"is_active"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

type UserMission struct {
	ID           uuid.UUID `json:"id" db:"id"`
	UserID       uuid.UUID `json:"user_id" db:"user_id"`
	MissionID    uuid.UUID `json:"mission_id" db:"mission_id"`
	Status       string    `json:"status" db:"status"`
	CurrentValue float64   `json:"current_value" db:"current_value"`
	Progress     int       `json:"progress" db:"progress"`
	MissionDate  time.Time `json:"mission_date" db:"mission_date"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// UserMissionDetail joins a progress record with the catalog fields the
// engine and the clients need alongside it.
type UserMissionDetail struct {
	UserMission
	MissionTitle string  `json:"mission_title"`
	TargetValue  float64 `json:"target_value"`
	TargetUnit   string  `json:"target_unit"`
	Points       int     `json:"points"`
}

type CreateMissionRequest struct {
	Title        string  `json:"title" validate:"required,lte=255"`
	Description  string  `json:"description" validate:"omitempty,lte=2000"`
	Category     string  `json:"category" validate:"required,lte=64"`
	SubCategory  string  `json:"sub_category" validate:"omitempty,lte=64"`
	Points       int     `json:"points" validate:"required,gt=0"`
	TargetValue  float64 `json:"target_value" validate:"required,gt=0"`
	TargetUnit   string  `json:"target_unit" validate:"required,oneof=steps ml minutes count km kcal"`
	DurationDays int     `json:"duration_days" validate:"omitempty,gte=1,lte=365"`
	Difficulty   string  `json:"difficulty" validate:"omitempty,oneof=easy medium hard"`
	MissionType  string  `json:"mission_type" validate:"omitempty,lte=64"`
}

type AcceptMissionRequest struct {
	MissionID   string `json:"mission_id" validate:"required,uuid4"`
	MissionDate string `json:"mission_date" validate:"omitempty,datetime=2006-01-02"`
}

type UpdateProgressRequest struct {
	UserMissionID string   `json:"user_mission_id" validate:"required,uuid4"`
	CurrentValue  *float64 `json:"current_value" validate:"required"`
	Status        string   `json:"status" validate:"omitempty,oneof=active completed"`
}

type CancelMissionRequest struct {
	UserMissionID string `json:"user_mission_id" validate:"required,uuid4"`
}

type ResetMissionsRequest struct {
	UserID    string `json:"user_id" validate:"required,uuid4"`
	MissionID string `json:"mission_id" validate:"omitempty,uuid4"`
}

type MissionStats struct {
	TotalMissions     int     `json:"total_missions"`
	ActiveMissions    int     `json:"active_missions"`
	CompletedMissions int     `json:"completed_missions"`
	CancelledMissions int     `json:"cancelled_missions"`
	TotalPointsEarned int     `json:"total_points_earned"`
	CompletionRate    float64 `json:"completion_rate"`
}

// MissionEvent is pushed to the event dispatcher when a user mission
// reaches completed, for best-effort websocket delivery.
type MissionEvent struct {
	UserID        uuid.UUID `json:"user_id"`
	UserMissionID uuid.UUID `json:"user_mission_id"`
	MissionTitle  string    `json:"mission_title"`
	PointsAwarded int       `json:"points_awarded"`
}
