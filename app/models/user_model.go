package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `json:"id" db:"uid"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	Gender       string    `json:"gender,omitempty"`
	Avatar       string    `json:"avatar,omitempty"`
	PasswordHash string    `json:"-"`
	Verified     bool      `json:"verified"`
	OTP          string    `json:"-"`
	UserRole     string    `json:"user_role"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type UpdateUserRequest struct {
	Username *string `json:"username" validate:"omitempty,lte=255"`
	Gender   *string `json:"gender" validate:"omitempty,oneof=male female other"`
	Avatar   *string `json:"avatar" validate:"omitempty,lte=16"`
}
