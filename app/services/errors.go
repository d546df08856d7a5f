package services

import "errors"

// Error taxonomy for the mission engine and reporter. Controllers map
// these onto HTTP statuses with errors.Is; conflict variants are distinct
// so clients can tell "already accepted" from "already completed" from
// "already cancelled" and avoid destructive retries.
var (
	ErrMissionNotFound     = errors.New("mission not found")
	ErrMissionInactive     = errors.New("mission is not active")
	ErrAlreadyActive       = errors.New("mission already accepted for this date")
	ErrUserMissionNotFound = errors.New("user mission not found")
	ErrAlreadyCompleted    = errors.New("mission already completed")
	ErrAlreadyCancelled    = errors.New("mission already cancelled")
	ErrValidation          = errors.New("validation failed")
	ErrUnavailable         = errors.New("storage unavailable")
)

// IsConflict reports whether err is one of the state conflicts.
func IsConflict(err error) bool {
	return errors.Is(err, ErrAlreadyActive) ||
		errors.Is(err, ErrAlreadyCompleted) ||
		errors.Is(err, ErrAlreadyCancelled) ||
		errors.Is(err, ErrMissionInactive)
}
