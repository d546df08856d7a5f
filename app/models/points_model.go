package models

import (
	"time"

	"github.com/google/uuid"
)

// PointEntry is one row of the append-only point ledger. Mission
// completion is the only writer today; the balance is always the sum of a
// user's rows.
type PointEntry struct {
	ID            uuid.UUID  `json:"id" db:"id"`
	UserID        uuid.UUID  `json:"user_id" db:"user_id"`
	Amount        int        `json:"amount" db:"amount"`
	Reason        string     `json:"reason" db:"reason"`
	UserMissionID *uuid.UUID `json:"user_mission_id,omitempty" db:"user_mission_id"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
}
