package entity

import (
	"time"

	"github.com/google/uuid"
)

// SchemeMatch is one persisted scheme recommendation for a farmer.
// Rows are append-only: a re-run inserts new rows, never updates old ones.
type SchemeMatch struct {
	Id         uuid.UUID
	FarmerId   string
	SchemeId   uuid.UUID
	SchemeName string
	Reason     string
	IsEligible bool
	CreatedAt  time.Time
}
