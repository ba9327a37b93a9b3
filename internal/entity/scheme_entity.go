package entity

import (
	"time"

	"github.com/google/uuid"
)

// Scheme is an immutable-per-version government scheme catalog entry.
// Name, ministry, objective and eligibility criteria must be non-empty
// before the scheme may be chunked for indexing.
type Scheme struct {
	Id                  uuid.UUID
	SchemeName          string
	Ministry            string
	State               string
	Objective           string
	Benefit             string
	EligibilityCriteria []string
	Exclusions          []string
	ApplicationProcess  string
	DocumentsRequired   []string
	OfficialWebsite     string
	LastUpdated         string
	Features            []string
	Targets             []string
	Components          []string
	CreatedAt           time.Time
	UpdatedAt           *time.Time
}
