package dto

import "github.com/google/uuid"

// PublishIndexSchemeMessage is the payload queued for the async
// indexing consumer.
type PublishIndexSchemeMessage struct {
	SchemeId uuid.UUID `json:"scheme_id"`
}

// SchemeImport mirrors one catalog entry of the scheme feed file.
type SchemeImport struct {
	SchemeName string `json:"scheme_name" validate:"required"`
	Ministry   string `json:"ministry" validate:"required"`
	State      string `json:"state"`
	Objective  string `json:"objective" validate:"required"`
	Benefit    string `json:"benefit"`
	Eligibility struct {
		Criteria []string `json:"criteria" validate:"required,min=1"`
	} `json:"eligibility"`
	Exclusions         []string `json:"exclusions"`
	ApplicationProcess string   `json:"application_process"`
	DocumentsRequired  []string `json:"documents_required"`
	OfficialWebsite    string   `json:"official_website"`
	LastUpdated        string   `json:"last_updated"`
	Features           []string `json:"features"`
	Targets            []string `json:"targets"`
	Components         []string `json:"components"`
}

type ImportSchemesResponse struct {
	Imported int `json:"imported"`
	Rejected int `json:"rejected"`
}

type ReindexResponse struct {
	Queued int `json:"queued"`
}
