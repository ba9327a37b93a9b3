package dto

import (
	"github.com/google/uuid"

	"github.com/TanaySingh02/Farmwise2.0/internal/entity"
)

type SchemeSummary struct {
	Id                  uuid.UUID `json:"id"`
	SchemeName          string    `json:"scheme_name"`
	Ministry            string    `json:"ministry"`
	State               string    `json:"state,omitempty"`
	Objective           string    `json:"objective"`
	Benefit             string    `json:"benefit,omitempty"`
	EligibilityCriteria []string  `json:"eligibility_criteria"`
	Exclusions          []string  `json:"exclusions,omitempty"`
	ApplicationProcess  string    `json:"application_process,omitempty"`
	DocumentsRequired   []string  `json:"documents_required,omitempty"`
	OfficialWebsite     string    `json:"official_website,omitempty"`
	Features            []string  `json:"features,omitempty"`
}

func NewSchemeSummary(scheme *entity.Scheme) SchemeSummary {
	return SchemeSummary{
		Id:                  scheme.Id,
		SchemeName:          scheme.SchemeName,
		Ministry:            scheme.Ministry,
		State:               scheme.State,
		Objective:           scheme.Objective,
		Benefit:             scheme.Benefit,
		EligibilityCriteria: scheme.EligibilityCriteria,
		Exclusions:          scheme.Exclusions,
		ApplicationProcess:  scheme.ApplicationProcess,
		DocumentsRequired:   scheme.DocumentsRequired,
		OfficialWebsite:     scheme.OfficialWebsite,
		Features:            scheme.Features,
	}
}

func NewSchemeSummaries(schemes []*entity.Scheme) []SchemeSummary {
	summaries := make([]SchemeSummary, len(schemes))
	for i, scheme := range schemes {
		summaries[i] = NewSchemeSummary(scheme)
	}
	return summaries
}

type SchemeSearchResult struct {
	Content       string  `json:"content"`
	Score         float32 `json:"score"`
	SchemeName    string  `json:"scheme_name"`
	Ministry      string  `json:"ministry,omitempty"`
	ChunkKind     string  `json:"chunk_kind"`
	LastUpdated   string  `json:"last_updated,omitempty"`
	ReferenceLink string  `json:"reference_link,omitempty"`
}

type SchemeSearchRequest struct {
	Query     string `json:"query" validate:"required"`
	ChunkKind string `json:"chunk_kind" validate:"omitempty,oneof=overview eligibility application features"`
	TopK      int    `json:"top_k" validate:"omitempty,min=1,max=50"`
}
