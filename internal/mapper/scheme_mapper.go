package mapper

import (
	"time"

	"github.com/TanaySingh02/Farmwise2.0/internal/entity"
	"github.com/TanaySingh02/Farmwise2.0/internal/model"

	"gorm.io/datatypes"
)

type SchemeMapper struct{}

func NewSchemeMapper() *SchemeMapper {
	return &SchemeMapper{}
}

func (m *SchemeMapper) ToEntity(s *model.Scheme) *entity.Scheme {
	if s == nil {
		return nil
	}

	var updatedAt *time.Time
	if !s.UpdatedAt.IsZero() {
		t := s.UpdatedAt
		updatedAt = &t
	}

	return &entity.Scheme{
		Id:                  s.Id,
		SchemeName:          s.SchemeName,
		Ministry:            s.Ministry,
		State:               s.State,
		Objective:           s.Objective,
		Benefit:             s.Benefit,
		EligibilityCriteria: []string(s.EligibilityCriteria),
		Exclusions:          []string(s.Exclusions),
		ApplicationProcess:  s.ApplicationProcess,
		DocumentsRequired:   []string(s.DocumentsRequired),
		OfficialWebsite:     s.OfficialWebsite,
		LastUpdated:         s.LastUpdated,
		Features:            []string(s.Features),
		Targets:             []string(s.Targets),
		Components:          []string(s.Components),
		CreatedAt:           s.CreatedAt,
		UpdatedAt:           updatedAt,
	}
}

func (m *SchemeMapper) ToModel(s *entity.Scheme) *model.Scheme {
	if s == nil {
		return nil
	}

	var updatedAt time.Time
	if s.UpdatedAt != nil {
		updatedAt = *s.UpdatedAt
	}

	return &model.Scheme{
		Id:                  s.Id,
		SchemeName:          s.SchemeName,
		Ministry:            s.Ministry,
		State:               s.State,
		Objective:           s.Objective,
		Benefit:             s.Benefit,
		EligibilityCriteria: datatypes.NewJSONSlice(s.EligibilityCriteria),
		Exclusions:          datatypes.NewJSONSlice(s.Exclusions),
		ApplicationProcess:  s.ApplicationProcess,
		DocumentsRequired:   datatypes.NewJSONSlice(s.DocumentsRequired),
		OfficialWebsite:     s.OfficialWebsite,
		LastUpdated:         s.LastUpdated,
		Features:            datatypes.NewJSONSlice(s.Features),
		Targets:             datatypes.NewJSONSlice(s.Targets),
		Components:          datatypes.NewJSONSlice(s.Components),
		CreatedAt:           s.CreatedAt,
		UpdatedAt:           updatedAt,
	}
}

func (m *SchemeMapper) ToEntities(schemes []*model.Scheme) []*entity.Scheme {
	entities := make([]*entity.Scheme, len(schemes))
	for i, s := range schemes {
		entities[i] = m.ToEntity(s)
	}
	return entities
}
