package mapper

import (
	"github.com/TanaySingh02/Farmwise2.0/internal/entity"
	"github.com/TanaySingh02/Farmwise2.0/internal/model"
)

type SchemeMatchMapper struct{}

func NewSchemeMatchMapper() *SchemeMatchMapper {
	return &SchemeMatchMapper{}
}

func (m *SchemeMatchMapper) ToEntity(s *model.SchemeMatch) *entity.SchemeMatch {
	if s == nil {
		return nil
	}
	return &entity.SchemeMatch{
		Id:         s.Id,
		FarmerId:   s.FarmerId,
		SchemeId:   s.SchemeId,
		SchemeName: s.SchemeName,
		Reason:     s.Reason,
		IsEligible: s.IsEligible,
		CreatedAt:  s.CreatedAt,
	}
}

func (m *SchemeMatchMapper) ToModel(s *entity.SchemeMatch) *model.SchemeMatch {
	if s == nil {
		return nil
	}
	return &model.SchemeMatch{
		Id:         s.Id,
		FarmerId:   s.FarmerId,
		SchemeId:   s.SchemeId,
		SchemeName: s.SchemeName,
		Reason:     s.Reason,
		IsEligible: s.IsEligible,
		CreatedAt:  s.CreatedAt,
	}
}

func (m *SchemeMatchMapper) ToEntities(matches []*model.SchemeMatch) []*entity.SchemeMatch {
	entities := make([]*entity.SchemeMatch, len(matches))
	for i, s := range matches {
		entities[i] = m.ToEntity(s)
	}
	return entities
}
