package implementation

import (
	"context"

	"github.com/TanaySingh02/Farmwise2.0/internal/entity"
	"github.com/TanaySingh02/Farmwise2.0/internal/mapper"
	"github.com/TanaySingh02/Farmwise2.0/internal/model"
	"github.com/TanaySingh02/Farmwise2.0/internal/repository/contract"
	"github.com/TanaySingh02/Farmwise2.0/internal/repository/specification"

	"gorm.io/gorm"
)

type SchemeMatchRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SchemeMatchMapper
}

func NewSchemeMatchRepository(db *gorm.DB) contract.SchemeMatchRepository {
	return &SchemeMatchRepositoryImpl{
		db:     db,
		mapper: mapper.NewSchemeMatchMapper(),
	}
}

func (r *SchemeMatchRepositoryImpl) Insert(ctx context.Context, match *entity.SchemeMatch) error {
	m := r.mapper.ToModel(match)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*match = *r.mapper.ToEntity(m)
	return nil
}

func (r *SchemeMatchRepositoryImpl) FindByFarmerId(ctx context.Context, farmerId string) ([]*entity.SchemeMatch, error) {
	var models []*model.SchemeMatch
	query := r.db.WithContext(ctx)
	query = specification.ByFarmerID{FarmerID: farmerId}.Apply(query)
	query = specification.OrderBy{Field: "created_at", Desc: true}.Apply(query)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
