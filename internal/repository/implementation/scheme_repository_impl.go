package implementation

import (
	"context"
	"errors"

	"github.com/TanaySingh02/Farmwise2.0/internal/entity"
	"github.com/TanaySingh02/Farmwise2.0/internal/mapper"
	"github.com/TanaySingh02/Farmwise2.0/internal/model"
	"github.com/TanaySingh02/Farmwise2.0/internal/repository/contract"
	"github.com/TanaySingh02/Farmwise2.0/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SchemeRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SchemeMapper
}

func NewSchemeRepository(db *gorm.DB) contract.SchemeRepository {
	return &SchemeRepositoryImpl{
		db:     db,
		mapper: mapper.NewSchemeMapper(),
	}
}

func (r *SchemeRepositoryImpl) Create(ctx context.Context, scheme *entity.Scheme) error {
	m := r.mapper.ToModel(scheme)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*scheme = *r.mapper.ToEntity(m)
	return nil
}

// Upsert replaces an existing catalog entry with the same id. Used by the
// feed job so a catalog refresh supersedes rather than duplicates.
func (r *SchemeRepositoryImpl) Upsert(ctx context.Context, scheme *entity.Scheme) error {
	m := r.mapper.ToModel(scheme)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(m).Error
	if err != nil {
		return err
	}
	*scheme = *r.mapper.ToEntity(m)
	return nil
}

func (r *SchemeRepositoryImpl) FindById(ctx context.Context, id uuid.UUID) (*entity.Scheme, error) {
	var m model.Scheme
	query := specification.ByID{ID: id}.Apply(r.db.WithContext(ctx))
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *SchemeRepositoryImpl) FindByNameLike(ctx context.Context, name string) ([]*entity.Scheme, error) {
	return r.findAll(ctx, specification.ILike{Field: "scheme_name", Value: name})
}

func (r *SchemeRepositoryImpl) FindByMinistryLike(ctx context.Context, ministry string) ([]*entity.Scheme, error) {
	return r.findAll(ctx, specification.ILike{Field: "ministry", Value: ministry})
}

func (r *SchemeRepositoryImpl) FindByStateLike(ctx context.Context, state string) ([]*entity.Scheme, error) {
	return r.findAll(ctx, specification.ILike{Field: "state", Value: state})
}

func (r *SchemeRepositoryImpl) FindAll(ctx context.Context) ([]*entity.Scheme, error) {
	return r.findAll(ctx)
}

func (r *SchemeRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Scheme{}).Count(&count).Error
	return count, err
}

func (r *SchemeRepositoryImpl) findAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Scheme, error) {
	var models []*model.Scheme
	query := r.db.WithContext(ctx)
	for _, spec := range specs {
		query = spec.Apply(query)
	}
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
