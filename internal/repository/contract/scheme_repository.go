package contract

import (
	"context"

	"github.com/TanaySingh02/Farmwise2.0/internal/entity"

	"github.com/google/uuid"
)

// SchemeRepository provides read access to the scheme catalog plus the
// writes the feed job needs. Lookup methods are case-insensitive
// substring matches, per the query tool contracts.
type SchemeRepository interface {
	Create(ctx context.Context, scheme *entity.Scheme) error
	Upsert(ctx context.Context, scheme *entity.Scheme) error
	FindById(ctx context.Context, id uuid.UUID) (*entity.Scheme, error)
	FindByNameLike(ctx context.Context, name string) ([]*entity.Scheme, error)
	FindByMinistryLike(ctx context.Context, ministry string) ([]*entity.Scheme, error)
	FindByStateLike(ctx context.Context, state string) ([]*entity.Scheme, error)
	FindAll(ctx context.Context) ([]*entity.Scheme, error)
	Count(ctx context.Context) (int64, error)
}
