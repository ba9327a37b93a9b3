package contract

import (
	"context"

	"github.com/TanaySingh02/Farmwise2.0/internal/entity"
)

// SchemeMatchRepository persists matching run results. Insert is
// append-only: re-running matching for a farmer adds rows, existing
// rows are never updated or deduplicated.
type SchemeMatchRepository interface {
	Insert(ctx context.Context, match *entity.SchemeMatch) error
	FindByFarmerId(ctx context.Context, farmerId string) ([]*entity.SchemeMatch, error)
}
