package contract

import (
	"context"

	"github.com/TanaySingh02/Farmwise2.0/internal/entity"
)

// FarmerRepository covers all per-farmer reads the matching run needs.
// FindLogs returns entries ordered by creation time ascending.
type FarmerRepository interface {
	FindById(ctx context.Context, farmerId string) (*entity.Farmer, error)
	FindContact(ctx context.Context, farmerId string) (*entity.FarmerContact, error)
	FindPlots(ctx context.Context, farmerId string) ([]*entity.FarmerPlot, error)
	FindCrops(ctx context.Context, farmerId string) ([]*entity.PlotCrop, error)
	FindLogs(ctx context.Context, farmerId string) ([]*entity.ActivityLog, error)
}
