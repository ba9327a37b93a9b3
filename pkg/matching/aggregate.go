package matching

import (
	"context"
	"fmt"

	"github.com/TanaySingh02/Farmwise2.0/internal/entity"
	"github.com/TanaySingh02/Farmwise2.0/internal/repository/unitofwork"
)

// BuildFarmerAggregate collects everything the matching run knows about
// one farmer: profile, contact, plots, crops, and activity logs in
// chronological order. A missing profile yields an empty aggregate, not
// an error; read failures propagate.
func BuildFarmerAggregate(ctx context.Context, uow unitofwork.UnitOfWork, farmerId string) (*entity.FarmerAggregate, error) {
	farmerRepo := uow.FarmerRepository()

	farmer, err := farmerRepo.FindById(ctx, farmerId)
	if err != nil {
		return nil, fmt.Errorf("find farmer %s: %w", farmerId, err)
	}
	if farmer == nil {
		return &entity.FarmerAggregate{}, nil
	}

	contact, err := farmerRepo.FindContact(ctx, farmerId)
	if err != nil {
		return nil, fmt.Errorf("find contact for farmer %s: %w", farmerId, err)
	}

	plots, err := farmerRepo.FindPlots(ctx, farmerId)
	if err != nil {
		return nil, fmt.Errorf("find plots for farmer %s: %w", farmerId, err)
	}

	crops, err := farmerRepo.FindCrops(ctx, farmerId)
	if err != nil {
		return nil, fmt.Errorf("find crops for farmer %s: %w", farmerId, err)
	}

	logs, err := farmerRepo.FindLogs(ctx, farmerId)
	if err != nil {
		return nil, fmt.Errorf("find activity logs for farmer %s: %w", farmerId, err)
	}

	return &entity.FarmerAggregate{
		Farmer:  farmer,
		Contact: contact,
		Plots:   plots,
		Crops:   crops,
		Logs:    logs,
	}, nil
}
