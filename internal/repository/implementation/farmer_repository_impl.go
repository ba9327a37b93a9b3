package implementation

import (
	"context"
	"errors"

	"github.com/TanaySingh02/Farmwise2.0/internal/entity"
	"github.com/TanaySingh02/Farmwise2.0/internal/mapper"
	"github.com/TanaySingh02/Farmwise2.0/internal/model"
	"github.com/TanaySingh02/Farmwise2.0/internal/repository/contract"
	"github.com/TanaySingh02/Farmwise2.0/internal/repository/specification"

	"gorm.io/gorm"
)

type FarmerRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.FarmerMapper
}

func NewFarmerRepository(db *gorm.DB) contract.FarmerRepository {
	return &FarmerRepositoryImpl{
		db:     db,
		mapper: mapper.NewFarmerMapper(),
	}
}

func (r *FarmerRepositoryImpl) FindById(ctx context.Context, farmerId string) (*entity.Farmer, error) {
	var m model.Farmer
	err := r.db.WithContext(ctx).Where("id = ?", farmerId).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *FarmerRepositoryImpl) FindContact(ctx context.Context, farmerId string) (*entity.FarmerContact, error) {
	var m model.FarmerContact
	query := specification.ByFarmerID{FarmerID: farmerId}.Apply(r.db.WithContext(ctx))
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ContactToEntity(&m), nil
}

func (r *FarmerRepositoryImpl) FindPlots(ctx context.Context, farmerId string) ([]*entity.FarmerPlot, error) {
	var models []*model.FarmerPlot
	query := specification.ByFarmerID{FarmerID: farmerId}.Apply(r.db.WithContext(ctx))
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	plots := make([]*entity.FarmerPlot, len(models))
	for i, m := range models {
		plots[i] = r.mapper.PlotToEntity(m)
	}
	return plots, nil
}

func (r *FarmerRepositoryImpl) FindCrops(ctx context.Context, farmerId string) ([]*entity.PlotCrop, error) {
	var models []*model.PlotCrop
	query := specification.ByFarmerID{FarmerID: farmerId}.Apply(r.db.WithContext(ctx))
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	crops := make([]*entity.PlotCrop, len(models))
	for i, m := range models {
		crops[i] = r.mapper.CropToEntity(m)
	}
	return crops, nil
}

func (r *FarmerRepositoryImpl) FindLogs(ctx context.Context, farmerId string) ([]*entity.ActivityLog, error) {
	var models []*model.ActivityLog
	query := r.db.WithContext(ctx)
	query = specification.ByFarmerID{FarmerID: farmerId}.Apply(query)
	query = specification.OrderBy{Field: "created_at"}.Apply(query)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	logs := make([]*entity.ActivityLog, len(models))
	for i, m := range models {
		logs[i] = r.mapper.LogToEntity(m)
	}
	return logs, nil
}
