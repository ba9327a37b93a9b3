package mapper

import (
	"time"

	"github.com/TanaySingh02/Farmwise2.0/internal/entity"
	"github.com/TanaySingh02/Farmwise2.0/internal/model"
)

type FarmerMapper struct{}

func NewFarmerMapper() *FarmerMapper {
	return &FarmerMapper{}
}

func (m *FarmerMapper) ToEntity(f *model.Farmer) *entity.Farmer {
	if f == nil {
		return nil
	}

	var updatedAt *time.Time
	if !f.UpdatedAt.IsZero() {
		t := f.UpdatedAt
		updatedAt = &t
	}

	return &entity.Farmer{
		Id:                f.Id,
		Name:              f.Name,
		Gender:            f.Gender,
		PrimaryLanguage:   f.PrimaryLanguage,
		Village:           f.Village,
		District:          f.District,
		State:             f.State,
		Age:               f.Age,
		EducationLevel:    f.EducationLevel,
		TotalLandArea:     f.TotalLandArea,
		FarmingExperience: f.FarmingExperience,
		Completed:         f.Completed,
		CreatedAt:         f.CreatedAt,
		UpdatedAt:         updatedAt,
	}
}

func (m *FarmerMapper) ContactToEntity(c *model.FarmerContact) *entity.FarmerContact {
	if c == nil {
		return nil
	}
	return &entity.FarmerContact{
		Id:        c.Id,
		FarmerId:  c.FarmerId,
		Phone:     c.Phone,
		Email:     c.Email,
		Address:   c.Address,
		CreatedAt: c.CreatedAt,
	}
}

func (m *FarmerMapper) PlotToEntity(p *model.FarmerPlot) *entity.FarmerPlot {
	if p == nil {
		return nil
	}
	return &entity.FarmerPlot{
		Id:             p.Id,
		FarmerId:       p.FarmerId,
		AreaHectares:   p.AreaHectares,
		SoilType:       p.SoilType,
		IrrigationType: p.IrrigationType,
		OwnershipType:  p.OwnershipType,
		Village:        p.Village,
		CreatedAt:      p.CreatedAt,
	}
}

func (m *FarmerMapper) CropToEntity(c *model.PlotCrop) *entity.PlotCrop {
	if c == nil {
		return nil
	}
	return &entity.PlotCrop{
		Id:          c.Id,
		PlotId:      c.PlotId,
		FarmerId:    c.FarmerId,
		CropName:    c.CropName,
		Variety:     c.Variety,
		Season:      c.Season,
		GrowthStage: c.GrowthStage,
		CreatedAt:   c.CreatedAt,
	}
}

func (m *FarmerMapper) LogToEntity(l *model.ActivityLog) *entity.ActivityLog {
	if l == nil {
		return nil
	}
	return &entity.ActivityLog{
		Id:        l.Id,
		FarmerId:  l.FarmerId,
		Activity:  l.Activity,
		Details:   l.Details,
		CreatedAt: l.CreatedAt,
	}
}
