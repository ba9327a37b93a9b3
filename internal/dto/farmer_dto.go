package dto

import (
	"github.com/TanaySingh02/Farmwise2.0/internal/entity"
)

type FarmerPlotResponse struct {
	AreaHectares   float64 `json:"area_hectares"`
	SoilType       string  `json:"soil_type,omitempty"`
	IrrigationType string  `json:"irrigation_type,omitempty"`
	OwnershipType  string  `json:"ownership_type,omitempty"`
	Village        string  `json:"village,omitempty"`
}

type PlotCropResponse struct {
	CropName    string `json:"crop_name"`
	Variety     string `json:"variety,omitempty"`
	Season      string `json:"season,omitempty"`
	GrowthStage string `json:"growth_stage,omitempty"`
}

type ActivityLogResponse struct {
	Activity string `json:"activity"`
	Details  string `json:"details,omitempty"`
	LoggedAt string `json:"logged_at"`
}

type FarmerProfileResponse struct {
	FarmerId          string                `json:"farmer_id"`
	Name              string                `json:"name"`
	Gender            string                `json:"gender,omitempty"`
	Age               int                   `json:"age,omitempty"`
	Village           string                `json:"village,omitempty"`
	District          string                `json:"district,omitempty"`
	State             string                `json:"state,omitempty"`
	EducationLevel    string                `json:"education_level,omitempty"`
	TotalLandArea     float64               `json:"total_land_area,omitempty"`
	FarmingExperience float64               `json:"farming_experience,omitempty"`
	Phone             string                `json:"phone,omitempty"`
	Plots             []FarmerPlotResponse  `json:"plots"`
	Crops             []PlotCropResponse    `json:"crops"`
	ActivityLogs      []ActivityLogResponse `json:"activity_logs"`
}

// NewFarmerProfileResponse flattens the aggregate into the shape the
// matching loop and API consumers read. Activity logs keep their
// chronological order.
func NewFarmerProfileResponse(aggregate *entity.FarmerAggregate) FarmerProfileResponse {
	resp := FarmerProfileResponse{
		Plots:        make([]FarmerPlotResponse, 0, len(aggregate.Plots)),
		Crops:        make([]PlotCropResponse, 0, len(aggregate.Crops)),
		ActivityLogs: make([]ActivityLogResponse, 0, len(aggregate.Logs)),
	}

	if aggregate.Farmer != nil {
		farmer := aggregate.Farmer
		resp.FarmerId = farmer.Id
		resp.Name = farmer.Name
		resp.Gender = farmer.Gender
		resp.Age = farmer.Age
		resp.Village = farmer.Village
		resp.District = farmer.District
		resp.State = farmer.State
		resp.EducationLevel = farmer.EducationLevel
		resp.TotalLandArea = farmer.TotalLandArea
		resp.FarmingExperience = farmer.FarmingExperience
	}
	if aggregate.Contact != nil {
		resp.Phone = aggregate.Contact.Phone
	}

	for _, plot := range aggregate.Plots {
		resp.Plots = append(resp.Plots, FarmerPlotResponse{
			AreaHectares:   plot.AreaHectares,
			SoilType:       plot.SoilType,
			IrrigationType: plot.IrrigationType,
			OwnershipType:  plot.OwnershipType,
			Village:        plot.Village,
		})
	}
	for _, crop := range aggregate.Crops {
		resp.Crops = append(resp.Crops, PlotCropResponse{
			CropName:    crop.CropName,
			Variety:     crop.Variety,
			Season:      crop.Season,
			GrowthStage: crop.GrowthStage,
		})
	}
	for _, log := range aggregate.Logs {
		resp.ActivityLogs = append(resp.ActivityLogs, ActivityLogResponse{
			Activity: log.Activity,
			Details:  log.Details,
			LoggedAt: log.CreatedAt.Format("2006-01-02"),
		})
	}

	return resp
}
