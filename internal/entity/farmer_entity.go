package entity

import (
	"time"

	"github.com/google/uuid"
)

// Farmer ids are external identity-provider ids (text), not UUIDs.
type Farmer struct {
	Id                string
	Name              string
	Gender            string
	PrimaryLanguage   string
	Village           string
	District          string
	State             string
	Age               int
	EducationLevel    string
	TotalLandArea     float64
	FarmingExperience float64
	Completed         bool
	CreatedAt         time.Time
	UpdatedAt         *time.Time
}

type FarmerContact struct {
	Id        uuid.UUID
	FarmerId  string
	Phone     string
	Email     string
	Address   string
	CreatedAt time.Time
}

type FarmerPlot struct {
	Id             uuid.UUID
	FarmerId       string
	AreaHectares   float64
	SoilType       string
	IrrigationType string
	OwnershipType  string
	Village        string
	CreatedAt      time.Time
}

type PlotCrop struct {
	Id          uuid.UUID
	PlotId      uuid.UUID
	FarmerId    string
	CropName    string
	Variety     string
	Season      string
	GrowthStage string
	CreatedAt   time.Time
}

type ActivityLog struct {
	Id        uuid.UUID
	FarmerId  string
	Activity  string
	Details   string
	CreatedAt time.Time
}

// FarmerAggregate is the read-only snapshot assembled before matching.
// Logs are ordered by creation time ascending.
type FarmerAggregate struct {
	Farmer  *Farmer
	Contact *FarmerContact
	Plots   []*FarmerPlot
	Crops   []*PlotCrop
	Logs    []*ActivityLog
}

// Empty reports whether the farmer id resolved to no profile.
// Matching must not proceed against an empty aggregate.
func (a *FarmerAggregate) Empty() bool {
	return a == nil || a.Farmer == nil
}
