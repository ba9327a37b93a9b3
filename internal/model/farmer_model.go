package model

import (
	"time"

	"github.com/google/uuid"
)

type Farmer struct {
	Id                string    `gorm:"type:text;primaryKey"`
	Name              string    `gorm:"type:varchar(255)"`
	Gender            string    `gorm:"type:varchar(1)"`
	PrimaryLanguage   string    `gorm:"type:varchar(64)"`
	Village           string    `gorm:"type:varchar(255)"`
	District          string    `gorm:"type:varchar(255)"`
	State             string    `gorm:"type:varchar(255);index"`
	Age               int
	EducationLevel    string    `gorm:"type:varchar(128)"`
	TotalLandArea     float64   `gorm:"type:decimal"`
	FarmingExperience float64   `gorm:"type:decimal"`
	Completed         bool      `gorm:"default:false;not null"`
	CreatedAt         time.Time `gorm:"autoCreateTime"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime"`
}

func (Farmer) TableName() string {
	return "farmers"
}

type FarmerContact struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	FarmerId  string    `gorm:"type:text;not null;index"`
	Phone     string    `gorm:"type:varchar(32)"`
	Email     string    `gorm:"type:varchar(255)"`
	Address   string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (FarmerContact) TableName() string {
	return "farmer_contacts"
}

type FarmerPlot struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	FarmerId       string    `gorm:"type:text;not null;index"`
	AreaHectares   float64   `gorm:"type:decimal"`
	SoilType       string    `gorm:"type:varchar(128)"`
	IrrigationType string    `gorm:"type:varchar(128)"`
	OwnershipType  string    `gorm:"type:varchar(128)"`
	Village        string    `gorm:"type:varchar(255)"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
}

func (FarmerPlot) TableName() string {
	return "farmer_plots"
}

type PlotCrop struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PlotId      uuid.UUID `gorm:"type:uuid;not null;index"`
	FarmerId    string    `gorm:"type:text;not null;index"`
	CropName    string    `gorm:"type:varchar(255)"`
	Variety     string    `gorm:"type:varchar(255)"`
	Season      string    `gorm:"type:varchar(64)"`
	GrowthStage string    `gorm:"type:varchar(128)"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (PlotCrop) TableName() string {
	return "plot_crops"
}

type ActivityLog struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	FarmerId  string    `gorm:"type:text;not null;index"`
	Activity  string    `gorm:"type:varchar(255)"`
	Details   string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"autoCreateTime;index"`
}

func (ActivityLog) TableName() string {
	return "activity_logs"
}
