package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Scheme struct {
	Id                  uuid.UUID                    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SchemeName          string                       `gorm:"type:varchar(512);not null;index"`
	Ministry            string                       `gorm:"type:varchar(512);not null;index"`
	State               string                       `gorm:"type:varchar(255);index"`
	Objective           string                       `gorm:"type:text;not null"`
	Benefit             string                       `gorm:"type:text"`
	EligibilityCriteria datatypes.JSONSlice[string]  `gorm:"not null"`
	Exclusions          datatypes.JSONSlice[string]
	ApplicationProcess  string                       `gorm:"type:text"`
	DocumentsRequired   datatypes.JSONSlice[string]
	OfficialWebsite     string                       `gorm:"type:varchar(1024)"`
	LastUpdated         string                       `gorm:"type:varchar(64)"`
	Features            datatypes.JSONSlice[string]
	Targets             datatypes.JSONSlice[string]
	Components          datatypes.JSONSlice[string]
	CreatedAt           time.Time                    `gorm:"autoCreateTime"`
	UpdatedAt           time.Time                    `gorm:"autoUpdateTime"`
}

func (Scheme) TableName() string {
	return "schemes"
}
