package model

import (
	"time"

	"github.com/google/uuid"
)

type SchemeMatch struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	FarmerId   string    `gorm:"type:text;not null;index"`
	SchemeId   uuid.UUID `gorm:"type:uuid;not null;index"`
	SchemeName string    `gorm:"type:varchar(512)"`
	Reason     string    `gorm:"type:text;not null"`
	IsEligible bool      `gorm:"default:true;not null"`
	CreatedAt  time.Time `gorm:"autoCreateTime;index"`
}

func (SchemeMatch) TableName() string {
	return "scheme_matches"
}
