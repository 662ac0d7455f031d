package model

import (
	"time"

	"github.com/google/uuid"
)

type InfraReport struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Description   string    `gorm:"type:text;not null"`
	ImageUrl      string    `gorm:"type:text;not null"`
	Status        string    `gorm:"type:text;not null;default:'pending'"`
	ReporterEmail string    `gorm:"type:text;not null;index"`
	Count         int       `gorm:"not null;default:1"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
}

func (InfraReport) TableName() string {
	return "infra_reports"
}
