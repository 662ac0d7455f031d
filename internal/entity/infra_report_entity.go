package entity

import (
	"time"

	"github.com/google/uuid"
)

type ReportStatus string

const (
	ReportStatusPending  ReportStatus = "pending"
	ReportStatusVerified ReportStatus = "verified"
)

// InfraReport is created exactly when a vision reply carries the damage
// marker. Status starts pending; advancing it is a maintenance-side concern.
type InfraReport struct {
	Id            uuid.UUID
	Description   string
	ImageUrl      string
	Status        ReportStatus
	ReporterEmail string
	Count         int
	CreatedAt     time.Time
}
