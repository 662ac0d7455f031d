package dto

import "github.com/google/uuid"

// ReportAlertMessage travels over the in-process bus from the assistant to
// the consumer that emails the infrastructure team.
type ReportAlertMessage struct {
	ReportId      uuid.UUID `json:"report_id"`
	ReporterEmail string    `json:"reporter_email"`
	Description   string    `json:"description"`
	Count         int       `json:"count"`
}
