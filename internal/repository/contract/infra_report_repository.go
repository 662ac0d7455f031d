package contract

import (
	"context"

	"campus-ai-be/internal/entity"
	"campus-ai-be/internal/repository/specification"

	"github.com/google/uuid"
)

type InfraReportRepository interface {
	Create(ctx context.Context, report *entity.InfraReport) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.InfraReport, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.InfraReport, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// IncrementCount bumps the re-report counter on an existing report.
	IncrementCount(ctx context.Context, id uuid.UUID) error
}
