package contract

import (
	"context"

	"campus-ai-be/internal/entity"
	"campus-ai-be/internal/repository/specification"
)

type WithdrawalRepository interface {
	Create(ctx context.Context, request *entity.WithdrawalRequest) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.WithdrawalRequest, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
