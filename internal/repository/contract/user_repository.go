package contract

import (
	"context"

	"campus-ai-be/internal/entity"
	"campus-ai-be/internal/repository/specification"

	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	Update(ctx context.Context, user *entity.User) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// AddCredits atomically increments the credit balance. The amount may be
	// negative only for the debit-on-redeem policy; the row constraint keeps
	// the balance non-negative.
	AddCredits(ctx context.Context, userId uuid.UUID, amount int) error
}
