package contract

import (
	"context"

	"campus-ai-be/internal/entity"
	"campus-ai-be/internal/repository/specification"
)

type RagDocumentRepository interface {
	Create(ctx context.Context, doc *entity.RagDocument) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.RagDocument, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
