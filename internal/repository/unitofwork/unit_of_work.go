package unitofwork

import (
	"context"

	"campus-ai-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	ChatSessionRepository() contract.ChatSessionRepository
	ChatMessageRepository() contract.ChatMessageRepository
	InfraReportRepository() contract.InfraReportRepository
	WithdrawalRepository() contract.WithdrawalRepository
	RagDocumentRepository() contract.RagDocumentRepository
}
