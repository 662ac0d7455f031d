package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserOwnedBy scopes a query to rows owned by a user
type UserOwnedBy struct {
	UserID uuid.UUID
}

func (s UserOwnedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserID)
}

// ByChatSessionID scopes messages to one session
type ByChatSessionID struct {
	ChatSessionID uuid.UUID
}

func (s ByChatSessionID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("chat_session_id = ?", s.ChatSessionID)
}

// ByReporterEmail scopes reports/withdrawals to one identity
type ByReporterEmail struct {
	Email string
}

func (s ByReporterEmail) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("reporter_email = ?", s.Email)
}

// EnabledOnly keeps rows whose enabled flag is set (rag documents)
type EnabledOnly struct{}

func (s EnabledOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("enabled = ?", true)
}
