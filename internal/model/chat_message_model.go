package model

import (
	"time"

	"github.com/google/uuid"
)

type ChatMessage struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Chat          string    `gorm:"type:text;not null"`
	Role          string    `gorm:"type:text;not null"`
	Image         *string   `gorm:"type:text"` // data URI, vision turns only
	ChatSessionId uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
}

func (ChatMessage) TableName() string {
	return "chat_messages"
}
