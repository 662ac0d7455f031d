package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type RagDocument struct {
	Id         uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title      string         `gorm:"type:text;not null"`
	Category   string         `gorm:"type:text;not null"`
	ActivePath string         `gorm:"type:text;not null;uniqueIndex"`
	Enabled    bool           `gorm:"not null;default:false;index"`
	Tags       datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt  time.Time      `gorm:"autoCreateTime"`
}

func (RagDocument) TableName() string {
	return "rag_documents"
}
