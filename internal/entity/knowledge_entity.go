package entity

import (
	"time"

	"github.com/google/uuid"
)

type KnowledgeCategory string

const (
	KnowledgeCategoryHoliday   KnowledgeCategory = "holiday"
	KnowledgeCategoryForm      KnowledgeCategory = "form"
	KnowledgeCategoryPolicy    KnowledgeCategory = "policy"
	KnowledgeCategoryTimetable KnowledgeCategory = "timetable"
)

// KnowledgeItem is immutable once loaded. Static catalog items carry their
// compiled-in ids; items expanded from a remote document use "<docId>_<index>".
type KnowledgeItem struct {
	Id       string
	Category KnowledgeCategory
	Title    string
	Content  string
	Link     string
}

// RagDocument is the metadata record for a remotely hosted knowledge payload.
// ActivePath points at a JSON blob of shape {"content": ["...", ...]}.
type RagDocument struct {
	Id         uuid.UUID
	Title      string
	Category   KnowledgeCategory
	ActivePath string
	Enabled    bool
	Tags       map[string]interface{}
	CreatedAt  time.Time
}
