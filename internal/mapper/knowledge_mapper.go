package mapper

import (
	"encoding/json"

	"campus-ai-be/internal/entity"
	"campus-ai-be/internal/model"

	"gorm.io/datatypes"
)

type KnowledgeMapper struct{}

func NewKnowledgeMapper() *KnowledgeMapper {
	return &KnowledgeMapper{}
}

func (m *KnowledgeMapper) RagDocumentToEntity(d *model.RagDocument) *entity.RagDocument {
	if d == nil {
		return nil
	}

	var tags map[string]interface{}
	if len(d.Tags) > 0 {
		// Malformed tags are tolerated; the document is still usable without them.
		_ = json.Unmarshal(d.Tags, &tags)
	}

	return &entity.RagDocument{
		Id:         d.Id,
		Title:      d.Title,
		Category:   entity.KnowledgeCategory(d.Category),
		ActivePath: d.ActivePath,
		Enabled:    d.Enabled,
		Tags:       tags,
		CreatedAt:  d.CreatedAt,
	}
}

func (m *KnowledgeMapper) RagDocumentToModel(d *entity.RagDocument) *model.RagDocument {
	if d == nil {
		return nil
	}

	var tags datatypes.JSON
	if d.Tags != nil {
		if raw, err := json.Marshal(d.Tags); err == nil {
			tags = raw
		}
	}

	return &model.RagDocument{
		Id:         d.Id,
		Title:      d.Title,
		Category:   string(d.Category),
		ActivePath: d.ActivePath,
		Enabled:    d.Enabled,
		Tags:       tags,
		CreatedAt:  d.CreatedAt,
	}
}
