package implementation

import (
	"context"

	"campus-ai-be/internal/entity"
	"campus-ai-be/internal/mapper"
	"campus-ai-be/internal/model"
	"campus-ai-be/internal/repository/contract"
	"campus-ai-be/internal/repository/specification"

	"gorm.io/gorm"
)

type RagDocumentRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.KnowledgeMapper
}

func NewRagDocumentRepository(db *gorm.DB) contract.RagDocumentRepository {
	return &RagDocumentRepositoryImpl{
		db:     db,
		mapper: mapper.NewKnowledgeMapper(),
	}
}

func (r *RagDocumentRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *RagDocumentRepositoryImpl) Create(ctx context.Context, doc *entity.RagDocument) error {
	m := r.mapper.RagDocumentToModel(doc)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*doc = *r.mapper.RagDocumentToEntity(m)
	return nil
}

func (r *RagDocumentRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.RagDocument, error) {
	var models []*model.RagDocument
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.RagDocument, len(models))
	for i, m := range models {
		entities[i] = r.mapper.RagDocumentToEntity(m)
	}
	return entities, nil
}

func (r *RagDocumentRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.RagDocument{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
