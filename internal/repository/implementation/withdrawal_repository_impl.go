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

type WithdrawalRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ReportMapper
}

func NewWithdrawalRepository(db *gorm.DB) contract.WithdrawalRepository {
	return &WithdrawalRepositoryImpl{
		db:     db,
		mapper: mapper.NewReportMapper(),
	}
}

func (r *WithdrawalRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *WithdrawalRepositoryImpl) Create(ctx context.Context, request *entity.WithdrawalRequest) error {
	m := r.mapper.WithdrawalToModel(request)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*request = *r.mapper.WithdrawalToEntity(m)
	return nil
}

func (r *WithdrawalRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.WithdrawalRequest, error) {
	var models []*model.WithdrawalRequest
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.WithdrawalRequest, len(models))
	for i, m := range models {
		entities[i] = r.mapper.WithdrawalToEntity(m)
	}
	return entities, nil
}

func (r *WithdrawalRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.WithdrawalRequest{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
