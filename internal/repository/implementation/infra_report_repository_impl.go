package implementation

import (
	"context"

	"campus-ai-be/internal/entity"
	"campus-ai-be/internal/mapper"
	"campus-ai-be/internal/model"
	"campus-ai-be/internal/repository/contract"
	"campus-ai-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InfraReportRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ReportMapper
}

func NewInfraReportRepository(db *gorm.DB) contract.InfraReportRepository {
	return &InfraReportRepositoryImpl{
		db:     db,
		mapper: mapper.NewReportMapper(),
	}
}

func (r *InfraReportRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *InfraReportRepositoryImpl) Create(ctx context.Context, report *entity.InfraReport) error {
	m := r.mapper.ReportToModel(report)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*report = *r.mapper.ReportToEntity(m)
	return nil
}

func (r *InfraReportRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.InfraReport, error) {
	var m model.InfraReport
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ReportToEntity(&m), nil
}

func (r *InfraReportRepositoryImpl) IncrementCount(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&model.InfraReport{}).
		Where("id = ?", id).
		UpdateColumn("count", gorm.Expr("count + 1")).Error
}

func (r *InfraReportRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.InfraReport, error) {
	var models []*model.InfraReport
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.InfraReport, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ReportToEntity(m)
	}
	return entities, nil
}

func (r *InfraReportRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.InfraReport{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
