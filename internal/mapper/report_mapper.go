package mapper

import (
	"campus-ai-be/internal/entity"
	"campus-ai-be/internal/model"
)

type ReportMapper struct{}

func NewReportMapper() *ReportMapper {
	return &ReportMapper{}
}

func (m *ReportMapper) ReportToEntity(r *model.InfraReport) *entity.InfraReport {
	if r == nil {
		return nil
	}

	return &entity.InfraReport{
		Id:            r.Id,
		Description:   r.Description,
		ImageUrl:      r.ImageUrl,
		Status:        entity.ReportStatus(r.Status),
		ReporterEmail: r.ReporterEmail,
		Count:         r.Count,
		CreatedAt:     r.CreatedAt,
	}
}

func (m *ReportMapper) ReportToModel(r *entity.InfraReport) *model.InfraReport {
	if r == nil {
		return nil
	}

	return &model.InfraReport{
		Id:            r.Id,
		Description:   r.Description,
		ImageUrl:      r.ImageUrl,
		Status:        string(r.Status),
		ReporterEmail: r.ReporterEmail,
		Count:         r.Count,
		CreatedAt:     r.CreatedAt,
	}
}

func (m *ReportMapper) WithdrawalToEntity(w *model.WithdrawalRequest) *entity.WithdrawalRequest {
	if w == nil {
		return nil
	}

	return &entity.WithdrawalRequest{
		Id:            w.Id,
		UserEmail:     w.UserEmail,
		BankName:      w.BankName,
		IfscCode:      w.IfscCode,
		AccountNumber: w.AccountNumber,
		Amount:        w.Amount,
		Status:        entity.WithdrawalStatus(w.Status),
		CreatedAt:     w.CreatedAt,
	}
}

func (m *ReportMapper) WithdrawalToModel(w *entity.WithdrawalRequest) *model.WithdrawalRequest {
	if w == nil {
		return nil
	}

	return &model.WithdrawalRequest{
		Id:            w.Id,
		UserEmail:     w.UserEmail,
		BankName:      w.BankName,
		IfscCode:      w.IfscCode,
		AccountNumber: w.AccountNumber,
		Amount:        w.Amount,
		Status:        string(w.Status),
		CreatedAt:     w.CreatedAt,
	}
}
