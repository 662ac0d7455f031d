package service

import (
	"context"
	"fmt"
	"time"

	"campus-ai-be/internal/dto"
	"campus-ai-be/internal/entity"
	"campus-ai-be/internal/pkg/logger"
	"campus-ai-be/internal/pkg/mailer"
	"campus-ai-be/internal/repository/specification"
	"campus-ai-be/internal/repository/unitofwork"
	"campus-ai-be/pkg/events"
	pktNats "campus-ai-be/pkg/nats"
	"campus-ai-be/pkg/payout"

	"github.com/google/uuid"
)

type IWalletService interface {
	GetProfile(ctx context.Context, userId uuid.UUID) (*dto.UserProfileResponse, error)
	Redeem(ctx context.Context, userId uuid.UUID, request *dto.RedeemRequest) (*dto.RedeemResponse, error)
	GetReports(ctx context.Context, userId uuid.UUID) ([]*dto.ReportDTO, error)
}

type walletService struct {
	uowFactory unitofwork.RepositoryFactory
	// debitOnRedeem: when false a redemption only records the request and the
	// balance is untouched until the payout side settles it.
	debitOnRedeem  bool
	gateway        payout.Gateway
	emailService   mailer.IEmailService
	eventPublisher *pktNats.Publisher
	logger         logger.ILogger
}

func NewWalletService(
	uowFactory unitofwork.RepositoryFactory,
	debitOnRedeem bool,
	gateway payout.Gateway,
	emailService mailer.IEmailService,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) IWalletService {
	return &walletService{
		uowFactory:     uowFactory,
		debitOnRedeem:  debitOnRedeem,
		gateway:        gateway,
		emailService:   emailService,
		eventPublisher: eventPublisher,
		logger:         log,
	}
}

func (s *walletService) GetProfile(ctx context.Context, userId uuid.UUID) (*dto.UserProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user not found")
	}

	return &dto.UserProfileResponse{
		Id:        user.Id,
		Email:     user.Email,
		FullName:  user.FullName,
		AvatarURL: user.AvatarURL,
		Provider:  string(user.Provider),
		Credits:   user.Credits,
		CreatedAt: user.CreatedAt,
	}, nil
}

// Redeem validates the amount against the live balance and records a pending
// withdrawal. Payout dispatch happens after commit and never rolls the
// request back; a failed disbursement stays pending for manual retry.
func (s *walletService) Redeem(ctx context.Context, userId uuid.UUID, request *dto.RedeemRequest) (*dto.RedeemResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user not found")
	}

	if request.Amount <= 0 {
		return nil, fmt.Errorf("amount must be positive")
	}
	if request.Amount > user.Credits {
		return nil, fmt.Errorf("amount exceeds available credits")
	}

	withdrawal := &entity.WithdrawalRequest{
		Id:            uuid.New(),
		UserEmail:     user.Email,
		BankName:      request.BankName,
		IfscCode:      request.IfscCode,
		AccountNumber: request.AccountNumber,
		Amount:        request.Amount,
		Status:        entity.WithdrawalStatusPending,
		CreatedAt:     time.Now(),
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.WithdrawalRepository().Create(ctx, withdrawal); err != nil {
		return nil, err
	}

	if s.debitOnRedeem {
		if err := uow.UserRepository().AddCredits(ctx, user.Id, -request.Amount); err != nil {
			return nil, err
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	balance := user.Credits
	if s.debitOnRedeem {
		balance -= request.Amount
	}

	s.logger.Info("WalletService", "Withdrawal recorded", map[string]interface{}{
		"withdrawal_id": withdrawal.Id,
		"user_id":       user.Id,
		"amount":        request.Amount,
	})

	s.dispatchPayout(ctx, user, withdrawal)

	return &dto.RedeemResponse{
		WithdrawalId: withdrawal.Id,
		Amount:       withdrawal.Amount,
		Status:       string(withdrawal.Status),
		Credits:      balance,
	}, nil
}

func (s *walletService) GetReports(ctx context.Context, userId uuid.UUID) ([]*dto.ReportDTO, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user not found")
	}

	reports, err := uow.InfraReportRepository().FindAll(ctx,
		specification.ByReporterEmail{Email: user.Email},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	response := make([]*dto.ReportDTO, 0, len(reports))
	for _, r := range reports {
		response = append(response, &dto.ReportDTO{
			Id:          r.Id,
			Description: r.Description,
			Status:      string(r.Status),
			Count:       r.Count,
			CreatedAt:   r.CreatedAt,
		})
	}

	return response, nil
}

func (s *walletService) dispatchPayout(ctx context.Context, user *entity.User, withdrawal *entity.WithdrawalRequest) {
	if s.gateway != nil {
		ref, err := s.gateway.Disburse(&payout.DisburseRequest{
			BeneficiaryName:    user.FullName,
			BeneficiaryAccount: withdrawal.AccountNumber,
			BeneficiaryBank:    withdrawal.BankName,
			BeneficiaryEmail:   user.Email,
			Amount:             withdrawal.Amount,
			Notes:              fmt.Sprintf("Campus credit redemption %s", withdrawal.Id),
		})
		if err != nil {
			s.logger.Warn("WalletService", "Payout dispatch failed, withdrawal stays pending", map[string]interface{}{
				"withdrawal_id": withdrawal.Id,
				"error":         err.Error(),
			})
		} else {
			s.logger.Info("WalletService", "Payout dispatched", map[string]interface{}{
				"withdrawal_id": withdrawal.Id,
				"reference_no":  ref,
			})
		}
	}

	if s.emailService != nil {
		if err := s.emailService.SendWithdrawalReceipt(user.Email, withdrawal.BankName, withdrawal.AccountNumber, withdrawal.Amount); err != nil {
			s.logger.Warn("WalletService", "Failed to send withdrawal receipt", map[string]interface{}{"error": err.Error()})
		}
	}

	if s.eventPublisher != nil {
		if err := s.eventPublisher.Publish(ctx, events.NewWithdrawalRequested(withdrawal.Id.String(), user.Id.String(), withdrawal.Amount)); err != nil {
			s.logger.Warn("WalletService", "Failed to publish withdrawal event", map[string]interface{}{"error": err.Error()})
		}
	}
}
