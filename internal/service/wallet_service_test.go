package service

import (
	"context"
	"testing"

	"campus-ai-be/internal/dto"
	"campus-ai-be/internal/entity"
	"campus-ai-be/internal/repository/specification"
	"campus-ai-be/pkg/payout"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	user    *entity.User
	findErr error
	created []*entity.User
	updated []*entity.User
	credits map[uuid.UUID]int
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	r.created = append(r.created, u)
	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, u *entity.User) error {
	r.updated = append(r.updated, u)
	return nil
}

func (r *fakeUserRepo) FindOne(context.Context, ...specification.Specification) (*entity.User, error) {
	return r.user, r.findErr
}

func (r *fakeUserRepo) FindAll(context.Context, ...specification.Specification) ([]*entity.User, error) {
	if r.user == nil {
		return nil, nil
	}
	return []*entity.User{r.user}, nil
}

func (r *fakeUserRepo) Count(context.Context, ...specification.Specification) (int64, error) {
	return 0, nil
}

func (r *fakeUserRepo) AddCredits(_ context.Context, userId uuid.UUID, amount int) error {
	if r.credits == nil {
		r.credits = map[uuid.UUID]int{}
	}
	r.credits[userId] += amount
	return nil
}

type fakeWithdrawalRepo struct {
	created []*entity.WithdrawalRequest
}

func (r *fakeWithdrawalRepo) Create(_ context.Context, req *entity.WithdrawalRequest) error {
	r.created = append(r.created, req)
	return nil
}

func (r *fakeWithdrawalRepo) FindAll(context.Context, ...specification.Specification) ([]*entity.WithdrawalRequest, error) {
	return r.created, nil
}

func (r *fakeWithdrawalRepo) Count(context.Context, ...specification.Specification) (int64, error) {
	return int64(len(r.created)), nil
}

type fakeGateway struct {
	requests []*payout.DisburseRequest
}

func (g *fakeGateway) Disburse(req *payout.DisburseRequest) (string, error) {
	g.requests = append(g.requests, req)
	return "ref-123", nil
}

func walletFixture(user *entity.User, debitOnRedeem bool) (IWalletService, *fakeUserRepo, *fakeWithdrawalRepo, *fakeGateway) {
	userRepo := &fakeUserRepo{user: user}
	withdrawalRepo := &fakeWithdrawalRepo{}
	gateway := &fakeGateway{}
	uow := &fakeUnitOfWork{userRepo: userRepo, withdrawalRepo: withdrawalRepo}
	svc := NewWalletService(&fakeFactory{uow: uow}, debitOnRedeem, gateway, nil, nil, nopLogger{})
	return svc, userRepo, withdrawalRepo, gateway
}

func TestRedeem_RecordsPendingWithdrawal(t *testing.T) {
	user := &entity.User{Id: uuid.New(), Email: "student@somaiya.edu", FullName: "A Student", Credits: 120}
	svc, userRepo, withdrawalRepo, gateway := walletFixture(user, false)

	res, err := svc.Redeem(context.Background(), user.Id, &dto.RedeemRequest{
		Amount:        100,
		BankName:      "bni",
		IfscCode:      "BNI0001",
		AccountNumber: "1234567890",
	})
	require.NoError(t, err)

	assert.Equal(t, "pending", res.Status)
	// Debit-on-redeem is off: balance untouched.
	assert.Equal(t, 120, res.Credits)
	assert.Empty(t, userRepo.credits)

	require.Len(t, withdrawalRepo.created, 1)
	assert.Equal(t, user.Email, withdrawalRepo.created[0].UserEmail)
	assert.Equal(t, entity.WithdrawalStatusPending, withdrawalRepo.created[0].Status)

	require.Len(t, gateway.requests, 1)
	assert.Equal(t, 100, gateway.requests[0].Amount)
	assert.Equal(t, "1234567890", gateway.requests[0].BeneficiaryAccount)
}

func TestRedeem_DebitPolicyReducesBalance(t *testing.T) {
	user := &entity.User{Id: uuid.New(), Email: "student@somaiya.edu", Credits: 120}
	svc, userRepo, _, _ := walletFixture(user, true)

	res, err := svc.Redeem(context.Background(), user.Id, &dto.RedeemRequest{
		Amount:        50,
		BankName:      "bni",
		IfscCode:      "BNI0001",
		AccountNumber: "1234567890",
	})
	require.NoError(t, err)

	assert.Equal(t, 70, res.Credits)
	assert.Equal(t, -50, userRepo.credits[user.Id])
}

func TestRedeem_RejectsInvalidAmounts(t *testing.T) {
	user := &entity.User{Id: uuid.New(), Email: "student@somaiya.edu", Credits: 40}

	cases := []struct {
		name   string
		amount int
	}{
		{"zero", 0},
		{"negative", -10},
		{"exceeds balance", 41},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, _, withdrawalRepo, gateway := walletFixture(user, false)

			_, err := svc.Redeem(context.Background(), user.Id, &dto.RedeemRequest{
				Amount:        tc.amount,
				BankName:      "bni",
				IfscCode:      "BNI0001",
				AccountNumber: "1234567890",
			})
			require.Error(t, err)
			assert.Empty(t, withdrawalRepo.created)
			assert.Empty(t, gateway.requests)
		})
	}
}

func TestRedeem_AllowsFullBalance(t *testing.T) {
	user := &entity.User{Id: uuid.New(), Email: "student@somaiya.edu", Credits: 40}
	svc, _, withdrawalRepo, _ := walletFixture(user, false)

	res, err := svc.Redeem(context.Background(), user.Id, &dto.RedeemRequest{
		Amount:        40,
		BankName:      "bni",
		IfscCode:      "BNI0001",
		AccountNumber: "1234567890",
	})
	require.NoError(t, err)
	assert.Equal(t, 40, res.Amount)
	assert.Len(t, withdrawalRepo.created, 1)
}

func TestGetReports_ScopedToReporterEmail(t *testing.T) {
	user := &entity.User{Id: uuid.New(), Email: "student@somaiya.edu", Credits: 10}
	reportRepo := &fakeReportRepo{reports: []*entity.InfraReport{
		{Id: uuid.New(), Description: "broken fan", Status: entity.ReportStatusPending, Count: 2, ReporterEmail: user.Email},
	}}
	uow := &fakeUnitOfWork{userRepo: &fakeUserRepo{user: user}, reportRepo: reportRepo}
	svc := NewWalletService(&fakeFactory{uow: uow}, false, nil, nil, nil, nopLogger{})

	reports, err := svc.GetReports(context.Background(), user.Id)
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, "broken fan", reports[0].Description)
	assert.Equal(t, 2, reports[0].Count)
}

type fakeReportRepo struct {
	reports []*entity.InfraReport
}

func (r *fakeReportRepo) Create(_ context.Context, report *entity.InfraReport) error {
	r.reports = append(r.reports, report)
	return nil
}

func (r *fakeReportRepo) FindOne(context.Context, ...specification.Specification) (*entity.InfraReport, error) {
	if len(r.reports) == 0 {
		return nil, nil
	}
	// detached copy, like a fresh query result
	cp := *r.reports[0]
	return &cp, nil
}

func (r *fakeReportRepo) FindAll(context.Context, ...specification.Specification) ([]*entity.InfraReport, error) {
	return r.reports, nil
}

func (r *fakeReportRepo) Count(context.Context, ...specification.Specification) (int64, error) {
	return int64(len(r.reports)), nil
}

func (r *fakeReportRepo) IncrementCount(_ context.Context, id uuid.UUID) error {
	for _, rep := range r.reports {
		if rep.Id == id {
			rep.Count++
		}
	}
	return nil
}
