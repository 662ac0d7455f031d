package integration

import (
	"context"
	"fmt"
	"log"
	"os"
	"testing"

	"campus-ai-be/internal/entity"
	"campus-ai-be/internal/repository/specification"
	"campus-ai-be/internal/repository/unitofwork"
	"campus-ai-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func connect(t *testing.T) unitofwork.RepositoryFactory {
	t.Helper()

	if err := godotenv.Load("../../.env"); err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	return unitofwork.NewRepositoryFactory(gormDB)
}

func TestGormConnection(t *testing.T) {
	factory := connect(t)
	uow := factory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.UserRepository())
	assert.NotNil(t, uow.ChatSessionRepository())
	assert.NotNil(t, uow.ChatMessageRepository())
	assert.NotNil(t, uow.InfraReportRepository())
	assert.NotNil(t, uow.WithdrawalRepository())
	assert.NotNil(t, uow.RagDocumentRepository())

	t.Run("Check User Repository", func(t *testing.T) {
		count, err := uow.UserRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("User count: %d", count)
	})
}

func TestReportedSessionLifecycle(t *testing.T) {
	factory := connect(t)
	ctx := context.Background()
	uow := factory.NewUnitOfWork(ctx)

	require.NoError(t, uow.Begin(ctx))
	defer uow.Rollback()

	email := fmt.Sprintf("it-%s@guest.local", uuid.NewString())
	user := &entity.User{
		Id:       uuid.New(),
		Email:    email,
		FullName: "Integration Guest",
		Credits:  50,
		Provider: entity.UserProviderGuest,
	}
	require.NoError(t, uow.UserRepository().Create(ctx, user))

	session := &entity.ChatSession{
		Id:     uuid.New(),
		UserId: user.Id,
		Title:  "New conversation",
	}
	require.NoError(t, uow.ChatSessionRepository().Create(ctx, session))

	msg := &entity.ChatMessage{
		Id:            uuid.New(),
		ChatSessionId: session.Id,
		Role:          "user",
		Chat:          "broken bench near the library",
	}
	require.NoError(t, uow.ChatMessageRepository().Create(ctx, msg))

	report := &entity.InfraReport{
		Id:            uuid.New(),
		Description:   "broken bench near the library",
		Status:        entity.ReportStatusPending,
		ReporterEmail: email,
		Count:         1,
	}
	require.NoError(t, uow.InfraReportRepository().Create(ctx, report))
	require.NoError(t, uow.UserRepository().AddCredits(ctx, user.Id, 10))

	found, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: email})
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, 60, found.Credits)

	dup, err := uow.InfraReportRepository().FindOne(ctx,
		specification.ByReporterEmail{Email: email},
		specification.Filter("description", "broken bench near the library"),
	)
	require.NoError(t, err)
	require.NotNil(t, dup)

	require.NoError(t, uow.InfraReportRepository().IncrementCount(ctx, dup.Id))

	bumped, err := uow.InfraReportRepository().FindOne(ctx, specification.ByID{ID: dup.Id})
	require.NoError(t, err)
	require.NotNil(t, bumped)
	assert.Equal(t, 2, bumped.Count)
}
