package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"campus-ai-be/internal/constant"
	"campus-ai-be/internal/dto"
	"campus-ai-be/internal/entity"
	"campus-ai-be/internal/repository/memory"
	"campus-ai-be/internal/repository/specification"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSessionRepo struct {
	session *entity.ChatSession
	updated []*entity.ChatSession
	touched []uuid.UUID
	deleted []uuid.UUID
}

func (r *fakeSessionRepo) Create(_ context.Context, s *entity.ChatSession) error {
	r.session = s
	return nil
}

func (r *fakeSessionRepo) Update(_ context.Context, s *entity.ChatSession) error {
	r.updated = append(r.updated, s)
	return nil
}

func (r *fakeSessionRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.deleted = append(r.deleted, id)
	return nil
}

func (r *fakeSessionRepo) DeleteAllByUserId(context.Context, uuid.UUID) error { return nil }

func (r *fakeSessionRepo) FindOne(context.Context, ...specification.Specification) (*entity.ChatSession, error) {
	return r.session, nil
}

func (r *fakeSessionRepo) FindAll(context.Context, ...specification.Specification) ([]*entity.ChatSession, error) {
	if r.session == nil {
		return nil, nil
	}
	return []*entity.ChatSession{r.session}, nil
}

func (r *fakeSessionRepo) Count(context.Context, ...specification.Specification) (int64, error) {
	return 0, nil
}

func (r *fakeSessionRepo) Touch(_ context.Context, id uuid.UUID) error {
	r.touched = append(r.touched, id)
	return nil
}

type fakeMessageRepo struct {
	messages []*entity.ChatMessage
}

func (r *fakeMessageRepo) Create(_ context.Context, m *entity.ChatMessage) error {
	r.messages = append(r.messages, m)
	return nil
}

func (r *fakeMessageRepo) FindAll(context.Context, ...specification.Specification) ([]*entity.ChatMessage, error) {
	return r.messages, nil
}

func (r *fakeMessageRepo) Count(context.Context, ...specification.Specification) (int64, error) {
	return int64(len(r.messages)), nil
}

func (r *fakeMessageRepo) DeleteByChatSessionId(context.Context, uuid.UUID) error {
	r.messages = nil
	return nil
}

type fakeProvider struct {
	textReply   string
	textErr     error
	visionReply string
	visionErr   error
}

func (p *fakeProvider) Generate(context.Context, string, string) (string, error) {
	return p.textReply, p.textErr
}

func (p *fakeProvider) AnalyzeImage(context.Context, string, string) (string, error) {
	return p.visionReply, p.visionErr
}

type fakeKnowledge struct{}

func (fakeKnowledge) GetContext(context.Context) (*dto.KnowledgeContextResponse, error) {
	return &dto.KnowledgeContextResponse{Source: "base"}, nil
}

func (fakeKnowledge) RenderedContext(context.Context) (string, error) {
	return "[POLICY] Hostel curfew: 11pm", nil
}

type fakeNotifier struct {
	pushes []int
}

func (n *fakeNotifier) NotifyCredits(_ uuid.UUID, credits int, _ string) {
	n.pushes = append(n.pushes, credits)
}

type assistantFixture struct {
	svc         IAssistantService
	user        *entity.User
	session     *entity.ChatSession
	sessionRepo *fakeSessionRepo
	messageRepo *fakeMessageRepo
	reportRepo  *fakeReportRepo
	userRepo    *fakeUserRepo
	notifier    *fakeNotifier
	guard       *memory.TurnGuard
}

func newAssistantFixture(provider *fakeProvider) *assistantFixture {
	user := &entity.User{Id: uuid.New(), Email: "student@somaiya.edu", FullName: "A Student", Credits: 30}
	session := &entity.ChatSession{Id: uuid.New(), UserId: user.Id, Title: constant.DefaultSessionTitle}

	f := &assistantFixture{
		user:        user,
		session:     session,
		sessionRepo: &fakeSessionRepo{session: session},
		messageRepo: &fakeMessageRepo{},
		reportRepo:  &fakeReportRepo{},
		userRepo:    &fakeUserRepo{user: user},
		notifier:    &fakeNotifier{},
		guard:       memory.NewTurnGuard(),
	}

	uow := &fakeUnitOfWork{
		userRepo:    f.userRepo,
		sessionRepo: f.sessionRepo,
		messageRepo: f.messageRepo,
		reportRepo:  f.reportRepo,
	}
	f.svc = NewAssistantService(&fakeFactory{uow: uow}, provider, fakeKnowledge{}, f.guard, nil, nil, f.notifier, nopLogger{})
	return f
}

func TestCreateSession_SeedsWelcomeTurn(t *testing.T) {
	f := newAssistantFixture(&fakeProvider{})

	res, err := f.svc.CreateSession(context.Background(), f.user.Id)
	require.NoError(t, err)

	require.NotNil(t, res.Welcome)
	// The welcome greets the student by their stored name.
	assert.Contains(t, res.Welcome.Chat, "Hello A Student.")
	assert.Contains(t, res.Welcome.Chat, "Somaiya Campus AI Assistant")
	assert.Equal(t, constant.ChatMessageRoleModel, res.Welcome.Role)
	require.Len(t, f.messageRepo.messages, 1)
}

func TestCreateSession_NamelessUserGetsFallbackGreeting(t *testing.T) {
	f := newAssistantFixture(&fakeProvider{})
	f.user.FullName = "  "

	res, err := f.svc.CreateSession(context.Background(), f.user.Id)
	require.NoError(t, err)

	assert.Contains(t, res.Welcome.Chat, "Hello there.")
}

func TestSendChat_TextTurnGroundsAndTitles(t *testing.T) {
	f := newAssistantFixture(&fakeProvider{textReply: "The hostel curfew is 11pm."})

	res, err := f.svc.SendChat(context.Background(), f.user.Id, &dto.SendChatRequest{
		ChatSessionId: f.session.Id,
		Chat:          "what time is hostel curfew?",
	})
	require.NoError(t, err)

	assert.Equal(t, "rag", res.Mode)
	assert.Equal(t, "The hostel curfew is 11pm.", res.Reply.Chat)
	assert.Equal(t, 0, res.CreditsAwarded)
	assert.Equal(t, 30, res.Credits)

	// First turn renames the session from the placeholder title.
	require.Len(t, f.sessionRepo.updated, 1)
	assert.Equal(t, "what time is hostel curfew?", f.session.Title)

	// user message + reply persisted, session touched, no report side effects
	assert.Len(t, f.messageRepo.messages, 2)
	assert.Len(t, f.sessionRepo.touched, 1)
	assert.Empty(t, f.reportRepo.reports)
	assert.Empty(t, f.notifier.pushes)
}

func TestSendChat_TextInferenceFailureFallsBack(t *testing.T) {
	f := newAssistantFixture(&fakeProvider{textErr: errors.New("deadline exceeded")})

	res, err := f.svc.SendChat(context.Background(), f.user.Id, &dto.SendChatRequest{
		ChatSessionId: f.session.Id,
		Chat:          "anything",
	})
	require.NoError(t, err)

	assert.Equal(t, constant.TextFallbackReply, res.Reply.Chat)
	// The turn still completes: both sides of the exchange are stored.
	assert.Len(t, f.messageRepo.messages, 2)
}

func TestSendChat_EmptyReplyFallsBack(t *testing.T) {
	f := newAssistantFixture(&fakeProvider{textReply: "   "})

	res, err := f.svc.SendChat(context.Background(), f.user.Id, &dto.SendChatRequest{
		ChatSessionId: f.session.Id,
		Chat:          "subjects for sem 9?",
	})
	require.NoError(t, err)
	assert.Equal(t, constant.EmptyReplyFallback, res.Reply.Chat)
}

func TestSendChat_ConfirmedDamageAwardsCredits(t *testing.T) {
	image := "data:image/jpeg;base64,AAAA"
	f := newAssistantFixture(&fakeProvider{
		visionReply: "CONFIRMED_DAMAGE: broken window latch in room B-204.",
	})

	res, err := f.svc.SendChat(context.Background(), f.user.Id, &dto.SendChatRequest{
		ChatSessionId: f.session.Id,
		Chat:          "broken window latch in B-204",
		Image:         &image,
	})
	require.NoError(t, err)

	assert.Equal(t, "report", res.Mode)
	assert.Equal(t, constant.RewardPerReport, res.CreditsAwarded)
	assert.Equal(t, 40, res.Credits)

	require.Len(t, f.reportRepo.reports, 1)
	report := f.reportRepo.reports[0]
	assert.Equal(t, entity.ReportStatusPending, report.Status)
	assert.Equal(t, f.user.Email, report.ReporterEmail)
	assert.Equal(t, 1, report.Count)

	assert.Equal(t, constant.RewardPerReport, f.userRepo.credits[f.user.Id])
	assert.Equal(t, []int{40}, f.notifier.pushes)
}

func TestSendChat_RepeatReportBumpsCounter(t *testing.T) {
	image := "data:image/jpeg;base64,AAAA"
	f := newAssistantFixture(&fakeProvider{
		visionReply: "CONFIRMED_DAMAGE: broken window latch in room B-204.",
	})

	req := &dto.SendChatRequest{
		ChatSessionId: f.session.Id,
		Chat:          "broken window latch in B-204",
		Image:         &image,
	}

	_, err := f.svc.SendChat(context.Background(), f.user.Id, req)
	require.NoError(t, err)
	_, err = f.svc.SendChat(context.Background(), f.user.Id, req)
	require.NoError(t, err)

	// Same reporter, same description: one row, counter at 2.
	require.Len(t, f.reportRepo.reports, 1)
	assert.Equal(t, 2, f.reportRepo.reports[0].Count)
	// Reward is still granted per confirmed turn.
	assert.Equal(t, 2*constant.RewardPerReport, f.userRepo.credits[f.user.Id])
}

func TestSendChat_NoMarkerMeansNoReport(t *testing.T) {
	image := "data:image/jpeg;base64,AAAA"
	f := newAssistantFixture(&fakeProvider{
		visionReply: "This looks like normal wear, not reportable damage.",
	})

	res, err := f.svc.SendChat(context.Background(), f.user.Id, &dto.SendChatRequest{
		ChatSessionId: f.session.Id,
		Chat:          "is this damage?",
		Image:         &image,
	})
	require.NoError(t, err)

	assert.Equal(t, "This looks like normal wear, not reportable damage.", res.Reply.Chat)
	assert.Equal(t, 0, res.CreditsAwarded)
	assert.Empty(t, f.reportRepo.reports)
	assert.Empty(t, f.userRepo.credits)
}

func TestSendChat_EmptyVisionReplyFallsBack(t *testing.T) {
	image := "data:image/jpeg;base64,AAAA"
	f := newAssistantFixture(&fakeProvider{visionReply: "   "})

	res, err := f.svc.SendChat(context.Background(), f.user.Id, &dto.SendChatRequest{
		ChatSessionId: f.session.Id,
		Chat:          "anything here?",
		Image:         &image,
	})
	require.NoError(t, err)

	assert.Equal(t, constant.EmptyReplyFallback, res.Reply.Chat)
	assert.Equal(t, 0, res.CreditsAwarded)
	assert.Empty(t, f.reportRepo.reports)
}

func TestSendChat_VisionFailureDoesNotAward(t *testing.T) {
	image := "data:image/jpeg;base64,AAAA"
	f := newAssistantFixture(&fakeProvider{visionErr: errors.New("model unavailable")})

	res, err := f.svc.SendChat(context.Background(), f.user.Id, &dto.SendChatRequest{
		ChatSessionId: f.session.Id,
		Chat:          "check this",
		Image:         &image,
	})
	require.NoError(t, err)

	assert.Equal(t, constant.VisionFallbackReply, res.Reply.Chat)
	assert.Equal(t, 0, res.CreditsAwarded)
	assert.Empty(t, f.reportRepo.reports)
}

func TestSendChat_SecondTurnInFlightRejected(t *testing.T) {
	f := newAssistantFixture(&fakeProvider{textReply: "ok"})

	// Simulate an in-flight turn holding the session.
	require.True(t, f.guard.Acquire(f.session.Id.String()))

	_, err := f.svc.SendChat(context.Background(), f.user.Id, &dto.SendChatRequest{
		ChatSessionId: f.session.Id,
		Chat:          "second message",
	})

	var inFlight *dto.TurnInFlightError
	require.ErrorAs(t, err, &inFlight)
	assert.Equal(t, f.session.Id, inFlight.ChatSessionId)

	// Release and the session accepts turns again.
	f.guard.Release(f.session.Id.String())
	_, err = f.svc.SendChat(context.Background(), f.user.Id, &dto.SendChatRequest{
		ChatSessionId: f.session.Id,
		Chat:          "second message",
	})
	require.NoError(t, err)
}

func TestSendChat_UnknownSessionDenied(t *testing.T) {
	f := newAssistantFixture(&fakeProvider{textReply: "ok"})
	f.sessionRepo.session = nil

	_, err := f.svc.SendChat(context.Background(), f.user.Id, &dto.SendChatRequest{
		ChatSessionId: uuid.New(),
		Chat:          "hello",
	})
	require.Error(t, err)
	assert.Empty(t, f.messageRepo.messages)
}

func TestDeleteSession_RemovesSessionAndMessages(t *testing.T) {
	f := newAssistantFixture(&fakeProvider{textReply: "ok"})

	_, err := f.svc.SendChat(context.Background(), f.user.Id, &dto.SendChatRequest{
		ChatSessionId: f.session.Id,
		Chat:          "hello",
	})
	require.NoError(t, err)
	require.NotEmpty(t, f.messageRepo.messages)

	err = f.svc.DeleteSession(context.Background(), f.user.Id, &dto.DeleteSessionRequest{ChatSessionId: f.session.Id})
	require.NoError(t, err)

	assert.Empty(t, f.messageRepo.messages)
	assert.Equal(t, []uuid.UUID{f.session.Id}, f.sessionRepo.deleted)
}

func TestTruncateTitle(t *testing.T) {
	assert.Equal(t, "short", truncateTitle("  short  "))
	assert.Equal(t, constant.DefaultSessionTitle, truncateTitle("   "))

	long := "this question is deliberately much longer than the fifty character cap"
	assert.Len(t, []rune(truncateTitle(long)), 50)

	// Multibyte input truncates on rune boundaries and stays valid UTF-8.
	devanagari := strings.Repeat("परीक्षा", 20)
	truncated := truncateTitle(devanagari)
	assert.True(t, utf8.ValidString(truncated))
	assert.Len(t, []rune(truncated), 50)
}
