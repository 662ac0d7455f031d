package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"campus-ai-be/internal/constant"
	"campus-ai-be/internal/dto"
	"campus-ai-be/internal/entity"
	"campus-ai-be/internal/pkg/logger"
	"campus-ai-be/internal/repository/memory"
	"campus-ai-be/internal/repository/specification"
	"campus-ai-be/internal/repository/unitofwork"
	"campus-ai-be/pkg/events"
	"campus-ai-be/pkg/llm"
	pktNats "campus-ai-be/pkg/nats"
	"campus-ai-be/pkg/reward"

	"github.com/google/uuid"
)

const inferenceTimeout = 60 * time.Second

// CreditNotifier pushes balance changes to connected clients in real time.
// Implemented by the websocket hub.
type CreditNotifier interface {
	NotifyCredits(userId uuid.UUID, credits int, reason string)
}

type IAssistantService interface {
	CreateSession(ctx context.Context, userId uuid.UUID) (*dto.CreateSessionResponse, error)
	GetAllSessions(ctx context.Context, userId uuid.UUID) ([]*dto.GetAllSessionsResponse, error)
	GetChatHistory(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) ([]*dto.GetChatHistoryResponse, error)
	SendChat(ctx context.Context, userId uuid.UUID, request *dto.SendChatRequest) (*dto.SendChatResponse, error)
	DeleteSession(ctx context.Context, userId uuid.UUID, request *dto.DeleteSessionRequest) error
}

type assistantService struct {
	uowFactory       unitofwork.RepositoryFactory
	llmProvider      llm.Provider
	knowledgeService IKnowledgeService
	rewardEngine     *reward.Engine
	turnGuard        *memory.TurnGuard
	publisherService IPublisherService
	eventPublisher   *pktNats.Publisher
	notifier         CreditNotifier
	logger           logger.ILogger
}

func NewAssistantService(
	uowFactory unitofwork.RepositoryFactory,
	llmProvider llm.Provider,
	knowledgeService IKnowledgeService,
	turnGuard *memory.TurnGuard,
	publisherService IPublisherService,
	eventPublisher *pktNats.Publisher,
	notifier CreditNotifier,
	log logger.ILogger,
) IAssistantService {
	return &assistantService{
		uowFactory:       uowFactory,
		llmProvider:      llmProvider,
		knowledgeService: knowledgeService,
		rewardEngine:     reward.NewEngine(constant.DamageMarker, constant.RewardPerReport),
		turnGuard:        turnGuard,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
		notifier:         notifier,
		logger:           log,
	}
}

// CreateSession opens a session seeded with the model's welcome turn,
// greeting the student by name.
func (s *assistantService) CreateSession(ctx context.Context, userId uuid.UUID) (*dto.CreateSessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	now := time.Now()

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user not found")
	}

	name := strings.TrimSpace(user.FullName)
	if name == "" {
		name = constant.WelcomeFallbackName
	}

	chatSession := entity.ChatSession{
		Id:        uuid.New(),
		UserId:    userId,
		Title:     constant.DefaultSessionTitle,
		CreatedAt: now,
	}

	welcome := entity.ChatMessage{
		Id:            uuid.New(),
		Chat:          fmt.Sprintf(constant.WelcomeMessageTemplateV1, name),
		Role:          constant.ChatMessageRoleModel,
		ChatSessionId: chatSession.Id,
		CreatedAt:     now,
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.ChatSessionRepository().Create(ctx, &chatSession); err != nil {
		return nil, err
	}
	if err := uow.ChatMessageRepository().Create(ctx, &welcome); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		if err := s.eventPublisher.Publish(ctx, events.NewSessionStarted(chatSession.Id.String(), userId.String())); err != nil {
			s.logger.Warn("AssistantService", "Failed to publish session event", map[string]interface{}{"error": err.Error()})
		}
	}

	return &dto.CreateSessionResponse{
		Id: chatSession.Id,
		Welcome: &dto.SendChatResponseChat{
			Id:        welcome.Id,
			Chat:      welcome.Chat,
			Role:      welcome.Role,
			CreatedAt: welcome.CreatedAt,
		},
	}, nil
}

func (s *assistantService) GetAllSessions(ctx context.Context, userId uuid.UUID) ([]*dto.GetAllSessionsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	chatSessions, err := uow.ChatSessionRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "updated_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	response := make([]*dto.GetAllSessionsResponse, 0, len(chatSessions))
	for _, sess := range chatSessions {
		response = append(response, &dto.GetAllSessionsResponse{
			Id:        sess.Id,
			Title:     sess.Title,
			CreatedAt: sess.CreatedAt,
			UpdatedAt: sess.UpdatedAt,
		})
	}

	return response, nil
}

func (s *assistantService) GetChatHistory(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) ([]*dto.GetChatHistoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	sess, err := uow.ChatSessionRepository().FindOne(ctx,
		specification.ByID{ID: sessionId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, fmt.Errorf("session not found or access denied")
	}

	chatMessages, err := uow.ChatMessageRepository().FindAll(ctx,
		specification.ByChatSessionID{ChatSessionID: sessionId},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	response := make([]*dto.GetChatHistoryResponse, 0, len(chatMessages))
	for _, msg := range chatMessages {
		response = append(response, &dto.GetChatHistoryResponse{
			Id:        msg.Id,
			Role:      msg.Role,
			Chat:      msg.Chat,
			Image:     msg.Image,
			CreatedAt: msg.CreatedAt,
		})
	}

	return response, nil
}

// SendChat runs one full turn. The user message is committed before inference
// so a crashed turn never loses what the student typed; the reply and any
// report/credit effects commit together afterwards.
func (s *assistantService) SendChat(ctx context.Context, userId uuid.UUID, request *dto.SendChatRequest) (*dto.SendChatResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	sess, err := uow.ChatSessionRepository().FindOne(ctx,
		specification.ByID{ID: request.ChatSessionId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, fmt.Errorf("session not found or access denied")
	}

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user not found")
	}

	if !s.turnGuard.Acquire(sess.Id.String()) {
		return nil, &dto.TurnInFlightError{ChatSessionId: sess.Id}
	}
	defer s.turnGuard.Release(sess.Id.String())

	now := time.Now()
	userMessage := entity.ChatMessage{
		Id:            uuid.New(),
		Chat:          request.Chat,
		Role:          constant.ChatMessageRoleUser,
		Image:         request.Image,
		ChatSessionId: sess.Id,
		CreatedAt:     now,
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	if err := uow.ChatMessageRepository().Create(ctx, &userMessage); err != nil {
		uow.Rollback()
		return nil, err
	}
	if sess.Title == constant.DefaultSessionTitle {
		sess.Title = truncateTitle(request.Chat)
		if err := uow.ChatSessionRepository().Update(ctx, sess); err != nil {
			uow.Rollback()
			return nil, err
		}
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	inferCtx, cancel := context.WithTimeout(ctx, inferenceTimeout)
	defer cancel()

	var (
		replyText string
		mode      string
		outcome   reward.Outcome
	)

	if request.Image != nil {
		mode = "report"
		raw, err := s.llmProvider.AnalyzeImage(inferCtx, *request.Image, request.Chat)
		if err != nil {
			s.logger.Error("AssistantService", "Vision inference failed", map[string]interface{}{"session_id": sess.Id, "error": err.Error()})
			raw = constant.VisionFallbackReply
		}
		outcome = s.rewardEngine.Evaluate(raw)
		replyText = outcome.Reply
		if strings.TrimSpace(replyText) == "" {
			replyText = constant.EmptyReplyFallback
		}
	} else {
		mode = "rag"
		replyText = s.generateGroundedReply(inferCtx, request.Chat)
	}

	reply := entity.ChatMessage{
		Id:            uuid.New(),
		Chat:          replyText,
		Role:          constant.ChatMessageRoleModel,
		ChatSessionId: sess.Id,
		CreatedAt:     time.Now(),
	}

	var report *entity.InfraReport

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.ChatMessageRepository().Create(ctx, &reply); err != nil {
		return nil, err
	}
	if err := uow.ChatSessionRepository().Touch(ctx, sess.Id); err != nil {
		return nil, err
	}

	if outcome.Confirmed {
		report, err = s.recordReport(ctx, uow, user, request)
		if err != nil {
			return nil, err
		}
		if err := uow.UserRepository().AddCredits(ctx, user.Id, outcome.Credits); err != nil {
			return nil, err
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	credits := user.Credits
	if outcome.Confirmed {
		credits += outcome.Credits
		s.afterConfirmedReport(ctx, user, report, credits, outcome.Credits)
	}

	return &dto.SendChatResponse{
		ChatSessionId: sess.Id,
		Sent: &dto.SendChatResponseChat{
			Id:        userMessage.Id,
			Chat:      userMessage.Chat,
			Role:      userMessage.Role,
			Image:     userMessage.Image,
			CreatedAt: userMessage.CreatedAt,
		},
		Reply: &dto.SendChatResponseChat{
			Id:        reply.Id,
			Chat:      reply.Chat,
			Role:      reply.Role,
			CreatedAt: reply.CreatedAt,
		},
		Mode:           mode,
		CreditsAwarded: outcome.Credits,
		Credits:        credits,
	}, nil
}

func (s *assistantService) DeleteSession(ctx context.Context, userId uuid.UUID, request *dto.DeleteSessionRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	sess, err := uow.ChatSessionRepository().FindOne(ctx,
		specification.ByID{ID: request.ChatSessionId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if sess == nil {
		return fmt.Errorf("session not found or access denied")
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.ChatMessageRepository().DeleteByChatSessionId(ctx, sess.Id); err != nil {
		return err
	}
	if err := uow.ChatSessionRepository().Delete(ctx, sess.Id); err != nil {
		return err
	}

	return uow.Commit()
}

// generateGroundedReply runs the text path: render the knowledge context into
// the grounding prompt and query the model. Every failure maps to a fixed
// fallback so the turn always completes.
func (s *assistantService) generateGroundedReply(ctx context.Context, query string) string {
	rendered, err := s.knowledgeService.RenderedContext(ctx)
	if err != nil {
		s.logger.Warn("AssistantService", "Context assembly failed, grounding on empty context", map[string]interface{}{"error": err.Error()})
		rendered = ""
	}

	systemInstruction := fmt.Sprintf(constant.RAGSystemInstructionV1, rendered)

	replyText, err := s.llmProvider.Generate(ctx, query, systemInstruction)
	if err != nil {
		s.logger.Error("AssistantService", "Text inference failed", map[string]interface{}{"error": err.Error()})
		return constant.TextFallbackReply
	}
	if strings.TrimSpace(replyText) == "" {
		return constant.EmptyReplyFallback
	}

	return replyText
}

// recordReport creates the report row, or bumps the counter when the same
// student re-reports the same description.
func (s *assistantService) recordReport(ctx context.Context, uow unitofwork.UnitOfWork, user *entity.User, request *dto.SendChatRequest) (*entity.InfraReport, error) {
	existing, err := uow.InfraReportRepository().FindOne(ctx,
		specification.ByReporterEmail{Email: user.Email},
		specification.Filter("description", request.Chat),
	)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		if err := uow.InfraReportRepository().IncrementCount(ctx, existing.Id); err != nil {
			return nil, err
		}
		existing.Count++
		return existing, nil
	}

	imageUrl := ""
	if request.Image != nil {
		imageUrl = *request.Image
	}

	report := &entity.InfraReport{
		Id:            uuid.New(),
		Description:   request.Chat,
		ImageUrl:      imageUrl,
		Status:        entity.ReportStatusPending,
		ReporterEmail: user.Email,
		Count:         1,
		CreatedAt:     time.Now(),
	}
	if err := uow.InfraReportRepository().Create(ctx, report); err != nil {
		return nil, err
	}

	return report, nil
}

// afterConfirmedReport fans out the side channels once the transaction has
// committed: infra team email via the in-process bus, domain events via NATS,
// live balance push via the websocket hub. All best-effort.
func (s *assistantService) afterConfirmedReport(ctx context.Context, user *entity.User, report *entity.InfraReport, balance, awarded int) {
	if s.publisherService != nil {
		alert := dto.ReportAlertMessage{
			ReportId:      report.Id,
			ReporterEmail: user.Email,
			Description:   report.Description,
			Count:         report.Count,
		}
		if err := s.publisherService.PublishReportAlert(ctx, &alert); err != nil {
			s.logger.Warn("AssistantService", "Failed to enqueue report alert", map[string]interface{}{"error": err.Error()})
		}
	}

	if s.eventPublisher != nil {
		if err := s.eventPublisher.Publish(ctx, events.NewReportConfirmed(report.Id.String(), user.Id.String(), report.Description)); err != nil {
			s.logger.Warn("AssistantService", "Failed to publish report event", map[string]interface{}{"error": err.Error()})
		}
		if err := s.eventPublisher.Publish(ctx, events.NewCreditGranted(user.Id.String(), awarded, "confirmed_report")); err != nil {
			s.logger.Warn("AssistantService", "Failed to publish credit event", map[string]interface{}{"error": err.Error()})
		}
	}

	if s.notifier != nil {
		s.notifier.NotifyCredits(user.Id, balance, "confirmed_report")
	}
}

func truncateTitle(chat string) string {
	title := strings.TrimSpace(chat)
	// Truncate on runes so a multibyte character never gets split.
	if runes := []rune(title); len(runes) > 50 {
		title = string(runes[:50])
	}
	if title == "" {
		title = constant.DefaultSessionTitle
	}
	return title
}
