package bootstrap

import (
	"context"
	"log"

	"campus-ai-be/internal/config"
	"campus-ai-be/internal/controller"
	"campus-ai-be/internal/handler"
	"campus-ai-be/internal/pkg/logger"
	"campus-ai-be/internal/pkg/mailer"
	"campus-ai-be/internal/repository/memory"
	"campus-ai-be/internal/repository/unitofwork"
	"campus-ai-be/internal/service"
	"campus-ai-be/internal/websocket"
	"campus-ai-be/pkg/connectivity"
	"campus-ai-be/pkg/events"
	"campus-ai-be/pkg/llm/gemini"
	"campus-ai-be/pkg/payout"
	"campus-ai-be/pkg/storage"

	"campus-ai-be/internal/constant"

	pktNats "campus-ai-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const reportAlertTopic = "REPORT_ALERT"

// eventAuditHandler writes every domain event to the system log so confirmed
// reports and credit grants leave a durable trail.
func eventAuditHandler(log logger.ILogger) pktNats.EventHandler {
	return func(_ context.Context, event events.Event) error {
		log.Info("EventAudit", event.EventType(), event.Payload())
		return nil
	}
}

type Container struct {
	// Controllers
	AuthController      controller.IAuthController
	AssistantController controller.IAssistantController
	ProfileController   controller.IProfileController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// WebSockets
	WalletSocketHandler *handler.WalletSocketHandler
	WebSocketHub        *websocket.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Infrastructure
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	// Durable audit trail of every domain event on the stream.
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	} else if err := natsSub.Subscribe("events.>", "campus-audit", eventAuditHandler(sysLogger)); err != nil {
		log.Printf("[WARN] Failed to start event audit consumer: %v", err)
	}

	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	// WebSocket Hub
	wsLogger := logger.NewIsolatedLogger("logs/wallet.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// 3. Domain components
	latch := connectivity.NewLatch()
	payloadFetcher := storage.NewHTTPPayloadFetcher(cfg.RAG.PayloadBaseURL)
	turnGuard := memory.NewTurnGuard()

	gemini.SetVisionInstruction(constant.VisionSystemInstructionV1)
	llmProvider := gemini.NewProvider(cfg.Keys.GoogleGemini, cfg.Keys.GeminiModel)

	payoutGateway := payout.NewIrisGateway()

	// 4. Services
	publisherService := service.NewPublisherService(reportAlertTopic, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		reportAlertTopic,
		emailService,
		cfg.Wallet.ReportEmail,
	)

	knowledgeService := service.NewKnowledgeService(uowFactory, payloadFetcher, latch, sysLogger)
	authService := service.NewAuthService(uowFactory, latch, sysLogger)
	assistantService := service.NewAssistantService(
		uowFactory,
		llmProvider,
		knowledgeService,
		turnGuard,
		publisherService,
		natsPub,
		wsHub,
		sysLogger,
	)
	walletService := service.NewWalletService(
		uowFactory,
		cfg.Wallet.DebitOnRedeem,
		payoutGateway,
		emailService,
		natsPub,
		sysLogger,
	)

	// 5. Controllers
	return &Container{
		AuthController:      controller.NewAuthController(authService),
		AssistantController: controller.NewAssistantController(assistantService, knowledgeService),
		ProfileController:   controller.NewProfileController(walletService),
		ConsumerService:     consumerService,
		WalletSocketHandler: handler.NewWalletSocketHandler(wsHub, wsLogger),
		WebSocketHub:        wsHub,
	}
}
