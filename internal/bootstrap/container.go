package bootstrap

import (
	"context"
	"log"
	"net/http"

	"gorm.io/gorm"

	"github.com/manish-1011/KisanSaathi/internal/config"
	"github.com/manish-1011/KisanSaathi/internal/controller"
	"github.com/manish-1011/KisanSaathi/internal/pkg/logger"
	"github.com/manish-1011/KisanSaathi/internal/repository/implementation"
	"github.com/manish-1011/KisanSaathi/internal/service"
	"github.com/manish-1011/KisanSaathi/pkg/downstream"
	"github.com/manish-1011/KisanSaathi/pkg/langnorm"
	"github.com/manish-1011/KisanSaathi/pkg/relevance"
	"github.com/manish-1011/KisanSaathi/pkg/title"
	"github.com/manish-1011/KisanSaathi/pkg/translate"
)

type Container struct {
	// Controllers
	ChatController     controller.IChatController
	HistoryController  controller.IHistoryController
	SessionController  controller.ISessionController
	FeedbackController controller.IFeedbackController
	UserInfoController controller.IUserInfoController

	// Shared resources with a shutdown step
	Logger     logger.ILogger
	httpClient *http.Client
	judge      *relevance.Judge
	titleMaker *title.Maker
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// One outbound HTTP client for the whole process. No timeout: the
	// downstream contract accepts unbounded latency over truncated answers.
	httpClient := &http.Client{
		Transport: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 50,
		},
	}

	// Repositories
	turnRepo := implementation.NewTurnRepository(db)
	userRepo := implementation.NewUserProfileRepository(db)
	feedbackRepo := implementation.NewFeedbackRepository(db)

	// Domain components
	translator := translate.New(translate.Config{
		APIKey:        cfg.Translate.APIKey,
		Endpoint:      cfg.Translate.Endpoint,
		RetryAttempts: cfg.Translate.RetryAttempts,
		RetryBackoff:  cfg.Translate.RetryBackoff,
		CacheSize:     cfg.Translate.CacheSize,
	}, httpClient, sysLogger)
	if cfg.Translate.APIKey == "" {
		log.Println("[WARN] GOOGLE_TRANSLATE_API_KEY not set, translation degrades to passthrough")
	}

	normalizer := langnorm.NewNormalizer(translator, sysLogger)

	judge, err := relevance.NewJudge(context.Background(), cfg.Gemini.APIKey, cfg.Gemini.RelevanceModel, sysLogger)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize relevance judge: %v", err)
	}
	if cfg.Gemini.APIKey == "" {
		log.Println("[WARN] GOOGLE_API_KEY not set, relevance gate always answers false")
	}

	titleMaker, err := title.NewMaker(context.Background(), cfg.Gemini.TitleUseLLM, cfg.Gemini.APIKey, cfg.Gemini.TitleModel, sysLogger)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize title maker: %v", err)
	}

	dispatcher := downstream.NewClient(cfg.Downstream.URL, httpClient, sysLogger)
	if cfg.Downstream.URL == "" {
		log.Println("[WARN] KISANSAATHI_URL not set, downstream replies are mocked")
	}

	// Services
	chatService := service.NewChatService(
		turnRepo, userRepo,
		translator, normalizer, judge, titleMaker, title.IsMeaningful, dispatcher,
		sysLogger,
	)
	historyService := service.NewHistoryService(turnRepo, userRepo, translator, sysLogger)
	sessionService := service.NewSessionService(turnRepo)
	feedbackService := service.NewFeedbackService(feedbackRepo, turnRepo)
	userInfoService := service.NewUserInfoService(userRepo)

	return &Container{
		ChatController:     controller.NewChatController(chatService),
		HistoryController:  controller.NewHistoryController(historyService),
		SessionController:  controller.NewSessionController(sessionService),
		FeedbackController: controller.NewFeedbackController(feedbackService),
		UserInfoController: controller.NewUserInfoController(userInfoService),

		Logger:     sysLogger,
		httpClient: httpClient,
		judge:      judge,
		titleMaker: titleMaker,
	}
}

// Close releases shared resources at shutdown.
func (c *Container) Close() {
	if c.judge != nil {
		_ = c.judge.Close()
	}
	if c.titleMaker != nil {
		_ = c.titleMaker.Close()
	}
	if c.httpClient != nil {
		c.httpClient.CloseIdleConnections()
	}
	if c.Logger != nil {
		_ = c.Logger.Sync()
	}
}
