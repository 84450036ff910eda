package bootstrap

import (
	"context"
	"log"

	"study-assistant-be/internal/config"
	"study-assistant-be/internal/controller"
	"study-assistant-be/internal/pkg/flight"
	"study-assistant-be/internal/pkg/logger"
	"study-assistant-be/internal/repository/implementation"
	"study-assistant-be/internal/service"
	"study-assistant-be/pkg/extract"
	"study-assistant-be/pkg/gen/gemini"
	"study-assistant-be/pkg/gen/huggingface"
	"study-assistant-be/pkg/store"
)

type Container struct {
	// Controllers
	ChatController      controller.IChatController
	SummaryController   controller.ISummaryController
	FlashcardController controller.IFlashcardController
	McqController       controller.IMCQController
	ImageController     controller.IImageController
	TaskController      controller.ITaskController
	StateController     controller.IStateController

	// Exposed for main.go shutdown
	SnapshotRepository *implementation.SnapshotRepositoryImpl
	Logger             logger.ILogger
}

func NewContainer(cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Persistence
	snapshotRepo, err := implementation.NewSnapshotRepository(cfg.Database.SnapshotPath)
	if err != nil {
		log.Fatalf("[FATAL] Failed to open snapshot database: %v", err)
	}

	appStore := store.New(snapshotRepo)
	if err := appStore.Hydrate(context.Background()); err != nil {
		log.Fatalf("[FATAL] Failed to hydrate application state: %v", err)
	}

	// 3. Providers
	extractor := extract.NewService()

	textProvider, err := gemini.NewGeminiProvider(context.Background(), cfg.Keys.GoogleGemini, cfg.Ai.GeminiModel)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize Gemini provider: %v", err)
	}
	log.Printf("[INFO] Using Text Provider: GEMINI (%s)", cfg.Ai.GeminiModel)

	imageProvider := huggingface.NewHuggingFaceProvider(cfg.Keys.HuggingFace, cfg.Ai.ImageBaseURL, cfg.Ai.ImageModel)
	log.Printf("[INFO] Using Image Provider: HUGGINGFACE (%s)", cfg.Ai.ImageModel)

	gate := flight.NewGate()

	// 4. Services
	chatService := service.NewChatService(appStore, textProvider, extractor, gate, sysLogger)
	summaryService := service.NewSummaryService(appStore, textProvider, extractor, gate, sysLogger)
	flashcardService := service.NewFlashcardService(appStore, textProvider, extractor, gate, sysLogger)
	mcqService := service.NewMCQService(appStore, textProvider, extractor, gate, sysLogger)
	imageService := service.NewImageService(imageProvider, gate, sysLogger)
	taskService := service.NewTaskService(appStore)
	stateService := service.NewStateService(appStore)

	// 5. Controllers
	return &Container{
		ChatController:      controller.NewChatController(chatService),
		SummaryController:   controller.NewSummaryController(summaryService),
		FlashcardController: controller.NewFlashcardController(flashcardService),
		McqController:       controller.NewMCQController(mcqService),
		ImageController:     controller.NewImageController(imageService),
		TaskController:      controller.NewTaskController(taskService),
		StateController:     controller.NewStateController(stateService),

		SnapshotRepository: snapshotRepo,
		Logger:             sysLogger,
	}
}
