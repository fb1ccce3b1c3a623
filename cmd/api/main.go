package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gimnasio/internal/config"
	"gimnasio/internal/embeddings"
	"gimnasio/internal/gemini"
	"gimnasio/internal/http"
	"gimnasio/internal/logging"
	"gimnasio/internal/markdown"
	"gimnasio/internal/service"
	"gimnasio/internal/storage"
	"gimnasio/internal/vectorstore"
)

//go:generate swagger generate spec -o swagger.json

// General API information
//
// Gym management API: members, coaches and class schedules, plus a
// Google Gemini backed fitness assistant that generates workout routines.
//
// swagger:meta
//
// ---
// swagger: '2.0'
// info:
//   title: Gimnasio API
//   description: |
//     Gym management API with a Gemini fitness assistant.
//     Generated workout routines are archived and can be searched by similarity.
//   version: 1.0.0
// schemes:
//   - http
//   - https
// consumes:
//   - application/json
// produces:
//   - application/json

const shutdownTimeout = 15 * time.Second

func main() {
	// Load configuration first (needed for log level)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	_, logCloser, err := logging.Setup(cfg)
	if err != nil {
		log.Fatalf("Failed to configure logging: %v", err)
	}
	defer func() {
		_ = logCloser.Close()
	}()
	slog.Debug("Logging configured", "level", cfg.LogLevel.String(), "format", cfg.LogFormat, "file", cfg.LogFile)

	// Initialize database
	db, err := storage.New(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer func() {
		_ = db.Close()
	}()

	if err := storage.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	slog.Info("Database initialized", "path", cfg.DBPath)

	// Create repository instances
	userRepo := storage.NewUserRepo(db)
	scheduleRepo := storage.NewScheduleRepo(db)
	routineRepo := storage.NewRoutineRepo(db)

	ctx := context.Background()
	renderer := markdown.NewRenderer()

	var (
		vectorStore    vectorstore.VectorStore
		routineOptions []service.RoutineOption
	)
	if cfg.VectorSearchEnabled() {
		qdrantStore, err := vectorstore.NewQdrantStore(cfg.QdrantURL)
		if err != nil {
			log.Fatalf("Failed to create Qdrant client: %v", err)
		}
		defer func() {
			_ = qdrantStore.Close()
		}()

		// Ensure collection exists with correct vector size
		if err := qdrantStore.EnsureCollection(ctx, cfg.QdrantCollection, cfg.QdrantVectorSize); err != nil {
			log.Fatalf("Failed to ensure Qdrant collection: %v", err)
		}
		slog.Info("Qdrant collection ready", "collection", cfg.QdrantCollection, "vector_size", cfg.QdrantVectorSize)

		embedder, err := embeddings.NewClient(ctx, cfg.GeminiAPIKey, cfg.EmbeddingModel, cfg.QdrantVectorSize)
		if err != nil {
			log.Fatalf("Failed to create embedding client: %v", err)
		}
		// Validate embedding client vector size (fail-fast)
		if _, err := embedder.Embed(ctx, "test"); err != nil {
			log.Fatalf("Failed to validate embedding client: %v", err)
		}
		slog.Info("Embedding client validated", "model", embedder.Model, "vector_size", cfg.QdrantVectorSize)

		vectorStore = qdrantStore
		routineOptions = append(routineOptions, service.WithVectorIndex(embedder, qdrantStore, cfg.QdrantCollection))
	} else {
		slog.Info("QDRANT_URL not set, routine similarity search disabled")
	}

	// Create Gemini client (external service layer)
	geminiClient := gemini.NewClient(
		cfg.GeminiBaseURL,
		cfg.GeminiAPIKey,
		cfg.GeminiModel,
		gemini.WithTimeout(cfg.GeminiTimeout),
		gemini.WithHooks(service.LoggingHooks()),
	)

	routineService := service.NewRoutineService(routineRepo, renderer, routineOptions...)
	deps := &http.Deps{
		AIService:       service.NewAIService(geminiClient, routineService),
		UserService:     service.NewUserService(userRepo, scheduleRepo),
		ScheduleService: service.NewScheduleService(scheduleRepo, userRepo),
		RoutineService:  routineService,
		Renderer:        renderer,
		DB:              db,
		VectorStore:     vectorStore,
		CollectionName:  cfg.QdrantCollection,
	}
	router := http.NewRouter(deps)

	// Start API server
	addr := ":" + cfg.APIPort
	server := &nethttp.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	shutdownCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Starting API server", "addr", addr)
		slog.Debug("Gemini configuration", "base_url", cfg.GeminiBaseURL, "model", cfg.GeminiModel, "timeout", cfg.GeminiTimeout)
		serverErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		if err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			log.Fatalf("API server failed to start: %v", err)
		}
	case <-shutdownCtx.Done():
		slog.Info("Shutting down API server")
		timeoutCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(timeoutCtx); err != nil {
			slog.Error("Graceful shutdown failed", "error", err)
		}
	}
}
