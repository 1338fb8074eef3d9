package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dvloznov/budgetmentor/internal/api/handlers"
	"github.com/dvloznov/budgetmentor/internal/api/middleware"
	"github.com/dvloznov/budgetmentor/internal/categorize"
	"github.com/dvloznov/budgetmentor/internal/config"
	infraBQ "github.com/dvloznov/budgetmentor/internal/infra/bigquery"
	"github.com/dvloznov/budgetmentor/internal/insights"
	"github.com/dvloznov/budgetmentor/internal/logger"
	"github.com/dvloznov/budgetmentor/internal/store"
	"github.com/dvloznov/budgetmentor/internal/store/inmemory"
)

func main() {
	cfg := config.Load()

	// Parse command-line flags; flags win over the environment.
	var (
		port    = flag.String("port", cfg.Port, "HTTP server port")
		project = flag.String("project", cfg.GCPProject, "GCP project for BigQuery persistence (empty = in-memory)")
		dataset = flag.String("dataset", cfg.BQDataset, "BigQuery dataset")
	)
	flag.Parse()

	// Initialize logger
	log := logger.New("budgetmentor-api")

	ctx := context.Background()

	// Select repository: BigQuery when a project is configured, otherwise
	// the in-memory default.
	var repo store.Repository
	if *project != "" {
		bqRepo, err := infraBQ.NewRepository(ctx, *project, *dataset)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create BigQuery repository")
		}
		defer bqRepo.Close()
		repo = bqRepo
		log.Info().Str("project", *project).Str("dataset", *dataset).Msg("Using BigQuery repository")
	} else {
		repo = inmemory.NewRepository()
		log.Info().Msg("Using in-memory repository - data is lost on restart")
	}

	engine := insights.NewEngine()

	recordStore := store.New(repo, engine, log)
	if err := recordStore.Load(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to load collections")
	}

	// Category suggestions: Gemini when configured, keywords otherwise.
	var suggester categorize.Suggester
	if cfg.GeminiAPIKey != "" {
		gemini, err := categorize.NewGeminiSuggester(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create Gemini suggester")
		}
		suggester = gemini
		log.Info().Msg("Using Gemini category suggester")
	} else {
		suggester = categorize.NewKeywordSuggester()
		log.Info().Msg("GEMINI_API_KEY not set - using keyword category suggester")
	}

	mux := handlers.NewMux(recordStore, engine, suggester, log)

	// Apply middleware
	handler := middleware.Recovery(log)(
		middleware.Logger(log)(
			middleware.RequestID(
				middleware.CORS(mux),
			),
		),
	)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + *port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info().Str("port", *port).Msg("Starting API server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
