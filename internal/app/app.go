package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/cerego-backend/internal/adapter/postgres"
	catalogrepo "github.com/heartmarshall/cerego-backend/internal/adapter/postgres/catalog"
	collectionrepo "github.com/heartmarshall/cerego-backend/internal/adapter/postgres/collection"
	flashcardrepo "github.com/heartmarshall/cerego-backend/internal/adapter/postgres/flashcard"
	importtaskrepo "github.com/heartmarshall/cerego-backend/internal/adapter/postgres/importtask"
	progressrepo "github.com/heartmarshall/cerego-backend/internal/adapter/postgres/progress"
	quizrepo "github.com/heartmarshall/cerego-backend/internal/adapter/postgres/quiz"
	sharerepo "github.com/heartmarshall/cerego-backend/internal/adapter/postgres/share"
	userrepo "github.com/heartmarshall/cerego-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/cerego-backend/internal/adapter/provider/llm"
	authjwt "github.com/heartmarshall/cerego-backend/internal/auth"
	"github.com/heartmarshall/cerego-backend/internal/config"
	"github.com/heartmarshall/cerego-backend/internal/importer"
	"github.com/heartmarshall/cerego-backend/internal/service/access"
	authsvc "github.com/heartmarshall/cerego-backend/internal/service/auth"
	"github.com/heartmarshall/cerego-backend/internal/service/catalog"
	"github.com/heartmarshall/cerego-backend/internal/service/flashcard"
	"github.com/heartmarshall/cerego-backend/internal/service/quiz"
	"github.com/heartmarshall/cerego-backend/internal/transport/middleware"
	"github.com/heartmarshall/cerego-backend/internal/transport/rest"
	"github.com/heartmarshall/cerego-backend/internal/worker"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires services, and serves HTTP until ctx is canceled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.InfoContext(ctx, "starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.MigrateOnStart {
		if err := migrate(ctx, cfg.Database.DSN, logger); err != nil {
			return err
		}
	}

	// Repositories.
	users := userrepo.New(pool)
	flashcards := flashcardrepo.New(pool)
	catalogs := catalogrepo.New(pool)
	shares := sharerepo.New(pool)
	collection := collectionrepo.New(pool)
	progress := progressrepo.New(pool)
	quizzes := quizrepo.New(pool)
	tasks := importtaskrepo.New(pool)
	tx := postgres.NewTxManager(pool)

	// Services.
	jwtManager := authjwt.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	authService := authsvc.NewService(logger, users, jwtManager, cfg.Auth)
	accessService := access.NewService(logger, catalogs, flashcards)
	catalogService := catalog.NewService(logger, catalogs, flashcards, shares, collection, users, tx)
	flashcardService := flashcard.NewService(logger, flashcards, shares, users, progress)
	quizService := quiz.NewService(logger, quizzes, progress, tx)

	// Import pipeline.
	gateway := llm.New(cfg.LLM, logger)
	jobPool := worker.NewPool(cfg.Importer.QuizWorkers, cfg.Importer.QuizQueueSize, logger)
	importService := importer.NewService(
		logger, gateway, flashcards, catalogs, tasks, quizzes, tx, jobPool,
		cfg.Importer, llm.IsTransient,
	)

	jobPool.Start(ctx)
	defer jobPool.Stop()

	// Requeue quiz units left pending by a previous process.
	if err := importService.Resume(ctx); err != nil {
		logger.WarnContext(ctx, "resume pending imports", slog.Any("error", err))
	}

	// HTTP transport.
	limiter := middleware.NewRateLimiter(5 * time.Minute)
	defer limiter.Stop()

	handlers := rest.Handlers{
		Auth:      rest.NewAuthHandler(authService, logger),
		Catalog:   rest.NewCatalogHandler(catalogService, accessService, logger),
		Flashcard: rest.NewFlashcardHandler(flashcardService, logger),
		Import:    rest.NewImportHandler(importService, logger),
		Quiz:      rest.NewQuizHandler(quizService, logger),
		Admin:     rest.NewAdminHandler(importService, logger),
		Health:    rest.NewHealthHandler(pool, BuildVersion()),
	}

	router := rest.NewRouter(handlers, rest.RouterDeps{
		Logger:    logger,
		TokenAuth: middleware.Auth(authService),
		Limiter:   limiter,
		CORS:      cfg.CORS,
		RateLimit: cfg.Server.RateLimitPerMin,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.InfoContext(ctx, "http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	return nil
}
