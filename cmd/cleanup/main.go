// Command cleanup removes import tasks whose units have all resolved but
// that are older than the configured retention period, so abandoned tasks
// the owner never polled do not accumulate. It is intended to be invoked
// by an external cron job, not as an in-process goroutine.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/cerego-backend/internal/adapter/postgres"
	"github.com/heartmarshall/cerego-backend/internal/adapter/postgres/importtask"
	"github.com/heartmarshall/cerego-backend/internal/app"
	"github.com/heartmarshall/cerego-backend/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	tasks := importtask.New(pool)

	threshold := time.Now().AddDate(0, 0, -cfg.Importer.TaskRetentionDays)

	deleted, err := tasks.DeleteStaleBefore(ctx, threshold)
	if err != nil {
		logger.Error("stale task cleanup failed",
			slog.String("error", err.Error()),
			slog.Time("threshold", threshold),
		)
		os.Exit(1)
	}

	logger.Info("stale task cleanup completed",
		slog.Int64("deleted", deleted),
		slog.Time("threshold", threshold),
	)
}
