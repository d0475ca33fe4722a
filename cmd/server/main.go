// Command server runs the cerego HTTP API: auth, catalogs, flashcards,
// word import, and quiz endpoints backed by PostgreSQL.
//
// Configuration is read from CONFIG_PATH (YAML) with environment
// overrides. Exit codes: 0 = clean shutdown, 1 = error.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/cerego-backend/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("server: %v", err)
	}
}
