package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"rogue-depths/internal/game"
	"rogue-depths/internal/telemetry"
)

func main() {
	// Load .env for local development; variables may also be set directly.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("note: .env not loaded: %v", err)
	}

	ctx := context.Background()

	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") != "" {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			log.Printf("warning: telemetry setup failed: %v", err)
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					log.Printf("error shutting down telemetry: %v", err)
				}
			}()
		}
	}

	cfg, err := game.ConfigFromEnv()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	g, err := game.New(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to initialize game: %v", err)
	}
	if err := g.Run(ctx); err != nil {
		log.Fatalf("game error: %v", err)
	}
}
