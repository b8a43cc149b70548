// Package main is the entry point for Eclipse.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/Hausk/eclipse/internal/event"
	"github.com/Hausk/eclipse/internal/game"
	"github.com/Hausk/eclipse/internal/telemetry"
)

func main() {
	// Load .env file for local development
	// This makes HONEYCOMB_ECLIPSE_API_KEY and the ECLIPSE_* settings available
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	setupOTelEnv()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Game will run without observability")
	} else {
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	cfg, err := game.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	publisher := event.NopPublisher()
	if cfg.EventLogPath != "" {
		f, err := os.OpenFile(cfg.EventLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("Failed to open event log: %v", err)
		}
		defer f.Close()
		publisher = event.NewLogSink(log.New(f, "", 0))
	}

	g, err := game.New(cfg, game.WithPublisher(publisher))
	if err != nil {
		log.Fatalf("Failed to initialize game: %v", err)
	}

	if err := g.Run(ctx); err != nil {
		log.Fatalf("Game error: %v", err)
	}
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
// Without an API key nothing is set and telemetry stays disabled.
func setupOTelEnv() {
	apiKey := os.Getenv("HONEYCOMB_ECLIPSE_API_KEY")
	if apiKey == "" {
		return
	}

	dataset := os.Getenv("HONEYCOMB_ECLIPSE_DATASET")
	if dataset == "" {
		dataset = "eclipse"
	}
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	}
	// The .env file may hold an unexpanded variable reference, so build the
	// headers here.
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
}
