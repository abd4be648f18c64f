package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"github.com/melih/projectdock/internal/adapters/docker"
	"github.com/melih/projectdock/internal/adapters/git"
	"github.com/melih/projectdock/internal/adapters/http"
	"github.com/melih/projectdock/internal/adapters/tracking"
	"github.com/melih/projectdock/internal/config"
	"github.com/melih/projectdock/internal/core/build"
)

func main() {
	// Local overrides for dev runs; harmless in CI.
	_ = godotenv.Load()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel(config.Getenv("LOG_LEVEL", "info")),
	})))

	// 1. Initialize Adapters (Infrastructure)
	engine, err := docker.NewAdapter(docker.WithBuildOutput(os.Stdout))
	if err != nil {
		slog.Error("failed to initialize docker adapter", "error", err)
		os.Exit(1)
	}

	trackingURI := config.Getenv(config.TrackingURIEnvVar, "")
	opts := []build.Option{
		build.WithCommitResolver(git.NewResolver()),
		build.WithProjectFetcher(git.NewFetcher()),
		build.WithCredentialProvider(tracking.NewDatabricksCredentials()),
	}
	if tagger := tracking.TaggerForURI(trackingURI); tagger != nil {
		opts = append(opts, build.WithRunTagger(tagger))
	}

	// 2. Core Service
	service := build.NewService(engine, opts...)

	// 3. HTTP Handlers (Interface Adapters)
	handler := http.NewBuildHandler(service)

	// 4. Setup Framework (Fiber) and Routes
	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())

	api := app.Group("/api")
	v1 := api.Group("/v1")
	v1.Post("/builds", handler.Build)
	v1.Get("/run-config", handler.RunConfig)
	v1.Get("/engine/ping", handler.Ping)

	// 5. Start Server
	addr := ":" + config.Getenv("PORT", "3000")
	slog.Info("server starting", "addr", addr)
	if err := app.Listen(addr); err != nil {
		slog.Error("server failed to start", "error", err)
		os.Exit(1)
	}
}

func logLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
