package main

import (
	"log/slog"
	"os"
	"strings"

	"hackathon-backend/internal/app"
	"hackathon-backend/internal/logger"
)

func main() {
	logger.Setup(strings.TrimSpace(os.Getenv("APP_ENV")) == "production")

	application, err := app.New()
	if err != nil {
		slog.Error("failed to initialize application", "error", err)
		os.Exit(1)
	}

	if err := application.Run(); err != nil {
		slog.Error("application run failed", "error", err)
		os.Exit(1)
	}
}
