package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/joshua-takyi/wearorithm/internal/config"
	"github.com/joshua-takyi/wearorithm/internal/connect"
	"github.com/joshua-takyi/wearorithm/internal/container"
	"github.com/joshua-takyi/wearorithm/internal/routes"
)

func main() {
	// Load environment variables
	_ = godotenv.Load(".env.local")

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := setupLogger(cfg)
	logger.Info("Starting Wearorithm API server", "environment", cfg.Environment)

	geminiClient, err := connect.GeminiConnect(context.Background(), cfg.GeminiAPIKey)
	if err != nil {
		logger.Error("Failed to connect to Gemini", "error", err)
		os.Exit(1)
	}
	if geminiClient == nil {
		logger.Warn("GEMINI_API_KEY not set, serving mock AI responses")
	} else {
		logger.Info("Connected to Gemini", "model", cfg.GeminiModel, "fast_model", cfg.GeminiFastModel)
	}

	appContainer := container.NewContainer(logger, cfg, geminiClient)
	router := routes.SetupRoutes(appContainer)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	// AI calls may run up to the stylist timeout.
	if cfg.StylistTimeout+5*time.Second > server.WriteTimeout {
		server.WriteTimeout = cfg.StylistTimeout + 5*time.Second
	}

	go func() {
		logger.Info("Server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
	}

	if err := connect.GeminiDisconnect(); err != nil {
		logger.Error("Error closing Gemini client", "error", err)
	}

	logger.Info("Server exited")
}

func setupLogger(cfg *config.Config) *slog.Logger {
	level := parseLevel(cfg.LogLevel)

	var handler slog.Handler
	if cfg.IsProduction() {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	}

	return slog.New(handler)
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
