package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"empoweryouth-api/internal/api/routes"
	"empoweryouth-api/internal/auth"
	"empoweryouth-api/internal/chat"
	"empoweryouth-api/internal/config"
	"empoweryouth-api/internal/logging"
	"empoweryouth-api/internal/store"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig("configs/config.yaml")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	if err := logging.Initialize(cfg); err != nil {
		log.Fatalf("Failed to initialize logging: %v", err)
	}
	logger := logging.GetGlobalLogger()
	logger.Info("Starting EmpowerYouth API")

	// Connect to the document store
	ctx := context.Background()
	st, err := store.Connect(ctx, cfg)
	if err != nil {
		logger.Fatal("Failed to connect to document store", map[string]interface{}{"error": err.Error()})
	}

	// Credential service
	tokens := auth.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	// Chat services
	responder := chat.NewResponder(cfg.AssistantConfigured())
	if cfg.AssistantConfigured() {
		logger.Info("External assistant credential present, chat will return placeholder replies")
	}

	history := chat.NewHistoryClient(cfg)
	pingCtx, cancel := context.WithTimeout(ctx, cfg.Redis.Timeout)
	if err := history.Ping(pingCtx); err != nil {
		logger.Warn("Session cache unreachable, chat history caching disabled", map[string]interface{}{"error": err.Error()})
		history = nil
	}
	cancel()

	limiter := chat.NewRateLimiter(cfg.Chat.RatePerMinute, cfg.Chat.Burst)
	defer limiter.Stop()

	// Initialize Echo
	e := echo.New()
	e.HideBanner = true

	// Setup routes
	routes.SetupRoutes(e, cfg, st, tokens, responder, history, limiter)

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logger.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		logger.Info("Stopping HTTP server...")
		if err := e.Shutdown(shutdownCtx); err != nil {
			logger.Error("Error shutting down server", map[string]interface{}{"error": err.Error()})
		}

		if history != nil {
			if err := history.Close(); err != nil {
				logger.Error("Error closing session cache", map[string]interface{}{"error": err.Error()})
			}
		}

		logger.Info("Closing document store...")
		if err := st.Close(shutdownCtx); err != nil {
			logger.Error("Error closing document store", map[string]interface{}{"error": err.Error()})
		}

		logger.Info("Server shutdown complete")
	}()

	// Start server
	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", map[string]interface{}{"address": address})

	if err := e.Start(address); err != nil && err != http.ErrServerClosed {
		logger.Fatal("Server failed to start", map[string]interface{}{"error": err.Error()})
	}
}
