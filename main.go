package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/grandvista/roomline/agent"
	"github.com/grandvista/roomline/config"
	"github.com/grandvista/roomline/gemini"
	"github.com/grandvista/roomline/logging"
	"github.com/grandvista/roomline/menu"
	"github.com/grandvista/roomline/notify"
	"github.com/grandvista/roomline/server"
	"github.com/grandvista/roomline/session"
)

func main() {
	log := logging.Init()
	defer func() { _ = log.Sync() }()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("failed to load config", zap.Error(err))
	}

	// Session registry with Redis metadata mirror
	sessions, err := session.NewManager(cfg)
	if err != nil {
		log.Fatal("failed to create session manager", zap.Error(err))
	}

	// Generative text responder
	responder, err := gemini.NewResponder(context.Background(), cfg.GeminiAPIKey)
	if err != nil {
		log.Fatal("failed to create responder", zap.Error(err))
	}
	defer func() { _ = responder.Close() }()

	// Order confirmation dispatch; log-only when no endpoint is set
	var dispatcher notify.Dispatcher
	if cfg.WebhookURL != "" {
		dispatcher = notify.NewWebhookDispatcher(cfg.WebhookURL, cfg.WebhookTimeout)
	} else {
		log.Warn("ORDER_WEBHOOK_URL not set, confirmations are logged only")
		dispatcher = notify.NewLogDispatcher()
	}

	ag := agent.New(menu.NewCatalog(), sessions, responder, dispatcher)

	// Start cleanup routine
	ctx, cancel := context.WithCancel(context.Background())
	go sessions.StartCleanupRoutine(ctx)

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	switch cfg.ServerType {
	case "webhook":
		srv := server.NewWebhookServer(cfg, ag, sessions)

		go func() {
			<-sigChan
			log.Info("received shutdown signal")
			cancel()
			sessions.Shutdown()
			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer shutdownCancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				log.Error("webhook server shutdown error", zap.Error(err))
			}
		}()

		if err := srv.Start(); err != nil && err.Error() != "http: Server closed" {
			log.Fatal("webhook server error", zap.Error(err))
		}

	case "console":
		srv := server.NewConsoleServer(cfg, ag, sessions)

		go func() {
			<-sigChan
			log.Info("received shutdown signal")
			cancel()
			sessions.Shutdown()
			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer shutdownCancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				log.Error("console server shutdown error", zap.Error(err))
			}
		}()

		if err := srv.Start(); err != nil && err.Error() != "http: Server closed" {
			log.Fatal("console server error", zap.Error(err))
		}

	case "both":
		webhookSrv := server.NewWebhookServer(cfg, ag, sessions)
		consoleSrv := server.NewConsoleServer(cfg, ag, sessions)

		go func() {
			<-sigChan
			log.Info("received shutdown signal")
			cancel()
			sessions.Shutdown()
			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer shutdownCancel()
			if err := webhookSrv.Shutdown(shutdownCtx); err != nil {
				log.Error("webhook server shutdown error", zap.Error(err))
			}
			if err := consoleSrv.Shutdown(shutdownCtx); err != nil {
				log.Error("console server shutdown error", zap.Error(err))
			}
		}()

		// Start console server in background
		go func() {
			if err := consoleSrv.Start(); err != nil && err.Error() != "http: Server closed" {
				log.Fatal("console server error", zap.Error(err))
			}
		}()

		// Start webhook server (blocks)
		if err := webhookSrv.Start(); err != nil && err.Error() != "http: Server closed" {
			log.Fatal("webhook server error", zap.Error(err))
		}

	default:
		log.Fatal("unknown SERVER_TYPE", zap.String("server_type", cfg.ServerType))
	}

	log.Info("server stopped")
}
