package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"digaxy-assistant/config"
	_ "digaxy-assistant/docs" // Swagger docs
	tgDelivery "digaxy-assistant/internal/chat/delivery/telegram"
	"digaxy-assistant/internal/chat/repository/memory"
	"digaxy-assistant/internal/chat/usecase"
	"digaxy-assistant/internal/estimate"
	"digaxy-assistant/internal/httpserver"
	"digaxy-assistant/internal/middleware"
	"digaxy-assistant/pkg/gemini"
	"digaxy-assistant/pkg/log"
	"digaxy-assistant/pkg/telegram"
)

// @title       Digaxy Assistant API
// @description Conversational intake and cost estimation for moving and delivery services.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Digaxy Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Session store
	sessions := memory.New(cfg.Session.MaxEntries, cfg.Session.TTL)

	// 4. Estimator: Gemini when a key is present, deterministic rates otherwise
	var oracle estimate.Oracle
	if cfg.Gemini.APIKey != "" {
		geminiClient := gemini.NewClient(cfg.Gemini.APIKey)
		if cfg.Gemini.Model != "" {
			geminiClient.SetModel(cfg.Gemini.Model)
		}
		if cfg.Gemini.APIURL != "" {
			geminiClient.SetAPIURL(cfg.Gemini.APIURL)
		}
		if cfg.Gemini.Timeout > 0 {
			geminiClient.SetTimeout(cfg.Gemini.Timeout)
		}
		oracle = estimate.NewGeminiOracle(geminiClient)
		logger.Infof(ctx, "Gemini estimation enabled (model: %s)", geminiClient.Model())
	} else {
		logger.Warn(ctx, "GEMINI_API_KEY not set, falling back to deterministic estimates")
	}
	estimator := estimate.New(logger, oracle)

	// 5. Chat use case
	chatUC := usecase.New(logger, estimator, sessions, cfg.Booking.URL)

	// 6. Telegram webhook (optional)
	var telegramHandler tgDelivery.Handler
	if cfg.Telegram.BotToken != "" {
		telegramBot := telegram.NewBot(cfg.Telegram.BotToken)
		telegramHandler = tgDelivery.New(logger, chatUC, telegramBot)

		// Register webhook: auto-detect ngrok or fall back to manual config
		webhookURL := cfg.Telegram.WebhookURL
		if webhookURL == "" {
			ngrokURL, ngrokErr := detectNgrokURL(ctx, "http://ngrok:4040")
			if ngrokErr != nil {
				logger.Warnf(ctx, "Could not detect ngrok URL: %v", ngrokErr)
			} else {
				webhookURL = ngrokURL + "/webhook/telegram"
				logger.Infof(ctx, "Auto-detected ngrok URL: %s", webhookURL)
			}
		}

		if webhookURL != "" {
			if whErr := telegramBot.SetWebhook(webhookURL); whErr != nil {
				logger.Warnf(ctx, "Failed to set Telegram webhook: %v", whErr)
			} else {
				logger.Infof(ctx, "Telegram webhook registered at %s", webhookURL)
			}
		}
	} else {
		logger.Warn(ctx, "TELEGRAM_BOT_TOKEN not set, Telegram delivery disabled")
	}

	// 7. HTTP server
	mw := middleware.New(logger, cfg.RateLimit)

	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		Middleware:      mw,
		ChatUseCase:     chatUC,
		TelegramHandler: telegramHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
