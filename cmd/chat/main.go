package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"digaxy-assistant/config"
	"digaxy-assistant/internal/chat"
	"digaxy-assistant/internal/chat/repository/memory"
	"digaxy-assistant/internal/chat/usecase"
	"digaxy-assistant/internal/estimate"
	"digaxy-assistant/internal/model"
	"digaxy-assistant/pkg/gemini"
	"digaxy-assistant/pkg/log"
)

// Interactive terminal session against the same dialogue engine the API
// serves. Handy for trying prompts without standing up the HTTP server.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	logger := log.Init(log.ZapConfig{
		Level:        "warn",
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()

	var oracle estimate.Oracle
	if cfg.Gemini.APIKey != "" {
		client := gemini.NewClient(cfg.Gemini.APIKey)
		if cfg.Gemini.Model != "" {
			client.SetModel(cfg.Gemini.Model)
		}
		if cfg.Gemini.Timeout > 0 {
			client.SetTimeout(cfg.Gemini.Timeout)
		}
		oracle = estimate.NewGeminiOracle(client)
	}

	estimator := estimate.New(logger, oracle)
	sessions := memory.New(cfg.Session.MaxEntries, cfg.Session.TTL)
	uc := usecase.New(logger, estimator, sessions, cfg.Booking.URL)

	fmt.Println("Digaxy Assistant — type 'exit' to quit, 'restart' to start over.")
	fmt.Println()

	var sessionID string
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("You: ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())

		switch strings.ToLower(line) {
		case "":
			continue
		case "exit", "quit":
			fmt.Println("Bye!")
			return
		case "restart":
			if sessionID != "" {
				if err := uc.Reset(ctx, model.Scope{SessionID: sessionID}); err != nil {
					fmt.Println("Could not restart: ", err)
					continue
				}
			}
			fmt.Println("Conversation restarted. Say 'hi' whenever you're ready!")
			continue
		}

		out, err := uc.Step(ctx, model.Scope{SessionID: sessionID}, chat.StepInput{
			SessionID: sessionID,
			Message:   line,
		})
		if err != nil {
			if errors.Is(err, chat.ErrEmptyMessage) {
				continue
			}
			fmt.Println("Error: ", err)
			continue
		}
		sessionID = out.SessionID

		fmt.Println()
		fmt.Println("Assistant:", out.Reply)
		for _, hint := range out.FollowUps {
			fmt.Println("  ↳", hint)
		}
		fmt.Println()
	}
}
