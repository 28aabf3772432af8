package telegram

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"digaxy-assistant/internal/chat"
	"digaxy-assistant/internal/model"
	pkgResponse "digaxy-assistant/pkg/response"
	pkgTelegram "digaxy-assistant/pkg/telegram"
)

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// It responds with HTTP 200 immediately and processes the message in a
// background goroutine: Telegram expects a response within a few seconds,
// and a turn that reaches the estimation model can take longer than that.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	// Ignore non-message updates (polls, channel_post, etc.)
	if update.Message == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	// Snapshot the message before spawning goroutine to avoid data races on gin context
	msg := update.Message

	go func() {
		// Detach from HTTP request context (which gets cancelled after response)
		bgCtx := context.Background()
		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "telegram handler: background processMessage failed: %v", err)
			_ = h.bot.SendMessage(msg.Chat.ID, "Something went wrong while handling your message. Please try again.")
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// processMessage handles a single Telegram message. Each chat maps to one
// conversation session, so the dialogue survives across webhook calls.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	if msg.Text == "" {
		return nil
	}

	sessionID := fmt.Sprintf("telegram_%d", msg.Chat.ID)
	sc := model.Scope{
		SessionID: sessionID,
		UserID:    fmt.Sprintf("telegram_%d", msg.From.ID),
		Username:  msg.From.Username,
	}

	// ---- Built-in commands ----
	switch msg.Text {
	case "/start":
		// Reset first: /start mid-conversation must not land a "hello" in
		// whatever state the dialogue happens to be in.
		if err := h.uc.Reset(ctx, sc); err != nil && !errors.Is(err, chat.ErrSessionNotFound) {
			return err
		}
		return h.stepAndReply(ctx, sc, "hello", msg.Chat.ID)
	case "/restart":
		if err := h.uc.Reset(ctx, sc); err != nil && !errors.Is(err, chat.ErrSessionNotFound) {
			return err
		}
		return h.bot.SendMessage(msg.Chat.ID, "Conversation restarted. Say 'hi' whenever you're ready!")
	}

	return h.stepAndReply(ctx, sc, msg.Text, msg.Chat.ID)
}

func (h *handler) stepAndReply(ctx context.Context, sc model.Scope, text string, chatID int64) error {
	output, err := h.uc.Step(ctx, sc, chat.StepInput{SessionID: sc.SessionID, Message: text})
	if err != nil {
		if errors.Is(err, chat.ErrEmptyMessage) {
			return nil
		}
		h.l.Errorf(ctx, "telegram handler: Step failed: %v", err)
		return h.bot.SendMessage(chatID, "Sorry, I couldn't process that. Please try again.")
	}

	reply := output.Reply
	if len(output.FollowUps) > 0 {
		reply += "\n\n_" + strings.Join(output.FollowUps, "\n") + "_"
	}

	return h.bot.SendMessageWithMode(chatID, reply, "Markdown")
}
