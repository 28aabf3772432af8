package telegram_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"digaxy-assistant/internal/chat"
	"digaxy-assistant/internal/chat/delivery/telegram"
	"digaxy-assistant/internal/model"
	pkgTelegram "digaxy-assistant/pkg/telegram"
)

// ── Mocks ──────────────────────────────────────────────────────────────────

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Info(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Warn(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Error(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...interface{})                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...interface{}) {}
func (m *mockLogger) Panic(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...interface{})  {}

type mockChatUseCase struct {
	stepOutput   chat.StepOutput
	stepErr      error
	gotSessionID string
	gotMessage   string
	resetCalled  bool
}

func (m *mockChatUseCase) Step(ctx context.Context, sc model.Scope, input chat.StepInput) (chat.StepOutput, error) {
	m.gotSessionID = input.SessionID
	m.gotMessage = input.Message
	return m.stepOutput, m.stepErr
}

func (m *mockChatUseCase) Reset(ctx context.Context, sc model.Scope) error {
	m.resetCalled = true
	return nil
}

// botRecorder captures outgoing sendMessage calls and signals each one.
type botRecorder struct {
	texts chan string
}

func newBotServer(rec *botRecorder) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Text string `json:"text"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		rec.texts <- body.Text
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok": true}`))
	}))
}

func postUpdate(t *testing.T, h telegram.Handler, update pkgTelegram.Update) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	payload, err := json.Marshal(update)
	if err != nil {
		t.Fatalf("marshal update: %v", err)
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/telegram/webhook", bytes.NewReader(payload))
	c.Request.Header.Set("Content-Type", "application/json")

	h.HandleWebhook(c)
	return w
}

func textUpdate(chatID, userID int64, text string) pkgTelegram.Update {
	return pkgTelegram.Update{
		UpdateID: 1,
		Message: &pkgTelegram.Message{
			MessageID: 1,
			From:      &pkgTelegram.User{ID: userID, Username: "tester"},
			Chat:      &pkgTelegram.Chat{ID: chatID, Type: "private"},
			Text:      text,
		},
	}
}

func waitForText(t *testing.T, rec *botRecorder) string {
	t.Helper()
	select {
	case text := <-rec.texts:
		return text
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for outgoing Telegram message")
		return ""
	}
}

// ── Tests ──────────────────────────────────────────────────────────────────

func TestHandleWebhookRepliesWithStepOutput(t *testing.T) {
	rec := &botRecorder{texts: make(chan string, 1)}
	srv := newBotServer(rec)
	defer srv.Close()

	bot := pkgTelegram.NewBot("test-token")
	bot.SetAPIURL(srv.URL)

	uc := &mockChatUseCase{stepOutput: chat.StepOutput{
		Reply:     "Which vehicle works for you?",
		FollowUps: []string{"Say 'yes' to continue or 'no' to cancel"},
	}}
	h := telegram.New(&mockLogger{}, uc, bot)

	w := postUpdate(t, h, textUpdate(42, 7, "a van please"))

	if w.Code != http.StatusOK {
		t.Errorf("webhook status = %d, want 200", w.Code)
	}

	text := waitForText(t, rec)
	if !strings.Contains(text, "Which vehicle works for you?") {
		t.Errorf("outgoing text = %q", text)
	}
	if !strings.Contains(text, "Say 'yes' to continue") {
		t.Errorf("follow-up hint missing from outgoing text: %q", text)
	}
	if uc.gotSessionID != "telegram_42" {
		t.Errorf("session id = %q, want telegram_42", uc.gotSessionID)
	}
	if uc.gotMessage != "a van please" {
		t.Errorf("message = %q", uc.gotMessage)
	}
}

func TestHandleWebhookStartCommandGreets(t *testing.T) {
	rec := &botRecorder{texts: make(chan string, 1)}
	srv := newBotServer(rec)
	defer srv.Close()

	bot := pkgTelegram.NewBot("test-token")
	bot.SetAPIURL(srv.URL)

	uc := &mockChatUseCase{stepOutput: chat.StepOutput{Reply: "welcome"}}
	h := telegram.New(&mockLogger{}, uc, bot)

	postUpdate(t, h, textUpdate(42, 7, "/start"))
	waitForText(t, rec)

	if !uc.resetCalled {
		t.Error("/start should reset any in-progress session first")
	}
	if uc.gotMessage != "hello" {
		t.Errorf("/start should step with a greeting, got %q", uc.gotMessage)
	}
}

func TestHandleWebhookRestartCommandResets(t *testing.T) {
	rec := &botRecorder{texts: make(chan string, 1)}
	srv := newBotServer(rec)
	defer srv.Close()

	bot := pkgTelegram.NewBot("test-token")
	bot.SetAPIURL(srv.URL)

	uc := &mockChatUseCase{}
	h := telegram.New(&mockLogger{}, uc, bot)

	postUpdate(t, h, textUpdate(42, 7, "/restart"))
	text := waitForText(t, rec)

	if !uc.resetCalled {
		t.Error("/restart did not reset the session")
	}
	if !strings.Contains(text, "restarted") {
		t.Errorf("outgoing text = %q", text)
	}
}

func TestHandleWebhookIgnoresNonMessageUpdates(t *testing.T) {
	uc := &mockChatUseCase{}
	h := telegram.New(&mockLogger{}, uc, pkgTelegram.NewBot("test-token"))

	w := postUpdate(t, h, pkgTelegram.Update{UpdateID: 2})

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
	if uc.gotMessage != "" {
		t.Error("non-message update should not reach the use case")
	}
}
