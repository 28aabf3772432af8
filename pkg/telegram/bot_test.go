package telegram

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSendMessage(t *testing.T) {
	var captured SendMessageRequest
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/sendMessage" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		json.NewDecoder(r.Body).Decode(&captured)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"ok":true}`))
	}))
	defer ts.Close()

	bot := NewBot("test-token")
	bot.SetAPIURL(ts.URL)

	if err := bot.SendMessage(42, "hello"); err != nil {
		t.Fatalf("SendMessage returned error: %v", err)
	}
	if captured.ChatID != 42 || captured.Text != "hello" {
		t.Errorf("captured payload = %+v, want chat 42 / text hello", captured)
	}
}

func TestSetWebhookFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"ok":false,"description":"bad url"}`))
	}))
	defer ts.Close()

	bot := NewBot("test-token")
	bot.SetAPIURL(ts.URL)

	if err := bot.SetWebhook("not-a-url"); err == nil {
		t.Fatal("expected error when Telegram rejects webhook, got nil")
	}
}
