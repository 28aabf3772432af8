package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Digaxy assistant specifics
	Gemini    GeminiConfig
	Booking   BookingConfig
	Session   SessionConfig
	Telegram  TelegramConfig
	RateLimit RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// GeminiConfig configures the estimation model. An empty APIKey disables the
// model entirely; the deterministic estimator takes over.
type GeminiConfig struct {
	APIKey  string
	Model   string
	APIURL  string
	Timeout time.Duration
}

// BookingConfig carries the hand-off URL emitted in booking confirmations.
type BookingConfig struct {
	URL string
}

type SessionConfig struct {
	TTL        time.Duration
	MaxEntries int
}

type TelegramConfig struct {
	BotToken   string
	WebhookURL string
}

type RateLimitConfig struct {
	PerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Gemini
	cfg.Gemini.APIKey = viper.GetString("gemini.api_key")
	cfg.Gemini.Model = viper.GetString("gemini.model")
	cfg.Gemini.APIURL = viper.GetString("gemini.api_url")
	cfg.Gemini.Timeout = viper.GetDuration("gemini.timeout")
	if geminiKey := viper.GetString("gemini_api_key"); geminiKey != "" {
		cfg.Gemini.APIKey = geminiKey
	}

	// Booking hand-off
	cfg.Booking.URL = viper.GetString("booking.url")

	// Sessions
	cfg.Session.TTL = viper.GetDuration("session.ttl")
	cfg.Session.MaxEntries = viper.GetInt("session.max_entries")

	// Telegram
	cfg.Telegram.BotToken = viper.GetString("telegram.bot_token")
	cfg.Telegram.WebhookURL = viper.GetString("telegram.webhook_url")
	if tgToken := viper.GetString("telegram_bot_token"); tgToken != "" {
		cfg.Telegram.BotToken = tgToken
	}

	// Rate limiting
	cfg.RateLimit.PerMin = viper.GetInt("rate_limit.per_min")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("gemini.model", "gemini-2.5-flash")
	viper.SetDefault("gemini.timeout", "30s")
	viper.SetDefault("booking.url", "http://localhost:3000/book")
	viper.SetDefault("session.ttl", "30m")
	viper.SetDefault("session.max_entries", 10000)
	viper.SetDefault("rate_limit.per_min", 60)
}
