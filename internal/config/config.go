package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
)

// Config holds all runtime configuration. Handlers and services receive it
// explicitly instead of reading the environment themselves.
type Config struct {
	// Port is the HTTP listen port.
	Port string

	// BaseURL is the public URL where this service is reachable. Frame
	// post_url and image URLs are built from it.
	BaseURL string

	// AppURL is the mini-app front end the frame's link buttons open.
	AppURL string

	// DatabaseURL is the Postgres (Supabase) connection string.
	DatabaseURL string `validate:"required"`

	// NeynarAPIKey authenticates calls to the Neynar Farcaster API.
	NeynarAPIKey string `validate:"required"`

	// SignerUUID is the Neynar signer used to publish the ack reply.
	SignerUUID string `validate:"required"`

	// NeynarBaseURL overrides the Neynar API endpoint (tests).
	NeynarBaseURL string

	// WebhookSecret enables HMAC verification of inbound webhooks when set.
	WebhookSecret string

	// BotMention + TriggerPhrase together mark a cast as a save request.
	BotMention    string
	TriggerPhrase string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (*Config, error) {
	cfg := &Config{
		Port:          getenv("PORT", "3000"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		NeynarAPIKey:  os.Getenv("NEYNAR_API_KEY"),
		SignerUUID:    os.Getenv("SIGNER_UUID"),
		NeynarBaseURL: getenv("NEYNAR_BASE_URL", "https://api.neynar.com"),
		WebhookSecret: os.Getenv("WEBHOOK_SECRET"),
		BotMention:    getenv("BOT_MENTION", "@infinitehomie"),
		TriggerPhrase: getenv("TRIGGER_PHRASE", "save this"),
	}
	cfg.BaseURL = getenv("BASE_URL", "http://localhost:"+cfg.Port)
	cfg.AppURL = getenv("APP_URL", cfg.BaseURL)

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
