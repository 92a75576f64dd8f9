package discord

import (
	"net/http"
	"time"

	"vault-srv/pkg/log"
)

const (
	// MaxMessageLength is Discord's hard limit for a single message.
	MaxMessageLength = 2000

	defaultTimeout    = 10 * time.Second
	defaultRetryCount = 2
	defaultRetryDelay = 500 * time.Millisecond
)

// DiscordWebhook identifies the target webhook.
type DiscordWebhook struct {
	ID    string
	Token string
}

// Config holds client behaviour settings.
type Config struct {
	RetryCount      int
	RetryDelay      time.Duration
	DefaultUsername string
}

// Discord is a webhook client for the ops channel.
type Discord struct {
	l       log.Logger
	webhook *DiscordWebhook
	config  Config
	client  *http.Client
}

// WebhookPayload is the Discord webhook request body.
type WebhookPayload struct {
	Content  string `json:"content,omitempty"`
	Username string `json:"username,omitempty"`
}
