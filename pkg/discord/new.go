package discord

import (
	"errors"
	"net/http"

	"vault-srv/pkg/log"
)

var ErrMissingWebhook = errors.New("discord webhook id and token are required")

// New creates a Discord webhook client.
func New(l log.Logger, webhook *DiscordWebhook) (*Discord, error) {
	if webhook == nil || webhook.ID == "" || webhook.Token == "" {
		return nil, ErrMissingWebhook
	}

	return &Discord{
		l:       l,
		webhook: webhook,
		config: Config{
			RetryCount:      defaultRetryCount,
			RetryDelay:      defaultRetryDelay,
			DefaultUsername: "Vault Service",
		},
		client: &http.Client{Timeout: defaultTimeout},
	}, nil
}
