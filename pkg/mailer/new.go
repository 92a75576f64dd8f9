package mailer

import (
	"errors"
	"net/http"

	"vault-srv/pkg/log"
)

var (
	ErrMissingAPIKey = errors.New("mailer api key is required")
	ErrMissingFrom   = errors.New("mailer sender address is required")
)

// New creates a Mailer backed by the configured email provider.
func New(l log.Logger, cfg Config) (*Mailer, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	if cfg.From == "" {
		return nil, ErrMissingFrom
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = defaultEndpoint
	}

	return &Mailer{
		l:      l,
		config: cfg,
		client: &http.Client{Timeout: defaultTimeout},
	}, nil
}
