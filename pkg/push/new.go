package push

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"vault-srv/pkg/log"
)

var (
	ErrMissingServiceAccount = errors.New("push service account json is required")
	ErrMissingProjectID      = errors.New("push project id is required")
)

// New creates a Push client from a Firebase service account key.
func New(l log.Logger, cfg Config) (*Push, error) {
	if len(cfg.ServiceAccountJSON) == 0 {
		return nil, ErrMissingServiceAccount
	}

	var account serviceAccount
	if err := json.Unmarshal(cfg.ServiceAccountJSON, &account); err != nil {
		return nil, fmt.Errorf("failed to parse service account json: %w", err)
	}
	if account.ClientEmail == "" || account.PrivateKey == "" {
		return nil, ErrMissingServiceAccount
	}
	if account.TokenURI == "" {
		account.TokenURI = defaultTokenURI
	}

	if cfg.ProjectID == "" {
		cfg.ProjectID = account.ProjectID
	}
	if cfg.ProjectID == "" {
		return nil, ErrMissingProjectID
	}

	return &Push{
		l:       l,
		config:  cfg,
		account: account,
		client:  &http.Client{Timeout: defaultTimeout},
	}, nil
}
