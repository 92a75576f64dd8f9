package repository

import (
	"context"

	"vault-srv/internal/model"
)

//go:generate mockery --name Repository
type Repository interface {
	// ListByUser returns every registered token of one user.
	ListByUser(ctx context.Context, sc model.Scope, userID string) ([]model.DeviceToken, error)

	// Upsert stores a token, refreshing the row when the token already
	// exists.
	Upsert(ctx context.Context, sc model.Scope, opts UpsertOptions) (model.DeviceToken, error)

	// DeleteByToken removes one token. Unknown tokens are a no-op.
	DeleteByToken(ctx context.Context, sc model.Scope, token string) error

	// DeleteTokens removes a batch of stale tokens.
	DeleteTokens(ctx context.Context, sc model.Scope, tokens []string) error
}

// UpsertOptions contains options for storing a device token.
type UpsertOptions struct {
	UserID   string
	Token    string
	Platform string
}
