package postgres

import (
	"context"

	"vault-srv/internal/model"
	"vault-srv/internal/notification/repository"
	postgresPkg "vault-srv/pkg/postgre"

	"github.com/lib/pq"
)

const listByUserQuery = `
	SELECT id, user_id, token, platform, created_at, updated_at
	FROM device_tokens
	WHERE user_id = $1
	ORDER BY created_at ASC`

func (r *implRepository) ListByUser(ctx context.Context, sc model.Scope, userID string) ([]model.DeviceToken, error) {
	if err := postgresPkg.IsUUID(userID); err != nil {
		r.l.Errorf(ctx, "internal.notification.repository.postgres.ListByUser.IsUUID: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, listByUserQuery, userID)
	if err != nil {
		r.l.Errorf(ctx, "internal.notification.repository.postgres.ListByUser: %v", err)
		return nil, err
	}
	defer rows.Close()

	var tokens []model.DeviceToken
	for rows.Next() {
		var t model.DeviceToken
		if err := rows.Scan(&t.ID, &t.UserID, &t.Token, &t.Platform, &t.CreatedAt, &t.UpdatedAt); err != nil {
			r.l.Errorf(ctx, "internal.notification.repository.postgres.ListByUser.Scan: %v", err)
			return nil, err
		}
		tokens = append(tokens, t)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "internal.notification.repository.postgres.ListByUser.Rows: %v", err)
		return nil, err
	}

	return tokens, nil
}

const upsertQuery = `
	INSERT INTO device_tokens (id, user_id, token, platform, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $5)
	ON CONFLICT (token) DO UPDATE
	SET user_id = EXCLUDED.user_id, platform = EXCLUDED.platform, updated_at = EXCLUDED.updated_at
	RETURNING id, user_id, token, platform, created_at, updated_at`

func (r *implRepository) Upsert(ctx context.Context, sc model.Scope, opts repository.UpsertOptions) (model.DeviceToken, error) {
	if err := postgresPkg.IsUUID(opts.UserID); err != nil {
		r.l.Errorf(ctx, "internal.notification.repository.postgres.Upsert.IsUUID: %v", err)
		return model.DeviceToken{}, err
	}

	var t model.DeviceToken
	err := r.db.QueryRowContext(ctx, upsertQuery,
		postgresPkg.NewUUID(),
		opts.UserID,
		opts.Token,
		opts.Platform,
		r.clock(),
	).Scan(&t.ID, &t.UserID, &t.Token, &t.Platform, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		r.l.Errorf(ctx, "internal.notification.repository.postgres.Upsert: %v", err)
		return model.DeviceToken{}, err
	}

	return t, nil
}

const deleteByTokenQuery = `
	DELETE FROM device_tokens
	WHERE token = $1`

func (r *implRepository) DeleteByToken(ctx context.Context, sc model.Scope, token string) error {
	if _, err := r.db.ExecContext(ctx, deleteByTokenQuery, token); err != nil {
		r.l.Errorf(ctx, "internal.notification.repository.postgres.DeleteByToken: %v", err)
		return err
	}
	return nil
}

const deleteTokensQuery = `
	DELETE FROM device_tokens
	WHERE token = ANY($1)`

func (r *implRepository) DeleteTokens(ctx context.Context, sc model.Scope, tokens []string) error {
	if len(tokens) == 0 {
		return nil
	}

	if _, err := r.db.ExecContext(ctx, deleteTokensQuery, pq.Array(tokens)); err != nil {
		r.l.Errorf(ctx, "internal.notification.repository.postgres.DeleteTokens: %v", err)
		return err
	}
	return nil
}
