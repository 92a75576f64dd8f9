package postgres

import (
	"context"

	"vault-srv/internal/model"
	"vault-srv/internal/portal/repository"
	postgresPkg "vault-srv/pkg/postgre"
)

const insertOTPQuery = `
	INSERT INTO otp_verifications (id, nominee_id, nominee_email, code_hash, expires_at, created_at)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING id, nominee_id, nominee_email, code_hash, expires_at, verified_at, created_at`

func (r *implRepository) InsertOTP(ctx context.Context, sc model.Scope, opts repository.InsertOTPOptions) (model.OTPVerification, error) {
	if err := postgresPkg.ValidateUUIDs([]string{opts.NomineeID}); err != nil {
		r.l.Errorf(ctx, "internal.portal.repository.postgres.InsertOTP.ValidateUUIDs: %v", err)
		return model.OTPVerification{}, err
	}

	var otp model.OTPVerification
	err := r.db.QueryRowContext(ctx, insertOTPQuery,
		postgresPkg.NewUUID(),
		opts.NomineeID,
		opts.Email,
		opts.CodeHash,
		opts.ExpiresAt,
		r.clock(),
	).Scan(
		&otp.ID,
		&otp.NomineeID,
		&otp.Email,
		&otp.CodeHash,
		&otp.ExpiresAt,
		&otp.VerifiedAt,
		&otp.CreatedAt,
	)
	if err != nil {
		r.l.Errorf(ctx, "internal.portal.repository.postgres.InsertOTP: %v", err)
		return model.OTPVerification{}, err
	}

	return otp, nil
}

const listActiveOTPsQuery = `
	SELECT id, nominee_id, nominee_email, code_hash, expires_at, verified_at, created_at
	FROM otp_verifications
	WHERE nominee_email = $1 AND verified_at IS NULL AND expires_at > $2
	ORDER BY created_at DESC`

func (r *implRepository) ListActiveOTPs(ctx context.Context, sc model.Scope, email string) ([]model.OTPVerification, error) {
	rows, err := r.db.QueryContext(ctx, listActiveOTPsQuery, email, r.clock())
	if err != nil {
		r.l.Errorf(ctx, "internal.portal.repository.postgres.ListActiveOTPs: %v", err)
		return nil, err
	}
	defer rows.Close()

	var otps []model.OTPVerification
	for rows.Next() {
		var otp model.OTPVerification
		if err := rows.Scan(
			&otp.ID,
			&otp.NomineeID,
			&otp.Email,
			&otp.CodeHash,
			&otp.ExpiresAt,
			&otp.VerifiedAt,
			&otp.CreatedAt,
		); err != nil {
			r.l.Errorf(ctx, "internal.portal.repository.postgres.ListActiveOTPs.Scan: %v", err)
			return nil, err
		}
		otps = append(otps, otp)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "internal.portal.repository.postgres.ListActiveOTPs.Rows: %v", err)
		return nil, err
	}

	return otps, nil
}

const consumeOTPQuery = `
	UPDATE otp_verifications
	SET verified_at = $2
	WHERE id = $1 AND verified_at IS NULL AND expires_at > $3`

// ConsumeOTP is the single-use gate. The conditional update means two
// concurrent submissions of the same code can never both succeed, and a
// code that expired after selection can no longer be consumed.
func (r *implRepository) ConsumeOTP(ctx context.Context, sc model.Scope, id string) (bool, error) {
	if err := postgresPkg.ValidateUUIDs([]string{id}); err != nil {
		r.l.Errorf(ctx, "internal.portal.repository.postgres.ConsumeOTP.ValidateUUIDs: %v", err)
		return false, err
	}

	now := r.clock()
	res, err := r.db.ExecContext(ctx, consumeOTPQuery, id, now, now)
	if err != nil {
		r.l.Errorf(ctx, "internal.portal.repository.postgres.ConsumeOTP: %v", err)
		return false, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "internal.portal.repository.postgres.ConsumeOTP.RowsAffected: %v", err)
		return false, err
	}

	return affected > 0, nil
}
