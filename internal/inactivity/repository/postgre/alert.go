package postgres

import (
	"context"
	"database/sql"

	"github.com/aarondl/null/v8"

	"vault-srv/internal/inactivity/repository"
	"vault-srv/internal/model"
	"vault-srv/pkg/paginator"
	postgresPkg "vault-srv/pkg/postgre"
)

const createAlertQuery = `
	INSERT INTO inactivity_alerts
		(id, user_id, nominee_id, stage, recipient_type, recipient, inactive_days, message, status, fail_reason, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	RETURNING id, user_id, nominee_id, stage, recipient_type, recipient, inactive_days, message, status, fail_reason, created_at`

func (r *implRepository) CreateAlert(ctx context.Context, sc model.Scope, opts repository.CreateAlertOptions) (model.InactivityAlert, error) {
	if err := postgresPkg.IsUUID(opts.UserID); err != nil {
		r.l.Errorf(ctx, "internal.inactivity.repository.postgres.CreateAlert.IsUUID: %v", err)
		return model.InactivityAlert{}, err
	}

	var (
		alert         model.InactivityAlert
		outNomineeID  null.String
		outFailReason null.String
	)
	err := r.db.QueryRowContext(ctx, createAlertQuery,
		postgresPkg.NewUUID(),
		opts.UserID,
		null.StringFromPtr(opts.NomineeID),
		opts.Stage,
		opts.RecipientType,
		opts.Recipient,
		opts.InactiveDays,
		opts.Message,
		opts.Status,
		null.StringFromPtr(opts.FailReason),
		r.clock(),
	).Scan(
		&alert.ID,
		&alert.UserID,
		&outNomineeID,
		&alert.Stage,
		&alert.RecipientType,
		&alert.Recipient,
		&alert.InactiveDays,
		&alert.Message,
		&alert.Status,
		&outFailReason,
		&alert.CreatedAt,
	)
	if err != nil {
		r.l.Errorf(ctx, "internal.inactivity.repository.postgres.CreateAlert: %v", err)
		return model.InactivityAlert{}, err
	}
	alert.NomineeID = outNomineeID.Ptr()
	alert.FailReason = outFailReason.Ptr()

	return alert, nil
}

const latestAlertByStageQuery = `
	SELECT id, user_id, nominee_id, stage, recipient_type, recipient, inactive_days, message, status, fail_reason, created_at
	FROM inactivity_alerts
	WHERE user_id = $1 AND stage = $2
	ORDER BY created_at DESC
	LIMIT 1`

func (r *implRepository) LatestAlertByStage(ctx context.Context, sc model.Scope, userID, stage string) (model.InactivityAlert, error) {
	if err := postgresPkg.IsUUID(userID); err != nil {
		r.l.Errorf(ctx, "internal.inactivity.repository.postgres.LatestAlertByStage.IsUUID: %v", err)
		return model.InactivityAlert{}, err
	}

	var (
		alert      model.InactivityAlert
		nomineeID  null.String
		failReason null.String
	)
	err := r.db.QueryRowContext(ctx, latestAlertByStageQuery, userID, stage).Scan(
		&alert.ID,
		&alert.UserID,
		&nomineeID,
		&alert.Stage,
		&alert.RecipientType,
		&alert.Recipient,
		&alert.InactiveDays,
		&alert.Message,
		&alert.Status,
		&failReason,
		&alert.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return model.InactivityAlert{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.inactivity.repository.postgres.LatestAlertByStage: %v", err)
		return model.InactivityAlert{}, err
	}
	alert.NomineeID = nomineeID.Ptr()
	alert.FailReason = failReason.Ptr()

	return alert, nil
}

const getAlertsQuery = `
	SELECT id, user_id, nominee_id, stage, recipient_type, recipient, inactive_days, message, status, fail_reason, created_at
	FROM inactivity_alerts
	WHERE user_id = $1 AND ($2 = '' OR stage = $2)
	ORDER BY created_at DESC
	LIMIT $3 OFFSET $4`

const countAlertsQuery = `
	SELECT COUNT(*)
	FROM inactivity_alerts
	WHERE user_id = $1 AND ($2 = '' OR stage = $2)`

func (r *implRepository) GetAlerts(ctx context.Context, sc model.Scope, opts repository.GetAlertsOptions) ([]model.InactivityAlert, paginator.Paginator, error) {
	if err := postgresPkg.IsUUID(opts.Filter.UserID); err != nil {
		r.l.Errorf(ctx, "internal.inactivity.repository.postgres.GetAlerts.IsUUID: %v", err)
		return nil, paginator.Paginator{}, err
	}

	pq := opts.PaginateQuery
	pq.Adjust()

	var total int64
	if err := r.db.QueryRowContext(ctx, countAlertsQuery, opts.Filter.UserID, opts.Filter.Stage).Scan(&total); err != nil {
		r.l.Errorf(ctx, "internal.inactivity.repository.postgres.GetAlerts.Count: %v", err)
		return nil, paginator.Paginator{}, err
	}

	rows, err := r.db.QueryContext(ctx, getAlertsQuery, opts.Filter.UserID, opts.Filter.Stage, pq.Limit, pq.Offset())
	if err != nil {
		r.l.Errorf(ctx, "internal.inactivity.repository.postgres.GetAlerts: %v", err)
		return nil, paginator.Paginator{}, err
	}
	defer rows.Close()

	var alerts []model.InactivityAlert
	for rows.Next() {
		var (
			alert      model.InactivityAlert
			nomineeID  null.String
			failReason null.String
		)
		if err := rows.Scan(
			&alert.ID,
			&alert.UserID,
			&nomineeID,
			&alert.Stage,
			&alert.RecipientType,
			&alert.Recipient,
			&alert.InactiveDays,
			&alert.Message,
			&alert.Status,
			&failReason,
			&alert.CreatedAt,
		); err != nil {
			r.l.Errorf(ctx, "internal.inactivity.repository.postgres.GetAlerts.Scan: %v", err)
			return nil, paginator.Paginator{}, err
		}
		alert.NomineeID = nomineeID.Ptr()
		alert.FailReason = failReason.Ptr()
		alerts = append(alerts, alert)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "internal.inactivity.repository.postgres.GetAlerts.Rows: %v", err)
		return nil, paginator.Paginator{}, err
	}

	pag := paginator.Paginator{
		Total:       total,
		Count:       int64(len(alerts)),
		PerPage:     pq.Limit,
		CurrentPage: pq.Page,
	}

	return alerts, pag, nil
}
