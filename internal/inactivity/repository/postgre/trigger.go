package postgres

import (
	"context"
	"database/sql"

	"github.com/aarondl/null/v8"

	"vault-srv/internal/inactivity/repository"
	"vault-srv/internal/model"
	postgresPkg "vault-srv/pkg/postgre"
)

const listActiveTriggersQuery = `
	SELECT t.id, t.user_id, t.threshold_days, t.last_activity_at,
	       t.is_active, t.email_enabled, t.sms_enabled, t.custom_message,
	       t.emergency_access_granted, t.emergency_granted_at,
	       t.created_at, t.updated_at,
	       p.email, p.full_name, p.email_enabled, p.push_enabled
	FROM inactivity_triggers t
	JOIN profiles p ON p.id = t.user_id
	WHERE t.is_active = TRUE
	ORDER BY t.last_activity_at ASC`

func (r *implRepository) ListActiveTriggers(ctx context.Context, sc model.Scope) ([]repository.TriggerWithProfile, error) {
	rows, err := r.db.QueryContext(ctx, listActiveTriggersQuery)
	if err != nil {
		r.l.Errorf(ctx, "internal.inactivity.repository.postgres.ListActiveTriggers: %v", err)
		return nil, err
	}
	defer rows.Close()

	var out []repository.TriggerWithProfile
	for rows.Next() {
		var (
			item      repository.TriggerWithProfile
			customMsg null.String
			grantedAt null.Time
			fullName  null.String
		)
		if err := rows.Scan(
			&item.Trigger.ID,
			&item.Trigger.UserID,
			&item.Trigger.ThresholdDays,
			&item.Trigger.LastActivityAt,
			&item.Trigger.IsActive,
			&item.Trigger.EmailEnabled,
			&item.Trigger.SMSEnabled,
			&customMsg,
			&item.Trigger.EmergencyAccessGranted,
			&grantedAt,
			&item.Trigger.CreatedAt,
			&item.Trigger.UpdatedAt,
			&item.Profile.Email,
			&fullName,
			&item.Profile.EmailEnabled,
			&item.Profile.PushEnabled,
		); err != nil {
			r.l.Errorf(ctx, "internal.inactivity.repository.postgres.ListActiveTriggers.Scan: %v", err)
			return nil, err
		}
		item.Trigger.CustomMessage = customMsg.Ptr()
		item.Trigger.EmergencyGrantedAt = grantedAt.Ptr()
		// Profiles without a name scan as empty; the dispatcher falls back
		// to the email.
		item.Profile.FullName = fullName.String
		item.Profile.ID = item.Trigger.UserID
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "internal.inactivity.repository.postgres.ListActiveTriggers.Rows: %v", err)
		return nil, err
	}

	return out, nil
}

const getTriggerByUserIDQuery = `
	SELECT id, user_id, threshold_days, last_activity_at,
	       is_active, email_enabled, sms_enabled, custom_message,
	       emergency_access_granted, emergency_granted_at,
	       created_at, updated_at
	FROM inactivity_triggers
	WHERE user_id = $1`

func (r *implRepository) GetTriggerByUserID(ctx context.Context, sc model.Scope, userID string) (model.InactivityTrigger, error) {
	if err := postgresPkg.IsUUID(userID); err != nil {
		r.l.Errorf(ctx, "internal.inactivity.repository.postgres.GetTriggerByUserID.IsUUID: %v", err)
		return model.InactivityTrigger{}, err
	}

	var (
		trigger   model.InactivityTrigger
		customMsg null.String
		grantedAt null.Time
	)
	err := r.db.QueryRowContext(ctx, getTriggerByUserIDQuery, userID).Scan(
		&trigger.ID,
		&trigger.UserID,
		&trigger.ThresholdDays,
		&trigger.LastActivityAt,
		&trigger.IsActive,
		&trigger.EmailEnabled,
		&trigger.SMSEnabled,
		&customMsg,
		&trigger.EmergencyAccessGranted,
		&grantedAt,
		&trigger.CreatedAt,
		&trigger.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return model.InactivityTrigger{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.inactivity.repository.postgres.GetTriggerByUserID: %v", err)
		return model.InactivityTrigger{}, err
	}
	trigger.CustomMessage = customMsg.Ptr()
	trigger.EmergencyGrantedAt = grantedAt.Ptr()

	return trigger, nil
}

const touchActivityQuery = `
	UPDATE inactivity_triggers
	SET last_activity_at = $2, updated_at = $2
	WHERE user_id = $1`

func (r *implRepository) TouchActivity(ctx context.Context, sc model.Scope, userID string) error {
	if err := postgresPkg.IsUUID(userID); err != nil {
		r.l.Errorf(ctx, "internal.inactivity.repository.postgres.TouchActivity.IsUUID: %v", err)
		return err
	}

	res, err := r.db.ExecContext(ctx, touchActivityQuery, userID, r.clock())
	if err != nil {
		r.l.Errorf(ctx, "internal.inactivity.repository.postgres.TouchActivity: %v", err)
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "internal.inactivity.repository.postgres.TouchActivity.RowsAffected: %v", err)
		return err
	}
	if affected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// grantEmergencyQuery latches the flag only when still unset so concurrent
// sweeps cannot both claim the grant.
const grantEmergencyQuery = `
	UPDATE inactivity_triggers
	SET emergency_access_granted = TRUE, emergency_granted_at = $2, updated_at = $2
	WHERE id = $1 AND emergency_access_granted = FALSE`

func (r *implRepository) GrantEmergency(ctx context.Context, sc model.Scope, triggerID string) (bool, error) {
	if err := postgresPkg.IsUUID(triggerID); err != nil {
		r.l.Errorf(ctx, "internal.inactivity.repository.postgres.GrantEmergency.IsUUID: %v", err)
		return false, err
	}

	res, err := r.db.ExecContext(ctx, grantEmergencyQuery, triggerID, r.clock())
	if err != nil {
		r.l.Errorf(ctx, "internal.inactivity.repository.postgres.GrantEmergency: %v", err)
		return false, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "internal.inactivity.repository.postgres.GrantEmergency.RowsAffected: %v", err)
		return false, err
	}

	return affected > 0, nil
}

const listVerifiedNomineesQuery = `
	SELECT id, user_id, email, full_name, status, created_at, updated_at
	FROM nominees
	WHERE user_id = $1 AND status = $2 AND deleted_at IS NULL
	ORDER BY created_at ASC`

func (r *implRepository) ListVerifiedNominees(ctx context.Context, sc model.Scope, userID string) ([]model.Nominee, error) {
	if err := postgresPkg.IsUUID(userID); err != nil {
		r.l.Errorf(ctx, "internal.inactivity.repository.postgres.ListVerifiedNominees.IsUUID: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, listVerifiedNomineesQuery, userID, model.NomineeStatusVerified)
	if err != nil {
		r.l.Errorf(ctx, "internal.inactivity.repository.postgres.ListVerifiedNominees: %v", err)
		return nil, err
	}
	defer rows.Close()

	var nominees []model.Nominee
	for rows.Next() {
		var n model.Nominee
		if err := rows.Scan(&n.ID, &n.UserID, &n.Email, &n.FullName, &n.Status, &n.CreatedAt, &n.UpdatedAt); err != nil {
			r.l.Errorf(ctx, "internal.inactivity.repository.postgres.ListVerifiedNominees.Scan: %v", err)
			return nil, err
		}
		nominees = append(nominees, n)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "internal.inactivity.repository.postgres.ListVerifiedNominees.Rows: %v", err)
		return nil, err
	}

	return nominees, nil
}
