package repository

import (
	"context"

	"vault-srv/internal/model"
	"vault-srv/pkg/paginator"
)

//go:generate mockery --name Repository
type Repository interface {
	// ListActiveTriggers returns every enabled trigger with its owner profile.
	ListActiveTriggers(ctx context.Context, sc model.Scope) ([]TriggerWithProfile, error)

	// GetTriggerByUserID returns the trigger row owned by the given user.
	GetTriggerByUserID(ctx context.Context, sc model.Scope, userID string) (model.InactivityTrigger, error)

	// TouchActivity sets last_activity_at to now for the given owner.
	TouchActivity(ctx context.Context, sc model.Scope, userID string) error

	// GrantEmergency latches emergency_access_granted for the trigger. The
	// update is conditional on the flag still being unset; the bool result
	// reports whether this call performed the latch.
	GrantEmergency(ctx context.Context, sc model.Scope, triggerID string) (bool, error)

	// CreateAlert appends one audit row for a notification attempt.
	CreateAlert(ctx context.Context, sc model.Scope, opts CreateAlertOptions) (model.InactivityAlert, error)

	// LatestAlertByStage returns the most recent alert for (owner, stage).
	LatestAlertByStage(ctx context.Context, sc model.Scope, userID, stage string) (model.InactivityAlert, error)

	// GetAlerts lists alerts for one owner, newest first.
	GetAlerts(ctx context.Context, sc model.Scope, opts GetAlertsOptions) ([]model.InactivityAlert, paginator.Paginator, error)

	// ListVerifiedNominees returns the verified nominees of one owner.
	ListVerifiedNominees(ctx context.Context, sc model.Scope, userID string) ([]model.Nominee, error)
}
