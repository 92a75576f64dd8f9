package inactivity

import (
	"context"

	"vault-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// RunCheck sweeps every active trigger, escalates owners past their
	// warning windows and grants emergency access past the threshold.
	RunCheck(ctx context.Context, sc model.Scope) (CheckOutput, error)

	// RecordActivity moves the caller's trigger clock forward to now.
	RecordActivity(ctx context.Context, sc model.Scope) error

	// GetAlerts lists the alert audit trail for the calling owner.
	GetAlerts(ctx context.Context, sc model.Scope, ip GetAlertsInput) (GetAlertsOutput, error)
}
