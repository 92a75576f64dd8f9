package notifier

import (
	"context"

	"vault-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Dispatch sends one escalation-stage notification to every recipient
	// and reports the per-recipient outcome. Delivery failures are recorded
	// in the output, never returned as an error.
	Dispatch(ctx context.Context, sc model.Scope, ip DispatchInput) (DispatchOutput, error)
}

// PushSender delivers a best-effort push notification to all devices of one
// user. Implemented by the notification domain.
type PushSender interface {
	SendToUser(ctx context.Context, sc model.Scope, userID, title, body string, data map[string]string) error
}
