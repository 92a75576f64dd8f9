package notification

import (
	"context"

	"vault-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// SendPush fans one notification out to every device of a user and
	// prunes tokens the gateway rejected as unregistered.
	SendPush(ctx context.Context, sc model.Scope, ip SendPushInput) (SendPushOutput, error)

	// SendToUser is the fire-and-forget form used by internal dispatchers.
	SendToUser(ctx context.Context, sc model.Scope, userID, title, body string, data map[string]string) error

	// RegisterDevice stores or refreshes one FCM registration token.
	RegisterDevice(ctx context.Context, sc model.Scope, ip RegisterDeviceInput) (model.DeviceToken, error)

	// UnregisterDevice removes one token. Removing an unknown token is a no-op.
	UnregisterDevice(ctx context.Context, sc model.Scope, token string) error
}
