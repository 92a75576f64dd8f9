package usecase

import (
	"context"

	"vault-srv/internal/model"
	"vault-srv/internal/notification"
	"vault-srv/internal/notification/repository"
)

func (uc *usecase) SendPush(ctx context.Context, sc model.Scope, ip notification.SendPushInput) (notification.SendPushOutput, error) {
	devices, err := uc.repo.ListByUser(ctx, sc, ip.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "internal.notification.usecase.SendPush: %v", err)
		return notification.SendPushOutput{}, err
	}

	// Without a configured gateway the send is a silent no-op, same as
	// having no registered devices.
	if len(devices) == 0 || uc.push == nil {
		return notification.SendPushOutput{}, nil
	}

	tokens := make([]string, 0, len(devices))
	for _, d := range devices {
		tokens = append(tokens, d.Token)
	}

	result, err := uc.push.SendToTokens(ctx, tokens, ip.Title, ip.Body, ip.Data)
	if err != nil {
		uc.l.Errorf(ctx, "internal.notification.usecase.SendPush.SendToTokens: %v", err)
		return notification.SendPushOutput{}, err
	}

	// Tokens the gateway no longer recognizes are pruned so later sends do
	// not keep hitting them. Pruning failure is not fatal.
	if len(result.InvalidTokens) > 0 {
		if err := uc.repo.DeleteTokens(ctx, sc, result.InvalidTokens); err != nil {
			uc.l.Warnf(ctx, "internal.notification.usecase.SendPush.DeleteTokens: %v", err)
		}
	}

	return notification.SendPushOutput{
		Sent:    result.Sent,
		Total:   result.Total,
		Cleaned: len(result.InvalidTokens),
	}, nil
}

// SendToUser satisfies the dispatcher-facing sender interface.
func (uc *usecase) SendToUser(ctx context.Context, sc model.Scope, userID, title, body string, data map[string]string) error {
	_, err := uc.SendPush(ctx, sc, notification.SendPushInput{
		UserID: userID,
		Title:  title,
		Body:   body,
		Data:   data,
	})
	return err
}

func (uc *usecase) RegisterDevice(ctx context.Context, sc model.Scope, ip notification.RegisterDeviceInput) (model.DeviceToken, error) {
	if ip.Token == "" {
		return model.DeviceToken{}, notification.ErrTokenRequired
	}
	switch ip.Platform {
	case model.PlatformIOS, model.PlatformAndroid, model.PlatformWeb:
	default:
		return model.DeviceToken{}, notification.ErrInvalidPlatform
	}

	token, err := uc.repo.Upsert(ctx, sc, repository.UpsertOptions{
		UserID:   sc.UserID,
		Token:    ip.Token,
		Platform: ip.Platform,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.notification.usecase.RegisterDevice: %v", err)
		return model.DeviceToken{}, err
	}

	return token, nil
}

func (uc *usecase) UnregisterDevice(ctx context.Context, sc model.Scope, token string) error {
	if token == "" {
		return notification.ErrTokenRequired
	}

	if err := uc.repo.DeleteByToken(ctx, sc, token); err != nil {
		uc.l.Errorf(ctx, "internal.notification.usecase.UnregisterDevice: %v", err)
		return err
	}

	return nil
}
