package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vault-srv/internal/model"
	"vault-srv/internal/notification"
	"vault-srv/internal/notification/repository"
	pkgLog "vault-srv/pkg/log"
	"vault-srv/pkg/push"
)

func testLogger() pkgLog.Logger {
	return pkgLog.Init(pkgLog.ZapConfig{
		Level:    pkgLog.LevelFatal,
		Mode:     pkgLog.ModeProduction,
		Encoding: pkgLog.EncodingJSON,
	})
}

type fakeRepo struct {
	devices  map[string][]model.DeviceToken
	upserted []repository.UpsertOptions
	deleted  []string
	pruned   [][]string
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{devices: map[string][]model.DeviceToken{}}
}

func (f *fakeRepo) ListByUser(ctx context.Context, sc model.Scope, userID string) ([]model.DeviceToken, error) {
	return f.devices[userID], nil
}

func (f *fakeRepo) Upsert(ctx context.Context, sc model.Scope, opts repository.UpsertOptions) (model.DeviceToken, error) {
	f.upserted = append(f.upserted, opts)
	return model.DeviceToken{
		ID:       "device-1",
		UserID:   opts.UserID,
		Token:    opts.Token,
		Platform: opts.Platform,
	}, nil
}

func (f *fakeRepo) DeleteByToken(ctx context.Context, sc model.Scope, token string) error {
	f.deleted = append(f.deleted, token)
	return nil
}

func (f *fakeRepo) DeleteTokens(ctx context.Context, sc model.Scope, tokens []string) error {
	f.pruned = append(f.pruned, tokens)
	return nil
}

type fakeGateway struct {
	tokens  []string
	result  push.Result
	sendErr error
}

func (f *fakeGateway) SendToTokens(ctx context.Context, tokens []string, title, body string, data map[string]string) (push.Result, error) {
	if f.sendErr != nil {
		return push.Result{}, f.sendErr
	}
	f.tokens = tokens
	return f.result, nil
}

func TestSendPush(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "owner-1"}

	t.Run("fans out to every registered device", func(t *testing.T) {
		repo := newFakeRepo()
		repo.devices["owner-1"] = []model.DeviceToken{
			{Token: "tok-a", Platform: model.PlatformIOS},
			{Token: "tok-b", Platform: model.PlatformAndroid},
		}
		gw := &fakeGateway{result: push.Result{Sent: 2, Total: 2}}
		uc := New(testLogger(), repo, gw)

		out, err := uc.SendPush(ctx, sc, notification.SendPushInput{
			UserID: "owner-1",
			Title:  "Inactivity Alert",
			Body:   "You've been inactive for 2 days.",
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"tok-a", "tok-b"}, gw.tokens)
		assert.Equal(t, 2, out.Sent)
		assert.Equal(t, 0, out.Cleaned)
		assert.Empty(t, repo.pruned)
	})

	t.Run("prunes tokens the gateway rejected", func(t *testing.T) {
		repo := newFakeRepo()
		repo.devices["owner-1"] = []model.DeviceToken{
			{Token: "tok-a", Platform: model.PlatformIOS},
			{Token: "tok-stale", Platform: model.PlatformAndroid},
		}
		gw := &fakeGateway{result: push.Result{Sent: 1, Total: 2, InvalidTokens: []string{"tok-stale"}}}
		uc := New(testLogger(), repo, gw)

		out, err := uc.SendPush(ctx, sc, notification.SendPushInput{UserID: "owner-1", Title: "t", Body: "b"})
		require.NoError(t, err)
		assert.Equal(t, 1, out.Cleaned)
		require.Len(t, repo.pruned, 1)
		assert.Equal(t, []string{"tok-stale"}, repo.pruned[0])
	})

	t.Run("no devices is a no-op", func(t *testing.T) {
		repo := newFakeRepo()
		gw := &fakeGateway{}
		uc := New(testLogger(), repo, gw)

		out, err := uc.SendPush(ctx, sc, notification.SendPushInput{UserID: "owner-1", Title: "t", Body: "b"})
		require.NoError(t, err)
		assert.Zero(t, out.Total)
		assert.Nil(t, gw.tokens)
	})

	t.Run("no gateway is a no-op", func(t *testing.T) {
		repo := newFakeRepo()
		repo.devices["owner-1"] = []model.DeviceToken{{Token: "tok-a", Platform: model.PlatformIOS}}
		uc := New(testLogger(), repo, nil)

		out, err := uc.SendPush(ctx, sc, notification.SendPushInput{UserID: "owner-1", Title: "t", Body: "b"})
		require.NoError(t, err)
		assert.Zero(t, out.Total)
	})
}

func TestRegisterDevice(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "owner-1"}

	t.Run("stores the token under the session user", func(t *testing.T) {
		repo := newFakeRepo()
		uc := New(testLogger(), repo, nil)

		token, err := uc.RegisterDevice(ctx, sc, notification.RegisterDeviceInput{
			Token:    "tok-a",
			Platform: model.PlatformWeb,
		})
		require.NoError(t, err)
		assert.Equal(t, "owner-1", token.UserID)
		require.Len(t, repo.upserted, 1)
		assert.Equal(t, "owner-1", repo.upserted[0].UserID)
	})

	t.Run("empty token", func(t *testing.T) {
		uc := New(testLogger(), newFakeRepo(), nil)

		_, err := uc.RegisterDevice(ctx, sc, notification.RegisterDeviceInput{Platform: model.PlatformIOS})
		assert.ErrorIs(t, err, notification.ErrTokenRequired)
	})

	t.Run("unknown platform", func(t *testing.T) {
		uc := New(testLogger(), newFakeRepo(), nil)

		_, err := uc.RegisterDevice(ctx, sc, notification.RegisterDeviceInput{Token: "tok-a", Platform: "windows"})
		assert.ErrorIs(t, err, notification.ErrInvalidPlatform)
	})
}

func TestUnregisterDevice(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "owner-1"}

	t.Run("removes the token", func(t *testing.T) {
		repo := newFakeRepo()
		uc := New(testLogger(), repo, nil)

		require.NoError(t, uc.UnregisterDevice(ctx, sc, "tok-a"))
		assert.Equal(t, []string{"tok-a"}, repo.deleted)
	})

	t.Run("empty token", func(t *testing.T) {
		uc := New(testLogger(), newFakeRepo(), nil)
		assert.ErrorIs(t, uc.UnregisterDevice(ctx, sc, ""), notification.ErrTokenRequired)
	})
}
