package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vault-srv/internal/model"
	"vault-srv/internal/notifier"
	pkgLog "vault-srv/pkg/log"
	"vault-srv/pkg/mailer"
)

func testLogger() pkgLog.Logger {
	return pkgLog.Init(pkgLog.ZapConfig{
		Level:    pkgLog.LevelFatal,
		Mode:     pkgLog.ModeProduction,
		Encoding: pkgLog.EncodingJSON,
	})
}

type fakeMailer struct {
	sent    []mailer.SendInput
	failFor map[string]error
}

func (f *fakeMailer) Send(ctx context.Context, input mailer.SendInput) (*mailer.Receipt, error) {
	if err, ok := f.failFor[input.To[0]]; ok {
		return nil, err
	}
	f.sent = append(f.sent, input)
	return &mailer.Receipt{ID: "receipt-1"}, nil
}

type fakePush struct {
	titles []string
	bodies []string
}

func (f *fakePush) SendToUser(ctx context.Context, sc model.Scope, userID, title, body string, data map[string]string) error {
	f.titles = append(f.titles, title)
	f.bodies = append(f.bodies, body)
	return nil
}

func owner() model.Profile {
	return model.Profile{ID: "owner-1", Email: "owner@example.com", FullName: "Owner One"}
}

func TestDispatch_UserWarning(t *testing.T) {
	m := &fakeMailer{}
	uc := New(testLogger(), m, nil)

	out, err := uc.Dispatch(context.Background(), model.Scope{}, notifier.DispatchInput{
		Stage:         model.AlertStageUserWarning,
		Owner:         owner(),
		Recipients:    []notifier.Recipient{{Email: "owner@example.com", Name: "Owner One"}},
		InactiveDays:  2,
		ThresholdDays: 7,
	})
	require.NoError(t, err)
	require.Len(t, out.Results, 1)
	assert.True(t, out.Results[0].Sent)

	require.Len(t, m.sent, 1)
	assert.Equal(t, "Inactivity Alert: 2 days", m.sent[0].Subject)
	assert.Contains(t, m.sent[0].HTML, "inactive for <strong>2 days</strong>")
	assert.Contains(t, m.sent[0].HTML, "We haven't seen you in a while.")
	assert.Contains(t, m.sent[0].HTML, "Family Vault Team")
}

func TestDispatch_UserWarningCustomMessage(t *testing.T) {
	m := &fakeMailer{}
	uc := New(testLogger(), m, nil)

	_, err := uc.Dispatch(context.Background(), model.Scope{}, notifier.DispatchInput{
		Stage:         model.AlertStageUserWarning,
		Owner:         owner(),
		Recipients:    []notifier.Recipient{{Email: "owner@example.com", Name: "Owner One"}},
		InactiveDays:  2,
		ThresholdDays: 7,
		CustomMessage: "Your family is counting on you.",
	})
	require.NoError(t, err)
	require.Len(t, m.sent, 1)
	assert.Contains(t, m.sent[0].HTML, "Your family is counting on you.")
	assert.NotContains(t, m.sent[0].HTML, "We haven't seen you in a while.")
}

func TestDispatch_NomineeWarning(t *testing.T) {
	m := &fakeMailer{}
	uc := New(testLogger(), m, nil)

	out, err := uc.Dispatch(context.Background(), model.Scope{}, notifier.DispatchInput{
		Stage: model.AlertStageNomineeWarning,
		Owner: owner(),
		Recipients: []notifier.Recipient{
			{Email: "n1@example.com", Name: "Nominee One"},
			{Email: "n2@example.com", Name: "Nominee Two"},
		},
		InactiveDays:  5,
		ThresholdDays: 7,
	})
	require.NoError(t, err)
	assert.Len(t, out.Results, 2)

	require.Len(t, m.sent, 2)
	assert.Equal(t, "Inactivity Alert: Owner One", m.sent[0].Subject)
	assert.Contains(t, m.sent[0].HTML, "Hello Nominee One")
	assert.Contains(t, m.sent[1].HTML, "Hello Nominee Two")
	assert.Contains(t, m.sent[0].HTML, "inactive on Family Vault for <strong>5 days</strong>")
}

func TestDispatch_EmergencyGranted(t *testing.T) {
	m := &fakeMailer{}
	uc := New(testLogger(), m, nil)

	_, err := uc.Dispatch(context.Background(), model.Scope{}, notifier.DispatchInput{
		Stage:         model.AlertStageEmergencyGranted,
		Owner:         owner(),
		Recipients:    []notifier.Recipient{{Email: "n1@example.com", Name: "Nominee One"}},
		InactiveDays:  8,
		ThresholdDays: 7,
	})
	require.NoError(t, err)

	require.Len(t, m.sent, 1)
	assert.Equal(t, "Emergency Access Granted: Owner One", m.sent[0].Subject)
	assert.Contains(t, m.sent[0].HTML, "emergency access portal")
}

func TestDispatch_OwnerNameFallsBackToEmail(t *testing.T) {
	m := &fakeMailer{}
	uc := New(testLogger(), m, nil)

	_, err := uc.Dispatch(context.Background(), model.Scope{}, notifier.DispatchInput{
		Stage:         model.AlertStageNomineeWarning,
		Owner:         model.Profile{ID: "owner-1", Email: "owner@example.com"},
		Recipients:    []notifier.Recipient{{Email: "n1@example.com", Name: "Nominee One"}},
		InactiveDays:  5,
		ThresholdDays: 7,
	})
	require.NoError(t, err)
	require.Len(t, m.sent, 1)
	assert.Equal(t, "Inactivity Alert: owner@example.com", m.sent[0].Subject)
}

func TestDispatch_FailedDeliveryIsRecordedNotReturned(t *testing.T) {
	m := &fakeMailer{failFor: map[string]error{"n2@example.com": errors.New("gateway down")}}
	uc := New(testLogger(), m, nil)

	out, err := uc.Dispatch(context.Background(), model.Scope{}, notifier.DispatchInput{
		Stage: model.AlertStageNomineeWarning,
		Owner: owner(),
		Recipients: []notifier.Recipient{
			{Email: "n1@example.com", Name: "Nominee One"},
			{Email: "n2@example.com", Name: "Nominee Two"},
		},
		InactiveDays:  5,
		ThresholdDays: 7,
	})
	require.NoError(t, err)
	require.Len(t, out.Results, 2)
	assert.True(t, out.Results[0].Sent)
	assert.False(t, out.Results[1].Sent)
	assert.Equal(t, "gateway down", out.Results[1].Reason)
}

func TestDispatch_NoRecipients(t *testing.T) {
	uc := New(testLogger(), &fakeMailer{}, nil)

	_, err := uc.Dispatch(context.Background(), model.Scope{}, notifier.DispatchInput{
		Stage: model.AlertStageUserWarning,
		Owner: owner(),
	})
	assert.ErrorIs(t, err, notifier.ErrNoRecipients)
}

func TestDispatch_UnknownStage(t *testing.T) {
	uc := New(testLogger(), &fakeMailer{}, nil)

	_, err := uc.Dispatch(context.Background(), model.Scope{}, notifier.DispatchInput{
		Stage:      "vacation",
		Owner:      owner(),
		Recipients: []notifier.Recipient{{Email: "owner@example.com"}},
	})
	assert.ErrorIs(t, err, notifier.ErrUnknownStage)
}

func TestDispatch_OwnerPush(t *testing.T) {
	push := &fakePush{}
	uc := New(testLogger(), &fakeMailer{}, push)

	_, err := uc.Dispatch(context.Background(), model.Scope{}, notifier.DispatchInput{
		Stage:         model.AlertStageEmergencyGranted,
		Owner:         owner(),
		Recipients:    []notifier.Recipient{{Email: "n1@example.com", Name: "Nominee One"}},
		InactiveDays:  8,
		ThresholdDays: 7,
		OwnerPush:     true,
	})
	require.NoError(t, err)
	require.Len(t, push.titles, 1)
	assert.Equal(t, "Emergency Access Granted", push.titles[0])
}
