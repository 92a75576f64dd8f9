package postgres

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vault-srv/internal/inactivity/repository"
	"vault-srv/internal/model"
	pkgLog "vault-srv/pkg/log"
)

const (
	testUserID    = "0f9b2a54-8c0e-4a33-9e0f-2f4f6c1f9d01"
	testTriggerID = "1a2b3c4d-5e6f-4a33-9e0f-2f4f6c1f9d02"
)

func newRepoWithMock(t *testing.T) (*implRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)

	l := pkgLog.Init(pkgLog.ZapConfig{
		Level:    pkgLog.LevelFatal,
		Mode:     pkgLog.ModeProduction,
		Encoding: pkgLog.EncodingJSON,
	})

	repo := New(l, db)
	repo.clock = func() time.Time {
		return time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	}
	return repo, mock, db
}

func TestListActiveTriggers(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := repo.clock()
	lastActivity := now.Add(-48 * time.Hour)

	rows := sqlmock.NewRows([]string{
		"id", "user_id", "threshold_days", "last_activity_at",
		"is_active", "email_enabled", "sms_enabled", "custom_message",
		"emergency_access_granted", "emergency_granted_at",
		"created_at", "updated_at",
		"email", "full_name", "p_email_enabled", "push_enabled",
	}).AddRow(
		testTriggerID, testUserID, 7, lastActivity,
		true, true, false, "Please come back",
		false, nil,
		now, now,
		"owner@example.com", "Owner One", true, true,
	)

	mock.ExpectQuery(regexp.QuoteMeta("FROM inactivity_triggers t")).WillReturnRows(rows)

	out, err := repo.ListActiveTriggers(context.Background(), model.Scope{})
	require.NoError(t, err)
	require.Len(t, out, 1)

	trigger := out[0].Trigger
	assert.Equal(t, testUserID, trigger.UserID)
	assert.Equal(t, 7, trigger.ThresholdDays)
	assert.False(t, trigger.SMSEnabled)
	require.NotNil(t, trigger.CustomMessage)
	assert.Equal(t, "Please come back", *trigger.CustomMessage)
	assert.Nil(t, trigger.EmergencyGrantedAt)
	assert.Equal(t, testUserID, out[0].Profile.ID)
	assert.Equal(t, "owner@example.com", out[0].Profile.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListActiveTriggers_NullProfileName(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := repo.clock()
	rows := sqlmock.NewRows([]string{
		"id", "user_id", "threshold_days", "last_activity_at",
		"is_active", "email_enabled", "sms_enabled", "custom_message",
		"emergency_access_granted", "emergency_granted_at",
		"created_at", "updated_at",
		"email", "full_name", "p_email_enabled", "push_enabled",
	}).AddRow(
		testTriggerID, testUserID, 7, now.Add(-48*time.Hour),
		true, true, false, nil,
		false, nil,
		now, now,
		"owner@example.com", nil, true, true,
	)

	mock.ExpectQuery(regexp.QuoteMeta("FROM inactivity_triggers t")).WillReturnRows(rows)

	out, err := repo.ListActiveTriggers(context.Background(), model.Scope{})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Empty(t, out[0].Profile.FullName)
	assert.Equal(t, "owner@example.com", out[0].Profile.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTouchActivity(t *testing.T) {
	t.Run("updates the row", func(t *testing.T) {
		repo, mock, db := newRepoWithMock(t)
		defer db.Close()

		mock.ExpectExec(regexp.QuoteMeta("UPDATE inactivity_triggers")).
			WithArgs(testUserID, repo.clock()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.TouchActivity(context.Background(), model.Scope{}, testUserID)
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing trigger", func(t *testing.T) {
		repo, mock, db := newRepoWithMock(t)
		defer db.Close()

		mock.ExpectExec(regexp.QuoteMeta("UPDATE inactivity_triggers")).
			WithArgs(testUserID, repo.clock()).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.TouchActivity(context.Background(), model.Scope{}, testUserID)
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("rejects non uuid", func(t *testing.T) {
		repo, _, db := newRepoWithMock(t)
		defer db.Close()

		err := repo.TouchActivity(context.Background(), model.Scope{}, "not-a-uuid")
		assert.Error(t, err)
	})
}

func TestGrantEmergency(t *testing.T) {
	t.Run("latches when unset", func(t *testing.T) {
		repo, mock, db := newRepoWithMock(t)
		defer db.Close()

		mock.ExpectExec(regexp.QuoteMeta("SET emergency_access_granted = TRUE")).
			WithArgs(testTriggerID, repo.clock()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		latched, err := repo.GrantEmergency(context.Background(), model.Scope{}, testTriggerID)
		require.NoError(t, err)
		assert.True(t, latched)
	})

	t.Run("already latched", func(t *testing.T) {
		repo, mock, db := newRepoWithMock(t)
		defer db.Close()

		mock.ExpectExec(regexp.QuoteMeta("SET emergency_access_granted = TRUE")).
			WithArgs(testTriggerID, repo.clock()).
			WillReturnResult(sqlmock.NewResult(0, 0))

		latched, err := repo.GrantEmergency(context.Background(), model.Scope{}, testTriggerID)
		require.NoError(t, err)
		assert.False(t, latched)
	})
}

func TestListVerifiedNominees(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := repo.clock()
	rows := sqlmock.NewRows([]string{"id", "user_id", "email", "full_name", "status", "created_at", "updated_at"}).
		AddRow("2b3c4d5e-6f70-4a33-9e0f-2f4f6c1f9d03", testUserID, "n1@example.com", "Nominee One", model.NomineeStatusVerified, now, now)

	mock.ExpectQuery(regexp.QuoteMeta("FROM nominees")).
		WithArgs(testUserID, model.NomineeStatusVerified).
		WillReturnRows(rows)

	nominees, err := repo.ListVerifiedNominees(context.Background(), model.Scope{}, testUserID)
	require.NoError(t, err)
	require.Len(t, nominees, 1)
	assert.Equal(t, "n1@example.com", nominees[0].Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}
