package postgres

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vault-srv/internal/inactivity/repository"
	"vault-srv/internal/model"
	"vault-srv/pkg/paginator"
)

func TestCreateAlert(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := repo.clock()
	reason := "gateway down"

	rows := sqlmock.NewRows([]string{
		"id", "user_id", "nominee_id", "stage", "recipient_type", "recipient",
		"inactive_days", "message", "status", "fail_reason", "created_at",
	}).AddRow(
		"3c4d5e6f-7081-4a33-9e0f-2f4f6c1f9d04", testUserID, nil, model.AlertStageUserWarning, model.RecipientTypeUser, "owner@example.com",
		2, "msg", model.AlertStatusFailed, reason, now,
	)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO inactivity_alerts")).WillReturnRows(rows)

	alert, err := repo.CreateAlert(context.Background(), model.Scope{}, repository.CreateAlertOptions{
		UserID:        testUserID,
		Stage:         model.AlertStageUserWarning,
		RecipientType: model.RecipientTypeUser,
		Recipient:     "owner@example.com",
		InactiveDays:  2,
		Message:       "msg",
		Status:        model.AlertStatusFailed,
		FailReason:    &reason,
	})
	require.NoError(t, err)
	assert.Equal(t, model.AlertStatusFailed, alert.Status)
	assert.Equal(t, model.RecipientTypeUser, alert.RecipientType)
	assert.Nil(t, alert.NomineeID)
	require.NotNil(t, alert.FailReason)
	assert.Equal(t, reason, *alert.FailReason)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLatestAlertByStage_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("FROM inactivity_alerts")).
		WithArgs(testUserID, model.AlertStageUserWarning).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.LatestAlertByStage(context.Background(), model.Scope{}, testUserID, model.AlertStageUserWarning)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestGetAlerts_Paginates(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := repo.clock()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*)")).
		WithArgs(testUserID, "").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(25))

	rows := sqlmock.NewRows([]string{
		"id", "user_id", "nominee_id", "stage", "recipient_type", "recipient",
		"inactive_days", "message", "status", "fail_reason", "created_at",
	}).AddRow(
		"4d5e6f70-8192-4a33-9e0f-2f4f6c1f9d05", testUserID, nil, model.AlertStageNomineeWarning, model.RecipientTypeNominee, "n1@example.com",
		5, "msg", model.AlertStatusSent, nil, now,
	)
	mock.ExpectQuery(regexp.QuoteMeta("FROM inactivity_alerts")).
		WithArgs(testUserID, "", int64(10), int64(10)).
		WillReturnRows(rows)

	alerts, pag, err := repo.GetAlerts(context.Background(), model.Scope{}, repository.GetAlertsOptions{
		Filter:        repository.Filter{UserID: testUserID},
		PaginateQuery: paginator.PaginateQuery{Page: 2, Limit: 10},
	})
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, int64(25), pag.Total)
	assert.Equal(t, 2, pag.CurrentPage)
	assert.NoError(t, mock.ExpectationsWereMet())
}
