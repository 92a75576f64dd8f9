package http

import (
	"vault-srv/internal/inactivity"
	"vault-srv/internal/model"
	"vault-srv/pkg/paginator"
)

// checkResp mirrors the scheduler contract and is returned without the
// standard response envelope.
type checkResp struct {
	Success        bool     `json:"success"`
	ProcessedUsers int      `json:"processedUsers"`
	UserIDs        []string `json:"userIds"`
}

func newCheckResp(o inactivity.CheckOutput) checkResp {
	userIDs := o.UserIDs
	if userIDs == nil {
		userIDs = []string{}
	}
	return checkResp{
		Success:        true,
		ProcessedUsers: o.ProcessedUsers,
		UserIDs:        userIDs,
	}
}

type getAlertsReq struct {
	UserID string `form:"user_id"`
	Stage  string `form:"stage"`
	paginator.PaginateQuery
}

func (r getAlertsReq) toInput() inactivity.GetAlertsInput {
	return inactivity.GetAlertsInput{
		UserID:        r.UserID,
		Stage:         r.Stage,
		PaginateQuery: r.PaginateQuery,
	}
}

type alertItem struct {
	ID            string  `json:"id"`
	UserID        string  `json:"user_id"`
	NomineeID     *string `json:"nominee_id,omitempty"`
	Stage         string  `json:"stage"`
	RecipientType string  `json:"recipient_type"`
	Recipient     string  `json:"recipient"`
	InactiveDays  int     `json:"inactive_days"`
	Message       string  `json:"message"`
	Status        string  `json:"status"`
	FailReason    *string `json:"fail_reason,omitempty"`
	CreatedAt     string  `json:"created_at"`
}

type getAlertsResp struct {
	Alerts    []alertItem                 `json:"alerts"`
	Paginator paginator.PaginatorResponse `json:"paginator"`
}

func newGetAlertsResp(o inactivity.GetAlertsOutput) getAlertsResp {
	items := make([]alertItem, 0, len(o.Alerts))
	for _, a := range o.Alerts {
		items = append(items, newAlertItem(a))
	}
	return getAlertsResp{
		Alerts:    items,
		Paginator: o.Paginator.ToResponse(),
	}
}

func newAlertItem(a model.InactivityAlert) alertItem {
	return alertItem{
		ID:            a.ID,
		UserID:        a.UserID,
		NomineeID:     a.NomineeID,
		Stage:         a.Stage,
		RecipientType: a.RecipientType,
		Recipient:     a.Recipient,
		InactiveDays:  a.InactiveDays,
		Message:       a.Message,
		Status:        a.Status,
		FailReason:    a.FailReason,
		CreatedAt:     a.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
}
