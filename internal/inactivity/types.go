package inactivity

import (
	"vault-srv/internal/model"
	"vault-srv/pkg/paginator"
)

// CheckOutput summarizes one sweep over the active triggers.
type CheckOutput struct {
	ProcessedUsers int
	UserIDs        []string
}

// GetAlertsInput filters the alert audit listing.
type GetAlertsInput struct {
	UserID        string
	Stage         string
	PaginateQuery paginator.PaginateQuery
}

// GetAlertsOutput is the paginated alert audit trail.
type GetAlertsOutput struct {
	Alerts    []model.InactivityAlert
	Paginator paginator.Paginator
}
