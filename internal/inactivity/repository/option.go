package repository

import (
	"vault-srv/internal/model"
	"vault-srv/pkg/paginator"
)

// TriggerWithProfile joins one trigger row with its owner profile so the
// sweep can address notifications without extra round trips.
type TriggerWithProfile struct {
	Trigger model.InactivityTrigger
	Profile model.Profile
}

// CreateAlertOptions contains options for appending an alert audit row.
type CreateAlertOptions struct {
	UserID        string
	NomineeID     *string
	Stage         string
	RecipientType string
	Recipient     string
	InactiveDays  int
	Message       string
	Status        string
	FailReason    *string
}

// Filter contains filtering options for alert queries.
type Filter struct {
	UserID string
	Stage  string
}

// GetAlertsOptions contains options for paginated alert listing.
type GetAlertsOptions struct {
	Filter        Filter
	PaginateQuery paginator.PaginateQuery
}
