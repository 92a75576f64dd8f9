package model

import "time"

// Escalation stages, in order of severity.
const (
	AlertStageUserWarning      = "user_warning"
	AlertStageNomineeWarning   = "nominee_warning"
	AlertStageEmergencyGranted = "emergency_granted"
)

// Delivery outcomes recorded on each alert attempt.
const (
	AlertStatusSent   = "sent"
	AlertStatusFailed = "failed"
)

// Who an alert was addressed to.
const (
	RecipientTypeUser    = "user"
	RecipientTypeNominee = "nominee"
)

// InactivityAlert is the audit record of one notification attempt made by
// the inactivity sweep. A row is written per recipient per attempt whether
// or not the gateway accepted the message.
type InactivityAlert struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	NomineeID     *string   `json:"nominee_id,omitempty"`
	Stage         string    `json:"stage"`
	RecipientType string    `json:"recipient_type"`
	Recipient     string    `json:"recipient"`
	InactiveDays  int       `json:"inactive_days"`
	Message       string    `json:"message"`
	Status        string    `json:"status"`
	FailReason    *string   `json:"fail_reason,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}
