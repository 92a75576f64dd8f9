package model

import "time"

// InactivityTrigger tracks one owner's dead-man switch. A single row exists
// per owner; LastActivityAt moves forward on every authenticated action and
// EmergencyAccessGranted latches once the threshold is crossed.
type InactivityTrigger struct {
	ID                     string     `json:"id"`
	UserID                 string     `json:"user_id"`
	ThresholdDays          int        `json:"threshold_days"`
	LastActivityAt         time.Time  `json:"last_activity_at"`
	IsActive               bool       `json:"is_active"`
	EmailEnabled           bool       `json:"email_enabled"`
	SMSEnabled             bool       `json:"sms_enabled"`
	CustomMessage          *string    `json:"custom_message,omitempty"`
	EmergencyAccessGranted bool       `json:"emergency_access_granted"`
	EmergencyGrantedAt     *time.Time `json:"emergency_granted_at,omitempty"`
	CreatedAt              time.Time  `json:"created_at"`
	UpdatedAt              time.Time  `json:"updated_at"`
}

// InactiveDays returns whole days elapsed since the last recorded activity.
func (t InactivityTrigger) InactiveDays(now time.Time) int {
	if now.Before(t.LastActivityAt) {
		return 0
	}
	return int(now.Sub(t.LastActivityAt).Hours() / 24)
}
