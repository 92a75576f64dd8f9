package repository

import "time"

// InsertOTPOptions contains options for storing one issued challenge.
type InsertOTPOptions struct {
	NomineeID string
	Email     string
	CodeHash  string
	ExpiresAt time.Time
}
