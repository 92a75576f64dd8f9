package model

import "time"

// Nominee statuses.
const (
	NomineeStatusPending  = "pending"
	NomineeStatusVerified = "verified"
	NomineeStatusRevoked  = "revoked"
)

// Nominee is a trusted contact registered by a vault owner. Only verified
// nominees are alerted during escalation or admitted to the emergency portal.
type Nominee struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsVerified reports whether the nominee has completed verification.
func (n Nominee) IsVerified() bool {
	return n.Status == NomineeStatusVerified
}
