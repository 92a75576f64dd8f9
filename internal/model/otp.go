package model

import "time"

// OTPVerification is one issued portal code. The code itself is never
// stored; CodeHash holds a bcrypt digest. VerifiedAt marks consumption and
// a consumed row can never verify again.
type OTPVerification struct {
	ID         string     `json:"id"`
	NomineeID  string     `json:"nominee_id"`
	Email      string     `json:"email"`
	CodeHash   string     `json:"-"`
	ExpiresAt  time.Time  `json:"expires_at"`
	VerifiedAt *time.Time `json:"verified_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// IsExpired reports whether the code is past its validity window.
func (o OTPVerification) IsExpired(now time.Time) bool {
	return now.After(o.ExpiresAt)
}

// IsConsumed reports whether the code has already been used.
func (o OTPVerification) IsConsumed() bool {
	return o.VerifiedAt != nil
}
