package model

const (
	RoleOwner   = "OWNER"
	RoleNominee = "NOMINEE"
)

type Scope struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"` // OWNER or NOMINEE
	JTI    string `json:"jti"`
}

// IsOwner checks if the scope belongs to a vault owner session
func (s Scope) IsOwner() bool {
	return s.Role == RoleOwner
}

// IsNominee checks if the scope belongs to an emergency portal session
func (s Scope) IsNominee() bool {
	return s.Role == RoleNominee
}
