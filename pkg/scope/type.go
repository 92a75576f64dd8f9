package scope

import (
	"github.com/golang-jwt/jwt/v5"
)

const (
	// RoleOwner marks a vault owner session token.
	RoleOwner = "OWNER"
	// RoleNominee marks an emergency portal session token.
	RoleNominee = "NOMINEE"
)

// Payload represents the JWT token claims.
type Payload struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

type implManager struct {
	secretKey string
}
