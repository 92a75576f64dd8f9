package scope

import "errors"

var (
	// ErrInvalidToken covers expired, malformed, and badly signed session
	// tokens. Both owner and portal sessions surface it as a 401.
	ErrInvalidToken = errors.New("invalid token")
)
