package notification

import "errors"

var (
	ErrTokenRequired   = errors.New("device token required")
	ErrInvalidPlatform = errors.New("invalid device platform")
	ErrNotOwner        = errors.New("cannot push to another user")
)
