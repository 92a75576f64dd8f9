package access

import "errors"

var (
	ErrInvalidResourceType = errors.New("invalid resource type")
	ErrInvalidAccessLevel  = errors.New("invalid access level")
	ErrResourceNotFound    = errors.New("resource not found")
	ErrNomineeNotFound     = errors.New("nominee not found")
)
