package http

import (
	"net/http"

	"vault-srv/internal/access"
	"vault-srv/pkg/errors"
)

var mapErrors = map[error]*errors.HTTPError{
	access.ErrInvalidResourceType: errors.NewHTTPError(http.StatusBadRequest, "Invalid resource type"),
	access.ErrInvalidAccessLevel:  errors.NewHTTPError(http.StatusBadRequest, "Invalid access level"),
	access.ErrResourceNotFound:    errors.NewHTTPError(http.StatusNotFound, "Resource not found"),
	access.ErrNomineeNotFound:     errors.NewHTTPError(http.StatusNotFound, "Nominee not found"),
}
