package http

import (
	"net/http"

	"vault-srv/internal/notification"
	"vault-srv/pkg/errors"
)

var mapErrors = map[error]*errors.HTTPError{
	notification.ErrTokenRequired:   errors.NewHTTPError(http.StatusBadRequest, "Device token required"),
	notification.ErrInvalidPlatform: errors.NewHTTPError(http.StatusBadRequest, "Invalid device platform"),
	notification.ErrNotOwner:        errors.NewUnauthorizedHTTPError(),
}
