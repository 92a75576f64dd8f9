package http

import (
	"net/http"

	"vault-srv/internal/inactivity"
	"vault-srv/pkg/errors"
)

var mapErrors = map[error]*errors.HTTPError{
	inactivity.ErrTriggerNotFound: errors.NewHTTPError(http.StatusNotFound, "Inactivity trigger not found"),
	inactivity.ErrInvalidStage:    errors.NewHTTPError(http.StatusBadRequest, "Invalid alert stage"),
}
