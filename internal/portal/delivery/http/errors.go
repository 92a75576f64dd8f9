package http

import (
	"net/http"

	"vault-srv/internal/portal"
	"vault-srv/pkg/errors"
)

var mapErrors = map[error]*errors.HTTPError{
	portal.ErrNomineeNotEligible: errors.NewHTTPError(http.StatusNotFound, "Nominee not found or not verified"),
	portal.ErrAccessNotGranted:   errors.NewHTTPError(http.StatusForbidden, "Emergency access not granted for this account"),
	portal.ErrTooManyRequests:    errors.NewHTTPError(http.StatusTooManyRequests, "Too many verification requests, try again later"),
	portal.ErrInvalidOTP:         errors.NewHTTPError(http.StatusUnauthorized, "Invalid or expired OTP"),
	portal.ErrDocumentNotFound:   errors.NewHTTPError(http.StatusNotFound, "Document not found"),
	portal.ErrAccessDenied:       errors.NewHTTPError(http.StatusForbidden, "You do not have access to this document"),
	portal.ErrDownloadNotAllowed: errors.NewHTTPError(http.StatusForbidden, "You do not have download permission for this document"),
}
