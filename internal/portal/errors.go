package portal

import "errors"

var (
	ErrNomineeNotEligible = errors.New("nominee not found or not verified")
	ErrAccessNotGranted   = errors.New("emergency access not granted")
	ErrTooManyRequests    = errors.New("too many verification requests")
	ErrInvalidOTP         = errors.New("invalid or expired code")
	ErrDocumentNotFound   = errors.New("document not found")
	ErrAccessDenied       = errors.New("access denied")
	ErrDownloadNotAllowed = errors.New("download not allowed")
)
