package portal

import (
	"time"

	"vault-srv/internal/model"
)

// RequestOTPInput identifies the nominee asking for a code.
type RequestOTPInput struct {
	Email string
}

// VerifyOTPInput is one code submission.
type VerifyOTPInput struct {
	Email string
	Code  string
}

// PortalDocument is one document visible in a portal session.
type PortalDocument struct {
	Document    model.Document
	AccessLevel string
	CanDownload bool
}

// AuthorizedOutput is the result of a successful verification.
type AuthorizedOutput struct {
	Token     string
	ExpiresAt time.Time
	Documents []PortalDocument
}

// DocumentLinkOutput carries one presigned retrieval URL.
type DocumentLinkOutput struct {
	URL       string
	ExpiresAt time.Time
}
