package portal

import (
	"context"

	"vault-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// RequestOTP challenges a nominee by email. The nominee must be
	// verified and the owner's emergency access must already be granted,
	// otherwise the request is rejected without issuing a code.
	RequestOTP(ctx context.Context, sc model.Scope, ip RequestOTPInput) error

	// VerifyOTP consumes a pending code and opens a portal session. The
	// returned output carries the session token and every document the
	// nominee holds a direct grant on.
	VerifyOTP(ctx context.Context, sc model.Scope, ip VerifyOTPInput) (AuthorizedOutput, error)

	// ViewDocument mints a short-lived inline URL for one document the
	// session's nominee can reach.
	ViewDocument(ctx context.Context, sc model.Scope, documentID string) (DocumentLinkOutput, error)

	// DownloadDocument mints a short-lived attachment URL. Rejected when
	// the matched grant only allows viewing.
	DownloadDocument(ctx context.Context, sc model.Scope, documentID string) (DocumentLinkOutput, error)
}
