package access

import (
	"context"

	"vault-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// HasAccess resolves whether a nominee can reach a resource, following
	// the inheritance chain for documents and subcategories.
	HasAccess(ctx context.Context, sc model.Scope, ip HasAccessInput) (HasAccessOutput, error)

	// GrantAccess records a grant. Granting twice is a no-op.
	GrantAccess(ctx context.Context, sc model.Scope, ip GrantInput) (model.AccessControl, error)

	// RevokeAccess removes a grant. Revoking an absent grant is a no-op.
	RevokeAccess(ctx context.Context, sc model.Scope, ip RevokeInput) error

	// GetAccessSummary reports, for one resource, which of the owner's
	// nominees hold a direct grant on it. Inherited access is not counted.
	GetAccessSummary(ctx context.Context, sc model.Scope, ip SummaryInput) (SummaryOutput, error)

	// ListNomineeGrants lists every direct grant held by one nominee.
	ListNomineeGrants(ctx context.Context, sc model.Scope, nomineeID string) ([]model.AccessControl, error)
}
