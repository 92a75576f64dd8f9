package repository

import (
	"context"

	"vault-srv/internal/model"
)

//go:generate mockery --name Repository
type Repository interface {
	// GetGrant returns the direct grant on (nominee, resource), if any.
	GetGrant(ctx context.Context, sc model.Scope, opts GrantKey) (model.AccessControl, error)

	// Insert records a grant. Inserting a duplicate is a silent no-op and
	// returns the existing row.
	Insert(ctx context.Context, sc model.Scope, opts InsertOptions) (model.AccessControl, error)

	// Delete removes a grant. Deleting an absent grant is a no-op.
	Delete(ctx context.Context, sc model.Scope, opts GrantKey) error

	// ListByNominee returns every direct grant held by one nominee.
	ListByNominee(ctx context.Context, sc model.Scope, nomineeID string) ([]model.AccessControl, error)

	// ListByResource returns every direct grant on one resource.
	ListByResource(ctx context.Context, sc model.Scope, resourceType, resourceID string) ([]model.AccessControl, error)

	// ListNominees returns all non-deleted nominees of one owner.
	ListNominees(ctx context.Context, sc model.Scope, ownerID string) ([]model.Nominee, error)

	// GetNominee returns one nominee row.
	GetNominee(ctx context.Context, sc model.Scope, nomineeID string) (model.Nominee, error)

	// GetDocumentRefs returns the ancestry of one document.
	GetDocumentRefs(ctx context.Context, sc model.Scope, documentID string) (DocumentRefs, error)

	// GetSubcategoryParent returns the category one subcategory belongs to.
	GetSubcategoryParent(ctx context.Context, sc model.Scope, subcategoryID string) (string, error)
}
