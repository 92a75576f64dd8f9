package repository

import (
	"context"

	"vault-srv/internal/model"
)

//go:generate mockery --name Repository
type Repository interface {
	// GetNomineeByEmail returns the verified, non-deleted nominee
	// registered under one email.
	GetNomineeByEmail(ctx context.Context, sc model.Scope, email string) (model.Nominee, error)

	// EmergencyGranted reports whether the owner's active trigger has
	// latched emergency access.
	EmergencyGranted(ctx context.Context, sc model.Scope, ownerID string) (bool, error)

	// InsertOTP stores one issued challenge.
	InsertOTP(ctx context.Context, sc model.Scope, opts InsertOTPOptions) (model.OTPVerification, error)

	// ListActiveOTPs returns the unexpired, unconsumed challenges for one
	// email, newest first.
	ListActiveOTPs(ctx context.Context, sc model.Scope, email string) ([]model.OTPVerification, error)

	// ConsumeOTP marks one challenge verified. Returns false when the row
	// was already consumed.
	ConsumeOTP(ctx context.Context, sc model.Scope, id string) (bool, error)

	// ListDocumentGrants returns a nominee's direct document grants.
	ListDocumentGrants(ctx context.Context, sc model.Scope, nomineeID string) ([]model.AccessControl, error)

	// ListDocumentsByIDs returns the non-deleted documents among ids.
	ListDocumentsByIDs(ctx context.Context, sc model.Scope, ids []string) ([]model.Document, error)

	// GetDocument returns one non-deleted document.
	GetDocument(ctx context.Context, sc model.Scope, id string) (model.Document, error)
}
