package access

import "vault-srv/internal/model"

// HasAccessInput identifies the nominee and the resource to resolve.
type HasAccessInput struct {
	NomineeID    string
	ResourceType string
	ResourceID   string
}

// HasAccessOutput is the resolution result. Grant is the matched grant,
// which for inherited access belongs to an ancestor resource.
type HasAccessOutput struct {
	Granted bool
	Grant   model.AccessControl
}

// GrantInput describes one grant to record.
type GrantInput struct {
	NomineeID    string
	ResourceType string
	ResourceID   string
	AccessLevel  string
}

// RevokeInput identifies one grant to remove.
type RevokeInput struct {
	NomineeID    string
	ResourceType string
	ResourceID   string
}

// SummaryInput identifies the resource to summarize.
type SummaryInput struct {
	ResourceType string
	ResourceID   string
}

// NomineeAccess is one nominee row of a summary.
type NomineeAccess struct {
	NomineeID   string
	Name        string
	Email       string
	HasAccess   bool
	AccessLevel string
}

// SummaryOutput reports direct grant coverage of one resource.
type SummaryOutput struct {
	TotalNominees      int
	NomineesWithAccess int
	Details            []NomineeAccess
}
