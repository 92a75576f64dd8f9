package repository

// GrantKey identifies one grant by its natural key.
type GrantKey struct {
	NomineeID    string
	ResourceType string
	ResourceID   string
}

// InsertOptions contains options for recording a grant.
type InsertOptions struct {
	OwnerID      string
	NomineeID    string
	ResourceType string
	ResourceID   string
	AccessLevel  string
}

// DocumentRefs is the ancestry of one document.
type DocumentRefs struct {
	OwnerID       string
	CategoryID    string
	SubcategoryID *string
}
