package model

import "time"

// Resource kinds a grant can point at. Access flows downward: a grant on a
// category covers its subcategories and documents.
const (
	ResourceTypeCategory    = "category"
	ResourceTypeSubcategory = "subcategory"
	ResourceTypeDocument    = "document"
)

// Access levels.
const (
	AccessLevelView     = "view"
	AccessLevelDownload = "download"
)

// AccessControl is one grant from an owner to a nominee over a resource.
type AccessControl struct {
	ID           string    `json:"id"`
	OwnerID      string    `json:"owner_id"`
	NomineeID    string    `json:"nominee_id"`
	ResourceType string    `json:"resource_type"`
	ResourceID   string    `json:"resource_id"`
	AccessLevel  string    `json:"access_level"`
	CreatedAt    time.Time `json:"created_at"`
}

// CanDownload reports whether the grant permits file retrieval as an
// attachment. View-level grants are limited to inline rendering.
func (a AccessControl) CanDownload() bool {
	return a.AccessLevel == AccessLevelDownload
}
