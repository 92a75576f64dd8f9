package model

import "time"

// Document is one stored vault file. SubcategoryID is optional; documents
// can hang directly off a category.
type Document struct {
	ID            string     `json:"id"`
	OwnerID       string     `json:"owner_id"`
	CategoryID    string     `json:"category_id"`
	SubcategoryID *string    `json:"subcategory_id,omitempty"`
	Title         string     `json:"title"`
	FileName      string     `json:"file_name"`
	FilePath      string     `json:"-"`
	MimeType      string     `json:"mime_type"`
	SizeBytes     int64      `json:"size_bytes"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	DeletedAt     *time.Time `json:"deleted_at,omitempty"`
}
