package models

import "github.com/google/uuid"

// TagDB represents a tag record owned by a single user
type TagDB struct {
	TagID  int64     `json:"id" db:"tag_id"`       // Primary key
	UserID uuid.UUID `json:"user_id" db:"user_id"` // Owning user
	Name   string    `json:"name" db:"name"`       // Tag name
}

// TagRequest represents the JSON body for creating a tag
// swagger:model TagRequest
type TagRequest struct {
	// Tag name
	// required: true
	// example: vegan
	Name string `json:"name"`
}

// TagResponse represents a tag in API responses
// swagger:model TagResponse
type TagResponse struct {
	// Tag ID
	// example: 1
	ID int64 `json:"id"`

	// Tag name
	// example: vegan
	Name string `json:"name"`
}
