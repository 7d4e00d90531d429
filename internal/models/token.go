package models

import (
	"time"

	"github.com/google/uuid"
)

// TokenDB represents a persisted auth token bound to exactly one user
type TokenDB struct {
	Token     string    `json:"token" db:"token"`           // Opaque token value, primary key
	UserID    uuid.UUID `json:"user_id" db:"user_id"`       // Owning user, unique
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Issuance timestamp
}

// TokenRequest represents the JSON body for obtaining an auth token
// swagger:model TokenRequest
type TokenRequest struct {
	// Email
	// required: true
	// example: john@example.com
	Email string `json:"email"`

	// Password
	// required: true
	// example: secret123
	Password string `json:"password"`
}

// TokenResponse represents a successful token response
// swagger:model TokenResponse
type TokenResponse struct {
	// Opaque bearer token
	// example: 9f3c1a0b8d7e6f5a4b3c2d1e0f9a8b7c6d5e4f3a
	Token string `json:"token"`
}
