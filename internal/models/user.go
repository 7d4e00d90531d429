package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID       uuid.UUID      `json:"id" db:"user_id"`                 // Primary key
	Email        string         `json:"email" db:"email"`                // Unique, normalized email
	PasswordHash sql.NullString `json:"-" db:"password_hash"`            // NULL means no usable password
	Name         string         `json:"name" db:"name"`                  // Display name, may be empty
	IsActive     bool           `json:"is_active" db:"is_active"`        // Inactive users cannot authenticate
	IsStaff      bool           `json:"is_staff" db:"is_staff"`          // Staff flag
	IsSuperuser  bool           `json:"is_superuser" db:"is_superuser"`  // Superuser flag
	CreatedAt    time.Time      `json:"created_at" db:"created_at"`      // Creation timestamp
	UpdatedAt    time.Time      `json:"updated_at" db:"updated_at"`      // Last update timestamp
}

// CreateUserRequest represents the JSON body for user signup
// swagger:model CreateUserRequest
type CreateUserRequest struct {
	// Email
	// required: true
	// example: john@example.com
	Email string `json:"email"`

	// Password, at least 5 characters
	// required: true
	// example: secret123
	Password string `json:"password"`

	// Display name
	// example: John Doe
	Name string `json:"name"`
}

// UserResponse represents the public view of a user.
// The password is never included.
// swagger:model UserResponse
type UserResponse struct {
	// Email
	// example: john@example.com
	Email string `json:"email"`

	// Display name
	// example: John Doe
	Name string `json:"name"`
}

// UpdateUserRequest represents a partial update of the authenticated user.
// Omitted fields are left unchanged.
// swagger:model UpdateUserRequest
type UpdateUserRequest struct {
	// Display name
	// example: John Doe
	Name *string `json:"name,omitempty"`

	// New password, at least 5 characters
	// example: newsecret123
	Password *string `json:"password,omitempty"`
}

// ErrorResponse represents an error response body
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// example: Internal server error
	Error string `json:"error"`
}
