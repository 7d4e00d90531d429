package models

import "github.com/google/uuid"

// IngredientDB represents an ingredient record owned by a single user
type IngredientDB struct {
	IngredientID int64     `json:"id" db:"ingredient_id"` // Primary key
	UserID       uuid.UUID `json:"user_id" db:"user_id"`  // Owning user
	Name         string    `json:"name" db:"name"`        // Ingredient name
}

// IngredientRequest represents the JSON body for creating an ingredient
// swagger:model IngredientRequest
type IngredientRequest struct {
	// Ingredient name
	// required: true
	// example: salt
	Name string `json:"name"`
}

// IngredientResponse represents an ingredient in API responses
// swagger:model IngredientResponse
type IngredientResponse struct {
	// Ingredient ID
	// example: 1
	ID int64 `json:"id"`

	// Ingredient name
	// example: salt
	Name string `json:"name"`
}
