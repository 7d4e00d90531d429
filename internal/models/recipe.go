package models

import "github.com/google/uuid"

// RecipeDB represents a recipe record owned by a single user.
// Price is stored as NUMERIC(5,2) in the database.
type RecipeDB struct {
	RecipeID    int64     `json:"id" db:"recipe_id"`           // Primary key
	UserID      uuid.UUID `json:"user_id" db:"user_id"`        // Owning user
	Title       string    `json:"title" db:"title"`            // Recipe title
	TimeMinutes int       `json:"time_minutes" db:"time_minutes"` // Preparation time, non-negative
	Price       float64   `json:"price" db:"price"`            // Price, 5 digits total, 2 after the point
	Link        string    `json:"link" db:"link"`              // Optional external link
}

// RecipeDetail pairs a recipe with the ids of its attached tags and
// ingredients.
type RecipeDetail struct {
	Recipe        RecipeDB
	TagIDs        []int64
	IngredientIDs []int64
}

// RecipeRequest represents the JSON body for creating a recipe
// swagger:model RecipeRequest
type RecipeRequest struct {
	// Recipe title
	// required: true
	// example: Borscht
	Title string `json:"title"`

	// Preparation time in minutes
	// required: true
	// example: 90
	TimeMinutes int `json:"time_minutes"`

	// Price
	// required: true
	// example: 12.50
	Price float64 `json:"price"`

	// Optional external link
	// example: https://example.com/borscht
	Link string `json:"link"`

	// IDs of tags owned by the caller
	// example: [1,2]
	Tags []int64 `json:"tags"`

	// IDs of ingredients owned by the caller
	// example: [3,4]
	Ingredients []int64 `json:"ingredients"`
}

// UpdateRecipeRequest represents a partial recipe update.
// Omitted fields are left unchanged; tag and ingredient sets are
// replaced as a whole when present.
// swagger:model UpdateRecipeRequest
type UpdateRecipeRequest struct {
	Title       *string  `json:"title,omitempty"`
	TimeMinutes *int     `json:"time_minutes,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Link        *string  `json:"link,omitempty"`
	Tags        *[]int64 `json:"tags,omitempty"`
	Ingredients *[]int64 `json:"ingredients,omitempty"`
}

// RecipeResponse represents a recipe in API responses
// swagger:model RecipeResponse
type RecipeResponse struct {
	// Recipe ID
	// example: 1
	ID int64 `json:"id"`

	// Recipe title
	// example: Borscht
	Title string `json:"title"`

	// Preparation time in minutes
	// example: 90
	TimeMinutes int `json:"time_minutes"`

	// Price
	// example: 12.50
	Price float64 `json:"price"`

	// Optional external link
	// example: https://example.com/borscht
	Link string `json:"link"`

	// IDs of attached tags
	// example: [1,2]
	Tags []int64 `json:"tags"`

	// IDs of attached ingredients
	// example: [3,4]
	Ingredients []int64 `json:"ingredients"`
}
