package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/mkarpushin/recipe-api/internal/logger"
	"github.com/mkarpushin/recipe-api/internal/models"
)

// ErrIngredientNameRequired is returned when an ingredient is created with an empty name.
var ErrIngredientNameRequired = errors.New("ingredient name is required")

// IngredientReader defines read-only operations for ingredients.
type IngredientReader interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.IngredientDB, error)
	FilterOwned(ctx context.Context, userID uuid.UUID, ids []int64) ([]int64, error)
}

// IngredientWriter defines write operations for ingredients.
type IngredientWriter interface {
	Save(ctx context.Context, userID uuid.UUID, name string) (*models.IngredientDB, error)
}

// IngredientService manages a user's ingredients.
type IngredientService struct {
	reader IngredientReader
	writer IngredientWriter
}

// NewIngredientService creates a new IngredientService instance.
func NewIngredientService(reader IngredientReader, writer IngredientWriter) *IngredientService {
	return &IngredientService{reader: reader, writer: writer}
}

// List returns the user's ingredients.
func (svc *IngredientService) List(ctx context.Context, userID uuid.UUID) ([]models.IngredientDB, error) {
	ingredients, err := svc.reader.ListByUser(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list ingredients", "user_id", userID, "err", err)
		return nil, err
	}
	return ingredients, nil
}

// Create stores a new ingredient owned by the user.
func (svc *IngredientService) Create(ctx context.Context, userID uuid.UUID, name string) (*models.IngredientDB, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrIngredientNameRequired
	}

	ingredient, err := svc.writer.Save(ctx, userID, name)
	if err != nil {
		logger.Log.Errorw("failed to save ingredient", "user_id", userID, "err", err)
		return nil, err
	}
	return ingredient, nil
}
