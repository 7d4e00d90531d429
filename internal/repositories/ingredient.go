package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/mkarpushin/recipe-api/internal/logger"
	"github.com/mkarpushin/recipe-api/internal/models"
)

type IngredientReadRepository struct {
	db *sqlx.DB
}

func NewIngredientReadRepository(db *sqlx.DB) *IngredientReadRepository {
	return &IngredientReadRepository{db: db}
}

// ListByUser returns the user's ingredients ordered by name.
func (r *IngredientReadRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.IngredientDB, error) {
	const query = `
		SELECT ingredient_id, user_id, name
		FROM ingredients
		WHERE user_id = $1
		ORDER BY name
	`

	ingredients := []models.IngredientDB{}
	err := sqlx.SelectContext(ctx, ext(ctx, r.db), &ingredients, query, userID)

	logger.Log.Infow("select ingredients",
		"query", squash(query),
		"user_id", userID,
		"count", len(ingredients),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return ingredients, nil
}

// FilterOwned returns the subset of ids that are ingredients owned by the user.
func (r *IngredientReadRepository) FilterOwned(ctx context.Context, userID uuid.UUID, ids []int64) ([]int64, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In(`SELECT ingredient_id FROM ingredients WHERE user_id = ? AND ingredient_id IN (?)`, userID, ids)
	if err != nil {
		return nil, err
	}

	e := ext(ctx, r.db)
	query = e.Rebind(query)

	owned := []int64{}
	err = sqlx.SelectContext(ctx, e, &owned, query, args...)

	logger.Log.Infow("filter owned ingredients",
		"query", squash(query),
		"user_id", userID,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return owned, nil
}

type IngredientWriteRepository struct {
	db *sqlx.DB
}

func NewIngredientWriteRepository(db *sqlx.DB) *IngredientWriteRepository {
	return &IngredientWriteRepository{db: db}
}

// Save inserts a new ingredient for the user and returns the stored record.
func (r *IngredientWriteRepository) Save(ctx context.Context, userID uuid.UUID, name string) (*models.IngredientDB, error) {
	const query = `
		INSERT INTO ingredients (user_id, name)
		VALUES ($1, $2)
		RETURNING ingredient_id, user_id, name
	`

	var ingredient models.IngredientDB
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &ingredient, query, userID, name)

	logger.Log.Infow("insert ingredient",
		"query", squash(query),
		"user_id", userID,
		"name", name,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &ingredient, nil
}
