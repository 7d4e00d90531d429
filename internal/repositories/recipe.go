package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/mkarpushin/recipe-api/internal/logger"
	"github.com/mkarpushin/recipe-api/internal/models"
)

type RecipeReadRepository struct {
	db *sqlx.DB
}

func NewRecipeReadRepository(db *sqlx.DB) *RecipeReadRepository {
	return &RecipeReadRepository{db: db}
}

// ListByUser returns the user's recipes, newest first.
func (r *RecipeReadRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.RecipeDB, error) {
	const query = `
		SELECT recipe_id, user_id, title, time_minutes, price, link
		FROM recipes
		WHERE user_id = $1
		ORDER BY recipe_id DESC
	`

	recipes := []models.RecipeDB{}
	err := sqlx.SelectContext(ctx, ext(ctx, r.db), &recipes, query, userID)

	logger.Log.Infow("select recipes",
		"query", squash(query),
		"user_id", userID,
		"count", len(recipes),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return recipes, nil
}

// GetByID returns the recipe with the given id when it is owned by the
// user, or nil otherwise. Another user's recipe is indistinguishable
// from a nonexistent one.
func (r *RecipeReadRepository) GetByID(ctx context.Context, userID uuid.UUID, recipeID int64) (*models.RecipeDB, error) {
	const query = `
		SELECT recipe_id, user_id, title, time_minutes, price, link
		FROM recipes
		WHERE user_id = $1 AND recipe_id = $2
	`

	var recipe models.RecipeDB
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &recipe, query, userID, recipeID)

	logger.Log.Infow("select recipe",
		"query", squash(query),
		"user_id", userID,
		"recipe_id", recipeID,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &recipe, nil
}

// GetTagIDs returns the ids of the tags attached to the recipe.
func (r *RecipeReadRepository) GetTagIDs(ctx context.Context, recipeID int64) ([]int64, error) {
	const query = `
		SELECT tag_id
		FROM recipe_tags
		WHERE recipe_id = $1
		ORDER BY tag_id
	`

	ids := []int64{}
	err := sqlx.SelectContext(ctx, ext(ctx, r.db), &ids, query, recipeID)
	if err != nil {
		return nil, err
	}

	return ids, nil
}

// GetIngredientIDs returns the ids of the ingredients attached to the recipe.
func (r *RecipeReadRepository) GetIngredientIDs(ctx context.Context, recipeID int64) ([]int64, error) {
	const query = `
		SELECT ingredient_id
		FROM recipe_ingredients
		WHERE recipe_id = $1
		ORDER BY ingredient_id
	`

	ids := []int64{}
	err := sqlx.SelectContext(ctx, ext(ctx, r.db), &ids, query, recipeID)
	if err != nil {
		return nil, err
	}

	return ids, nil
}

// joinRow is one link-table row, used when loading id sets in bulk.
type joinRow struct {
	RecipeID int64 `db:"recipe_id"`
	LinkedID int64 `db:"linked_id"`
}

// ListTagIDsByUser returns the tag ids of every recipe owned by the
// user, keyed by recipe id. Recipes without tags have no entry.
func (r *RecipeReadRepository) ListTagIDsByUser(ctx context.Context, userID uuid.UUID) (map[int64][]int64, error) {
	const query = `
		SELECT rt.recipe_id, rt.tag_id AS linked_id
		FROM recipe_tags rt
		JOIN recipes rc ON rc.recipe_id = rt.recipe_id
		WHERE rc.user_id = $1
		ORDER BY rt.recipe_id, rt.tag_id
	`

	return r.selectJoinRows(ctx, query, userID)
}

// ListIngredientIDsByUser returns the ingredient ids of every recipe
// owned by the user, keyed by recipe id.
func (r *RecipeReadRepository) ListIngredientIDsByUser(ctx context.Context, userID uuid.UUID) (map[int64][]int64, error) {
	const query = `
		SELECT ri.recipe_id, ri.ingredient_id AS linked_id
		FROM recipe_ingredients ri
		JOIN recipes rc ON rc.recipe_id = ri.recipe_id
		WHERE rc.user_id = $1
		ORDER BY ri.recipe_id, ri.ingredient_id
	`

	return r.selectJoinRows(ctx, query, userID)
}

func (r *RecipeReadRepository) selectJoinRows(ctx context.Context, query string, userID uuid.UUID) (map[int64][]int64, error) {
	rows := []joinRow{}
	err := sqlx.SelectContext(ctx, ext(ctx, r.db), &rows, query, userID)

	logger.Log.Infow("select recipe join rows",
		"query", squash(query),
		"user_id", userID,
		"count", len(rows),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	sets := make(map[int64][]int64, len(rows))
	for _, row := range rows {
		sets[row.RecipeID] = append(sets[row.RecipeID], row.LinkedID)
	}

	return sets, nil
}

type RecipeWriteRepository struct {
	db *sqlx.DB
}

func NewRecipeWriteRepository(db *sqlx.DB) *RecipeWriteRepository {
	return &RecipeWriteRepository{db: db}
}

// Save inserts a new recipe for the user and returns the stored record.
func (r *RecipeWriteRepository) Save(
	ctx context.Context,
	userID uuid.UUID,
	title string,
	timeMinutes int,
	price float64,
	link string,
) (*models.RecipeDB, error) {
	const query = `
		INSERT INTO recipes (user_id, title, time_minutes, price, link)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING recipe_id, user_id, title, time_minutes, price, link
	`

	var recipe models.RecipeDB
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &recipe, query, userID, title, timeMinutes, price, link)

	logger.Log.Infow("insert recipe",
		"query", squash(query),
		"user_id", userID,
		"title", title,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &recipe, nil
}

// Update applies a partial update to an owned recipe. Nil fields are
// left unchanged. Returns nil when the user owns no such recipe.
func (r *RecipeWriteRepository) Update(
	ctx context.Context,
	userID uuid.UUID,
	recipeID int64,
	title *string,
	timeMinutes *int,
	price *float64,
	link *string,
) (*models.RecipeDB, error) {
	const query = `
		UPDATE recipes
		SET title = COALESCE($3, title),
		    time_minutes = COALESCE($4, time_minutes),
		    price = COALESCE($5, price),
		    link = COALESCE($6, link)
		WHERE user_id = $1 AND recipe_id = $2
		RETURNING recipe_id, user_id, title, time_minutes, price, link
	`

	var recipe models.RecipeDB
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &recipe, query, userID, recipeID, title, timeMinutes, price, link)

	logger.Log.Infow("update recipe",
		"query", squash(query),
		"user_id", userID,
		"recipe_id", recipeID,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &recipe, nil
}

// Delete removes an owned recipe. Reports whether a row was deleted.
func (r *RecipeWriteRepository) Delete(ctx context.Context, userID uuid.UUID, recipeID int64) (bool, error) {
	const query = `
		DELETE FROM recipes
		WHERE user_id = $1 AND recipe_id = $2
	`

	res, err := ext(ctx, r.db).ExecContext(ctx, query, userID, recipeID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("delete recipe",
		"query", squash(query),
		"user_id", userID,
		"recipe_id", recipeID,
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}

	return rowsAffected > 0, nil
}

// SetTags replaces the recipe's tag set.
func (r *RecipeWriteRepository) SetTags(ctx context.Context, recipeID int64, tagIDs []int64) error {
	e := ext(ctx, r.db)

	if _, err := e.ExecContext(ctx, `DELETE FROM recipe_tags WHERE recipe_id = $1`, recipeID); err != nil {
		logger.Log.Errorw("failed to clear recipe tags", "recipe_id", recipeID, "error", err)
		return err
	}

	for _, tagID := range tagIDs {
		if _, err := e.ExecContext(ctx,
			`INSERT INTO recipe_tags (recipe_id, tag_id) VALUES ($1, $2)`, recipeID, tagID); err != nil {
			logger.Log.Errorw("failed to attach tag", "recipe_id", recipeID, "tag_id", tagID, "error", err)
			return err
		}
	}

	return nil
}

// SetIngredients replaces the recipe's ingredient set.
func (r *RecipeWriteRepository) SetIngredients(ctx context.Context, recipeID int64, ingredientIDs []int64) error {
	e := ext(ctx, r.db)

	if _, err := e.ExecContext(ctx, `DELETE FROM recipe_ingredients WHERE recipe_id = $1`, recipeID); err != nil {
		logger.Log.Errorw("failed to clear recipe ingredients", "recipe_id", recipeID, "error", err)
		return err
	}

	for _, ingredientID := range ingredientIDs {
		if _, err := e.ExecContext(ctx,
			`INSERT INTO recipe_ingredients (recipe_id, ingredient_id) VALUES ($1, $2)`, recipeID, ingredientID); err != nil {
			logger.Log.Errorw("failed to attach ingredient", "recipe_id", recipeID, "ingredient_id", ingredientID, "error", err)
			return err
		}
	}

	return nil
}
