package services

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/mkarpushin/recipe-api/internal/logger"
	"github.com/mkarpushin/recipe-api/internal/models"
)

// Error variables
var (
	ErrRecipeTitleRequired = errors.New("recipe title is required")
	ErrInvalidTimeMinutes  = errors.New("time_minutes must be non-negative")
	ErrInvalidPrice        = errors.New("price must be between 0 and 999.99")
	ErrUnknownTag          = errors.New("tag does not exist")
	ErrUnknownIngredient   = errors.New("ingredient does not exist")
)

// maxPrice is the largest value NUMERIC(5,2) can hold.
const maxPrice = 999.99

// RecipeReader defines read-only operations for recipes.
type RecipeReader interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.RecipeDB, error)
	GetByID(ctx context.Context, userID uuid.UUID, recipeID int64) (*models.RecipeDB, error)
	GetTagIDs(ctx context.Context, recipeID int64) ([]int64, error)
	GetIngredientIDs(ctx context.Context, recipeID int64) ([]int64, error)
	ListTagIDsByUser(ctx context.Context, userID uuid.UUID) (map[int64][]int64, error)
	ListIngredientIDsByUser(ctx context.Context, userID uuid.UUID) (map[int64][]int64, error)
}

// RecipeWriter defines write operations for recipes.
type RecipeWriter interface {
	Save(ctx context.Context, userID uuid.UUID, title string, timeMinutes int, price float64, link string) (*models.RecipeDB, error)
	Update(ctx context.Context, userID uuid.UUID, recipeID int64, title *string, timeMinutes *int, price *float64, link *string) (*models.RecipeDB, error)
	Delete(ctx context.Context, userID uuid.UUID, recipeID int64) (bool, error)
	SetTags(ctx context.Context, recipeID int64, tagIDs []int64) error
	SetIngredients(ctx context.Context, recipeID int64, ingredientIDs []int64) error
}

// RecipeService manages a user's recipes and their tag/ingredient sets.
type RecipeService struct {
	reader      RecipeReader
	writer      RecipeWriter
	tags        TagReader
	ingredients IngredientReader
	kafkaWriter KafkaWriter
}

// NewRecipeService creates a new RecipeService instance. kafkaWriter
// may be nil; the service then skips publishing.
func NewRecipeService(
	reader RecipeReader,
	writer RecipeWriter,
	tags TagReader,
	ingredients IngredientReader,
	kafkaWriter KafkaWriter,
) *RecipeService {
	return &RecipeService{
		reader:      reader,
		writer:      writer,
		tags:        tags,
		ingredients: ingredients,
		kafkaWriter: kafkaWriter,
	}
}

// List returns the user's recipes with their tag and ingredient id
// sets. The sets are loaded in bulk, one query per link table.
func (svc *RecipeService) List(ctx context.Context, userID uuid.UUID) ([]models.RecipeDetail, error) {
	recipes, err := svc.reader.ListByUser(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list recipes", "user_id", userID, "err", err)
		return nil, err
	}

	tagSets, err := svc.reader.ListTagIDsByUser(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list recipe tags", "user_id", userID, "err", err)
		return nil, err
	}
	ingredientSets, err := svc.reader.ListIngredientIDsByUser(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list recipe ingredients", "user_id", userID, "err", err)
		return nil, err
	}

	details := make([]models.RecipeDetail, 0, len(recipes))
	for _, recipe := range recipes {
		details = append(details, models.RecipeDetail{
			Recipe:        recipe,
			TagIDs:        tagSets[recipe.RecipeID],
			IngredientIDs: ingredientSets[recipe.RecipeID],
		})
	}
	return details, nil
}

// Get returns an owned recipe with its tag and ingredient id sets.
// A nil recipe means the user owns no recipe with that id.
func (svc *RecipeService) Get(ctx context.Context, userID uuid.UUID, recipeID int64) (*models.RecipeDB, []int64, []int64, error) {
	recipe, err := svc.reader.GetByID(ctx, userID, recipeID)
	if err != nil {
		logger.Log.Errorw("failed to get recipe", "user_id", userID, "recipe_id", recipeID, "err", err)
		return nil, nil, nil, err
	}
	if recipe == nil {
		return nil, nil, nil, nil
	}

	tagIDs, err := svc.reader.GetTagIDs(ctx, recipeID)
	if err != nil {
		return nil, nil, nil, err
	}
	ingredientIDs, err := svc.reader.GetIngredientIDs(ctx, recipeID)
	if err != nil {
		return nil, nil, nil, err
	}

	return recipe, tagIDs, ingredientIDs, nil
}

// Create stores a new recipe with its tag/ingredient sets. All
// referenced tags and ingredients must be owned by the user.
func (svc *RecipeService) Create(ctx context.Context, userID uuid.UUID, req models.RecipeRequest) (*models.RecipeDB, []int64, []int64, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, nil, nil, ErrRecipeTitleRequired
	}
	if req.TimeMinutes < 0 {
		return nil, nil, nil, ErrInvalidTimeMinutes
	}
	if req.Price < 0 || req.Price > maxPrice {
		return nil, nil, nil, ErrInvalidPrice
	}

	tagIDs := dedup(req.Tags)
	if err := svc.checkOwned(ctx, userID, tagIDs, svc.tags.FilterOwned, ErrUnknownTag); err != nil {
		return nil, nil, nil, err
	}
	ingredientIDs := dedup(req.Ingredients)
	if err := svc.checkOwned(ctx, userID, ingredientIDs, svc.ingredients.FilterOwned, ErrUnknownIngredient); err != nil {
		return nil, nil, nil, err
	}

	recipe, err := svc.writer.Save(ctx, userID, title, req.TimeMinutes, req.Price, req.Link)
	if err != nil {
		logger.Log.Errorw("failed to save recipe", "user_id", userID, "err", err)
		return nil, nil, nil, err
	}

	if err := svc.writer.SetTags(ctx, recipe.RecipeID, tagIDs); err != nil {
		return nil, nil, nil, err
	}
	if err := svc.writer.SetIngredients(ctx, recipe.RecipeID, ingredientIDs); err != nil {
		return nil, nil, nil, err
	}

	svc.publishEvent(ctx, "recipe.created", userID, recipe.RecipeID)

	return recipe, tagIDs, ingredientIDs, nil
}

// Update applies a partial update to an owned recipe. Tag/ingredient
// sets are replaced as a whole when present. A nil result means the
// user owns no recipe with that id.
func (svc *RecipeService) Update(ctx context.Context, userID uuid.UUID, recipeID int64, req models.UpdateRecipeRequest) (*models.RecipeDB, []int64, []int64, error) {
	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		return nil, nil, nil, ErrRecipeTitleRequired
	}
	if req.TimeMinutes != nil && *req.TimeMinutes < 0 {
		return nil, nil, nil, ErrInvalidTimeMinutes
	}
	if req.Price != nil && (*req.Price < 0 || *req.Price > maxPrice) {
		return nil, nil, nil, ErrInvalidPrice
	}

	if req.Tags != nil {
		if err := svc.checkOwned(ctx, userID, dedup(*req.Tags), svc.tags.FilterOwned, ErrUnknownTag); err != nil {
			return nil, nil, nil, err
		}
	}
	if req.Ingredients != nil {
		if err := svc.checkOwned(ctx, userID, dedup(*req.Ingredients), svc.ingredients.FilterOwned, ErrUnknownIngredient); err != nil {
			return nil, nil, nil, err
		}
	}

	recipe, err := svc.writer.Update(ctx, userID, recipeID, req.Title, req.TimeMinutes, req.Price, req.Link)
	if err != nil {
		logger.Log.Errorw("failed to update recipe", "user_id", userID, "recipe_id", recipeID, "err", err)
		return nil, nil, nil, err
	}
	if recipe == nil {
		return nil, nil, nil, nil
	}

	if req.Tags != nil {
		if err := svc.writer.SetTags(ctx, recipeID, dedup(*req.Tags)); err != nil {
			return nil, nil, nil, err
		}
	}
	if req.Ingredients != nil {
		if err := svc.writer.SetIngredients(ctx, recipeID, dedup(*req.Ingredients)); err != nil {
			return nil, nil, nil, err
		}
	}

	tagIDs, err := svc.reader.GetTagIDs(ctx, recipeID)
	if err != nil {
		return nil, nil, nil, err
	}
	ingredientIDs, err := svc.reader.GetIngredientIDs(ctx, recipeID)
	if err != nil {
		return nil, nil, nil, err
	}

	svc.publishEvent(ctx, "recipe.updated", userID, recipeID)

	return recipe, tagIDs, ingredientIDs, nil
}

// Delete removes an owned recipe. Reports whether anything was deleted.
func (svc *RecipeService) Delete(ctx context.Context, userID uuid.UUID, recipeID int64) (bool, error) {
	deleted, err := svc.writer.Delete(ctx, userID, recipeID)
	if err != nil {
		logger.Log.Errorw("failed to delete recipe", "user_id", userID, "recipe_id", recipeID, "err", err)
		return false, err
	}

	if deleted {
		svc.publishEvent(ctx, "recipe.deleted", userID, recipeID)
	}

	return deleted, nil
}

// checkOwned verifies that every id belongs to the user.
func (svc *RecipeService) checkOwned(
	ctx context.Context,
	userID uuid.UUID,
	ids []int64,
	filter func(context.Context, uuid.UUID, []int64) ([]int64, error),
	notOwned error,
) error {
	if len(ids) == 0 {
		return nil
	}

	owned, err := filter(ctx, userID, ids)
	if err != nil {
		return err
	}
	if len(owned) != len(ids) {
		return notOwned
	}

	return nil
}

// publishEvent publishes a recipe audit event to Kafka.
func (svc *RecipeService) publishEvent(ctx context.Context, operation string, userID uuid.UUID, recipeID int64) {
	publishEvent(ctx, svc.kafkaWriter, operation, userID.String(), strconv.FormatInt(recipeID, 10))
}

// dedup returns ids with duplicates removed, preserving order.
func dedup(ids []int64) []int64 {
	if len(ids) == 0 {
		return nil
	}

	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
