package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mkarpushin/recipe-api/internal/logger"
	"github.com/mkarpushin/recipe-api/internal/middlewares"
	"github.com/mkarpushin/recipe-api/internal/models"
	"github.com/mkarpushin/recipe-api/internal/services"
)

// RecipeLister defines the interface that the service must implement.
type RecipeLister interface {
	List(ctx context.Context, userID uuid.UUID) ([]models.RecipeDetail, error)
}

// RecipeGetter defines the interface that the service must implement.
type RecipeGetter interface {
	Get(ctx context.Context, userID uuid.UUID, recipeID int64) (*models.RecipeDB, []int64, []int64, error)
}

// RecipeCreator defines the interface that the service must implement.
type RecipeCreator interface {
	Create(ctx context.Context, userID uuid.UUID, req models.RecipeRequest) (*models.RecipeDB, []int64, []int64, error)
}

// RecipeUpdater defines the interface that the service must implement.
type RecipeUpdater interface {
	Update(ctx context.Context, userID uuid.UUID, recipeID int64, req models.UpdateRecipeRequest) (*models.RecipeDB, []int64, []int64, error)
}

// RecipeDeleter defines the interface that the service must implement.
type RecipeDeleter interface {
	Delete(ctx context.Context, userID uuid.UUID, recipeID int64) (bool, error)
}

// toRecipeResponse builds the API representation of a recipe
func toRecipeResponse(recipe *models.RecipeDB, tagIDs, ingredientIDs []int64) models.RecipeResponse {
	if tagIDs == nil {
		tagIDs = []int64{}
	}
	if ingredientIDs == nil {
		ingredientIDs = []int64{}
	}
	return models.RecipeResponse{
		ID:          recipe.RecipeID,
		Title:       recipe.Title,
		TimeMinutes: recipe.TimeMinutes,
		Price:       recipe.Price,
		Link:        recipe.Link,
		Tags:        tagIDs,
		Ingredients: ingredientIDs,
	}
}

// recipeIDFromRequest parses the recipe id URL parameter. A malformed
// id behaves like an unknown one.
func recipeIDFromRequest(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "recipeID"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// writeValidationError maps recipe validation errors to a 400 response.
// Reports whether the error was handled.
func writeValidationError(w http.ResponseWriter, err error) bool {
	switch {
	case errors.Is(err, services.ErrRecipeTitleRequired),
		errors.Is(err, services.ErrInvalidTimeMinutes),
		errors.Is(err, services.ErrInvalidPrice),
		errors.Is(err, services.ErrUnknownTag),
		errors.Is(err, services.ErrUnknownIngredient):
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{
			Error: err.Error(),
		})
		return true
	}
	return false
}

// NewListRecipesHandler returns an HTTP handler that lists the caller's recipes.
// @Summary List recipes
// @Tags recipe
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.RecipeResponse "Recipes owned by the caller"
// @Failure 401 "Missing or invalid token"
// @Router /recipe/recipes [get]
func NewListRecipesHandler(svc RecipeLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.GetUserFromContext(r.Context())
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		recipes, err := svc.List(r.Context(), user.UserID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		resp := make([]models.RecipeResponse, 0, len(recipes))
		for i := range recipes {
			resp = append(resp, toRecipeResponse(&recipes[i].Recipe, recipes[i].TagIDs, recipes[i].IngredientIDs))
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

// NewGetRecipeHandler returns an HTTP handler for reading one owned
// recipe. Another user's recipe id yields 404, never 403.
// @Summary Get a recipe
// @Tags recipe
// @Produce json
// @Security BearerAuth
// @Param recipeID path int true "Recipe ID"
// @Success 200 {object} models.RecipeResponse "Recipe"
// @Failure 401 "Missing or invalid token"
// @Failure 404 "No such recipe owned by the caller"
// @Router /recipe/recipes/{recipeID} [get]
func NewGetRecipeHandler(svc RecipeGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.GetUserFromContext(r.Context())
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		recipeID, ok := recipeIDFromRequest(r)
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		recipe, tagIDs, ingredientIDs, err := svc.Get(r.Context(), user.UserID, recipeID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{
				Error: "Internal server error",
			})
			return
		}
		if recipe == nil {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		writeJSON(w, http.StatusOK, toRecipeResponse(recipe, tagIDs, ingredientIDs))
	}
}

// NewCreateRecipeHandler returns an HTTP handler that creates a recipe
// owned by the caller.
// @Summary Create a recipe
// @Tags recipe
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param recipeRequest body models.RecipeRequest true "Recipe to create"
// @Success 201 {object} models.RecipeResponse "Created recipe"
// @Failure 400 {object} models.ErrorResponse "Validation failure"
// @Failure 401 "Missing or invalid token"
// @Router /recipe/recipes [post]
func NewCreateRecipeHandler(svc RecipeCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.GetUserFromContext(r.Context())
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var req models.RecipeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, models.ErrorResponse{
				Error: "Invalid request body",
			})
			return
		}

		recipe, tagIDs, ingredientIDs, err := svc.Create(r.Context(), user.UserID, req)
		if err != nil {
			if writeValidationError(w, err) {
				return
			}
			logger.Log.Errorw("internal server error", "err", err)
			writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		writeJSON(w, http.StatusCreated, toRecipeResponse(recipe, tagIDs, ingredientIDs))
	}
}

// NewUpdateRecipeHandler returns an HTTP handler that partially updates
// an owned recipe.
// @Summary Update a recipe
// @Tags recipe
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param recipeID path int true "Recipe ID"
// @Param updateRecipeRequest body models.UpdateRecipeRequest true "Fields to update"
// @Success 200 {object} models.RecipeResponse "Updated recipe"
// @Failure 400 {object} models.ErrorResponse "Validation failure"
// @Failure 401 "Missing or invalid token"
// @Failure 404 "No such recipe owned by the caller"
// @Router /recipe/recipes/{recipeID} [patch]
func NewUpdateRecipeHandler(svc RecipeUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.GetUserFromContext(r.Context())
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		recipeID, ok := recipeIDFromRequest(r)
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		var req models.UpdateRecipeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, models.ErrorResponse{
				Error: "Invalid request body",
			})
			return
		}

		recipe, tagIDs, ingredientIDs, err := svc.Update(r.Context(), user.UserID, recipeID, req)
		if err != nil {
			if writeValidationError(w, err) {
				return
			}
			logger.Log.Errorw("internal server error", "err", err)
			writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{
				Error: "Internal server error",
			})
			return
		}
		if recipe == nil {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		writeJSON(w, http.StatusOK, toRecipeResponse(recipe, tagIDs, ingredientIDs))
	}
}

// NewDeleteRecipeHandler returns an HTTP handler that deletes an owned recipe.
// @Summary Delete a recipe
// @Tags recipe
// @Security BearerAuth
// @Param recipeID path int true "Recipe ID"
// @Success 204 "Recipe deleted"
// @Failure 401 "Missing or invalid token"
// @Failure 404 "No such recipe owned by the caller"
// @Router /recipe/recipes/{recipeID} [delete]
func NewDeleteRecipeHandler(svc RecipeDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.GetUserFromContext(r.Context())
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		recipeID, ok := recipeIDFromRequest(r)
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		deleted, err := svc.Delete(r.Context(), user.UserID, recipeID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{
				Error: "Internal server error",
			})
			return
		}
		if !deleted {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
