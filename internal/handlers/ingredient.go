package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/mkarpushin/recipe-api/internal/logger"
	"github.com/mkarpushin/recipe-api/internal/middlewares"
	"github.com/mkarpushin/recipe-api/internal/models"
	"github.com/mkarpushin/recipe-api/internal/services"
)

// IngredientLister defines the interface that the service must implement.
type IngredientLister interface {
	List(ctx context.Context, userID uuid.UUID) ([]models.IngredientDB, error)
}

// IngredientCreator defines the interface that the service must implement.
type IngredientCreator interface {
	Create(ctx context.Context, userID uuid.UUID, name string) (*models.IngredientDB, error)
}

// NewListIngredientsHandler returns an HTTP handler that lists the
// caller's ingredients.
// @Summary List ingredients
// @Tags recipe
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.IngredientResponse "Ingredients owned by the caller"
// @Failure 401 "Missing or invalid token"
// @Router /recipe/ingredients [get]
func NewListIngredientsHandler(svc IngredientLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.GetUserFromContext(r.Context())
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		ingredients, err := svc.List(r.Context(), user.UserID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		resp := make([]models.IngredientResponse, 0, len(ingredients))
		for _, i := range ingredients {
			resp = append(resp, models.IngredientResponse{ID: i.IngredientID, Name: i.Name})
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

// NewCreateIngredientHandler returns an HTTP handler that creates an
// ingredient owned by the caller.
// @Summary Create an ingredient
// @Tags recipe
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param ingredientRequest body models.IngredientRequest true "Ingredient to create"
// @Success 201 {object} models.IngredientResponse "Created ingredient"
// @Failure 400 {object} models.ErrorResponse "Validation failure"
// @Failure 401 "Missing or invalid token"
// @Router /recipe/ingredients [post]
func NewCreateIngredientHandler(svc IngredientCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.GetUserFromContext(r.Context())
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var req models.IngredientRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, models.ErrorResponse{
				Error: "Invalid request body",
			})
			return
		}

		ingredient, err := svc.Create(r.Context(), user.UserID, req.Name)
		if err != nil {
			if errors.Is(err, services.ErrIngredientNameRequired) {
				writeJSON(w, http.StatusBadRequest, models.ErrorResponse{
					Error: err.Error(),
				})
				return
			}
			logger.Log.Errorw("internal server error", "err", err)
			writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		writeJSON(w, http.StatusCreated, models.IngredientResponse{ID: ingredient.IngredientID, Name: ingredient.Name})
	}
}
