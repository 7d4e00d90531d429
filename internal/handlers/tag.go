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

// TagLister defines the interface that the service must implement.
type TagLister interface {
	List(ctx context.Context, userID uuid.UUID) ([]models.TagDB, error)
}

// TagCreator defines the interface that the service must implement.
type TagCreator interface {
	Create(ctx context.Context, userID uuid.UUID, name string) (*models.TagDB, error)
}

// NewListTagsHandler returns an HTTP handler that lists the caller's
// tags ordered by name descending.
// @Summary List tags
// @Tags recipe
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.TagResponse "Tags owned by the caller"
// @Failure 401 "Missing or invalid token"
// @Router /recipe/tags [get]
func NewListTagsHandler(svc TagLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.GetUserFromContext(r.Context())
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		tags, err := svc.List(r.Context(), user.UserID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		resp := make([]models.TagResponse, 0, len(tags))
		for _, t := range tags {
			resp = append(resp, models.TagResponse{ID: t.TagID, Name: t.Name})
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

// NewCreateTagHandler returns an HTTP handler that creates a tag owned
// by the caller.
// @Summary Create a tag
// @Tags recipe
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param tagRequest body models.TagRequest true "Tag to create"
// @Success 201 {object} models.TagResponse "Created tag"
// @Failure 400 {object} models.ErrorResponse "Validation failure"
// @Failure 401 "Missing or invalid token"
// @Router /recipe/tags [post]
func NewCreateTagHandler(svc TagCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.GetUserFromContext(r.Context())
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var req models.TagRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, models.ErrorResponse{
				Error: "Invalid request body",
			})
			return
		}

		tag, err := svc.Create(r.Context(), user.UserID, req.Name)
		if err != nil {
			if errors.Is(err, services.ErrTagNameRequired) {
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

		writeJSON(w, http.StatusCreated, models.TagResponse{ID: tag.TagID, Name: tag.Name})
	}
}
