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

// ProfileUpdater defines the interface that the service must implement.
type ProfileUpdater interface {
	Update(ctx context.Context, userID uuid.UUID, name, password *string) (*models.UserDB, error)
}

// NewGetMeHandler returns an HTTP handler for reading the
// authenticated user's own profile.
// @Summary Get own profile
// @Description Returns the authenticated user's name and email. The password is never included.
// @Tags user
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.UserResponse "Profile"
// @Failure 401 "Missing or invalid token"
// @Router /user/me [get]
func NewGetMeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.GetUserFromContext(r.Context())
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		writeJSON(w, http.StatusOK, models.UserResponse{
			Email: user.Email,
			Name:  user.Name,
		})
	}
}

// NewUpdateMeHandler returns an HTTP handler for partially updating the
// authenticated user's own profile. Only name and password may change.
// @Summary Update own profile
// @Description Applies a partial update of name and/or password. A new password is hashed before storage.
// @Tags user
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param updateUserRequest body models.UpdateUserRequest true "Fields to update"
// @Success 200 {object} models.UserResponse "Updated profile"
// @Failure 400 {object} models.ErrorResponse "Validation failure"
// @Failure 401 "Missing or invalid token"
// @Router /user/me [patch]
func NewUpdateMeHandler(svc ProfileUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.GetUserFromContext(r.Context())
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var req models.UpdateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, models.ErrorResponse{
				Error: "Invalid request body",
			})
			return
		}

		updated, err := svc.Update(r.Context(), user.UserID, req.Name, req.Password)
		if err != nil {
			if errors.Is(err, services.ErrPasswordTooShort) {
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
		if updated == nil {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		writeJSON(w, http.StatusOK, models.UserResponse{
			Email: updated.Email,
			Name:  updated.Name,
		})
	}
}

// NewMeNotAllowedHandler returns an HTTP handler that rejects creation
// attempts on the self-profile endpoint. Accounts are created only
// through signup, so POST /user/me is always 405, authenticated or not.
// @Summary Method not allowed
// @Tags user
// @Failure 405 "POST is not supported on the profile endpoint"
// @Router /user/me [post]
func NewMeNotAllowedHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Allow", "GET, PATCH")
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}
