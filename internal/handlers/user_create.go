package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mkarpushin/recipe-api/internal/logger"
	"github.com/mkarpushin/recipe-api/internal/models"
	"github.com/mkarpushin/recipe-api/internal/services"
)

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, email, password, name string) (*models.UserDB, error)
}

// NewCreateUserHandler returns an HTTP handler for user signup.
// @Summary Create a new user
// @Description Creates a new user account identified by email. The password is hashed before storing and never echoed back.
// @Tags user
// @Accept json
// @Produce json
// @Param createUserRequest body models.CreateUserRequest true "User signup request"
// @Success 201 {object} models.UserResponse "User successfully created"
// @Failure 400 {object} models.ErrorResponse "Validation failure"
// @Router /user/create [post]
func NewCreateUserHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.CreateUserRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, models.ErrorResponse{
				Error: "Invalid request body",
			})
			return
		}

		user, err := svc.Register(r.Context(), req.Email, req.Password, req.Name)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrEmailRequired),
				errors.Is(err, services.ErrPasswordTooShort),
				errors.Is(err, services.ErrUserAlreadyExists):
				writeJSON(w, http.StatusBadRequest, models.ErrorResponse{
					Error: err.Error(),
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		writeJSON(w, http.StatusCreated, models.UserResponse{
			Email: user.Email,
			Name:  user.Name,
		})
	}
}
