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

// Loginer defines the interface that the service must implement.
type Loginer interface {
	Login(ctx context.Context, email, password string) (string, error)
}

// NewCreateTokenHandler returns an HTTP handler that exchanges
// credentials for a bearer token. The failure response never reveals
// which part of the credentials was wrong.
// @Summary Obtain an auth token
// @Description Verifies email and password and returns the user's opaque bearer token.
// @Tags user
// @Accept json
// @Produce json
// @Param tokenRequest body models.TokenRequest true "Credentials"
// @Success 200 {object} models.TokenResponse "Token issued"
// @Failure 400 {object} models.ErrorResponse "Invalid credentials or malformed request"
// @Router /user/token [post]
func NewCreateTokenHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.TokenRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, models.ErrorResponse{
				Error: "Unable to authenticate with provided credentials",
			})
			return
		}

		token, err := svc.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			if errors.Is(err, services.ErrInvalidCredentials) {
				writeJSON(w, http.StatusBadRequest, models.ErrorResponse{
					Error: "Unable to authenticate with provided credentials",
				})
				return
			}
			logger.Log.Errorw("internal server error", "err", err)
			writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		writeJSON(w, http.StatusOK, models.TokenResponse{
			Token: token,
		})
	}
}
