package middlewares

import (
	"context"
	"net/http"

	"github.com/mkarpushin/recipe-api/internal/logger"
	"github.com/mkarpushin/recipe-api/internal/models"
)

// TokenExtractor pulls a bearer token out of an incoming request
type TokenExtractor interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
}

// UserResolver resolves an opaque token to its owning user
type UserResolver interface {
	Resolve(ctx context.Context, token string) (*models.UserDB, error)
}

// AuthMiddleware returns a middleware that resolves the bearer token to a
// user and stores it in the request context. Requests without a valid
// token never reach the wrapped handler.
func AuthMiddleware(extractor TokenExtractor, resolver UserResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := extractor.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			user, err := resolver.Resolve(ctx, tokenString)
			if err != nil || user == nil {
				logger.Log.Errorw("authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			if !user.IsActive {
				logger.Log.Errorw("inactive user rejected", "user_id", user.UserID)
				w.WriteHeader(http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r.WithContext(SetUserToContext(ctx, user)))
		})
	}
}

// userContextKey is an unexported type for the user context key
type userContextKey struct{}

var userKey = userContextKey{}

// SetUserToContext stores the authenticated user in the context
func SetUserToContext(ctx context.Context, user *models.UserDB) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// GetUserFromContext retrieves the authenticated user from the context.
// Returns nil if not present.
func GetUserFromContext(ctx context.Context) *models.UserDB {
	user, _ := ctx.Value(userKey).(*models.UserDB)
	return user
}
