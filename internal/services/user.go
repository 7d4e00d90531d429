package services

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/mkarpushin/recipe-api/internal/logger"
	"github.com/mkarpushin/recipe-api/internal/models"
)

// ProfileWriter defines the partial-update operation for users.
type ProfileWriter interface {
	Update(ctx context.Context, userID uuid.UUID, name *string, passwordHash *string) (*models.UserDB, error)
}

// ProfileService manages the authenticated user's own record.
// Only name and password are self-serviceable.
type ProfileService struct {
	writer ProfileWriter
}

// NewProfileService creates a new ProfileService instance.
func NewProfileService(writer ProfileWriter) *ProfileService {
	return &ProfileService{writer: writer}
}

// Update applies a partial update to the user's own profile. A new
// password is hashed before storage; nil fields are left unchanged.
func (svc *ProfileService) Update(ctx context.Context, userID uuid.UUID, name, password *string) (*models.UserDB, error) {
	var passwordHash *string
	if password != nil {
		if len(*password) < minPasswordLength {
			return nil, ErrPasswordTooShort
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
		if err != nil {
			logger.Log.Errorw("failed to hash password", "err", err)
			return nil, err
		}
		hash := string(hashed)
		passwordHash = &hash
	}

	user, err := svc.writer.Update(ctx, userID, name, passwordHash)
	if err != nil {
		logger.Log.Errorw("failed to update user", "err", err)
		return nil, err
	}

	return user, nil
}
