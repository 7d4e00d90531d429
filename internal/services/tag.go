package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/mkarpushin/recipe-api/internal/logger"
	"github.com/mkarpushin/recipe-api/internal/models"
)

// ErrTagNameRequired is returned when a tag is created with an empty name.
var ErrTagNameRequired = errors.New("tag name is required")

// TagReader defines read-only operations for tags.
type TagReader interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.TagDB, error)
	FilterOwned(ctx context.Context, userID uuid.UUID, ids []int64) ([]int64, error)
}

// TagWriter defines write operations for tags.
type TagWriter interface {
	Save(ctx context.Context, userID uuid.UUID, name string) (*models.TagDB, error)
}

// TagService manages a user's tags.
type TagService struct {
	reader TagReader
	writer TagWriter
}

// NewTagService creates a new TagService instance.
func NewTagService(reader TagReader, writer TagWriter) *TagService {
	return &TagService{reader: reader, writer: writer}
}

// List returns the user's tags, ordered by name descending.
func (svc *TagService) List(ctx context.Context, userID uuid.UUID) ([]models.TagDB, error) {
	tags, err := svc.reader.ListByUser(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list tags", "user_id", userID, "err", err)
		return nil, err
	}
	return tags, nil
}

// Create stores a new tag owned by the user.
func (svc *TagService) Create(ctx context.Context, userID uuid.UUID, name string) (*models.TagDB, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrTagNameRequired
	}

	tag, err := svc.writer.Save(ctx, userID, name)
	if err != nil {
		logger.Log.Errorw("failed to save tag", "user_id", userID, "err", err)
		return nil, err
	}
	return tag, nil
}
