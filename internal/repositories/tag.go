package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/mkarpushin/recipe-api/internal/logger"
	"github.com/mkarpushin/recipe-api/internal/models"
)

type TagReadRepository struct {
	db *sqlx.DB
}

func NewTagReadRepository(db *sqlx.DB) *TagReadRepository {
	return &TagReadRepository{db: db}
}

// ListByUser returns the user's tags ordered by name descending.
func (r *TagReadRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.TagDB, error) {
	const query = `
		SELECT tag_id, user_id, name
		FROM tags
		WHERE user_id = $1
		ORDER BY name DESC
	`

	tags := []models.TagDB{}
	err := sqlx.SelectContext(ctx, ext(ctx, r.db), &tags, query, userID)

	logger.Log.Infow("select tags",
		"query", squash(query),
		"user_id", userID,
		"count", len(tags),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return tags, nil
}

// FilterOwned returns the subset of ids that are tags owned by the user.
func (r *TagReadRepository) FilterOwned(ctx context.Context, userID uuid.UUID, ids []int64) ([]int64, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In(`SELECT tag_id FROM tags WHERE user_id = ? AND tag_id IN (?)`, userID, ids)
	if err != nil {
		return nil, err
	}

	e := ext(ctx, r.db)
	query = e.Rebind(query)

	owned := []int64{}
	err = sqlx.SelectContext(ctx, e, &owned, query, args...)

	logger.Log.Infow("filter owned tags",
		"query", squash(query),
		"user_id", userID,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return owned, nil
}

type TagWriteRepository struct {
	db *sqlx.DB
}

func NewTagWriteRepository(db *sqlx.DB) *TagWriteRepository {
	return &TagWriteRepository{db: db}
}

// Save inserts a new tag for the user and returns the stored record.
func (r *TagWriteRepository) Save(ctx context.Context, userID uuid.UUID, name string) (*models.TagDB, error) {
	const query = `
		INSERT INTO tags (user_id, name)
		VALUES ($1, $2)
		RETURNING tag_id, user_id, name
	`

	var tag models.TagDB
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &tag, query, userID, name)

	logger.Log.Infow("insert tag",
		"query", squash(query),
		"user_id", userID,
		"name", name,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &tag, nil
}
