package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/mkarpushin/recipe-api/internal/logger"
	"github.com/mkarpushin/recipe-api/internal/models"
)

type TokenReadRepository struct {
	db *sqlx.DB
}

func NewTokenReadRepository(db *sqlx.DB) *TokenReadRepository {
	return &TokenReadRepository{db: db}
}

// GetByToken returns the persisted token record, or nil when the token
// is unknown.
func (r *TokenReadRepository) GetByToken(ctx context.Context, token string) (*models.TokenDB, error) {
	const query = `
		SELECT token, user_id, created_at
		FROM tokens
		WHERE token = $1
	`

	var t models.TokenDB
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &t, query, token)

	logger.Log.Infow("select token",
		"query", squash(query),
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &t, nil
}

// GetByUserID returns the user's existing token, or nil when none has
// been issued yet.
func (r *TokenReadRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.TokenDB, error) {
	const query = `
		SELECT token, user_id, created_at
		FROM tokens
		WHERE user_id = $1
	`

	var t models.TokenDB
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &t, query, userID)

	logger.Log.Infow("select token by user",
		"query", squash(query),
		"user_id", userID,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &t, nil
}

type TokenWriteRepository struct {
	db *sqlx.DB
}

func NewTokenWriteRepository(db *sqlx.DB) *TokenWriteRepository {
	return &TokenWriteRepository{db: db}
}

// Save persists a freshly minted token for the user. A concurrent login
// may have stored one already; the existing token wins and Save reports
// false in that case.
func (r *TokenWriteRepository) Save(ctx context.Context, token string, userID uuid.UUID) (bool, error) {
	const query = `
		INSERT INTO tokens (token, user_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO NOTHING
	`

	res, err := ext(ctx, r.db).ExecContext(ctx, query, token, userID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("insert token",
		"query", squash(query),
		"user_id", userID,
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}

	return rowsAffected > 0, nil
}
