package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"

	"github.com/mkarpushin/recipe-api/internal/logger"
	"github.com/mkarpushin/recipe-api/internal/models"
)

// uniqueViolation is the Postgres error code for a unique constraint hit.
const uniqueViolation = "23505"

// ErrEmailTaken is returned when an insert loses to an existing row
// with the same email.
var ErrEmailTaken = errors.New("email already registered")

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByEmail returns the user with the given normalized email,
// or nil when no such user exists.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	const query = `
		SELECT user_id, email, password_hash, name, is_active, is_staff, is_superuser, created_at, updated_at
		FROM users
		WHERE email = $1
	`

	var user models.UserDB
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &user, query, email)

	logger.Log.Infow("select user by email",
		"query", squash(query),
		"email", email,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// GetByID returns the user with the given ID, or nil when no such user exists.
func (r *UserReadRepository) GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	const query = `
		SELECT user_id, email, password_hash, name, is_active, is_staff, is_superuser, created_at, updated_at
		FROM users
		WHERE user_id = $1
	`

	var user models.UserDB
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &user, query, userID)

	logger.Log.Infow("select user by id",
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

	return &user, nil
}

type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts a new user and returns the stored record.
// A nil passwordHash creates an account with no usable password.
func (r *UserWriteRepository) Save(
	ctx context.Context,
	email string,
	passwordHash *string,
	name string,
	isStaff, isSuperuser bool,
) (*models.UserDB, error) {
	const query = `
		INSERT INTO users (email, password_hash, name, is_staff, is_superuser)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING user_id, email, password_hash, name, is_active, is_staff, is_superuser, created_at, updated_at
	`
	args := []any{email, passwordHash, name, isStaff, isSuperuser}

	var user models.UserDB
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &user, query, args...)

	logger.Log.Infow("insert user",
		"query", squash(query),
		"email", email,
		"error", err,
	)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return nil, ErrEmailTaken
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// Update applies a partial update to the user. Nil fields are left
// unchanged. Returns nil when the user does not exist.
func (r *UserWriteRepository) Update(
	ctx context.Context,
	userID uuid.UUID,
	name *string,
	passwordHash *string,
) (*models.UserDB, error) {
	const query = `
		UPDATE users
		SET name = COALESCE($2, name),
		    password_hash = COALESCE($3, password_hash),
		    updated_at = NOW()
		WHERE user_id = $1
		RETURNING user_id, email, password_hash, name, is_active, is_staff, is_superuser, created_at, updated_at
	`

	var user models.UserDB
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &user, query, userID, name, passwordHash)

	logger.Log.Infow("update user",
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

	return &user, nil
}

// SetFlags updates the staff/superuser flags of an existing user.
func (r *UserWriteRepository) SetFlags(
	ctx context.Context,
	userID uuid.UUID,
	isStaff, isSuperuser bool,
) error {
	const query = `
		UPDATE users
		SET is_staff = $2,
		    is_superuser = $3,
		    updated_at = NOW()
		WHERE user_id = $1
	`

	_, err := ext(ctx, r.db).ExecContext(ctx, query, userID, isStaff, isSuperuser)

	logger.Log.Infow("update user flags",
		"query", squash(query),
		"user_id", userID,
		"is_staff", isStaff,
		"is_superuser", isSuperuser,
		"error", err,
	)

	return err
}
