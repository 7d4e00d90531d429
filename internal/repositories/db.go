package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/mkarpushin/recipe-api/internal/middlewares"
)

// ext returns the per-request transaction when one is present in the
// context, otherwise the shared connection pool.
func ext(ctx context.Context, db *sqlx.DB) sqlx.ExtContext {
	if tx := middlewares.GetTxFromContext(ctx); tx != nil {
		return tx
	}
	return db
}

// squash collapses a multi-line query into a single log-friendly line
func squash(query string) string {
	return strings.Join(strings.Fields(query), " ")
}
