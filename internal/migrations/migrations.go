// Package migrations holds the embedded forward-only SQL schema
// migrations applied with goose at startup.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
