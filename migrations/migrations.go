// Package migrations embeds the SQL schema migrations for every supported database.
package migrations

import "embed"

// Postgres holds the migrations applied to PostgreSQL, rooted at "postgres".
//
//go:embed postgres/*.sql
var Postgres embed.FS

// SQLite holds the migrations applied to SQLite, rooted at "sqlite".
//
//go:embed sqlite/*.sql
var SQLite embed.FS
