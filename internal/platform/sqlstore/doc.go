// Package sqlstore provides the SQL implementations of the card and answer
// stores defined in internal/store. It supports SQLite (the default, a
// single local file) and PostgreSQL through database/sql, builds queries
// with squirrel, and applies embedded goose migrations on open.
package sqlstore
