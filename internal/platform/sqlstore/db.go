package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" driver
	"github.com/phrazzld/scry-drill/internal/config"
	"github.com/phrazzld/scry-drill/internal/redact"
	_ "modernc.org/sqlite" // registers the pure-Go "sqlite" driver
)

// Dialect identifies the SQL backend.
type Dialect string

// Supported dialects.
const (
	DialectSQLite   Dialect = "sqlite"
	DialectPostgres Dialect = "postgres"
)

// MemoryURL opens a private in-memory SQLite database.
const MemoryURL = ":memory:"

// DB is an open, migrated database together with its dialect.
type DB struct {
	*sql.DB
	dialect Dialect
}

// Dialect returns the backend of the database.
func (db *DB) Dialect() Dialect {
	return db.dialect
}

// builder returns a squirrel statement builder with the dialect's placeholders.
func (d Dialect) builder() sq.StatementBuilderType {
	if d == DialectPostgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

// Open connects to the configured database, verifies the connection and
// applies all pending migrations.
func Open(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*DB, error) {
	if logger == nil {
		logger = slog.Default()
	}
	log := logger.With(slog.String("component", "database"))

	var (
		db      *sql.DB
		err     error
		dialect = Dialect(cfg.Driver)
	)

	switch dialect {
	case DialectSQLite:
		db, err = sql.Open("sqlite", sqliteDSN(cfg.URL))
		if err != nil {
			return nil, fmt.Errorf("failed to open database connection: %w", err)
		}
		// SQLite serializes writers anyway, and every connection to
		// ":memory:" would see its own empty database.
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
		db.SetConnMaxLifetime(0)
	case DialectPostgres:
		db, err = sql.Open("pgx", cfg.URL)
		if err != nil {
			return nil, fmt.Errorf("failed to open database connection: %w", err)
		}
		db.SetMaxOpenConns(5)
		db.SetMaxIdleConns(2)
		db.SetConnMaxLifetime(5 * time.Minute)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	out := &DB{DB: db, dialect: dialect}

	if err := out.Migrate(ctx, log); err != nil {
		_ = db.Close()
		return nil, err
	}

	log.Info("database ready",
		slog.String("driver", cfg.Driver),
		slog.String("url", redact.String(cfg.URL)))
	return out, nil
}

// sqliteDSN enables foreign keys and a busy timeout on every connection.
func sqliteDSN(url string) string {
	sep := "?"
	if strings.Contains(url, "?") {
		sep = "&"
	}
	return url + sep + "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}
