package sqlstore

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/scry-drill/internal/store"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// PostgreSQL error codes
const (
	uniqueViolationCode     = "23505"
	foreignKeyViolationCode = "23503"
	checkViolationCode      = "23514"
	notNullViolationCode    = "23502"
)

// violation is the driver-neutral class of a constraint failure.
type violation int

const (
	noViolation violation = iota
	uniqueViolation
	foreignKeyViolation
	checkViolation
	notNullViolation
)

// classify inspects a Postgres or SQLite driver error.
func classify(err error) (violation, string) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolationCode:
			return uniqueViolation, pgErr.ConstraintName
		case foreignKeyViolationCode:
			return foreignKeyViolation, pgErr.ConstraintName
		case checkViolationCode:
			return checkViolation, pgErr.ConstraintName
		case notNullViolationCode:
			return notNullViolation, pgErr.ColumnName
		}
		return noViolation, ""
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		switch liteErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return uniqueViolation, ""
		case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
			return foreignKeyViolation, ""
		case sqlite3.SQLITE_CONSTRAINT_CHECK:
			return checkViolation, ""
		case sqlite3.SQLITE_CONSTRAINT_NOTNULL:
			return notNullViolation, ""
		}
	}
	return noViolation, ""
}

// MapError maps a database error to the matching store error.
// The driver error text is kept in the message for debugging.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %v", store.ErrNotFound, err)
	}

	kind, detail := classify(err)
	switch kind {
	case uniqueViolation:
		return fmt.Errorf("%w: %v", store.ErrDuplicate, err)
	case foreignKeyViolation:
		return fmt.Errorf("%w: foreign key violation (%s): %v", store.ErrInvalidEntity, detail, err)
	case checkViolation:
		return fmt.Errorf("%w: check constraint violation (%s): %v", store.ErrInvalidEntity, detail, err)
	case notNullViolation:
		return fmt.Errorf("%w: not null violation (%s): %v", store.ErrInvalidEntity, detail, err)
	}

	return err
}

// IsUniqueViolation reports whether err is a unique constraint violation
// from either supported driver.
func IsUniqueViolation(err error) bool {
	kind, _ := classify(err)
	return kind == uniqueViolation
}

// IsForeignKeyViolation reports whether err is a foreign key violation
// from either supported driver.
func IsForeignKeyViolation(err error) bool {
	kind, _ := classify(err)
	return kind == foreignKeyViolation
}
