// SPDX-License-Identifier: Apache-2.0

package store

import (
	"database/sql"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// ErrorClassifier maps engine-specific driver errors to the conditions the
// repositories care about, so that the repository code stays engine-agnostic.
type ErrorClassifier interface {
	// IsUniqueViolation reports whether err is a unique-constraint violation
	// (e.g. a duplicate email on user creation).
	IsUniqueViolation(err error) bool

	// IsNotFound reports whether err indicates an empty result set.
	IsNotFound(err error) bool
}

// PostgresErrorClassifier implements [ErrorClassifier] for PostgreSQL.
// It inspects the pgconn error code returned by the pgx driver.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier] ready for use.
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

func (c *PostgresErrorClassifier) IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrcode.UniqueViolation
	}
	return false
}

func (c *PostgresErrorClassifier) IsNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

// SQLiteErrorClassifier implements [ErrorClassifier] for SQLite.
// It inspects the extended result code returned by the go-sqlite3 driver.
type SQLiteErrorClassifier struct{}

// NewSQLiteErrorClassifier constructs a [SQLiteErrorClassifier] ready for use.
func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

func (c *SQLiteErrorClassifier) IsUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return errors.Is(sqliteErr.ExtendedCode, sqlite3.ErrConstraintUnique) ||
			errors.Is(sqliteErr.ExtendedCode, sqlite3.ErrConstraintPrimaryKey)
	}
	return false
}

func (c *SQLiteErrorClassifier) IsNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
