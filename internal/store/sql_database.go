package store

import (
	"database/sql"

	"blogz/internal/logger"
	"blogz/migrations"
)

// DB wraps the shared *sql.DB handle together with the engine-specific error
// classifier and the goose dialect used for migrations.
type DB struct {
	*sql.DB
	errorClassifier ErrorClassifier
	dialect         string
	logger          *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}
