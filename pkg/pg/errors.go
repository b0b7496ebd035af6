package pg

import (
	"errors"

	"github.com/jackc/pgx/v5"
)

var (
	ErrEmptyConnectionString = errors.New("pg: empty connection string, set PG_CONN_URL")
	ErrParseConfig           = errors.New("pg: failed to parse connection config")
	ErrOpenConnection        = errors.New("pg: failed to open connection")
	ErrHealthcheckFailed     = errors.New("pg: healthcheck failed")
	ErrApplyMigrations       = errors.New("pg: failed to apply migrations")
	ErrMigrationsDirNotFound = errors.New("pg: migrations directory not found")
	ErrNilPool               = errors.New("pg: nil pool")
)

// IsNotFoundError reports whether err is pgx.ErrNoRows.
func IsNotFoundError(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
