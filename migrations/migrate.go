// Package migrations embeds the database schema and applies it with goose.
// Each supported driver has its own directory of migrations.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"strings"

	"github.com/pressly/goose/v3"

	"github.com/MKhiriev/report-catalog/internal/logger"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

var (
	// ErrNilDB is returned when Migrate is called without a connection.
	ErrNilDB = errors.New("migration error: db is nil")

	// ErrUnsupportedDriver is returned for a driver with no migrations.
	ErrUnsupportedDriver = errors.New("migration error: unsupported driver")
)

// dialects maps a database/sql driver name to the goose dialect and the
// embedded directory holding its migrations.
var dialects = map[string]struct {
	dialect string
	dir     string
}{
	"postgres": {dialect: "pgx", dir: "postgres"},
	"sqlite3":  {dialect: "sqlite3", dir: "sqlite"},
}

// gooseLogger sends goose's progress lines to the application log instead
// of the standard library logger.
type gooseLogger struct {
	log *logger.Logger
}

func (g gooseLogger) Printf(format string, v ...any) {
	g.log.Info().Str("component", "goose").Msg(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (g gooseLogger) Fatalf(format string, v ...any) {
	g.log.Fatal().Str("component", "goose").Msg(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

// Migrate applies every pending migration for driver ("postgres" or
// "sqlite3") to db. goose output goes to log.
func Migrate(db *sql.DB, driver string, log *logger.Logger) error {
	if db == nil {
		return ErrNilDB
	}

	d, ok := dialects[driver]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnsupportedDriver, driver)
	}

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(gooseLogger{log: log})

	if err := goose.SetDialect(d.dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, d.dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	version, err := goose.GetDBVersion(db)
	if err != nil {
		return fmt.Errorf("migration error reading schema version: %w", err)
	}
	log.Info().Str("driver", driver).Int64("version", version).Msg("schema is up to date")

	return nil
}
