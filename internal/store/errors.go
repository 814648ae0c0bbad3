package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrRecordNotFound is returned when a catalog record addressed by id
	// does not exist.
	ErrRecordNotFound = errors.New("record not found")

	// ErrUserNotFound is returned when a query expected to match one account
	// produces an empty result set.
	ErrUserNotFound = errors.New("user not found")

	// ErrUsernameAlreadyExists is returned when an insert or update would
	// give two accounts the same username.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrDatabaseUnavailable is returned when the driver reports that the
	// database cannot be reached or is locked.
	ErrDatabaseUnavailable = errors.New("database is unavailable")

	// ErrUnsupportedDriver is returned by [NewConnect] for a driver name other
	// than postgres or sqlite3.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when squirrel fails to render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT (or an INSERT with
	// RETURNING) fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when a single-row lookup fails to produce
	// its row. database/sql reports query errors of QueryRow at Scan time, so
	// both cases land here.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning fails during multi-row
	// iteration, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
