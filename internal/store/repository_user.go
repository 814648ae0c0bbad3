package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/report-catalog/internal/logger"
	"github.com/MKhiriev/report-catalog/models"
)

// userRepository is the SQL implementation of [UserRepository].
// It handles account creation, lookup and updates against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// Create persists a new account and returns it with the assigned UserID.
// user.Password must already be hashed.
//
// Error handling:
//   - unique violation on username → [ErrUsernameAlreadyExists].
//   - any other driver-level error → wrapped [ErrExecutingQuery].
func (r *userRepository) Create(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertUserQuery(r.db.builder, user)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&user.UserID); err != nil {
		log.Err(err).Str("func", "*userRepository.Create").Str("username", user.Username).Msg("error creating user")
		return models.User{}, r.db.classify(err, ErrUsernameAlreadyExists, ErrExecutingQuery)
	}

	return user, nil
}

// FindByUsername returns the account with the given username, password hash
// included, or [ErrUserNotFound].
func (r *userRepository) FindByUsername(ctx context.Context, username string) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindByUsername", sq.Eq{colUsername: username})
}

// FindByID returns the account with the given id or [ErrUserNotFound].
func (r *userRepository) FindByID(ctx context.Context, userID int64) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindByID", sq.Eq{colID: userID})
}

func (r *userRepository) findOne(ctx context.Context, fn string, where sq.Eq) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindUserQuery(r.db.builder, where)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var user models.User
	row := r.db.QueryRowContext(ctx, query, args...)
	if err = row.Scan(&user.UserID, &user.Username, &user.Password, &user.IsAdmin, &user.Roles, &user.Email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", fn).Msg("error fetching user")
		return models.User{}, r.db.classify(err, nil, ErrScanningRow)
	}

	return user, nil
}

// List returns every account ordered by id. Password hashes are not selected.
func (r *userRepository) List(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListUsersQuery(r.db.builder)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.List").Msg("error executing query")
		return nil, r.db.classify(err, nil, ErrExecutingQuery)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		var user models.User
		if err = rows.Scan(&user.UserID, &user.Username, &user.IsAdmin, &user.Roles, &user.Email); err != nil {
			log.Err(err).Str("func", "*userRepository.List").Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		users = append(users, user)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return users, nil
}

// Update writes username and admin flag, plus the password hash when
// update.Password is non-nil.
func (r *userRepository) Update(ctx context.Context, update models.UserUpdate) error {
	query, args, err := buildUpdateUserQuery(r.db.builder, update)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execAffectingOne(ctx, "*userRepository.Update", query, args)
}

// UpdateRoles overwrites the comma-separated roles column of one account.
func (r *userRepository) UpdateRoles(ctx context.Context, userID int64, roles string) error {
	query, args, err := buildUpdateRolesQuery(r.db.builder, userID, roles)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execAffectingOne(ctx, "*userRepository.UpdateRoles", query, args)
}

// DeleteAll removes every account. Used by the seeder only.
func (r *userRepository) DeleteAll(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteAllUsersQuery(r.db.builder)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteAll").Msg("error deleting users")
		return 0, r.db.classify(err, nil, ErrExecutingStatement)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return deleted, nil
}

func (r *userRepository) execAffectingOne(ctx context.Context, fn, query string, args []any) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", fn).Msg("error executing statement")
		return r.db.classify(err, ErrUsernameAlreadyExists, ErrExecutingStatement)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}
