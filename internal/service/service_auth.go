package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/report-catalog/internal/logger"
	"github.com/MKhiriev/report-catalog/internal/store"
	"github.com/MKhiriev/report-catalog/internal/utils"
	"github.com/MKhiriev/report-catalog/models"
)

// authService is the concrete implementation of AuthService.
// It verifies credentials against bcrypt hashes held by the UserRepository
// and answers the admin-flag lookups made by the authorization gate.
type authService struct {
	// userRepository is the data-access layer used to look up accounts.
	userRepository store.UserRepository

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository.
//
// The returned service is safe for concurrent use; it holds no mutable state.
func NewAuthService(userRepository store.UserRepository, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// Login verifies the supplied credentials.
//
// The account is looked up by username and the password is compared with the
// stored bcrypt hash. Returns the stored account on success or:
//   - ErrWrongCredentials if either field is empty, the username is unknown
//     or the password does not match. The caller cannot tell these apart.
//   - A wrapped storage error if the lookup itself fails.
func (a *authService) Login(ctx context.Context, creds models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if creds.Username == "" || creds.Password == "" {
		return models.User{}, ErrWrongCredentials
	}

	user, err := a.userRepository.FindByUsername(ctx, creds.Username)
	if errors.Is(err, store.ErrUserNotFound) {
		log.Info().Str("username", creds.Username).Msg("login attempt for unknown user")
		return models.User{}, ErrWrongCredentials
	}
	if err != nil {
		log.Err(err).Str("username", creds.Username).Msg("error looking up user during login")
		return models.User{}, fmt.Errorf("error looking up user: %w", err)
	}

	if !utils.CheckPassword(user.Password, creds.Password) {
		log.Info().Str("username", creds.Username).Msg("wrong password provided")
		return models.User{}, ErrWrongCredentials
	}

	return user, nil
}

// IsAdmin looks the account up by id on every call, so a revoked admin flag
// takes effect on the next request.
func (a *authService) IsAdmin(ctx context.Context, userID int64) (bool, error) {
	user, err := a.userRepository.FindByID(ctx, userID)
	if errors.Is(err, store.ErrUserNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("error looking up admin flag: %w", err)
	}

	return user.IsAdmin, nil
}

// LoginOptions returns every username, ordered by account id.
func (a *authService) LoginOptions(ctx context.Context) ([]string, error) {
	users, err := a.userRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}

	names := make([]string, 0, len(users))
	for _, u := range users {
		names = append(names, u.Username)
	}

	return names, nil
}
