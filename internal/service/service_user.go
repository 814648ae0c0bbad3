package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/report-catalog/internal/config"
	"github.com/MKhiriev/report-catalog/internal/logger"
	"github.com/MKhiriev/report-catalog/internal/store"
	"github.com/MKhiriev/report-catalog/internal/utils"
	"github.com/MKhiriev/report-catalog/models"
)

// userService manages accounts on behalf of administrators. Passwords are
// hashed with bcrypt before they reach the repository.
type userService struct {
	userRepository store.UserRepository
	hashCost       int
	logger         *logger.Logger
}

func NewUserService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		hashCost:       cfg.PasswordHashCost,
		logger:         logger,
	}
}

func (s *userService) List(ctx context.Context) ([]models.User, error) {
	return s.userRepository.List(ctx)
}

func (s *userService) Get(ctx context.Context, userID int64) (models.User, error) {
	return s.userRepository.FindByID(ctx, userID)
}

// Create hashes the password and stores a new account with no roles.
func (s *userService) Create(ctx context.Context, form models.NewUserForm) (models.User, error) {
	log := logger.FromContext(ctx)

	hash, err := utils.HashPassword(form.Password, s.hashCost)
	if err != nil {
		log.Err(err).Msg("error hashing new user password")
		return models.User{}, err
	}

	user, err := s.userRepository.Create(ctx, models.User{
		Username: form.Username,
		Password: hash,
		IsAdmin:  form.IsAdmin,
		Email:    form.Email,
	})
	if err != nil {
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Int64("user_id", user.UserID).Bool("is_admin", user.IsAdmin).Msg("user created")
	return user, nil
}

// Update writes username and admin flag. The password hash is replaced only
// when form.Password is non-empty.
func (s *userService) Update(ctx context.Context, userID int64, form models.EditUserForm) error {
	update := models.UserUpdate{
		UserID:   userID,
		Username: form.Username,
		IsAdmin:  form.IsAdmin,
	}

	if form.Password != "" {
		hash, err := utils.HashPassword(form.Password, s.hashCost)
		if err != nil {
			return err
		}
		update.Password = &hash
	}

	if err := s.userRepository.Update(ctx, update); err != nil {
		return fmt.Errorf("user update ended with error: %w", err)
	}

	return nil
}

// AssignRoles overwrites the account's roles with the trimmed, comma-joined
// form of update.Roles. An empty list clears them.
func (s *userService) AssignRoles(ctx context.Context, update models.RolesUpdate) error {
	roles := models.JoinRoles(update.Roles)

	if err := s.userRepository.UpdateRoles(ctx, update.UserID, roles); err != nil {
		return fmt.Errorf("role assignment ended with error: %w", err)
	}

	logger.FromContext(ctx).Info().Int64("user_id", update.UserID).Str("roles", roles).Msg("roles updated")
	return nil
}
