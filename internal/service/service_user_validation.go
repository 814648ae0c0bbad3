package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/report-catalog/internal/validators"
	"github.com/MKhiriev/report-catalog/models"
)

// UserValidationService validates admin forms before handing them to the
// wrapped UserService. Read methods pass straight through.
type UserValidationService struct {
	inner     UserService
	validator validators.Validator
}

func NewUserValidationService(validator validators.Validator) UserServiceWrapper {
	return &UserValidationService{
		validator: validator,
	}
}

func (v *UserValidationService) Wrap(inner UserService) UserService {
	v.inner = inner
	return v
}

func (v *UserValidationService) List(ctx context.Context) ([]models.User, error) {
	return v.inner.List(ctx)
}

func (v *UserValidationService) Get(ctx context.Context, userID int64) (models.User, error) {
	return v.inner.Get(ctx, userID)
}

func (v *UserValidationService) Create(ctx context.Context, form models.NewUserForm) (models.User, error) {
	if err := v.validator.Validate(ctx, form); err != nil {
		return models.User{}, validationError(err)
	}
	return v.inner.Create(ctx, form)
}

func (v *UserValidationService) Update(ctx context.Context, userID int64, form models.EditUserForm) error {
	if err := v.validator.Validate(ctx, form); err != nil {
		return validationError(err)
	}
	return v.inner.Update(ctx, userID, form)
}

func (v *UserValidationService) AssignRoles(ctx context.Context, update models.RolesUpdate) error {
	if err := v.validator.Validate(ctx, update); err != nil {
		return validationError(err)
	}
	return v.inner.AssignRoles(ctx, update)
}

func validationError(err error) error {
	if errors.Is(err, validators.ErrPasswordRequired) {
		return ErrPasswordRequired
	}
	return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
}
