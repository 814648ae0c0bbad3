package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/report-catalog/models"
)

// Field name constants accepted by FormValidator.Validate to restrict
// validation to a subset of fields. They name the Go struct fields.
const (
	FieldUsername = "Username"
	FieldPassword = "Password"
	FieldUserID   = "UserID"
)

// FormValidator checks the admin account forms against their `validate`
// struct tags.
type FormValidator struct {
	v *validator.Validate
}

func NewFormValidator() Validator {
	return &FormValidator{v: validator.New(validator.WithRequiredStructEnabled())}
}

// Validate accepts [models.NewUserForm], [models.EditUserForm] and
// [models.RolesUpdate], by value or pointer. When fields are given only those
// fields are checked; a name the form does not declare yields
// [ErrUnknownField].
//
// The first failing rule is mapped to a package sentinel where one exists.
func (f *FormValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.NewUserForm, *models.NewUserForm,
		models.EditUserForm, *models.EditUserForm,
		models.RolesUpdate, *models.RolesUpdate:
		return f.validate(value, fields...)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (f *FormValidator) validate(obj any, fields ...string) error {
	var err error
	if len(fields) > 0 {
		if err = checkFields(obj, fields); err != nil {
			return err
		}
		err = f.v.StructPartial(obj, fields...)
	} else {
		err = f.v.Struct(obj)
	}
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) || len(ve) == 0 {
		return err
	}

	return fieldError(ve[0])
}

// checkFields rejects field names the form struct does not declare, which
// StructPartial would otherwise skip without complaint.
func checkFields(obj any, fields []string) error {
	v := reflect.Indirect(reflect.ValueOf(obj))
	if !v.IsValid() {
		return nil
	}

	t := v.Type()
	for _, field := range fields {
		name, _, _ := strings.Cut(field, ".")
		if _, ok := t.FieldByName(name); !ok {
			return fmt.Errorf("%w: %s.%s", ErrUnknownField, t.Name(), field)
		}
	}
	return nil
}

// fieldError converts a single validation failure into a sentinel-wrapped error.
func fieldError(fe validator.FieldError) error {
	switch fe.Field() {
	case FieldPassword:
		if fe.Tag() == "required" {
			return ErrPasswordRequired
		}
	case FieldUsername:
		if fe.Tag() == "required" {
			return ErrUsernameRequired
		}
	case FieldUserID:
		return fmt.Errorf("%w: must be %s %s", ErrInvalidUserID, fe.Tag(), fe.Param())
	}

	return fmt.Errorf("%s failed validation (%s)", strings.ToLower(fe.Field()), fe.Tag())
}
