package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/report-catalog/models"
)

func TestFormValidator_Validate(t *testing.T) {
	v := NewFormValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		obj     any
		fields  []string
		wantErr error
	}{
		{
			name: "valid new user",
			obj:  models.NewUserForm{Username: "ana", Password: "pw"},
		},
		{
			name:    "new user without password",
			obj:     models.NewUserForm{Username: "ana"},
			wantErr: ErrPasswordRequired,
		},
		{
			name:    "new user without username",
			obj:     &models.NewUserForm{Password: "pw"},
			wantErr: ErrUsernameRequired,
		},
		{
			name: "edit user may omit password",
			obj:  models.EditUserForm{Username: "ana"},
		},
		{
			name:    "edit user without username",
			obj:     models.EditUserForm{Password: "pw"},
			wantErr: ErrUsernameRequired,
		},
		{
			name: "roles update with empty roles",
			obj:  models.RolesUpdate{UserID: 4},
		},
		{
			name:    "roles update without user",
			obj:     models.RolesUpdate{Roles: []string{"Ventas"}},
			wantErr: ErrInvalidUserID,
		},
		{
			name:   "partial validation skips other fields",
			obj:    models.NewUserForm{Username: "ana"},
			fields: []string{FieldUsername},
		},
		{
			name:    "unknown field name",
			obj:     models.EditUserForm{Username: "ana"},
			fields:  []string{"Email"},
			wantErr: ErrUnknownField,
		},
		{
			name:    "unknown field on pointer form",
			obj:     &models.RolesUpdate{UserID: 1},
			fields:  []string{FieldUserID, "Role"},
			wantErr: ErrUnknownField,
		},
		{
			name:   "several known fields",
			obj:    &models.NewUserForm{Username: "ana", Password: "pw"},
			fields: []string{FieldUsername, FieldPassword},
		},
		{
			name:    "unsupported type",
			obj:     models.Record{},
			wantErr: ErrUnsupportedType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.obj, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
