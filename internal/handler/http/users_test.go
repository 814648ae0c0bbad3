package http

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/report-catalog/internal/service"
	"github.com/MKhiriev/report-catalog/internal/store"
	"github.com/MKhiriev/report-catalog/internal/validators"
	"github.com/MKhiriev/report-catalog/models"
)

func TestListUsers_RendersAccounts(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.asAdmin(t)
	env.users.listFn = func(context.Context) ([]models.User, error) {
		return []models.User{{UserID: 1, Username: "admin", IsAdmin: true}, {UserID: 2, Username: "ana"}}, nil
	}

	rec := env.do(t, http.MethodGet, "/users", nil, cookie)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `href="/edit_user/2"`)
	assert.Contains(t, rec.Body.String(), "ana")
}

func TestNewUserPage_RendersForm(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/users/new", nil, env.asAdmin(t))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `action="/users/new"`)
}

func TestCreateUser(t *testing.T) {
	tests := []struct {
		name         string
		form         url.Values
		createErr    error
		wantForm     models.NewUserForm
		wantStatus   int
		wantLocation string
		wantBody     string
	}{
		{
			name:         "admin flag defaults to false",
			form:         url.Values{"username": {"ana"}, "password": {"pw"}},
			wantForm:     models.NewUserForm{Username: "ana", Password: "pw"},
			wantStatus:   http.StatusFound,
			wantLocation: "/admin_roles",
		},
		{
			name:         "checkbox admin with email",
			form:         url.Values{"username": {"jefe"}, "password": {"pw"}, "isAdmin": {"on"}, "email": {"jefe@example.com"}},
			wantForm:     models.NewUserForm{Username: "jefe", Password: "pw", IsAdmin: true, Email: "jefe@example.com"},
			wantStatus:   http.StatusFound,
			wantLocation: "/admin_roles",
		},
		{
			name:       "password required",
			form:       url.Values{"username": {"ana"}},
			createErr:  service.ErrPasswordRequired,
			wantForm:   models.NewUserForm{Username: "ana"},
			wantStatus: http.StatusBadRequest,
			wantBody:   "Debe proporcionar una contraseña",
		},
		{
			name:       "duplicate username",
			form:       url.Values{"username": {"admin"}, "password": {"pw"}},
			createErr:  fmt.Errorf("user creation ended with error: %w", store.ErrUsernameAlreadyExists),
			wantForm:   models.NewUserForm{Username: "admin", Password: "pw"},
			wantStatus: http.StatusConflict,
		},
		{
			name:       "missing username",
			form:       url.Values{"password": {"pw"}},
			createErr:  fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrUsernameRequired),
			wantForm:   models.NewUserForm{Password: "pw"},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			cookie := env.asAdmin(t)

			var got models.NewUserForm
			env.users.createFn = func(_ context.Context, form models.NewUserForm) (models.User, error) {
				got = form
				return models.User{UserID: 5}, tt.createErr
			}

			rec := env.do(t, http.MethodPost, "/users/new", tt.form, cookie)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantForm, got)
			if tt.wantLocation != "" {
				assert.Equal(t, tt.wantLocation, rec.Header().Get("Location"))
			}
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}

func TestCreateUser_RequiresAdmin(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.loginAs(t, models.User{UserID: 2})

	called := false
	env.users.createFn = func(context.Context, models.NewUserForm) (models.User, error) {
		called = true
		return models.User{}, nil
	}

	rec := env.do(t, http.MethodPost, "/users/new", url.Values{"username": {"x"}, "password": {"y"}}, cookie)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, called)
}

func TestEditUserPage(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.asAdmin(t)
	env.users.getFn = func(_ context.Context, id int64) (models.User, error) {
		if id == 4 {
			return models.User{UserID: 4, Username: "ana"}, nil
		}
		return models.User{}, store.ErrUserNotFound
	}

	rec := env.do(t, http.MethodGet, "/edit_user/4", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `value="ana"`)

	rec = env.do(t, http.MethodGet, "/edit_user/5", nil, cookie)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Usuario no encontrado", rec.Body.String())
}

func TestUpdateUser(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.asAdmin(t)

	var gotID int64
	var got models.EditUserForm
	env.users.updateFn = func(_ context.Context, id int64, form models.EditUserForm) error {
		gotID, got = id, form
		return nil
	}

	rec := env.do(t, http.MethodPost, "/edit_user/4", url.Values{"username": {" ana "}, "isAdmin": {"true"}}, cookie)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/users", rec.Header().Get("Location"))
	assert.Equal(t, int64(4), gotID)
	assert.Equal(t, models.EditUserForm{Username: "ana", IsAdmin: true}, got)
}

func TestUpdateUser_UnknownIDIs404(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.asAdmin(t)
	env.users.updateFn = func(context.Context, int64, models.EditUserForm) error {
		return fmt.Errorf("user update ended with error: %w", store.ErrUserNotFound)
	}

	rec := env.do(t, http.MethodPost, "/edit_user/44", url.Values{"username": {"x"}}, cookie)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
