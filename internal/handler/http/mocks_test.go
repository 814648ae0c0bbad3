package http

import (
	"context"

	"github.com/MKhiriev/report-catalog/models"
)

// ─────────────────────────────────────────────
// Service mocks
// ─────────────────────────────────────────────

// Each method field can be overridden per test case. A nil field makes the
// method return zero values.

type mockAuthService struct {
	loginFn        func(ctx context.Context, creds models.Credentials) (models.User, error)
	isAdminFn      func(ctx context.Context, userID int64) (bool, error)
	loginOptionsFn func(ctx context.Context) ([]string, error)
}

func (m *mockAuthService) Login(ctx context.Context, creds models.Credentials) (models.User, error) {
	if m.loginFn == nil {
		return models.User{}, nil
	}
	return m.loginFn(ctx, creds)
}

func (m *mockAuthService) IsAdmin(ctx context.Context, userID int64) (bool, error) {
	if m.isAdminFn == nil {
		return false, nil
	}
	return m.isAdminFn(ctx, userID)
}

func (m *mockAuthService) LoginOptions(ctx context.Context) ([]string, error) {
	if m.loginOptionsFn == nil {
		return nil, nil
	}
	return m.loginOptionsFn(ctx)
}

type mockRecordService struct {
	listVisibleFn func(ctx context.Context, session models.Session) ([]models.Record, error)
	getFn         func(ctx context.Context, id int64) (models.Record, error)
	createFn      func(ctx context.Context, form models.RecordForm) (models.Record, error)
	updateFn      func(ctx context.Context, id int64, form models.RecordForm) error
	deleteFn      func(ctx context.Context, id int64) error
	categoriesFn  func(ctx context.Context) ([]string, error)
}

func (m *mockRecordService) ListVisible(ctx context.Context, session models.Session) ([]models.Record, error) {
	if m.listVisibleFn == nil {
		return nil, nil
	}
	return m.listVisibleFn(ctx, session)
}

func (m *mockRecordService) Get(ctx context.Context, id int64) (models.Record, error) {
	if m.getFn == nil {
		return models.Record{}, nil
	}
	return m.getFn(ctx, id)
}

func (m *mockRecordService) Create(ctx context.Context, form models.RecordForm) (models.Record, error) {
	if m.createFn == nil {
		return form.ToRecord(1), nil
	}
	return m.createFn(ctx, form)
}

func (m *mockRecordService) Update(ctx context.Context, id int64, form models.RecordForm) error {
	if m.updateFn == nil {
		return nil
	}
	return m.updateFn(ctx, id, form)
}

func (m *mockRecordService) Delete(ctx context.Context, id int64) error {
	if m.deleteFn == nil {
		return nil
	}
	return m.deleteFn(ctx, id)
}

func (m *mockRecordService) Categories(ctx context.Context) ([]string, error) {
	if m.categoriesFn == nil {
		return nil, nil
	}
	return m.categoriesFn(ctx)
}

type mockUserService struct {
	listFn        func(ctx context.Context) ([]models.User, error)
	getFn         func(ctx context.Context, userID int64) (models.User, error)
	createFn      func(ctx context.Context, form models.NewUserForm) (models.User, error)
	updateFn      func(ctx context.Context, userID int64, form models.EditUserForm) error
	assignRolesFn func(ctx context.Context, update models.RolesUpdate) error
}

func (m *mockUserService) List(ctx context.Context) ([]models.User, error) {
	if m.listFn == nil {
		return nil, nil
	}
	return m.listFn(ctx)
}

func (m *mockUserService) Get(ctx context.Context, userID int64) (models.User, error) {
	if m.getFn == nil {
		return models.User{}, nil
	}
	return m.getFn(ctx, userID)
}

func (m *mockUserService) Create(ctx context.Context, form models.NewUserForm) (models.User, error) {
	if m.createFn == nil {
		return models.User{UserID: 1, Username: form.Username}, nil
	}
	return m.createFn(ctx, form)
}

func (m *mockUserService) Update(ctx context.Context, userID int64, form models.EditUserForm) error {
	if m.updateFn == nil {
		return nil
	}
	return m.updateFn(ctx, userID, form)
}

func (m *mockUserService) AssignRoles(ctx context.Context, update models.RolesUpdate) error {
	if m.assignRolesFn == nil {
		return nil
	}
	return m.assignRolesFn(ctx, update)
}

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}
