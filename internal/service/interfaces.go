package service

import (
	"context"

	"github.com/MKhiriev/report-catalog/models"
)

type AuthService interface {
	// Login checks creds and returns the matching account.
	Login(ctx context.Context, creds models.Credentials) (models.User, error)
	// IsAdmin reads the admin flag of the account from the store. An unknown
	// account is not an admin.
	IsAdmin(ctx context.Context, userID int64) (bool, error)
	// LoginOptions returns the usernames offered on the login page.
	LoginOptions(ctx context.Context) ([]string, error)
}

type RecordService interface {
	// ListVisible returns the records the session may see.
	ListVisible(ctx context.Context, session models.Session) ([]models.Record, error)
	Get(ctx context.Context, id int64) (models.Record, error)
	Create(ctx context.Context, form models.RecordForm) (models.Record, error)
	Update(ctx context.Context, id int64, form models.RecordForm) error
	Delete(ctx context.Context, id int64) error
	Categories(ctx context.Context) ([]string, error)
}

type UserService interface {
	List(ctx context.Context) ([]models.User, error)
	Get(ctx context.Context, userID int64) (models.User, error)
	Create(ctx context.Context, form models.NewUserForm) (models.User, error)
	Update(ctx context.Context, userID int64, form models.EditUserForm) error
	AssignRoles(ctx context.Context, update models.RolesUpdate) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// UserServiceWrapper defines middleware composition for UserService.
// Implementations wrap an existing UserService to add behavior such as
// validation.
type UserServiceWrapper interface {
	Wrap(UserService) UserService
}
