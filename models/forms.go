package models

// Credentials carries the login form.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RecordForm carries the fields of the "new" and "edit" record forms.
// The fields are intentionally unvalidated.
type RecordForm struct {
	Categoria   string `json:"categoria"`
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
	Link        string `json:"link"`
	Vigencia    string `json:"vigencia"`
}

// ToRecord converts the form into a record with the given id.
func (f RecordForm) ToRecord(id int64) Record {
	return Record{
		ID:          id,
		Categoria:   f.Categoria,
		Nombre:      f.Nombre,
		Descripcion: f.Descripcion,
		Link:        f.Link,
		Vigencia:    f.Vigencia,
	}
}

// NewUserForm carries the admin "new user" form.
type NewUserForm struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	IsAdmin  bool   `json:"is_admin"`
	Email    string `json:"email"`
}

// EditUserForm carries the admin "edit user" form. An empty Password keeps
// the stored one.
type EditUserForm struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password"`
	IsAdmin  bool   `json:"is_admin"`
}

// RolesUpdate overwrites the roles of a single account.
type RolesUpdate struct {
	UserID int64    `json:"user_id" validate:"gt=0"`
	Roles  []string `json:"roles"`
}

// UserUpdate is the store-level account update. A nil Password leaves the
// stored hash untouched.
type UserUpdate struct {
	UserID   int64
	Username string
	Password *string
	IsAdmin  bool
}
