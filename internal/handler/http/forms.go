package http

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/report-catalog/models"
)

// pathID parses the {id} URL parameter. Only positive integers are valid.
func pathID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", errInvalidID, raw)
	}

	return id, nil
}

// formBool reads a checkbox-style boolean. A missing field is false.
func formBool(r *http.Request, key string) bool {
	switch strings.ToLower(strings.TrimSpace(r.PostFormValue(key))) {
	case "true", "on", "1", "yes":
		return true
	default:
		return false
	}
}

func recordForm(r *http.Request) models.RecordForm {
	return models.RecordForm{
		Categoria:   r.PostFormValue("categoria"),
		Nombre:      r.PostFormValue("nombre"),
		Descripcion: r.PostFormValue("descripcion"),
		Link:        r.PostFormValue("link"),
		Vigencia:    r.PostFormValue("vigencia"),
	}
}

func newUserForm(r *http.Request) models.NewUserForm {
	return models.NewUserForm{
		Username: strings.TrimSpace(r.PostFormValue("username")),
		Password: r.PostFormValue("password"),
		IsAdmin:  formBool(r, "isAdmin"),
		Email:    strings.TrimSpace(r.PostFormValue("email")),
	}
}

func editUserForm(r *http.Request) models.EditUserForm {
	return models.EditUserForm{
		Username: strings.TrimSpace(r.PostFormValue("username")),
		Password: r.PostFormValue("password"),
		IsAdmin:  formBool(r, "isAdmin"),
	}
}

// rolesUpdate reads userId and the newRoles field, which arrives once per
// checked box or not at all.
func rolesUpdate(r *http.Request) (models.RolesUpdate, error) {
	if err := r.ParseForm(); err != nil {
		return models.RolesUpdate{}, err
	}

	userID, err := strconv.ParseInt(strings.TrimSpace(r.PostForm.Get("userId")), 10, 64)
	if err != nil || userID <= 0 {
		return models.RolesUpdate{}, fmt.Errorf("%w: userId %q", errInvalidID, r.PostForm.Get("userId"))
	}

	return models.RolesUpdate{
		UserID: userID,
		Roles:  r.PostForm["newRoles"],
	}, nil
}
