package http

import (
	"net/http"

	"github.com/MKhiriev/report-catalog/internal/utils"
	"github.com/MKhiriev/report-catalog/internal/views"
)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.UserService.List(r.Context())
	if err != nil {
		writeError(w, r, err, "error listing users")
		return
	}

	page := newPage(currentSession(r), "Usuarios")
	page.Users = users
	h.render(w, r, views.PageUsers, page)
}

func (h *Handler) newUserPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, views.PageNewUser, newPage(currentSession(r), "Nuevo usuario"))
}

// createUser stores a new account and continues to role assignment.
func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	if _, err := h.services.UserService.Create(r.Context(), newUserForm(r)); err != nil {
		writeError(w, r, err, "error creating user")
		return
	}

	utils.Redirect(w, r, "/admin_roles")
}

func (h *Handler) editUserPage(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err, "bad user id")
		return
	}

	user, err := h.services.UserService.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err, "error loading user")
		return
	}

	page := newPage(currentSession(r), "Editar usuario")
	page.User = user
	h.render(w, r, views.PageEditUser, page)
}

// updateUser keeps the stored password when the form leaves it empty.
func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err, "bad user id")
		return
	}

	if err = h.services.UserService.Update(r.Context(), id, editUserForm(r)); err != nil {
		writeError(w, r, err, "error updating user")
		return
	}

	utils.Redirect(w, r, "/users")
}
