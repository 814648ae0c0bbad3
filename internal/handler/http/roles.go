package http

import (
	"net/http"

	"github.com/MKhiriev/report-catalog/internal/logger"
	"github.com/MKhiriev/report-catalog/internal/utils"
	"github.com/MKhiriev/report-catalog/internal/views"
)

const rolesUpdatedMessage = "Roles actualizados correctamente"

// rolesPage shows every category present in the catalog next to every
// account. The session flash is shown once and then cleared.
func (h *Handler) rolesPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	s := currentSession(r)

	categories, err := h.services.RecordService.Categories(ctx)
	if err != nil {
		writeError(w, r, err, "error listing categories")
		return
	}

	users, err := h.services.UserService.List(ctx)
	if err != nil {
		writeError(w, r, err, "error listing users")
		return
	}

	page := newPage(s, "Roles")
	page.Categories = categories
	page.Users = users
	page.Flash = s.Flash

	if s.Flash != "" {
		s.Flash = ""
		if err = h.sessions.Save(ctx, s); err != nil {
			logger.FromRequest(r).Err(err).Msg("error clearing flash message")
		}
	}

	h.render(w, r, views.PageAdminRoles, page)
}

func (h *Handler) updateRoles(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	update, err := rolesUpdate(r)
	if err != nil {
		writeError(w, r, err, "bad roles form")
		return
	}

	if err = h.services.UserService.AssignRoles(ctx, update); err != nil {
		writeError(w, r, err, "error assigning roles")
		return
	}

	s := currentSession(r)
	s.Flash = rolesUpdatedMessage
	if err = h.sessions.Save(ctx, s); err != nil {
		logger.FromRequest(r).Err(err).Msg("error saving flash message")
	}

	utils.Redirect(w, r, "/admin_roles")
}
