package http

import (
	"net/http"

	"github.com/MKhiriev/report-catalog/internal/logger"
	"github.com/MKhiriev/report-catalog/internal/views"
	"github.com/MKhiriev/report-catalog/models"
)

// newPage fills the layout fields of a page from the session.
func newPage(s models.Session, title string) views.Page {
	return views.Page{
		Title:         title,
		Authenticated: s.IsAuthenticated(),
		IsAdmin:       s.IsAdmin,
	}
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, name string, page views.Page) {
	if err := h.views.Render(w, http.StatusOK, name, page); err != nil {
		logger.FromRequest(r).Err(err).Str("page", name).Msg("error rendering page")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}
