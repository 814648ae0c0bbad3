package http

import (
	"net/http"

	"github.com/MKhiriev/report-catalog/internal/logger"
	"github.com/MKhiriev/report-catalog/internal/utils"
	"github.com/MKhiriev/report-catalog/models"
)

// withSession resolves the session cookie and stores the session, anonymous
// or not, in the request context. A failing session store yields 500.
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s, err := h.sessions.Load(r)
		if err != nil {
			logger.FromRequest(r).Err(err).Str("func", "*Handler.withSession").Msg("error loading session")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithSession(r.Context(), s)))
	})
}

// currentSession returns the session attached by withSession, or the
// anonymous session when there is none.
func currentSession(r *http.Request) models.Session {
	s, _ := utils.GetSessionFromContext(r.Context())
	return s
}
