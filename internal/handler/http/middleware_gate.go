package http

import (
	"net/http"

	"github.com/MKhiriev/report-catalog/internal/logger"
	"github.com/MKhiriev/report-catalog/internal/metrics"
	"github.com/MKhiriev/report-catalog/internal/utils"
)

// accessDeniedMessage is the plain-text body of every 403 from requireAdmin.
const accessDeniedMessage = "Acceso denegado"

// requireLogin lets authenticated sessions through and sends everyone else
// to the login page.
func requireLogin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !currentSession(r).IsAuthenticated() {
			metrics.AccessDeniedTotal.WithLabelValues(metrics.GateLogin).Inc()
			utils.Redirect(w, r, "/login")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// requireAdmin checks the admin flag of the session's account in the store on
// every request, so a revoked flag takes effect immediately. Anonymous
// sessions are sent to the login page, non-admins get 403.
func (h *Handler) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		s := currentSession(r)

		if !s.IsAuthenticated() {
			metrics.AccessDeniedTotal.WithLabelValues(metrics.GateLogin).Inc()
			utils.Redirect(w, r, "/login")
			return
		}

		isAdmin, err := h.services.AuthService.IsAdmin(r.Context(), s.UserID)
		if err != nil {
			log.Err(err).Int64("user_id", s.UserID).Msg("error checking admin flag")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		if !isAdmin {
			log.Info().Int64("user_id", s.UserID).Str("uri", r.RequestURI).Msg("access denied")
			metrics.AccessDeniedTotal.WithLabelValues(metrics.GateAdmin).Inc()
			utils.WriteText(w, accessDeniedMessage, http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}
