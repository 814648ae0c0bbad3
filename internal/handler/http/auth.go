package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/report-catalog/internal/logger"
	"github.com/MKhiriev/report-catalog/internal/metrics"
	"github.com/MKhiriev/report-catalog/internal/service"
	"github.com/MKhiriev/report-catalog/internal/utils"
	"github.com/MKhiriev/report-catalog/internal/views"
	"github.com/MKhiriev/report-catalog/models"
)

func (h *Handler) loginPage(w http.ResponseWriter, r *http.Request) {
	usernames, err := h.services.AuthService.LoginOptions(r.Context())
	if err != nil {
		writeError(w, r, err, "error listing usernames")
		return
	}

	page := newPage(currentSession(r), "Ingresar")
	page.Usernames = usernames
	h.render(w, r, views.PageLogin, page)
}

// login checks the credentials and, on success, replaces the current session
// with an authenticated one. Wrong credentials send the browser back to the
// login page without detail.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	creds := models.Credentials{
		Username: strings.TrimSpace(r.PostFormValue("username")),
		Password: r.PostFormValue("password"),
	}

	user, err := h.services.AuthService.Login(ctx, creds)
	if errors.Is(err, service.ErrWrongCredentials) {
		metrics.LoginAttemptsTotal.WithLabelValues(metrics.LoginFailure).Inc()
		utils.Redirect(w, r, "/login")
		return
	}
	if err != nil {
		metrics.LoginAttemptsTotal.WithLabelValues(metrics.LoginError).Inc()
		writeError(w, r, err, "unexpected error occurred during user login")
		return
	}

	if _, err = h.sessions.Start(ctx, w, currentSession(r), user); err != nil {
		metrics.LoginAttemptsTotal.WithLabelValues(metrics.LoginError).Inc()
		log.Err(err).Int64("user_id", user.UserID).Msg("error starting session")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	metrics.LoginAttemptsTotal.WithLabelValues(metrics.LoginSuccess).Inc()
	log.Info().Int64("user_id", user.UserID).Bool("is_admin", user.IsAdmin).Msg("user logged in")
	utils.Redirect(w, r, "/")
}

// logout ends the session. A store failure is logged; the cookie is expired
// regardless.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Destroy(r.Context(), w, currentSession(r)); err != nil {
		logger.FromRequest(r).Err(err).Msg("error destroying session")
	}

	utils.Redirect(w, r, "/")
}
