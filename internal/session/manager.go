package session

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/report-catalog/internal/config"
	"github.com/MKhiriev/report-catalog/internal/logger"
	"github.com/MKhiriev/report-catalog/internal/utils"
	"github.com/MKhiriev/report-catalog/models"
)

// CookieName is the name of the session cookie.
const CookieName = "catalog_session"

// Manager binds sessions in a [Store] to browsers. The cookie holds a signed
// token whose subject is the session id; the session itself never leaves the
// server.
type Manager struct {
	store   Store
	ids     *utils.UUIDGenerator
	signKey string
	issuer  string
	ttl     time.Duration
	secure  bool
	now     func() time.Time
}

// NewManager builds a Manager over store using the session settings in cfg.
func NewManager(store Store, cfg config.App) *Manager {
	return &Manager{
		store:   store,
		ids:     utils.NewUUIDGenerator(),
		signKey: cfg.SessionSignKey,
		issuer:  cfg.SessionIssuer,
		ttl:     cfg.SessionTTL,
		secure:  cfg.SecureCookie,
		now:     time.Now,
	}
}

// Load returns the session the request's cookie points at. A missing,
// forged or expired cookie and an unknown session all yield the anonymous
// zero session without error. Only store failures are returned.
func (m *Manager) Load(r *http.Request) (models.Session, error) {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return models.Session{}, nil
	}

	sessionID, err := utils.ParseSessionToken(cookie.Value, m.signKey, m.issuer)
	if err != nil {
		logger.FromRequest(r).Debug().Err(err).Msg("ignoring invalid session cookie")
		return models.Session{}, nil
	}

	session, err := m.store.Get(r.Context(), sessionID)
	if errors.Is(err, ErrSessionNotFound) {
		return models.Session{}, nil
	}
	if err != nil {
		return models.Session{}, fmt.Errorf("load session: %w", err)
	}

	return session, nil
}

// Start discards previous (if any) and opens a fresh authenticated session for
// user under a new id, then points the browser at it.
func (m *Manager) Start(ctx context.Context, w http.ResponseWriter, previous models.Session, user models.User) (models.Session, error) {
	if previous.ID != "" {
		if err := m.store.Delete(ctx, previous.ID); err != nil {
			return models.Session{}, fmt.Errorf("rotate session: %w", err)
		}
	}

	session := models.Session{
		ID:        m.ids.GenerateSecret(),
		UserID:    user.UserID,
		IsAdmin:   user.IsAdmin,
		Roles:     user.RoleList(),
		ExpiresAt: m.now().Add(m.ttl),
	}

	token, err := utils.GenerateSessionToken(m.issuer, session.ID, session.ExpiresAt, m.signKey)
	if err != nil {
		return models.Session{}, err
	}

	if err = m.store.Save(ctx, session); err != nil {
		return models.Session{}, fmt.Errorf("save session: %w", err)
	}

	http.SetCookie(w, m.cookie(token, session.ExpiresAt))
	return session, nil
}

// Save persists changes to an existing session, such as a flash message.
// Anonymous sessions have no server-side state and are ignored.
func (m *Manager) Save(ctx context.Context, session models.Session) error {
	if session.ID == "" {
		return nil
	}
	return m.store.Save(ctx, session)
}

// Destroy removes session from the store and expires the cookie.
func (m *Manager) Destroy(ctx context.Context, w http.ResponseWriter, session models.Session) error {
	http.SetCookie(w, m.cookie("", time.Unix(0, 0)))

	if session.ID == "" {
		return nil
	}
	if err := m.store.Delete(ctx, session.ID); err != nil {
		return fmt.Errorf("destroy session: %w", err)
	}

	return nil
}

func (m *Manager) cookie(value string, expires time.Time) *http.Cookie {
	c := &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	}
	if value == "" {
		c.MaxAge = -1
	}
	return c
}
