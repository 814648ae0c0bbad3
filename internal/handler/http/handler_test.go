package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/report-catalog/internal/config"
	"github.com/MKhiriev/report-catalog/internal/logger"
	"github.com/MKhiriev/report-catalog/internal/service"
	"github.com/MKhiriev/report-catalog/internal/session"
	"github.com/MKhiriev/report-catalog/internal/views"
	"github.com/MKhiriev/report-catalog/models"
)

// ─────────────────────────────────────────────
// Test environment
// ─────────────────────────────────────────────

// testEnv wires a Handler to func-field service mocks and a real session
// manager over the in-memory store.
type testEnv struct {
	h        *Handler
	router   http.Handler
	sessions *session.Manager
	store    *session.MemoryStore

	auth    *mockAuthService
	records *mockRecordService
	users   *mockUserService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		store:   session.NewMemoryStore(),
		auth:    &mockAuthService{},
		records: &mockRecordService{},
		users:   &mockUserService{},
	}
	return env.build(t, &service.Services{
		AuthService:    env.auth,
		RecordService:  env.records,
		UserService:    env.users,
		AppInfoService: &mockAppInfoService{version: "test-version"},
	})
}

func (e *testEnv) build(t *testing.T, services *service.Services) *testEnv {
	t.Helper()

	renderer, err := views.NewRenderer()
	require.NoError(t, err)

	e.sessions = newTestManager(e.store)
	e.h = NewHandler(services, e.sessions, renderer, config.Server{RequestTimeout: 5 * time.Second}, logger.Nop())
	e.router = e.h.Init()
	return e
}

// newTestManager builds a session manager over store. Managers built here
// accept each other's cookies.
func newTestManager(store session.Store) *session.Manager {
	return session.NewManager(store, config.App{
		SessionSignKey: "test-sign-key",
		SessionIssuer:  "test",
		SessionTTL:     time.Hour,
	})
}

// loginAs opens a session for user directly through the manager and returns
// the cookie the browser would hold.
func (e *testEnv) loginAs(t *testing.T, user models.User) *http.Cookie {
	t.Helper()

	rec := httptest.NewRecorder()
	_, err := e.sessions.Start(context.Background(), rec, models.Session{}, user)
	require.NoError(t, err)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	return cookies[0]
}

// asAdmin logs in an admin account and makes the admin gate accept it.
func (e *testEnv) asAdmin(t *testing.T) *http.Cookie {
	t.Helper()
	e.auth.isAdminFn = func(_ context.Context, userID int64) (bool, error) {
		return userID == 1, nil
	}
	return e.loginAs(t, models.User{UserID: 1, Username: "admin", IsAdmin: true})
}

func (e *testEnv) do(t *testing.T, method, path string, form url.Values, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_StoresDependencies(t *testing.T) {
	svc := &service.Services{}
	manager := session.NewManager(session.NewMemoryStore(), config.App{})
	log := logger.Nop()

	h := NewHandler(svc, manager, nil, config.Server{RequestTimeout: time.Minute}, log)

	require.NotNil(t, h)
	assert.Equal(t, svc, h.services)
	assert.Equal(t, manager, h.sessions)
	assert.Equal(t, time.Minute, h.requestTimeout)
	assert.Equal(t, log, h.logger)
}

// ─────────────────────────────────────────────
// Init: route registration
// ─────────────────────────────────────────────

// routeCase describes a single expected route.
type routeCase struct {
	method string
	path   string
}

// expectedRoutes lists every route that Init() must register.
var expectedRoutes = []routeCase{
	{http.MethodGet, "/health"},
	{http.MethodGet, "/version"},
	{http.MethodGet, "/metrics"},

	{http.MethodGet, "/login"},
	{http.MethodPost, "/login"},
	{http.MethodGet, "/logout"},
	{http.MethodGet, "/"},

	{http.MethodGet, "/new"},
	{http.MethodPost, "/new"},
	{http.MethodGet, "/edit/{id}"},
	{http.MethodPost, "/edit/{id}"},
	{http.MethodPost, "/delete/{id}"},

	{http.MethodGet, "/users"},
	{http.MethodGet, "/users/new"},
	{http.MethodPost, "/users/new"},
	{http.MethodGet, "/edit_user/{id}"},
	{http.MethodPost, "/edit_user/{id}"},

	{http.MethodGet, "/admin_roles"},
	{http.MethodPost, "/admin_roles/update"},
}

func TestInit_RegistersRoutes(t *testing.T) {
	router := newTestEnv(t).h.Init()

	registered := make(map[routeCase]bool)
	for _, route := range router.Routes() {
		for method := range route.Handlers {
			registered[routeCase{method, route.Pattern}] = true
		}
	}

	for _, want := range expectedRoutes {
		assert.True(t, registered[want] || registered[routeCase{"*", want.path}], "%s %s is not registered", want.method, want.path)
	}
}

func TestInit_UnknownRouteIsNotFound(t *testing.T) {
	rec := newTestEnv(t).do(t, http.MethodGet, "/api/unknown", nil, nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInit_WrongMethodIsNotFound(t *testing.T) {
	rec := newTestEnv(t).do(t, http.MethodDelete, "/login", nil, nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInit_SetsTraceIDHeader(t *testing.T) {
	rec := newTestEnv(t).do(t, http.MethodGet, "/health", nil, nil)

	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
}

func TestInit_RecoversFromPanic(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.loginAs(t, models.User{UserID: 2})
	env.records.listVisibleFn = func(context.Context, models.Session) ([]models.Record, error) {
		panic("boom")
	}

	rec := env.do(t, http.MethodGet, "/", nil, cookie)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
