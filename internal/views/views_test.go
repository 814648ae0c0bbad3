package views

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/report-catalog/models"
)

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := NewRenderer()
	require.NoError(t, err)
	return r
}

func render(t *testing.T, name string, page Page) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	require.NoError(t, newTestRenderer(t).Render(rec, http.StatusOK, name, page))
	return rec
}

func TestNewRenderer_ParsesEveryPage(t *testing.T) {
	r := newTestRenderer(t)

	for _, name := range []string{
		PageIndex, PageLogin, PageNewRecord, PageEditRecord,
		PageUsers, PageNewUser, PageEditUser, PageAdminRoles,
	} {
		assert.Contains(t, r.pages, name)
	}
}

func TestRender_UnknownPage(t *testing.T) {
	rec := httptest.NewRecorder()

	err := newTestRenderer(t).Render(rec, http.StatusOK, "missing", Page{})

	assert.ErrorIs(t, err, ErrUnknownPage)
	assert.Empty(t, rec.Body.String())
}

func TestRender_IndexListsRecords(t *testing.T) {
	rec := render(t, PageIndex, Page{
		Authenticated: true,
		Records: []models.Record{
			{ID: 1, Categoria: "Ventas", Nombre: "Turnero"},
			{ID: 2, Categoria: "Ventas", Nombre: "Convenios"},
		},
	})

	body := rec.Body.String()
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, body, "Turnero")
	assert.Contains(t, body, "Convenios")
	assert.NotContains(t, body, "/delete/1")
	assert.Contains(t, body, `href="/logout"`)
}

func TestRender_IndexAdminControls(t *testing.T) {
	rec := render(t, PageIndex, Page{
		Authenticated: true,
		IsAdmin:       true,
		Records:       []models.Record{{ID: 3, Categoria: "Stock"}},
	})

	body := rec.Body.String()
	assert.Contains(t, body, `action="/delete/3"`)
	assert.Contains(t, body, `href="/edit/3"`)
	assert.Contains(t, body, `href="/users"`)
}

func TestRender_EscapesRecordFields(t *testing.T) {
	rec := render(t, PageIndex, Page{
		Records: []models.Record{{ID: 1, Nombre: "<script>alert(1)</script>"}},
	})

	assert.NotContains(t, rec.Body.String(), "<script>alert(1)</script>")
	assert.Contains(t, rec.Body.String(), "&lt;script&gt;")
}

func TestRender_EditRecordPrefillsFields(t *testing.T) {
	rec := render(t, PageEditRecord, Page{
		IsAdmin: true,
		Record:  models.Record{ID: 9, Categoria: "Compras", Nombre: "Comparaciones", Vigencia: "Vigente"},
	})

	body := rec.Body.String()
	assert.Contains(t, body, `action="/edit/9"`)
	assert.Contains(t, body, `value="Compras"`)
	assert.Contains(t, body, `value="Vigente"`)
}

func TestRender_LoginListsUsernames(t *testing.T) {
	rec := render(t, PageLogin, Page{Usernames: []string{"admin", "ana"}})

	body := rec.Body.String()
	assert.Contains(t, body, `<option value="admin">admin</option>`)
	assert.Contains(t, body, `<option value="ana">ana</option>`)
}

func TestRender_AdminRolesChecksAssignedCategories(t *testing.T) {
	rec := render(t, PageAdminRoles, Page{
		IsAdmin:    true,
		Flash:      "Roles actualizados correctamente",
		Categories: []string{"Stock", "Ventas"},
		Users:      []models.User{{UserID: 2, Username: "ana", Roles: "Ventas"}},
	})

	body := rec.Body.String()
	assert.Contains(t, body, "Roles actualizados correctamente")
	assert.Contains(t, body, `value="Ventas" checked`)
	assert.NotContains(t, body, `value="Stock" checked`)
	assert.Contains(t, body, `name="userId" value="2"`)
}

func TestRender_EditUserKeepsAdminFlag(t *testing.T) {
	rec := render(t, PageEditUser, Page{User: models.User{UserID: 4, Username: "ana", IsAdmin: true}})

	body := rec.Body.String()
	assert.Contains(t, body, `action="/edit_user/4"`)
	assert.Contains(t, body, "checked")
}

func TestRender_WritesStatus(t *testing.T) {
	rec := httptest.NewRecorder()

	require.NoError(t, newTestRenderer(t).Render(rec, http.StatusNotFound, PageNewUser, Page{}))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
