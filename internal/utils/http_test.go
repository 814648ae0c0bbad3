package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteText(t *testing.T) {
	rec := httptest.NewRecorder()

	n, err := WriteText(rec, "Acceso denegado", http.StatusForbidden)
	require.NoError(t, err)

	assert.Equal(t, len("Acceso denegado"), n)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Acceso denegado", rec.Body.String())
	assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
}

func TestRedirect(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", nil)

	Redirect(rec, req, "/")

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
}

func TestUUIDGenerator(t *testing.T) {
	g := NewUUIDGenerator()

	assert.Len(t, g.Generate(), 36)
	assert.NotEqual(t, g.GenerateSecret(), g.GenerateSecret())
}
