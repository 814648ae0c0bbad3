package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseWriter(t *testing.T) {
	tests := []struct {
		name       string
		write      func(w *responseWriter)
		wantStatus int
		wantSize   int
		wantBody   string
	}{
		{
			name:       "nothing written",
			write:      func(*responseWriter) {},
			wantStatus: http.StatusOK,
		},
		{
			name:       "body only sends implicit 200",
			write:      func(w *responseWriter) { _, _ = w.Write([]byte("Acceso denegado")) },
			wantStatus: http.StatusOK,
			wantSize:   len("Acceso denegado"),
			wantBody:   "Acceso denegado",
		},
		{
			name: "redirect without body",
			write: func(w *responseWriter) {
				w.Header().Set("Location", "/login")
				w.WriteHeader(http.StatusFound)
			},
			wantStatus: http.StatusFound,
		},
		{
			name: "second status is ignored",
			write: func(w *responseWriter) {
				w.WriteHeader(http.StatusForbidden)
				w.WriteHeader(http.StatusInternalServerError)
			},
			wantStatus: http.StatusForbidden,
		},
		{
			name: "size accumulates over writes",
			write: func(w *responseWriter) {
				w.WriteHeader(http.StatusNotFound)
				_, _ = w.Write([]byte("Registro "))
				_, _ = w.Write([]byte("no encontrado"))
			},
			wantStatus: http.StatusNotFound,
			wantSize:   len("Registro no encontrado"),
			wantBody:   "Registro no encontrado",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			w := &responseWriter{ResponseWriter: rec}

			tt.write(w)

			assert.Equal(t, tt.wantStatus, w.statusCode())
			assert.Equal(t, tt.wantSize, w.size)
			assert.Equal(t, tt.wantBody, rec.Body.String())
			if w.wroteHeader {
				assert.Equal(t, tt.wantStatus, rec.Code)
			}
		})
	}
}

func TestResponseWriter_HeadersReachUnderlyingWriter(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)

	require.True(t, w.wroteHeader)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
}
