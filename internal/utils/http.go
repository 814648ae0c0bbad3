package utils

import (
	"net/http"
)

// WriteText writes body as a plain-text response with the given status code.
//
// Example usage:
//
//	utils.WriteText(w, "Acceso denegado", http.StatusForbidden)
func WriteText(w http.ResponseWriter, body string, statusCode int) (int, error) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(statusCode)

	return w.Write([]byte(body))
}

// Redirect sends a 302 Found to location.
func Redirect(w http.ResponseWriter, r *http.Request, location string) {
	http.Redirect(w, r, location, http.StatusFound)
}
