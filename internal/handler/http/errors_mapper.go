package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/report-catalog/internal/logger"
	"github.com/MKhiriev/report-catalog/internal/service"
	"github.com/MKhiriev/report-catalog/internal/store"
	"github.com/MKhiriev/report-catalog/internal/utils"
)

// errorResponse is the plain-text answer sent for a recognised error.
type errorResponse struct {
	status  int
	message string
}

// errInvalidID is reported for a path id that is not a positive integer.
var errInvalidID = errors.New("invalid id")

// errorResponses is checked in order, so more specific sentinels come first.
var errorResponses = []struct {
	target error
	errorResponse
}{
	{errInvalidID, errorResponse{http.StatusBadRequest, "Identificador inválido"}},
	{service.ErrPasswordRequired, errorResponse{http.StatusBadRequest, "Debe proporcionar una contraseña"}},
	{service.ErrInvalidDataProvided, errorResponse{http.StatusBadRequest, "Datos inválidos"}},

	{store.ErrRecordNotFound, errorResponse{http.StatusNotFound, "Registro no encontrado"}},
	{store.ErrUserNotFound, errorResponse{http.StatusNotFound, "Usuario no encontrado"}},
	{store.ErrUsernameAlreadyExists, errorResponse{http.StatusConflict, "El nombre de usuario ya existe"}},

	{store.ErrDatabaseUnavailable, errorResponse{http.StatusServiceUnavailable, http.StatusText(http.StatusServiceUnavailable)}},
}

func responseFromError(err error) errorResponse {
	for _, e := range errorResponses {
		if errors.Is(err, e.target) {
			return e.errorResponse
		}
	}
	return errorResponse{http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)}
}

func statusFromError(err error) int {
	return responseFromError(err).status
}

// writeError logs err and answers with the status and message mapped to it.
func writeError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	resp := responseFromError(err)

	log := logger.FromRequest(r)
	if resp.status >= http.StatusInternalServerError {
		log.Err(err).Msg(msg)
	} else {
		log.Info().Err(err).Int("status", resp.status).Msg(msg)
	}

	utils.WriteText(w, resp.message, resp.status)
}
