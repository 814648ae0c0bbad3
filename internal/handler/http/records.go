package http

import (
	"net/http"

	"github.com/MKhiriev/report-catalog/internal/logger"
	"github.com/MKhiriev/report-catalog/internal/utils"
	"github.com/MKhiriev/report-catalog/internal/views"
)

// listRecords renders the records visible to the session.
func (h *Handler) listRecords(w http.ResponseWriter, r *http.Request) {
	s := currentSession(r)

	records, err := h.services.RecordService.ListVisible(r.Context(), s)
	if err != nil {
		writeError(w, r, err, "error listing records")
		return
	}

	page := newPage(s, "Reportes")
	page.Records = records
	h.render(w, r, views.PageIndex, page)
}

func (h *Handler) newRecordPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, views.PageNewRecord, newPage(currentSession(r), "Nuevo registro"))
}

func (h *Handler) createRecord(w http.ResponseWriter, r *http.Request) {
	record, err := h.services.RecordService.Create(r.Context(), recordForm(r))
	if err != nil {
		writeError(w, r, err, "error creating record")
		return
	}

	logger.FromRequest(r).Info().Int64("record_id", record.ID).Str("categoria", record.Categoria).Msg("record created")
	utils.Redirect(w, r, "/")
}

func (h *Handler) editRecordPage(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err, "bad record id")
		return
	}

	record, err := h.services.RecordService.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err, "error loading record")
		return
	}

	page := newPage(currentSession(r), "Editar registro")
	page.Record = record
	h.render(w, r, views.PageEditRecord, page)
}

func (h *Handler) updateRecord(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err, "bad record id")
		return
	}

	if err = h.services.RecordService.Update(r.Context(), id, recordForm(r)); err != nil {
		writeError(w, r, err, "error updating record")
		return
	}

	utils.Redirect(w, r, "/")
}

func (h *Handler) deleteRecord(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err, "bad record id")
		return
	}

	if err = h.services.RecordService.Delete(r.Context(), id); err != nil {
		writeError(w, r, err, "error deleting record")
		return
	}

	logger.FromRequest(r).Info().Int64("record_id", id).Msg("record deleted")
	utils.Redirect(w, r, "/")
}
