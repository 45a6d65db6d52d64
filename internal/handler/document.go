package handler

import (
	"io"
	"net/http"

	"github.com/pkordes/travel-tracker/internal/repo"
)

// exportFilename is the download name suggested for GET /document.
const exportFilename = "travel-data.json"

// ExportDocument handles GET /document: the current document in its persisted
// form, pretty-printed.
func (s *Server) ExportDocument(w http.ResponseWriter, r *http.Request) {
	b, err := repo.Encode(s.travel.Document())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="`+exportFilename+`"`)
	_, _ = w.Write(b)
}

// ImportDocument handles PUT /document. The body may be any schema revision;
// the response reports the migration outcome and any dropped codes.
func (s *Server) ImportDocument(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		s.writeBodyError(w, r, err)
		return
	}
	if len(raw) == 0 {
		writeErrorBody(w, http.StatusUnprocessableEntity, "validation_error", "request body is required")
		return
	}

	report, err := s.travel.Import(r.Context(), raw)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// SaveDocument handles POST /document/save, flushing to storage immediately.
func (s *Server) SaveDocument(w http.ResponseWriter, r *http.Request) {
	if err := s.travel.Save(r.Context()); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
