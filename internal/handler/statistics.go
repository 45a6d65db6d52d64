package handler

import (
	"bytes"
	"net/http"

	"github.com/pkordes/travel-tracker/internal/report"
)

// GetStatistics handles GET /statistics. Pass territories=false to leave
// territories out of every figure.
func (s *Server) GetStatistics(w http.ResponseWriter, r *http.Request) {
	include, ok := boolParam(w, r, "territories", true)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, s.travel.Statistics(include))
}

// GetReport handles GET /report: the same statistics as plain text.
func (s *Server) GetReport(w http.ResponseWriter, r *http.Request) {
	include, ok := boolParam(w, r, "territories", true)
	if !ok {
		return
	}

	// Render into a buffer so a failure can still produce a clean 500.
	var buf bytes.Buffer
	if err := report.Render(&buf, s.travel.Statistics(include), s.now()); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}
