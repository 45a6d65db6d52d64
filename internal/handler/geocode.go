package handler

import (
	"net/http"

	"github.com/pkordes/travel-tracker/internal/catalogue"
	"github.com/pkordes/travel-tracker/internal/geocode"
)

// GeocodeResponse is the body of GET /geocode.
type GeocodeResponse struct {
	Code    string          `json:"code"`
	Country CountryResponse `json:"country"`
}

// Geocode handles GET /geocode?id=&name=, mapping a map feature (numeric ID
// and display name) to the tracked country it represents.
func (s *Server) Geocode(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := geocode.Feature{ID: q.Get("id"), Name: q.Get("name")}
	if f.ID == "" && f.Name == "" {
		badRequest(w, "id or name is required")
		return
	}

	code, ok := s.resolver.Resolve(f)
	if !ok {
		writeErrorBody(w, http.StatusNotFound, "not_found", "feature does not resolve to a country")
		return
	}

	// Resolvable but untracked, e.g. Antarctica.
	if _, tracked := catalogue.Lookup(code); !tracked {
		writeErrorBody(w, http.StatusNotFound, "not_tracked", "feature resolves to "+code+", which is not tracked")
		return
	}

	c, err := s.travel.Country(code)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, GeocodeResponse{Code: code, Country: countryToResponse(c)})
}
