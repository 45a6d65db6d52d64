package handler

import (
	"net/http"
	"slices"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/pkordes/travel-tracker/internal/domain"
	"github.com/pkordes/travel-tracker/internal/ledger"
	"github.com/pkordes/travel-tracker/internal/service"
)

// CountryResponse is a country with its visit-derived fields.
type CountryResponse struct {
	Code            string           `json:"code"`
	Name            string           `json:"name"`
	Continent       domain.Continent `json:"continent"`
	IsTerritory     bool             `json:"isTerritory"`
	Visited         bool             `json:"visited"`
	Visits          []domain.Visit   `json:"visits"`
	FirstVisit      *string          `json:"firstVisit,omitempty"`
	MostRecentVisit *string          `json:"mostRecentVisit,omitempty"`
	TotalDays       int              `json:"totalDays"`
	Photos          []string         `json:"photos"`
}

// Pagination describes the page returned by a list endpoint.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// CountryListResponse is the body of GET /countries.
type CountryListResponse struct {
	Data       []CountryResponse `json:"data"`
	Pagination Pagination        `json:"pagination"`
}

// ListCountries handles GET /countries.
// Query parameters: visited (bool), continent, territories (bool, default
// true), page and limit.
func (s *Server) ListCountries(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var f service.CountryFilter
	if v := q.Get("visited"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			badRequest(w, "visited must be true or false")
			return
		}
		f.Visited = &b
	}
	if v := q.Get("continent"); v != "" {
		c := domain.Continent(v)
		if !slices.Contains(domain.Continents, c) {
			badRequest(w, "unknown continent "+strconv.Quote(v))
			return
		}
		f.Continent = c
	}
	include, ok := boolParam(w, r, "territories", true)
	if !ok {
		return
	}
	f.ExcludeTerritories = !include

	page, ok := intParam(w, r, "page")
	if !ok {
		return
	}
	limit, ok := intParam(w, r, "limit")
	if !ok {
		return
	}
	params := domain.NewPaginationParams(page, limit)

	countries := s.travel.Countries(f)
	start, end := params.Window(len(countries))

	data := make([]CountryResponse, 0, end-start)
	for _, c := range countries[start:end] {
		data = append(data, countryToResponse(c))
	}
	writeJSON(w, http.StatusOK, CountryListResponse{
		Data: data,
		Pagination: Pagination{
			Page:  params.Page,
			Limit: params.Limit,
			Total: len(countries),
		},
	})
}

// GetCountry handles GET /countries/{code}.
func (s *Server) GetCountry(w http.ResponseWriter, r *http.Request) {
	c, err := s.travel.Country(codeParam(r))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, countryToResponse(c))
}

// --- mapping helpers --------------------------------------------------------

func countryToResponse(c domain.Country) CountryResponse {
	resp := CountryResponse{
		Code:        c.Code,
		Name:        c.Name,
		Continent:   c.Continent,
		IsTerritory: c.IsTerritory,
		Visited:     ledger.IsVisited(c),
		Visits:      c.Visits,
		TotalDays:   ledger.TotalDaysInCountry(c),
		Photos:      ledger.Photos(c),
	}
	if resp.Visits == nil {
		resp.Visits = []domain.Visit{}
	}
	if resp.Photos == nil {
		resp.Photos = []string{}
	}
	if d, ok := ledger.FirstVisitDate(c); ok {
		resp.FirstVisit = &d
	}
	if d, ok := ledger.MostRecentVisitDate(c); ok {
		resp.MostRecentVisit = &d
	}
	return resp
}

// codeParam returns the {code} path parameter, upper-cased so "fra" and
// "FRA" address the same country.
func codeParam(r *http.Request) string {
	return strings.ToUpper(chi.URLParam(r, "code"))
}

// boolParam parses an optional boolean query parameter, writing a 400 and
// returning false when it is malformed.
func boolParam(w http.ResponseWriter, r *http.Request, name string, fallback bool) (bool, bool) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return fallback, true
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		badRequest(w, name+" must be true or false")
		return false, false
	}
	return b, true
}

// intParam parses an optional integer query parameter. A nil result means absent.
func intParam(w http.ResponseWriter, r *http.Request, name string) (*int, bool) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return nil, true
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		badRequest(w, name+" must be an integer")
		return nil, false
	}
	return &n, true
}
