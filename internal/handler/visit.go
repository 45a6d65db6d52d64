package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/travel-tracker/internal/domain"
)

// VisitRequest is the body of POST and PUT visit requests. Every field is
// optional: on add an absent startDate means today, on update absent fields
// keep their current value. endDate and rating may be sent as null (endDate
// also as "") to remove them.
type VisitRequest struct {
	StartDate *openapi_types.Date          `json:"startDate,omitempty"`
	EndDate   nullable[openapi_types.Date] `json:"endDate"`
	VisitType *domain.VisitType            `json:"visitType,omitempty"`
	Notes     *string                      `json:"notes,omitempty"`
	Rating    nullable[float64]            `json:"rating"`
	Photos    []string                     `json:"photos,omitempty"`
}

// nullable tells an absent field (Set false) from an explicit null or empty
// string (Set and Null true). encoding/json calls UnmarshalJSON on non-pointer
// fields even for null, and not at all when the key is missing.
type nullable[T any] struct {
	Set   bool
	Null  bool
	Value T
}

func (n *nullable[T]) UnmarshalJSON(b []byte) error {
	n.Set = true
	if s := string(b); s == "null" || s == `""` {
		n.Null = true
		return nil
	}
	return json.Unmarshal(b, &n.Value)
}

// AddVisit handles POST /countries/{code}/visits.
func (s *Server) AddVisit(w http.ResponseWriter, r *http.Request) {
	in, err := decodeVisit(r)
	if err != nil {
		s.writeBodyError(w, r, err)
		return
	}

	c, err := s.travel.AddVisit(r.Context(), codeParam(r), in)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, countryToResponse(c))
}

// UpdateVisit handles PUT /countries/{code}/visits/{index}.
func (s *Server) UpdateVisit(w http.ResponseWriter, r *http.Request) {
	index, ok := indexParam(w, r)
	if !ok {
		return
	}
	in, err := decodeVisit(r)
	if err != nil {
		s.writeBodyError(w, r, err)
		return
	}

	c, err := s.travel.UpdateVisit(r.Context(), codeParam(r), index, in)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, countryToResponse(c))
}

// DeleteVisit handles DELETE /countries/{code}/visits/{index}.
func (s *Server) DeleteVisit(w http.ResponseWriter, r *http.Request) {
	index, ok := indexParam(w, r)
	if !ok {
		return
	}

	c, err := s.travel.DeleteVisit(r.Context(), codeParam(r), index)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, countryToResponse(c))
}

// ClearVisits handles DELETE /countries/{code}/visits, which unmarks the country.
func (s *Server) ClearVisits(w http.ResponseWriter, r *http.Request) {
	c, err := s.travel.ClearVisits(r.Context(), codeParam(r))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, countryToResponse(c))
}

// --- mapping helpers --------------------------------------------------------

// decodeVisit reads an optional VisitRequest body. An empty body is an empty
// request, so POST with no body records a visit starting today.
func decodeVisit(r *http.Request) (domain.VisitInput, error) {
	var body VisitRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil && !errors.Is(err, io.EOF) {
		return domain.VisitInput{}, err
	}
	return requestToVisitInput(body), nil
}

func requestToVisitInput(body VisitRequest) domain.VisitInput {
	in := domain.VisitInput{
		VisitType: body.VisitType,
		Notes:     body.Notes,
		Photos:    body.Photos,
	}
	if body.StartDate != nil {
		d := domain.FormatDate(body.StartDate.Time)
		in.StartDate = &d
	}
	if body.EndDate.Set {
		d := ""
		if !body.EndDate.Null {
			d = domain.FormatDate(body.EndDate.Value.Time)
		}
		in.EndDate = &d
	}
	if body.Rating.Set {
		if body.Rating.Null {
			in.ClearRating = true
		} else {
			r := body.Rating.Value
			in.Rating = &r
		}
	}
	return in
}

// writeBodyError answers a body that could not be decoded: 413 when it was cut
// off by the size limit, 422 otherwise.
func (s *Server) writeBodyError(w http.ResponseWriter, r *http.Request, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		s.writeError(w, r, err)
		return
	}
	writeErrorBody(w, http.StatusUnprocessableEntity, "validation_error", "invalid request body: "+err.Error())
}

func indexParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	n, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		badRequest(w, "visit index must be an integer")
		return 0, false
	}
	return n, true
}
