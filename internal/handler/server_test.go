package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pkordes/travel-tracker/internal/domain"
	"github.com/pkordes/travel-tracker/internal/geocode"
	"github.com/pkordes/travel-tracker/internal/handler"
	"github.com/pkordes/travel-tracker/internal/service"
)

// mockTravelServicer is a test double for handler.TravelServicer.
// Set only the function fields your test needs; calling an unset one panics,
// which flags an unexpected service call.
type mockTravelServicer struct {
	document    func() domain.TravelData
	countries   func(f service.CountryFilter) []domain.Country
	country     func(code string) (domain.Country, error)
	addVisit    func(ctx context.Context, code string, in domain.VisitInput) (domain.Country, error)
	updateVisit func(ctx context.Context, code string, index int, in domain.VisitInput) (domain.Country, error)
	deleteVisit func(ctx context.Context, code string, index int) (domain.Country, error)
	clearVisits func(ctx context.Context, code string) (domain.Country, error)
	statistics  func(includeTerritories bool) domain.Statistics
	importDoc   func(ctx context.Context, raw []byte) (service.LoadReport, error)
	save        func(ctx context.Context) error
}

func (m *mockTravelServicer) Document() domain.TravelData { return m.document() }
func (m *mockTravelServicer) Countries(f service.CountryFilter) []domain.Country {
	return m.countries(f)
}
func (m *mockTravelServicer) Country(code string) (domain.Country, error) { return m.country(code) }
func (m *mockTravelServicer) AddVisit(ctx context.Context, code string, in domain.VisitInput) (domain.Country, error) {
	return m.addVisit(ctx, code, in)
}
func (m *mockTravelServicer) UpdateVisit(ctx context.Context, code string, index int, in domain.VisitInput) (domain.Country, error) {
	return m.updateVisit(ctx, code, index, in)
}
func (m *mockTravelServicer) DeleteVisit(ctx context.Context, code string, index int) (domain.Country, error) {
	return m.deleteVisit(ctx, code, index)
}
func (m *mockTravelServicer) ClearVisits(ctx context.Context, code string) (domain.Country, error) {
	return m.clearVisits(ctx, code)
}
func (m *mockTravelServicer) Statistics(includeTerritories bool) domain.Statistics {
	return m.statistics(includeTerritories)
}
func (m *mockTravelServicer) Import(ctx context.Context, raw []byte) (service.LoadReport, error) {
	return m.importDoc(ctx, raw)
}
func (m *mockTravelServicer) Save(ctx context.Context) error { return m.save(ctx) }

// compile-time check: mockTravelServicer must satisfy handler.TravelServicer.
var _ handler.TravelServicer = (*mockTravelServicer)(nil)

// ---- helpers ---------------------------------------------------------------

// newHTTPHandler wires a Server with the given mock exactly as main.go does,
// using the real default resolver.
func newHTTPHandler(svc handler.TravelServicer) http.Handler {
	return handler.NewServer(svc, geocode.Default(), []byte("openapi: 3.0.3\n"), nil).Routes()
}

func do(t *testing.T, h http.Handler, method, target string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == nil {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	return v
}

func france(visits ...domain.Visit) domain.Country {
	if visits == nil {
		visits = []domain.Visit{}
	}
	return domain.Country{Code: "FRA", Name: "France", Continent: domain.Europe, Visits: visits}
}

func requireErrorCode(t *testing.T, rec *httptest.ResponseRecorder, status int, code string) handler.ErrorResponse {
	t.Helper()
	require.Equal(t, status, rec.Code, rec.Body.String())
	body := decode[handler.ErrorResponse](t, rec)
	require.Equal(t, code, body.Error.Code)
	return body
}
