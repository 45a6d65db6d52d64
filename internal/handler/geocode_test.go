package handler_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/travel-tracker/internal/catalogue"
	"github.com/pkordes/travel-tracker/internal/domain"
	"github.com/pkordes/travel-tracker/internal/handler"
)

// catalogueServicer answers Country from the real catalogue.
func catalogueServicer() *mockTravelServicer {
	return &mockTravelServicer{
		country: func(code string) (domain.Country, error) {
			c, ok := catalogue.Lookup(code)
			if !ok {
				return domain.Country{}, fmt.Errorf("lookup %s: %w", code, domain.ErrNotFound)
			}
			return c, nil
		},
	}
}

func TestGeocode(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		wantCode string
	}{
		{name: "numeric id", target: "/geocode?id=250&name=France", wantCode: "FRA"},
		{name: "override beats table", target: "/geocode?id=304", wantCode: "GRL"},
		{name: "missing id falls back to name", target: "/geocode?id=-99&name=Kosovo", wantCode: "XKX"},
		{name: "name only", target: "/geocode?name=N.%20Cyprus", wantCode: "NCY"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := do(t, newHTTPHandler(catalogueServicer()), http.MethodGet, tc.target, nil)

			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			body := decode[handler.GeocodeResponse](t, rec)
			assert.Equal(t, tc.wantCode, body.Code)
			assert.Equal(t, tc.wantCode, body.Country.Code)
		})
	}
}

func TestGeocode_Unresolved_404(t *testing.T) {
	rec := do(t, newHTTPHandler(catalogueServicer()), http.MethodGet, "/geocode?id=-99&name=Atlantis", nil)

	requireErrorCode(t, rec, http.StatusNotFound, "not_found")
}

func TestGeocode_ResolvedButUntracked_404(t *testing.T) {
	svc := &mockTravelServicer{
		country: func(code string) (domain.Country, error) {
			t.Fatalf("Country(%s) called for an untracked code", code)
			return domain.Country{}, nil
		},
	}
	rec := do(t, newHTTPHandler(svc), http.MethodGet, "/geocode?id=010&name=Antarctica", nil)

	body := requireErrorCode(t, rec, http.StatusNotFound, "not_tracked")
	assert.Contains(t, body.Error.Message, "ATA")
}

func TestGeocode_NoParams_400(t *testing.T) {
	rec := do(t, newHTTPHandler(catalogueServicer()), http.MethodGet, "/geocode", nil)

	requireErrorCode(t, rec, http.StatusBadRequest, "bad_request")
}
