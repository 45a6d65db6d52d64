// Package handler implements the HTTP API for the travel tracker.
// All handlers are methods on Server. They are split into files per resource
// (country.go, visit.go, ...) but share the same dependencies.
package handler

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pkordes/travel-tracker/internal/domain"
	"github.com/pkordes/travel-tracker/internal/geocode"
	"github.com/pkordes/travel-tracker/internal/service"
)

// TravelServicer is the store the handlers depend on. It is defined here, in
// the consumer, so handler tests can inject a mock.
type TravelServicer interface {
	Document() domain.TravelData
	Countries(f service.CountryFilter) []domain.Country
	Country(code string) (domain.Country, error)
	AddVisit(ctx context.Context, code string, in domain.VisitInput) (domain.Country, error)
	UpdateVisit(ctx context.Context, code string, index int, in domain.VisitInput) (domain.Country, error)
	DeleteVisit(ctx context.Context, code string, index int) (domain.Country, error)
	ClearVisits(ctx context.Context, code string) (domain.Country, error)
	Statistics(includeTerritories bool) domain.Statistics
	Import(ctx context.Context, raw []byte) (service.LoadReport, error)
	Save(ctx context.Context) error
}

// Resolver maps a map feature to a country code.
type Resolver interface {
	Resolve(f geocode.Feature) (string, bool)
}

// Server holds the handler dependencies.
type Server struct {
	travel   TravelServicer
	resolver Resolver
	openAPI  []byte
	now      func() time.Time
	log      *slog.Logger
}

// NewServer constructs a Server. openAPI is served verbatim at /openapi.yaml;
// log defaults to slog.Default().
func NewServer(travel TravelServicer, resolver Resolver, openAPI []byte, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{
		travel:   travel,
		resolver: resolver,
		openAPI:  openAPI,
		now:      time.Now,
		log:      log,
	}
}

// Routes registers every API route on a new chi router.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", s.GetOpenAPI)

	r.Route("/countries", func(r chi.Router) {
		r.Get("/", s.ListCountries)
		r.Route("/{code}", func(r chi.Router) {
			r.Get("/", s.GetCountry)
			r.Post("/visits", s.AddVisit)
			r.Delete("/visits", s.ClearVisits)
			r.Put("/visits/{index}", s.UpdateVisit)
			r.Delete("/visits/{index}", s.DeleteVisit)
		})
	})

	r.Get("/statistics", s.GetStatistics)
	r.Get("/report", s.GetReport)

	r.Get("/document", s.ExportDocument)
	r.Put("/document", s.ImportDocument)
	r.Post("/document/save", s.SaveDocument)

	r.Get("/geocode", s.Geocode)

	return r
}
