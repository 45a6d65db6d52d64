// Package service holds the travel document and the business rules around it.
// TravelService is the single writer: it applies ledger operations under a
// lock and persists through a repo.DocumentRepo. No SQL or file I/O lives here.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/pkordes/travel-tracker/internal/catalogue"
	"github.com/pkordes/travel-tracker/internal/domain"
	"github.com/pkordes/travel-tracker/internal/ledger"
	"github.com/pkordes/travel-tracker/internal/metrics"
	"github.com/pkordes/travel-tracker/internal/migrate"
	"github.com/pkordes/travel-tracker/internal/repo"
	"github.com/pkordes/travel-tracker/internal/stats"
)

// DefaultAutosaveDelay is the debounce between the last mutation and the save.
const DefaultAutosaveDelay = time.Second

// Visit mutation names, used as metric labels.
const (
	OpAdd    = "add"
	OpUpdate = "update"
	OpDelete = "delete"
	OpClear  = "clear"
)

// Options configures a TravelService. The zero value is usable.
type Options struct {
	AutosaveDelay time.Duration
	Now           func() time.Time
	Logger        *slog.Logger
	Metrics       *metrics.Metrics
}

// LoadReport describes what happened when a stored or imported document was
// installed.
type LoadReport struct {
	// Outcome is the migration outcome of the raw document.
	Outcome migrate.Outcome `json:"outcome"`
	// Dropped lists codes that were in the document but not in the catalogue.
	Dropped []string `json:"dropped"`
	// Fresh is true when nothing was stored and the catalogue was used as is.
	Fresh bool `json:"fresh"`
}

// CountryFilter narrows Countries. The zero value matches every country.
type CountryFilter struct {
	Visited            *bool
	Continent          domain.Continent
	ExcludeTerritories bool
}

func (f CountryFilter) match(c domain.Country) bool {
	if f.Visited != nil && ledger.IsVisited(c) != *f.Visited {
		return false
	}
	if f.Continent != "" && c.Continent != f.Continent {
		return false
	}
	return !(f.ExcludeTerritories && c.IsTerritory)
}

// TravelService owns the current travel document.
type TravelService struct {
	repo       repo.DocumentRepo
	migrator   *migrate.Migrator
	aggregator *stats.Aggregator
	autosave   *Autosaver
	now        func() time.Time
	log        *slog.Logger
	metrics    *metrics.Metrics

	mu  sync.RWMutex
	doc domain.TravelData
}

// NewTravelService constructs a TravelService persisting through r. It starts
// from the bare catalogue; call Load to install the stored document.
func NewTravelService(r repo.DocumentRepo, opts Options) *TravelService {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.AutosaveDelay <= 0 {
		opts.AutosaveDelay = DefaultAutosaveDelay
	}

	s := &TravelService{
		repo:       r,
		migrator:   migrate.NewMigrator(opts.Logger),
		aggregator: stats.NewAggregator(opts.Logger),
		now:        opts.Now,
		log:        opts.Logger,
		metrics:    opts.Metrics,
	}
	s.autosave = NewAutosaver(opts.AutosaveDelay, s.persist, opts.Logger, opts.Metrics)
	s.doc = s.freshDocument()
	return s
}

// Load installs the stored document. When nothing is stored the service keeps
// the bare catalogue and reports Fresh.
func (s *TravelService) Load(ctx context.Context) (LoadReport, error) {
	raw, err := s.repo.Load(ctx)
	if errors.Is(err, domain.ErrNotFound) {
		s.mu.Lock()
		s.doc = s.freshDocument()
		s.mu.Unlock()
		s.log.InfoContext(ctx, "no stored travel data, starting from catalogue",
			"catalogue_revision", catalogue.Revision,
			"countries", catalogue.Len())
		return LoadReport{Outcome: migrate.OutcomeCurrent, Dropped: []string{}, Fresh: true}, nil
	}
	if err != nil {
		return LoadReport{}, fmt.Errorf("service.TravelService.Load: %w", err)
	}

	report, err := s.install(ctx, raw)
	if err != nil {
		return LoadReport{}, fmt.Errorf("service.TravelService.Load: %w", err)
	}
	// Write back upgraded or pruned documents so storage matches memory. A
	// document from a newer revision is left as stored: the codes dropped here
	// may be known to the build that wrote it.
	if report.Outcome != migrate.OutcomeUnknownVersion &&
		(report.Outcome == migrate.OutcomeUpgraded || len(report.Dropped) > 0) {
		s.autosave.Schedule()
	}
	return report, nil
}

// Import replaces the current document with raw, a document of any schema
// revision, and saves it immediately. Malformed JSON is a domain.ErrValidation.
func (s *TravelService) Import(ctx context.Context, raw []byte) (LoadReport, error) {
	report, err := s.install(ctx, raw)
	if err != nil {
		return LoadReport{}, fmt.Errorf("service.TravelService.Import: %w", err)
	}
	if err := s.autosave.SaveNow(ctx); err != nil {
		return report, fmt.Errorf("service.TravelService.Import: %w", err)
	}
	return report, nil
}

func (s *TravelService) install(ctx context.Context, raw []byte) (LoadReport, error) {
	res, err := s.migrator.Load(raw)
	if err != nil {
		return LoadReport{}, fmt.Errorf("%w: %w", domain.ErrValidation, err)
	}

	rec := migrate.Reconcile(catalogue.Countries(), res.Data)
	if len(rec.Dropped) > 0 {
		s.log.WarnContext(ctx, "dropped countries missing from catalogue",
			"codes", rec.Dropped,
			"catalogue_revision", catalogue.Revision,
			"catalogue_countries", catalogue.Len(),
		)
	}

	s.mu.Lock()
	s.doc = rec.Data
	s.mu.Unlock()

	s.log.InfoContext(ctx, "travel data installed",
		"outcome", res.Outcome,
		"version", rec.Data.Version,
		"countries", len(rec.Data.Countries),
	)

	dropped := rec.Dropped
	if dropped == nil {
		dropped = []string{}
	}
	return LoadReport{Outcome: res.Outcome, Dropped: dropped}, nil
}

// Document returns the current document. The countries slice is a copy; visit
// slices are shared but never written to after publication.
func (s *TravelService) Document() domain.TravelData {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc := s.doc
	doc.Countries = slices.Clone(s.doc.Countries)
	return doc
}

// Countries returns the countries matching f, in document order.
func (s *TravelService) Countries(f CountryFilter) []domain.Country {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Country, 0, len(s.doc.Countries))
	for _, c := range s.doc.Countries {
		if f.match(c) {
			out = append(out, c)
		}
	}
	return out
}

// Country returns the country with the given code, or domain.ErrNotFound.
func (s *TravelService) Country(code string) (domain.Country, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := slices.IndexFunc(s.doc.Countries, func(c domain.Country) bool { return c.Code == code })
	if i < 0 {
		return domain.Country{}, fmt.Errorf("service.TravelService.Country: %q: %w", code, domain.ErrNotFound)
	}
	return s.doc.Countries[i], nil
}

// AddVisit appends a visit to the country. StartDate defaults to today.
func (s *TravelService) AddVisit(ctx context.Context, code string, in domain.VisitInput) (domain.Country, error) {
	today := s.now()
	return s.mutate(ctx, OpAdd, code, func(c domain.Country) (domain.Country, error) {
		return ledger.AddVisit(c, in, today)
	})
}

// UpdateVisit merges in into the visit at index.
func (s *TravelService) UpdateVisit(ctx context.Context, code string, index int, in domain.VisitInput) (domain.Country, error) {
	return s.mutate(ctx, OpUpdate, code, func(c domain.Country) (domain.Country, error) {
		return ledger.UpdateVisit(c, index, in)
	})
}

// DeleteVisit removes the visit at index.
func (s *TravelService) DeleteVisit(ctx context.Context, code string, index int) (domain.Country, error) {
	return s.mutate(ctx, OpDelete, code, func(c domain.Country) (domain.Country, error) {
		return ledger.DeleteVisit(c, index)
	})
}

// ClearVisits removes every visit, unmarking the country.
func (s *TravelService) ClearVisits(ctx context.Context, code string) (domain.Country, error) {
	return s.mutate(ctx, OpClear, code, func(c domain.Country) (domain.Country, error) {
		return ledger.ClearVisits(c), nil
	})
}

func (s *TravelService) mutate(ctx context.Context, op, code string, fn func(domain.Country) (domain.Country, error)) (domain.Country, error) {
	s.mu.Lock()
	next, updated, err := ledger.Apply(s.doc, code, s.now(), fn)
	if err != nil {
		s.mu.Unlock()
		return domain.Country{}, fmt.Errorf("service.TravelService.mutate: %s: %w", op, err)
	}
	s.doc = next
	s.mu.Unlock()

	s.metrics.VisitMutation(op)
	s.log.DebugContext(ctx, "visit mutation", "op", op, "code", code, "visits", len(updated.Visits))
	s.autosave.Schedule()
	return updated, nil
}

// Statistics aggregates the current document. Territories are left out unless
// includeTerritories is set.
func (s *TravelService) Statistics(includeTerritories bool) domain.Statistics {
	s.mu.RLock()
	countries := s.doc.Countries
	s.mu.RUnlock()

	if !includeTerritories {
		countries = stats.PrimaryCountries(countries)
	}
	return s.aggregator.Calculate(countries)
}

// Save persists the current document now, cancelling any pending autosave.
func (s *TravelService) Save(ctx context.Context) error {
	if err := s.autosave.SaveNow(ctx); err != nil {
		return fmt.Errorf("service.TravelService.Save: %w", err)
	}
	return nil
}

// Close flushes unsaved changes. Call it on shutdown.
func (s *TravelService) Close(ctx context.Context) error {
	if s.autosave.Dirty() {
		s.log.InfoContext(ctx, "flushing unsaved changes")
	}
	if err := s.autosave.Flush(ctx); err != nil {
		return fmt.Errorf("service.TravelService.Close: %w", err)
	}
	return nil
}

func (s *TravelService) persist(ctx context.Context) error {
	return s.repo.Save(ctx, s.Document())
}

func (s *TravelService) freshDocument() domain.TravelData {
	return domain.TravelData{
		Version:     domain.CurrentVersion,
		Countries:   catalogue.Countries(),
		LastUpdated: s.now().UTC(),
	}
}
