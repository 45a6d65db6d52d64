// Package migrate upgrades persisted travel documents to the current schema
// and reconciles them against the catalogue.
//
// A persisted document is a tagged union discriminated only by its "version"
// field: absent (or null/0) means the legacy shape, CurrentVersion means the
// current shape, anything else is an unknown revision.
package migrate

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/pkordes/travel-tracker/internal/domain"
)

// Kind is the discriminant of a decoded Document.
type Kind int

const (
	KindLegacy Kind = iota
	KindCurrent
	KindUnknown
)

func (k Kind) String() string {
	switch k {
	case KindLegacy:
		return "legacy"
	case KindCurrent:
		return "current"
	default:
		return "unknown"
	}
}

// Document is a decoded persisted document of any schema revision.
// Exactly one of Legacy and Current is set: Legacy for KindLegacy, Current for
// KindCurrent and KindUnknown (unknown revisions are carried in the current
// shape, untouched).
type Document struct {
	Kind    Kind
	Version int
	Legacy  *domain.LegacyTravelData
	Current *domain.TravelData
}

// Decode parses raw JSON into a Document. The only structural check made is the
// version discriminant; JSON syntax or type errors are returned as-is.
func Decode(raw []byte) (Document, error) {
	var probe struct {
		Version *int `json:"version"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return Document{}, fmt.Errorf("migrate.Decode: %w", err)
	}

	if probe.Version == nil || *probe.Version == 0 {
		var legacy domain.LegacyTravelData
		if err := json.Unmarshal(raw, &legacy); err != nil {
			return Document{}, fmt.Errorf("migrate.Decode: legacy: %w", err)
		}
		return Document{Kind: KindLegacy, Legacy: &legacy}, nil
	}

	var current domain.TravelData
	if err := json.Unmarshal(raw, &current); err != nil {
		return Document{}, fmt.Errorf("migrate.Decode: version %d: %w", *probe.Version, err)
	}
	kind := KindCurrent
	if *probe.Version != domain.CurrentVersion {
		kind = KindUnknown
	}
	return Document{Kind: kind, Version: *probe.Version, Current: &current}, nil
}

// Outcome reports what Migrate did with a document.
type Outcome string

const (
	// OutcomeCurrent means the document was already current and is unchanged.
	OutcomeCurrent Outcome = "current"
	// OutcomeUpgraded means a legacy document was rewritten into the current schema.
	OutcomeUpgraded Outcome = "upgraded"
	// OutcomeUnknownVersion means the version was not recognized; the document
	// is returned unmodified and downstream behaviour is unspecified.
	OutcomeUnknownVersion Outcome = "unknown_version"
)

// Result is the output of Migrate.
type Result struct {
	Data    domain.TravelData
	Outcome Outcome
}

// Migrator runs migrations and reports unrecognized revisions through its logger.
type Migrator struct {
	log *slog.Logger
}

// NewMigrator returns a Migrator logging to log, or to slog.Default() when nil.
func NewMigrator(log *slog.Logger) *Migrator {
	if log == nil {
		log = slog.Default()
	}
	return &Migrator{log: log}
}

// Load decodes raw and migrates it in one step.
func (m *Migrator) Load(raw []byte) (Result, error) {
	doc, err := Decode(raw)
	if err != nil {
		return Result{}, err
	}
	return m.Migrate(doc), nil
}

// Migrate maps doc to the current schema. It is total: every legacy country is
// mapped, and an unknown revision is passed through with a warning.
func (m *Migrator) Migrate(doc Document) Result {
	switch doc.Kind {
	case KindLegacy:
		return Result{Data: upgradeLegacy(*doc.Legacy), Outcome: OutcomeUpgraded}
	case KindCurrent:
		return Result{Data: *doc.Current, Outcome: OutcomeCurrent}
	default:
		m.log.Warn("unknown travel data version, leaving document unchanged",
			"version", doc.Version,
			"current_version", domain.CurrentVersion,
		)
		return Result{Data: *doc.Current, Outcome: OutcomeUnknownVersion}
	}
}

// upgradeLegacy converts the visited flag and date into a visit list holding at
// most one visit. The legacy schema never had end dates, types, notes, ratings
// or photos, so none are synthesized.
func upgradeLegacy(legacy domain.LegacyTravelData) domain.TravelData {
	countries := make([]domain.Country, len(legacy.Countries))
	for i, lc := range legacy.Countries {
		visits := []domain.Visit{}
		if lc.Visited {
			start := lc.VisitDate
			if start == "" {
				// Visited without a date: the document date keeps the visited truth.
				start = domain.FormatDate(legacy.LastUpdated.UTC())
			}
			visits = append(visits, domain.Visit{StartDate: start})
		}
		countries[i] = domain.Country{
			Code:        lc.Code,
			Name:        lc.Name,
			Continent:   lc.Continent,
			IsTerritory: lc.IsTerritory,
			Visits:      visits,
		}
	}
	return domain.TravelData{
		Version:     domain.CurrentVersion,
		Countries:   countries,
		LastUpdated: legacy.LastUpdated,
	}
}
