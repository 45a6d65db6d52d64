// Package stats derives summary statistics from a set of countries.
package stats

import (
	"cmp"
	"log/slog"
	"slices"

	"github.com/pkordes/travel-tracker/internal/domain"
	"github.com/pkordes/travel-tracker/internal/ledger"
)

// visitTypeOrder is the display order of the visit type breakdown.
var visitTypeOrder = []struct {
	t     domain.VisitType
	label string
}{
	{domain.VisitBusiness, "Business"},
	{domain.VisitLeisure, "Leisure"},
	{domain.VisitTransit, "Transit"},
	{domain.VisitOther, "Other"},
}

// Aggregator computes Statistics. It holds no state besides its logger and is
// safe for concurrent use.
type Aggregator struct {
	log *slog.Logger
}

// NewAggregator returns an Aggregator that reports skipped timeline entries to
// log, or to slog.Default() when nil.
func NewAggregator(log *slog.Logger) *Aggregator {
	if log == nil {
		log = slog.Default()
	}
	return &Aggregator{log: log}
}

// Calculate summarizes countries. Percentages and averages are 0 when their
// denominator is 0.
func (a *Aggregator) Calculate(countries []domain.Country) domain.Statistics {
	s := domain.Statistics{
		TotalCountries: len(countries),
		ContinentStats: make([]domain.ContinentStats, 0, len(domain.Continents)),
		Timeline:       []domain.TimelineEntry{},
	}

	perContinent := make(map[domain.Continent]*domain.ContinentStats, len(domain.Continents))
	for _, c := range domain.Continents {
		perContinent[c] = &domain.ContinentStats{Continent: c}
	}
	typeCounts := make(map[domain.VisitType]int, len(visitTypeOrder))
	timeline := make(map[string]*domain.TimelineEntry)

	for _, c := range countries {
		visited := ledger.IsVisited(c)
		if cs, ok := perContinent[c.Continent]; ok {
			cs.Total++
			if visited {
				cs.Visited++
			}
		}

		s.TotalTrips += len(c.Visits)
		s.TotalDaysTraveled += ledger.TotalDaysInCountry(c)
		for _, v := range c.Visits {
			typeCounts[v.VisitType]++
		}

		if !visited {
			continue
		}
		s.VisitedCount++
		a.addToTimeline(timeline, c)
	}

	s.VisitedPercentage = percentage(s.VisitedCount, s.TotalCountries)
	for _, c := range domain.Continents {
		cs := perContinent[c]
		cs.Percentage = percentage(cs.Visited, cs.Total)
		s.ContinentStats = append(s.ContinentStats, *cs)
	}

	if s.TotalTrips > 0 {
		s.AverageTripLength = float64(s.TotalDaysTraveled) / float64(s.TotalTrips)
	}

	for _, vt := range visitTypeOrder {
		s.VisitTypes = append(s.VisitTypes, domain.VisitTypeCount{Type: vt.t, Label: vt.label, Count: typeCounts[vt.t]})
	}

	for _, e := range timeline {
		s.Timeline = append(s.Timeline, *e)
	}
	// Keys are unique, so ordering is total and deterministic.
	slices.SortFunc(s.Timeline, func(x, y domain.TimelineEntry) int {
		return cmp.Compare(y.Date, x.Date)
	})

	return s
}

// addToTimeline files c under the calendar date of its most recent visit.
// Countries whose date cannot be parsed are skipped with a warning.
func (a *Aggregator) addToTimeline(timeline map[string]*domain.TimelineEntry, c domain.Country) {
	raw, _ := ledger.MostRecentVisitDate(c)
	t, err := domain.ParseDate(raw)
	if err != nil {
		a.log.Warn("skipping country with invalid visit date in timeline",
			"code", c.Code,
			"date", raw,
			"error", err,
		)
		return
	}

	key := domain.FormatDate(t)
	e, ok := timeline[key]
	if !ok {
		e = &domain.TimelineEntry{Date: key}
		timeline[key] = e
	}
	e.CountryNames = append(e.CountryNames, c.Name)
	e.CountryCodes = append(e.CountryCodes, c.Code)
}

// PrimaryCountries returns countries without territories, for headline counts
// that hide disputed and dependent entities.
func PrimaryCountries(countries []domain.Country) []domain.Country {
	out := make([]domain.Country, 0, len(countries))
	for _, c := range countries {
		if !c.IsTerritory {
			out = append(out, c)
		}
	}
	return out
}

func percentage(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) / float64(whole) * 100
}
