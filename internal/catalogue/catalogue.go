// Package catalogue is the static reference list of every trackable country
// and territory shipped with the application.
package catalogue

import "github.com/pkordes/travel-tracker/internal/domain"

// Revision identifies the catalogue release. Bump it whenever entries are
// added; loaded documents are reconciled against the catalogue on every load.
const Revision = 3

type entry struct {
	code        string
	name        string
	continent   domain.Continent
	isTerritory bool
}

var byCode = func() map[string]entry {
	m := make(map[string]entry, len(entries))
	for _, e := range entries {
		m[e.code] = e
	}
	return m
}()

// Countries returns the full catalogue with empty visit lists.
// Each call returns a fresh slice the caller may own.
func Countries() []domain.Country {
	out := make([]domain.Country, len(entries))
	for i, e := range entries {
		out[i] = e.country()
	}
	return out
}

// Lookup returns the catalogue country for code, with empty visits.
func Lookup(code string) (domain.Country, bool) {
	e, ok := byCode[code]
	if !ok {
		return domain.Country{}, false
	}
	return e.country(), true
}

// Len reports the number of catalogue entries.
func Len() int {
	return len(entries)
}

func (e entry) country() domain.Country {
	return domain.Country{
		Code:        e.code,
		Name:        e.name,
		Continent:   e.continent,
		IsTerritory: e.isTerritory,
		Visits:      []domain.Visit{},
	}
}
