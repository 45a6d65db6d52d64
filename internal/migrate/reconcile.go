package migrate

import "github.com/pkordes/travel-tracker/internal/domain"

// Reconciliation is the result of merging a loaded document into the catalogue.
// Dropped lists, in document order, the codes present in the loaded document
// but absent from the catalogue. They are not part of Data.
type Reconciliation struct {
	Data    domain.TravelData
	Dropped []string
}

// Reconcile merges loaded into the catalogue. The catalogue is authoritative for
// membership and for name, continent and territory flag; only visits are taken
// from loaded. Catalogue countries missing from loaded keep empty visits.
// When loaded repeats a code, the first occurrence wins. Version and
// LastUpdated are carried over from loaded.
func Reconcile(catalogue []domain.Country, loaded domain.TravelData) Reconciliation {
	known := make(map[string]bool, len(catalogue))
	for _, c := range catalogue {
		known[c.Code] = true
	}

	visits := make(map[string][]domain.Visit, len(loaded.Countries))
	var dropped []string
	for _, c := range loaded.Countries {
		if !known[c.Code] {
			dropped = append(dropped, c.Code)
			continue
		}
		if _, seen := visits[c.Code]; !seen {
			visits[c.Code] = c.Visits
		}
	}

	merged := make([]domain.Country, len(catalogue))
	for i, c := range catalogue {
		if v, ok := visits[c.Code]; ok && v != nil {
			c.Visits = v
		}
		if c.Visits == nil {
			c.Visits = []domain.Visit{}
		}
		merged[i] = c
	}

	return Reconciliation{
		Data: domain.TravelData{
			Version:     loaded.Version,
			Countries:   merged,
			LastUpdated: loaded.LastUpdated,
		},
		Dropped: dropped,
	}
}
