// Package ledger implements the visit operations on a country.
// Every operation is a pure function: it returns a new Country and never
// writes into the visit slice of its input, so snapshots handed out earlier
// stay valid.
package ledger

import (
	"fmt"
	"slices"
	"time"

	"github.com/pkordes/travel-tracker/internal/domain"
)

// AddVisit appends a visit built from in. StartDate defaults to today when not
// provided; every other field defaults to absent. Duplicates are allowed.
func AddVisit(c domain.Country, in domain.VisitInput, today time.Time) (domain.Country, error) {
	v := domain.Visit{StartDate: domain.FormatDate(today)}
	merge(&v, in)
	if err := validateVisit(v); err != nil {
		return domain.Country{}, fmt.Errorf("ledger.AddVisit: %w", err)
	}

	out := c
	out.Visits = append(slices.Clone(c.Visits), v)
	return out, nil
}

// UpdateVisit shallow-merges in into the visit at index: only provided fields
// change. Returns domain.ErrIndexOutOfRange or domain.ErrValidation without
// touching the country.
func UpdateVisit(c domain.Country, index int, in domain.VisitInput) (domain.Country, error) {
	if err := checkIndex(c, index); err != nil {
		return domain.Country{}, fmt.Errorf("ledger.UpdateVisit: %w", err)
	}

	v := cloneVisit(c.Visits[index])
	merge(&v, in)
	if err := validateVisit(v); err != nil {
		return domain.Country{}, fmt.Errorf("ledger.UpdateVisit: %w", err)
	}

	out := c
	out.Visits = slices.Clone(c.Visits)
	out.Visits[index] = v
	return out, nil
}

// DeleteVisit removes the visit at index; later visits shift down by one.
func DeleteVisit(c domain.Country, index int) (domain.Country, error) {
	if err := checkIndex(c, index); err != nil {
		return domain.Country{}, fmt.Errorf("ledger.DeleteVisit: %w", err)
	}

	out := c
	out.Visits = slices.Delete(slices.Clone(c.Visits), index, index+1)
	return out, nil
}

// ClearVisits removes every visit, which unmarks the country as visited.
func ClearVisits(c domain.Country) domain.Country {
	out := c
	out.Visits = []domain.Visit{}
	return out
}

// Apply runs op against the country with the given code and returns a new
// document with that country replaced and LastUpdated set to now.
// Returns domain.ErrNotFound if the document has no such country; errors from
// op are returned unchanged and doc is never modified.
func Apply(doc domain.TravelData, code string, now time.Time, op func(domain.Country) (domain.Country, error)) (domain.TravelData, domain.Country, error) {
	i := slices.IndexFunc(doc.Countries, func(c domain.Country) bool { return c.Code == code })
	if i < 0 {
		return domain.TravelData{}, domain.Country{}, fmt.Errorf("ledger.Apply: country %q: %w", code, domain.ErrNotFound)
	}

	updated, err := op(doc.Countries[i])
	if err != nil {
		return domain.TravelData{}, domain.Country{}, err
	}

	out := doc
	out.Countries = slices.Clone(doc.Countries)
	out.Countries[i] = updated
	out.LastUpdated = now
	return out, updated, nil
}

func checkIndex(c domain.Country, index int) error {
	if index < 0 || index >= len(c.Visits) {
		return fmt.Errorf("%w: index %d, country %s has %d visits",
			domain.ErrIndexOutOfRange, index, c.Code, len(c.Visits))
	}
	return nil
}

func merge(v *domain.Visit, in domain.VisitInput) {
	if in.StartDate != nil {
		v.StartDate = *in.StartDate
	}
	if in.EndDate != nil {
		v.EndDate = *in.EndDate
	}
	if in.VisitType != nil {
		v.VisitType = *in.VisitType
	}
	if in.Notes != nil {
		v.Notes = *in.Notes
	}
	switch {
	case in.ClearRating:
		v.Rating = nil
	case in.Rating != nil:
		r := *in.Rating
		v.Rating = &r
	}
	if in.Photos != nil {
		v.Photos = slices.Clone(in.Photos)
	}
}

func cloneVisit(v domain.Visit) domain.Visit {
	if v.Rating != nil {
		r := *v.Rating
		v.Rating = &r
	}
	v.Photos = slices.Clone(v.Photos)
	return v
}
