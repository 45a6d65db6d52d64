package ledger

import (
	"slices"
	"time"

	"github.com/pkordes/travel-tracker/internal/domain"
)

// IsVisited reports whether the country has at least one visit.
func IsVisited(c domain.Country) bool {
	return len(c.Visits) > 0
}

// MostRecentVisitDate returns the latest StartDate, or false when never visited.
func MostRecentVisitDate(c domain.Country) (string, bool) {
	return pickStartDate(c.Visits, func(a, b time.Time) int { return b.Compare(a) })
}

// FirstVisitDate returns the earliest StartDate, or false when never visited.
func FirstVisitDate(c domain.Country) (string, bool) {
	return pickStartDate(c.Visits, func(a, b time.Time) int { return a.Compare(b) })
}

// pickStartDate stable-sorts a copy of visits by parsed start date with order
// and returns the first start date. Unparsable dates sort after all valid ones
// in either direction.
func pickStartDate(visits []domain.Visit, order func(a, b time.Time) int) (string, bool) {
	if len(visits) == 0 {
		return "", false
	}

	type keyed struct {
		raw string
		t   time.Time
		ok  bool
	}
	keys := make([]keyed, len(visits))
	for i, v := range visits {
		t, err := domain.ParseDate(v.StartDate)
		keys[i] = keyed{raw: v.StartDate, t: t, ok: err == nil}
	}

	slices.SortStableFunc(keys, func(a, b keyed) int {
		if a.ok != b.ok {
			if a.ok {
				return -1
			}
			return 1
		}
		return order(a.t, b.t)
	})
	return keys[0].raw, true
}

// TotalDaysInCountry sums the inclusive length in days of every visit.
// A visit without an end date counts as one day. Overlapping visits are not
// collapsed, so shared days are counted once per visit. A visit whose start
// date cannot be parsed counts as one day; an unparsable end date is ignored.
func TotalDaysInCountry(c domain.Country) int {
	total := 0
	for _, v := range c.Visits {
		total += visitDays(v)
	}
	return total
}

func visitDays(v domain.Visit) int {
	start, err := domain.ParseDate(v.StartDate)
	if err != nil {
		return 1
	}
	end := start
	if v.EndDate != "" {
		if t, err := domain.ParseDate(v.EndDate); err == nil {
			end = t
		}
	}
	days := int(end.Sub(start).Hours()/24) + 1
	return max(days, 1)
}

// Photos returns every photo reference across the country's visits, in visit order.
func Photos(c domain.Country) []string {
	var out []string
	for _, v := range c.Visits {
		out = append(out, v.Photos...)
	}
	return out
}
