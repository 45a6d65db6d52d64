package ledger_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/travel-tracker/internal/domain"
	"github.com/pkordes/travel-tracker/internal/ledger"
)

// ---- helpers ---------------------------------------------------------------

func ptr[T any](v T) *T { return &v }

var today = time.Date(2025, 6, 2, 15, 4, 5, 0, time.UTC)

func countryFixture(visits ...domain.Visit) domain.Country {
	if visits == nil {
		visits = []domain.Visit{}
	}
	return domain.Country{Code: "PRT", Name: "Portugal", Continent: domain.Europe, Visits: visits}
}

// ---- AddVisit --------------------------------------------------------------

func TestAddVisit_DefaultsStartDateToToday(t *testing.T) {
	got, err := ledger.AddVisit(countryFixture(), domain.VisitInput{}, today)

	require.NoError(t, err)
	require.Len(t, got.Visits, 1)
	assert.Equal(t, domain.Visit{StartDate: "2025-06-02"}, got.Visits[0])
}

func TestAddVisit_AllFields(t *testing.T) {
	in := domain.VisitInput{
		StartDate: ptr("2024-05-01"),
		EndDate:   ptr("2024-05-07"),
		VisitType: ptr(domain.VisitBusiness),
		Notes:     ptr("conference in Lisbon"),
		Rating:    ptr(4.5),
		Photos:    []string{"prt/a.jpg", "prt/b.jpg"},
	}

	got, err := ledger.AddVisit(countryFixture(), in, today)

	require.NoError(t, err)
	v := got.Visits[0]
	assert.Equal(t, "2024-05-01", v.StartDate)
	assert.Equal(t, "2024-05-07", v.EndDate)
	assert.Equal(t, domain.VisitBusiness, v.VisitType)
	assert.Equal(t, "conference in Lisbon", v.Notes)
	require.NotNil(t, v.Rating)
	assert.InDelta(t, 4.5, *v.Rating, 1e-9)
	assert.Equal(t, []string{"prt/a.jpg", "prt/b.jpg"}, v.Photos)
}

// Two identical visits are accepted, not deduplicated.
func TestAddVisit_AllowsDuplicates(t *testing.T) {
	in := domain.VisitInput{StartDate: ptr("2024-01-01")}
	c, err := ledger.AddVisit(countryFixture(), in, today)
	require.NoError(t, err)

	c, err = ledger.AddVisit(c, in, today)

	require.NoError(t, err)
	assert.Len(t, c.Visits, 2)
}

func TestAddVisit_DoesNotMutateInput(t *testing.T) {
	visits := make([]domain.Visit, 1, 4) // spare capacity would expose in-place appends
	visits[0] = domain.Visit{StartDate: "2020-01-01"}
	orig := countryFixture(visits...)
	orig.Visits = visits

	got, err := ledger.AddVisit(orig, domain.VisitInput{StartDate: ptr("2021-01-01")}, today)
	require.NoError(t, err)

	got.Visits[0].Notes = "changed"
	assert.Empty(t, orig.Visits[0].Notes)
	assert.Len(t, orig.Visits, 1)
	assert.Equal(t, "", visits[:2][1].StartDate, "backing array of the input untouched")
}

func TestAddVisit_Validation(t *testing.T) {
	tests := []struct {
		name string
		in   domain.VisitInput
		msg  string
	}{
		{"end before start", domain.VisitInput{StartDate: ptr("2024-05-07"), EndDate: ptr("2024-05-01")}, "endDate"},
		{"bad start date", domain.VisitInput{StartDate: ptr("07/05/2024")}, "startDate"},
		{"empty start date", domain.VisitInput{StartDate: ptr("")}, "startDate"},
		{"bad end date", domain.VisitInput{EndDate: ptr("soon")}, "endDate"},
		{"unknown visit type", domain.VisitInput{VisitType: ptr(domain.VisitType("holiday"))}, "visitType"},
		{"rating too high", domain.VisitInput{Rating: ptr(5.1)}, "rating"},
		{"rating negative", domain.VisitInput{Rating: ptr(-0.5)}, "rating"},
		{"empty photo ref", domain.VisitInput{Photos: []string{"ok.jpg", ""}}, "photos"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orig := countryFixture()
			_, err := ledger.AddVisit(orig, tt.in, today)

			require.ErrorIs(t, err, domain.ErrValidation)
			assert.Contains(t, err.Error(), tt.msg)
			assert.Empty(t, orig.Visits)
		})
	}
}

func TestAddVisit_BoundaryRatingsAndSameDayEnd(t *testing.T) {
	for _, r := range []float64{0, 5} {
		_, err := ledger.AddVisit(countryFixture(), domain.VisitInput{Rating: ptr(r)}, today)
		assert.NoError(t, err, "rating %v", r)
	}

	_, err := ledger.AddVisit(countryFixture(), domain.VisitInput{
		StartDate: ptr("2024-01-01"), EndDate: ptr("2024-01-01"),
	}, today)
	assert.NoError(t, err, "end date equal to start date is allowed")
}

// ---- UpdateVisit -----------------------------------------------------------

func TestUpdateVisit_ShallowMerge(t *testing.T) {
	orig := countryFixture(domain.Visit{
		StartDate: "2024-01-01",
		EndDate:   "2024-01-05",
		VisitType: domain.VisitLeisure,
		Notes:     "beach",
		Rating:    ptr(3.0),
	})

	got, err := ledger.UpdateVisit(orig, 0, domain.VisitInput{Notes: ptr("surfing"), Rating: ptr(4.0)})

	require.NoError(t, err)
	v := got.Visits[0]
	assert.Equal(t, "2024-01-01", v.StartDate)
	assert.Equal(t, "2024-01-05", v.EndDate)
	assert.Equal(t, domain.VisitLeisure, v.VisitType)
	assert.Equal(t, "surfing", v.Notes)
	assert.InDelta(t, 4.0, *v.Rating, 1e-9)

	assert.Equal(t, "beach", orig.Visits[0].Notes, "input country unchanged")
	assert.InDelta(t, 3.0, *orig.Visits[0].Rating, 1e-9)
}

func TestUpdateVisit_ClearsEndDateAndRating(t *testing.T) {
	orig := countryFixture(domain.Visit{StartDate: "2024-01-01", EndDate: "2024-01-05", Rating: ptr(3.0)})

	got, err := ledger.UpdateVisit(orig, 0, domain.VisitInput{EndDate: ptr(""), Rating: ptr(4.0), ClearRating: true})

	require.NoError(t, err)
	assert.Equal(t, domain.Visit{StartDate: "2024-01-01"}, got.Visits[0])
	assert.Equal(t, 5, ledger.TotalDaysInCountry(orig), "input country unchanged")
	assert.Equal(t, 1, ledger.TotalDaysInCountry(got))
}

func TestUpdateVisit_OutOfRange(t *testing.T) {
	orig := countryFixture(domain.Visit{StartDate: "2024-01-01"})

	for _, idx := range []int{-1, 1, 99} {
		got, err := ledger.UpdateVisit(orig, idx, domain.VisitInput{Notes: ptr("x")})

		require.ErrorIs(t, err, domain.ErrIndexOutOfRange, "index %d", idx)
		assert.Empty(t, got.Visits)
		assert.Equal(t, []domain.Visit{{StartDate: "2024-01-01"}}, orig.Visits, "existing visits unaltered")
	}
}

func TestUpdateVisit_RejectsEndBeforeStart(t *testing.T) {
	orig := countryFixture(domain.Visit{StartDate: "2024-03-10"})

	_, err := ledger.UpdateVisit(orig, 0, domain.VisitInput{EndDate: ptr("2024-03-01")})

	require.ErrorIs(t, err, domain.ErrValidation)
	assert.Empty(t, orig.Visits[0].EndDate)
}

// Visits migrated from the legacy schema may carry full timestamps; editing
// other fields must still work.
func TestUpdateVisit_LegacyTimestampStartDate(t *testing.T) {
	orig := countryFixture(domain.Visit{StartDate: "2021-05-02T10:00:00.000Z"})

	got, err := ledger.UpdateVisit(orig, 0, domain.VisitInput{EndDate: ptr("2021-05-04")})

	require.NoError(t, err)
	assert.Equal(t, 3, ledger.TotalDaysInCountry(got))
}

// ---- DeleteVisit / ClearVisits ---------------------------------------------

func TestDeleteVisit_OnlyVisitUnmarks(t *testing.T) {
	orig := countryFixture(domain.Visit{StartDate: "2024-01-01"})

	got, err := ledger.DeleteVisit(orig, 0)

	require.NoError(t, err)
	assert.False(t, ledger.IsVisited(got))
	assert.True(t, ledger.IsVisited(orig))
}

func TestDeleteVisit_ShiftsIndices(t *testing.T) {
	orig := countryFixture(
		domain.Visit{StartDate: "2024-01-01"},
		domain.Visit{StartDate: "2024-02-01"},
		domain.Visit{StartDate: "2024-03-01"},
	)

	got, err := ledger.DeleteVisit(orig, 1)

	require.NoError(t, err)
	require.Len(t, got.Visits, 2)
	assert.Equal(t, "2024-03-01", got.Visits[1].StartDate)
	assert.Equal(t, "2024-02-01", orig.Visits[1].StartDate, "input untouched")
}

func TestDeleteVisit_OutOfRange(t *testing.T) {
	_, err := ledger.DeleteVisit(countryFixture(), 0)
	assert.ErrorIs(t, err, domain.ErrIndexOutOfRange)
}

func TestClearVisits(t *testing.T) {
	orig := countryFixture(domain.Visit{StartDate: "2024-01-01"}, domain.Visit{StartDate: "2024-02-01"})

	got := ledger.ClearVisits(orig)

	assert.NotNil(t, got.Visits)
	assert.False(t, ledger.IsVisited(got))
	assert.Len(t, orig.Visits, 2)
}

// ---- Apply -----------------------------------------------------------------

func TestApply_ReplacesCountryAndStampsTime(t *testing.T) {
	doc := domain.TravelData{
		Version: domain.CurrentVersion,
		Countries: []domain.Country{
			{Code: "ESP", Visits: []domain.Visit{}},
			countryFixture(),
		},
		LastUpdated: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	op := func(c domain.Country) (domain.Country, error) {
		return ledger.AddVisit(c, domain.VisitInput{}, today)
	}

	got, country, err := ledger.Apply(doc, "PRT", today, op)

	require.NoError(t, err)
	assert.Equal(t, today, got.LastUpdated)
	assert.Len(t, got.Countries[1].Visits, 1)
	assert.Equal(t, got.Countries[1], country)
	assert.Empty(t, doc.Countries[1].Visits, "original document untouched")
	assert.Equal(t, 2020, doc.LastUpdated.Year())
}

func TestApply_UnknownCode(t *testing.T) {
	doc := domain.TravelData{Countries: []domain.Country{countryFixture()}}

	_, _, err := ledger.Apply(doc, "ZZZ", today, func(c domain.Country) (domain.Country, error) { return c, nil })

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestApply_OpErrorLeavesDocument(t *testing.T) {
	doc := domain.TravelData{Countries: []domain.Country{countryFixture()}}

	_, _, err := ledger.Apply(doc, "PRT", today, func(c domain.Country) (domain.Country, error) {
		return ledger.DeleteVisit(c, 3)
	})

	assert.ErrorIs(t, err, domain.ErrIndexOutOfRange)
	assert.True(t, doc.LastUpdated.IsZero())
}
