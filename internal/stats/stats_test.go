package stats_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/travel-tracker/internal/domain"
	"github.com/pkordes/travel-tracker/internal/stats"
)

func visited(code, name string, continent domain.Continent, visits ...domain.Visit) domain.Country {
	return domain.Country{Code: code, Name: name, Continent: continent, Visits: visits}
}

func unvisited(code, name string, continent domain.Continent) domain.Country {
	return domain.Country{Code: code, Name: name, Continent: continent, Visits: []domain.Visit{}}
}

func continentStats(t *testing.T, s domain.Statistics, c domain.Continent) domain.ContinentStats {
	t.Helper()
	for _, cs := range s.ContinentStats {
		if cs.Continent == c {
			return cs
		}
	}
	t.Fatalf("continent %s missing", c)
	return domain.ContinentStats{}
}

func TestCalculate_EmptySet(t *testing.T) {
	s := stats.NewAggregator(nil).Calculate(nil)

	assert.Equal(t, 0, s.TotalCountries)
	assert.Equal(t, 0.0, s.VisitedPercentage)
	assert.Equal(t, 0.0, s.AverageTripLength)
	assert.False(t, math.IsNaN(s.VisitedPercentage))
	assert.False(t, math.IsNaN(s.AverageTripLength))
	assert.Empty(t, s.Timeline)
	require.Len(t, s.ContinentStats, len(domain.Continents), "all continents emitted even when empty")
	for _, cs := range s.ContinentStats {
		assert.Equal(t, 0.0, cs.Percentage)
	}
}

func TestCalculate_ContinentBreakdown(t *testing.T) {
	countries := []domain.Country{
		visited("AAA", "A", domain.Europe, domain.Visit{StartDate: "2024-01-01"}),
		unvisited("BBB", "B", domain.Europe),
	}

	s := stats.NewAggregator(nil).Calculate(countries)

	eu := continentStats(t, s, domain.Europe)
	assert.Equal(t, 2, eu.Total)
	assert.Equal(t, 1, eu.Visited)
	assert.InDelta(t, 50.0, eu.Percentage, 1e-9)
	assert.InDelta(t, 50.0, s.VisitedPercentage, 1e-9)
}

func TestCalculate_ContinentsInCanonicalOrder(t *testing.T) {
	countries := []domain.Country{
		unvisited("NZL", "New Zealand", domain.Oceania),
		unvisited("KEN", "Kenya", domain.Africa),
	}

	s := stats.NewAggregator(nil).Calculate(countries)

	got := make([]domain.Continent, len(s.ContinentStats))
	for i, cs := range s.ContinentStats {
		got[i] = cs.Continent
	}
	assert.Equal(t, domain.Continents, got)
}

func TestCalculate_TripMetrics(t *testing.T) {
	countries := []domain.Country{
		visited("FRA", "France", domain.Europe,
			domain.Visit{StartDate: "2024-01-01", EndDate: "2024-01-03"}, // 3 days
			domain.Visit{StartDate: "2024-06-01"},                        // 1 day
		),
		visited("JPN", "Japan", domain.Asia,
			domain.Visit{StartDate: "2023-04-01", EndDate: "2023-04-08"}, // 8 days
		),
		unvisited("PER", "Peru", domain.SouthAmerica),
	}

	s := stats.NewAggregator(nil).Calculate(countries)

	assert.Equal(t, 3, s.TotalCountries)
	assert.Equal(t, 2, s.VisitedCount)
	assert.Equal(t, 3, s.TotalTrips)
	assert.Equal(t, 12, s.TotalDaysTraveled)
	assert.InDelta(t, 4.0, s.AverageTripLength, 1e-9)
}

func TestCalculate_TimelineGroupsByMostRecentVisit(t *testing.T) {
	countries := []domain.Country{
		visited("FRA", "France", domain.Europe,
			domain.Visit{StartDate: "2020-01-01"},
			domain.Visit{StartDate: "2024-05-01"},
		),
		visited("DEU", "Germany", domain.Europe, domain.Visit{StartDate: "2024-05-01T18:00:00Z"}),
		visited("ITA", "Italy", domain.Europe, domain.Visit{StartDate: "2022-09-09"}),
		visited("ESP", "Spain", domain.Europe, domain.Visit{StartDate: "2024-12-31"}),
		unvisited("PRT", "Portugal", domain.Europe),
	}

	s := stats.NewAggregator(nil).Calculate(countries)

	require.Len(t, s.Timeline, 3)
	assert.Equal(t, "2024-12-31", s.Timeline[0].Date)
	assert.Equal(t, "2024-05-01", s.Timeline[1].Date)
	assert.Equal(t, []string{"France", "Germany"}, s.Timeline[1].CountryNames)
	assert.Equal(t, []string{"FRA", "DEU"}, s.Timeline[1].CountryCodes)
	assert.Equal(t, "2022-09-09", s.Timeline[2].Date)
}

func TestCalculate_TimelineSkipsUnparsableDates(t *testing.T) {
	var logs bytes.Buffer
	agg := stats.NewAggregator(slog.New(slog.NewJSONHandler(&logs, nil)))
	countries := []domain.Country{
		visited("FRA", "France", domain.Europe, domain.Visit{StartDate: "sometime in 2019"}),
		visited("ITA", "Italy", domain.Europe, domain.Visit{StartDate: "2022-09-09"}),
	}

	s := agg.Calculate(countries)

	require.Len(t, s.Timeline, 1)
	assert.Equal(t, []string{"ITA"}, s.Timeline[0].CountryCodes)
	assert.Equal(t, 2, s.VisitedCount, "still counted as visited")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(logs.Bytes(), &entry))
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, "FRA", entry["code"])
}

func TestCalculate_VisitTypes(t *testing.T) {
	countries := []domain.Country{
		visited("FRA", "France", domain.Europe,
			domain.Visit{StartDate: "2024-01-01", VisitType: domain.VisitBusiness},
			domain.Visit{StartDate: "2024-02-01", VisitType: domain.VisitBusiness},
			domain.Visit{StartDate: "2024-03-01"},
		),
		visited("SGP", "Singapore", domain.Asia, domain.Visit{StartDate: "2024-04-01", VisitType: domain.VisitTransit}),
	}

	s := stats.NewAggregator(nil).Calculate(countries)

	assert.Equal(t, []domain.VisitTypeCount{
		{Type: domain.VisitBusiness, Label: "Business", Count: 2},
		{Type: domain.VisitLeisure, Label: "Leisure", Count: 0},
		{Type: domain.VisitTransit, Label: "Transit", Count: 1},
		{Type: domain.VisitOther, Label: "Other", Count: 1},
	}, s.VisitTypes)
}

func TestCalculate_ConcurrentCallsAgree(t *testing.T) {
	countries := []domain.Country{
		visited("FRA", "France", domain.Europe, domain.Visit{StartDate: "2024-01-01"}),
		unvisited("DEU", "Germany", domain.Europe),
	}
	agg := stats.NewAggregator(nil)
	want := agg.Calculate(countries)

	var wg sync.WaitGroup
	results := make([]domain.Statistics, 8)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = agg.Calculate(countries)
		}()
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}

func TestPrimaryCountries(t *testing.T) {
	countries := []domain.Country{
		unvisited("DNK", "Denmark", domain.Europe),
		{Code: "GRL", Name: "Greenland", Continent: domain.NorthAmerica, IsTerritory: true},
	}

	got := stats.PrimaryCountries(countries)

	require.Len(t, got, 1)
	assert.Equal(t, "DNK", got[0].Code)
}
