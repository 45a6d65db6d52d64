package domain

// Statistics is the read-only summary derived from a country set.
// It is flat and serializable; presentation code and the report renderer
// consume it directly.
type Statistics struct {
	TotalCountries    int              `json:"totalCountries"`
	VisitedCount      int              `json:"visitedCount"`
	VisitedPercentage float64          `json:"visitedPercentage"`
	ContinentStats    []ContinentStats `json:"continentStats"`
	Timeline          []TimelineEntry  `json:"timeline"`
	TotalTrips        int              `json:"totalTrips"`
	TotalDaysTraveled int              `json:"totalDaysTraveled"`
	AverageTripLength float64          `json:"averageTripLength"`
	VisitTypes        []VisitTypeCount `json:"visitTypes"`
}

// ContinentStats is the visited breakdown for one continent.
type ContinentStats struct {
	Continent  Continent `json:"continent"`
	Total      int       `json:"total"`
	Visited    int       `json:"visited"`
	Percentage float64   `json:"percentage"`
}

// TimelineEntry groups every country whose most recent visit started on Date.
// CountryNames and CountryCodes are parallel slices.
type TimelineEntry struct {
	Date         string   `json:"date"`
	CountryNames []string `json:"countryNames"`
	CountryCodes []string `json:"countryCodes"`
}

// VisitTypeCount is the number of visits recorded with one visit type.
// Type is empty for visits with no type; Label is always set.
type VisitTypeCount struct {
	Type  VisitType `json:"type"`
	Label string    `json:"label"`
	Count int       `json:"count"`
}
