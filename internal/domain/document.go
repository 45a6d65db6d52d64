package domain

import "time"

// CurrentVersion is the schema revision written by this application.
const CurrentVersion = 2

// TravelData is the persisted document.
// Countries order is insignificant; LastUpdated is advisory and rewritten on
// every mutation.
type TravelData struct {
	Version     int       `json:"version"`
	Countries   []Country `json:"countries"`
	LastUpdated time.Time `json:"lastUpdated"`
}

// LegacyCountry is the pre-versioning country shape: a single visited flag and
// an optional date instead of a visit list. Kept only as a migration source.
type LegacyCountry struct {
	Code        string    `json:"code"`
	Name        string    `json:"name"`
	Visited     bool      `json:"visited"`
	VisitDate   string    `json:"visitDate,omitempty"`
	Continent   Continent `json:"continent"`
	IsTerritory bool      `json:"isTerritory,omitempty"`
}

// LegacyTravelData is the pre-versioning document. It has no version field.
type LegacyTravelData struct {
	Countries   []LegacyCountry `json:"countries"`
	LastUpdated time.Time       `json:"lastUpdated"`
}
