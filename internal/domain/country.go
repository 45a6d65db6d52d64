// Package domain contains the core data types for the travel tracker.
// This package has zero external dependencies and is imported by every other
// internal package (catalogue, ledger, migrate, stats, service, handler).
package domain

// Continent is one of the six regions countries are grouped under.
type Continent string

const (
	Africa       Continent = "Africa"
	Asia         Continent = "Asia"
	Europe       Continent = "Europe"
	NorthAmerica Continent = "North America"
	SouthAmerica Continent = "South America"
	Oceania      Continent = "Oceania"
)

// Continents lists every continent in canonical display order.
// Statistics are always emitted in this order, even for empty continents.
var Continents = []Continent{Africa, Asia, Europe, NorthAmerica, SouthAmerica, Oceania}

// Country is one trackable geographic entity (sovereign state or territory).
// A country is visited iff Visits is non-empty; there is no separate flag.
type Country struct {
	Code        string    `json:"code"`
	Name        string    `json:"name"`
	Continent   Continent `json:"continent"`
	IsTerritory bool      `json:"isTerritory,omitempty"`
	Visits      []Visit   `json:"visits"`
}
