// Package geocode translates feature identifiers from a world-boundaries
// dataset into the application's 3-letter country codes.
//
// Resolution is an ordered list of strategies. The default order is:
//
//  1. exact-ID overrides (e.g. "304" is always Greenland),
//  2. the numeric ID table,
//  3. name-substring rules for entities with unstable or absent IDs.
//
// The first strategy that answers wins. Every strategy is pure.
package geocode

import (
	"strings"

	"golang.org/x/text/cases"
)

// MissingID is the sentinel the dataset uses for features without a stable ID.
const MissingID = "-99"

// Feature is the part of a boundary feature the resolver looks at.
type Feature struct {
	ID   string
	Name string
}

// Strategy resolves a feature to a code, or reports that it has no answer.
type Strategy interface {
	Resolve(f Feature) (string, bool)
}

// Resolver tries its strategies in order.
type Resolver struct {
	strategies []Strategy
}

// NewResolver returns a Resolver that tries strategies in the given order.
func NewResolver(strategies ...Strategy) *Resolver {
	return &Resolver{strategies: strategies}
}

// Default returns the standard resolver: overrides, then the numeric table,
// then name rules.
func Default() *Resolver {
	return NewResolver(
		Overrides(defaultOverrides),
		Table(numericTable),
		NameRules(defaultNameRules),
	)
}

// Resolve returns the code for f, or ("", false) if no strategy applies.
// It never panics, whatever the input.
func (r *Resolver) Resolve(f Feature) (string, bool) {
	for _, s := range r.strategies {
		if code, ok := s.Resolve(f); ok {
			return code, true
		}
	}
	return "", false
}

// Overrides matches exact IDs that must resolve to a specific code even though
// the table, or the dataset's own categorization, would say otherwise.
type Overrides map[string]string

// Resolve implements Strategy.
func (o Overrides) Resolve(f Feature) (string, bool) {
	code, ok := o[f.ID]
	return code, ok
}

// Table is the direct numeric-ID lookup. Empty and MissingID IDs are never
// looked up, so they fall through to name rules.
type Table map[string]string

// Resolve implements Strategy.
func (t Table) Resolve(f Feature) (string, bool) {
	if f.ID == "" || f.ID == MissingID {
		return "", false
	}
	code, ok := t[f.ID]
	return code, ok
}

// NameRule maps a feature name containing any of Substrings to Code.
// Substrings are matched case-insensitively.
type NameRule struct {
	Substrings []string
	Code       string
}

// NameRules is a priority-ordered list of name rules; the first match wins.
type NameRules []NameRule

// Resolve implements Strategy. Features whose ID resolves through the table are
// never reached here under the default order.
func (rules NameRules) Resolve(f Feature) (string, bool) {
	if f.Name == "" {
		return "", false
	}
	name := fold(f.Name)
	for _, rule := range rules {
		for _, sub := range rule.Substrings {
			if strings.Contains(name, fold(sub)) {
				return rule.Code, true
			}
		}
	}
	return "", false
}

// fold uses a fresh Caser per call; Casers are stateful.
func fold(s string) string {
	return cases.Fold().String(s)
}

var defaultOverrides = Overrides{
	"304": "GRL", // Greenland
	"732": "ESH", // Western Sahara
	"010": "ATA", // Antarctica
}

var defaultNameRules = []NameRule{
	{Substrings: []string{"kosovo"}, Code: "XKX"},
	{Substrings: []string{"somaliland"}, Code: "SOL"},
	{Substrings: []string{"n. cyprus", "northern cyprus"}, Code: "NCY"},
}
