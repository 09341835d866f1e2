package entity

import "strings"

// PlaceCandidates is an ordered list of place names, most specific first.
// The order defines the fallback search order for alert lookups.
type PlaceCandidates []string

// Place is the result of reverse geocoding a pair of coordinates.
type Place struct {
	Candidates  PlaceCandidates `json:"candidates"`
	DisplayName string          `json:"display_name,omitempty"`
}

// IsEmpty reports whether no usable candidate was resolved.
func (p *Place) IsEmpty() bool {
	return p == nil || len(p.Candidates) == 0
}

// Label returns a human readable name for the place: candidates joined with
// ", ", or the geocoder's display name when no components were found.
func (p *Place) Label() string {
	if p == nil {
		return ""
	}
	if len(p.Candidates) > 0 {
		return strings.Join(p.Candidates, ", ")
	}

	return p.DisplayName
}
