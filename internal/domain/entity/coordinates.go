// Package entity contains the core business objects of the project.
package entity

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
)

// Coordinates is a device position obtained once per aggregation run.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// NewCoordinates builds Coordinates and checks they are on the globe.
func NewCoordinates(latitude, longitude float64) (Coordinates, error) {
	coords := Coordinates{Latitude: latitude, Longitude: longitude}
	if err := coords.Validate(); err != nil {
		return Coordinates{}, err
	}

	return coords, nil
}

// Validate reports whether latitude and longitude are within WGS84 bounds.
func (c Coordinates) Validate() error {
	if math.IsNaN(c.Latitude) || math.IsNaN(c.Longitude) {
		return fmt.Errorf("coordinates must be numbers, got %f, %f", c.Latitude, c.Longitude)
	}
	if c.Latitude < -90 || c.Latitude > 90 {
		return fmt.Errorf("latitude %f out of range [-90, 90]", c.Latitude)
	}
	if c.Longitude < -180 || c.Longitude > 180 {
		return fmt.Errorf("longitude %f out of range [-180, 180]", c.Longitude)
	}

	return nil
}

// Point returns the coordinates as an orb.Point (longitude first).
func (c Coordinates) Point() orb.Point {
	return orb.Point{c.Longitude, c.Latitude}
}

// String formats the coordinates with 4 decimals, e.g. "6.9271, 79.8612".
func (c Coordinates) String() string {
	return fmt.Sprintf("%.4f, %.4f", c.Latitude, c.Longitude)
}
