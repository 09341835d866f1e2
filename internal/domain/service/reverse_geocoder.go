package service

import (
	"context"

	"agroalert/internal/domain/entity"
)

// ReverseGeocoder converts coordinates into place name candidates.
type ReverseGeocoder interface {
	// ReverseGeocode resolves coordinates into a Place. A place without usable
	// address components is returned with empty candidates and no error.
	ReverseGeocode(ctx context.Context, coords entity.Coordinates) (*entity.Place, error)
}
