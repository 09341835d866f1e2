// Package geolocation provides Locator implementations for positions known up front.
package geolocation

import (
	"context"

	"agroalert/internal/domain/entity"
	domainerrors "agroalert/internal/domain/errors"
	"agroalert/internal/domain/service"
)

type staticLocator struct {
	coords entity.Coordinates
}

// NewStaticLocator returns a Locator that always yields coords.
func NewStaticLocator(coords entity.Coordinates) service.Locator {
	return &staticLocator{coords: coords}
}

func (l *staticLocator) Locate(ctx context.Context) (entity.Coordinates, error) {
	if err := ctx.Err(); err != nil {
		return entity.Coordinates{}, err
	}
	if err := l.coords.Validate(); err != nil {
		return entity.Coordinates{}, domainerrors.ErrLocationPermissionDenied.WrapMessage(err.Error())
	}

	return l.coords, nil
}

type deniedLocator struct{}

// NewDeniedLocator returns a Locator for callers that did not share a position.
func NewDeniedLocator() service.Locator {
	return deniedLocator{}
}

func (deniedLocator) Locate(context.Context) (entity.Coordinates, error) {
	return entity.Coordinates{}, domainerrors.ErrLocationPermissionDenied
}
