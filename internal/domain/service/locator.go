// Package service declares the ports the use cases depend on.
package service

import (
	"context"

	"agroalert/internal/domain/entity"
)

// Locator yields the device position for one aggregation run.
// A denied or unavailable position is reported as an error.
type Locator interface {
	Locate(ctx context.Context) (entity.Coordinates, error)
}
