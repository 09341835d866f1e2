package service

import (
	"context"

	"agroalert/internal/domain/entity"
)

// AlertSource queries the remote alert service for one category and one place name.
type AlertSource interface {
	// FetchArea performs a single lookup. Any failure, including a non-2xx
	// response, is returned as an error wrapping ErrCandidateRequestFailed.
	FetchArea(ctx context.Context, category entity.AlertCategory, place string) (*entity.AlertReport, error)
}
