package usecase

import (
	"context"

	"agroalert/internal/domain/service"
)

// ScanResult summarizes a published scan.
type ScanResult struct {
	Published int `json:"published"`
	Failed    int `json:"failed"`
}

// DispatchResult summarizes the processing of one scan event.
type DispatchResult struct {
	Skipped      bool `json:"skipped"`
	Stored       int  `json:"stored"`
	Pushed       int  `json:"pushed"`
	TokenInvalid bool `json:"token_invalid"`
}

// ScanUsecase defines the scheduled alert scan use cases
type ScanUsecase interface {
	// ScanSubscriptions publishes one scan event per active subscription.
	ScanSubscriptions(ctx context.Context) (*ScanResult, error)

	// ProcessScanEvent runs the aggregation for one subscription, stores the
	// notifications and pushes the actionable ones to the device.
	ProcessScanEvent(ctx context.Context, event *service.ScanEvent) (*DispatchResult, error)
}
