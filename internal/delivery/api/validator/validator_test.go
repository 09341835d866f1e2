package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type subscribeRequest struct {
	FCMToken  string   `json:"fcm_token" validate:"required"`
	Platform  string   `json:"platform" validate:"required,oneof=ios android"`
	Latitude  *float64 `json:"latitude" validate:"required,gte=-90,lte=90"`
	Internal  string   `json:"-"`
	PageLimit int      `query:"limit" validate:"min=0"`
}

func TestCustomValidator_Validate(t *testing.T) {
	v := New()
	lat := 6.9271
	outOfRange := 91.0

	tests := []struct {
		name    string
		req     subscribeRequest
		wantErr string
	}{
		{
			name: "valid",
			req:  subscribeRequest{FCMToken: "tok", Platform: "ios", Latitude: &lat},
		},
		{
			name:    "missing fields use json names",
			req:     subscribeRequest{Platform: "ios"},
			wantErr: "fcm_token is required; latitude is required",
		},
		{
			name:    "oneof",
			req:     subscribeRequest{FCMToken: "tok", Platform: "web", Latitude: &lat},
			wantErr: "platform must be one of: ios android",
		},
		{
			name:    "range",
			req:     subscribeRequest{FCMToken: "tok", Platform: "android", Latitude: &outOfRange},
			wantErr: "latitude must be at most 90",
		},
		{
			name:    "query tag name",
			req:     subscribeRequest{FCMToken: "tok", Platform: "android", Latitude: &lat, PageLimit: -1},
			wantErr: "limit must be at least 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.req)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}
