package geocode

import (
	"context"
	"testing"
	"time"

	"agroalert/internal/domain/entity"
	domainerrors "agroalert/internal/domain/errors"
	mockSvc "agroalert/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var colombo = entity.Coordinates{Latitude: 6.9271, Longitude: 79.8612}

func TestCachedGeocoder_ReusesNearbyLookup(t *testing.T) {
	next := mockSvc.NewMockReverseGeocoder(t)
	place := &entity.Place{Candidates: entity.PlaceCandidates{"Colombo"}}
	next.EXPECT().ReverseGeocode(mock.Anything, colombo).Return(place, nil).Once()

	cache := NewCachedGeocoder(next, 250, time.Minute, 10)
	ctx := context.Background()

	got, err := cache.ReverseGeocode(ctx, colombo)
	require.NoError(t, err)
	assert.Same(t, place, got)

	// ~110 m north.
	nearby := entity.Coordinates{Latitude: 6.9281, Longitude: 79.8612}
	got, err = cache.ReverseGeocode(ctx, nearby)
	require.NoError(t, err)
	assert.Same(t, place, got)
}

func TestCachedGeocoder_MissOutsideRadius(t *testing.T) {
	next := mockSvc.NewMockReverseGeocoder(t)
	kandy := entity.Coordinates{Latitude: 7.2906, Longitude: 80.6337}
	next.EXPECT().ReverseGeocode(mock.Anything, colombo).
		Return(&entity.Place{Candidates: entity.PlaceCandidates{"Colombo"}}, nil).Once()
	next.EXPECT().ReverseGeocode(mock.Anything, kandy).
		Return(&entity.Place{Candidates: entity.PlaceCandidates{"Kandy"}}, nil).Once()

	cache := NewCachedGeocoder(next, 250, time.Minute, 10)

	_, err := cache.ReverseGeocode(context.Background(), colombo)
	require.NoError(t, err)
	got, err := cache.ReverseGeocode(context.Background(), kandy)
	require.NoError(t, err)
	assert.Equal(t, entity.PlaceCandidates{"Kandy"}, got.Candidates)
	assert.Equal(t, 2, cache.Len())
}

func TestCachedGeocoder_UsesGroundDistanceAtHighLatitude(t *testing.T) {
	next := mockSvc.NewMockReverseGeocoder(t)
	// At 60N a degree of longitude is half a degree of latitude on the ground.
	north := entity.Coordinates{Latitude: 60.0095, Longitude: 10} // ~1056 m away
	east := entity.Coordinates{Latitude: 60, Longitude: 10.015}   // ~834 m away
	eastPlace := &entity.Place{Candidates: entity.PlaceCandidates{"East"}}
	next.EXPECT().ReverseGeocode(mock.Anything, north).
		Return(&entity.Place{Candidates: entity.PlaceCandidates{"North"}}, nil).Once()
	next.EXPECT().ReverseGeocode(mock.Anything, east).Return(eastPlace, nil).Once()

	cache := NewCachedGeocoder(next, 1000, time.Minute, 10)
	ctx := context.Background()

	_, err := cache.ReverseGeocode(ctx, north)
	require.NoError(t, err)
	_, err = cache.ReverseGeocode(ctx, east)
	require.NoError(t, err)

	got, err := cache.ReverseGeocode(ctx, entity.Coordinates{Latitude: 60, Longitude: 10})
	require.NoError(t, err)
	assert.Same(t, eastPlace, got)
}

func TestCachedGeocoder_ExpiredEntryIsRefreshed(t *testing.T) {
	next := mockSvc.NewMockReverseGeocoder(t)
	next.EXPECT().ReverseGeocode(mock.Anything, colombo).
		Return(&entity.Place{Candidates: entity.PlaceCandidates{"Colombo"}}, nil).Twice()

	now := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
	cache := NewCachedGeocoder(next, 250, time.Minute, 10)
	cache.now = func() time.Time { return now }

	_, err := cache.ReverseGeocode(context.Background(), colombo)
	require.NoError(t, err)

	now = now.Add(2 * time.Minute)
	_, err = cache.ReverseGeocode(context.Background(), colombo)
	require.NoError(t, err)
	assert.Equal(t, 1, cache.Len())
}

func TestCachedGeocoder_EvictsOldestWhenFull(t *testing.T) {
	next := mockSvc.NewMockReverseGeocoder(t)
	next.EXPECT().ReverseGeocode(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, coords entity.Coordinates) (*entity.Place, error) {
			return &entity.Place{Candidates: entity.PlaceCandidates{coords.String()}}, nil
		})

	cache := NewCachedGeocoder(next, 10, time.Hour, 2)
	for _, lat := range []float64{1, 2, 3} {
		_, err := cache.ReverseGeocode(context.Background(), entity.Coordinates{Latitude: lat, Longitude: 1})
		require.NoError(t, err)
	}

	assert.Equal(t, 2, cache.Len())
	_, ok := cache.lookup(entity.Coordinates{Latitude: 1, Longitude: 1}.Point())
	assert.False(t, ok)
	_, ok = cache.lookup(entity.Coordinates{Latitude: 3, Longitude: 1}.Point())
	assert.True(t, ok)
}

func TestCachedGeocoder_DoesNotCacheFailuresOrEmptyPlaces(t *testing.T) {
	next := mockSvc.NewMockReverseGeocoder(t)
	next.EXPECT().ReverseGeocode(mock.Anything, colombo).Return(nil, domainerrors.ErrGeoLookupFailed).Once()
	next.EXPECT().ReverseGeocode(mock.Anything, colombo).Return(&entity.Place{DisplayName: "Sea"}, nil).Once()

	cache := NewCachedGeocoder(next, 250, time.Minute, 10)

	_, err := cache.ReverseGeocode(context.Background(), colombo)
	require.Error(t, err)
	place, err := cache.ReverseGeocode(context.Background(), colombo)
	require.NoError(t, err)
	assert.True(t, place.IsEmpty())
	assert.Zero(t, cache.Len())
}
