package kernel_test

import (
	"testing"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustGeoPoint(t *testing.T, lat, lng float64) kernel.GeoPoint {
	t.Helper()
	p, err := kernel.NewGeoPoint(lat, lng)
	require.NoError(t, err)
	return p
}

func TestNewGeoPoint(t *testing.T) {
	tests := []struct {
		name    string
		lat     float64
		lng     float64
		wantErr bool
	}{
		{name: "london", lat: 51.5074, lng: -0.1278},
		{name: "bounds", lat: kernel.LatitudeMax, lng: kernel.LongitudeMin},
		{name: "latitude too large", lat: 90.5, lng: 0, wantErr: true},
		{name: "longitude too small", lat: 0, lng: -180.01, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := kernel.NewGeoPoint(tt.lat, tt.lng)

			if tt.wantErr {
				require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
				assert.Zero(t, p)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.lat, p.Latitude(), 1e-9)
			assert.InDelta(t, tt.lng, p.Longitude(), 1e-9)
		})
	}
}

func TestGeoPoint_DistanceKm(t *testing.T) {
	london := mustGeoPoint(t, 51.5074, -0.1278)
	paris := mustGeoPoint(t, 48.8566, 2.3522)

	t.Run("london to paris", func(t *testing.T) {
		d, err := london.DistanceKm(paris)
		require.NoError(t, err)
		assert.InDelta(t, 343.5, d, 1.0)
	})

	t.Run("same point", func(t *testing.T) {
		d, err := london.DistanceKm(london)
		require.NoError(t, err)
		assert.InDelta(t, 0, d, 1e-9)
	})

	t.Run("zero value", func(t *testing.T) {
		_, err := london.DistanceKm(kernel.GeoPoint{})
		require.ErrorIs(t, err, kernel.ErrGeoPointIsNotConstructed)
	})
}
