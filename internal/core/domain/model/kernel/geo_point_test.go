package kernel_test

import (
	"testing"

	"trix/internal/core/domain/model/kernel"
	"trix/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeoPoint(t *testing.T) {
	t.Run("valid_coordinates", func(t *testing.T) {
		point, err := kernel.NewGeoPoint(25.2048, 55.2708)

		require.NoError(t, err)
		assert.InDelta(t, 25.2048, point.Lat(), 1e-9)
		assert.InDelta(t, 55.2708, point.Lng(), 1e-9)
		require.NoError(t, point.Validate())
	})

	t.Run("boundary_coordinates", func(t *testing.T) {
		for _, coords := range [][2]float64{
			{kernel.MinLatitude, kernel.MinLongitude},
			{kernel.MaxLatitude, kernel.MaxLongitude},
			{0, 0},
		} {
			_, err := kernel.NewGeoPoint(coords[0], coords[1])
			require.NoError(t, err)
		}
	})

	t.Run("latitude_out_of_range", func(t *testing.T) {
		_, err := kernel.NewGeoPoint(91, 55.2708)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

		_, err = kernel.NewGeoPoint(-90.0001, 55.2708)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("longitude_out_of_range", func(t *testing.T) {
		_, err := kernel.NewGeoPoint(25.2048, 180.5)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("both_out_of_range_reports_both", func(t *testing.T) {
		_, err := kernel.NewGeoPoint(100, -200)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "latitude")
		assert.Contains(t, err.Error(), "longitude")
	})
}

func TestGeoPoint_Validate(t *testing.T) {
	t.Run("zero_value_is_invalid", func(t *testing.T) {
		var point kernel.GeoPoint
		require.ErrorIs(t, point.Validate(), errs.ErrValueIsRequired)
	})
}

func TestGeoPoint_IsEqual(t *testing.T) {
	t.Run("equal_points", func(t *testing.T) {
		a, _ := kernel.NewGeoPoint(25.2048, 55.2708)
		b, _ := kernel.NewGeoPoint(25.2048, 55.2708)

		equal, err := a.IsEqual(b)
		require.NoError(t, err)
		assert.True(t, equal)
	})

	t.Run("different_points", func(t *testing.T) {
		a, _ := kernel.NewGeoPoint(25.2048, 55.2708)
		b, _ := kernel.NewGeoPoint(24.4539, 54.3773)

		equal, err := a.IsEqual(b)
		require.NoError(t, err)
		assert.False(t, equal)
	})

	t.Run("not_constructed_point_fails", func(t *testing.T) {
		a, _ := kernel.NewGeoPoint(25.2048, 55.2708)
		var b kernel.GeoPoint

		_, err := a.IsEqual(b)
		require.Error(t, err)
	})
}

func TestGeoPoint_DistanceTo(t *testing.T) {
	dubai, _ := kernel.NewGeoPoint(25.2048, 55.2708)
	abuDhabi, _ := kernel.NewGeoPoint(24.4539, 54.3773)

	t.Run("distance_to_self_is_zero", func(t *testing.T) {
		km, err := dubai.DistanceTo(dubai)
		require.NoError(t, err)
		assert.InDelta(t, 0, km, 1e-9)
	})

	t.Run("distance_is_symmetric", func(t *testing.T) {
		there, err := dubai.DistanceTo(abuDhabi)
		require.NoError(t, err)
		back, err := abuDhabi.DistanceTo(dubai)
		require.NoError(t, err)
		assert.InDelta(t, there, back, 1e-9)
	})

	t.Run("dubai_to_abu_dhabi_is_about_121_km", func(t *testing.T) {
		km, err := dubai.DistanceTo(abuDhabi)
		require.NoError(t, err)
		assert.InDelta(t, 121, km, 2)
	})

	t.Run("not_constructed_point_fails", func(t *testing.T) {
		var zero kernel.GeoPoint
		_, err := dubai.DistanceTo(zero)
		require.Error(t, err)
	})
}
