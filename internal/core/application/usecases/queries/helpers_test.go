package queries_test

import (
	"testing"

	"trix/internal/core/domain/model/kernel"
	"trix/internal/core/domain/model/pricing"

	"github.com/stretchr/testify/require"
)

func mustGeoPoint(t *testing.T, lat, lng float64) kernel.GeoPoint {
	t.Helper()
	p, err := kernel.NewGeoPoint(lat, lng)
	require.NoError(t, err)
	return p
}

func mustMoney(t *testing.T, amount float64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoney(amount)
	require.NoError(t, err)
	return m
}

func testCatalogCity(t *testing.T) pricing.City {
	t.Helper()
	cityID := kernel.NewUUID()

	internalTier, err := pricing.NewTier(kernel.NewUUID(), 0, 30, mustMoney(t, 25.00))
	require.NoError(t, err)
	internal, err := pricing.NewZone(kernel.NewUUID(), cityID, pricing.ZoneKindInternal,
		"Dubai Internal", []pricing.Tier{internalTier})
	require.NoError(t, err)

	externalTier, err := pricing.NewTier(kernel.NewUUID(), 0, 200, mustMoney(t, 125.00))
	require.NoError(t, err)
	external, err := pricing.NewZone(kernel.NewUUID(), cityID, pricing.ZoneKindExternal,
		"Dubai External", []pricing.Tier{externalTier})
	require.NoError(t, err)

	city, err := pricing.NewCity(cityID, "Dubai", mustGeoPoint(t, 25.2048, 55.2708),
		[]pricing.Zone{internal, external})
	require.NoError(t, err)
	return city
}

func testVehicleType(t *testing.T, multiplier float64) pricing.VehicleType {
	t.Helper()
	vt, err := pricing.NewVehicleType(kernel.NewUUID(), "van", 0, 1500, multiplier)
	require.NoError(t, err)
	return vt
}
