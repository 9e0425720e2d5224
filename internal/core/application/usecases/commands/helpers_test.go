package commands_test

import (
	"log/slog"
	"testing"

	"trix/internal/core/domain/model/driver"
	"trix/internal/core/domain/model/kernel"
	"trix/internal/core/domain/model/pricing"
	"trix/internal/core/domain/model/shipment"

	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

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

func testPendingShipment(t *testing.T, customerID kernel.UUID, weightKg float64) *shipment.Shipment {
	t.Helper()
	s, err := shipment.NewShipment(
		kernel.NewUUID(),
		customerID,
		kernel.NewUUID(),
		mustGeoPoint(t, 25.2048, 55.2708),
		mustGeoPoint(t, 25.1972, 55.2744),
		"Sheikh Zayed Road, Dubai",
		"Downtown Dubai",
		weightKg,
		1.0,
		mustMoney(t, 25.00),
	)
	require.NoError(t, err)
	return s
}

func testDriver(t *testing.T, status driver.Status, maxWeightKg float64) *driver.Driver {
	t.Helper()
	vehicle, err := driver.NewVehicle(kernel.NewUUID(), kernel.NewUUID(), "D-72011", maxWeightKg)
	require.NoError(t, err)
	d, err := driver.RestoreDriver(kernel.NewUUID(), "Ahmed", "token-1", true, status, &vehicle)
	require.NoError(t, err)
	return d
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
