package services_test

import (
	"testing"

	"trix/internal/core/domain/model/driver"
	"trix/internal/core/domain/model/kernel"
	"trix/internal/core/domain/model/shipment"
	"trix/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newShipmentWithWeight(t *testing.T, weightKg float64) *shipment.Shipment {
	t.Helper()
	s, err := shipment.NewShipment(
		kernel.NewUUID(),
		kernel.NewUUID(),
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

func newCandidate(t *testing.T, verified bool, status driver.Status, maxWeightKg float64) *driver.Driver {
	t.Helper()
	vehicle, err := driver.NewVehicle(kernel.NewUUID(), kernel.NewUUID(), "D-12345", maxWeightKg)
	require.NoError(t, err)
	d, err := driver.RestoreDriver(kernel.NewUUID(), "Ahmed", "token", verified, status, &vehicle)
	require.NoError(t, err)
	return d
}

func TestDispatcher_EligibleDrivers(t *testing.T) {
	dispatcher := services.NewDispatcher()

	t.Run("filters_on_verification_status_and_capacity", func(t *testing.T) {
		s := newShipmentWithWeight(t, 300)

		eligible1 := newCandidate(t, true, driver.StatusAvailable, 500)
		eligible2 := newCandidate(t, true, driver.StatusAvailable, 300)
		unverified := newCandidate(t, false, driver.StatusAvailable, 500)
		busy := newCandidate(t, true, driver.StatusBusy, 500)
		offline := newCandidate(t, true, driver.StatusOffline, 500)
		tooSmall := newCandidate(t, true, driver.StatusAvailable, 299)

		eligible, err := dispatcher.EligibleDrivers(s,
			[]*driver.Driver{unverified, eligible1, busy, tooSmall, eligible2, offline}, 0)

		require.NoError(t, err)
		require.Len(t, eligible, 2)
		assert.True(t, eligible[0].ID().IsEqual(eligible1.ID()), "candidate order preserved")
		assert.True(t, eligible[1].ID().IsEqual(eligible2.ID()))
	})

	t.Run("driver_without_vehicle_is_ineligible", func(t *testing.T) {
		s := newShipmentWithWeight(t, 1)
		noVehicle, err := driver.RestoreDriver(kernel.NewUUID(), "Omar", "token",
			true, driver.StatusAvailable, nil)
		require.NoError(t, err)

		_, err = dispatcher.EligibleDrivers(s, []*driver.Driver{noVehicle}, 0)
		require.ErrorIs(t, err, services.ErrNoEligibleDrivers)
	})

	t.Run("overweight_shipment_has_no_takers", func(t *testing.T) {
		s := newShipmentWithWeight(t, 600)
		candidate := newCandidate(t, true, driver.StatusAvailable, 500)

		_, err := dispatcher.EligibleDrivers(s, []*driver.Driver{candidate}, 0)
		require.ErrorIs(t, err, services.ErrNoEligibleDrivers)
	})

	t.Run("no_candidates", func(t *testing.T) {
		s := newShipmentWithWeight(t, 10)
		_, err := dispatcher.EligibleDrivers(s, nil, 0)
		require.ErrorIs(t, err, services.ErrNoEligibleDrivers)
	})

	t.Run("radius_is_not_applied", func(t *testing.T) {
		s := newShipmentWithWeight(t, 10)
		candidate := newCandidate(t, true, driver.StatusAvailable, 500)

		narrow, err := dispatcher.EligibleDrivers(s, []*driver.Driver{candidate}, 0.001)
		require.NoError(t, err)
		wide, err := dispatcher.EligibleDrivers(s, []*driver.Driver{candidate}, 10000)
		require.NoError(t, err)

		assert.Len(t, narrow, 1)
		assert.Len(t, wide, 1)
	})
}
