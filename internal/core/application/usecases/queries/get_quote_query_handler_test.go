package queries_test

import (
	"testing"

	"trix/internal/core/application/usecases/queries"
	"trix/internal/core/domain/model/kernel"
	"trix/internal/core/domain/model/pricing"
	"trix/internal/core/domain/services"
	"trix/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetQuoteQueryHandler_SamePointIsInternalBaseTier(t *testing.T) {
	city := testCatalogCity(t)
	vt := testVehicleType(t, 1.0)

	catalog := new(MockPricingCatalog)
	catalog.On("GetVehicleType", mock.Anything, vt.ID()).Return(vt, nil)
	catalog.On("GetAllCities", mock.Anything).Return([]pricing.City{city}, nil)

	handler := queries.NewGetQuoteQueryHandler(catalog)

	point := mustGeoPoint(t, 25.2048, 55.2708)
	query, err := queries.NewGetQuoteQuery(point, point, vt.ID())
	require.NoError(t, err)

	resp, err := handler.Handle(t.Context(), query)
	require.NoError(t, err)

	assert.Zero(t, resp.DistanceKm)
	assert.True(t, resp.Internal)
	assert.Equal(t, "Dubai", resp.City)
	assert.Equal(t, "Dubai Internal", resp.Zone)
	assert.InDelta(t, 25.00, resp.Price, 0.001)
	catalog.AssertExpectations(t)
}

func TestGetQuoteQueryHandler_MultiplierScalesPrice(t *testing.T) {
	city := testCatalogCity(t)
	vt := testVehicleType(t, 1.5)

	catalog := new(MockPricingCatalog)
	catalog.On("GetVehicleType", mock.Anything, vt.ID()).Return(vt, nil)
	catalog.On("GetAllCities", mock.Anything).Return([]pricing.City{city}, nil)

	handler := queries.NewGetQuoteQueryHandler(catalog)

	query, err := queries.NewGetQuoteQuery(
		mustGeoPoint(t, 25.2048, 55.2708),
		mustGeoPoint(t, 25.1972, 55.2744),
		vt.ID(),
	)
	require.NoError(t, err)

	resp, err := handler.Handle(t.Context(), query)
	require.NoError(t, err)

	assert.True(t, resp.Internal)
	assert.InDelta(t, 37.50, resp.Price, 0.001)
}

func TestGetQuoteQueryHandler_UnknownVehicleTypeIsInvalid(t *testing.T) {
	unknownID := kernel.NewUUID()

	catalog := new(MockPricingCatalog)
	catalog.On("GetVehicleType", mock.Anything, unknownID).
		Return(pricing.VehicleType{}, errs.NewObjectNotFoundError("vehicle type", unknownID.String()))

	handler := queries.NewGetQuoteQueryHandler(catalog)

	query, err := queries.NewGetQuoteQuery(
		mustGeoPoint(t, 25.2048, 55.2708),
		mustGeoPoint(t, 25.1972, 55.2744),
		unknownID,
	)
	require.NoError(t, err)

	_, err = handler.Handle(t.Context(), query)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	catalog.AssertNotCalled(t, "GetAllCities", mock.Anything)
}

func TestGetQuoteQueryHandler_EmptyCatalogIsConfigurationError(t *testing.T) {
	vt := testVehicleType(t, 1.0)

	catalog := new(MockPricingCatalog)
	catalog.On("GetVehicleType", mock.Anything, vt.ID()).Return(vt, nil)
	catalog.On("GetAllCities", mock.Anything).Return([]pricing.City{}, nil)

	handler := queries.NewGetQuoteQueryHandler(catalog)

	query, err := queries.NewGetQuoteQuery(
		mustGeoPoint(t, 25.2048, 55.2708),
		mustGeoPoint(t, 25.1972, 55.2744),
		vt.ID(),
	)
	require.NoError(t, err)

	_, err = handler.Handle(t.Context(), query)
	require.ErrorIs(t, err, services.ErrNoCityConfigured)
}

func TestGetQuoteQueryHandler_UnconstructedQueryIsRejected(t *testing.T) {
	handler := queries.NewGetQuoteQueryHandler(new(MockPricingCatalog))

	_, err := handler.Handle(t.Context(), queries.GetQuoteQuery{})
	require.ErrorIs(t, err, queries.ErrGetQuoteQueryIsNotConstructed)
}
