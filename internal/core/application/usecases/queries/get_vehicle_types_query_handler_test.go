package queries_test

import (
	"errors"
	"testing"

	"trix/internal/core/application/usecases/queries"
	"trix/internal/core/domain/model/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetVehicleTypesQueryHandler_ReturnsCatalogOrder(t *testing.T) {
	bike := testVehicleType(t, 0.8)
	van := testVehicleType(t, 1.0)

	catalog := new(MockPricingCatalog)
	catalog.On("GetAllVehicleTypes", mock.Anything).
		Return([]pricing.VehicleType{bike, van}, nil)

	handler := queries.NewGetVehicleTypesQueryHandler(catalog)

	resp, err := handler.Handle(t.Context(), queries.NewGetVehicleTypesQuery())
	require.NoError(t, err)
	require.Len(t, resp, 2)

	assert.Equal(t, bike.ID(), resp[0].ID)
	assert.InDelta(t, 0.8, resp[0].PricingMultiplier, 0.001)
	assert.Equal(t, van.ID(), resp[1].ID)
	assert.InDelta(t, 1500.0, resp[1].WeightMaxKg, 0.001)
}

func TestGetVehicleTypesQueryHandler_EmptyCatalog(t *testing.T) {
	catalog := new(MockPricingCatalog)
	catalog.On("GetAllVehicleTypes", mock.Anything).
		Return([]pricing.VehicleType{}, nil)

	handler := queries.NewGetVehicleTypesQueryHandler(catalog)

	resp, err := handler.Handle(t.Context(), queries.NewGetVehicleTypesQuery())
	require.NoError(t, err)
	assert.NotNil(t, resp)
	assert.Empty(t, resp)
}

func TestGetVehicleTypesQueryHandler_CatalogFailurePropagates(t *testing.T) {
	catalogErr := errors.New("connection refused")

	catalog := new(MockPricingCatalog)
	catalog.On("GetAllVehicleTypes", mock.Anything).Return(nil, catalogErr)

	handler := queries.NewGetVehicleTypesQueryHandler(catalog)

	_, err := handler.Handle(t.Context(), queries.NewGetVehicleTypesQuery())
	require.ErrorIs(t, err, catalogErr)
}

func TestGetVehicleTypesQueryHandler_UnconstructedQueryIsRejected(t *testing.T) {
	handler := queries.NewGetVehicleTypesQueryHandler(new(MockPricingCatalog))

	_, err := handler.Handle(t.Context(), queries.GetVehicleTypesQuery{})
	require.ErrorIs(t, err, queries.ErrGetVehicleTypesQueryIsNotConstructed)
}
