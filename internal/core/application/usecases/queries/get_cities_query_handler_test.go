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

func TestGetCitiesQueryHandler_ReturnsZonesAndTiers(t *testing.T) {
	city := testCatalogCity(t)

	catalog := new(MockPricingCatalog)
	catalog.On("GetAllCities", mock.Anything).Return([]pricing.City{city}, nil)

	handler := queries.NewGetCitiesQueryHandler(catalog)

	resp, err := handler.Handle(t.Context(), queries.NewGetCitiesQuery())
	require.NoError(t, err)
	require.Len(t, resp, 1)

	assert.Equal(t, city.ID(), resp[0].ID)
	assert.Equal(t, "Dubai", resp[0].Name)
	assert.InDelta(t, 25.2048, resp[0].Center.Lat(), 0.000001)

	require.Len(t, resp[0].Zones, 2)
	assert.Equal(t, "Internal", resp[0].Zones[0].Kind)
	require.Len(t, resp[0].Zones[0].Tiers, 1)
	assert.InDelta(t, 30, resp[0].Zones[0].Tiers[0].MaxKm, 0.001)
	assert.InDelta(t, 25.00, resp[0].Zones[0].Tiers[0].BasePrice, 0.001)
	assert.Equal(t, "External", resp[0].Zones[1].Kind)
	assert.InDelta(t, 125.00, resp[0].Zones[1].Tiers[0].BasePrice, 0.001)
}

func TestGetCitiesQueryHandler_EmptyCatalog(t *testing.T) {
	catalog := new(MockPricingCatalog)
	catalog.On("GetAllCities", mock.Anything).Return([]pricing.City{}, nil)

	handler := queries.NewGetCitiesQueryHandler(catalog)

	resp, err := handler.Handle(t.Context(), queries.NewGetCitiesQuery())
	require.NoError(t, err)
	assert.NotNil(t, resp)
	assert.Empty(t, resp)
}

func TestGetCitiesQueryHandler_CatalogFailurePropagates(t *testing.T) {
	catalogErr := errors.New("connection refused")

	catalog := new(MockPricingCatalog)
	catalog.On("GetAllCities", mock.Anything).Return(nil, catalogErr)

	handler := queries.NewGetCitiesQueryHandler(catalog)

	_, err := handler.Handle(t.Context(), queries.NewGetCitiesQuery())
	require.ErrorIs(t, err, catalogErr)
}

func TestGetCitiesQueryHandler_UnconstructedQueryIsRejected(t *testing.T) {
	handler := queries.NewGetCitiesQueryHandler(new(MockPricingCatalog))

	_, err := handler.Handle(t.Context(), queries.GetCitiesQuery{})
	require.ErrorIs(t, err, queries.ErrGetCitiesQueryIsNotConstructed)
}
