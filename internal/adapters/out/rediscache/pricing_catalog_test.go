package rediscache_test

import (
	"context"
	"log/slog"
	"testing"

	"trix/internal/adapters/out/rediscache"
	"trix/internal/core/domain/model/kernel"
	"trix/internal/core/domain/model/pricing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockCatalog struct {
	mock.Mock
}

func (m *mockCatalog) GetAllCities(ctx context.Context) ([]pricing.City, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]pricing.City), args.Error(1)
}

func (m *mockCatalog) GetAllVehicleTypes(ctx context.Context) ([]pricing.VehicleType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]pricing.VehicleType), args.Error(1)
}

func (m *mockCatalog) GetVehicleType(ctx context.Context, id kernel.UUID) (pricing.VehicleType, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(pricing.VehicleType), args.Error(1)
}

func newTestCache(t *mockCatalog, addr string) *rediscache.CachingPricingCatalog {
	client := redis.NewClient(&redis.Options{Addr: addr})
	return rediscache.NewCachingPricingCatalog(t, client, slog.New(slog.DiscardHandler))
}

func testCity(t *testing.T) pricing.City {
	t.Helper()
	cityID := kernel.NewUUID()

	basePrice, err := kernel.NewMoney(25.00)
	require.NoError(t, err)
	tier, err := pricing.NewTier(kernel.NewUUID(), 0, 30, basePrice)
	require.NoError(t, err)
	zone, err := pricing.NewZone(kernel.NewUUID(), cityID, pricing.ZoneKindInternal,
		"Dubai Internal", []pricing.Tier{tier})
	require.NoError(t, err)

	center, err := kernel.NewGeoPoint(25.2048, 55.2708)
	require.NoError(t, err)
	city, err := pricing.NewCity(cityID, "Dubai", center, []pricing.Zone{zone})
	require.NoError(t, err)
	return city
}

func testVT(t *testing.T) pricing.VehicleType {
	t.Helper()
	vt, err := pricing.NewVehicleType(kernel.NewUUID(), "van", 0, 1500, 1.0)
	require.NoError(t, err)
	return vt
}

func TestCachingPricingCatalog_SecondCityReadSkipsInner(t *testing.T) {
	mr := miniredis.RunT(t)
	city := testCity(t)

	inner := new(mockCatalog)
	inner.On("GetAllCities", mock.Anything).Return([]pricing.City{city}, nil).Once()

	cache := newTestCache(inner, mr.Addr())

	first, err := cache.GetAllCities(t.Context())
	require.NoError(t, err)
	require.Len(t, first, 1)

	second, err := cache.GetAllCities(t.Context())
	require.NoError(t, err)
	require.Len(t, second, 1)

	assert.True(t, city.IsEqual(second[0]))
	assert.Equal(t, "Dubai", second[0].Name())
	zone, ok := second[0].ZoneOf(pricing.ZoneKindInternal)
	require.True(t, ok)
	require.Len(t, zone.Tiers(), 1)
	assert.InDelta(t, 25.00, zone.Tiers()[0].BasePrice().Amount(), 0.001)

	inner.AssertNumberOfCalls(t, "GetAllCities", 1)
}

func TestCachingPricingCatalog_GetVehicleTypeServedFromCachedList(t *testing.T) {
	mr := miniredis.RunT(t)
	vt := testVT(t)

	inner := new(mockCatalog)
	inner.On("GetAllVehicleTypes", mock.Anything).Return([]pricing.VehicleType{vt}, nil).Once()

	cache := newTestCache(inner, mr.Addr())

	_, err := cache.GetAllVehicleTypes(t.Context())
	require.NoError(t, err)

	got, err := cache.GetVehicleType(t.Context(), vt.ID())
	require.NoError(t, err)
	assert.Equal(t, vt.ID(), got.ID())
	inner.AssertNotCalled(t, "GetVehicleType", mock.Anything, mock.Anything)
}

func TestCachingPricingCatalog_RedisDownFallsThrough(t *testing.T) {
	mr := miniredis.RunT(t)
	city := testCity(t)

	inner := new(mockCatalog)
	inner.On("GetAllCities", mock.Anything).Return([]pricing.City{city}, nil)

	cache := newTestCache(inner, mr.Addr())
	mr.Close()

	cities, err := cache.GetAllCities(t.Context())
	require.NoError(t, err)
	require.Len(t, cities, 1)
	inner.AssertNumberOfCalls(t, "GetAllCities", 1)
}

func TestCachingPricingCatalog_CorruptEntryFallsThrough(t *testing.T) {
	mr := miniredis.RunT(t)
	city := testCity(t)

	require.NoError(t, mr.Set("pricing:cities", "not json"))

	inner := new(mockCatalog)
	inner.On("GetAllCities", mock.Anything).Return([]pricing.City{city}, nil).Once()

	cache := newTestCache(inner, mr.Addr())

	cities, err := cache.GetAllCities(t.Context())
	require.NoError(t, err)
	require.Len(t, cities, 1)
	inner.AssertExpectations(t)
}

func TestCachingPricingCatalog_InvalidateForcesReload(t *testing.T) {
	mr := miniredis.RunT(t)
	city := testCity(t)

	inner := new(mockCatalog)
	inner.On("GetAllCities", mock.Anything).Return([]pricing.City{city}, nil).Twice()

	cache := newTestCache(inner, mr.Addr())

	_, err := cache.GetAllCities(t.Context())
	require.NoError(t, err)

	require.NoError(t, cache.Invalidate(t.Context()))

	_, err = cache.GetAllCities(t.Context())
	require.NoError(t, err)
	inner.AssertExpectations(t)
}
