package queries_test

import (
	"context"

	"trix/internal/core/domain/model/kernel"
	"trix/internal/core/domain/model/pricing"

	"github.com/stretchr/testify/mock"
)

type MockPricingCatalog struct {
	mock.Mock
}

func (m *MockPricingCatalog) GetAllCities(ctx context.Context) ([]pricing.City, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]pricing.City), args.Error(1)
}

func (m *MockPricingCatalog) GetAllVehicleTypes(ctx context.Context) ([]pricing.VehicleType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]pricing.VehicleType), args.Error(1)
}

func (m *MockPricingCatalog) GetVehicleType(ctx context.Context, id kernel.UUID) (pricing.VehicleType, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(pricing.VehicleType), args.Error(1)
}
