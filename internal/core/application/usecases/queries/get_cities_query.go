package queries

import (
	"errors"

	"trix/internal/core/domain/model/kernel"
	"trix/internal/pkg/guard"
)

var ErrGetCitiesQueryIsNotConstructed = errors.New(
	"GetCitiesQuery must be created via NewGetCitiesQuery constructor",
)

// GetCitiesQuery requests the list of configured cities with their pricing
// zones.
type GetCitiesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetCitiesQuery creates a city listing request.
func NewGetCitiesQuery() GetCitiesQuery {
	return GetCitiesQuery{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetCitiesQuery) Validate() error {
	return q.guard.Validate(ErrGetCitiesQueryIsNotConstructed)
}

// GetCitiesQueryResponse is a single city read model with its zones.
type GetCitiesQueryResponse struct {
	ID     kernel.UUID
	Name   string
	Center kernel.GeoPoint
	Zones  []CityZoneResponse
}

// CityZoneResponse is one pricing zone of a city.
type CityZoneResponse struct {
	Kind  string
	Name  string
	Tiers []CityTierResponse
}

// CityTierResponse is one distance tier of a zone, in matching order.
type CityTierResponse struct {
	MinKm     float64
	MaxKm     float64
	BasePrice float64
}
