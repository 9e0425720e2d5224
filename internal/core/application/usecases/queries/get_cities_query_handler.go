package queries

import (
	"context"

	"trix/internal/core/ports"
)

// GetCitiesQueryHandler lists the configured cities with their zones and
// tiers. Reads through the pricing catalog so the cache layer, when
// present, serves the list without touching the database.
type GetCitiesQueryHandler struct {
	catalog ports.PricingCatalog
}

// NewGetCitiesQueryHandler creates a handler for city queries.
func NewGetCitiesQueryHandler(catalog ports.PricingCatalog) GetCitiesQueryHandler {
	return GetCitiesQueryHandler{catalog: catalog}
}

// Handle returns every configured city in catalog order.
func (h GetCitiesQueryHandler) Handle(
	ctx context.Context,
	query GetCitiesQuery,
) ([]GetCitiesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	cities, err := h.catalog.GetAllCities(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]GetCitiesQueryResponse, 0, len(cities))
	for _, city := range cities {
		resp := GetCitiesQueryResponse{
			ID:     city.ID(),
			Name:   city.Name(),
			Center: city.Center(),
			Zones:  make([]CityZoneResponse, 0, len(city.Zones())),
		}

		for _, zone := range city.Zones() {
			zoneResp := CityZoneResponse{
				Kind:  zone.Kind().String(),
				Name:  zone.Name(),
				Tiers: make([]CityTierResponse, 0, len(zone.Tiers())),
			}

			for _, tier := range zone.Tiers() {
				zoneResp.Tiers = append(zoneResp.Tiers, CityTierResponse{
					MinKm:     tier.MinKm(),
					MaxKm:     tier.MaxKm(),
					BasePrice: tier.BasePrice().Amount(),
				})
			}

			resp.Zones = append(resp.Zones, zoneResp)
		}

		responses = append(responses, resp)
	}

	return responses, nil
}
