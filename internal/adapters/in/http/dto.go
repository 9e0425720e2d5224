package http

import (
	"time"

	"trix/internal/core/application/usecases/queries"
	"trix/internal/core/domain/model/shipment"
)

// geoPointDTO is a coordinate pair on the wire.
type geoPointDTO struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// quoteRequest asks for the price of a prospective shipment.
type quoteRequest struct {
	Origin        geoPointDTO `json:"origin"`
	Destination   geoPointDTO `json:"destination"`
	VehicleTypeID string      `json:"vehicleTypeId"`
}

// quoteResponse is the priced quote.
type quoteResponse struct {
	DistanceKm float64 `json:"distanceKm"`
	Internal   bool    `json:"internal"`
	City       string  `json:"city"`
	Zone       string  `json:"zone"`
	Price      float64 `json:"price"`
}

// createShipmentRequest creates a new shipment for the acting customer.
type createShipmentRequest struct {
	VehicleTypeID      string      `json:"vehicleTypeId"`
	Origin             geoPointDTO `json:"origin"`
	Destination        geoPointDTO `json:"destination"`
	OriginAddress      string      `json:"originAddress"`
	DestinationAddress string      `json:"destinationAddress"`
	WeightKg           float64     `json:"weightKg"`
	RadiusKm           float64     `json:"radiusKm"`
}

// updateStatusRequest moves a shipment along its progression.
type updateStatusRequest struct {
	Status string `json:"status"`
}

// shipmentResponse is the shipment representation returned by every
// endpoint that yields a shipment.
type shipmentResponse struct {
	ID                 string      `json:"id"`
	CustomerID         string      `json:"customerId"`
	DriverID           *string     `json:"driverId,omitempty"`
	VehicleTypeID      string      `json:"vehicleTypeId"`
	Origin             geoPointDTO `json:"origin"`
	Destination        geoPointDTO `json:"destination"`
	OriginAddress      string      `json:"originAddress"`
	DestinationAddress string      `json:"destinationAddress"`
	WeightKg           float64     `json:"weightKg"`
	DistanceKm         float64     `json:"distanceKm"`
	Price              float64     `json:"price"`
	Status             string      `json:"status"`
	CreatedAt          *time.Time  `json:"createdAt,omitempty"`
}

// createShipmentResponse adds the broadcast outcome to the shipment.
type createShipmentResponse struct {
	shipmentResponse
	NotifiedDrivers int `json:"notifiedDrivers"`
}

// vehicleTypeResponse is a single vehicle type.
type vehicleTypeResponse struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	WeightMinKg       float64 `json:"weightMinKg"`
	WeightMaxKg       float64 `json:"weightMaxKg"`
	PricingMultiplier float64 `json:"pricingMultiplier"`
}

// cityResponse is a single city with its pricing zones.
type cityResponse struct {
	ID     string             `json:"id"`
	Name   string             `json:"name"`
	Center geoPointDTO        `json:"center"`
	Zones  []cityZoneResponse `json:"zones"`
}

type cityZoneResponse struct {
	Kind  string             `json:"kind"`
	Name  string             `json:"name"`
	Tiers []cityTierResponse `json:"tiers"`
}

type cityTierResponse struct {
	MinKm     float64 `json:"minKm"`
	MaxKm     float64 `json:"maxKm"`
	BasePrice float64 `json:"basePrice"`
}

// cityFromReadModel flattens the city read model onto the wire shape.
func cityFromReadModel(city queries.GetCitiesQueryResponse) cityResponse {
	resp := cityResponse{
		ID:     city.ID.String(),
		Name:   city.Name,
		Center: geoPointDTO{Lat: city.Center.Lat(), Lng: city.Center.Lng()},
		Zones:  make([]cityZoneResponse, 0, len(city.Zones)),
	}

	for _, zone := range city.Zones {
		zoneResp := cityZoneResponse{
			Kind:  zone.Kind,
			Name:  zone.Name,
			Tiers: make([]cityTierResponse, 0, len(zone.Tiers)),
		}
		for _, tier := range zone.Tiers {
			zoneResp.Tiers = append(zoneResp.Tiers, cityTierResponse{
				MinKm:     tier.MinKm,
				MaxKm:     tier.MaxKm,
				BasePrice: tier.BasePrice,
			})
		}
		resp.Zones = append(resp.Zones, zoneResp)
	}

	return resp
}

// errorResponse is the uniform error body.
type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func shipmentFromAggregate(s *shipment.Shipment) shipmentResponse {
	var driverID *string
	if id := s.DriverID(); id != nil {
		v := id.String()
		driverID = &v
	}

	return shipmentResponse{
		ID:            s.ID().String(),
		CustomerID:    s.CustomerID().String(),
		DriverID:      driverID,
		VehicleTypeID: s.VehicleTypeID().String(),
		Origin: geoPointDTO{
			Lat: s.Origin().Lat(),
			Lng: s.Origin().Lng(),
		},
		Destination: geoPointDTO{
			Lat: s.Destination().Lat(),
			Lng: s.Destination().Lng(),
		},
		OriginAddress:      s.OriginAddress(),
		DestinationAddress: s.DestinationAddress(),
		WeightKg:           s.WeightKg(),
		DistanceKm:         s.DistanceKm(),
		Price:              s.Price().Amount(),
		Status:             s.Status().String(),
	}
}

func shipmentFromReadModel(r queries.ShipmentQueryResponse) shipmentResponse {
	var driverID *string
	if r.DriverID != nil {
		v := r.DriverID.String()
		driverID = &v
	}

	createdAt := r.CreatedAt

	return shipmentResponse{
		ID:            r.ID.String(),
		CustomerID:    r.CustomerID.String(),
		DriverID:      driverID,
		VehicleTypeID: r.VehicleTypeID.String(),
		Origin: geoPointDTO{
			Lat: r.Origin.Lat(),
			Lng: r.Origin.Lng(),
		},
		Destination: geoPointDTO{
			Lat: r.Destination.Lat(),
			Lng: r.Destination.Lng(),
		},
		OriginAddress:      r.OriginAddress,
		DestinationAddress: r.DestinationAddress,
		WeightKg:           r.WeightKg,
		DistanceKm:         r.DistanceKm,
		Price:              r.Price,
		Status:             r.Status,
		CreatedAt:          &createdAt,
	}
}
