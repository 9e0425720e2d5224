package kernel

import (
	"errors"
	"fmt"
	"math"

	"trix/internal/pkg/errs"
	"trix/internal/pkg/guard"
)

const (
	// MinLatitude is the southernmost valid latitude in decimal degrees.
	MinLatitude = -90.0
	// MaxLatitude is the northernmost valid latitude in decimal degrees.
	MaxLatitude = 90.0
	// MinLongitude is the westernmost valid longitude in decimal degrees.
	MinLongitude = -180.0
	// MaxLongitude is the easternmost valid longitude in decimal degrees.
	MaxLongitude = 180.0

	// earthRadiusKm is the mean Earth radius used by the haversine formula.
	earthRadiusKm = 6371.0
)

// ErrGeoPointIsNotConstructed is returned when attempting to use an improperly
// initialized GeoPoint. GeoPoints must be created via the NewGeoPoint constructor.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError(
	"geo point must be created via NewGeoPoint constructor")

// GeoPoint represents a geographic position as a (latitude, longitude) pair
// in decimal degrees. It is an immutable value object: coordinates are
// validated on construction and never change afterwards.
//
// Example:
//
//	dubai, err := kernel.NewGeoPoint(25.2048, 55.2708)
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(dubai) // Output: GeoPoint(25.2048,55.2708)
type GeoPoint struct { //nolint:recvcheck //using for validation
	lat   float64
	lng   float64
	guard guard.ConstructorGuard
}

// NewGeoPoint creates a GeoPoint from latitude and longitude in decimal degrees.
// Latitude must be within [-90, 90] and longitude within [-180, 180].
// Returns an aggregated validation error if either coordinate is out of bounds.
func NewGeoPoint(lat float64, lng float64) (GeoPoint, error) {
	point := GeoPoint{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(point.setLat(lat), point.setLng(lng)); err != nil {
		return GeoPoint{}, err
	}

	return point, nil
}

// Validate checks that the GeoPoint was created through its constructor.
// The zero value fails this check.
func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}

// Lat returns the latitude in decimal degrees.
func (p GeoPoint) Lat() float64 {
	return p.lat
}

// Lng returns the longitude in decimal degrees.
func (p GeoPoint) Lng() float64 {
	return p.lng
}

// String implements fmt.Stringer in the form "GeoPoint(lat,lng)".
func (p GeoPoint) String() string {
	return fmt.Sprintf("GeoPoint(%g,%g)", p.lat, p.lng)
}

// IsEqual compares two geo points for exact coordinate equality.
// Both points must be properly constructed.
func (p GeoPoint) IsEqual(other GeoPoint) (bool, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return p.lat == other.lat && p.lng == other.lng, nil
}

// DistanceTo calculates the great-circle distance to another point in
// kilometers using the haversine formula on a spherical Earth of radius
// 6371 km. The distance is symmetric and zero for identical points.
// Both points must be properly constructed.
//
// Example:
//
//	dubai, _ := kernel.NewGeoPoint(25.2048, 55.2708)
//	abuDhabi, _ := kernel.NewGeoPoint(24.4539, 54.3773)
//	km, _ := dubai.DistanceTo(abuDhabi) // km ≈ 121
func (p GeoPoint) DistanceTo(other GeoPoint) (float64, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return 0, err
	}

	latDelta := degToRad(other.lat - p.lat)
	lngDelta := degToRad(other.lng - p.lng)

	a := math.Sin(latDelta/2)*math.Sin(latDelta/2) +
		math.Cos(degToRad(p.lat))*math.Cos(degToRad(other.lat))*
			math.Sin(lngDelta/2)*math.Sin(lngDelta/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c, nil
}

// setLat sets the latitude with range validation.
// Pointer receiver is used intentionally for self-encapsulated construction.
func (p *GeoPoint) setLat(lat float64) error {
	if lat < MinLatitude || lat > MaxLatitude {
		return errs.NewValueIsOutOfRangeError("latitude", lat, MinLatitude, MaxLatitude)
	}

	p.lat = lat
	return nil
}

// setLng sets the longitude with range validation.
// Pointer receiver is used intentionally for self-encapsulated construction.
func (p *GeoPoint) setLng(lng float64) error {
	if lng < MinLongitude || lng > MaxLongitude {
		return errs.NewValueIsOutOfRangeError("longitude", lng, MinLongitude, MaxLongitude)
	}

	p.lng = lng
	return nil
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}
