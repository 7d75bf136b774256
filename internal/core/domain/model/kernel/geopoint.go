package kernel

import (
	"errors"
	"fmt"
	"math"

	"haul/internal/pkg/errs"
	"haul/internal/pkg/guard"
)

// Latitude/longitude bounds in decimal degrees.
const (
	LatitudeMin  = -90.0
	LatitudeMax  = 90.0
	LongitudeMin = -180.0
	LongitudeMax = 180.0
)

// earthRadiusKm is the mean Earth radius used for great-circle distances.
const earthRadiusKm = 6371.0

// ErrGeoPointIsNotConstructed is returned when using an improperly initialized
// GeoPoint. GeoPoints must be created via NewGeoPoint.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError(
	"geo point must be created via NewGeoPoint constructor")

// GeoPoint is an immutable value object holding a geocoded coordinate pair in
// decimal degrees. It is the resolved form of a free-text pickup or destination
// address; resolution itself is done by the Geocoder collaborator.
//
// The zero value is invalid and fails validation.
//
// Example:
//
//	origin, err := kernel.NewGeoPoint(36.17, -115.14)
//	if err != nil {
//	    // handle out-of-range coordinates
//	}
type GeoPoint struct { //nolint:recvcheck //using for validation
	lat   float64
	lng   float64
	guard guard.ConstructorGuard
}

// NewGeoPoint creates a GeoPoint, validating that latitude is within
// [-90, 90] and longitude within [-180, 180].
func NewGeoPoint(lat float64, lng float64) (GeoPoint, error) {
	point := GeoPoint{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(point.setLat(lat), point.setLng(lng)); err != nil {
		return GeoPoint{}, err
	}

	return point, nil
}

// Validate checks that the GeoPoint was created via NewGeoPoint.
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

// String implements fmt.Stringer, formatting as "GeoPoint(lat,lng)".
func (p GeoPoint) String() string {
	return fmt.Sprintf("GeoPoint(%f,%f)", p.lat, p.lng)
}

// IsEqual compares two points by coordinates. Both points must be properly
// constructed for the comparison to succeed.
func (p GeoPoint) IsEqual(other GeoPoint) (bool, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return p.lat == other.lat && p.lng == other.lng, nil
}

// DistanceKm returns the great-circle (haversine) distance to other in
// kilometers. This is the trip distance recorded on a job at post time.
func (p GeoPoint) DistanceKm(other GeoPoint) (float64, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return 0, err
	}

	lat1 := p.lat * math.Pi / 180
	lat2 := other.lat * math.Pi / 180
	dLat := (other.lat - p.lat) * math.Pi / 180
	dLng := (other.lng - p.lng) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c, nil
}

func (p *GeoPoint) setLat(lat float64) error {
	if lat < LatitudeMin || lat > LatitudeMax {
		return errs.NewValueIsOutOfRangeError("latitude", lat, LatitudeMin, LatitudeMax)
	}
	p.lat = lat
	return nil
}

func (p *GeoPoint) setLng(lng float64) error {
	if lng < LongitudeMin || lng > LongitudeMax {
		return errs.NewValueIsOutOfRangeError("longitude", lng, LongitudeMin, LongitudeMax)
	}
	p.lng = lng
	return nil
}
