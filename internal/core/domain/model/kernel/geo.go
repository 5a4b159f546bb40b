package kernel

import (
	"errors"
	"fmt"

	"mealtrack/internal/pkg/errs"
	"mealtrack/internal/pkg/guard"
)

const (
	// LatitudeMin is the minimum valid latitude in degrees.
	LatitudeMin = -90.0
	// LatitudeMax is the maximum valid latitude in degrees.
	LatitudeMax = 90.0
	// LongitudeMin is the minimum valid longitude in degrees.
	LongitudeMin = -180.0
	// LongitudeMax is the maximum valid longitude in degrees.
	LongitudeMax = 180.0
)

// ErrGeoPointIsNotConstructed is returned when attempting to use an improperly
// initialized GeoPoint. GeoPoints must be created via NewGeoPoint.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError(
	"geo point must be created via NewGeoPoint constructor")

// GeoPoint represents a geographic coordinate with validated latitude and
// longitude. It is an immutable value object; the zero value is invalid and
// fails validation.
//
// GeoPoint is the location carried by order tracking updates: the delivery
// destination as well as the simulated courier positions reported while an
// order is out for delivery.
//
// Example:
//
//	point, err := kernel.NewGeoPoint(40.7128, -74.0060)
//	if err != nil {
//	    // handle validation error
//	}
//	fmt.Println(point) // GeoPoint(40.712800,-74.006000)
type GeoPoint struct { //nolint:recvcheck //using for validation
	latitude  float64
	longitude float64
	guard     guard.ConstructorGuard
}

// NewGeoPoint creates a GeoPoint with the given coordinates. Latitude must be
// within [-90, 90] and longitude within [-180, 180]; out-of-range values
// produce a validation error.
func NewGeoPoint(latitude float64, longitude float64) (GeoPoint, error) {
	point := GeoPoint{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(point.setLatitude(latitude), point.setLongitude(longitude)); err != nil {
		return GeoPoint{}, err
	}

	return point, nil
}

// Validate checks that the GeoPoint was created via NewGeoPoint.
// The zero value fails with ErrGeoPointIsNotConstructed.
func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}

// Latitude returns the latitude in degrees.
func (p GeoPoint) Latitude() float64 {
	return p.latitude
}

// Longitude returns the longitude in degrees.
func (p GeoPoint) Longitude() float64 {
	return p.longitude
}

// String returns "GeoPoint(lat,lon)" with six decimal places.
// Implements fmt.Stringer.
func (p GeoPoint) String() string {
	return fmt.Sprintf("GeoPoint(%.6f,%.6f)", p.latitude, p.longitude)
}

// IsEqual compares two geo points for coordinate equality. Both points must be
// properly constructed for the comparison to succeed.
func (p GeoPoint) IsEqual(other GeoPoint) (bool, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return p == other, nil
}

// Shift returns a new GeoPoint displaced by the given deltas in degrees.
// The result is validated against the coordinate bounds, so shifting a point
// off the map returns an error instead of a corrupt coordinate.
func (p GeoPoint) Shift(deltaLatitude float64, deltaLongitude float64) (GeoPoint, error) {
	if err := p.Validate(); err != nil {
		return GeoPoint{}, err
	}

	return NewGeoPoint(p.latitude+deltaLatitude, p.longitude+deltaLongitude)
}

// setLatitude sets the latitude with validation.
// Pointer receiver is intentional: private setters keep construction-time
// validation self-encapsulated.
func (p *GeoPoint) setLatitude(latitude float64) error {
	if latitude < LatitudeMin || latitude > LatitudeMax {
		return errs.NewValueIsOutOfRangeError("latitude", latitude, LatitudeMin, LatitudeMax)
	}

	p.latitude = latitude
	return nil
}

// setLongitude sets the longitude with validation.
// Pointer receiver is intentional: private setters keep construction-time
// validation self-encapsulated.
func (p *GeoPoint) setLongitude(longitude float64) error {
	if longitude < LongitudeMin || longitude > LongitudeMax {
		return errs.NewValueIsOutOfRangeError("longitude", longitude, LongitudeMin, LongitudeMax)
	}

	p.longitude = longitude
	return nil
}
