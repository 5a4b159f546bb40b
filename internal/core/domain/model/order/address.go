package order

import (
	"errors"
	"fmt"

	"mealtrack/internal/core/domain/model/kernel"
	"mealtrack/internal/pkg/errs"
	"mealtrack/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when an Address was not created via
// NewAddress.
var ErrAddressIsNotConstructed = errors.New("Address must be created via NewAddress constructor")

// Address is the delivery destination of an order: street, city, state, and
// zip code, plus the resolved geographic coordinate. The tracking core treats
// the text fields as opaque data; the coordinate is carried for consumers
// that render maps.
type Address struct { //nolint:recvcheck //using for validation
	street string
	city   string
	state  string
	zip    string
	point  kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewAddress creates an Address with validation. All text fields are required
// and the coordinate must be a constructed GeoPoint.
func NewAddress(street, city, state, zip string, point kernel.GeoPoint) (Address, error) {
	address := Address{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		address.setField(&address.street, "street", street),
		address.setField(&address.city, "city", city),
		address.setField(&address.state, "state", state),
		address.setField(&address.zip, "zip", zip),
		address.setPoint(point),
	); err != nil {
		return Address{}, err
	}

	return address, nil
}

// Validate ensures the Address was created via NewAddress.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// Street returns the street line.
func (a Address) Street() string {
	return a.street
}

// City returns the city.
func (a Address) City() string {
	return a.city
}

// State returns the state or region.
func (a Address) State() string {
	return a.state
}

// Zip returns the postal code.
func (a Address) Zip() string {
	return a.zip
}

// Point returns the resolved geographic coordinate of the address.
func (a Address) Point() kernel.GeoPoint {
	return a.point
}

// String returns a single-line rendering of the address.
func (a Address) String() string {
	return fmt.Sprintf("%s, %s, %s %s", a.street, a.city, a.state, a.zip)
}

func (a *Address) setField(target *string, name, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(name)
	}
	*target = value
	return nil
}

func (a *Address) setPoint(point kernel.GeoPoint) error {
	if err := point.Validate(); err != nil {
		return err
	}
	a.point = point
	return nil
}
