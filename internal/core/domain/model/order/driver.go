package order

import (
	"errors"

	"mealtrack/internal/pkg/errs"
	"mealtrack/internal/pkg/guard"
)

// ErrDriverIsNotConstructed is returned when a Driver was not created via
// NewDriver.
var ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver constructor")

// Driver identifies the person delivering an order. It is optional on the
// order and, in the normal flow, populated when the order goes out for
// delivery.
type Driver struct { //nolint:recvcheck //using for validation
	name    string
	phone   string
	vehicle string

	guard guard.ConstructorGuard
}

// NewDriver creates a Driver with validation. The name is required; phone and
// vehicle are optional display data.
func NewDriver(name, phone, vehicle string) (Driver, error) {
	if name == "" {
		return Driver{}, errs.NewValueIsRequiredError("driver name")
	}

	return Driver{
		name:    name,
		phone:   phone,
		vehicle: vehicle,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Driver was created via NewDriver.
func (d Driver) Validate() error {
	return d.guard.Validate(ErrDriverIsNotConstructed)
}

// Name returns the driver's display name.
func (d Driver) Name() string {
	return d.name
}

// Phone returns the driver's contact number, possibly empty.
func (d Driver) Phone() string {
	return d.phone
}

// Vehicle returns the driver's vehicle description, possibly empty.
func (d Driver) Vehicle() string {
	return d.vehicle
}
