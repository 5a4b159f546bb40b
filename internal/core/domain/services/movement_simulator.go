package services

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"mealtrack/internal/core/domain/model/order"
)

// ErrNoPriorLocation is returned when an order has no location recorded yet,
// so there is nothing for the simulation to move. Callers treat this as a
// skip rather than a failure: an order that has not entered the delivery
// phase simply produces no live updates.
var ErrNoPriorLocation = errors.New("order has no prior location to simulate from")

// maxCoordinateDrift bounds the per-tick perturbation of each coordinate
// axis, in degrees. Roughly a hundred meters per tick at mid latitudes.
const maxCoordinateDrift = 0.001

// simulatedAddress is the address every simulated position reports. The
// simulation does not reverse-geocode; consumers show this placeholder.
const simulatedAddress = "Moving towards destination"

// fallbackDriverName is used in the simulated message when no driver has
// been assigned to the order yet.
const fallbackDriverName = "Your driver"

// MovementSimulator is a domain service that produces simulated live-tracking
// updates for an order in the delivery phase.
//
// Each tick it takes the order's last known location, shifts it by a small
// random delta on both axes, and records the result on the order as a
// location update with a generic driver-progress message.
//
// Business rules:
//   - the order must have a prior location; otherwise ErrNoPriorLocation
//   - terminal orders produce no updates
//   - simulated updates never carry a delivery estimate
//
// Example usage:
//
//	simulator := services.NewMovementSimulator()
//	update, err := simulator.NextLocation(trackedOrder, time.Now())
//	if errors.Is(err, services.ErrNoPriorLocation) {
//	    // Order has not reported a position yet, nothing to do.
//	    return
//	}
type MovementSimulator struct {
	rng *rand.Rand
}

// NewMovementSimulator creates a MovementSimulator seeded from the current
// time.
func NewMovementSimulator() MovementSimulator {
	return NewMovementSimulatorFromSource(rand.NewSource(time.Now().UnixNano()))
}

// NewMovementSimulatorFromSource creates a MovementSimulator backed by the
// given random source. Tests pass a fixed seed for reproducible drift.
func NewMovementSimulatorFromSource(source rand.Source) MovementSimulator {
	return MovementSimulator{rng: rand.New(source)}
}

// NextLocation advances the simulated position of the order by one tick and
// appends the resulting location update to the order's history.
//
// Returns:
//   - (*order.Update, nil): the appended location update
//   - (nil, nil): the order is terminal; no update is produced
//   - (nil, ErrNoPriorLocation): no location has been recorded yet
//   - (nil, error): the order is invalid or the shifted coordinate fell
//     outside the valid range
func (s MovementSimulator) NextLocation(trackedOrder *order.Order, now time.Time) (*order.Update, error) {
	if err := trackedOrder.Validate(); err != nil {
		return nil, err
	}

	if trackedOrder.Status().IsTerminal() {
		return nil, nil
	}

	last := trackedOrder.LastKnownLocation()
	if last == nil {
		return nil, ErrNoPriorLocation
	}

	shifted, err := last.Point().Shift(s.drift(), s.drift())
	if err != nil {
		return nil, err
	}

	point, err := order.NewTrackingPoint(shifted, simulatedAddress, now)
	if err != nil {
		return nil, err
	}

	return trackedOrder.RecordLocation(point, s.progressMessage(trackedOrder), now)
}

// drift returns a random delta in [-maxCoordinateDrift, maxCoordinateDrift].
func (s MovementSimulator) drift() float64 {
	return (s.rng.Float64()*2 - 1) * maxCoordinateDrift
}

func (s MovementSimulator) progressMessage(trackedOrder *order.Order) string {
	name := fallbackDriverName
	if driver := trackedOrder.Driver(); driver != nil {
		name = driver.Name()
	}
	return fmt.Sprintf("%s is getting closer to your location", name)
}
