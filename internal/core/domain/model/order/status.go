package order

import (
	"fmt"

	"mealtrack/internal/pkg/errs"
)

// Status represents the lifecycle state of a meal order.
// It implements a state machine with a fixed, totally ordered progression:
//
//	Pending → Confirmed → Preparing → Cooking → QualityCheck →
//	Packaging → ReadyForPickup → OutForDelivery → Delivered
//
// Cancelled is an absorbing terminal state reachable from any non-terminal
// status; it is never produced by the forward progression.
//
// Status is a value object that validates state transitions and provides the
// canonical per-status message, progress percentage, and display color so that
// presentation and business logic cannot drift out of sync.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status assigned when an order is created.
	Pending

	// Confirmed indicates the order has been accepted by the kitchen.
	Confirmed

	// Preparing indicates ingredients are being gathered.
	Preparing

	// Cooking indicates the meal is being prepared.
	Cooking

	// QualityCheck indicates the finished meal is being inspected.
	QualityCheck

	// Packaging indicates the meal is being packaged for delivery.
	Packaging

	// ReadyForPickup indicates the order is waiting for a driver.
	ReadyForPickup

	// OutForDelivery indicates the order is on its way to the customer.
	OutForDelivery

	// Delivered indicates the order reached the customer.
	// This is a terminal state with no further transitions.
	Delivered

	// Cancelled indicates the order was cancelled before delivery.
	// This is a terminal state reachable from any non-terminal status.
	Cancelled
)

// EstimatedMinutesOutForDelivery is the minutes-to-delivery estimate attached
// to the update announcing the OutForDelivery transition. No other transition
// carries an estimate.
const EstimatedMinutesOutForDelivery = 15

// progression is the fixed forward sequence of live statuses.
// Cancelled is intentionally absent: it is only reachable via Cancel.
func progression() []Status {
	return []Status{
		Pending,
		Confirmed,
		Preparing,
		Cooking,
		QualityCheck,
		Packaging,
		ReadyForPickup,
		OutForDelivery,
		Delivered,
	}
}

// getStatusStrings returns the wire names for all statuses, including Unknown.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "unknown",
		Pending:        "pending",
		Confirmed:      "confirmed",
		Preparing:      "preparing",
		Cooking:        "cooking",
		QualityCheck:   "quality_check",
		Packaging:      "packaging",
		ReadyForPickup: "ready_for_pickup",
		OutForDelivery: "out_for_delivery",
		Delivered:      "delivered",
		Cancelled:      "cancelled",
	}
}

// getValidStatusStrings returns the wire names of only valid statuses.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:        "pending",
		Confirmed:      "confirmed",
		Preparing:      "preparing",
		Cooking:        "cooking",
		QualityCheck:   "quality_check",
		Packaging:      "packaging",
		ReadyForPickup: "ready_for_pickup",
		OutForDelivery: "out_for_delivery",
		Delivered:      "delivered",
		Cancelled:      "cancelled",
	}
}

// getStatusMessages returns the fixed human-readable message announced for
// each status. The literals are part of the external contract and must not
// vary between transitions.
func getStatusMessages() map[Status]string {
	//nolint:exhaustive // Unknown has no message
	return map[Status]string{
		Pending:        "Your order is being processed",
		Confirmed:      "Your order has been confirmed and is being prepared",
		Preparing:      "Our chefs are gathering fresh ingredients for your meal",
		Cooking:        "Your meal is being freshly prepared by our expert chefs",
		QualityCheck:   "Final quality check to ensure perfection",
		Packaging:      "Your meal is being carefully packaged for delivery",
		ReadyForPickup: "Your order is ready and waiting for pickup",
		OutForDelivery: "Your order is on its way to you!",
		Delivered:      "Your order has been delivered. Enjoy your meal!",
		Cancelled:      "Your order has been cancelled",
	}
}

// getStatusProgress returns the canonical completion percentage per status.
func getStatusProgress() map[Status]int {
	//nolint:exhaustive // Unknown has no progress
	return map[Status]int{
		Pending:        5,
		Confirmed:      15,
		Preparing:      30,
		Cooking:        45,
		QualityCheck:   60,
		Packaging:      70,
		ReadyForPickup: 80,
		OutForDelivery: 90,
		Delivered:      100,
		Cancelled:      0,
	}
}

// getStatusColors returns the canonical display color per status.
func getStatusColors() map[Status]string {
	//nolint:exhaustive // Unknown falls back to gray
	return map[Status]string{
		Pending:        "#F59E0B",
		Confirmed:      "#3B82F6",
		Preparing:      "#8B5CF6",
		Cooking:        "#F97316",
		QualityCheck:   "#06B6D4",
		Packaging:      "#6366F1",
		ReadyForPickup: "#10B981",
		OutForDelivery: "#2563EB",
		Delivered:      "#22C55E",
		Cancelled:      "#EF4444",
	}
}

// Validate checks if the Status value is valid.
// All statuses except Unknown are valid; Unknown (0) and out-of-range values
// produce an error. Used to verify Status values from external sources such
// as the database or API before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the snake_case wire name of the status, e.g. "quality_check".
// Invalid values render as "unknown". Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// StatusFromString parses a wire name such as "out_for_delivery" back into a
// Status. Returns an error for unrecognized names.
func StatusFromString(name string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == name {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%q is not a valid status name", name))
}

// Message returns the fixed human-readable message for the status.
// Returns an empty string for invalid values.
func (s Status) Message() string {
	return getStatusMessages()[s]
}

// Progress returns the canonical completion percentage for the status.
// Returns 0 for invalid values and for Cancelled.
func (s Status) Progress() int {
	return getStatusProgress()[s]
}

// Color returns the canonical display color for the status.
// Invalid values fall back to a neutral gray.
func (s Status) Color() string {
	if color, ok := getStatusColors()[s]; ok {
		return color
	}
	return "#9CA3AF"
}

// IsTerminal reports whether the status admits no further transitions.
// Delivered and Cancelled are terminal.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// Next returns the status immediately after s in the fixed forward
// progression. The second return value is false when s has no successor:
// Delivered is the end of the sequence, Cancelled is not part of it, and
// invalid values have no position in it.
func (s Status) Next() (Status, bool) {
	seq := progression()
	for i, status := range seq {
		if status == s {
			if i == len(seq)-1 {
				return Unknown, false
			}
			return seq[i+1], true
		}
	}
	return Unknown, false
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions: any valid non-terminal status -> Cancelled.
// Terminal statuses (Delivered, Cancelled) and invalid values cannot be
// cancelled.
//
// Returns:
//   - (Cancelled, nil) on valid transition
//   - (0, error) if the transition is not allowed from the current status
func (s Status) Cancel() (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}

	if s.IsTerminal() {
		return 0, errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a valid status to cancel", s.String()))
	}

	return Cancelled, nil
}
