package order

import (
	"errors"
	"fmt"
	"time"

	"mealtrack/internal/core/domain/model/kernel"
	"mealtrack/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
)

// Order represents a customer purchase tracked through the fixed delivery
// lifecycle. It is the aggregate root; its updates slice is the authoritative,
// append-only history of everything that happened to the order.
//
// Order maintains these invariants:
//   - Must have a valid unique identifier and at least one item
//   - updates is never empty: creation seeds it with the Pending record
//   - updates only grows, and its timestamps are appended in order
//   - status only moves forward along the fixed sequence, or to Cancelled
//   - once Delivered or Cancelled, every mutation becomes a silent no-op
//
// The total amount is computed once at creation by the caller and is not
// recomputed from items here. The estimated delivery time is likewise fixed at
// creation and never adjusted as the status advances; consumers formatting it
// should be aware the displayed remaining time can drift from reality.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// status is the current state in the order lifecycle
	status Status

	// items are the purchased line items (never empty)
	items []Item

	// totalAmount is the charge computed at creation time
	totalAmount float64

	// createdAt is the creation timestamp
	createdAt time.Time

	// estimatedDeliveryTime is fixed at creation and not adjusted afterwards
	estimatedDeliveryTime time.Time

	// address is the delivery destination
	address Address

	// driver is the assigned driver (nil until out for delivery)
	driver *Driver

	// updates is the append-only history of the order
	updates []*Update

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewOrder creates a new Order in Pending status and seeds its history with
// the Pending update. This is the only way to create a fresh order.
//
// Parameters:
//   - id: Unique identifier for the order (must be valid UUID)
//   - items: Purchased line items (must be non-empty, each constructed via NewItem)
//   - totalAmount: Charge computed by the caller (must not be negative)
//   - address: Delivery destination
//   - createdAt: Creation timestamp; also the timestamp of the seed update
//   - estimatedDeliveryTime: Fixed delivery estimate, must be after createdAt
//
// Note: rejecting empty items is stricter than the storefront behavior this
// service descends from, which left the check to callers. The constraint is
// enforced here deliberately; see DESIGN.md.
func NewOrder(
	id kernel.UUID,
	items []Item,
	totalAmount float64,
	address Address,
	createdAt time.Time,
	estimatedDeliveryTime time.Time,
) (*Order, error) {
	order := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setItems(items),
		order.setTotalAmount(totalAmount),
		order.setAddress(address),
		order.setTimestamps(createdAt, estimatedDeliveryTime),
	); err != nil {
		return nil, err
	}

	seed, err := NewStatusUpdate(kernel.NewUUID(), id, Pending, createdAt)
	if err != nil {
		return nil, err
	}
	order.updates = []*Update{seed}

	return order, nil
}

// RestoreOrder reconstructs an Order from persistence, including its status,
// optional driver, and full update history. The history must be non-empty:
// an order without its seed update is corrupt.
func RestoreOrder(
	id kernel.UUID,
	status Status,
	items []Item,
	totalAmount float64,
	address Address,
	createdAt time.Time,
	estimatedDeliveryTime time.Time,
	driver *Driver,
	updates []*Update,
) (*Order, error) {
	order := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setStatus(status),
		order.setItems(items),
		order.setTotalAmount(totalAmount),
		order.setAddress(address),
		order.setTimestamps(createdAt, estimatedDeliveryTime),
		order.setDriver(driver),
		order.setUpdates(updates),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. Call when reconstructing orders from persistence.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Items returns a copy of the order's line items.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// TotalAmount returns the charge computed at creation time.
func (o *Order) TotalAmount() float64 {
	return o.totalAmount
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// EstimatedDeliveryTime returns the delivery estimate fixed at creation.
func (o *Order) EstimatedDeliveryTime() time.Time {
	return o.estimatedDeliveryTime
}

// Address returns the delivery destination.
func (o *Order) Address() Address {
	return o.address
}

// Driver returns the assigned driver, or nil if none is assigned.
func (o *Order) Driver() *Driver {
	return o.driver
}

// Updates returns a copy of the order's append-only history, oldest first.
// The Update records themselves are immutable.
func (o *Order) Updates() []*Update {
	updates := make([]*Update, len(o.updates))
	copy(updates, o.updates)
	return updates
}

// LatestUpdate returns the most recent update of the order.
// The history is never empty for a constructed order.
func (o *Order) LatestUpdate() *Update {
	return o.updates[len(o.updates)-1]
}

// LastKnownLocation returns the tracking point of the most recent update that
// carries one, or nil when no update has reported a location yet. The live
// tracking simulation requires a prior location to perturb; before the order
// enters the delivery phase there is nothing to report.
func (o *Order) LastKnownLocation() *TrackingPoint {
	for i := len(o.updates) - 1; i >= 0; i-- {
		if location := o.updates[i].Location(); location != nil {
			return location
		}
	}
	return nil
}

// Advance moves the order exactly one step forward along the fixed status
// sequence and appends the update announcing the new status.
//
// The appended update carries the fixed per-status message and the given
// timestamp. Only when the new status is OutForDelivery it also carries the
// minutes-to-delivery estimate.
//
// Returns:
//   - (*Update, nil): the appended record on a successful transition
//   - (nil, nil): silent no-op when the order is already terminal or its
//     status has no successor; terminal orders never regress or re-advance
//   - (nil, error): the order was not properly constructed
//
// From the caller's point of view the transition is atomic: the status change
// and the history append happen together or not at all.
func (o *Order) Advance(now time.Time) (*Update, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	if o.status.IsTerminal() {
		return nil, nil
	}

	nextStatus, ok := o.status.Next()
	if !ok {
		return nil, nil
	}

	update, err := NewStatusUpdate(kernel.NewUUID(), o.id, nextStatus, now)
	if err != nil {
		return nil, err
	}

	o.updates = append(o.updates, update)
	o.status = nextStatus
	return update, nil
}

// Cancel moves the order to the Cancelled terminal state from any non-terminal
// status and appends the cancellation update.
//
// Returns:
//   - (*Update, nil): the appended record on a successful cancellation
//   - (nil, nil): silent no-op when the order is already terminal
//   - (nil, error): the order was not properly constructed
func (o *Order) Cancel(now time.Time) (*Update, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	if o.status.IsTerminal() {
		return nil, nil
	}

	newStatus, err := o.status.Cancel()
	if err != nil {
		return nil, err
	}

	update, err := NewStatusUpdate(kernel.NewUUID(), o.id, newStatus, now)
	if err != nil {
		return nil, err
	}

	o.updates = append(o.updates, update)
	o.status = newStatus
	return update, nil
}

// RecordLocation appends a location-only update without changing the order's
// status. Used by the live tracking simulation to report synthesized driver
// positions.
//
// Returns:
//   - (*Update, nil): the appended record
//   - (nil, nil): silent no-op when the order is terminal
//   - (nil, error): the order or the tracking point is invalid
func (o *Order) RecordLocation(point TrackingPoint, message string, now time.Time) (*Update, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	if o.status.IsTerminal() {
		return nil, nil
	}

	update, err := NewLocationUpdate(kernel.NewUUID(), o.id, o.status, message, point, now)
	if err != nil {
		return nil, err
	}

	o.updates = append(o.updates, update)
	return update, nil
}

// AssignDriver sets the driver delivering the order. In the normal flow this
// happens when the order goes out for delivery; reassignment is allowed.
func (o *Order) AssignDriver(driver Driver) error {
	if err := o.Validate(); err != nil {
		return err
	}

	if err := driver.Validate(); err != nil {
		return err
	}

	o.driver = &driver
	return nil
}

// setID validates and sets the order's unique identifier.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setStatus validates and sets the order's status during restoration.
func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

// setItems validates and sets the order's line items.
// Items must be non-empty and each item must be properly constructed.
func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	for i, item := range items {
		if err := item.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("items[%d]", i), err)
		}
	}

	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

// setTotalAmount validates and sets the order's total charge.
func (o *Order) setTotalAmount(totalAmount float64) error {
	if totalAmount < 0 {
		return errs.NewValueIsInvalidErrorWithCause("total amount is invalid",
			fmt.Errorf("%g is negative", totalAmount))
	}
	o.totalAmount = totalAmount
	return nil
}

// setAddress validates and sets the delivery destination.
func (o *Order) setAddress(address Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	o.address = address
	return nil
}

// setTimestamps validates and sets creation time and delivery estimate.
func (o *Order) setTimestamps(createdAt, estimatedDeliveryTime time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	if estimatedDeliveryTime.IsZero() {
		return errs.NewValueIsRequiredError("estimatedDeliveryTime")
	}
	if estimatedDeliveryTime.Before(createdAt) {
		return errs.NewValueIsInvalidErrorWithCause("estimatedDeliveryTime is invalid",
			fmt.Errorf("%s is before creation time %s", estimatedDeliveryTime, createdAt))
	}

	o.createdAt = createdAt
	o.estimatedDeliveryTime = estimatedDeliveryTime
	return nil
}

// setDriver validates and sets the optional driver during restoration.
func (o *Order) setDriver(driver *Driver) error {
	if driver == nil {
		return nil
	}
	if err := driver.Validate(); err != nil {
		return err
	}
	o.driver = driver
	return nil
}

// setUpdates validates and sets the history during restoration.
func (o *Order) setUpdates(updates []*Update) error {
	if len(updates) == 0 {
		return errs.NewValueIsRequiredError("updates")
	}

	for i, update := range updates {
		if err := update.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("updates[%d]", i), err)
		}
	}

	o.updates = make([]*Update, len(updates))
	copy(o.updates, updates)
	return nil
}
