package order

import (
	"errors"
	"time"

	"mealtrack/internal/core/domain/model/kernel"
	"mealtrack/internal/pkg/errs"
	"mealtrack/internal/pkg/guard"
)

var (
	// ErrUpdateIsNotConstructed is returned when an Update instance was not
	// created through one of its factory methods.
	ErrUpdateIsNotConstructed = errors.New("Update must be created via NewStatusUpdate, NewLocationUpdate, or RestoreUpdate")

	// ErrTrackingPointIsNotConstructed is returned when a TrackingPoint was not
	// created via NewTrackingPoint.
	ErrTrackingPointIsNotConstructed = errors.New("TrackingPoint must be created via NewTrackingPoint constructor")
)

// TrackingPoint is the location payload of an Update: a geographic coordinate,
// a human-readable address, and the moment the position was recorded.
// It is an immutable value object.
type TrackingPoint struct { //nolint:recvcheck //using for validation
	point      kernel.GeoPoint
	address    string
	recordedAt time.Time

	guard guard.ConstructorGuard
}

// NewTrackingPoint creates a TrackingPoint with validation.
// The coordinate must be a constructed GeoPoint, the address must not be
// empty, and the timestamp must not be zero.
func NewTrackingPoint(point kernel.GeoPoint, address string, recordedAt time.Time) (TrackingPoint, error) {
	tp := TrackingPoint{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		tp.setPoint(point),
		tp.setAddress(address),
		tp.setRecordedAt(recordedAt),
	); err != nil {
		return TrackingPoint{}, err
	}

	return tp, nil
}

// Validate ensures the TrackingPoint was created via NewTrackingPoint.
func (tp TrackingPoint) Validate() error {
	return tp.guard.Validate(ErrTrackingPointIsNotConstructed)
}

// Point returns the geographic coordinate.
func (tp TrackingPoint) Point() kernel.GeoPoint {
	return tp.point
}

// Address returns the human-readable address of the position.
func (tp TrackingPoint) Address() string {
	return tp.address
}

// RecordedAt returns the moment the position was recorded.
func (tp TrackingPoint) RecordedAt() time.Time {
	return tp.recordedAt
}

func (tp *TrackingPoint) setPoint(point kernel.GeoPoint) error {
	if err := point.Validate(); err != nil {
		return err
	}
	tp.point = point
	return nil
}

func (tp *TrackingPoint) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	tp.address = address
	return nil
}

func (tp *TrackingPoint) setRecordedAt(recordedAt time.Time) error {
	if recordedAt.IsZero() {
		return errs.NewValueIsRequiredError("recordedAt")
	}
	tp.recordedAt = recordedAt
	return nil
}

// Update is an immutable, timestamped record of an order's status or location
// at a point in time. The sequence of updates on an order is its authoritative
// history: records are appended, never modified or removed.
//
// Two kinds of updates exist:
//   - status updates, produced when the order transitions to a new status;
//     the message is the fixed per-status literal, and the transition into
//     OutForDelivery additionally carries a minutes-to-delivery estimate
//   - location updates, produced by the live tracking simulation; they repeat
//     the order's current status, carry a TrackingPoint, and never carry an
//     estimate
type Update struct {
	id               kernel.UUID
	orderID          kernel.UUID
	status           Status
	message          string
	timestamp        time.Time
	estimatedMinutes *int
	location         *TrackingPoint

	isConstructed bool
}

// NewStatusUpdate creates the Update announcing a transition into status.
// The message is taken from the fixed per-status table. If status is
// OutForDelivery the update carries EstimatedMinutesOutForDelivery; no other
// status does.
func NewStatusUpdate(id kernel.UUID, orderID kernel.UUID, status Status, timestamp time.Time) (*Update, error) {
	if err := errors.Join(id.Validate(), orderID.Validate(), status.Validate()); err != nil {
		return nil, err
	}
	if timestamp.IsZero() {
		return nil, errs.NewValueIsRequiredError("timestamp")
	}

	update := &Update{
		id:            id,
		orderID:       orderID,
		status:        status,
		message:       status.Message(),
		timestamp:     timestamp,
		isConstructed: true,
	}

	if status == OutForDelivery {
		estimate := EstimatedMinutesOutForDelivery
		update.estimatedMinutes = &estimate
	}

	return update, nil
}

// NewLocationUpdate creates a location-only Update. It repeats the order's
// current status, carries the given tracking point and message, and never
// carries a minutes estimate.
func NewLocationUpdate(
	id kernel.UUID,
	orderID kernel.UUID,
	status Status,
	message string,
	location TrackingPoint,
	timestamp time.Time,
) (*Update, error) {
	if err := errors.Join(id.Validate(), orderID.Validate(), status.Validate(), location.Validate()); err != nil {
		return nil, err
	}
	if message == "" {
		return nil, errs.NewValueIsRequiredError("message")
	}
	if timestamp.IsZero() {
		return nil, errs.NewValueIsRequiredError("timestamp")
	}

	return &Update{
		id:            id,
		orderID:       orderID,
		status:        status,
		message:       message,
		timestamp:     timestamp,
		location:      &location,
		isConstructed: true,
	}, nil
}

// RestoreUpdate reconstructs an Update from persistence without re-deriving
// the message or the estimate, preserving the record exactly as written.
func RestoreUpdate(
	id kernel.UUID,
	orderID kernel.UUID,
	status Status,
	message string,
	timestamp time.Time,
	estimatedMinutes *int,
	location *TrackingPoint,
) (*Update, error) {
	if err := errors.Join(id.Validate(), orderID.Validate(), status.Validate()); err != nil {
		return nil, err
	}
	if timestamp.IsZero() {
		return nil, errs.NewValueIsRequiredError("timestamp")
	}
	if location != nil {
		if err := location.Validate(); err != nil {
			return nil, err
		}
	}

	return &Update{
		id:               id,
		orderID:          orderID,
		status:           status,
		message:          message,
		timestamp:        timestamp,
		estimatedMinutes: estimatedMinutes,
		location:         location,
		isConstructed:    true,
	}, nil
}

// Validate ensures the Update was created through a factory method.
func (u *Update) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUpdateIsNotConstructed
	}
	return nil
}

// ID returns the update's unique identifier.
func (u *Update) ID() kernel.UUID {
	return u.id
}

// OrderID returns the identifier of the order this update belongs to.
func (u *Update) OrderID() kernel.UUID {
	return u.orderID
}

// Status returns the status this update announces. For location updates it
// repeats the order's status at recording time.
func (u *Update) Status() Status {
	return u.status
}

// Message returns the human-readable description of the update.
func (u *Update) Message() string {
	return u.message
}

// Timestamp returns the creation time of the update.
func (u *Update) Timestamp() time.Time {
	return u.timestamp
}

// EstimatedMinutes returns the minutes-to-delivery estimate, or nil.
// It is non-nil only on the update announcing the OutForDelivery transition.
func (u *Update) EstimatedMinutes() *int {
	if u.estimatedMinutes == nil {
		return nil
	}
	estimate := *u.estimatedMinutes
	return &estimate
}

// Location returns the tracking point carried by the update, or nil for
// status-only updates.
func (u *Update) Location() *TrackingPoint {
	if u.location == nil {
		return nil
	}
	location := *u.location
	return &location
}

// IsEqual compares two updates by their unique identifiers.
func (u *Update) IsEqual(other *Update) bool {
	return other != nil && u.id.IsEqual(other.id)
}
