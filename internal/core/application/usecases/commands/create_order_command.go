package commands

import (
	"errors"

	"mealtrack/internal/core/domain/model/kernel"
	"mealtrack/internal/core/domain/model/order"
	"mealtrack/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrItemsAreRequired     = errors.New("at least one line item is required")
	ErrTotalAmountIsInvalid = errors.New("total amount must not be negative")
)

// CreateOrderCommand represents a request to place a new meal order.
// Encapsulates the purchased line items, the delivery address, and the
// charged total.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, items, 29.90, address)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
//	fmt.Printf("Order %s placed and pending confirmation", orderID)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	items       []order.Item
	totalAmount float64
	address     order.Address

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new meal order.
// Validates that the order ID is valid, at least one constructed item is
// present, the total is not negative, and the address is constructed.
// Returns an error if any validation fails.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	items []order.Item,
	totalAmount float64,
	address order.Address,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setItems(items),
		orderCommand.setTotalAmount(totalAmount),
		orderCommand.setAddress(address),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Items returns a copy of the purchased line items.
func (c CreateOrderCommand) Items() []order.Item {
	items := make([]order.Item, len(c.items))
	copy(items, c.items)
	return items
}

// TotalAmount returns the charged total for the order.
func (c CreateOrderCommand) TotalAmount() float64 {
	return c.totalAmount
}

// Address returns the delivery destination.
func (c CreateOrderCommand) Address() order.Address {
	return c.address
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setItems(items []order.Item) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	c.items = make([]order.Item, len(items))
	copy(c.items, items)
	return nil
}

func (c *CreateOrderCommand) setTotalAmount(totalAmount float64) error {
	if totalAmount < 0 {
		return ErrTotalAmountIsInvalid
	}

	c.totalAmount = totalAmount
	return nil
}

func (c *CreateOrderCommand) setAddress(address order.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}

	c.address = address
	return nil
}
