package order

import (
	"errors"
	"fmt"

	"mealtrack/internal/pkg/errs"
	"mealtrack/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when an Item was not created via NewItem.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is a single line of an order: a meal name, a positive quantity, the
// unit price captured at purchase time, and an optional free-text
// customization note ("no cilantro, extra sauce"). Item is an immutable value
// object.
type Item struct { //nolint:recvcheck //using for validation
	name          string
	quantity      int
	unitPrice     float64
	customization string

	guard guard.ConstructorGuard
}

// NewItem creates an Item with validation. Name must not be empty, quantity
// must be positive, and unit price must not be negative. The customization
// note is optional and may be empty.
func NewItem(name string, quantity int, unitPrice float64, customization string) (Item, error) {
	item := Item{
		customization: customization,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setName(name),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// Validate ensures the Item was created via NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// Name returns the meal name.
func (i Item) Name() string {
	return i.name
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the price per unit captured at purchase time.
func (i Item) UnitPrice() float64 {
	return i.unitPrice
}

// Customization returns the optional free-text customization note.
func (i Item) Customization() string {
	return i.customization
}

// Subtotal returns quantity times unit price.
func (i Item) Subtotal() float64 {
	return float64(i.quantity) * i.unitPrice
}

func (i *Item) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("item name")
	}
	i.name = name
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setUnitPrice(unitPrice float64) error {
	if unitPrice < 0 {
		return errs.NewValueIsInvalidErrorWithCause("unit price is invalid",
			fmt.Errorf("%g is negative", unitPrice))
	}
	i.unitPrice = unitPrice
	return nil
}
