package order

import (
	"errors"
	"fmt"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var (
	// ErrItemIsNotConstructed is returned when an Item was not created through
	// NewItem or RestoreItem.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem")

	// ErrQuantityIsInvalid is returned when an item quantity is not positive.
	ErrQuantityIsInvalid = errs.NewValueIsInvalidError("quantity")
)

// Item is a single order line. It snapshots the menu item's unit price at the
// moment the order is placed; the line total is derived from that snapshot, so
// later menu price changes never alter a historical order.
//
// Items are owned exclusively by their Order and are fixed at order creation.
type Item struct {
	id         kernel.UUID
	menuItemID kernel.UUID
	quantity   int
	unitPrice  Money
	totalPrice Money
	guard      guard.ConstructorGuard
}

// NewItem creates an order line from a menu-item reference, a positive
// quantity, and the menu price observed at this instant. The line total is
// computed as unitPrice × quantity.
func NewItem(id kernel.UUID, menuItemID kernel.UUID, quantity int, unitPrice Money) (Item, error) {
	if err := id.Validate(); err != nil {
		return Item{}, err
	}
	if err := menuItemID.Validate(); err != nil {
		return Item{}, err
	}
	if quantity <= 0 {
		return Item{}, fmt.Errorf("%w: %d is not greater than 0", ErrQuantityIsInvalid, quantity)
	}
	if err := unitPrice.Validate(); err != nil {
		return Item{}, err
	}

	return Item{
		id:         id,
		menuItemID: menuItemID,
		quantity:   quantity,
		unitPrice:  unitPrice,
		totalPrice: unitPrice.MultiplyBy(quantity),
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// RestoreItem reconstructs an order line from persistence. The stored total is
// kept as-is: it is part of the historical snapshot, not a derived value.
func RestoreItem(
	id kernel.UUID,
	menuItemID kernel.UUID,
	quantity int,
	unitPrice Money,
	totalPrice Money,
) (Item, error) {
	if err := id.Validate(); err != nil {
		return Item{}, err
	}
	if err := menuItemID.Validate(); err != nil {
		return Item{}, err
	}
	if quantity <= 0 {
		return Item{}, fmt.Errorf("%w: %d is not greater than 0", ErrQuantityIsInvalid, quantity)
	}
	if err := errors.Join(unitPrice.Validate(), totalPrice.Validate()); err != nil {
		return Item{}, err
	}

	return Item{
		id:         id,
		menuItemID: menuItemID,
		quantity:   quantity,
		unitPrice:  unitPrice,
		totalPrice: totalPrice,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Item was created through a constructor.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// ID returns the item's unique identifier.
func (i Item) ID() kernel.UUID {
	return i.id
}

// MenuItemID returns the referenced menu item.
func (i Item) MenuItemID() kernel.UUID {
	return i.menuItemID
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the menu price snapshotted at order creation.
func (i Item) UnitPrice() Money {
	return i.unitPrice
}

// TotalPrice returns the line total snapshotted at order creation.
func (i Item) TotalPrice() Money {
	return i.totalPrice
}
