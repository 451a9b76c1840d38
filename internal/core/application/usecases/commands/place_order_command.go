package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
	ErrOrderLineIsNotConstructed = errors.New(
		"OrderLine must be created via NewOrderLine constructor",
	)
	ErrLinesAreRequired      = errors.New("at least one order line is required")
	ErrLineQuantityIsInvalid = errors.New("line quantity must be greater than 0")
	ErrStreetIsRequired      = errors.New("street is required")
	ErrCityIsRequired        = errors.New("city is required")
)

// OrderLine is a single requested dish within a place-order command.
// Prices are not part of the request: they are read from the menu catalog
// at handling time and snapshotted onto the order.
type OrderLine struct { //nolint:recvcheck //using for validation
	menuItemID kernel.UUID
	quantity   int

	guard guard.ConstructorGuard
}

// NewOrderLine creates a validated order line.
// Returns an error if the menu item ID is invalid or quantity is not positive.
func NewOrderLine(menuItemID kernel.UUID, quantity int) (OrderLine, error) {
	line := OrderLine{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		line.setMenuItemID(menuItemID),
		line.setQuantity(quantity),
	); err != nil {
		return OrderLine{}, err
	}

	return line, nil
}

// Validate ensures the line was created through the constructor.
func (l OrderLine) Validate() error {
	return l.guard.Validate(ErrOrderLineIsNotConstructed)
}

// MenuItemID returns the requested menu item identifier.
func (l OrderLine) MenuItemID() kernel.UUID {
	return l.menuItemID
}

// Quantity returns the requested quantity.
func (l OrderLine) Quantity() int {
	return l.quantity
}

func (l *OrderLine) setMenuItemID(menuItemID kernel.UUID) error {
	if err := menuItemID.Validate(); err != nil {
		return err
	}

	l.menuItemID = menuItemID
	return nil
}

func (l *OrderLine) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrLineQuantityIsInvalid
	}

	l.quantity = quantity
	return nil
}

// PlaceOrderCommand represents a customer request to place a new food order
// with a restaurant. Carries the requested lines and the delivery address.
//
// Example:
//
//	line, _ := NewOrderLine(menuItemID, 2)
//	cmd, err := NewPlaceOrderCommand(
//	    kernel.NewUUID(), userID, restaurantID,
//	    []OrderLine{line},
//	    "123 Main Street", "Springfield", "IL", "62701",
//	    "ring the doorbell",
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	userID       kernel.UUID
	restaurantID kernel.UUID
	lines        []OrderLine
	street       string
	city         string
	state        string
	postalCode   string
	instructions string

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place a new order.
// Validates identifiers, requires at least one constructed line, and requires
// street and city for the delivery address. State, postal code and
// instructions are optional.
func NewPlaceOrderCommand(
	orderID kernel.UUID,
	userID kernel.UUID,
	restaurantID kernel.UUID,
	lines []OrderLine,
	street string,
	city string,
	state string,
	postalCode string,
	instructions string,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		state:        state,
		postalCode:   postalCode,
		instructions: instructions,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setUserID(userID),
		cmd.setRestaurantID(restaurantID),
		cmd.setLines(lines),
		cmd.setStreet(street),
		cmd.setCity(city),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPlaceOrderCommandIsNotConstructed if validation fails.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// UserID returns the ordering customer's identifier.
func (c PlaceOrderCommand) UserID() kernel.UUID {
	return c.userID
}

// RestaurantID returns the restaurant the order is placed with.
func (c PlaceOrderCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// Lines returns the requested order lines.
func (c PlaceOrderCommand) Lines() []OrderLine {
	result := make([]OrderLine, len(c.lines))
	copy(result, c.lines)
	return result
}

// Street returns the delivery street address.
func (c PlaceOrderCommand) Street() string {
	return c.street
}

// City returns the delivery city.
func (c PlaceOrderCommand) City() string {
	return c.city
}

// State returns the delivery state or region, may be empty.
func (c PlaceOrderCommand) State() string {
	return c.state
}

// PostalCode returns the delivery postal code, may be empty.
func (c PlaceOrderCommand) PostalCode() string {
	return c.postalCode
}

// Instructions returns free-form delivery instructions, may be empty.
func (c PlaceOrderCommand) Instructions() string {
	return c.instructions
}

func (c *PlaceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *PlaceOrderCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *PlaceOrderCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	c.restaurantID = restaurantID
	return nil
}

func (c *PlaceOrderCommand) setLines(lines []OrderLine) error {
	if len(lines) == 0 {
		return ErrLinesAreRequired
	}

	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
	}

	c.lines = make([]OrderLine, len(lines))
	copy(c.lines, lines)
	return nil
}

func (c *PlaceOrderCommand) setStreet(street string) error {
	if street == "" {
		return ErrStreetIsRequired
	}

	c.street = street
	return nil
}

func (c *PlaceOrderCommand) setCity(city string) error {
	if city == "" {
		return ErrCityIsRequired
	}

	c.city = city
	return nil
}
