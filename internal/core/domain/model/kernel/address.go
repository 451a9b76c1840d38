package kernel

import (
	"errors"

	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when attempting to use an improperly
// initialized Address.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError(
	"address must be created via NewAddress constructor")

// ErrStreetIsRequired is returned when an address is created without a street.
var ErrStreetIsRequired = errs.NewValueIsRequiredError("street")

// ErrCityIsRequired is returned when an address is created without a city.
var ErrCityIsRequired = errs.NewValueIsRequiredError("city")

// Address is an immutable value object describing a structured delivery
// destination. Street and city are required; state and postal code are
// optional free-form components. An address may carry geographic coordinates,
// which enable nearest-agent selection during assignment; without them the
// assignment falls back to first-available selection.
type Address struct { //nolint:recvcheck //using for validation
	street     string
	city       string
	state      string
	postalCode string
	location   *Location
	guard      guard.ConstructorGuard
}

// NewAddress creates an Address without geographic coordinates.
func NewAddress(street string, city string, state string, postalCode string) (Address, error) {
	addr := Address{
		state:      state,
		postalCode: postalCode,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(addr.setStreet(street), addr.setCity(city)); err != nil {
		return Address{}, err
	}

	return addr, nil
}

// NewAddressWithLocation creates an Address carrying geographic coordinates.
func NewAddressWithLocation(
	street string,
	city string,
	state string,
	postalCode string,
	location Location,
) (Address, error) {
	if err := location.Validate(); err != nil {
		return Address{}, err
	}

	addr, err := NewAddress(street, city, state, postalCode)
	if err != nil {
		return Address{}, err
	}

	addr.location = &location
	return addr, nil
}

// Validate checks if the Address was properly constructed using a constructor.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// Street returns the street line of the address.
func (a Address) Street() string {
	return a.street
}

// City returns the city of the address.
func (a Address) City() string {
	return a.city
}

// State returns the state or region of the address. May be empty.
func (a Address) State() string {
	return a.state
}

// PostalCode returns the postal code of the address. May be empty.
func (a Address) PostalCode() string {
	return a.postalCode
}

// Location returns the geographic coordinates of the address.
// Returns nil if the address was created without coordinates.
func (a Address) Location() *Location {
	return a.location
}

func (a *Address) setStreet(street string) error {
	if street == "" {
		return ErrStreetIsRequired
	}
	a.street = street
	return nil
}

func (a *Address) setCity(city string) error {
	if city == "" {
		return ErrCityIsRequired
	}
	a.city = city
	return nil
}
