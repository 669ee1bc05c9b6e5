package order

import (
	"storefront/internal/pkg/errs"
)

// Address is the shipping destination of an order. It is caller-supplied and
// stored verbatim; no geocoding or postal validation happens in this core.
type Address struct {
	street     string
	city       string
	state      string
	postalCode string
	country    string
}

// NewAddress creates a shipping address with validation.
// street, city, postalCode and country are required; state is optional.
func NewAddress(street, city, state, postalCode, country string) (Address, error) {
	if street == "" {
		return Address{}, errs.NewValueIsRequiredError("address street")
	}
	if city == "" {
		return Address{}, errs.NewValueIsRequiredError("address city")
	}
	if postalCode == "" {
		return Address{}, errs.NewValueIsRequiredError("address postal code")
	}
	if country == "" {
		return Address{}, errs.NewValueIsRequiredError("address country")
	}

	return Address{
		street:     street,
		city:       city,
		state:      state,
		postalCode: postalCode,
		country:    country,
	}, nil
}

// Street returns the street line.
func (a Address) Street() string {
	return a.street
}

// City returns the city.
func (a Address) City() string {
	return a.city
}

// State returns the optional state or region ("" when absent).
func (a Address) State() string {
	return a.state
}

// PostalCode returns the postal code.
func (a Address) PostalCode() string {
	return a.postalCode
}

// Country returns the country.
func (a Address) Country() string {
	return a.country
}

// Validate returns an error for zero-value addresses.
func (a Address) Validate() error {
	if a.street == "" {
		return errs.NewValueIsRequiredError("address must be created via NewAddress")
	}
	return nil
}
