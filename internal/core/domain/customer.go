package domain

import (
	"encoding/json"
	"strings"
	"time"
	"unicode/utf8"
)

type Customer struct {
	Entity
	name       string
	lastName   string
	address    string
	postalCode string
}

func NewCustomer(name, lastName, address, postalCode string) (*Customer, error) {
	c := &Customer{Entity: newEntity()}

	if err := c.SetName(name); err != nil {
		return nil, err
	}
	if err := c.SetLastName(lastName); err != nil {
		return nil, err
	}
	if err := c.SetAddress(address); err != nil {
		return nil, err
	}
	if err := c.SetPostalCode(postalCode); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Customer) Name() string       { return c.name }
func (c *Customer) LastName() string   { return c.lastName }
func (c *Customer) Address() string    { return c.address }
func (c *Customer) PostalCode() string { return c.postalCode }

// Every field shares the same rule: a present, non-whitespace value is an
// argument precondition, the minimum length is a business rule.
func validateCustomerField(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return NewArgumentError("customer " + field + " must not be empty")
	}
	if utf8.RuneCountInString(value) <= 1 {
		return NewBusinessRuleError("customer " + field + " must be more than 1 character long")
	}
	return nil
}

func (c *Customer) SetName(name string) error {
	if err := validateCustomerField("name", name); err != nil {
		return err
	}
	c.name = name
	return nil
}

func (c *Customer) SetLastName(lastName string) error {
	if err := validateCustomerField("last name", lastName); err != nil {
		return err
	}
	c.lastName = lastName
	return nil
}

func (c *Customer) SetAddress(address string) error {
	if err := validateCustomerField("address", address); err != nil {
		return err
	}
	c.address = address
	return nil
}

func (c *Customer) SetPostalCode(postalCode string) error {
	if err := validateCustomerField("postal code", postalCode); err != nil {
		return err
	}
	c.postalCode = postalCode
	return nil
}

func HydrateCustomer(id ID, name, lastName, address, postalCode string, createdAt time.Time, updatedAt *time.Time) *Customer {
	return &Customer{
		Entity:     Entity{ID: id, CreatedAt: createdAt, UpdatedAt: updatedAt},
		name:       name,
		lastName:   lastName,
		address:    address,
		postalCode: postalCode,
	}
}

type customerJSON struct {
	ID         ID         `json:"id"`
	Name       string     `json:"name"`
	LastName   string     `json:"last_name"`
	Address    string     `json:"address"`
	PostalCode string     `json:"postal_code"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
}

func (c *Customer) MarshalJSON() ([]byte, error) {
	return json.Marshal(customerJSON{
		ID:         c.ID,
		Name:       c.name,
		LastName:   c.lastName,
		Address:    c.address,
		PostalCode: c.postalCode,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	})
}

func (c *Customer) UnmarshalJSON(data []byte) error {
	var raw customerJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*c = *HydrateCustomer(raw.ID, raw.Name, raw.LastName, raw.Address, raw.PostalCode, raw.CreatedAt, raw.UpdatedAt)
	return nil
}
