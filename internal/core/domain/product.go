package domain

import (
	"encoding/json"
	"strings"
	"time"
	"unicode/utf8"
)

type Product struct {
	Entity
	name  string
	price float64
}

func NewProduct(name string, price float64) (*Product, error) {
	if price < 0 {
		return nil, NewArgumentError("price must not be negative")
	}

	p := &Product{Entity: newEntity()}
	if err := p.SetName(name); err != nil {
		return nil, err
	}
	p.price = price

	return p, nil
}

func (p *Product) Name() string {
	return p.name
}

func (p *Product) Price() float64 {
	return p.price
}

func (p *Product) SetName(name string) error {
	if strings.TrimSpace(name) == "" {
		return NewArgumentError("product name must not be empty")
	}
	if utf8.RuneCountInString(name) < 5 {
		return NewBusinessRuleError("product name must be at least 5 characters long")
	}

	p.name = name
	return nil
}

// SetPrice rejects negative prices as a business rule, while the constructor
// treats them as an argument guard. Both call sites must keep rejecting.
func (p *Product) SetPrice(price float64) error {
	if price < 0 {
		return NewBusinessRuleError("price must be greater than or equal to zero")
	}

	p.price = price
	return nil
}

// HydrateProduct rebuilds a product from persisted state, bypassing the
// constructor guards. Only the persistence layer should call it.
func HydrateProduct(id ID, name string, price float64, createdAt time.Time, updatedAt *time.Time) *Product {
	return &Product{
		Entity: Entity{ID: id, CreatedAt: createdAt, UpdatedAt: updatedAt},
		name:   name,
		price:  price,
	}
}

type productJSON struct {
	ID        ID         `json:"id"`
	Name      string     `json:"name"`
	Price     float64    `json:"price"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

func (p *Product) MarshalJSON() ([]byte, error) {
	return json.Marshal(productJSON{
		ID:        p.ID,
		Name:      p.name,
		Price:     p.price,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	})
}

func (p *Product) UnmarshalJSON(data []byte) error {
	var raw productJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*p = *HydrateProduct(raw.ID, raw.Name, raw.Price, raw.CreatedAt, raw.UpdatedAt)
	return nil
}
