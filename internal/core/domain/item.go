package domain

import (
	"encoding/json"
	"time"
)

// Item is owned by an Order and never exists on its own. The product
// association is transient: nil right after construction, attached by the
// persistence layer on load.
type Item struct {
	Entity
	ProductID ID
	quantity  int
	product   *Product
}

func NewItem(productID ID, quantity int) (*Item, error) {
	if !ValidateID(string(productID)) {
		return nil, NewArgumentError("product id must not be default")
	}
	if quantity == 0 {
		return nil, NewArgumentError("quantity of product must not be zero")
	}
	if quantity < 0 {
		return nil, NewArgumentError("quantity of product must not be negative")
	}

	return &Item{
		Entity:    newEntity(),
		ProductID: productID,
		quantity:  quantity,
	}, nil
}

func (i *Item) Quantity() int {
	return i.quantity
}

func (i *Item) Product() *Product {
	return i.product
}

func (i *Item) SetQuantity(quantity int) error {
	if quantity <= 0 {
		return NewBusinessRuleError("quantity of product must be greater than zero")
	}

	i.quantity = quantity
	return nil
}

func (i *Item) IncreaseQuantity(quantity int) error {
	if quantity <= 0 {
		return NewBusinessRuleError("quantity of product must be greater than zero")
	}

	i.quantity += quantity
	return nil
}

// DecreaseQuantity may never drop the quantity to zero or below: removing
// the last unit goes through Order.RemoveItem, not through a decrease.
func (i *Item) DecreaseQuantity(quantity int) error {
	if quantity <= 0 {
		return NewBusinessRuleError("quantity of product must be greater than zero")
	}
	if quantity >= i.quantity {
		return NewBusinessRuleError("item must keep at least one quantity of a product")
	}

	i.quantity -= quantity
	return nil
}

func (i *Item) AttachProduct(product *Product) error {
	if product == nil {
		return NewArgumentError("product must not be nil")
	}

	i.product = product
	return nil
}

func HydrateItem(id ID, productID ID, quantity int, createdAt time.Time, updatedAt *time.Time) *Item {
	return &Item{
		Entity:    Entity{ID: id, CreatedAt: createdAt, UpdatedAt: updatedAt},
		ProductID: productID,
		quantity:  quantity,
	}
}

type itemJSON struct {
	ID        ID         `json:"id"`
	ProductID ID         `json:"product_id"`
	Quantity  int        `json:"quantity"`
	Product   *Product   `json:"product,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

func (i *Item) MarshalJSON() ([]byte, error) {
	return json.Marshal(itemJSON{
		ID:        i.ID,
		ProductID: i.ProductID,
		Quantity:  i.quantity,
		Product:   i.product,
		CreatedAt: i.CreatedAt,
		UpdatedAt: i.UpdatedAt,
	})
}

func (i *Item) UnmarshalJSON(data []byte) error {
	var raw itemJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	item := HydrateItem(raw.ID, raw.ProductID, raw.Quantity, raw.CreatedAt, raw.UpdatedAt)
	item.product = raw.Product
	*i = *item
	return nil
}
