package domain

import (
	"encoding/json"
	"time"
)

// Order is the aggregate root over its items. It keeps the item collection
// and the running total consistent, with one deliberate asymmetry kept from
// the original design: construction, AddItem and UpdateItem leave the total
// to the caller (who knows the current product price), while RemoveItem
// applies its own decrease from the attached product.
type Order struct {
	Entity
	CustomerID ID
	OrderDate  time.Time
	totalPrice float64
	items      []*Item
}

func NewOrder(customerID ID, items []*Item) (*Order, error) {
	if !ValidateID(string(customerID)) {
		return nil, NewArgumentError("customer id must not be default")
	}
	if items == nil {
		return nil, NewArgumentError("items must not be nil")
	}
	if len(items) == 0 {
		return nil, NewBusinessRuleError("an order must contain at least one item")
	}

	o := &Order{
		Entity:     newEntity(),
		CustomerID: customerID,
		OrderDate:  time.Now().UTC(),
	}
	o.items = append(o.items, items...)

	return o, nil
}

func (o *Order) TotalPrice() float64 {
	return o.totalPrice
}

// Items returns a read-only view: the slice is a copy, the items are not.
func (o *Order) Items() []*Item {
	items := make([]*Item, len(o.items))
	copy(items, o.items)
	return items
}

func (o *Order) FindItem(productID ID) *Item {
	for _, item := range o.items {
		if item.ProductID == productID {
			return item
		}
	}
	return nil
}

func (o *Order) SetTotalPrice(totalPrice float64) error {
	if totalPrice < 0 {
		return NewArgumentError("total price must not be negative")
	}

	o.totalPrice = totalPrice
	return nil
}

func (o *Order) IncreaseTotalPrice(amount float64) error {
	if amount < 0 {
		return NewArgumentError("amount must not be negative")
	}

	o.totalPrice += amount
	return nil
}

func (o *Order) DecreaseTotalPrice(amount float64) error {
	if amount < 0 {
		return NewArgumentError("amount must not be negative")
	}
	if amount > o.totalPrice {
		return NewBusinessRuleError("decrease amount must be lower than or equal to the total price")
	}

	o.totalPrice -= amount
	return nil
}

// AddItem merges into an existing item for the product or appends a new one.
// The guard accepts quantity zero; the item itself still rejects it, whether
// through IncreaseQuantity or through its constructor. It does not touch the
// total price: the caller pairs it with IncreaseTotalPrice.
func (o *Order) AddItem(productID ID, quantity int) error {
	if !ValidateID(string(productID)) {
		return NewArgumentError("product id must not be default")
	}
	if quantity < 0 {
		return NewArgumentError("quantity of product must not be negative")
	}

	if existing := o.FindItem(productID); existing != nil {
		if err := existing.IncreaseQuantity(quantity); err != nil {
			return err
		}
		existing.SetUpdatedAt()
		return nil
	}

	item, err := NewItem(productID, quantity)
	if err != nil {
		return err
	}
	o.items = append(o.items, item)

	return nil
}

// UpdateItem sets the item quantity absolutely. It does not touch the total
// price: the caller applies the signed price delta.
func (o *Order) UpdateItem(productID ID, quantity int) error {
	if !ValidateID(string(productID)) {
		return NewArgumentError("product id must not be default")
	}
	if quantity == 0 {
		return NewArgumentError("quantity of product must not be zero")
	}
	if quantity < 0 {
		return NewArgumentError("quantity of product must not be negative")
	}

	item := o.FindItem(productID)
	if item == nil {
		return NewBusinessRuleError("item with the given product id was not found")
	}

	if err := item.SetQuantity(quantity); err != nil {
		return err
	}
	item.SetUpdatedAt()

	return nil
}

// RemoveItem is the one mutator that maintains the total itself: it decreases
// by the attached product's price times the item quantity, then drops the
// item. A decrease larger than the recorded total means the total drifted
// from the true sum and surfaces as a business rule violation.
func (o *Order) RemoveItem(productID ID) error {
	if !ValidateID(string(productID)) {
		return NewArgumentError("product id must not be default")
	}

	item := o.FindItem(productID)
	if item == nil {
		return NewBusinessRuleError("item with the given product id was not found")
	}
	if item.product == nil {
		return NewBusinessRuleError("item has no product attached")
	}

	priceOfItem := item.product.Price() * float64(item.quantity)
	if err := o.DecreaseTotalPrice(priceOfItem); err != nil {
		return err
	}

	for idx, candidate := range o.items {
		if candidate == item {
			o.items = append(o.items[:idx], o.items[idx+1:]...)
			break
		}
	}

	return nil
}

// RemoveAllItems clears the collection without touching the total price.
func (o *Order) RemoveAllItems() {
	o.items = nil
}

func HydrateOrder(id ID, customerID ID, orderDate time.Time, totalPrice float64, items []*Item, createdAt time.Time, updatedAt *time.Time) *Order {
	return &Order{
		Entity:     Entity{ID: id, CreatedAt: createdAt, UpdatedAt: updatedAt},
		CustomerID: customerID,
		OrderDate:  orderDate,
		totalPrice: totalPrice,
		items:      items,
	}
}

type orderJSON struct {
	ID         ID         `json:"id"`
	CustomerID ID         `json:"customer_id"`
	OrderDate  time.Time  `json:"order_date"`
	TotalPrice float64    `json:"total_price"`
	Items      []*Item    `json:"items"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
}

func (o *Order) MarshalJSON() ([]byte, error) {
	return json.Marshal(orderJSON{
		ID:         o.ID,
		CustomerID: o.CustomerID,
		OrderDate:  o.OrderDate,
		TotalPrice: o.totalPrice,
		Items:      o.items,
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  o.UpdatedAt,
	})
}

func (o *Order) UnmarshalJSON(data []byte) error {
	var raw orderJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*o = *HydrateOrder(raw.ID, raw.CustomerID, raw.OrderDate, raw.TotalPrice, raw.Items, raw.CreatedAt, raw.UpdatedAt)
	return nil
}
