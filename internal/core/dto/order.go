package dto

import (
	"time"

	"github.com/ordo-labs/order-api/internal/core/domain"
)

type OrderItem struct {
	ProductID domain.ID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,gt=0"`
}

type CreateOrderRequest struct {
	CustomerID domain.ID   `json:"customer_id" binding:"required"`
	Items      []OrderItem `json:"items" binding:"required,min=1,dive"`
}

// AddOrderItemRequest tolerates quantity zero on purpose: the aggregate's
// add guard accepts it and the item rules reject it downstream.
type AddOrderItemRequest struct {
	ProductID domain.ID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"gte=0"`
}

type UpdateOrderItemRequest struct {
	ProductID domain.ID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,gt=0"`
}

type ListOrdersRequest struct {
	Pagination
	CustomerID     string     `form:"customer_id"`
	OrderDateStart *time.Time `form:"order_date_start" time_format:"2006-01-02T15:04:05Z07:00"`
	OrderDateEnd   *time.Time `form:"order_date_end" time_format:"2006-01-02T15:04:05Z07:00"`
	SortDescending bool       `form:"sort_desc"`
}
