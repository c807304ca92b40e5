package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ordo-labs/order-api/internal/adapters/http/handlers"
	"github.com/ordo-labs/order-api/internal/core/domain"
	"github.com/ordo-labs/order-api/internal/core/dto"
	"github.com/ordo-labs/order-api/internal/core/service"
	"github.com/ordo-labs/order-api/internal/core/serviceerrors"
)

type OrderController struct {
	orderService *service.OrderService
}

func NewOrderController(orderService *service.OrderService) *OrderController {
	return &OrderController{orderService: orderService}
}

type OrderItemResponse struct {
	ID        string           `json:"id"`
	ProductID string           `json:"product_id"`
	Quantity  int              `json:"quantity"`
	Product   *ProductResponse `json:"product,omitempty"`
}

type OrderResponse struct {
	ID         string              `json:"id"`
	CustomerID string              `json:"customer_id"`
	OrderDate  time.Time           `json:"order_date"`
	TotalPrice float64             `json:"total_price"`
	Items      []OrderItemResponse `json:"items"`
	CreatedAt  time.Time           `json:"created_at"`
	UpdatedAt  *time.Time          `json:"updated_at,omitempty"`
}

func NewOrderItemResponse(item *domain.Item) OrderItemResponse {
	response := OrderItemResponse{
		ID:        string(item.ID),
		ProductID: string(item.ProductID),
		Quantity:  item.Quantity(),
	}
	if product := item.Product(); product != nil {
		productResponse := NewProductResponse(product)
		response.Product = &productResponse
	}
	return response
}

func NewOrderResponse(order *domain.Order) OrderResponse {
	domainItems := order.Items()
	items := make([]OrderItemResponse, len(domainItems))
	for i, item := range domainItems {
		items[i] = NewOrderItemResponse(item)
	}
	return OrderResponse{
		ID:         string(order.ID),
		CustomerID: string(order.CustomerID),
		OrderDate:  order.OrderDate,
		TotalPrice: order.TotalPrice(),
		Items:      items,
		CreatedAt:  order.CreatedAt,
		UpdatedAt:  order.UpdatedAt,
	}
}

// Create godoc
// @Summary     Create an order
// @Description Creates a new order with idempotency support
// @Tags        orders
// @Accept      json
// @Produce     json
// @Param       Idempotency-Key header   string                 false "Idempotency key"
// @Param       request         body     dto.CreateOrderRequest true  "Order data"
// @Success     201             {object} OrderResponse
// @Failure     400             {object} handlers.ErrorResponse
// @Failure     404             {object} handlers.ErrorResponse
// @Failure     409             {object} handlers.ErrorResponse
// @Failure     422             {object} handlers.ErrorResponse
// @Failure     429             {object} handlers.ErrorResponse
// @Failure     500             {object} handlers.ErrorResponse
// @Router      /api/v1/orders [post]
func (oc *OrderController) Create(c *gin.Context) {
	var request dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError(err.Error()))
		return
	}
	idempotencyKey := c.GetHeader("Idempotency-Key")
	order, err := oc.orderService.Create(c.Request.Context(), idempotencyKey, &request)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, NewOrderResponse(order))
}

// GetByID godoc
// @Summary     Get order by ID
// @Description Returns a single order with its items and product details
// @Tags        orders
// @Produce     json
// @Param       id  path     string true "Order ID"
// @Success     200 {object} OrderResponse
// @Failure     400 {object} handlers.ErrorResponse
// @Failure     404 {object} handlers.ErrorResponse
// @Failure     500 {object} handlers.ErrorResponse
// @Router      /api/v1/orders/{id} [get]
func (oc *OrderController) GetByID(c *gin.Context) {
	orderID := c.Param("id")
	if !domain.ValidateID(orderID) {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError("Invalid order ID"))
		return
	}
	order, err := oc.orderService.GetByID(c.Request.Context(), domain.ID(orderID))
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewOrderResponse(order))
}

// List godoc
// @Summary     List orders
// @Description Returns a page of orders filtered by customer and date range
// @Tags        orders
// @Produce     json
// @Param       customer_id      query    string false "Customer ID filter"
// @Param       order_date_start query    string false "Order date lower bound (RFC3339)"
// @Param       order_date_end   query    string false "Order date upper bound (RFC3339)"
// @Param       sort_desc        query    bool   false "Sort by order date descending"
// @Param       page_index       query    int    false "Page index"
// @Param       page_length      query    int    false "Page length"
// @Success     200 {object} PagedResponse[OrderResponse]
// @Failure     400 {object} handlers.ErrorResponse
// @Failure     500 {object} handlers.ErrorResponse
// @Router      /api/v1/orders [get]
func (oc *OrderController) List(c *gin.Context) {
	var request dto.ListOrdersRequest
	if err := c.ShouldBindQuery(&request); err != nil {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError(err.Error()))
		return
	}
	orders, total, err := oc.orderService.List(c.Request.Context(), &request)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}

	items := make([]OrderResponse, len(orders))
	for i, order := range orders {
		items[i] = NewOrderResponse(order)
	}

	c.JSON(http.StatusOK, NewPagedResponse(items, total, request.PageIndex, request.PageLength))
}

// Delete godoc
// @Summary     Delete an order
// @Description Removes an order and all its items
// @Tags        orders
// @Param       id path string true "Order ID"
// @Success     204
// @Failure     400 {object} handlers.ErrorResponse
// @Failure     404 {object} handlers.ErrorResponse
// @Failure     429 {object} handlers.ErrorResponse
// @Failure     500 {object} handlers.ErrorResponse
// @Router      /api/v1/orders/{id} [delete]
func (oc *OrderController) Delete(c *gin.Context) {
	orderID := c.Param("id")
	if !domain.ValidateID(orderID) {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError("Invalid order ID"))
		return
	}
	if err := oc.orderService.Delete(c.Request.Context(), domain.ID(orderID)); err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AddItem godoc
// @Summary     Add an order item
// @Description Adds a product to the order or merges into an existing item
// @Tags        orders
// @Accept      json
// @Produce     json
// @Param       id      path     string                   true "Order ID"
// @Param       request body     dto.AddOrderItemRequest  true "Item data"
// @Success     200     {object} OrderResponse
// @Failure     400     {object} handlers.ErrorResponse
// @Failure     404     {object} handlers.ErrorResponse
// @Failure     422     {object} handlers.ErrorResponse
// @Failure     429     {object} handlers.ErrorResponse
// @Failure     500     {object} handlers.ErrorResponse
// @Router      /api/v1/orders/{id}/items [post]
func (oc *OrderController) AddItem(c *gin.Context) {
	orderID := c.Param("id")
	if !domain.ValidateID(orderID) {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError("Invalid order ID"))
		return
	}
	var request dto.AddOrderItemRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError(err.Error()))
		return
	}
	order, err := oc.orderService.AddItem(c.Request.Context(), domain.ID(orderID), &request)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewOrderResponse(order))
}

// UpdateItem godoc
// @Summary     Update an order item
// @Description Sets the quantity of an order item and adjusts the total
// @Tags        orders
// @Accept      json
// @Produce     json
// @Param       id      path     string                     true "Order ID"
// @Param       request body     dto.UpdateOrderItemRequest true "Item data"
// @Success     200     {object} OrderResponse
// @Failure     400     {object} handlers.ErrorResponse
// @Failure     404     {object} handlers.ErrorResponse
// @Failure     422     {object} handlers.ErrorResponse
// @Failure     429     {object} handlers.ErrorResponse
// @Failure     500     {object} handlers.ErrorResponse
// @Router      /api/v1/orders/{id}/items [put]
func (oc *OrderController) UpdateItem(c *gin.Context) {
	orderID := c.Param("id")
	if !domain.ValidateID(orderID) {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError("Invalid order ID"))
		return
	}
	var request dto.UpdateOrderItemRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError(err.Error()))
		return
	}
	order, err := oc.orderService.UpdateItem(c.Request.Context(), domain.ID(orderID), &request)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewOrderResponse(order))
}

// RemoveItem godoc
// @Summary     Remove an order item
// @Description Removes an item; removing the last item deletes the order
// @Tags        orders
// @Produce     json
// @Param       id        path     string true "Order ID"
// @Param       productId path     string true "Product ID"
// @Success     200       {object} OrderResponse
// @Success     204
// @Failure     400 {object} handlers.ErrorResponse
// @Failure     404 {object} handlers.ErrorResponse
// @Failure     422 {object} handlers.ErrorResponse
// @Failure     429 {object} handlers.ErrorResponse
// @Failure     500 {object} handlers.ErrorResponse
// @Router      /api/v1/orders/{id}/items/{productId} [delete]
func (oc *OrderController) RemoveItem(c *gin.Context) {
	orderID := c.Param("id")
	if !domain.ValidateID(orderID) {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError("Invalid order ID"))
		return
	}
	productID := c.Param("productId")
	if !domain.ValidateID(productID) {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError("Invalid product ID"))
		return
	}
	order, err := oc.orderService.RemoveItem(c.Request.Context(), domain.ID(orderID), domain.ID(productID))
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	if order == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, NewOrderResponse(order))
}
