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

type CustomerController struct {
	customerService *service.CustomerService
}

func NewCustomerController(customerService *service.CustomerService) *CustomerController {
	return &CustomerController{customerService: customerService}
}

type CustomerResponse struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	LastName   string     `json:"last_name"`
	Address    string     `json:"address"`
	PostalCode string     `json:"postal_code"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
}

func NewCustomerResponse(customer *domain.Customer) CustomerResponse {
	return CustomerResponse{
		ID:         string(customer.ID),
		Name:       customer.Name(),
		LastName:   customer.LastName(),
		Address:    customer.Address(),
		PostalCode: customer.PostalCode(),
		CreatedAt:  customer.CreatedAt,
		UpdatedAt:  customer.UpdatedAt,
	}
}

// Create godoc
// @Summary     Create a customer
// @Description Creates a new customer
// @Tags        customers
// @Accept      json
// @Produce     json
// @Param       request body     dto.CreateCustomerRequest true "Customer data"
// @Success     201     {object} CustomerResponse
// @Failure     400     {object} handlers.ErrorResponse
// @Failure     409     {object} handlers.ErrorResponse
// @Failure     422     {object} handlers.ErrorResponse
// @Failure     500     {object} handlers.ErrorResponse
// @Router      /api/v1/customers [post]
func (cc *CustomerController) Create(c *gin.Context) {
	var request dto.CreateCustomerRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError(err.Error()))
		return
	}
	customer, err := cc.customerService.Create(c.Request.Context(), &request)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, NewCustomerResponse(customer))
}

// GetByID godoc
// @Summary     Get customer by ID
// @Description Returns a single customer by its ID
// @Tags        customers
// @Produce     json
// @Param       id  path     string true "Customer ID"
// @Success     200 {object} CustomerResponse
// @Failure     400 {object} handlers.ErrorResponse
// @Failure     404 {object} handlers.ErrorResponse
// @Failure     500 {object} handlers.ErrorResponse
// @Router      /api/v1/customers/{id} [get]
func (cc *CustomerController) GetByID(c *gin.Context) {
	customerID := c.Param("id")
	if !domain.ValidateID(customerID) {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError("Invalid customer ID"))
		return
	}
	customer, err := cc.customerService.GetByID(c.Request.Context(), domain.ID(customerID))
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewCustomerResponse(customer))
}

// List godoc
// @Summary     List customers
// @Description Returns a page of customers, optionally filtered by field substrings
// @Tags        customers
// @Produce     json
// @Param       name        query    string false "Name filter"
// @Param       last_name   query    string false "Last name filter"
// @Param       address     query    string false "Address filter"
// @Param       postal_code query    string false "Postal code filter"
// @Param       page_index  query    int    false "Page index"
// @Param       page_length query    int    false "Page length"
// @Success     200 {object} PagedResponse[CustomerResponse]
// @Failure     400 {object} handlers.ErrorResponse
// @Failure     500 {object} handlers.ErrorResponse
// @Router      /api/v1/customers [get]
func (cc *CustomerController) List(c *gin.Context) {
	var request dto.ListCustomersRequest
	if err := c.ShouldBindQuery(&request); err != nil {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError(err.Error()))
		return
	}
	customers, total, err := cc.customerService.List(c.Request.Context(), &request)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}

	items := make([]CustomerResponse, len(customers))
	for i, customer := range customers {
		items[i] = NewCustomerResponse(customer)
	}

	c.JSON(http.StatusOK, NewPagedResponse(items, total, request.PageIndex, request.PageLength))
}

// Update godoc
// @Summary     Update a customer
// @Description Replaces all customer fields
// @Tags        customers
// @Accept      json
// @Produce     json
// @Param       id      path     string                    true "Customer ID"
// @Param       request body     dto.UpdateCustomerRequest true "Customer data"
// @Success     200     {object} CustomerResponse
// @Failure     400     {object} handlers.ErrorResponse
// @Failure     404     {object} handlers.ErrorResponse
// @Failure     409     {object} handlers.ErrorResponse
// @Failure     422     {object} handlers.ErrorResponse
// @Failure     500     {object} handlers.ErrorResponse
// @Router      /api/v1/customers/{id} [put]
func (cc *CustomerController) Update(c *gin.Context) {
	customerID := c.Param("id")
	if !domain.ValidateID(customerID) {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError("Invalid customer ID"))
		return
	}
	var request dto.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError(err.Error()))
		return
	}
	customer, err := cc.customerService.Update(c.Request.Context(), domain.ID(customerID), &request)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewCustomerResponse(customer))
}

// Delete godoc
// @Summary     Delete a customer
// @Description Removes a customer by its ID
// @Tags        customers
// @Param       id path string true "Customer ID"
// @Success     204
// @Failure     400 {object} handlers.ErrorResponse
// @Failure     404 {object} handlers.ErrorResponse
// @Failure     500 {object} handlers.ErrorResponse
// @Router      /api/v1/customers/{id} [delete]
func (cc *CustomerController) Delete(c *gin.Context) {
	customerID := c.Param("id")
	if !domain.ValidateID(customerID) {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError("Invalid customer ID"))
		return
	}
	if err := cc.customerService.Delete(c.Request.Context(), domain.ID(customerID)); err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
