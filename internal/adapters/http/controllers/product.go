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

type ProductController struct {
	productService *service.ProductService
}

func NewProductController(productService *service.ProductService) *ProductController {
	return &ProductController{productService: productService}
}

type ProductResponse struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Price     float64    `json:"price"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

func NewProductResponse(product *domain.Product) ProductResponse {
	return ProductResponse{
		ID:        string(product.ID),
		Name:      product.Name(),
		Price:     product.Price(),
		CreatedAt: product.CreatedAt,
		UpdatedAt: product.UpdatedAt,
	}
}

// Create godoc
// @Summary     Create a product
// @Description Creates a new product
// @Tags        products
// @Accept      json
// @Produce     json
// @Param       request body     dto.CreateProductRequest true "Product data"
// @Success     201     {object} ProductResponse
// @Failure     400     {object} handlers.ErrorResponse
// @Failure     409     {object} handlers.ErrorResponse
// @Failure     422     {object} handlers.ErrorResponse
// @Failure     500     {object} handlers.ErrorResponse
// @Router      /api/v1/products [post]
func (pc *ProductController) Create(c *gin.Context) {
	var request dto.CreateProductRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError(err.Error()))
		return
	}
	product, err := pc.productService.Create(c.Request.Context(), &request)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, NewProductResponse(product))
}

// GetByID godoc
// @Summary     Get product by ID
// @Description Returns a single product by its ID
// @Tags        products
// @Produce     json
// @Param       id  path     string true "Product ID"
// @Success     200 {object} ProductResponse
// @Failure     400 {object} handlers.ErrorResponse
// @Failure     404 {object} handlers.ErrorResponse
// @Failure     500 {object} handlers.ErrorResponse
// @Router      /api/v1/products/{id} [get]
func (pc *ProductController) GetByID(c *gin.Context) {
	productID := c.Param("id")
	if !domain.ValidateID(productID) {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError("Invalid product ID"))
		return
	}
	product, err := pc.productService.GetByID(c.Request.Context(), domain.ID(productID))
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewProductResponse(product))
}

// List godoc
// @Summary     List products
// @Description Returns a page of products, optionally filtered by name substring
// @Tags        products
// @Produce     json
// @Param       name        query    string false "Name filter"
// @Param       page_index  query    int    false "Page index"
// @Param       page_length query    int    false "Page length"
// @Success     200 {object} PagedResponse[ProductResponse]
// @Failure     400 {object} handlers.ErrorResponse
// @Failure     500 {object} handlers.ErrorResponse
// @Router      /api/v1/products [get]
func (pc *ProductController) List(c *gin.Context) {
	var request dto.ListProductsRequest
	if err := c.ShouldBindQuery(&request); err != nil {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError(err.Error()))
		return
	}
	products, total, err := pc.productService.List(c.Request.Context(), &request)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}

	items := make([]ProductResponse, len(products))
	for i, product := range products {
		items[i] = NewProductResponse(product)
	}

	c.JSON(http.StatusOK, NewPagedResponse(items, total, request.PageIndex, request.PageLength))
}

// Update godoc
// @Summary     Update a product
// @Description Replaces the product name and price
// @Tags        products
// @Accept      json
// @Produce     json
// @Param       id      path     string                   true "Product ID"
// @Param       request body     dto.UpdateProductRequest true "Product data"
// @Success     200     {object} ProductResponse
// @Failure     400     {object} handlers.ErrorResponse
// @Failure     404     {object} handlers.ErrorResponse
// @Failure     409     {object} handlers.ErrorResponse
// @Failure     422     {object} handlers.ErrorResponse
// @Failure     500     {object} handlers.ErrorResponse
// @Router      /api/v1/products/{id} [put]
func (pc *ProductController) Update(c *gin.Context) {
	productID := c.Param("id")
	if !domain.ValidateID(productID) {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError("Invalid product ID"))
		return
	}
	var request dto.UpdateProductRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError(err.Error()))
		return
	}
	product, err := pc.productService.Update(c.Request.Context(), domain.ID(productID), &request)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewProductResponse(product))
}

// Delete godoc
// @Summary     Delete a product
// @Description Removes a product by its ID
// @Tags        products
// @Param       id path string true "Product ID"
// @Success     204
// @Failure     400 {object} handlers.ErrorResponse
// @Failure     404 {object} handlers.ErrorResponse
// @Failure     500 {object} handlers.ErrorResponse
// @Router      /api/v1/products/{id} [delete]
func (pc *ProductController) Delete(c *gin.Context) {
	productID := c.Param("id")
	if !domain.ValidateID(productID) {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError("Invalid product ID"))
		return
	}
	if err := pc.productService.Delete(c.Request.Context(), domain.ID(productID)); err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
