package dto

type CreateProductRequest struct {
	Name  string  `json:"name" binding:"required,min=5"`
	Price float64 `json:"price" binding:"gte=0"`
}

type UpdateProductRequest struct {
	Name  string  `json:"name" binding:"required,min=5"`
	Price float64 `json:"price" binding:"gte=0"`
}

type ListProductsRequest struct {
	Pagination
	Name string `form:"name"`
}
