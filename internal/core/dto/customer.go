package dto

type CreateCustomerRequest struct {
	Name       string `json:"name" binding:"required,min=2"`
	LastName   string `json:"last_name" binding:"required,min=2"`
	Address    string `json:"address" binding:"required,min=2"`
	PostalCode string `json:"postal_code" binding:"required,min=2"`
}

type UpdateCustomerRequest struct {
	Name       string `json:"name" binding:"required,min=2"`
	LastName   string `json:"last_name" binding:"required,min=2"`
	Address    string `json:"address" binding:"required,min=2"`
	PostalCode string `json:"postal_code" binding:"required,min=2"`
}

type ListCustomersRequest struct {
	Pagination
	Name       string `form:"name"`
	LastName   string `form:"last_name"`
	Address    string `form:"address"`
	PostalCode string `form:"postal_code"`
}
