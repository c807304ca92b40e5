package port

import (
	"context"

	"github.com/ordo-labs/order-api/internal/core/domain"
)

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

// CustomerQuery filters are substring matches; zero values mean "any".
type CustomerQuery struct {
	Name       string
	LastName   string
	Address    string
	PostalCode string
	PageIndex  int64
	PageLength int64
}

type CustomerPort interface {
	Create(ctx context.Context, customer *domain.Customer) error
	GetByID(ctx context.Context, id domain.ID) (*domain.Customer, error)
	Find(ctx context.Context, query CustomerQuery) ([]*domain.Customer, int64, error)
	// FindOneByName returns (nil, nil) when no customer matches.
	FindOneByName(ctx context.Context, name, lastName string) (*domain.Customer, error)
	ExistsOther(ctx context.Context, excludeID domain.ID, name, lastName, address, postalCode string) (bool, error)
	Update(ctx context.Context, customer *domain.Customer) error
	Delete(ctx context.Context, id domain.ID) error
}
