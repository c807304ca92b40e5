package port

import (
	"context"

	"github.com/ordo-labs/order-api/internal/core/domain"
)

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

type ProductQuery struct {
	Name       string
	PageIndex  int64
	PageLength int64
}

type ProductPort interface {
	Create(ctx context.Context, product *domain.Product) error
	GetByID(ctx context.Context, id domain.ID) (*domain.Product, error)
	Find(ctx context.Context, query ProductQuery) ([]*domain.Product, int64, error)
	// FindOneByName returns (nil, nil) when no product matches.
	FindOneByName(ctx context.Context, name string) (*domain.Product, error)
	ExistsOtherWithName(ctx context.Context, excludeID domain.ID, name string) (bool, error)
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id domain.ID) error
}
