package port

import (
	"context"
	"time"

	"github.com/ordo-labs/order-api/internal/core/domain"
)

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

type OrderQuery struct {
	CustomerID     *domain.ID
	OrderDateStart *time.Time
	OrderDateEnd   *time.Time
	SortDescending bool
	PageIndex      int64
	PageLength     int64
}

type OrderPort interface {
	Create(ctx context.Context, order *domain.Order) error
	GetByID(ctx context.Context, id domain.ID) (*domain.Order, error)
	Find(ctx context.Context, query OrderQuery) ([]*domain.Order, int64, error)
	Update(ctx context.Context, order *domain.Order) error
	Delete(ctx context.Context, id domain.ID) error
}
