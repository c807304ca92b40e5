package port

import (
	"context"

	"github.com/ordo-labs/order-api/internal/core/domain"
)

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

type AuditLogPort interface {
	// CreateWithOutbox persists the audit entry and enqueues its event in the
	// same transaction.
	CreateWithOutbox(ctx context.Context, log *domain.AuditLog, event domain.Event) error
	GetByEntityID(ctx context.Context, entityID domain.ID, limit, offset int64) ([]*domain.AuditLog, error)
}
