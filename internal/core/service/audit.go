package service

import (
	"context"

	"github.com/ordo-labs/order-api/internal/core/domain"
	"github.com/ordo-labs/order-api/internal/core/logger"
	"github.com/ordo-labs/order-api/internal/core/port"
	"github.com/ordo-labs/order-api/internal/core/utils"
)

// AuditService records who changed which aggregate. Recording is best
// effort: a failed audit write is logged and never fails the business
// operation that triggered it.
type AuditService struct {
	auditRepository port.AuditLogPort
}

func NewAuditService(auditRepository port.AuditLogPort) *AuditService {
	return &AuditService{auditRepository: auditRepository}
}

// Record persists an audit entry together with its outbox event. Callers
// pass pre-rendered JSON snapshots so "before" is captured ahead of the
// mutation.
func (s *AuditService) Record(ctx context.Context, entityName string, entityID domain.ID, action, oldValue, newValue string) {
	log, err := domain.NewAuditLog(entityName, entityID, action, oldValue, newValue, utils.ActorFromContext(ctx))
	if err != nil {
		logger.Error(ctx, "audit: build log failed", err, map[string]any{
			"entity_name": entityName,
			"entity_id":   entityID,
			"action":      action,
		})
		return
	}

	if err := s.auditRepository.CreateWithOutbox(ctx, log, domain.NewAuditEvent(log)); err != nil {
		logger.Error(ctx, "audit: create failed", err, map[string]any{
			"entity_name": entityName,
			"entity_id":   entityID,
			"action":      action,
		})
	}
}

func (s *AuditService) GetByEntityID(ctx context.Context, entityID domain.ID, limit, offset int64) ([]*domain.AuditLog, error) {
	return s.auditRepository.GetByEntityID(ctx, entityID, limit, offset)
}
