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

type AuditController struct {
	auditService *service.AuditService
}

func NewAuditController(auditService *service.AuditService) *AuditController {
	return &AuditController{auditService: auditService}
}

type AuditLogResponse struct {
	ID         string    `json:"id"`
	EntityName string    `json:"entity_name"`
	EntityID   string    `json:"entity_id"`
	ActionType string    `json:"action_type"`
	OldValue   string    `json:"old_value"`
	NewValue   string    `json:"new_value"`
	ChangedBy  string    `json:"changed_by"`
	CreatedAt  time.Time `json:"created_at"`
}

func NewAuditLogResponse(log *domain.AuditLog) AuditLogResponse {
	return AuditLogResponse{
		ID:         string(log.ID),
		EntityName: log.EntityName,
		EntityID:   string(log.EntityID),
		ActionType: log.ActionType,
		OldValue:   log.OldValue,
		NewValue:   log.NewValue,
		ChangedBy:  log.ChangedBy,
		CreatedAt:  log.CreatedAt,
	}
}

// ListByEntity godoc
// @Summary     List audit logs for an entity
// @Description Returns the change history of an entity, newest first
// @Tags        audit
// @Produce     json
// @Param       entityId    path     string true  "Entity ID"
// @Param       page_index  query    int    false "Page index"
// @Param       page_length query    int    false "Page length"
// @Success     200 {array}  AuditLogResponse
// @Failure     400 {object} handlers.ErrorResponse
// @Failure     500 {object} handlers.ErrorResponse
// @Router      /api/v1/audit-logs/{entityId} [get]
func (ac *AuditController) ListByEntity(c *gin.Context) {
	entityID := c.Param("entityId")
	if !domain.ValidateID(entityID) {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError("Invalid entity ID"))
		return
	}
	var pagination dto.Pagination
	if err := c.ShouldBindQuery(&pagination); err != nil {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError(err.Error()))
		return
	}
	pagination.Normalize()

	logs, err := ac.auditService.GetByEntityID(
		c.Request.Context(),
		domain.ID(entityID),
		pagination.PageLength,
		pagination.PageIndex*pagination.PageLength,
	)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}

	response := make([]AuditLogResponse, len(logs))
	for i, log := range logs {
		response[i] = NewAuditLogResponse(log)
	}

	c.JSON(http.StatusOK, response)
}
