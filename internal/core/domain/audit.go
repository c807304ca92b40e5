package domain

import (
	"strings"
	"time"
)

const (
	AuditActionCreate = "create"
	AuditActionUpdate = "update"
	AuditActionDelete = "delete"
)

// AuditLog is an append-only record of a change to an aggregate: who changed
// what, and the JSON snapshots before and after.
type AuditLog struct {
	Entity
	EntityName string
	EntityID   ID
	ActionType string
	OldValue   string
	NewValue   string
	ChangedBy  string
}

func NewAuditLog(entityName string, entityID ID, actionType, oldValue, newValue, changedBy string) (*AuditLog, error) {
	if strings.TrimSpace(entityName) == "" {
		return nil, NewArgumentError("entity name must not be empty")
	}
	if !ValidateID(string(entityID)) {
		return nil, NewArgumentError("entity id must not be default")
	}
	if strings.TrimSpace(actionType) == "" {
		return nil, NewArgumentError("action type must not be empty")
	}
	if strings.TrimSpace(oldValue) == "" {
		return nil, NewArgumentError("old value must not be empty")
	}
	if strings.TrimSpace(newValue) == "" {
		return nil, NewArgumentError("new value must not be empty")
	}
	if strings.TrimSpace(changedBy) == "" {
		return nil, NewArgumentError("changed by must not be empty")
	}

	return &AuditLog{
		Entity:     newEntity(),
		EntityName: entityName,
		EntityID:   entityID,
		ActionType: actionType,
		OldValue:   oldValue,
		NewValue:   newValue,
		ChangedBy:  changedBy,
	}, nil
}

// AuditEvent is the broker-facing projection of an audit log entry.
type AuditEvent struct {
	EntityName string    `json:"entity_name"`
	EntityID   ID        `json:"entity_id"`
	ActionType string    `json:"action_type"`
	ChangedBy  string    `json:"changed_by"`
	OccurredAt time.Time `json:"occurred_at"`
}

func (e *AuditEvent) GetName() string {
	return e.EntityName + "." + e.ActionType
}

func (e *AuditEvent) GetEntityName() string {
	return "audit"
}

func NewAuditEvent(log *AuditLog) *AuditEvent {
	return &AuditEvent{
		EntityName: log.EntityName,
		EntityID:   log.EntityID,
		ActionType: log.ActionType,
		ChangedBy:  log.ChangedBy,
		OccurredAt: log.CreatedAt,
	}
}

func HydrateAuditLog(id ID, entityName string, entityID ID, actionType, oldValue, newValue, changedBy string, createdAt time.Time) *AuditLog {
	return &AuditLog{
		Entity:     Entity{ID: id, CreatedAt: createdAt},
		EntityName: entityName,
		EntityID:   entityID,
		ActionType: actionType,
		OldValue:   oldValue,
		NewValue:   newValue,
		ChangedBy:  changedBy,
	}
}
