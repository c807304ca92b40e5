package document

import (
	"time"

	"github.com/ordo-labs/order-api/internal/core/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AuditLogDocument struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	EntityName string             `bson:"entity_name"`
	EntityID   primitive.ObjectID `bson:"entity_id"`
	ActionType string             `bson:"action_type"`
	OldValue   string             `bson:"old_value"`
	NewValue   string             `bson:"new_value"`
	ChangedBy  string             `bson:"changed_by"`
	CreatedAt  time.Time          `bson:"created_at"`
}

func (doc AuditLogDocument) GetID() primitive.ObjectID {
	return doc.ID
}

func (doc *AuditLogDocument) ToDomain() *domain.AuditLog {
	return domain.HydrateAuditLog(
		domain.ID(doc.ID.Hex()),
		doc.EntityName,
		domain.ID(doc.EntityID.Hex()),
		doc.ActionType,
		doc.OldValue,
		doc.NewValue,
		doc.ChangedBy,
		doc.CreatedAt,
	)
}

func ToAuditLogDocument(log *domain.AuditLog) *AuditLogDocument {
	doc := &AuditLogDocument{
		EntityName: log.EntityName,
		ActionType: log.ActionType,
		OldValue:   log.OldValue,
		NewValue:   log.NewValue,
		ChangedBy:  log.ChangedBy,
		CreatedAt:  log.CreatedAt,
	}

	if log.ID != "" {
		objectID, _ := primitive.ObjectIDFromHex(string(log.ID))
		doc.ID = objectID
	}

	if log.EntityID != "" {
		entityID, _ := primitive.ObjectIDFromHex(string(log.EntityID))
		doc.EntityID = entityID
	}

	return doc
}
