package repository

import (
	"context"
	"encoding/json"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ordo-labs/order-api/internal/adapters/mongo/document"
	"github.com/ordo-labs/order-api/internal/adapters/outbox"
	"github.com/ordo-labs/order-api/internal/core/domain"
	"github.com/ordo-labs/order-api/internal/core/port"
)

type AuditLogRepository struct {
	*BaseRepository[document.AuditLogDocument]
	collection *mongo.Collection
	outbox     outbox.Repository
	txManager  port.TransactionManager
}

func NewAuditLogRepository(db *mongo.Database, outbox outbox.Repository, txManager port.TransactionManager) port.AuditLogPort {
	return &AuditLogRepository{
		BaseRepository: NewBaseRepository[document.AuditLogDocument](db, "audit_logs"),
		collection:     db.Collection("audit_logs"),
		outbox:         outbox,
		txManager:      txManager,
	}
}

// CreateWithOutbox writes the audit entry and its outbox event in one
// transaction so the event is published exactly when the entry exists.
func (r *AuditLogRepository) CreateWithOutbox(ctx context.Context, log *domain.AuditLog, event domain.Event) error {
	eventData, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return r.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		doc := document.ToAuditLogDocument(log)

		result, err := r.collection.InsertOne(txCtx, doc)
		if err != nil {
			return parseError(err)
		}
		if err := log.SetID(domain.ID(result.InsertedID.(primitive.ObjectID).Hex())); err != nil {
			return err
		}

		return r.outbox.Insert(txCtx, outbox.Entry{
			EventName:  event.GetName(),
			EntityName: event.GetEntityName(),
			EventData:  eventData,
		})
	})
}

func (r *AuditLogRepository) GetByEntityID(ctx context.Context, entityID domain.ID, limit, offset int64) ([]*domain.AuditLog, error) {
	objectID, err := primitive.ObjectIDFromHex(string(entityID))
	if err != nil {
		return nil, parseError(err)
	}

	opts := options.Find().
		SetLimit(limit).
		SetSkip(offset).
		SetSort(bson.D{{Key: "created_at", Value: -1}})

	docs, err := r.BaseRepository.Find(ctx, bson.M{"entity_id": objectID}, opts)
	if err != nil {
		return nil, err
	}

	logs := make([]*domain.AuditLog, len(docs))
	for i := range docs {
		logs[i] = docs[i].ToDomain()
	}

	return logs, nil
}
