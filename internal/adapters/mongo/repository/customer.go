package repository

import (
	"context"

	"github.com/ordo-labs/order-api/internal/adapters/mongo/document"
	"github.com/ordo-labs/order-api/internal/core/domain"
	"github.com/ordo-labs/order-api/internal/core/port"
	"github.com/ordo-labs/order-api/internal/core/serviceerrors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CustomerRepository struct {
	*BaseRepository[document.CustomerDocument]
	collection *mongo.Collection
}

func NewCustomerRepository(db *mongo.Database) port.CustomerPort {
	return &CustomerRepository{
		BaseRepository: NewBaseRepository[document.CustomerDocument](db, "customers"),
		collection:     db.Collection("customers"),
	}
}

func (r *CustomerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	doc := document.ToCustomerDocument(customer)

	result, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return parseError(err)
	}

	return customer.SetID(domain.ID(result.InsertedID.(primitive.ObjectID).Hex()))
}

func (r *CustomerRepository) GetByID(ctx context.Context, id domain.ID) (*domain.Customer, error) {
	doc, err := r.FindByID(ctx, string(id))
	if err != nil {
		return nil, err
	}

	return doc.ToDomain(), nil
}

func buildCustomerFilter(query port.CustomerQuery) bson.M {
	filter := bson.M{}
	if query.Name != "" {
		filter["name"] = containsIgnoreCase(query.Name)
	}
	if query.LastName != "" {
		filter["last_name"] = containsIgnoreCase(query.LastName)
	}
	if query.Address != "" {
		filter["address"] = containsIgnoreCase(query.Address)
	}
	if query.PostalCode != "" {
		filter["postal_code"] = containsIgnoreCase(query.PostalCode)
	}
	return filter
}

func (r *CustomerRepository) Find(ctx context.Context, query port.CustomerQuery) ([]*domain.Customer, int64, error) {
	filter := buildCustomerFilter(query)

	total, err := r.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetLimit(query.PageLength).
		SetSkip(query.PageIndex * query.PageLength).
		SetSort(bson.D{{Key: "created_at", Value: -1}})

	docs, err := r.BaseRepository.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}

	customers := make([]*domain.Customer, len(docs))
	for i, doc := range docs {
		customers[i] = doc.ToDomain()
	}

	return customers, total, nil
}

func (r *CustomerRepository) FindOneByName(ctx context.Context, name, lastName string) (*domain.Customer, error) {
	doc, err := r.FindOne(ctx, bson.M{"name": name, "last_name": lastName})
	if err != nil {
		if serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return doc.ToDomain(), nil
}

func (r *CustomerRepository) ExistsOther(ctx context.Context, excludeID domain.ID, name, lastName, address, postalCode string) (bool, error) {
	objectID, err := primitive.ObjectIDFromHex(string(excludeID))
	if err != nil {
		return false, parseError(err)
	}

	count, err := r.Count(ctx, bson.M{
		"_id":         bson.M{"$ne": objectID},
		"name":        name,
		"last_name":   lastName,
		"address":     address,
		"postal_code": postalCode,
	})
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *CustomerRepository) Update(ctx context.Context, customer *domain.Customer) error {
	return r.BaseRepository.Update(ctx, string(customer.ID), bson.M{
		"name":        customer.Name(),
		"last_name":   customer.LastName(),
		"address":     customer.Address(),
		"postal_code": customer.PostalCode(),
		"updated_at":  customer.UpdatedAt,
	})
}

func (r *CustomerRepository) Delete(ctx context.Context, id domain.ID) error {
	return r.DeleteByID(ctx, string(id))
}
