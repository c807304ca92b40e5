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

type ProductRepository struct {
	*BaseRepository[document.ProductDocument]
	collection *mongo.Collection
}

func NewProductRepository(db *mongo.Database) port.ProductPort {
	return &ProductRepository{
		BaseRepository: NewBaseRepository[document.ProductDocument](db, "products"),
		collection:     db.Collection("products"),
	}
}

func (r *ProductRepository) Create(ctx context.Context, product *domain.Product) error {
	doc := document.ToProductDocument(product)

	result, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return parseError(err)
	}

	return product.SetID(domain.ID(result.InsertedID.(primitive.ObjectID).Hex()))
}

func (r *ProductRepository) GetByID(ctx context.Context, id domain.ID) (*domain.Product, error) {
	doc, err := r.FindByID(ctx, string(id))
	if err != nil {
		return nil, err
	}

	return doc.ToDomain(), nil
}

func (r *ProductRepository) Find(ctx context.Context, query port.ProductQuery) ([]*domain.Product, int64, error) {
	filter := bson.M{}
	if query.Name != "" {
		filter["name"] = containsIgnoreCase(query.Name)
	}

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

	products := make([]*domain.Product, len(docs))
	for i, doc := range docs {
		products[i] = doc.ToDomain()
	}

	return products, total, nil
}

func (r *ProductRepository) FindOneByName(ctx context.Context, name string) (*domain.Product, error) {
	doc, err := r.FindOne(ctx, bson.M{"name": name})
	if err != nil {
		if serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return doc.ToDomain(), nil
}

func (r *ProductRepository) ExistsOtherWithName(ctx context.Context, excludeID domain.ID, name string) (bool, error) {
	objectID, err := primitive.ObjectIDFromHex(string(excludeID))
	if err != nil {
		return false, parseError(err)
	}

	count, err := r.Count(ctx, bson.M{
		"_id":  bson.M{"$ne": objectID},
		"name": name,
	})
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *ProductRepository) Update(ctx context.Context, product *domain.Product) error {
	return r.BaseRepository.Update(ctx, string(product.ID), bson.M{
		"name":       product.Name(),
		"price":      product.Price(),
		"updated_at": product.UpdatedAt,
	})
}

func (r *ProductRepository) Delete(ctx context.Context, id domain.ID) error {
	return r.DeleteByID(ctx, string(id))
}
