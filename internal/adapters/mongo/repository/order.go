package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ordo-labs/order-api/internal/adapters/mongo/document"
	"github.com/ordo-labs/order-api/internal/core/domain"
	"github.com/ordo-labs/order-api/internal/core/logger"
	"github.com/ordo-labs/order-api/internal/core/port"
)

type OrderRepository struct {
	*BaseRepository[document.OrderDocument]
	collection *mongo.Collection
	products   *mongo.Collection
}

func NewOrderRepository(db *mongo.Database) port.OrderPort {
	repo := &OrderRepository{
		BaseRepository: NewBaseRepository[document.OrderDocument](db, "orders"),
		collection:     db.Collection("orders"),
		products:       db.Collection("products"),
	}

	if err := repo.createIndexes(context.Background()); err != nil {
		logger.Error(context.Background(), "failed to create indexes", err, map[string]any{
			"collection": "orders",
		})
	}

	return repo
}

func (r *OrderRepository) createIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "customer_id", Value: 1}},
			Options: options.Index().SetUnique(false),
		},
		{
			Keys:    bson.D{{Key: "order_date", Value: 1}},
			Options: options.Index().SetUnique(false),
		},
		{
			Keys: bson.D{
				{Key: "customer_id", Value: 1},
				{Key: "order_date", Value: 1},
			},
			Options: options.Index().SetUnique(false),
		},
	}

	_, err := r.collection.Indexes().CreateMany(ctx, indexes)
	return err
}

// loadProducts fetches every product referenced by the given documents in a
// single query, keyed by hex ID for attachment.
func (r *OrderRepository) loadProducts(ctx context.Context, docs ...document.OrderDocument) (map[domain.ID]*domain.Product, error) {
	ids := make([]primitive.ObjectID, 0)
	seen := make(map[primitive.ObjectID]bool)
	for _, doc := range docs {
		for _, item := range doc.Items {
			if !seen[item.ProductID] {
				seen[item.ProductID] = true
				ids = append(ids, item.ProductID)
			}
		}
	}
	if len(ids) == 0 {
		return map[domain.ID]*domain.Product{}, nil
	}

	cursor, err := r.products.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, parseError(err)
	}
	defer cursor.Close(ctx)

	var productDocs []document.ProductDocument
	if err := cursor.All(ctx, &productDocs); err != nil {
		return nil, parseError(err)
	}

	products := make(map[domain.ID]*domain.Product, len(productDocs))
	for i := range productDocs {
		product := productDocs[i].ToDomain()
		products[product.ID] = product
	}

	return products, nil
}

func (r *OrderRepository) Create(ctx context.Context, order *domain.Order) error {
	if order.ID != "" {
		return errors.New("cannot create order with existing ID")
	}

	doc := document.ToOrderDocument(order)

	result, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return parseError(err)
	}

	if err := order.SetID(domain.ID(result.InsertedID.(primitive.ObjectID).Hex())); err != nil {
		return err
	}

	items := order.Items()
	for i := range items {
		if items[i].ID == "" {
			if err := items[i].SetID(domain.ID(doc.Items[i].ID.Hex())); err != nil {
				return err
			}
		}
	}

	return nil
}

func (r *OrderRepository) GetByID(ctx context.Context, id domain.ID) (*domain.Order, error) {
	doc, err := r.FindByID(ctx, string(id))
	if err != nil {
		return nil, err
	}

	products, err := r.loadProducts(ctx, *doc)
	if err != nil {
		return nil, err
	}

	return doc.ToDomain(products), nil
}

func (r *OrderRepository) Find(ctx context.Context, query port.OrderQuery) ([]*domain.Order, int64, error) {
	filter := bson.M{}
	if query.CustomerID != nil {
		customerID, err := primitive.ObjectIDFromHex(string(*query.CustomerID))
		if err != nil {
			return nil, 0, parseError(err)
		}
		filter["customer_id"] = customerID
	}
	dateRange := bson.M{}
	if query.OrderDateStart != nil {
		dateRange["$gte"] = *query.OrderDateStart
	}
	if query.OrderDateEnd != nil {
		dateRange["$lte"] = *query.OrderDateEnd
	}
	if len(dateRange) > 0 {
		filter["order_date"] = dateRange
	}

	total, err := r.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	sortDirection := 1
	if query.SortDescending {
		sortDirection = -1
	}
	opts := options.Find().
		SetLimit(query.PageLength).
		SetSkip(query.PageIndex * query.PageLength).
		SetSort(bson.D{{Key: "order_date", Value: sortDirection}})

	docs, err := r.BaseRepository.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}

	products, err := r.loadProducts(ctx, docs...)
	if err != nil {
		return nil, 0, err
	}

	orders := make([]*domain.Order, len(docs))
	for i := range docs {
		orders[i] = docs[i].ToDomain(products)
	}

	return orders, total, nil
}

func (r *OrderRepository) Update(ctx context.Context, order *domain.Order) error {
	doc := document.ToOrderDocument(order)

	return r.BaseRepository.Update(ctx, string(order.ID), bson.M{
		"items":       doc.Items,
		"total_price": doc.TotalPrice,
		"updated_at":  order.UpdatedAt,
	})
}

func (r *OrderRepository) Delete(ctx context.Context, id domain.ID) error {
	return r.DeleteByID(ctx, string(id))
}
