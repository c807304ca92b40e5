package document

import (
	"time"

	"github.com/ordo-labs/order-api/internal/core/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderItemDocument stores only the product reference, never a price or
// name snapshot. The product association is populated on load.
type OrderItemDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	ProductID primitive.ObjectID `bson:"product_id"`
	Quantity  int                `bson:"quantity"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt *time.Time         `bson:"updated_at,omitempty"`
}

type OrderDocument struct {
	ID         primitive.ObjectID  `bson:"_id,omitempty"`
	CustomerID primitive.ObjectID  `bson:"customer_id"`
	OrderDate  time.Time           `bson:"order_date"`
	TotalPrice float64             `bson:"total_price"`
	Items      []OrderItemDocument `bson:"items"`
	CreatedAt  time.Time           `bson:"created_at"`
	UpdatedAt  *time.Time          `bson:"updated_at,omitempty"`
}

func (doc OrderDocument) GetID() primitive.ObjectID {
	return doc.ID
}

// ToDomain rebuilds the aggregate and attaches every referenced product it
// finds in the given map. A missing product leaves the association nil.
func (doc *OrderDocument) ToDomain(products map[domain.ID]*domain.Product) *domain.Order {
	items := make([]*domain.Item, len(doc.Items))
	for i, itemDoc := range doc.Items {
		productID := domain.ID(itemDoc.ProductID.Hex())
		item := domain.HydrateItem(
			domain.ID(itemDoc.ID.Hex()),
			productID,
			itemDoc.Quantity,
			itemDoc.CreatedAt,
			itemDoc.UpdatedAt,
		)
		if product, ok := products[productID]; ok {
			_ = item.AttachProduct(product)
		}
		items[i] = item
	}

	return domain.HydrateOrder(
		domain.ID(doc.ID.Hex()),
		domain.ID(doc.CustomerID.Hex()),
		doc.OrderDate,
		doc.TotalPrice,
		items,
		doc.CreatedAt,
		doc.UpdatedAt,
	)
}

func ToOrderDocument(order *domain.Order) *OrderDocument {
	domainItems := order.Items()
	items := make([]OrderItemDocument, len(domainItems))
	for i, item := range domainItems {
		itemDoc := OrderItemDocument{
			Quantity:  item.Quantity(),
			CreatedAt: item.CreatedAt,
			UpdatedAt: item.UpdatedAt,
		}

		if item.ID != "" {
			objectID, _ := primitive.ObjectIDFromHex(string(item.ID))
			itemDoc.ID = objectID
		} else {
			itemDoc.ID = primitive.NewObjectID()
		}

		if item.ProductID != "" {
			productID, _ := primitive.ObjectIDFromHex(string(item.ProductID))
			itemDoc.ProductID = productID
		}

		items[i] = itemDoc
	}

	doc := &OrderDocument{
		OrderDate:  order.OrderDate,
		TotalPrice: order.TotalPrice(),
		Items:      items,
		CreatedAt:  order.CreatedAt,
		UpdatedAt:  order.UpdatedAt,
	}

	if order.ID != "" {
		objectID, _ := primitive.ObjectIDFromHex(string(order.ID))
		doc.ID = objectID
	}

	if order.CustomerID != "" {
		customerID, _ := primitive.ObjectIDFromHex(string(order.CustomerID))
		doc.CustomerID = customerID
	}

	return doc
}
