package document

import (
	"time"

	"github.com/ordo-labs/order-api/internal/core/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProductDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Price     float64            `bson:"price"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt *time.Time         `bson:"updated_at,omitempty"`
}

func (doc ProductDocument) GetID() primitive.ObjectID {
	return doc.ID
}

func (doc *ProductDocument) ToDomain() *domain.Product {
	return domain.HydrateProduct(
		domain.ID(doc.ID.Hex()),
		doc.Name,
		doc.Price,
		doc.CreatedAt,
		doc.UpdatedAt,
	)
}

func ToProductDocument(p *domain.Product) *ProductDocument {
	doc := &ProductDocument{
		Name:      p.Name(),
		Price:     p.Price(),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}

	if p.ID != "" {
		objectID, _ := primitive.ObjectIDFromHex(string(p.ID))
		doc.ID = objectID
	}

	return doc
}
