package document

import (
	"time"

	"github.com/ordo-labs/order-api/internal/core/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CustomerDocument struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Name       string             `bson:"name"`
	LastName   string             `bson:"last_name"`
	Address    string             `bson:"address"`
	PostalCode string             `bson:"postal_code"`
	CreatedAt  time.Time          `bson:"created_at"`
	UpdatedAt  *time.Time         `bson:"updated_at,omitempty"`
}

func (doc CustomerDocument) GetID() primitive.ObjectID {
	return doc.ID
}

func (doc *CustomerDocument) ToDomain() *domain.Customer {
	return domain.HydrateCustomer(
		domain.ID(doc.ID.Hex()),
		doc.Name,
		doc.LastName,
		doc.Address,
		doc.PostalCode,
		doc.CreatedAt,
		doc.UpdatedAt,
	)
}

func ToCustomerDocument(c *domain.Customer) *CustomerDocument {
	doc := &CustomerDocument{
		Name:       c.Name(),
		LastName:   c.LastName(),
		Address:    c.Address(),
		PostalCode: c.PostalCode(),
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}

	if c.ID != "" {
		objectID, _ := primitive.ObjectIDFromHex(string(c.ID))
		doc.ID = objectID
	}

	return doc
}
