package repository

import (
	"distrisur/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// InvoiceFilter narrows invoice listings. ExcludeID leaves one invoice out of
// the result, used when validating an in-flight edit of that same invoice.
// ProductIDs matches invoices carrying any of the given products.
type InvoiceFilter struct {
	Status     string
	CustomerID *primitive.ObjectID
	ShipmentID *primitive.ObjectID
	ExcludeID  *primitive.ObjectID
	ProductIDs []primitive.ObjectID
}

type InvoiceRepository interface {
	FindByID(id primitive.ObjectID) (*models.Invoice, error)
	Find(filter InvoiceFilter) ([]*models.Invoice, error)
	Create(invoice *models.Invoice) error
	Save(invoice *models.Invoice) error
	DeleteByID(id primitive.ObjectID) error
}
