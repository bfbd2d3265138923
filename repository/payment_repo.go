package repository

import (
	"distrisur/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PaymentFilter struct {
	Approved  *bool
	Type      string
	InvoiceID *primitive.ObjectID
}

type PaymentRepository interface {
	FindByID(id primitive.ObjectID) (*models.Payment, error)
	Find(filter PaymentFilter) ([]*models.Payment, error)
	Create(payment *models.Payment) error
	Save(payment *models.Payment) error
	DeleteByID(id primitive.ObjectID) error
}
