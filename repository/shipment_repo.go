package repository

import (
	"distrisur/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ShipmentFilter struct {
	Status string
	Driver *primitive.ObjectID
}

type ShipmentRepository interface {
	FindByID(id primitive.ObjectID) (*models.Shipment, error)
	Find(filter ShipmentFilter) ([]*models.Shipment, error)
	Create(shipment *models.Shipment) error
	Save(shipment *models.Shipment) error
	DeleteByID(id primitive.ObjectID) error
}
