package repository

import (
	"distrisur/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DriverRepository interface {
	FindByID(id primitive.ObjectID) (*models.Driver, error)
	FindAll(activeOnly bool) ([]*models.Driver, error)
	Create(driver *models.Driver) error
	Save(driver *models.Driver) error
	DeleteByID(id primitive.ObjectID) error
}
