package repository

import (
	"distrisur/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CustomerRepository interface {
	FindByID(id primitive.ObjectID) (*models.Customer, error)
	FindAll() ([]*models.Customer, error)
	Create(customer *models.Customer) error
	Save(customer *models.Customer) error
	DeleteByID(id primitive.ObjectID) error
}
