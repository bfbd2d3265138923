package repository

import (
	"distrisur/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductFilter narrows product listings. Category matches case-insensitively
// as a substring.
type ProductFilter struct {
	ActiveOnly bool
	Category   string
}

type ProductRepository interface {
	FindByID(id primitive.ObjectID) (*models.Product, error)
	Find(filter ProductFilter) ([]*models.Product, error)
	FindByIDs(ids []primitive.ObjectID) ([]*models.Product, error)
	Create(product *models.Product) error
	Save(product *models.Product) error
	DeleteByID(id primitive.ObjectID) error
}
