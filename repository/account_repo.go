package repository

import (
	"distrisur/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TransferAccountRepository interface {
	FindByID(id primitive.ObjectID) (*models.TransferAccount, error)
	FindAll() ([]*models.TransferAccount, error)
	Create(account *models.TransferAccount) error
	Save(account *models.TransferAccount) error
	DeleteByID(id primitive.ObjectID) error
}
