package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TransferAccount is a bank account label offered for transfer payments.
type TransferAccount struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt *time.Time         `json:"updated_at,omitempty" bson:"updated_at,omitempty"`
}
