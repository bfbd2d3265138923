package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	PaymentCash     = "cash"
	PaymentTransfer = "transfer"
)

type Payment struct {
	ID                 primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	InvoiceID          primitive.ObjectID `json:"invoiceId" bson:"invoiceId"`
	Amount             float64            `json:"amount" bson:"amount"`
	Date               time.Time          `json:"date" bson:"date"`
	Type               string             `json:"type" bson:"type"` // cash | transfer
	AccountForTransfer string             `json:"accountForTransfer,omitempty" bson:"accountForTransfer,omitempty"`
	Notes              string             `json:"notes,omitempty" bson:"notes,omitempty"`
	Approved           bool               `json:"approved" bson:"approved"`
	CreatedAt          time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt          *time.Time         `json:"updated_at,omitempty" bson:"updated_at,omitempty"`

	// Populated for responses
	InvoiceInfo *Invoice `json:"invoice,omitempty" bson:"-"`
}
