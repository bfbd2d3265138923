package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	InvoiceUnpaid  = "unpaid"
	InvoicePartial = "partial"
	InvoicePaid    = "paid"
)

// InvoiceProduct is one allocation of a shipment's product to an invoice.
// The descriptive fields are snapshots, same as ShipmentProduct.
type InvoiceProduct struct {
	ProductID primitive.ObjectID `json:"productId" bson:"productId"`
	Number    string             `json:"number" bson:"number"`
	Category  string             `json:"category" bson:"category"`
	Name      string             `json:"name" bson:"name"`
	Quantity  float64            `json:"quantity" bson:"quantity"`
	SalePrice float64            `json:"salePrice" bson:"salePrice"`
	Subtotal  float64            `json:"subtotal" bson:"subtotal"`
}

type Invoice struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	InvoiceNumber string             `json:"invoiceNumber" bson:"invoiceNumber"`
	CustomerID    primitive.ObjectID `json:"customerId" bson:"customerId"`
	CustomerName  string             `json:"customerName" bson:"customerName"`
	ShipmentID    primitive.ObjectID `json:"shipmentId" bson:"shipmentId"`
	Date          time.Time          `json:"date" bson:"date"`
	Products      []InvoiceProduct   `json:"products" bson:"products"`
	Total         float64            `json:"total" bson:"total"`
	Status        string             `json:"status" bson:"status"` // unpaid | partial | paid
	CreatedAt     time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt     *time.Time         `json:"updated_at,omitempty" bson:"updated_at,omitempty"`

	// Computed for responses, never stored
	TotalPaid float64 `json:"totalPaid" bson:"-"`
}
