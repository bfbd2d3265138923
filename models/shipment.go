package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	ShipmentPending   = "pending"
	ShipmentInTransit = "in_transit"
	ShipmentDelivered = "delivered"
	ShipmentCancelled = "cancelled"
)

// ShipmentProduct is one product line inside a shipment. Number, category and
// name are snapshots copied from the product at creation time so the document
// stays stable if the product record changes later. Stock is the quantity
// still unreserved by invoices; it is recomputed from the current invoice set,
// never decremented in place.
type ShipmentProduct struct {
	ProductID primitive.ObjectID `json:"productId" bson:"productId"`
	Number    string             `json:"number" bson:"number"`
	Category  string             `json:"category" bson:"category"`
	Name      string             `json:"name" bson:"name"`
	Quantity  float64            `json:"quantity" bson:"quantity"`
	UnitPrice float64            `json:"unitPrice" bson:"unitPrice"`
	Subtotal  float64            `json:"subtotal" bson:"subtotal"`
	Stock     float64            `json:"stock" bson:"stock"`
}

type Shipment struct {
	ID               primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	ShipmentNumber   string             `json:"shipmentNumber" bson:"shipmentNumber"`
	Driver           primitive.ObjectID `json:"driver" bson:"driver"`
	DateShipment     time.Time          `json:"dateShipment" bson:"dateShipment"`
	DeliveryExpenses float64            `json:"deliveryExpenses" bson:"deliveryExpenses"`
	ProductsExpenses float64            `json:"productsExpenses" bson:"productsExpenses"`
	Products         []ShipmentProduct  `json:"products" bson:"products"`
	Status           string             `json:"status" bson:"status"` // pending | in_transit | delivered | cancelled
	CreatedAt        time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt        *time.Time         `json:"updated_at,omitempty" bson:"updated_at,omitempty"`

	// Populated for responses
	DriverInfo *Driver `json:"driverInfo,omitempty" bson:"-"`
}

// TotalStock sums the unreserved stock across all lines.
func (s *Shipment) TotalStock() float64 {
	var total float64
	for _, p := range s.Products {
		total += p.Stock
	}
	return total
}
