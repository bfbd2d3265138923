package services

import (
	"distrisur/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StockLedger treats a shipment's product quantities as a finite pool and
// computes how much of each product the invoices against that shipment have
// reserved. Figures are always recomputed from the current invoice set,
// never kept as incremental counters, so a recompute after any single
// invoice mutation yields a correct result regardless of what happened
// before it.
type StockLedger struct {
	Shipments repository.ShipmentRepository
	Invoices  repository.InvoiceRepository
}

func NewStockLedger(shipments repository.ShipmentRepository, invoices repository.InvoiceRepository) *StockLedger {
	return &StockLedger{Shipments: shipments, Invoices: invoices}
}

// Reserved sums the invoiced quantity per product across all invoices of the
// shipment. excludeInvoiceID leaves one invoice out, used when validating an
// edit of that invoice so its prior reservation does not count against
// itself.
func (l *StockLedger) Reserved(shipmentID primitive.ObjectID, excludeInvoiceID *primitive.ObjectID) (map[primitive.ObjectID]float64, error) {
	invoices, err := l.Invoices.Find(repository.InvoiceFilter{
		ShipmentID: &shipmentID,
		ExcludeID:  excludeInvoiceID,
	})
	if err != nil {
		return nil, err
	}

	reserved := make(map[primitive.ObjectID]float64)
	for _, inv := range invoices {
		for _, p := range inv.Products {
			reserved[p.ProductID] += p.Quantity
		}
	}
	return reserved, nil
}

// Available returns shipped quantity minus current reservation for every
// product line of the shipment.
func (l *StockLedger) Available(shipmentID primitive.ObjectID) (map[primitive.ObjectID]float64, error) {
	shipment, err := l.Shipments.FindByID(shipmentID)
	if err != nil {
		return nil, err
	}
	if shipment == nil {
		return nil, notFound("Shipment not found")
	}

	reserved, err := l.Reserved(shipmentID, nil)
	if err != nil {
		return nil, err
	}

	available := make(map[primitive.ObjectID]float64, len(shipment.Products))
	for _, p := range shipment.Products {
		available[p.ProductID] = p.Quantity - reserved[p.ProductID]
	}
	return available, nil
}

// Recalculate sets every shipment line's stock to quantity minus the current
// reservation and persists the shipment. Called after every invoice create,
// update or delete touching the shipment. Idempotent: repeating it without
// an intervening invoice change yields identical stock values.
func (l *StockLedger) Recalculate(shipmentID primitive.ObjectID) error {
	shipment, err := l.Shipments.FindByID(shipmentID)
	if err != nil {
		return err
	}
	if shipment == nil {
		return notFound("Shipment not found")
	}

	reserved, err := l.Reserved(shipmentID, nil)
	if err != nil {
		return err
	}

	for i := range shipment.Products {
		p := &shipment.Products[i]
		p.Stock = p.Quantity - reserved[p.ProductID]
	}
	return l.Shipments.Save(shipment)
}
