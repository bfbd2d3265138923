package services

import (
	"fmt"
	"time"

	"distrisur/models"
	"distrisur/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// InvoiceLineInput is one requested allocation of a shipment product. The
// descriptive snapshot fields are copied from the shipment line server-side;
// the subtotal is always recomputed, never trusted from input.
type InvoiceLineInput struct {
	ProductID primitive.ObjectID `json:"productId"`
	Quantity  float64            `json:"quantity"`
	SalePrice float64            `json:"salePrice"`
}

type CreateInvoiceInput struct {
	CustomerID primitive.ObjectID `json:"customerId"`
	ShipmentID primitive.ObjectID `json:"shipmentId"`
	Date       *time.Time         `json:"date,omitempty"`
	Products   []InvoiceLineInput `json:"products"`
}

type UpdateInvoiceInput struct {
	CustomerID *primitive.ObjectID `json:"customerId,omitempty"`
	Date       *time.Time          `json:"date,omitempty"`
	Products   []InvoiceLineInput  `json:"products,omitempty"`
}

// InvoiceService orchestrates the invoice lifecycle: stock validation
// against the ledger, total computation, edit/delete legality, and the
// stock recompute every mutation triggers.
type InvoiceService struct {
	Invoices  repository.InvoiceRepository
	Shipments repository.ShipmentRepository
	Customers repository.CustomerRepository
	Payments  repository.PaymentRepository
	Ledger    *StockLedger
	Numbers   *Numbering
}

func NewInvoiceService(
	invoices repository.InvoiceRepository,
	shipments repository.ShipmentRepository,
	customers repository.CustomerRepository,
	payments repository.PaymentRepository,
	ledger *StockLedger,
	numbers *Numbering,
) *InvoiceService {
	return &InvoiceService{
		Invoices:  invoices,
		Shipments: shipments,
		Customers: customers,
		Payments:  payments,
		Ledger:    ledger,
		Numbers:   numbers,
	}
}

// ValidateStock checks every requested line against the shipment's shipped
// quantities minus what other invoices already reserve. It reports all
// violations at once instead of stopping at the first one.
func (s *InvoiceService) ValidateStock(shipmentID primitive.ObjectID, requested []InvoiceLineInput, excludeInvoiceID *primitive.ObjectID) (bool, []string, error) {
	shipment, err := s.Shipments.FindByID(shipmentID)
	if err != nil {
		return false, nil, err
	}
	if shipment == nil {
		return false, []string{"Shipment not found"}, nil
	}

	reserved, err := s.Ledger.Reserved(shipmentID, excludeInvoiceID)
	if err != nil {
		return false, nil, err
	}

	var violations []string
	for _, req := range requested {
		line, ok := findShipmentLine(shipment, req.ProductID)
		if !ok {
			violations = append(violations,
				fmt.Sprintf("Product %s not found in shipment", req.ProductID.Hex()))
			continue
		}

		available := line.Quantity - reserved[req.ProductID]
		if req.Quantity > available {
			violations = append(violations,
				fmt.Sprintf("Insufficient stock for %s. Available: %g, Requested: %g",
					line.Name, available, req.Quantity))
		}
	}
	return len(violations) == 0, violations, nil
}

// Create persists a new invoice and recomputes the shipment's stock. The
// invoice is created before the recompute so the reservation scan sees it.
func (s *InvoiceService) Create(input CreateInvoiceInput) (*models.Invoice, error) {
	if len(input.Products) == 0 {
		return nil, invalidInput("Customer, shipment, and products are required")
	}

	customer, err := s.Customers.FindByID(input.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, invalidReference("Customer not found")
	}

	shipment, err := s.Shipments.FindByID(input.ShipmentID)
	if err != nil {
		return nil, err
	}
	if shipment == nil {
		return nil, invalidReference("Shipment not found")
	}

	valid, violations, err := s.ValidateStock(input.ShipmentID, input.Products, nil)
	if err != nil {
		return nil, err
	}
	if !valid {
		return nil, &InsufficientStockError{Violations: violations}
	}

	lines, total, err := buildInvoiceLines(shipment, input.Products)
	if err != nil {
		return nil, err
	}

	invoice := &models.Invoice{
		InvoiceNumber: s.Numbers.Next("invoices", "FACT"),
		CustomerID:    input.CustomerID,
		CustomerName:  customer.Name,
		ShipmentID:    input.ShipmentID,
		Date:          dateOrNow(input.Date),
		Products:      lines,
		Total:         total,
		Status:        models.InvoiceUnpaid,
	}

	if err := s.Invoices.Create(invoice); err != nil {
		return nil, err
	}
	if err := s.Ledger.Recalculate(input.ShipmentID); err != nil {
		return nil, err
	}
	return invoice, nil
}

// Update edits an invoice subject to the edit legality check. A change to
// the product lines is re-validated excluding this invoice's own
// reservation, so the invoice does not double-count against itself.
func (s *InvoiceService) Update(id primitive.ObjectID, input UpdateInvoiceInput) (*models.Invoice, error) {
	invoice, err := s.Invoices.FindByID(id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, notFound("Invoice not found")
	}

	if can, reason := canEditInvoice(invoice); !can {
		return nil, illegalState(reason)
	}

	if len(input.Products) > 0 {
		shipment, err := s.Shipments.FindByID(invoice.ShipmentID)
		if err != nil {
			return nil, err
		}
		if shipment == nil {
			return nil, invalidReference("Shipment not found")
		}

		valid, violations, err := s.ValidateStock(invoice.ShipmentID, input.Products, &invoice.ID)
		if err != nil {
			return nil, err
		}
		if !valid {
			return nil, &InsufficientStockError{Violations: violations}
		}

		lines, total, err := buildInvoiceLines(shipment, input.Products)
		if err != nil {
			return nil, err
		}
		invoice.Products = lines
		invoice.Total = total
	}

	if input.CustomerID != nil {
		customer, err := s.Customers.FindByID(*input.CustomerID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, invalidReference("Customer not found")
		}
		invoice.CustomerID = customer.ID
		invoice.CustomerName = customer.Name
	}
	if input.Date != nil {
		invoice.Date = *input.Date
	}

	if err := s.Invoices.Save(invoice); err != nil {
		return nil, err
	}
	if err := s.Ledger.Recalculate(invoice.ShipmentID); err != nil {
		return nil, err
	}
	return invoice, nil
}

// Delete removes an invoice and returns its reservation to the shipment's
// pool. Invoices with payments, approved or not, cannot be deleted.
func (s *InvoiceService) Delete(id primitive.ObjectID) error {
	invoice, err := s.Invoices.FindByID(id)
	if err != nil {
		return err
	}
	if invoice == nil {
		return notFound("Invoice not found")
	}

	can, reason, err := s.CanDelete(id)
	if err != nil {
		return err
	}
	if !can {
		return illegalState(reason)
	}

	if err := s.Invoices.DeleteByID(id); err != nil {
		return err
	}
	return s.Ledger.Recalculate(invoice.ShipmentID)
}

// CanEdit reports whether the invoice may be edited and why not.
func (s *InvoiceService) CanEdit(id primitive.ObjectID) (bool, string, error) {
	invoice, err := s.Invoices.FindByID(id)
	if err != nil {
		return false, "", err
	}
	if invoice == nil {
		return false, "Invoice not found", nil
	}
	can, reason := canEditInvoice(invoice)
	return can, reason, nil
}

// CanDelete reports whether the invoice may be deleted and why not.
func (s *InvoiceService) CanDelete(id primitive.ObjectID) (bool, string, error) {
	payments, err := s.Payments.Find(repository.PaymentFilter{InvoiceID: &id})
	if err != nil {
		return false, "", err
	}
	if len(payments) > 0 {
		return false, "Cannot delete invoice with payments. Delete payments first.", nil
	}
	return true, "", nil
}

// TotalPaid sums the approved payment amounts for the invoice.
func (s *InvoiceService) TotalPaid(invoiceID primitive.ObjectID) (float64, error) {
	approved := true
	payments, err := s.Payments.Find(repository.PaymentFilter{
		InvoiceID: &invoiceID,
		Approved:  &approved,
	})
	if err != nil {
		return 0, err
	}

	var total float64
	for _, p := range payments {
		total += p.Amount
	}
	return total, nil
}

func canEditInvoice(invoice *models.Invoice) (bool, string) {
	if invoice.Status == models.InvoicePaid {
		return false, "Cannot edit fully paid invoices"
	}
	return true, ""
}

func findShipmentLine(shipment *models.Shipment, productID primitive.ObjectID) (models.ShipmentProduct, bool) {
	for _, p := range shipment.Products {
		if p.ProductID == productID {
			return p, true
		}
	}
	return models.ShipmentProduct{}, false
}

// buildInvoiceLines copies the descriptive snapshots from the shipment's
// lines and recomputes each subtotal and the invoice total.
func buildInvoiceLines(shipment *models.Shipment, requested []InvoiceLineInput) ([]models.InvoiceProduct, float64, error) {
	lines := make([]models.InvoiceProduct, 0, len(requested))
	var total float64
	for _, req := range requested {
		if req.Quantity <= 0 {
			return nil, 0, invalidInput("Quantity must be at least 1")
		}
		if req.SalePrice < 0 {
			return nil, 0, invalidInput("Price cannot be negative")
		}
		src, ok := findShipmentLine(shipment, req.ProductID)
		if !ok {
			return nil, 0, invalidReference(
				fmt.Sprintf("Product %s not found in shipment", req.ProductID.Hex()))
		}
		subtotal := req.Quantity * req.SalePrice
		lines = append(lines, models.InvoiceProduct{
			ProductID: req.ProductID,
			Number:    src.Number,
			Category:  src.Category,
			Name:      src.Name,
			Quantity:  req.Quantity,
			SalePrice: req.SalePrice,
			Subtotal:  subtotal,
		})
		total += subtotal
	}
	return lines, total, nil
}

func dateOrNow(t *time.Time) time.Time {
	if t != nil {
		return *t
	}
	return time.Now().UTC()
}
