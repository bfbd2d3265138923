package services

import (
	"fmt"
	"strings"
	"time"

	"distrisur/models"
	"distrisur/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ShipmentLineInput struct {
	ProductID primitive.ObjectID `json:"productId"`
	Quantity  float64            `json:"quantity"`
	UnitPrice float64            `json:"unitPrice"`
}

type CreateShipmentInput struct {
	Driver           primitive.ObjectID  `json:"driver"`
	DateShipment     *time.Time          `json:"dateShipment,omitempty"`
	DeliveryExpenses float64             `json:"deliveryExpenses"`
	ProductsExpenses float64             `json:"productsExpenses"`
	Products         []ShipmentLineInput `json:"products"`
}

type UpdateShipmentInput struct {
	Driver           *primitive.ObjectID `json:"driver,omitempty"`
	DateShipment     *time.Time          `json:"dateShipment,omitempty"`
	DeliveryExpenses *float64            `json:"deliveryExpenses,omitempty"`
	ProductsExpenses *float64            `json:"productsExpenses,omitempty"`
	Products         []ShipmentLineInput `json:"products,omitempty"`
}

// ShipmentService manages cargo loads: product-line snapshots at creation,
// stock-aware edits, and status transitions.
type ShipmentService struct {
	Shipments repository.ShipmentRepository
	Drivers   repository.DriverRepository
	Products  repository.ProductRepository
	Invoices  repository.InvoiceRepository
	Ledger    *StockLedger
	Numbers   *Numbering
}

func NewShipmentService(
	shipments repository.ShipmentRepository,
	drivers repository.DriverRepository,
	products repository.ProductRepository,
	invoices repository.InvoiceRepository,
	ledger *StockLedger,
	numbers *Numbering,
) *ShipmentService {
	return &ShipmentService{
		Shipments: shipments,
		Drivers:   drivers,
		Products:  products,
		Invoices:  invoices,
		Ledger:    ledger,
		Numbers:   numbers,
	}
}

// Create builds a shipment from the requested lines. Every line snapshots
// the product's number, category and name at this moment, and starts with
// stock equal to its quantity.
func (s *ShipmentService) Create(input CreateShipmentInput) (*models.Shipment, error) {
	if len(input.Products) == 0 {
		return nil, invalidInput("Driver and products are required")
	}
	if input.DeliveryExpenses < 0 || input.ProductsExpenses < 0 {
		return nil, invalidInput("Expenses cannot be negative")
	}

	driver, err := s.Drivers.FindByID(input.Driver)
	if err != nil {
		return nil, err
	}
	if driver == nil {
		return nil, invalidReference("Driver not found")
	}

	byID, err := s.resolveProducts(input.Products)
	if err != nil {
		return nil, err
	}

	lines := make([]models.ShipmentProduct, 0, len(input.Products))
	for _, req := range input.Products {
		if req.Quantity <= 0 {
			return nil, invalidInput("Quantity must be at least 1")
		}
		if req.UnitPrice < 0 {
			return nil, invalidInput("Price cannot be negative")
		}
		product := byID[req.ProductID]
		lines = append(lines, models.ShipmentProduct{
			ProductID: req.ProductID,
			Number:    product.Number,
			Category:  product.Category,
			Name:      product.Name,
			Quantity:  req.Quantity,
			UnitPrice: req.UnitPrice,
			Subtotal:  req.Quantity * req.UnitPrice,
			Stock:     req.Quantity,
		})
	}

	shipment := &models.Shipment{
		ShipmentNumber:   s.Numbers.Next("shipments", "CARGA"),
		Driver:           input.Driver,
		DateShipment:     dateOrNow(input.DateShipment),
		DeliveryExpenses: input.DeliveryExpenses,
		ProductsExpenses: input.ProductsExpenses,
		Products:         lines,
		Status:           models.ShipmentPending,
	}

	if err := s.Shipments.Create(shipment); err != nil {
		return nil, err
	}
	shipment.DriverInfo = driver
	return shipment, nil
}

// Update edits a shipment. A change to the product lines must not shrink
// any quantity below what invoices already reserve; the new stock figures
// are recomputed from the current invoice set.
func (s *ShipmentService) Update(id primitive.ObjectID, input UpdateShipmentInput) (*models.Shipment, error) {
	shipment, err := s.Shipments.FindByID(id)
	if err != nil {
		return nil, err
	}
	if shipment == nil {
		return nil, notFound("Shipment not found")
	}

	if len(input.Products) > 0 {
		byID, err := s.resolveProducts(input.Products)
		if err != nil {
			return nil, err
		}

		valid, violations, err := s.ValidateStockUpdate(id, input.Products)
		if err != nil {
			return nil, err
		}
		if !valid {
			return nil, &InsufficientStockError{Violations: violations}
		}

		reserved, err := s.Ledger.Reserved(id, nil)
		if err != nil {
			return nil, err
		}

		lines := make([]models.ShipmentProduct, 0, len(input.Products))
		for _, req := range input.Products {
			if req.Quantity <= 0 {
				return nil, invalidInput("Quantity must be at least 1")
			}
			if req.UnitPrice < 0 {
				return nil, invalidInput("Price cannot be negative")
			}
			product := byID[req.ProductID]
			lines = append(lines, models.ShipmentProduct{
				ProductID: req.ProductID,
				Number:    product.Number,
				Category:  product.Category,
				Name:      product.Name,
				Quantity:  req.Quantity,
				UnitPrice: req.UnitPrice,
				Subtotal:  req.Quantity * req.UnitPrice,
				Stock:     req.Quantity - reserved[req.ProductID],
			})
		}
		shipment.Products = lines
	}

	if input.Driver != nil {
		driver, err := s.Drivers.FindByID(*input.Driver)
		if err != nil {
			return nil, err
		}
		if driver == nil {
			return nil, invalidReference("Driver not found")
		}
		shipment.Driver = *input.Driver
		shipment.DriverInfo = driver
	}
	if input.DateShipment != nil {
		shipment.DateShipment = *input.DateShipment
	}
	if input.DeliveryExpenses != nil {
		if *input.DeliveryExpenses < 0 {
			return nil, invalidInput("Expenses cannot be negative")
		}
		shipment.DeliveryExpenses = *input.DeliveryExpenses
	}
	if input.ProductsExpenses != nil {
		if *input.ProductsExpenses < 0 {
			return nil, invalidInput("Expenses cannot be negative")
		}
		shipment.ProductsExpenses = *input.ProductsExpenses
	}

	if err := s.Shipments.Save(shipment); err != nil {
		return nil, err
	}
	return shipment, nil
}

// UpdateStatus moves the shipment between lifecycle states. Transitions are
// free; only the enum is enforced.
func (s *ShipmentService) UpdateStatus(id primitive.ObjectID, status string) (*models.Shipment, error) {
	switch status {
	case models.ShipmentPending, models.ShipmentInTransit, models.ShipmentDelivered, models.ShipmentCancelled:
	default:
		return nil, invalidInput(fmt.Sprintf("Status must be one of: %s",
			strings.Join([]string{
				models.ShipmentPending, models.ShipmentInTransit,
				models.ShipmentDelivered, models.ShipmentCancelled,
			}, ", ")))
	}

	shipment, err := s.Shipments.FindByID(id)
	if err != nil {
		return nil, err
	}
	if shipment == nil {
		return nil, notFound("Shipment not found")
	}

	shipment.Status = status
	if err := s.Shipments.Save(shipment); err != nil {
		return nil, err
	}
	return shipment, nil
}

func (s *ShipmentService) Delete(id primitive.ObjectID) error {
	shipment, err := s.Shipments.FindByID(id)
	if err != nil {
		return err
	}
	if shipment == nil {
		return notFound("Shipment not found")
	}
	return s.Shipments.DeleteByID(id)
}

// ValidateStockUpdate checks that no proposed line shrinks a product's
// quantity below what invoices already reserve from this shipment. All
// violations are reported at once.
func (s *ShipmentService) ValidateStockUpdate(shipmentID primitive.ObjectID, newLines []ShipmentLineInput) (bool, []string, error) {
	reserved, err := s.Ledger.Reserved(shipmentID, nil)
	if err != nil {
		return false, nil, err
	}
	if len(reserved) == 0 {
		return true, nil, nil
	}

	byID, err := s.resolveProducts(newLines)
	if err != nil {
		return false, nil, err
	}

	var violations []string
	for _, line := range newLines {
		used := reserved[line.ProductID]
		if used > 0 && line.Quantity < used {
			name := line.ProductID.Hex()
			if p, ok := byID[line.ProductID]; ok {
				name = p.Name
			}
			violations = append(violations, fmt.Sprintf(
				"Cannot reduce stock for %s. Used in invoices: %g, New quantity: %g. Please delete related invoices first.",
				name, used, line.Quantity))
		}
	}
	return len(violations) == 0, violations, nil
}

// AvailableStock exposes the ledger's per-product availability for the
// shipment.
func (s *ShipmentService) AvailableStock(shipmentID primitive.ObjectID) (map[primitive.ObjectID]float64, error) {
	return s.Ledger.Available(shipmentID)
}

// InvoicesUsingProducts lists the invoices of a shipment that reserve any of
// the given products; with no product ids it lists all the shipment's
// invoices.
func (s *ShipmentService) InvoicesUsingProducts(shipmentID primitive.ObjectID, productIDs []primitive.ObjectID) ([]*models.Invoice, error) {
	return s.Invoices.Find(repository.InvoiceFilter{
		ShipmentID: &shipmentID,
		ProductIDs: productIDs,
	})
}

// resolveProducts fetches every referenced product and fails if any id does
// not resolve.
func (s *ShipmentService) resolveProducts(lines []ShipmentLineInput) (map[primitive.ObjectID]*models.Product, error) {
	ids := make([]primitive.ObjectID, 0, len(lines))
	seen := make(map[primitive.ObjectID]bool, len(lines))
	for _, l := range lines {
		if !seen[l.ProductID] {
			seen[l.ProductID] = true
			ids = append(ids, l.ProductID)
		}
	}

	products, err := s.Products.FindByIDs(ids)
	if err != nil {
		return nil, err
	}
	if len(products) != len(ids) {
		return nil, invalidReference("One or more products not found")
	}

	byID := make(map[primitive.ObjectID]*models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return byID, nil
}
