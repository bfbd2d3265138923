package services

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"distrisur/models"
	"distrisur/repository"
)

// In-memory repositories backing the service tests. They mirror the filter
// semantics of the Mongo implementations closely enough for the business
// rules under test.

type memCustomerRepo struct {
	items map[primitive.ObjectID]*models.Customer
}

func newMemCustomerRepo(customers ...*models.Customer) *memCustomerRepo {
	r := &memCustomerRepo{items: make(map[primitive.ObjectID]*models.Customer)}
	for _, c := range customers {
		r.items[c.ID] = c
	}
	return r
}

func (r *memCustomerRepo) FindByID(id primitive.ObjectID) (*models.Customer, error) {
	return r.items[id], nil
}

func (r *memCustomerRepo) FindAll() ([]*models.Customer, error) {
	out := make([]*models.Customer, 0, len(r.items))
	for _, c := range r.items {
		out = append(out, c)
	}
	return out, nil
}

func (r *memCustomerRepo) Create(c *models.Customer) error {
	if c.ID.IsZero() {
		c.ID = primitive.NewObjectID()
	}
	r.items[c.ID] = c
	return nil
}

func (r *memCustomerRepo) Save(c *models.Customer) error {
	r.items[c.ID] = c
	return nil
}

func (r *memCustomerRepo) DeleteByID(id primitive.ObjectID) error {
	delete(r.items, id)
	return nil
}

type memDriverRepo struct {
	items map[primitive.ObjectID]*models.Driver
}

func newMemDriverRepo(drivers ...*models.Driver) *memDriverRepo {
	r := &memDriverRepo{items: make(map[primitive.ObjectID]*models.Driver)}
	for _, d := range drivers {
		r.items[d.ID] = d
	}
	return r
}

func (r *memDriverRepo) FindByID(id primitive.ObjectID) (*models.Driver, error) {
	return r.items[id], nil
}

func (r *memDriverRepo) FindAll(activeOnly bool) ([]*models.Driver, error) {
	out := make([]*models.Driver, 0, len(r.items))
	for _, d := range r.items {
		if activeOnly && !d.IsActive {
			continue
		}
		out = append(out, d)
	}
	return out, nil
}

func (r *memDriverRepo) Create(d *models.Driver) error {
	if d.ID.IsZero() {
		d.ID = primitive.NewObjectID()
	}
	r.items[d.ID] = d
	return nil
}

func (r *memDriverRepo) Save(d *models.Driver) error {
	r.items[d.ID] = d
	return nil
}

func (r *memDriverRepo) DeleteByID(id primitive.ObjectID) error {
	delete(r.items, id)
	return nil
}

type memProductRepo struct {
	items map[primitive.ObjectID]*models.Product
}

func newMemProductRepo(products ...*models.Product) *memProductRepo {
	r := &memProductRepo{items: make(map[primitive.ObjectID]*models.Product)}
	for _, p := range products {
		r.items[p.ID] = p
	}
	return r
}

func (r *memProductRepo) FindByID(id primitive.ObjectID) (*models.Product, error) {
	return r.items[id], nil
}

func (r *memProductRepo) Find(filter repository.ProductFilter) ([]*models.Product, error) {
	out := make([]*models.Product, 0, len(r.items))
	for _, p := range r.items {
		if filter.ActiveOnly && !p.IsActive {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *memProductRepo) FindByIDs(ids []primitive.ObjectID) ([]*models.Product, error) {
	var out []*models.Product
	for _, id := range ids {
		if p, ok := r.items[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *memProductRepo) Create(p *models.Product) error {
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	r.items[p.ID] = p
	return nil
}

func (r *memProductRepo) Save(p *models.Product) error {
	r.items[p.ID] = p
	return nil
}

func (r *memProductRepo) DeleteByID(id primitive.ObjectID) error {
	delete(r.items, id)
	return nil
}

type memShipmentRepo struct {
	items map[primitive.ObjectID]*models.Shipment
}

func newMemShipmentRepo(shipments ...*models.Shipment) *memShipmentRepo {
	r := &memShipmentRepo{items: make(map[primitive.ObjectID]*models.Shipment)}
	for _, s := range shipments {
		r.items[s.ID] = s
	}
	return r
}

func (r *memShipmentRepo) FindByID(id primitive.ObjectID) (*models.Shipment, error) {
	return r.items[id], nil
}

func (r *memShipmentRepo) Find(filter repository.ShipmentFilter) ([]*models.Shipment, error) {
	var out []*models.Shipment
	for _, s := range r.items {
		if filter.Status != "" && s.Status != filter.Status {
			continue
		}
		if filter.Driver != nil && s.Driver != *filter.Driver {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func (r *memShipmentRepo) Create(s *models.Shipment) error {
	if s.ID.IsZero() {
		s.ID = primitive.NewObjectID()
	}
	r.items[s.ID] = s
	return nil
}

func (r *memShipmentRepo) Save(s *models.Shipment) error {
	r.items[s.ID] = s
	return nil
}

func (r *memShipmentRepo) DeleteByID(id primitive.ObjectID) error {
	delete(r.items, id)
	return nil
}

type memInvoiceRepo struct {
	items map[primitive.ObjectID]*models.Invoice
}

func newMemInvoiceRepo(invoices ...*models.Invoice) *memInvoiceRepo {
	r := &memInvoiceRepo{items: make(map[primitive.ObjectID]*models.Invoice)}
	for _, inv := range invoices {
		r.items[inv.ID] = inv
	}
	return r
}

func (r *memInvoiceRepo) FindByID(id primitive.ObjectID) (*models.Invoice, error) {
	return r.items[id], nil
}

func (r *memInvoiceRepo) Find(filter repository.InvoiceFilter) ([]*models.Invoice, error) {
	var out []*models.Invoice
	for _, inv := range r.items {
		if filter.Status != "" && inv.Status != filter.Status {
			continue
		}
		if filter.CustomerID != nil && inv.CustomerID != *filter.CustomerID {
			continue
		}
		if filter.ShipmentID != nil && inv.ShipmentID != *filter.ShipmentID {
			continue
		}
		if filter.ExcludeID != nil && inv.ID == *filter.ExcludeID {
			continue
		}
		if len(filter.ProductIDs) > 0 && !invoiceTouchesAny(inv, filter.ProductIDs) {
			continue
		}
		out = append(out, inv)
	}
	return out, nil
}

func invoiceTouchesAny(inv *models.Invoice, ids []primitive.ObjectID) bool {
	for _, p := range inv.Products {
		for _, id := range ids {
			if p.ProductID == id {
				return true
			}
		}
	}
	return false
}

func (r *memInvoiceRepo) Create(inv *models.Invoice) error {
	if inv.ID.IsZero() {
		inv.ID = primitive.NewObjectID()
	}
	r.items[inv.ID] = inv
	return nil
}

func (r *memInvoiceRepo) Save(inv *models.Invoice) error {
	r.items[inv.ID] = inv
	return nil
}

func (r *memInvoiceRepo) DeleteByID(id primitive.ObjectID) error {
	delete(r.items, id)
	return nil
}

type memPaymentRepo struct {
	items map[primitive.ObjectID]*models.Payment
}

func newMemPaymentRepo(payments ...*models.Payment) *memPaymentRepo {
	r := &memPaymentRepo{items: make(map[primitive.ObjectID]*models.Payment)}
	for _, p := range payments {
		r.items[p.ID] = p
	}
	return r
}

func (r *memPaymentRepo) FindByID(id primitive.ObjectID) (*models.Payment, error) {
	return r.items[id], nil
}

func (r *memPaymentRepo) Find(filter repository.PaymentFilter) ([]*models.Payment, error) {
	var out []*models.Payment
	for _, p := range r.items {
		if filter.Approved != nil && p.Approved != *filter.Approved {
			continue
		}
		if filter.Type != "" && p.Type != filter.Type {
			continue
		}
		if filter.InvoiceID != nil && p.InvoiceID != *filter.InvoiceID {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *memPaymentRepo) Create(p *models.Payment) error {
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	r.items[p.ID] = p
	return nil
}

func (r *memPaymentRepo) Save(p *models.Payment) error {
	r.items[p.ID] = p
	return nil
}

func (r *memPaymentRepo) DeleteByID(id primitive.ObjectID) error {
	delete(r.items, id)
	return nil
}

type memSequenceRepo struct {
	counters map[string]int64
	fail     bool
}

func newMemSequenceRepo() *memSequenceRepo {
	return &memSequenceRepo{counters: make(map[string]int64)}
}

func (r *memSequenceRepo) Next(name string) (int64, error) {
	if r.fail {
		return 0, errors.New("counter unavailable")
	}
	r.counters[name]++
	return r.counters[name], nil
}

// fixture wires the full service graph over in-memory repositories seeded
// with one customer, one driver, two products and one shipment carrying 10
// units of each product.
type fixture struct {
	customers *memCustomerRepo
	drivers   *memDriverRepo
	products  *memProductRepo
	shipments *memShipmentRepo
	invoices  *memInvoiceRepo
	payments  *memPaymentRepo
	sequences *memSequenceRepo

	ledger    *StockLedger
	numbering *Numbering
	shipSvc   *ShipmentService
	invSvc    *InvoiceService
	paySvc    *PaymentService

	customer *models.Customer
	driver   *models.Driver
	prodA    *models.Product
	prodB    *models.Product
	shipment *models.Shipment
}

func newFixture() *fixture {
	customer := &models.Customer{ID: primitive.NewObjectID(), Name: "Almacen El Norte"}
	driver := &models.Driver{ID: primitive.NewObjectID(), Name: "Pedro Gomez", IsActive: true}
	prodA := &models.Product{ID: primitive.NewObjectID(), Number: "P-100", Category: "Bebidas", Name: "Agua 2L", IsActive: true}
	prodB := &models.Product{ID: primitive.NewObjectID(), Number: "P-200", Category: "Snacks", Name: "Galletas", IsActive: true}

	shipment := &models.Shipment{
		ID:             primitive.NewObjectID(),
		ShipmentNumber: "CARGA-001",
		Driver:         driver.ID,
		Status:         models.ShipmentPending,
		Products: []models.ShipmentProduct{
			{ProductID: prodA.ID, Number: prodA.Number, Category: prodA.Category, Name: prodA.Name, Quantity: 10, UnitPrice: 5, Subtotal: 50, Stock: 10},
			{ProductID: prodB.ID, Number: prodB.Number, Category: prodB.Category, Name: prodB.Name, Quantity: 10, UnitPrice: 3, Subtotal: 30, Stock: 10},
		},
	}

	f := &fixture{
		customers: newMemCustomerRepo(customer),
		drivers:   newMemDriverRepo(driver),
		products:  newMemProductRepo(prodA, prodB),
		shipments: newMemShipmentRepo(shipment),
		invoices:  newMemInvoiceRepo(),
		payments:  newMemPaymentRepo(),
		sequences: newMemSequenceRepo(),
		customer:  customer,
		driver:    driver,
		prodA:     prodA,
		prodB:     prodB,
		shipment:  shipment,
	}

	f.ledger = NewStockLedger(f.shipments, f.invoices)
	f.numbering = NewNumbering(f.sequences)
	f.shipSvc = NewShipmentService(f.shipments, f.drivers, f.products, f.invoices, f.ledger, f.numbering)
	f.invSvc = NewInvoiceService(f.invoices, f.shipments, f.customers, f.payments, f.ledger, f.numbering)
	f.paySvc = NewPaymentService(f.payments, f.invoices)
	return f
}

// createInvoice is a shortcut for seeding an invoice through the service.
func (f *fixture) createInvoice(lines ...InvoiceLineInput) (*models.Invoice, error) {
	return f.invSvc.Create(CreateInvoiceInput{
		CustomerID: f.customer.ID,
		ShipmentID: f.shipment.ID,
		Products:   lines,
	})
}
