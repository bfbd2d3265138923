package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"distrisur/models"
)

func TestCreateInvoiceSnapshotsAndTotals(t *testing.T) {
	f := newFixture()

	inv, err := f.createInvoice(
		InvoiceLineInput{ProductID: f.prodA.ID, Quantity: 2, SalePrice: 8},
		InvoiceLineInput{ProductID: f.prodB.ID, Quantity: 3, SalePrice: 4},
	)
	require.NoError(t, err)

	assert.Equal(t, "FACT-001", inv.InvoiceNumber)
	assert.Equal(t, models.InvoiceUnpaid, inv.Status)
	assert.Equal(t, f.customer.Name, inv.CustomerName)
	assert.Equal(t, 28.0, inv.Total)

	require.Len(t, inv.Products, 2)
	assert.Equal(t, f.prodA.Name, inv.Products[0].Name)
	assert.Equal(t, f.prodA.Number, inv.Products[0].Number)
	assert.Equal(t, 16.0, inv.Products[0].Subtotal)
}

func TestCreateInvoiceRecomputesShipmentStock(t *testing.T) {
	f := newFixture()

	_, err := f.createInvoice(InvoiceLineInput{ProductID: f.prodA.ID, Quantity: 6, SalePrice: 8})
	require.NoError(t, err)

	stored, err := f.shipments.FindByID(f.shipment.ID)
	require.NoError(t, err)
	assert.Equal(t, 4.0, stored.Products[0].Stock)
}

func TestCreateInvoiceInsufficientStock(t *testing.T) {
	f := newFixture()

	_, err := f.createInvoice(InvoiceLineInput{ProductID: f.prodA.ID, Quantity: 6, SalePrice: 8})
	require.NoError(t, err)

	// 6 of 10 reserved, only 4 left.
	_, err = f.createInvoice(InvoiceLineInput{ProductID: f.prodA.ID, Quantity: 5, SalePrice: 8})
	require.Error(t, err)

	var stockErr *InsufficientStockError
	require.True(t, errors.As(err, &stockErr))
	require.Len(t, stockErr.Violations, 1)
	assert.Contains(t, stockErr.Violations[0], "Available: 4")
	assert.Contains(t, stockErr.Violations[0], "Requested: 5")
}

func TestCreateInvoiceReportsAllViolations(t *testing.T) {
	f := newFixture()

	ghost := primitive.NewObjectID()
	_, err := f.createInvoice(
		InvoiceLineInput{ProductID: f.prodA.ID, Quantity: 11, SalePrice: 8},
		InvoiceLineInput{ProductID: ghost, Quantity: 1, SalePrice: 1},
	)
	require.Error(t, err)

	var stockErr *InsufficientStockError
	require.True(t, errors.As(err, &stockErr))
	assert.Len(t, stockErr.Violations, 2)
}

func TestCreateInvoiceUnknownCustomer(t *testing.T) {
	f := newFixture()

	_, err := f.invSvc.Create(CreateInvoiceInput{
		CustomerID: primitive.NewObjectID(),
		ShipmentID: f.shipment.ID,
		Products:   []InvoiceLineInput{{ProductID: f.prodA.ID, Quantity: 1, SalePrice: 8}},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidReference))
}

func TestCreateInvoiceNoProducts(t *testing.T) {
	f := newFixture()

	_, err := f.invSvc.Create(CreateInvoiceInput{
		CustomerID: f.customer.ID,
		ShipmentID: f.shipment.ID,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestCreateInvoiceRejectsNonPositiveQuantity(t *testing.T) {
	f := newFixture()

	_, err := f.createInvoice(InvoiceLineInput{ProductID: f.prodA.ID, Quantity: 0, SalePrice: 8})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestUpdateInvoiceExcludesOwnReservation(t *testing.T) {
	f := newFixture()

	inv, err := f.createInvoice(InvoiceLineInput{ProductID: f.prodA.ID, Quantity: 8, SalePrice: 8})
	require.NoError(t, err)

	// 8 of 10 are this invoice's own reservation; growing to 10 must pass.
	updated, err := f.invSvc.Update(inv.ID, UpdateInvoiceInput{
		Products: []InvoiceLineInput{{ProductID: f.prodA.ID, Quantity: 10, SalePrice: 8}},
	})
	require.NoError(t, err)
	assert.Equal(t, 80.0, updated.Total)

	stored, err := f.shipments.FindByID(f.shipment.ID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, stored.Products[0].Stock)
}

func TestUpdateInvoiceStillBoundedByOthers(t *testing.T) {
	f := newFixture()

	inv, err := f.createInvoice(InvoiceLineInput{ProductID: f.prodA.ID, Quantity: 4, SalePrice: 8})
	require.NoError(t, err)
	_, err = f.createInvoice(InvoiceLineInput{ProductID: f.prodA.ID, Quantity: 5, SalePrice: 8})
	require.NoError(t, err)

	// Other invoice holds 5, so this one can grow to at most 5.
	_, err = f.invSvc.Update(inv.ID, UpdateInvoiceInput{
		Products: []InvoiceLineInput{{ProductID: f.prodA.ID, Quantity: 6, SalePrice: 8}},
	})
	require.Error(t, err)

	var stockErr *InsufficientStockError
	assert.True(t, errors.As(err, &stockErr))
}

func TestUpdateInvoiceRefreshesCustomerSnapshot(t *testing.T) {
	f := newFixture()

	inv, err := f.createInvoice(InvoiceLineInput{ProductID: f.prodA.ID, Quantity: 1, SalePrice: 8})
	require.NoError(t, err)

	other := &models.Customer{ID: primitive.NewObjectID(), Name: "Distribuidora Sur"}
	require.NoError(t, f.customers.Create(other))

	updated, err := f.invSvc.Update(inv.ID, UpdateInvoiceInput{CustomerID: &other.ID})
	require.NoError(t, err)
	assert.Equal(t, other.ID, updated.CustomerID)
	assert.Equal(t, "Distribuidora Sur", updated.CustomerName)
}

func TestUpdatePaidInvoiceRefused(t *testing.T) {
	f := newFixture()

	inv, err := f.createInvoice(InvoiceLineInput{ProductID: f.prodA.ID, Quantity: 1, SalePrice: 8})
	require.NoError(t, err)
	inv.Status = models.InvoicePaid
	require.NoError(t, f.invoices.Save(inv))

	_, err = f.invSvc.Update(inv.ID, UpdateInvoiceInput{
		Products: []InvoiceLineInput{{ProductID: f.prodA.ID, Quantity: 2, SalePrice: 8}},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrIllegalState))
}

func TestDeleteInvoiceReleasesStock(t *testing.T) {
	f := newFixture()

	inv, err := f.createInvoice(InvoiceLineInput{ProductID: f.prodA.ID, Quantity: 6, SalePrice: 8})
	require.NoError(t, err)

	require.NoError(t, f.invSvc.Delete(inv.ID))

	stored, err := f.shipments.FindByID(f.shipment.ID)
	require.NoError(t, err)
	assert.Equal(t, 10.0, stored.Products[0].Stock)
}

func TestDeleteInvoiceBlockedByAnyPayment(t *testing.T) {
	f := newFixture()

	inv, err := f.createInvoice(InvoiceLineInput{ProductID: f.prodA.ID, Quantity: 2, SalePrice: 8})
	require.NoError(t, err)

	// Even an unapproved payment blocks deletion.
	_, err = f.paySvc.Create(CreatePaymentInput{InvoiceID: inv.ID, Amount: 5, Type: models.PaymentCash})
	require.NoError(t, err)

	err = f.invSvc.Delete(inv.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrIllegalState))
	assert.Contains(t, err.Error(), "Delete payments first")
}

func TestCanEditAndCanDelete(t *testing.T) {
	f := newFixture()

	inv, err := f.createInvoice(InvoiceLineInput{ProductID: f.prodA.ID, Quantity: 2, SalePrice: 8})
	require.NoError(t, err)

	can, _, err := f.invSvc.CanEdit(inv.ID)
	require.NoError(t, err)
	assert.True(t, can)

	can, _, err = f.invSvc.CanDelete(inv.ID)
	require.NoError(t, err)
	assert.True(t, can)

	inv.Status = models.InvoicePaid
	require.NoError(t, f.invoices.Save(inv))

	can, reason, err := f.invSvc.CanEdit(inv.ID)
	require.NoError(t, err)
	assert.False(t, can)
	assert.Equal(t, "Cannot edit fully paid invoices", reason)
}

func TestSettlementLifecycle(t *testing.T) {
	f := newFixture()

	inv, err := f.createInvoice(InvoiceLineInput{ProductID: f.prodA.ID, Quantity: 10, SalePrice: 10})
	require.NoError(t, err)
	require.Equal(t, 100.0, inv.Total)

	p1, err := f.paySvc.Create(CreatePaymentInput{InvoiceID: inv.ID, Amount: 60, Type: models.PaymentCash})
	require.NoError(t, err)

	stored, err := f.invoices.FindByID(inv.ID)
	require.NoError(t, err)
	assert.Equal(t, models.InvoiceUnpaid, stored.Status)

	approved := true
	_, err = f.paySvc.Update(p1.ID, UpdatePaymentInput{Approved: &approved})
	require.NoError(t, err)

	stored, err = f.invoices.FindByID(inv.ID)
	require.NoError(t, err)
	assert.Equal(t, models.InvoicePartial, stored.Status)

	p2, err := f.paySvc.Create(CreatePaymentInput{InvoiceID: inv.ID, Amount: 40, Type: models.PaymentTransfer, AccountForTransfer: "Banco Sur"})
	require.NoError(t, err)
	_, err = f.paySvc.Update(p2.ID, UpdatePaymentInput{Approved: &approved})
	require.NoError(t, err)

	stored, err = f.invoices.FindByID(inv.ID)
	require.NoError(t, err)
	assert.Equal(t, models.InvoicePaid, stored.Status)

	// Fully settled invoices are frozen.
	_, err = f.invSvc.Update(inv.ID, UpdateInvoiceInput{
		Products: []InvoiceLineInput{{ProductID: f.prodA.ID, Quantity: 9, SalePrice: 10}},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrIllegalState))
}

func TestTotalPaidCountsOnlyApproved(t *testing.T) {
	f := newFixture()

	inv, err := f.createInvoice(InvoiceLineInput{ProductID: f.prodA.ID, Quantity: 2, SalePrice: 10})
	require.NoError(t, err)

	p1, err := f.paySvc.Create(CreatePaymentInput{InvoiceID: inv.ID, Amount: 5, Type: models.PaymentCash})
	require.NoError(t, err)
	_, err = f.paySvc.Create(CreatePaymentInput{InvoiceID: inv.ID, Amount: 7, Type: models.PaymentCash})
	require.NoError(t, err)

	approved := true
	_, err = f.paySvc.Update(p1.ID, UpdatePaymentInput{Approved: &approved})
	require.NoError(t, err)

	total, err := f.invSvc.TotalPaid(inv.ID)
	require.NoError(t, err)
	assert.Equal(t, 5.0, total)
}
