package services

import (
	"time"

	"distrisur/models"
	"distrisur/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CreatePaymentInput struct {
	InvoiceID          primitive.ObjectID `json:"invoiceId"`
	Amount             float64            `json:"amount"`
	Type               string             `json:"type"`
	AccountForTransfer string             `json:"accountForTransfer,omitempty"`
	Notes              string             `json:"notes,omitempty"`
	Date               *time.Time         `json:"date,omitempty"`
}

type UpdatePaymentInput struct {
	Amount             *float64   `json:"amount,omitempty"`
	Type               *string    `json:"type,omitempty"`
	AccountForTransfer *string    `json:"accountForTransfer,omitempty"`
	Notes              *string    `json:"notes,omitempty"`
	Date               *time.Time `json:"date,omitempty"`
	Approved           *bool      `json:"approved,omitempty"`
}

// PaymentService aggregates approved payments per invoice and derives the
// invoice's paid/partial/unpaid status. Approved payments are immutable;
// every payment mutation triggers a status recompute on its invoice.
type PaymentService struct {
	Payments repository.PaymentRepository
	Invoices repository.InvoiceRepository
}

func NewPaymentService(payments repository.PaymentRepository, invoices repository.InvoiceRepository) *PaymentService {
	return &PaymentService{Payments: payments, Invoices: invoices}
}

// Create registers a payment against an invoice. The amount is checked
// against the invoice total at creation time only; later edits to the
// invoice do not re-validate existing payments.
func (s *PaymentService) Create(input CreatePaymentInput) (*models.Payment, error) {
	invoice, err := s.Invoices.FindByID(input.InvoiceID)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, notFound("Invoice not found")
	}

	if invoice.Status == models.InvoicePaid {
		return nil, illegalState("Invoice is already paid")
	}
	if input.Amount < 0 {
		return nil, invalidAmount("Amount cannot be negative")
	}
	if input.Amount > invoice.Total {
		return nil, invalidAmount("Payment amount cannot exceed invoice total")
	}
	if input.Type != models.PaymentCash && input.Type != models.PaymentTransfer {
		return nil, invalidInput("Payment type must be cash or transfer")
	}

	payment := &models.Payment{
		InvoiceID:          input.InvoiceID,
		Amount:             input.Amount,
		Date:               dateOrNow(input.Date),
		Type:               input.Type,
		AccountForTransfer: input.AccountForTransfer,
		Notes:              input.Notes,
		Approved:           false,
	}

	if err := s.Payments.Create(payment); err != nil {
		return nil, err
	}
	if err := s.RecomputeInvoiceStatus(payment.InvoiceID); err != nil {
		return nil, err
	}
	return payment, nil
}

// Update patches an unapproved payment. Flipping Approved to true is the
// act of approval and settles into the invoice status via the recompute.
func (s *PaymentService) Update(id primitive.ObjectID, input UpdatePaymentInput) (*models.Payment, error) {
	payment, err := s.Payments.FindByID(id)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, notFound("Payment not found")
	}
	if payment.Approved {
		return nil, illegalState("Cannot update approved payment")
	}

	if input.Amount != nil {
		if *input.Amount < 0 {
			return nil, invalidAmount("Amount cannot be negative")
		}
		payment.Amount = *input.Amount
	}
	if input.Type != nil {
		if *input.Type != models.PaymentCash && *input.Type != models.PaymentTransfer {
			return nil, invalidInput("Payment type must be cash or transfer")
		}
		payment.Type = *input.Type
	}
	if input.AccountForTransfer != nil {
		payment.AccountForTransfer = *input.AccountForTransfer
	}
	if input.Notes != nil {
		payment.Notes = *input.Notes
	}
	if input.Date != nil {
		payment.Date = *input.Date
	}
	if input.Approved != nil {
		payment.Approved = *input.Approved
	}

	if err := s.Payments.Save(payment); err != nil {
		return nil, err
	}
	if err := s.RecomputeInvoiceStatus(payment.InvoiceID); err != nil {
		return nil, err
	}
	return payment, nil
}

// Delete removes an unapproved payment.
func (s *PaymentService) Delete(id primitive.ObjectID) error {
	payment, err := s.Payments.FindByID(id)
	if err != nil {
		return err
	}
	if payment == nil {
		return notFound("Payment not found")
	}
	if payment.Approved {
		return illegalState("Cannot delete approved payment")
	}

	if err := s.Payments.DeleteByID(id); err != nil {
		return err
	}
	return s.RecomputeInvoiceStatus(payment.InvoiceID)
}

// RecomputeInvoiceStatus derives the invoice status from its approved
// payments and persists it. This is the single authority for invoice
// status: unpaid when nothing approved is paid, paid when the approved sum
// covers the total, partial in between.
func (s *PaymentService) RecomputeInvoiceStatus(invoiceID primitive.ObjectID) error {
	invoice, err := s.Invoices.FindByID(invoiceID)
	if err != nil {
		return err
	}
	if invoice == nil {
		return notFound("Invoice not found")
	}

	totalPaid, err := s.TotalPaid(invoiceID)
	if err != nil {
		return err
	}

	switch {
	case totalPaid == 0:
		invoice.Status = models.InvoiceUnpaid
	case totalPaid >= invoice.Total:
		invoice.Status = models.InvoicePaid
	default:
		invoice.Status = models.InvoicePartial
	}
	return s.Invoices.Save(invoice)
}

// TotalPaid sums the approved payment amounts for the invoice.
func (s *PaymentService) TotalPaid(invoiceID primitive.ObjectID) (float64, error) {
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

// ByInvoice returns all payments of an invoice together with the approved
// total.
func (s *PaymentService) ByInvoice(invoiceID primitive.ObjectID) ([]*models.Payment, float64, error) {
	payments, err := s.Payments.Find(repository.PaymentFilter{InvoiceID: &invoiceID})
	if err != nil {
		return nil, 0, err
	}
	totalPaid, err := s.TotalPaid(invoiceID)
	if err != nil {
		return nil, 0, err
	}
	return payments, totalPaid, nil
}
