package repository

import (
	"distrisur/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PDFRepository provides methods to fetch data for PDF generation
type PDFRepository struct {
	InvoiceRepo  InvoiceRepository
	ShipmentRepo ShipmentRepository
	CompanyRepo  CompanyInfoRepository
}

func NewPDFRepository(invoiceRepo InvoiceRepository, shipmentRepo ShipmentRepository, companyRepo CompanyInfoRepository) *PDFRepository {
	return &PDFRepository{
		InvoiceRepo:  invoiceRepo,
		ShipmentRepo: shipmentRepo,
		CompanyRepo:  companyRepo,
	}
}

// GetInvoiceForPDF fetches a single invoice by ID for PDF
func (r *PDFRepository) GetInvoiceForPDF(id primitive.ObjectID) (*models.Invoice, error) {
	return r.InvoiceRepo.FindByID(id)
}

// GetShipmentForPDF fetches the shipment an invoice draws against
func (r *PDFRepository) GetShipmentForPDF(id primitive.ObjectID) (*models.Shipment, error) {
	return r.ShipmentRepo.FindByID(id)
}

// GetCompanyForPDF fetches the company info printed in the header
func (r *PDFRepository) GetCompanyForPDF() (*models.CompanyInfo, error) {
	return r.CompanyRepo.GetCompanyInfo()
}
