package models

// InvoicePDFData is the payload handed to the invoice PDF template.
type InvoicePDFData struct {
	Company    *CompanyInfo
	Invoice    *Invoice
	Shipment   *Shipment
	Contacts   string
	Date       string
	TotalWords string
	LineCount  int
}
