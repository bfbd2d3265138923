package utils

import (
	"bytes"
	"context"
	"html/template"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"distrisur/models"
	"distrisur/repository"
)

// GenerateInvoicePDF renders an invoice into a single-page A4 PDF.
func GenerateInvoicePDF(repo *repository.PDFRepository, invoiceID primitive.ObjectID) ([]byte, error) {
	company, err := repo.GetCompanyForPDF()
	if err != nil {
		return nil, err
	}

	invoice, err := repo.GetInvoiceForPDF(invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, nil
	}

	shipment, err := repo.GetShipmentForPDF(invoice.ShipmentID)
	if err != nil {
		return nil, err
	}

	formattedDate := "-"
	if !invoice.Date.IsZero() {
		formattedDate = invoice.Date.Format("02-Jan-2006")
	}

	contacts := ""
	if company != nil {
		for _, p := range company.Phones {
			contacts += p.Number + "(" + p.Label + "), "
		}
		if len(contacts) > 2 {
			contacts = contacts[:len(contacts)-2]
		}
	}

	tmpl, err := template.ParseFiles("templates/invoice_template.html")
	if err != nil {
		return nil, err
	}

	data := models.InvoicePDFData{
		Company:    company,
		Invoice:    invoice,
		Shipment:   shipment,
		Contacts:   contacts,
		Date:       formattedDate,
		TotalWords: NumberToCurrencyWords(invoice.Total),
		LineCount:  len(invoice.Products),
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return nil, err
	}

	finalHTML := `
		<!DOCTYPE html>
		<html>
		<head>
		<meta charset="UTF-8">
		<style>
		@page {
			size: A4;
			margin: 20px;
		}
		body {
			font-family: Arial, Helvetica, sans-serif;
			font-size: 12px;
			margin: 0;
			padding: 0;
		}
		.invoice-sheet {
			page-break-inside: avoid;
			border: none;
		}
		</style>
		</head>
		<body><div class='invoice-sheet'>` + body.String() + `</div></body></html>`

	// Create temp HTML file
	tmpDir := os.TempDir()
	tmpHTML := filepath.Join(tmpDir, "invoice_"+time.Now().Format("20060102150405")+".html")
	if err := os.WriteFile(tmpHTML, []byte(finalHTML), 0644); err != nil {
		return nil, err
	}
	defer os.Remove(tmpHTML)

	// Generate PDF with headless Chrome
	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()

	var pdfBuf []byte
	fileURL := "file://" + tmpHTML

	err = chromedp.Run(ctx,
		chromedp.Navigate(fileURL),
		chromedp.Sleep(1*time.Second),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).  // A4 width
				WithPaperHeight(11.7). // A4 height
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, err
	}

	return pdfBuf, nil
}
