package handlers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"distrisur/repository"
	"distrisur/utils"
)

type PDFHandler struct {
	Repo     *repository.PDFRepository
	SavePath string
}

// InvoicePDF generates an invoice PDF, saves it locally and uploads it to R2.
func (h *PDFHandler) InvoicePDF(w http.ResponseWriter, r *http.Request) {
	rawID := r.URL.Query().Get("id")
	if rawID == "" {
		writeError(w, http.StatusBadRequest, "Missing invoice id")
		return
	}

	invoiceID, err := primitive.ObjectIDFromHex(rawID)
	if err != nil {
		writeError(w, http.StatusNotFound, "Resource not found")
		return
	}

	saveDir := h.SavePath
	if saveDir == "" {
		saveDir = "./pdfs"
	}
	if err := os.MkdirAll(saveDir, os.ModePerm); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create save directory: "+err.Error())
		return
	}

	pdfBytes, err := utils.GenerateInvoicePDF(h.Repo, invoiceID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to generate PDF: "+err.Error())
		return
	}
	if len(pdfBytes) == 0 {
		writeError(w, http.StatusNotFound, "Invoice not found")
		return
	}

	filename := fmt.Sprintf("invoice_%s_%d.pdf", invoiceID.Hex(), time.Now().Unix())
	savePath := filepath.Join(saveDir, filename)

	if err := os.WriteFile(savePath, pdfBytes, 0644); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save PDF: "+err.Error())
		return
	}

	// Upload is best effort, a missing R2 setup should not block local output.
	fileURL, err := utils.UploadToR2(pdfBytes, filename)
	if err != nil {
		logrus.WithError(err).WithField("invoice", invoiceID.Hex()).Warn("R2 upload skipped")
	}

	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Data: map[string]string{
			"file": filename,
			"url":  fileURL,
		},
	})
}
