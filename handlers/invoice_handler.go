package handlers

import (
	"encoding/json"
	"net/http"

	"distrisur/models"
	"distrisur/repository"
	"distrisur/services"
)

type InvoiceHandler struct {
	Service *services.InvoiceService
	Repo    repository.InvoiceRepository
}

func (h *InvoiceHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := repository.InvoiceFilter{Status: r.URL.Query().Get("status")}
	if raw := r.URL.Query().Get("customer"); raw != "" {
		id, ok := parseObjectID(w, raw)
		if !ok {
			return
		}
		filter.CustomerID = &id
	}
	if raw := r.URL.Query().Get("shipment"); raw != "" {
		id, ok := parseObjectID(w, raw)
		if !ok {
			return
		}
		filter.ShipmentID = &id
	}

	invoices, err := h.Repo.Find(filter)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if invoices == nil {
		invoices = []*models.Invoice{}
	}

	for _, inv := range invoices {
		totalPaid, err := h.Service.TotalPaid(inv.ID)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		inv.TotalPaid = totalPaid
	}

	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Count:   intPtr(len(invoices)),
		Total:   intPtr(len(invoices)),
		Data:    invoices,
	})
}

func (h *InvoiceHandler) Get(w http.ResponseWriter, r *http.Request, rawID string) {
	id, ok := parseObjectID(w, rawID)
	if !ok {
		return
	}

	invoice, err := h.Repo.FindByID(id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if invoice == nil {
		writeError(w, http.StatusNotFound, "Invoice not found")
		return
	}

	totalPaid, err := h.Service.TotalPaid(id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	invoice.TotalPaid = totalPaid

	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: invoice})
}

func (h *InvoiceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input services.CreateInvoiceInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	if input.CustomerID.IsZero() || input.ShipmentID.IsZero() || len(input.Products) == 0 {
		writeError(w, http.StatusBadRequest, "Customer, shipment, and products are required")
		return
	}

	invoice, err := h.Service.Create(input)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, ApiResponse{Success: true, Data: invoice})
}

func (h *InvoiceHandler) Update(w http.ResponseWriter, r *http.Request, rawID string) {
	id, ok := parseObjectID(w, rawID)
	if !ok {
		return
	}

	var input services.UpdateInvoiceInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	invoice, err := h.Service.Update(id, input)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	totalPaid, err := h.Service.TotalPaid(id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	invoice.TotalPaid = totalPaid

	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: invoice})
}

func (h *InvoiceHandler) Delete(w http.ResponseWriter, r *http.Request, rawID string) {
	id, ok := parseObjectID(w, rawID)
	if !ok {
		return
	}

	if err := h.Service.Delete(id); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Message: "Invoice deleted successfully",
		Data:    struct{}{},
	})
}
