package handlers

import (
	"encoding/json"
	"net/http"

	"distrisur/models"
	"distrisur/repository"
	"distrisur/services"
)

type PaymentHandler struct {
	Service *services.PaymentService
	Repo    repository.PaymentRepository
}

func (h *PaymentHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := repository.PaymentFilter{Type: r.URL.Query().Get("type")}
	switch r.URL.Query().Get("approved") {
	case "true":
		approved := true
		filter.Approved = &approved
	case "false":
		approved := false
		filter.Approved = &approved
	}

	payments, err := h.Repo.Find(filter)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if payments == nil {
		payments = []*models.Payment{}
	}

	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Count:   intPtr(len(payments)),
		Total:   intPtr(len(payments)),
		Data:    payments,
	})
}

func (h *PaymentHandler) Get(w http.ResponseWriter, r *http.Request, rawID string) {
	id, ok := parseObjectID(w, rawID)
	if !ok {
		return
	}

	payment, err := h.Repo.FindByID(id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if payment == nil {
		writeError(w, http.StatusNotFound, "Payment not found")
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: payment})
}

func (h *PaymentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input services.CreatePaymentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	if input.InvoiceID.IsZero() {
		writeError(w, http.StatusBadRequest, "Invoice is required")
		return
	}

	payment, err := h.Service.Create(input)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, ApiResponse{Success: true, Data: payment})
}

func (h *PaymentHandler) Update(w http.ResponseWriter, r *http.Request, rawID string) {
	id, ok := parseObjectID(w, rawID)
	if !ok {
		return
	}

	var input services.UpdatePaymentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	payment, err := h.Service.Update(id, input)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: payment})
}

func (h *PaymentHandler) Delete(w http.ResponseWriter, r *http.Request, rawID string) {
	id, ok := parseObjectID(w, rawID)
	if !ok {
		return
	}

	if err := h.Service.Delete(id); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: struct{}{}})
}

// ByInvoice lists an invoice's payments with the approved total aggregated.
func (h *PaymentHandler) ByInvoice(w http.ResponseWriter, r *http.Request, rawID string) {
	id, ok := parseObjectID(w, rawID)
	if !ok {
		return
	}

	payments, totalPaid, err := h.Service.ByInvoice(id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if payments == nil {
		payments = []*models.Payment{}
	}

	writeJSON(w, http.StatusOK, ApiResponse{
		Success:   true,
		Count:     intPtr(len(payments)),
		TotalPaid: floatPtr(totalPaid),
		Data:      payments,
	})
}
