package handlers

import (
	"encoding/json"
	"net/http"

	"distrisur/models"
	"distrisur/repository"
	"distrisur/services"
)

type ShipmentHandler struct {
	Service *services.ShipmentService
	Repo    repository.ShipmentRepository
}

func (h *ShipmentHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := repository.ShipmentFilter{Status: r.URL.Query().Get("status")}
	if raw := r.URL.Query().Get("driver"); raw != "" {
		id, ok := parseObjectID(w, raw)
		if !ok {
			return
		}
		filter.Driver = &id
	}

	shipments, err := h.Repo.Find(filter)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if shipments == nil {
		shipments = []*models.Shipment{}
	}

	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Count:   intPtr(len(shipments)),
		Data:    shipments,
	})
}

func (h *ShipmentHandler) Get(w http.ResponseWriter, r *http.Request, rawID string) {
	id, ok := parseObjectID(w, rawID)
	if !ok {
		return
	}

	shipment, err := h.Repo.FindByID(id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if shipment == nil {
		writeError(w, http.StatusNotFound, "Shipment not found")
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: shipment})
}

func (h *ShipmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input services.CreateShipmentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	if input.Driver.IsZero() || len(input.Products) == 0 {
		writeError(w, http.StatusBadRequest, "Driver and products are required")
		return
	}

	shipment, err := h.Service.Create(input)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, ApiResponse{Success: true, Data: shipment})
}

func (h *ShipmentHandler) Update(w http.ResponseWriter, r *http.Request, rawID string) {
	id, ok := parseObjectID(w, rawID)
	if !ok {
		return
	}

	var input services.UpdateShipmentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	shipment, err := h.Service.Update(id, input)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: shipment})
}

func (h *ShipmentHandler) UpdateStatus(w http.ResponseWriter, r *http.Request, rawID string) {
	id, ok := parseObjectID(w, rawID)
	if !ok {
		return
	}

	var input struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	if input.Status == "" {
		writeError(w, http.StatusBadRequest, "Status is required")
		return
	}

	shipment, err := h.Service.UpdateStatus(id, input.Status)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: shipment})
}

func (h *ShipmentHandler) Delete(w http.ResponseWriter, r *http.Request, rawID string) {
	id, ok := parseObjectID(w, rawID)
	if !ok {
		return
	}

	if err := h.Service.Delete(id); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Message: "Shipment deleted successfully"})
}
