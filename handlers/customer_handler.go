package handlers

import (
	"encoding/json"
	"net/http"

	"distrisur/models"
	"distrisur/repository"
)

type CustomerHandler struct {
	Repo repository.CustomerRepository
}

type customerInput struct {
	Name    *string `json:"name"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}

func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	customers, err := h.Repo.FindAll()
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if customers == nil {
		customers = []*models.Customer{}
	}

	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: customers})
}

func (h *CustomerHandler) Get(w http.ResponseWriter, r *http.Request, rawID string) {
	id, ok := parseObjectID(w, rawID)
	if !ok {
		return
	}

	customer, err := h.Repo.FindByID(id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if customer == nil {
		writeError(w, http.StatusNotFound, "Customer not found")
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: customer})
}

func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input customerInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	if input.Name == nil || *input.Name == "" {
		writeError(w, http.StatusBadRequest, "Customer name is required")
		return
	}

	customer := &models.Customer{Name: *input.Name}
	if input.Phone != nil {
		customer.Phone = *input.Phone
	}
	if input.Address != nil {
		customer.Address = *input.Address
	}

	if err := h.Repo.Create(customer); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, ApiResponse{Success: true, Data: customer})
}

func (h *CustomerHandler) Update(w http.ResponseWriter, r *http.Request, rawID string) {
	id, ok := parseObjectID(w, rawID)
	if !ok {
		return
	}

	customer, err := h.Repo.FindByID(id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if customer == nil {
		writeError(w, http.StatusNotFound, "Customer not found")
		return
	}

	var input customerInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	if input.Name != nil {
		customer.Name = *input.Name
	}
	if input.Phone != nil {
		customer.Phone = *input.Phone
	}
	if input.Address != nil {
		customer.Address = *input.Address
	}

	if err := h.Repo.Save(customer); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: customer})
}

func (h *CustomerHandler) Delete(w http.ResponseWriter, r *http.Request, rawID string) {
	id, ok := parseObjectID(w, rawID)
	if !ok {
		return
	}

	customer, err := h.Repo.FindByID(id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if customer == nil {
		writeError(w, http.StatusNotFound, "Customer not found")
		return
	}

	if err := h.Repo.DeleteByID(id); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: struct{}{}})
}
