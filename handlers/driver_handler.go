package handlers

import (
	"encoding/json"
	"net/http"

	"distrisur/models"
	"distrisur/repository"
)

type DriverHandler struct {
	Repo repository.DriverRepository
}

type driverInput struct {
	Name     *string `json:"name"`
	Phone    *string `json:"phone"`
	Address  *string `json:"address"`
	IsActive *bool   `json:"is_active"`
}

func (h *DriverHandler) List(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"

	drivers, err := h.Repo.FindAll(activeOnly)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if drivers == nil {
		drivers = []*models.Driver{}
	}

	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Count:   intPtr(len(drivers)),
		Total:   intPtr(len(drivers)),
		Data:    drivers,
	})
}

func (h *DriverHandler) Get(w http.ResponseWriter, r *http.Request, rawID string) {
	id, ok := parseObjectID(w, rawID)
	if !ok {
		return
	}

	driver, err := h.Repo.FindByID(id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if driver == nil {
		writeError(w, http.StatusNotFound, "Driver not found")
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: driver})
}

func (h *DriverHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input driverInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	if input.Name == nil || *input.Name == "" {
		writeError(w, http.StatusBadRequest, "Driver name is required")
		return
	}

	driver := &models.Driver{Name: *input.Name, IsActive: true}
	if input.Phone != nil {
		driver.Phone = *input.Phone
	}
	if input.Address != nil {
		driver.Address = *input.Address
	}
	if input.IsActive != nil {
		driver.IsActive = *input.IsActive
	}

	if err := h.Repo.Create(driver); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, ApiResponse{Success: true, Data: driver})
}

func (h *DriverHandler) Update(w http.ResponseWriter, r *http.Request, rawID string) {
	id, ok := parseObjectID(w, rawID)
	if !ok {
		return
	}

	driver, err := h.Repo.FindByID(id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if driver == nil {
		writeError(w, http.StatusNotFound, "Driver not found")
		return
	}

	var input driverInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	if input.Name != nil {
		driver.Name = *input.Name
	}
	if input.Phone != nil {
		driver.Phone = *input.Phone
	}
	if input.Address != nil {
		driver.Address = *input.Address
	}
	if input.IsActive != nil {
		driver.IsActive = *input.IsActive
	}

	if err := h.Repo.Save(driver); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: driver})
}

// ToggleStatus flips the driver's active flag.
func (h *DriverHandler) ToggleStatus(w http.ResponseWriter, r *http.Request, rawID string) {
	id, ok := parseObjectID(w, rawID)
	if !ok {
		return
	}

	driver, err := h.Repo.FindByID(id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if driver == nil {
		writeError(w, http.StatusNotFound, "Driver not found")
		return
	}

	driver.IsActive = !driver.IsActive
	if err := h.Repo.Save(driver); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: driver})
}

func (h *DriverHandler) Delete(w http.ResponseWriter, r *http.Request, rawID string) {
	id, ok := parseObjectID(w, rawID)
	if !ok {
		return
	}

	driver, err := h.Repo.FindByID(id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if driver == nil {
		writeError(w, http.StatusNotFound, "Driver not found")
		return
	}

	if err := h.Repo.DeleteByID(id); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: struct{}{}})
}
