package handlers

import (
	"encoding/json"
	"net/http"

	"distrisur/models"
	"distrisur/repository"
)

type ProductHandler struct {
	Repo repository.ProductRepository
}

type productInput struct {
	Number   *string `json:"number"`
	Category *string `json:"category"`
	Name     *string `json:"name"`
	IsActive *bool   `json:"is_active"`
}

func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := repository.ProductFilter{
		ActiveOnly: r.URL.Query().Get("active") == "true",
		Category:   r.URL.Query().Get("category"),
	}

	products, err := h.Repo.Find(filter)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if products == nil {
		products = []*models.Product{}
	}

	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Count:   intPtr(len(products)),
		Total:   intPtr(len(products)),
		Data:    products,
	})
}

func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request, rawID string) {
	id, ok := parseObjectID(w, rawID)
	if !ok {
		return
	}

	product, err := h.Repo.FindByID(id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if product == nil {
		writeError(w, http.StatusNotFound, "Product not found")
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: product})
}

func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input productInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	if input.Number == nil || *input.Number == "" ||
		input.Category == nil || *input.Category == "" ||
		input.Name == nil || *input.Name == "" {
		writeError(w, http.StatusBadRequest, "Number, category, and name are required")
		return
	}

	product := &models.Product{
		Number:   *input.Number,
		Category: *input.Category,
		Name:     *input.Name,
		IsActive: true,
	}
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}

	if err := h.Repo.Create(product); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, ApiResponse{Success: true, Data: product})
}

func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request, rawID string) {
	id, ok := parseObjectID(w, rawID)
	if !ok {
		return
	}

	product, err := h.Repo.FindByID(id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if product == nil {
		writeError(w, http.StatusNotFound, "Product not found")
		return
	}

	var input productInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	if input.Number != nil {
		product.Number = *input.Number
	}
	if input.Category != nil {
		product.Category = *input.Category
	}
	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}

	if err := h.Repo.Save(product); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: product})
}

func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request, rawID string) {
	id, ok := parseObjectID(w, rawID)
	if !ok {
		return
	}

	product, err := h.Repo.FindByID(id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if product == nil {
		writeError(w, http.StatusNotFound, "Product not found")
		return
	}

	if err := h.Repo.DeleteByID(id); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: struct{}{}})
}
