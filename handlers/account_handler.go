package handlers

import (
	"encoding/json"
	"net/http"

	"distrisur/models"
	"distrisur/repository"
)

type TransferAccountHandler struct {
	Repo repository.TransferAccountRepository
}

type accountInput struct {
	Name *string `json:"name"`
}

func (h *TransferAccountHandler) List(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.Repo.FindAll()
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if accounts == nil {
		accounts = []*models.TransferAccount{}
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: accounts})
}

func (h *TransferAccountHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input accountInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	if input.Name == nil || *input.Name == "" {
		writeError(w, http.StatusBadRequest, "Account name is required")
		return
	}

	account := &models.TransferAccount{Name: *input.Name}
	if err := h.Repo.Create(account); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, ApiResponse{Success: true, Data: account})
}

func (h *TransferAccountHandler) Update(w http.ResponseWriter, r *http.Request, rawID string) {
	id, ok := parseObjectID(w, rawID)
	if !ok {
		return
	}

	account, err := h.Repo.FindByID(id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if account == nil {
		writeError(w, http.StatusNotFound, "Account not found")
		return
	}

	var input accountInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	if input.Name != nil {
		account.Name = *input.Name
	}

	if err := h.Repo.Save(account); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: account})
}

func (h *TransferAccountHandler) Delete(w http.ResponseWriter, r *http.Request, rawID string) {
	id, ok := parseObjectID(w, rawID)
	if !ok {
		return
	}

	account, err := h.Repo.FindByID(id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if account == nil {
		writeError(w, http.StatusNotFound, "Account not found")
		return
	}

	if err := h.Repo.DeleteByID(id); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: struct{}{}})
}
