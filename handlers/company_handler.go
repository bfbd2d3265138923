package handlers

import (
	"encoding/json"
	"net/http"

	"distrisur/models"
	"distrisur/repository"
)

type CompanyHandler struct {
	Repo repository.CompanyInfoRepository
}

func (h *CompanyHandler) Save(w http.ResponseWriter, r *http.Request) {
	var info models.CompanyInfo
	if err := json.NewDecoder(r.Body).Decode(&info); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	if info.Name == "" {
		writeError(w, http.StatusBadRequest, "Company name is required")
		return
	}

	if err := h.Repo.SaveCompanyInfo(&info); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, ApiResponse{Success: true, Data: info})
}

func (h *CompanyHandler) Get(w http.ResponseWriter, r *http.Request) {
	info, err := h.Repo.GetCompanyInfo()
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if info == nil {
		writeError(w, http.StatusNotFound, "Company details not found")
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: info})
}
