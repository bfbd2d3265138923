package handlers

import (
	"encoding/json"
	"net/http"

	"distrisur/services"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ApiResponse is the JSON envelope shared by every endpoint.
type ApiResponse struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message,omitempty"`
	Error     string      `json:"error,omitempty"`
	Details   []string    `json:"details,omitempty"`
	Count     *int        `json:"count,omitempty"`
	Total     *int        `json:"total,omitempty"`
	TotalPaid *float64    `json:"totalPaid,omitempty"`
	Data      interface{} `json:"data,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload ApiResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ApiResponse{Success: false, Error: message})
}

// writeServiceError maps the service error taxonomy onto HTTP statuses.
// Anything outside the taxonomy is a server fault and stays generic.
func writeServiceError(w http.ResponseWriter, err error) {
	var stockErr *services.InsufficientStockError
	if errors.As(err, &stockErr) {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Error:   "Insufficient stock",
			Details: stockErr.Violations,
		})
		return
	}

	message := err.Error()
	var domErr *services.DomainError
	if errors.As(err, &domErr) && domErr.Details != "" {
		message = domErr.Details
	}

	switch {
	case errors.Is(err, services.ErrNotFound):
		writeError(w, http.StatusNotFound, message)
	case errors.Is(err, services.ErrInvalidReference),
		errors.Is(err, services.ErrInvalidAmount),
		errors.Is(err, services.ErrIllegalState),
		errors.Is(err, services.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, message)
	default:
		log.WithError(err).Error("unhandled service error")
		writeError(w, http.StatusInternalServerError, "Server Error")
	}
}

// parseObjectID converts a path/query id. A malformed id can never match a
// record, so it reports not found rather than a malformed-request error.
func parseObjectID(w http.ResponseWriter, raw string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		writeError(w, http.StatusNotFound, "Resource not found")
		return primitive.NilObjectID, false
	}
	return id, true
}

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }
