package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"sf-server/models"
)

// ErrorResponse is the JSON error shape shared by every route.
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// WriteJSON writes v as a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Println("Error encoding response:", err)
	}
}

// WriteError writes the shared error JSON shape.
func WriteError(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, ErrorResponse{Status: "error", Message: message})
}

// WriteCoreError maps a structured core error onto an HTTP status.
func WriteCoreError(w http.ResponseWriter, err error) {
	switch models.KindOf(err) {
	case models.InvalidConfiguration:
		WriteError(w, http.StatusBadRequest, err.Error())
	case models.InsufficientData, models.FitFailure:
		WriteError(w, http.StatusUnprocessableEntity, err.Error())
	case models.NumericOverflow:
		WriteError(w, http.StatusInternalServerError, err.Error())
	default:
		WriteError(w, http.StatusInternalServerError, "Internal server error")
	}
}
