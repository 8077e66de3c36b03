package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"timesheet/models"
)

type errorBody struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		json.NewEncoder(w).Encode(payload)
	}
}

func respondBadRequest(w http.ResponseWriter, message string) {
	respondJSON(w, http.StatusBadRequest, errorBody{Error: message})
}

// respondError maps the domain error taxonomy onto HTTP status codes. Guard
// violations are conflicts, malformed input is a bad request, store misses
// are 404s; anything unrecognized is a 500.
func respondError(w http.ResponseWriter, err error) {
	var (
		invalidDate       *models.InvalidDateError
		invalidActivities *models.InvalidActivityDataError
		invalidTransition *models.InvalidTransitionError
		missingField      *models.MissingFieldError
	)

	switch {
	case errors.Is(err, models.ErrNotFound):
		respondJSON(w, http.StatusNotFound, errorBody{Error: "report not found"})
	case errors.Is(err, models.ErrConflict):
		respondJSON(w, http.StatusConflict, errorBody{Error: "a report already exists for this user and week"})
	case errors.As(err, &invalidTransition):
		respondJSON(w, http.StatusConflict, errorBody{Error: err.Error()})
	case errors.As(err, &invalidDate),
		errors.As(err, &invalidActivities),
		errors.As(err, &missingField):
		respondJSON(w, http.StatusBadRequest, errorBody{Error: err.Error()})
	default:
		respondJSON(w, http.StatusInternalServerError, errorBody{Error: "internal error"})
	}
}
