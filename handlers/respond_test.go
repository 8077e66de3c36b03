package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"timesheet/models"
)

func TestRespondErrorStatusMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"not found", models.ErrNotFound, http.StatusNotFound},
		{"conflict", models.ErrConflict, http.StatusConflict},
		{"invalid transition", &models.InvalidTransitionError{Event: "submit", Status: models.StatusApproved}, http.StatusConflict},
		{"invalid date", &models.InvalidDateError{Value: "garbage"}, http.StatusBadRequest},
		{"invalid activity data", &models.InvalidActivityDataError{Reason: "duplicate row"}, http.StatusBadRequest},
		{"missing field", &models.MissingFieldError{Field: "comment"}, http.StatusBadRequest},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			respondError(rec, tc.err)
			if rec.Code != tc.want {
				t.Fatalf("status = %d, want %d", rec.Code, tc.want)
			}
			if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
				t.Fatalf("content type = %q, want application/json", ct)
			}
		})
	}
}
