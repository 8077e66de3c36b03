package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"timesheet/middleware"
	"timesheet/models"
	"timesheet/store"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type ReportHandler struct {
	store    *store.ReportStore
	validate *validator.Validate
}

func NewReportHandler(reports *store.ReportStore) *ReportHandler {
	return &ReportHandler{
		store:    reports,
		validate: validator.New(),
	}
}

// reportResponse is a stored report plus its weekly grid rendering, so the
// client never has to rebuild the grid itself.
type reportResponse struct {
	*models.Report
	Rows []models.GridRow `json:"rows"`
}

func newReportResponse(report *models.Report) reportResponse {
	return reportResponse{
		Report: report,
		Rows:   models.ToGrid(report.Activities, report.Week()),
	}
}

func parseReportID(r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// saveReportRequest carries the client's grid for one week. Rows use the
// Monday..Sunday hours map; the handler converts them to dated activities.
type saveReportRequest struct {
	WeekOf  string           `json:"weekOf" validate:"omitempty,datetime=2006-01-02"`
	Rows    []models.GridRow `json:"rows"`
	Comment string           `json:"comment"`
}

func (h *ReportHandler) decodeSaveRequest(r *http.Request) (*saveReportRequest, error) {
	var req saveReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, &models.InvalidActivityDataError{Reason: "request body is not a valid report payload"}
	}
	if err := h.validate.Struct(&req); err != nil {
		return nil, &models.InvalidDateError{Value: req.WeekOf}
	}
	if err := models.ValidateGrid(req.Rows); err != nil {
		return nil, err
	}
	return &req, nil
}

// GetReport returns one report with its grid.
func (h *ReportHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())
	id, ok := parseReportID(r)
	if !ok {
		respondBadRequest(w, "invalid report ID")
		return
	}

	report, err := h.store.GetByID(id)
	if err != nil {
		respondError(w, err)
		return
	}
	if !user.CanManageReportsFor(report.UserID) {
		respondJSON(w, http.StatusForbidden, errorBody{Error: "forbidden"})
		return
	}

	respondJSON(w, http.StatusOK, newReportResponse(report))
}

// GetUserWeek looks up a user's report for the week containing the weekOf
// date. Any date within the week resolves to the same report.
func (h *ReportHandler) GetUserWeek(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())
	userID := chi.URLParam(r, "userID")
	if !user.CanManageReportsFor(userID) {
		respondJSON(w, http.StatusForbidden, errorBody{Error: "forbidden"})
		return
	}

	weekOf := r.URL.Query().Get("weekOf")
	if weekOf == "" {
		respondError(w, &models.MissingFieldError{Field: "weekOf"})
		return
	}
	date, err := models.ParseDate(weekOf)
	if err != nil {
		respondError(w, err)
		return
	}

	report, err := h.store.GetByUserAndWeek(userID, models.WeekStart(date))
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, newReportResponse(report))
}

// ListReportsByStatus is the reviewer's queue, e.g. all Submitted reports.
func (h *ReportHandler) ListReportsByStatus(w http.ResponseWriter, r *http.Request) {
	status := models.ReportStatus(chi.URLParam(r, "status"))
	if !status.Valid() {
		respondBadRequest(w, "unknown report status")
		return
	}

	reports, err := h.store.ListByStatus(status)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, reports)
}

// ListUserReportsByStatus returns one user's reports in a given status,
// e.g. the rejected reports awaiting rework.
func (h *ReportHandler) ListUserReportsByStatus(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())
	userID := chi.URLParam(r, "userID")
	if !user.CanManageReportsFor(userID) {
		respondJSON(w, http.StatusForbidden, errorBody{Error: "forbidden"})
		return
	}

	status := models.ReportStatus(chi.URLParam(r, "status"))
	if !status.Valid() {
		respondBadRequest(w, "unknown report status")
		return
	}

	reports, err := h.store.ListByStatusAndUser(status, userID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, reports)
}

// CreateReport starts a Defined report for the authenticated user covering
// the week of the given date.
func (h *ReportHandler) CreateReport(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())
	req, err := h.decodeSaveRequest(r)
	if err != nil {
		respondError(w, err)
		return
	}
	if req.WeekOf == "" {
		respondError(w, &models.MissingFieldError{Field: "weekOf"})
		return
	}

	date, err := models.ParseDate(req.WeekOf)
	if err != nil {
		respondError(w, err)
		return
	}
	week := models.NewWeekSpan(date)

	report := &models.Report{
		UserID:     user.Email,
		DateFrom:   week.Start,
		DateTo:     week.End,
		Status:     models.StatusDefined,
		Activities: models.FromGrid(req.Rows, week),
	}
	if req.Comment != "" {
		report.AddComment(user.Email, req.Comment)
	}

	if err := h.store.Create(report); err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, newReportResponse(report))
}

// UpdateReport replaces the grid of an editable report. Saving a Rejected
// report moves it back to Defined.
func (h *ReportHandler) UpdateReport(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())
	id, ok := parseReportID(r)
	if !ok {
		respondBadRequest(w, "invalid report ID")
		return
	}

	report, err := h.store.GetByID(id)
	if err != nil {
		respondError(w, err)
		return
	}
	if !user.CanManageReportsFor(report.UserID) {
		respondJSON(w, http.StatusForbidden, errorBody{Error: "forbidden"})
		return
	}

	req, err := h.decodeSaveRequest(r)
	if err != nil {
		respondError(w, err)
		return
	}

	activities := models.FromGrid(req.Rows, report.Week())
	updated, err := h.store.Update(id, activities, user.Email, req.Comment)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, newReportResponse(updated))
}

// SubmitReport is the owner's submit action; the comment travels as a query
// parameter, matching the shape the web client sends.
func (h *ReportHandler) SubmitReport(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())
	id, ok := parseReportID(r)
	if !ok {
		respondBadRequest(w, "invalid report ID")
		return
	}

	report, err := h.store.GetByID(id)
	if err != nil {
		respondError(w, err)
		return
	}
	if report.UserID != user.Email {
		respondJSON(w, http.StatusForbidden, errorBody{Error: "only the owner may submit a report"})
		return
	}

	updated, err := h.store.Submit(id, r.URL.Query().Get("comment"))
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, newReportResponse(updated))
}

// ValidateReport is the reviewer decision on a submitted report:
// accepted=true approves, accepted=false rejects. The reviewer identity is
// taken from the authenticated session, never from the request.
func (h *ReportHandler) ValidateReport(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())
	if !user.CanReview() {
		respondJSON(w, http.StatusForbidden, errorBody{Error: "forbidden"})
		return
	}

	id, ok := parseReportID(r)
	if !ok {
		respondBadRequest(w, "invalid report ID")
		return
	}

	accepted, err := strconv.ParseBool(r.URL.Query().Get("accepted"))
	if err != nil {
		respondBadRequest(w, "accepted must be true or false")
		return
	}

	updated, err := h.store.Decide(id, accepted, user.Email, r.URL.Query().Get("comment"))
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, newReportResponse(updated))
}
