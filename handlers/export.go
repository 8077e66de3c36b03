package handlers

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"timesheet/models"
	"timesheet/store"

	"github.com/xuri/excelize/v2"
)

// ExportHandler flattens approved reports into per-activity files for
// payroll. One row per activity, scoped to a calendar month.
type ExportHandler struct {
	store *store.ReportStore
}

func NewExportHandler(reports *store.ReportStore) *ExportHandler {
	return &ExportHandler{store: reports}
}

var exportHeaders = []string{"Employee", "Date", "Project", "Task", "Hours"}

func parseMonthWindow(r *http.Request) (from, to models.Date, err error) {
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil || month < 1 || month > 12 {
		return from, to, fmt.Errorf("invalid month")
	}
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil || year < 2000 || year > 2100 {
		return from, to, fmt.Errorf("invalid year")
	}

	from = models.NewDate(year, time.Month(month), 1)
	to = models.DateOf(from.AddDate(0, 1, -1))
	return from, to, nil
}

func (h *ExportHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	from, to, err := parseMonthWindow(r)
	if err != nil {
		respondBadRequest(w, err.Error())
		return
	}

	rows, err := h.store.ApprovedActivities(from, to)
	if err != nil {
		respondError(w, err)
		return
	}

	filename := fmt.Sprintf("timesheet_%s.csv", from.Format("2006_01"))
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))

	writer := csv.NewWriter(w)
	defer writer.Flush()

	writer.Write(exportHeaders)
	for _, row := range rows {
		writer.Write([]string{
			row.UserID,
			row.Date.String(),
			row.Project,
			row.Task,
			fmt.Sprintf("%.2f", row.Hours),
		})
	}
}

func (h *ExportHandler) ExportXLSX(w http.ResponseWriter, r *http.Request) {
	from, to, err := parseMonthWindow(r)
	if err != nil {
		respondBadRequest(w, err.Error())
		return
	}

	rows, err := h.store.ApprovedActivities(from, to)
	if err != nil {
		respondError(w, err)
		return
	}

	file := excelize.NewFile()
	defer file.Close()

	sheet := file.GetSheetName(0)
	for col, header := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := file.SetCellValue(sheet, cell, header); err != nil {
			respondError(w, err)
			return
		}
	}

	for i, row := range rows {
		values := []interface{}{
			row.UserID,
			row.Date.String(),
			row.Project,
			row.Task,
			row.Hours,
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			if err := file.SetCellValue(sheet, cell, value); err != nil {
				respondError(w, err)
				return
			}
		}
	}

	filename := fmt.Sprintf("timesheet_%s.xlsx", from.Format("2006_01"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))

	if err := file.Write(w); err != nil {
		respondError(w, err)
	}
}
