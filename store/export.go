package store

import (
	"timesheet/models"
)

// ExportRow is one flattened activity from an approved report, used by the
// CSV and XLSX exports.
type ExportRow struct {
	UserID  string
	Date    models.Date
	Project string
	Task    string
	Hours   float64
}

// ApprovedActivities returns every activity of every Approved report dated
// within [from, to], ordered by date then owner.
func (s *ReportStore) ApprovedActivities(from, to models.Date) ([]ExportRow, error) {
	var rows []ExportRow
	err := s.db.Table("activities").
		Select("reports.user_id as user_id, activities.date as date, activities.project_id as project, activities.task_name as task, activities.duration as hours").
		Joins("JOIN reports ON reports.id = activities.report_id").
		Where("reports.status = ?", models.StatusApproved).
		Where("activities.date >= ? AND activities.date <= ?", from, to).
		Order("activities.date asc, reports.user_id asc").
		Scan(&rows).Error
	return rows, err
}
