package store

import (
	"errors"
	"timesheet/models"

	"gorm.io/gorm"
)

// ReportStore persists weekly reports. The transition-triggering updates
// (Submit, Decide) and the editability checks run through the lifecycle
// methods on models.Report, so an illegal operation never reaches the
// database.
type ReportStore struct {
	db *gorm.DB
}

func NewReportStore(db *gorm.DB) *ReportStore {
	return &ReportStore{db: db}
}

// withChildren preloads activities and comments. Comments come back in
// insertion order, so the last element is always the latest.
func (s *ReportStore) withChildren() *gorm.DB {
	return s.db.
		Preload("Activities").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("comments.id asc")
		})
}

func (s *ReportStore) GetByID(id uint) (*models.Report, error) {
	var report models.Report
	if err := s.withChildren().First(&report, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return &report, nil
}

// GetByUserAndWeek returns the single report a user has for the week
// starting at weekStart, or ErrNotFound when none exists.
func (s *ReportStore) GetByUserAndWeek(userID string, weekStart models.Date) (*models.Report, error) {
	var report models.Report
	err := s.withChildren().
		Where("user_id = ? AND date_from = ?", userID, weekStart).
		First(&report).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return &report, nil
}

func (s *ReportStore) ListByStatus(status models.ReportStatus) ([]models.Report, error) {
	var reports []models.Report
	err := s.withChildren().
		Where("status = ?", status).
		Order("date_from desc, user_id asc").
		Find(&reports).Error
	return reports, err
}

func (s *ReportStore) ListByStatusAndUser(status models.ReportStatus, userID string) ([]models.Report, error) {
	var reports []models.Report
	err := s.withChildren().
		Where("status = ? AND user_id = ?", status, userID).
		Order("date_from desc").
		Find(&reports).Error
	return reports, err
}

// Create stores a new report in status Defined. A user can have at most one
// report per week; a second one fails with ErrConflict.
func (s *ReportStore) Create(report *models.Report) error {
	report.ID = 0
	report.Status = models.StatusDefined
	if err := report.ValidateSpan(); err != nil {
		return err
	}

	var count int64
	s.db.Model(&models.Report{}).
		Where("user_id = ? AND date_from = ?", report.UserID, report.DateFrom).
		Count(&count)
	if count > 0 {
		return models.ErrConflict
	}

	return s.db.Create(report).Error
}

// Update replaces the report's activities and appends an optional comment.
// A Rejected report re-enters Defined here; Submitted and Approved reports
// refuse the edit.
func (s *ReportStore) Update(id uint, activities []models.Activity, commentAuthor, comment string) (*models.Report, error) {
	report, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := report.BeginEdit(); err != nil {
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("report_id = ?", id).Delete(&models.Activity{}).Error; err != nil {
			return err
		}
		for i := range activities {
			activities[i].ID = 0
			activities[i].ReportID = id
		}
		if len(activities) > 0 {
			if err := tx.Create(&activities).Error; err != nil {
				return err
			}
		}
		if comment != "" {
			report.AddComment(commentAuthor, comment)
		}
		return s.persistTransition(tx, report)
	})
	if err != nil {
		return nil, err
	}

	return s.GetByID(id)
}

// Submit runs the owner's submit transition and persists it.
func (s *ReportStore) Submit(id uint, comment string) (*models.Report, error) {
	report, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := report.Submit(comment); err != nil {
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		return s.persistTransition(tx, report)
	})
	if err != nil {
		return nil, err
	}
	return s.GetByID(id)
}

// Decide runs the reviewer's approve/reject transition and persists it.
func (s *ReportStore) Decide(id uint, accepted bool, reviewerID, comment string) (*models.Report, error) {
	report, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := report.Decide(accepted, reviewerID, comment); err != nil {
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		return s.persistTransition(tx, report)
	})
	if err != nil {
		return nil, err
	}
	return s.GetByID(id)
}

// persistTransition writes the report's status and any comments the
// lifecycle methods appended in memory.
func (s *ReportStore) persistTransition(tx *gorm.DB, report *models.Report) error {
	for i := range report.Comments {
		if report.Comments[i].ID != 0 {
			continue
		}
		report.Comments[i].ReportID = report.ID
		if err := tx.Create(&report.Comments[i]).Error; err != nil {
			return err
		}
	}
	return tx.Model(&models.Report{}).
		Where("id = ?", report.ID).
		Update("status", report.Status).Error
}
