package models

import (
	"strings"
	"time"
)

// ReportStatus is the lifecycle state of a weekly report. Only the
// transitions implemented by the methods on Report are legal; anything else
// fails with InvalidTransitionError.
type ReportStatus string

const (
	StatusDefined   ReportStatus = "Defined"
	StatusSubmitted ReportStatus = "Submitted"
	StatusApproved  ReportStatus = "Approved"
	StatusRejected  ReportStatus = "Rejected"
)

func (s ReportStatus) Valid() bool {
	switch s {
	case StatusDefined, StatusSubmitted, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Activity is one unit of logged work: a duration on one project task on
// one calendar day.
type Activity struct {
	ID        uint    `gorm:"primaryKey" json:"-"`
	ReportID  uint    `gorm:"not null;index" json:"-"`
	ProjectID string  `gorm:"size:200" json:"projectId"`
	TaskName  string  `gorm:"size:200" json:"taskName"`
	TaskID    int64   `json:"taskId"`
	Date      Date    `gorm:"type:date;not null" json:"date"`
	Duration  float64 `gorm:"not null" json:"duration"`
}

// Comment is an entry in a report's discussion trail. Comments are kept in
// insertion order; the last element is the latest.
type Comment struct {
	ID       uint      `gorm:"primaryKey" json:"-"`
	ReportID uint      `gorm:"not null;index" json:"-"`
	Author   string    `gorm:"size:200;not null" json:"author"`
	Text     string    `gorm:"size:2000;not null" json:"txt"`
	Date     time.Time `gorm:"not null" json:"date"`
}

// Report is one user's timesheet for one Monday-start week. DateFrom is
// always a Monday and DateTo is always six days later.
type Report struct {
	ID         uint         `gorm:"primaryKey" json:"id"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
	UserID     string       `gorm:"size:200;not null;uniqueIndex:idx_reports_user_week" json:"userId"`
	DateFrom   Date         `gorm:"type:date;not null;uniqueIndex:idx_reports_user_week" json:"dateFrom"`
	DateTo     Date         `gorm:"type:date;not null" json:"dateTo"`
	Status     ReportStatus `gorm:"size:20;not null" json:"status"`
	Activities []Activity   `gorm:"foreignKey:ReportID;constraint:OnDelete:CASCADE" json:"activities"`
	Comments   []Comment    `gorm:"foreignKey:ReportID;constraint:OnDelete:CASCADE" json:"comments"`
}

// Week returns the week span the report covers.
func (r *Report) Week() WeekSpan {
	return NewWeekSpan(r.DateFrom)
}

// ValidateSpan checks that the report covers exactly one Monday-start week.
func (r *Report) ValidateSpan() error {
	if !WeekStart(r.DateFrom).Equal(r.DateFrom) {
		return &InvalidDateError{Value: r.DateFrom.String(), Reason: "dateFrom must be a Monday"}
	}
	if !r.DateFrom.AddDays(6).Equal(r.DateTo) {
		return &InvalidDateError{Value: r.DateTo.String(), Reason: "dateTo must be six days after dateFrom"}
	}
	return nil
}

// Editable reports whether the owner may still change the grid. Submitted
// and Approved reports are read-only.
func (r *Report) Editable() bool {
	return r.Status == StatusDefined || r.Status == StatusRejected
}

// HasLoggedWork reports whether any activity carries a positive duration.
func (r *Report) HasLoggedWork() bool {
	for _, activity := range r.Activities {
		if activity.Duration > 0 {
			return true
		}
	}
	return false
}

func (r *Report) AddComment(author, text string) {
	r.Comments = append(r.Comments, Comment{
		ReportID: r.ID,
		Author:   author,
		Text:     text,
		Date:     time.Now().UTC(),
	})
}

// LatestComment returns the most recent comment, if any.
func (r *Report) LatestComment() (Comment, bool) {
	if len(r.Comments) == 0 {
		return Comment{}, false
	}
	return r.Comments[len(r.Comments)-1], true
}

// Submit moves a Defined report to Submitted. It requires at least one
// activity with logged work and a non-empty comment from the owner.
func (r *Report) Submit(comment string) error {
	if r.Status != StatusDefined {
		return &InvalidTransitionError{Event: "submit", Status: r.Status}
	}
	if !r.HasLoggedWork() {
		return &InvalidTransitionError{Event: "submit", Status: r.Status, Reason: "report has no logged work"}
	}
	if strings.TrimSpace(comment) == "" {
		return &MissingFieldError{Field: "comment"}
	}
	r.Status = StatusSubmitted
	r.AddComment(r.UserID, strings.TrimSpace(comment))
	return nil
}

// Decide is the reviewer action on a Submitted report: approve or reject.
// A rejection always carries a comment so the owner knows what to fix; on
// approval the comment is optional.
func (r *Report) Decide(accepted bool, reviewerID, comment string) error {
	event := "reject"
	if accepted {
		event = "approve"
	}
	if r.Status != StatusSubmitted {
		return &InvalidTransitionError{Event: event, Status: r.Status}
	}
	if strings.TrimSpace(reviewerID) == "" {
		return &MissingFieldError{Field: "reviewerId"}
	}
	comment = strings.TrimSpace(comment)
	if !accepted && comment == "" {
		return &MissingFieldError{Field: "comment"}
	}

	if accepted {
		r.Status = StatusApproved
	} else {
		r.Status = StatusRejected
	}
	if comment != "" {
		r.AddComment(reviewerID, comment)
	}
	return nil
}

// BeginEdit reopens a Rejected report for its owner, returning it to
// Defined with the stored activities intact. Editing a Defined report is
// allowed and changes nothing.
func (r *Report) BeginEdit() error {
	switch r.Status {
	case StatusDefined:
		return nil
	case StatusRejected:
		r.Status = StatusDefined
		return nil
	default:
		return &InvalidTransitionError{Event: "edit", Status: r.Status}
	}
}
