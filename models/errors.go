package models

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned by the store when a lookup matches nothing.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned by the store when a write collides with an
	// existing record, e.g. a second report for the same user and week.
	ErrConflict = errors.New("conflict")
)

// InvalidDateError reports a date that could not be parsed or that violates
// the week bounds of a report.
type InvalidDateError struct {
	Value  string
	Reason string
}

func (e *InvalidDateError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("invalid date %q: %s", e.Value, e.Reason)
	}
	return fmt.Sprintf("invalid date %q: expected YYYY-MM-DD", e.Value)
}

// InvalidActivityDataError reports a malformed activity or grid collection.
type InvalidActivityDataError struct {
	Reason string
}

func (e *InvalidActivityDataError) Error() string {
	return "invalid activity data: " + e.Reason
}

// InvalidTransitionError reports a lifecycle event attempted from a state
// that does not allow it. It names both so the caller can render a message.
type InvalidTransitionError struct {
	Event  string
	Status ReportStatus
	Reason string
}

func (e *InvalidTransitionError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("cannot %s report in status %s: %s", e.Event, e.Status, e.Reason)
	}
	return fmt.Sprintf("cannot %s report in status %s", e.Event, e.Status)
}

// MissingFieldError reports a required field that was absent or blank.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("required field %q is missing", e.Field)
}
