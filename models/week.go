package models

import (
	"database/sql/driver"
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar day with no time-of-day component. It always carries
// UTC so weekday and equality checks do not depend on the server time zone.
// It marshals as YYYY-MM-DD in JSON and maps to a DATE column.
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates an instant to its UTC calendar day.
func DateOf(t time.Time) Date {
	t = t.UTC()
	return NewDate(t.Year(), t.Month(), t.Day())
}

// ParseDate parses a YYYY-MM-DD string into a Date.
func ParseDate(value string) (Date, error) {
	t, err := time.ParseInLocation(dateLayout, value, time.UTC)
	if err != nil {
		return Date{}, &InvalidDateError{Value: value}
	}
	return Date{t}, nil
}

func (d Date) String() string {
	return d.Format(dateLayout)
}

func (d Date) AddDays(n int) Date {
	return Date{d.AddDate(0, 0, n)}
}

func (d Date) Equal(other Date) bool {
	return d.Time.Equal(other.Time)
}

// WeekdayName returns the English day name used as a grid column key.
func (d Date) WeekdayName() string {
	return d.Time.Weekday().String()
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return &InvalidDateError{Value: string(data)}
	}
	parsed, err := ParseDate(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d Date) Value() (driver.Value, error) {
	return d.Time, nil
}

func (d *Date) Scan(value interface{}) error {
	switch v := value.(type) {
	case time.Time:
		*d = DateOf(v)
		return nil
	case string:
		parsed, err := ParseDate(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case []byte:
		return d.Scan(string(v))
	default:
		return fmt.Errorf("cannot scan %T into Date", value)
	}
}

// WeekStart returns the Monday on or before d. Go numbers Sunday as day 0,
// so it must shift back six days instead of forward one.
func WeekStart(d Date) Date {
	offset := int(d.Time.Weekday()) - 1
	if d.Time.Weekday() == time.Sunday {
		offset = 6
	}
	return d.AddDays(-offset)
}

// WeekSpan is a Monday-start calendar week: the start and end dates plus all
// seven days in order.
type WeekSpan struct {
	Start Date
	End   Date
	Days  [7]Date
}

// NewWeekSpan returns the week containing d.
func NewWeekSpan(d Date) WeekSpan {
	start := WeekStart(d)
	span := WeekSpan{Start: start, End: start.AddDays(6)}
	for i := range span.Days {
		span.Days[i] = start.AddDays(i)
	}
	return span
}

// DayIndex returns the position of d within the week (0 = Monday), or false
// when d falls outside it.
func (w WeekSpan) DayIndex(d Date) (int, bool) {
	for i, day := range w.Days {
		if day.Equal(d) {
			return i, true
		}
	}
	return 0, false
}
