package models

import (
	"errors"
	"testing"
	"time"
)

func mustDate(t *testing.T, value string) Date {
	t.Helper()
	d, err := ParseDate(value)
	if err != nil {
		t.Fatalf("ParseDate(%q): %v", value, err)
	}
	return d
}

func TestWeekStart(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"monday maps to itself", "2024-06-03", "2024-06-03"},
		{"tuesday", "2024-06-04", "2024-06-03"},
		{"wednesday", "2024-06-05", "2024-06-03"},
		{"saturday", "2024-06-08", "2024-06-03"},
		{"sunday belongs to the preceding monday", "2024-06-09", "2024-06-03"},
		{"next monday starts a new week", "2024-06-10", "2024-06-10"},
		{"week crossing a year boundary", "2026-01-01", "2025-12-29"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := WeekStart(mustDate(t, tc.in))
			if got.String() != tc.want {
				t.Fatalf("WeekStart(%s) = %s, want %s", tc.in, got, tc.want)
			}
		})
	}
}

func TestNewWeekSpan(t *testing.T) {
	span := NewWeekSpan(mustDate(t, "2024-06-06"))

	if span.Start.Time.Weekday() != time.Monday {
		t.Fatalf("span starts on %s, want Monday", span.Start.Time.Weekday())
	}
	if got := span.Start.String(); got != "2024-06-03" {
		t.Fatalf("span start = %s, want 2024-06-03", got)
	}
	if got := span.End.String(); got != "2024-06-09" {
		t.Fatalf("span end = %s, want 2024-06-09", got)
	}
	for i := 1; i < len(span.Days); i++ {
		if !span.Days[i-1].AddDays(1).Equal(span.Days[i]) {
			t.Fatalf("days not consecutive at index %d: %s -> %s", i, span.Days[i-1], span.Days[i])
		}
	}
	if !span.Days[0].Equal(span.Start) || !span.Days[6].Equal(span.End) {
		t.Fatalf("days do not line up with start/end: %v", span.Days)
	}
}

func TestWeekSpanDayIndex(t *testing.T) {
	span := NewWeekSpan(mustDate(t, "2024-06-03"))

	if i, ok := span.DayIndex(mustDate(t, "2024-06-05")); !ok || i != 2 {
		t.Fatalf("DayIndex(2024-06-05) = %d, %v; want 2, true", i, ok)
	}
	if _, ok := span.DayIndex(mustDate(t, "2024-06-10")); ok {
		t.Fatal("DayIndex accepted a date outside the week")
	}
}

func TestParseDateRejectsMalformedInput(t *testing.T) {
	for _, value := range []string{"", "garbage", "2024-13-40", "03/06/2024", "2024-06-03T00:00:00Z"} {
		_, err := ParseDate(value)
		if err == nil {
			t.Fatalf("ParseDate(%q) accepted malformed input", value)
		}
		var invalidDate *InvalidDateError
		if !errors.As(err, &invalidDate) {
			t.Fatalf("ParseDate(%q) returned %T, want *InvalidDateError", value, err)
		}
	}
}

func TestWeekdayNameIsTimezoneIndependent(t *testing.T) {
	// 2024-06-03 is a Monday in UTC regardless of where the server runs.
	d := DateOf(time.Date(2024, 6, 3, 23, 30, 0, 0, time.UTC))
	if got := d.WeekdayName(); got != "Monday" {
		t.Fatalf("WeekdayName = %s, want Monday", got)
	}
}
