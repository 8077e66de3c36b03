package models

import (
	"fmt"
	"math"
)

// Weekdays lists the grid columns in order, Monday first, matching the
// ordering of WeekSpan.Days.
var Weekdays = [7]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// Placeholders for activities recorded without a project or task name.
const (
	UnknownProject = "Unknown Project"
	UnknownTask    = "Unknown Task"
)

// GridRow is one line of the weekly timecard: a (project, task) pair with
// hours per weekday. Hours always holds all seven days, zero when no work
// was logged.
type GridRow struct {
	Project string             `json:"project"`
	Task    string             `json:"task"`
	TaskID  int64              `json:"taskId"`
	Hours   map[string]float64 `json:"hours"`
}

func emptyHours() map[string]float64 {
	hours := make(map[string]float64, len(Weekdays))
	for _, day := range Weekdays {
		hours[day] = 0
	}
	return hours
}

func gridKey(project, task string) string {
	return project + "|" + task
}

func sanitizeDuration(value float64) float64 {
	if value < 0 || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0
	}
	return value
}

// ToGrid reshapes a flat list of dated activities into one grid row per
// (project, task) pair. Durations on the same project, task and day
// accumulate. Activities dated outside the week are ignored; the caller is
// expected to partition by week first. Blank project or task names fall back
// to the Unknown placeholders.
func ToGrid(activities []Activity, week WeekSpan) []GridRow {
	rows := make([]GridRow, 0, len(activities))
	index := make(map[string]int)

	for _, activity := range activities {
		day, ok := week.DayIndex(activity.Date)
		if !ok {
			continue
		}

		project := activity.ProjectID
		if project == "" {
			project = UnknownProject
		}
		task := activity.TaskName
		if task == "" {
			task = UnknownTask
		}

		key := gridKey(project, task)
		i, ok := index[key]
		if !ok {
			i = len(rows)
			index[key] = i
			rows = append(rows, GridRow{
				Project: project,
				Task:    task,
				TaskID:  activity.TaskID,
				Hours:   emptyHours(),
			})
		}

		rows[i].Hours[Weekdays[day]] += sanitizeDuration(activity.Duration)
	}

	return rows
}

// FromGrid is the inverse of ToGrid: every positive cell becomes one
// activity dated to the matching day of the week. Zero cells produce
// nothing, so an untouched day is absent rather than logged as zero hours.
func FromGrid(rows []GridRow, week WeekSpan) []Activity {
	var activities []Activity
	for _, row := range rows {
		for i, day := range Weekdays {
			duration := sanitizeDuration(row.Hours[day])
			if duration == 0 {
				continue
			}
			activities = append(activities, Activity{
				ProjectID: row.Project,
				TaskName:  row.Task,
				TaskID:    row.TaskID,
				Date:      week.Days[i],
				Duration:  duration,
			})
		}
	}
	return activities
}

// ValidateGrid rejects grids where two rows share a (project, task) key;
// such grids cannot round-trip through the activity representation.
func ValidateGrid(rows []GridRow) error {
	seen := make(map[string]bool, len(rows))
	for _, row := range rows {
		key := gridKey(row.Project, row.Task)
		if seen[key] {
			return &InvalidActivityDataError{
				Reason: fmt.Sprintf("duplicate grid row for project %q task %q", row.Project, row.Task),
			}
		}
		seen[key] = true
	}
	return nil
}
