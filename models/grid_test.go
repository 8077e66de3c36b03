package models

import (
	"errors"
	"testing"
)

func testWeek(t *testing.T) WeekSpan {
	t.Helper()
	return NewWeekSpan(mustDate(t, "2024-06-03"))
}

func rowsByKey(rows []GridRow) map[string]GridRow {
	byKey := make(map[string]GridRow, len(rows))
	for _, row := range rows {
		byKey[row.Project+"|"+row.Task] = row
	}
	return byKey
}

func assertGridsEqual(t *testing.T, got, want []GridRow) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("grid has %d rows, want %d", len(got), len(want))
	}
	gotByKey := rowsByKey(got)
	for key, wantRow := range rowsByKey(want) {
		gotRow, ok := gotByKey[key]
		if !ok {
			t.Fatalf("missing grid row %s", key)
		}
		for _, day := range Weekdays {
			if gotRow.Hours[day] != wantRow.Hours[day] {
				t.Fatalf("row %s %s = %v, want %v", key, day, gotRow.Hours[day], wantRow.Hours[day])
			}
		}
	}
}

func TestToGridAggregatesSameDay(t *testing.T) {
	week := testWeek(t)
	activities := []Activity{
		{ProjectID: "P1", TaskName: "T1", Date: mustDate(t, "2024-06-03"), Duration: 8},
		{ProjectID: "P1", TaskName: "T1", Date: mustDate(t, "2024-06-03"), Duration: 2},
	}

	rows := ToGrid(activities, week)
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}

	row := rows[0]
	if row.Project != "P1" || row.Task != "T1" {
		t.Fatalf("unexpected row key: %s / %s", row.Project, row.Task)
	}
	if len(row.Hours) != 7 {
		t.Fatalf("hours map has %d entries, want 7", len(row.Hours))
	}
	if row.Hours["Monday"] != 10 {
		t.Fatalf("Monday = %v, want 10", row.Hours["Monday"])
	}
	for _, day := range Weekdays[1:] {
		if row.Hours[day] != 0 {
			t.Fatalf("%s = %v, want 0", day, row.Hours[day])
		}
	}
}

func TestToGridSplitsByProjectAndTask(t *testing.T) {
	week := testWeek(t)
	activities := []Activity{
		{ProjectID: "P1", TaskName: "T1", Date: mustDate(t, "2024-06-03"), Duration: 4},
		{ProjectID: "P1", TaskName: "T2", Date: mustDate(t, "2024-06-03"), Duration: 3},
		{ProjectID: "P2", TaskName: "T1", Date: mustDate(t, "2024-06-04"), Duration: 2},
	}

	rows := ToGrid(activities, week)
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}
}

func TestToGridUnknownPlaceholders(t *testing.T) {
	week := testWeek(t)
	rows := ToGrid([]Activity{
		{Date: mustDate(t, "2024-06-04"), Duration: 1},
	}, week)

	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	if rows[0].Project != UnknownProject || rows[0].Task != UnknownTask {
		t.Fatalf("placeholders not applied: %s / %s", rows[0].Project, rows[0].Task)
	}
}

func TestToGridIgnoresActivitiesOutsideWeek(t *testing.T) {
	week := testWeek(t)
	rows := ToGrid([]Activity{
		{ProjectID: "P1", TaskName: "T1", Date: mustDate(t, "2024-06-10"), Duration: 8},
		{ProjectID: "P1", TaskName: "T1", Date: mustDate(t, "2024-06-02"), Duration: 8},
	}, week)

	if len(rows) != 0 {
		t.Fatalf("got %d rows for out-of-week activities, want 0", len(rows))
	}
}

func TestToGridCoercesNegativeDurations(t *testing.T) {
	week := testWeek(t)
	rows := ToGrid([]Activity{
		{ProjectID: "P1", TaskName: "T1", Date: mustDate(t, "2024-06-03"), Duration: -5},
	}, week)

	if len(rows) != 1 || rows[0].Hours["Monday"] != 0 {
		t.Fatalf("negative duration not coerced to 0: %+v", rows)
	}
}

func TestFromGridIsSparse(t *testing.T) {
	week := testWeek(t)
	rows := []GridRow{{
		Project: "P1",
		Task:    "T1",
		TaskID:  7,
		Hours:   map[string]float64{"Monday": 4, "Thursday": 2.5},
	}}

	activities := FromGrid(rows, week)
	if len(activities) != 2 {
		t.Fatalf("got %d activities, want 2", len(activities))
	}

	first := activities[0]
	if first.ProjectID != "P1" || first.TaskName != "T1" || first.TaskID != 7 {
		t.Fatalf("unexpected activity fields: %+v", first)
	}
	if first.Date.String() != "2024-06-03" || first.Duration != 4 {
		t.Fatalf("Monday cell produced %+v", first)
	}
	second := activities[1]
	if second.Date.String() != "2024-06-06" || second.Duration != 2.5 {
		t.Fatalf("Thursday cell produced %+v", second)
	}
}

func TestFromGridSkipsZeroAndNegativeCells(t *testing.T) {
	week := testWeek(t)
	rows := []GridRow{{
		Project: "P1",
		Task:    "T1",
		Hours:   map[string]float64{"Monday": 0, "Tuesday": -3},
	}}

	if activities := FromGrid(rows, week); len(activities) != 0 {
		t.Fatalf("got %d activities, want 0", len(activities))
	}
}

func TestGridRoundTrip(t *testing.T) {
	week := testWeek(t)
	rows := []GridRow{
		{Project: "P1", Task: "T1", Hours: map[string]float64{"Monday": 8, "Wednesday": 2, "Tuesday": 0, "Thursday": 0, "Friday": 0, "Saturday": 0, "Sunday": 0}},
		{Project: "P2", Task: "T2", Hours: map[string]float64{"Monday": 0, "Tuesday": 0, "Wednesday": 0, "Thursday": 0, "Friday": 0, "Saturday": 0, "Sunday": 1}},
	}

	got := ToGrid(FromGrid(rows, week), week)
	assertGridsEqual(t, got, rows)
}

func TestToGridIdempotence(t *testing.T) {
	week := testWeek(t)
	activities := []Activity{
		{ProjectID: "P1", TaskName: "T1", Date: mustDate(t, "2024-06-03"), Duration: 8},
		{ProjectID: "P1", TaskName: "T1", Date: mustDate(t, "2024-06-03"), Duration: 2},
		{ProjectID: "P2", TaskName: "T9", Date: mustDate(t, "2024-06-07"), Duration: 6},
	}

	once := ToGrid(activities, week)
	twice := ToGrid(FromGrid(once, week), week)
	assertGridsEqual(t, twice, once)
}

func TestValidateGridRejectsDuplicateKeys(t *testing.T) {
	rows := []GridRow{
		{Project: "P1", Task: "T1"},
		{Project: "P1", Task: "T1"},
	}

	err := ValidateGrid(rows)
	if err == nil {
		t.Fatal("duplicate rows accepted")
	}
	var invalid *InvalidActivityDataError
	if !errors.As(err, &invalid) {
		t.Fatalf("got %T, want *InvalidActivityDataError", err)
	}
}

func TestValidateGridAcceptsUniqueKeys(t *testing.T) {
	rows := []GridRow{
		{Project: "P1", Task: "T1"},
		{Project: "P1", Task: "T2"},
		{Project: "P2", Task: "T1"},
	}
	if err := ValidateGrid(rows); err != nil {
		t.Fatalf("unique rows rejected: %v", err)
	}
}
