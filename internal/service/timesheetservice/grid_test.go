package timesheetservice

import (
	"testing"
	"time"

	"github.com/talmaprime/teaops/internal/domain"
	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestWeekSaturday(t *testing.T) {
	tests := []struct {
		name     string
		date     time.Time
		expected time.Time
	}{
		{
			name:     "Saturday stays put",
			date:     day(2025, 6, 7),
			expected: day(2025, 6, 7),
		},
		{
			name:     "Sunday rolls forward six days",
			date:     day(2025, 6, 1),
			expected: day(2025, 6, 7),
		},
		{
			name:     "Monday rolls forward to the same week's Saturday",
			date:     day(2025, 6, 2),
			expected: day(2025, 6, 7),
		},
		{
			name:     "Friday rolls forward one day",
			date:     day(2025, 6, 6),
			expected: day(2025, 6, 7),
		},
		{
			name:     "Month-end Monday lands in the next month",
			date:     day(2025, 6, 30),
			expected: day(2025, 7, 5),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, weekSaturday(tt.date))
		})
	}
}

func TestBuildWeeklyGrid(t *testing.T) {
	active := []domain.Worker{
		{ID: 1, Name: "Ayesha", Active: true},
		{ID: 2, Name: "Rahim", Active: true},
	}
	// Entries arrive ordered by date, the way the repository returns them.
	entries := []domain.TimesheetEntry{
		{ID: 1, Date: day(2025, 6, 2), WorkerID: 1, WorkerName: "Ayesha", Hours: 8, Note: "first"},
		{ID: 2, Date: day(2025, 6, 3), WorkerID: 3, WorkerName: "Left Worker", Hours: 5},
		{ID: 3, Date: day(2025, 6, 5), WorkerID: 1, WorkerName: "Ayesha", Hours: 4, Note: "sick leave"},
		{ID: 4, Date: day(2025, 6, 9), WorkerID: 1, WorkerName: "Ayesha", Hours: 6},
		{ID: 5, Date: day(2025, 6, 30), WorkerID: 2, WorkerName: "Rahim", Hours: 9, Note: "late month"},
	}

	grid := BuildWeeklyGrid(2025, time.June, active, entries)

	assert.Len(t, grid.Dates, 30)
	assert.Equal(t, "2025-06-01", grid.Dates[0])
	assert.Equal(t, "2025-06-30", grid.Dates[29])

	// Inactive workers with entries still get a row.
	assert.Equal(t, []string{"Ayesha", "Left Worker", "Rahim"}, grid.Workers)

	// Hours pile up on the Saturday that closes their week.
	assert.Equal(t, 12.0, grid.Data["Ayesha"]["2025-06-07"])
	assert.Equal(t, 6.0, grid.Data["Ayesha"]["2025-06-14"])
	assert.Equal(t, 0.0, grid.Data["Ayesha"]["2025-06-01"])
	assert.Equal(t, 5.0, grid.Data["Left Worker"]["2025-06-07"])

	// June 30 closes on July 5: no column for it and nothing in the totals.
	assert.NotContains(t, grid.Data["Rahim"], "2025-07-05")
	assert.Equal(t, 0.0, grid.Totals["Rahim"])

	assert.Equal(t, 18.0, grid.Totals["Ayesha"])
	assert.Equal(t, 5.0, grid.Totals["Left Worker"])

	// Latest non-empty note wins; the month filter still covers June 30.
	assert.Equal(t, "sick leave", grid.Remarks["Ayesha"])
	assert.Equal(t, "late month", grid.Remarks["Rahim"])
	assert.Equal(t, "", grid.Remarks["Left Worker"])
}

func TestBuildWeeklyGrid_Empty(t *testing.T) {
	grid := BuildWeeklyGrid(2025, time.February, nil, nil)

	assert.Len(t, grid.Dates, 28)
	assert.Empty(t, grid.Workers)
	assert.Empty(t, grid.Data)
	assert.Empty(t, grid.Totals)
	assert.Empty(t, grid.Remarks)
}

func TestBuildDayMatrix(t *testing.T) {
	entries := []domain.TimesheetEntry{
		{ID: 1, Date: day(2025, 6, 1), WorkerID: 2, WorkerName: "Rahim", Hours: 7},
		{ID: 2, Date: day(2025, 6, 2), WorkerID: 1, WorkerName: "Ayesha", Hours: 3},
		{ID: 3, Date: day(2025, 6, 2), WorkerID: 1, WorkerName: "Ayesha", Hours: 5},
	}

	matrix := BuildDayMatrix(day(2025, 6, 1), day(2025, 6, 3), entries)

	assert.Equal(t, []string{"2025-06-01", "2025-06-02", "2025-06-03"}, matrix.Dates)
	// Only workers with entries get rows.
	assert.Equal(t, []string{"Ayesha", "Rahim"}, matrix.Workers)

	// Two entries on the same day add up.
	assert.Equal(t, 8.0, matrix.Data["Ayesha"]["2025-06-02"])
	assert.Equal(t, 0.0, matrix.Data["Ayesha"]["2025-06-01"])
	assert.Equal(t, 7.0, matrix.Data["Rahim"]["2025-06-01"])

	assert.Equal(t, 8.0, matrix.Totals["Ayesha"])
	assert.Equal(t, 7.0, matrix.Totals["Rahim"])
}

func TestBuildDayMatrix_Empty(t *testing.T) {
	matrix := BuildDayMatrix(day(2025, 6, 1), day(2025, 6, 3), nil)

	assert.Len(t, matrix.Dates, 3)
	assert.Empty(t, matrix.Workers)
	assert.Empty(t, matrix.Data)
}
