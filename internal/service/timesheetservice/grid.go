package timesheetservice

import (
	"sort"
	"time"

	"github.com/talmaprime/teaops/internal/domain"
	"github.com/talmaprime/teaops/pkg/utils"
)

// WeeklyGrid is the month matrix shown on the timesheets page: one row per
// worker, one column per day of the month, with each week's hours placed
// on the Saturday that closes it.
type WeeklyGrid struct {
	Dates   []string                      `json:"dates"`
	Workers []string                      `json:"workers"`
	Data    map[string]map[string]float64 `json:"data"`
	Totals  map[string]float64            `json:"totals"`
	Remarks map[string]string             `json:"remarks"`
}

// DayMatrix holds per-day hours over an inclusive range, one row per
// worker. Only workers with entries in the range get a row.
type DayMatrix struct {
	Dates   []string
	Workers []string
	Data    map[string]map[string]float64
	Totals  map[string]float64
}

// weekSaturday returns the Saturday on or after date.
func weekSaturday(date time.Time) time.Time {
	days := int((time.Saturday - date.Weekday() + 7) % 7)
	return date.AddDate(0, 0, days)
}

// BuildWeeklyGrid folds a month of entries into weekly sums keyed by their
// closing Saturday. A week that closes in the following month has no
// column, so its hours appear in neither the grid nor the totals. Remarks
// keep the latest non-empty note per worker; entries must be ordered by
// date.
func BuildWeeklyGrid(year int, month time.Month, active []domain.Worker, entries []domain.TimesheetEntry) *WeeklyGrid {
	_, end := utils.MonthRange(year, month)

	dates := make([]string, 0, end.Day())
	for d := 1; d <= end.Day(); d++ {
		dates = append(dates, time.Date(year, month, d, 0, 0, 0, 0, time.UTC).Format(utils.DateLayout))
	}

	names := make(map[string]struct{}, len(active))
	for _, w := range active {
		names[w.Name] = struct{}{}
	}
	for _, e := range entries {
		names[e.WorkerName] = struct{}{}
	}
	workers := make([]string, 0, len(names))
	for name := range names {
		workers = append(workers, name)
	}
	sort.Strings(workers)

	data := make(map[string]map[string]float64, len(workers))
	for _, w := range workers {
		row := make(map[string]float64, len(dates))
		for _, d := range dates {
			row[d] = 0
		}
		data[w] = row
	}
	for _, e := range entries {
		sat := weekSaturday(e.Date).Format(utils.DateLayout)
		if _, ok := data[e.WorkerName][sat]; ok {
			data[e.WorkerName][sat] += e.Hours
		}
	}

	totals := make(map[string]float64, len(workers))
	for _, w := range workers {
		var sum float64
		for _, d := range dates {
			sum += data[w][d]
		}
		totals[w] = sum
	}

	remarks := make(map[string]string, len(workers))
	for _, w := range workers {
		remarks[w] = ""
	}
	for _, e := range entries {
		if e.Note != "" {
			remarks[e.WorkerName] = e.Note
		}
	}

	return &WeeklyGrid{
		Dates:   dates,
		Workers: workers,
		Data:    data,
		Totals:  totals,
		Remarks: remarks,
	}
}

// BuildDayMatrix lays entries out per exact day over the inclusive range.
func BuildDayMatrix(start, end time.Time, entries []domain.TimesheetEntry) *DayMatrix {
	var dates []string
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d.Format(utils.DateLayout))
	}

	names := make(map[string]struct{})
	for _, e := range entries {
		names[e.WorkerName] = struct{}{}
	}
	workers := make([]string, 0, len(names))
	for name := range names {
		workers = append(workers, name)
	}
	sort.Strings(workers)

	data := make(map[string]map[string]float64, len(workers))
	for _, w := range workers {
		row := make(map[string]float64, len(dates))
		for _, d := range dates {
			row[d] = 0
		}
		data[w] = row
	}
	for _, e := range entries {
		data[e.WorkerName][e.Date.Format(utils.DateLayout)] += e.Hours
	}

	totals := make(map[string]float64, len(workers))
	for _, w := range workers {
		var sum float64
		for _, d := range dates {
			sum += data[w][d]
		}
		totals[w] = sum
	}

	return &DayMatrix{
		Dates:   dates,
		Workers: workers,
		Data:    data,
		Totals:  totals,
	}
}
