package calendar

import "time"

// =============================================================================
// MONTH GRID - 7 columns x 6 rows, Monday-first
// =============================================================================

const (
	GridCols = 7
	GridRows = 6
)

// MonthGrid maps between (row, col) cells of a rendered month and days of
// that month. Column 0 is Monday, per the Norwegian week. A month never
// needs more than 6 rows.
type MonthGrid struct {
	Year  int
	Month time.Month

	offset int // grid cells before day 1 (0 when the 1st is a Monday)
	days   int
}

func NewMonthGrid(year int, month time.Month) MonthGrid {
	first := NewDate(year, month, 1)
	// time.Weekday has Sunday=0; shift to Monday=0.
	offset := (int(first.Weekday()) + 6) % 7
	return MonthGrid{
		Year:   year,
		Month:  month,
		offset: offset,
		days:   DaysInMonth(year, month),
	}
}

// DayAt returns the day of month at a grid cell, or (0, false) for cells
// before the 1st or after the last day.
func (g MonthGrid) DayAt(row, col int) (int, bool) {
	if row < 0 || row >= GridRows || col < 0 || col >= GridCols {
		return 0, false
	}
	day := row*GridCols + col - g.offset + 1
	if day < 1 || day > g.days {
		return 0, false
	}
	return day, true
}

// CellOf returns the grid cell holding a day of this month.
func (g MonthGrid) CellOf(day int) (row, col int) {
	idx := day - 1 + g.offset
	return idx / GridCols, idx % GridCols
}

// DateAt is DayAt lifted to a full Date.
func (g MonthGrid) DateAt(row, col int) (Date, bool) {
	day, ok := g.DayAt(row, col)
	if !ok {
		return Date{}, false
	}
	return NewDate(g.Year, g.Month, day), true
}
