/*
Package calendar provides the Norwegian working-day calendar.

PURPOSE:
  This package contains the pure date math the rest of the system builds on:
  calendar dates as value types, Norwegian public holidays (fixed and
  Easter-relative), the Sunday rule, working-day counting, and the 7x6
  month grid used by the painting layer.

KEY CONCEPTS IN THIS FILE (date.go):
  - Date: A plain {year, month, day} value with structural equality
  - Weekday/weekend helpers following the Norwegian Monday-first week

DESIGN PRINCIPLES:
  1. Value semantics: Dates are small immutable values, safe as map keys
  2. No wall-clock dependence: everything derives from (year, month, day)
  3. Determinism: same year in, same holidays out, every call

SEE ALSO:
  - easter.go: Gregorian Easter computus
  - holidays.go: Holiday sets and working-day counts
  - grid.go: 7x6 month grid geometry
*/
package calendar

import (
	"fmt"
	"time"
)

// =============================================================================
// DATE - Calendar date value type
// =============================================================================

// Date identifies a single calendar day. Equality is structural, so Date
// works directly as a map key.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate builds a Date. It does not validate the day against the month;
// callers construct dates from known-good grid positions or time.Time values.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// DateOf truncates a time.Time to its calendar day.
func DateOf(t time.Time) Date {
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// Time returns the date at midnight UTC.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// AddDays returns the date n days later (negative n steps backward).
func (d Date) AddDays(n int) Date {
	return DateOf(d.Time().AddDate(0, 0, n))
}

func (d Date) Weekday() time.Weekday { return d.Time().Weekday() }

func (d Date) IsWeekend() bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

func (d Date) IsSunday() bool { return d.Weekday() == time.Sunday }

func (d Date) Before(other Date) bool { return d.Time().Before(other.Time()) }
func (d Date) After(other Date) bool  { return d.Time().After(other.Time()) }

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// =============================================================================
// NORWEGIAN LABELS
// =============================================================================

// MonthNames holds the Norwegian month labels, indexed by time.Month.
var MonthNames = map[time.Month]string{
	time.January:   "januar",
	time.February:  "februar",
	time.March:     "mars",
	time.April:     "april",
	time.May:       "mai",
	time.June:      "juni",
	time.July:      "juli",
	time.August:    "august",
	time.September: "september",
	time.October:   "oktober",
	time.November:  "november",
	time.December:  "desember",
}

// WeekdayNames holds the Norwegian weekday labels, Monday first.
var WeekdayNames = []string{"man", "tir", "ons", "tor", "fre", "lør", "søn"}
