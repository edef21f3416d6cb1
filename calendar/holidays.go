/*
holidays.go - Norwegian public holidays and working-day counting

PURPOSE:
  Computes the fixed and Easter-relative public holidays for a year, answers
  "is this date a holiday?" (every Sunday counts), and counts the actual
  working days of a year. These gate both which calendar cells can be
  painted and the per-day rates in the salary engine.

HOLIDAY SET (10 dates per year):
  Fixed:          Jan 1, May 1, May 17, Dec 25, Dec 26
  Easter-relative: Easter-3 (Maundy Thursday), Easter-2 (Good Friday),
                   Easter+1 (Easter Monday), Easter+39 (Ascension),
                   Easter+50 (Whit Monday)

SUNDAY RULE:
  IsHoliday additionally treats every Sunday as a holiday regardless of the
  fixed/Easter set. The set returned by HolidaysForYear does NOT include
  plain Sundays.

SEE ALSO:
  - easter.go: the computus behind the movable feasts
  - salary/engine.go: consumes WorkdaysInYear for per-day rates
*/
package calendar

import "time"

// =============================================================================
// HOLIDAY SET
// =============================================================================

// HolidaysForYear returns the Norwegian public holidays of a year, keyed by
// date with their Norwegian names. Non-positive years are a caller contract
// violation and are not defended against.
func HolidaysForYear(year int) map[Date]string {
	easter := EasterSunday(year)

	return map[Date]string{
		NewDate(year, time.January, 1):   "1. nyttårsdag",
		NewDate(year, time.May, 1):       "Arbeidernes dag",
		NewDate(year, time.May, 17):      "Grunnlovsdagen",
		NewDate(year, time.December, 25): "1. juledag",
		NewDate(year, time.December, 26): "2. juledag",
		easter.AddDays(-3):               "Skjærtorsdag",
		easter.AddDays(-2):               "Langfredag",
		easter.AddDays(1):                "2. påskedag",
		easter.AddDays(39):               "Kristi himmelfartsdag",
		easter.AddDays(50):               "2. pinsedag",
	}
}

// =============================================================================
// CALENDAR - Cached per-year holiday lookup
// =============================================================================

// Calendar caches holiday sets per year so repeated per-cell lookups during
// rendering and painting don't recompute the computus.
type Calendar struct {
	years map[int]map[Date]string
}

func New() *Calendar {
	return &Calendar{years: make(map[int]map[Date]string)}
}

func (c *Calendar) holidays(year int) map[Date]string {
	set, ok := c.years[year]
	if !ok {
		set = HolidaysForYear(year)
		c.years[year] = set
	}
	return set
}

// HolidayName returns the holiday name for a date, or "" if it is none.
// Plain Sundays have no name here even though IsHoliday reports them.
func (c *Calendar) HolidayName(d Date) string {
	return c.holidays(d.Year)[d]
}

// IsHoliday reports whether the date is a public holiday or a Sunday.
func (c *Calendar) IsHoliday(d Date) bool {
	if d.IsSunday() {
		return true
	}
	_, ok := c.holidays(d.Year)[d]
	return ok
}

// IsWorkday reports whether the date is a paintable working day:
// Monday-Friday and not a public holiday.
func (c *Calendar) IsWorkday(d Date) bool {
	return !d.IsWeekend() && !c.IsHoliday(d)
}

// WorkdaysInYear counts the weekdays of the year that are not public
// holidays. This is the divisor for Nav per-day rates.
func (c *Calendar) WorkdaysInYear(year int) int {
	count := 0
	d := NewDate(year, time.January, 1)
	for d.Year == year {
		if c.IsWorkday(d) {
			count++
		}
		d = d.AddDays(1)
	}
	return count
}
