/*
Package grunnbelop provides the Norwegian social-security base amount (G).

PURPOSE:
  Nav benefit payouts for parental and sick leave are capped at six times
  the grunnbeløp (6G). This package holds the known historical values and
  estimates the amount for years outside the table by projecting the
  average year-over-year growth.

ESTIMATION, NOT AUTHORITY:
  Values outside the known range are compound-growth projections. They are
  deliberately approximate; IsEstimate lets callers label them as such.
  This table must never be mistaken for an authoritative feed.

PRECISION:
  All amounts are decimal.Decimal rounded to whole kroner, matching the
  money handling in the salary package.

SEE ALSO:
  - salary/engine.go: uses SixG to cap Nav per-day rates
*/
package grunnbelop

import "github.com/shopspring/decimal"

// =============================================================================
// KNOWN VALUES
// =============================================================================

// known holds the grunnbeløp in effect from May 1 of each year, in kroner.
var known = map[int]int64{
	2020: 101351,
	2021: 106399,
	2022: 111477,
	2023: 118620,
	2024: 124028,
	2025: 130160,
}

const (
	firstKnownYear = 2020
	lastKnownYear  = 2025
)

var six = decimal.NewFromInt(6)

// =============================================================================
// LOOKUP AND EXTRAPOLATION
// =============================================================================

// ForYear returns the grunnbeløp for a year, in whole kroner. Years outside
// the known table are estimated by compound growth at the average rate of
// the known consecutive pairs.
func ForYear(year int) decimal.Decimal {
	if v, ok := known[year]; ok {
		return decimal.NewFromInt(v)
	}

	growth := averageGrowth()
	one := decimal.NewFromInt(1)

	if year > lastKnownYear {
		factor := one.Add(growth).Pow(decimal.NewFromInt(int64(year - lastKnownYear)))
		return decimal.NewFromInt(known[lastKnownYear]).Mul(factor).Round(0)
	}

	factor := one.Add(growth).Pow(decimal.NewFromInt(int64(firstKnownYear - year)))
	return decimal.NewFromInt(known[firstKnownYear]).Div(factor).Round(0)
}

// SixG returns 6 * ForYear(year), the Nav payout ceiling.
func SixG(year int) decimal.Decimal {
	return ForYear(year).Mul(six)
}

// IsEstimate reports whether ForYear had to extrapolate for this year.
func IsEstimate(year int) bool {
	_, ok := known[year]
	return !ok
}

// averageGrowth returns the mean year-over-year growth rate across all
// known consecutive pairs.
func averageGrowth() decimal.Decimal {
	one := decimal.NewFromInt(1)
	sum := decimal.Zero
	pairs := 0

	for year := firstKnownYear; year < lastKnownYear; year++ {
		prev := decimal.NewFromInt(known[year])
		next := decimal.NewFromInt(known[year+1])
		sum = sum.Add(next.Div(prev).Sub(one))
		pairs++
	}

	return sum.Div(decimal.NewFromInt(int64(pairs)))
}
