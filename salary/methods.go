/*
Package salary computes actual annual earnings for Norwegian fixed-salary
employees.

PURPOSE:
  Given the nominal yearly salary, hours per day, vacation-pay percentage
  and the painted day counts, the engine derives the money actually paid
  out over the year and the effective hourly rate. Four selectable base
  methods model how differently employers account for the vacation-pay
  month; parental and sick leave are split between Nav and the employer,
  capped at 6G.

DESIGN:
  - Every money quantity is a decimal.Decimal; no float arithmetic
  - Base methods are a small strategy interface, one type per variant,
    each independently testable (methods.go)
  - Division-by-zero short-circuits to zero, never NaN/Inf (engine.go)

SEE ALSO:
  - engine.go: the full earnings composition
  - format.go: Norwegian number parsing and formatting
  - grunnbelop: the 6G ceiling
*/
package salary

import "github.com/shopspring/decimal"

// =============================================================================
// BASE-SALARY METHOD STRATEGIES
// =============================================================================

// BaseContext carries the quantities the base methods draw on. All derived
// values are precomputed by the engine so each method is a pure formula.
type BaseContext struct {
	NominalSalary     decimal.Decimal
	UnpaidDeduction   decimal.Decimal
	NominalHourlyRate decimal.Decimal
	HoursPerDay       decimal.Decimal
	FerieDays         int
	UnpaidDays        int
	ActualWorkDays    int
}

// Method computes the base salary before vacation pay is added.
type Method interface {
	// Name is the wire/persistence identifier.
	Name() string
	Base(ctx BaseContext) decimal.Decimal
}

var (
	eleven     = decimal.NewFromInt(11)
	twelve     = decimal.NewFromInt(12)
	hundred    = decimal.NewFromInt(100)
	weeksTimes = decimal.NewFromInt(5 * 52) // nominal work days per year
)

// MethodStandard pays 11/12 of the nominal salary: the vacation month is
// unpaid and replaced by last year's vacation pay.
type MethodStandard struct{}

func (MethodStandard) Name() string { return "standard" }

func (MethodStandard) Base(ctx BaseContext) decimal.Decimal {
	return ctx.NominalSalary.Mul(eleven).Div(twelve).Sub(ctx.UnpaidDeduction)
}

// MethodGenerous pays the full nominal salary and vacation pay on top.
type MethodGenerous struct{}

func (MethodGenerous) Name() string { return "generous" }

func (MethodGenerous) Base(ctx BaseContext) decimal.Decimal {
	return ctx.NominalSalary.Sub(ctx.UnpaidDeduction)
}

// MethodStingy deducts every single vacation day at the nominal hourly rate
// instead of a flat twelfth.
type MethodStingy struct{}

func (MethodStingy) Name() string { return "stingy" }

func (MethodStingy) Base(ctx BaseContext) decimal.Decimal {
	ferieDeduction := decimal.NewFromInt(int64(ctx.FerieDays)).
		Mul(ctx.HoursPerDay).
		Mul(ctx.NominalHourlyRate)
	return ctx.NominalSalary.Sub(ferieDeduction).Sub(ctx.UnpaidDeduction)
}

// MethodPedantic deducts vacation and unpaid days at the REAL hourly rate,
// derived from the year's actual working days rather than the nominal 260.
// Wire name "anal", kept for persistence compatibility with older sessions.
type MethodPedantic struct{}

func (MethodPedantic) Name() string { return "anal" }

func (MethodPedantic) Base(ctx BaseContext) decimal.Decimal {
	actualHours := decimal.NewFromInt(int64(ctx.ActualWorkDays)).Mul(ctx.HoursPerDay)
	if !actualHours.IsPositive() {
		return ctx.NominalSalary
	}
	realHourly := ctx.NominalSalary.Div(actualHours)
	deduction := decimal.NewFromInt(int64(ctx.FerieDays + ctx.UnpaidDays)).
		Mul(ctx.HoursPerDay).
		Mul(realHourly)
	return ctx.NominalSalary.Sub(deduction)
}

// =============================================================================
// REGISTRY
// =============================================================================

var methods = []Method{
	MethodStandard{},
	MethodGenerous{},
	MethodStingy{},
	MethodPedantic{},
}

// MethodByName resolves a wire name to its strategy. Unknown names fall
// back to (nil, false).
func MethodByName(name string) (Method, bool) {
	for _, m := range methods {
		if m.Name() == name {
			return m, true
		}
	}
	return nil, false
}

// DefaultMethod is what a fresh session computes with.
var DefaultMethod Method = MethodStandard{}
