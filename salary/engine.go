/*
engine.go - Earnings composition

COMPOSITION (per computed year):
  base            = method.Base(...)            (methods.go)
  vacation pay    = (base + employer parental + employer sick) * pct
  Nav parental    = parentalDays * min(salary, 6G) / actualWorkDays
  Nav sick        = sickDays     * min(salary, 6G) / actualWorkDays
  employer shares = per-day remainder above the Nav rate, when the
                    matching toggle is on; only employer shares accrue
                    vacation pay
  Nav sick vacation pay is capped at the first 48 sick days of the year;
  the employer can optionally cover the days beyond the cap.

ZERO GUARDS:
  hoursPerDay == 0, actualWorkDays == 0 or leave exceeding the year's
  working days all short-circuit to zero rates. The engine never emits
  NaN or infinity. Negative inputs are the caller's contract to prevent.
*/
package salary

import (
	"github.com/shopspring/decimal"

	"github.com/fastlonn/kalkulator/daystate"
	"github.com/fastlonn/kalkulator/grunnbelop"
)

// navSickVacationCapDays: Nav pays vacation pay on at most this many sick
// days per year.
const navSickVacationCapDays = 48

// =============================================================================
// INPUTS
// =============================================================================

// Inputs is everything the user controls, day states aside.
type Inputs struct {
	YearlyIncome       decimal.Decimal
	HoursPerDay        decimal.Decimal
	VacationPayPercent decimal.Decimal
	Method             string // wire name, see MethodByName

	EmployerCoversAbove6G         bool // employer tops up parental pay above 6G
	EmployerCoversSykeAbove6G     bool // employer tops up sick pay above 6G
	EmployerPaysVacationOnNavSick bool // employer covers vacation pay past the Nav cap
}

// DayCounts aggregates the painted days of the computed year.
type DayCounts struct {
	Ferie       int
	PaidLeave   int
	UnpaidLeave int
	Parental    int
	Parental80  int
	Sick        int
}

// CountsFrom maps a day-state aggregation into DayCounts.
func CountsFrom(byType map[daystate.Status]int) DayCounts {
	return DayCounts{
		Ferie:       byType[daystate.Ferie],
		PaidLeave:   byType[daystate.PermisjonMedLonn],
		UnpaidLeave: byType[daystate.PermisjonUtenLonn],
		Parental:    byType[daystate.Foreldrepermisjon],
		Parental80:  byType[daystate.Foreldrepermisjon80],
		Sick:        byType[daystate.Sykemelding],
	}
}

func (c DayCounts) leaveTotal() int {
	return c.Ferie + c.PaidLeave + c.UnpaidLeave + c.Parental + c.Parental80 + c.Sick
}

// =============================================================================
// RESULT
// =============================================================================

// Result is the full earnings breakdown. Money values are rounded to øre.
type Result struct {
	Base              decimal.Decimal
	VacationPay       decimal.Decimal
	NominalHourlyRate decimal.Decimal

	NavParentalPay      decimal.Decimal
	EmployerParentalPay decimal.Decimal

	NavSickPay              decimal.Decimal
	EmployerSickPay         decimal.Decimal
	NavSickVacationPay      decimal.Decimal
	EmployerSickVacationPay decimal.Decimal

	ActualWorkDays    int
	ActualHoursWorked decimal.Decimal
	ActualEarnings    decimal.Decimal
	ActualHourlyRate  decimal.Decimal

	Explanation string
}

// =============================================================================
// ENGINE
// =============================================================================

// Compute derives the year's actual earnings. actualWorkDays is the count
// of non-holiday weekdays of the computed year (calendar.WorkdaysInYear);
// year selects the 6G ceiling.
func Compute(inputs Inputs, counts DayCounts, year int, actualWorkDays int) (Result, error) {
	method, ok := MethodByName(inputs.Method)
	if !ok {
		method = DefaultMethod
	}

	salary := inputs.YearlyIncome
	pct := inputs.VacationPayPercent.Div(hundred)

	// Nominal hourly rate over the nominal 5x52-day year.
	nominalHourly := decimal.Zero
	if inputs.HoursPerDay.IsPositive() {
		nominalHourly = salary.Div(inputs.HoursPerDay.Mul(weeksTimes))
	}

	unpaidDeduction := decimal.NewFromInt(int64(counts.UnpaidLeave)).
		Mul(inputs.HoursPerDay).
		Mul(nominalHourly)

	base := method.Base(BaseContext{
		NominalSalary:     salary,
		UnpaidDeduction:   unpaidDeduction,
		NominalHourlyRate: nominalHourly,
		HoursPerDay:       inputs.HoursPerDay,
		FerieDays:         counts.Ferie,
		UnpaidDays:        counts.UnpaidLeave,
		ActualWorkDays:    actualWorkDays,
	})

	// Per-day rates. Nav covers at most 6G of the yearly salary.
	navDaily := decimal.Zero
	realDaily := decimal.Zero
	if actualWorkDays > 0 {
		days := decimal.NewFromInt(int64(actualWorkDays))
		capped := decimal.Min(salary, grunnbelop.SixG(year))
		navDaily = capped.Div(days)
		realDaily = salary.Div(days)
	}
	aboveNav := decimal.Max(decimal.Zero, realDaily.Sub(navDaily))

	// Parental leave. The 80%-rate variant contributes the same Nav per-day
	// amount as the 100% variant here: Nav spreads the same envelope over
	// more calendar days, and this model counts marked working days only.
	parentalDays := decimal.NewFromInt(int64(counts.Parental + counts.Parental80))
	navParental := parentalDays.Mul(navDaily)
	employerParental := decimal.Zero
	if inputs.EmployerCoversAbove6G {
		employerParental = parentalDays.Mul(aboveNav)
	}

	// Sick leave.
	sickDays := decimal.NewFromInt(int64(counts.Sick))
	navSick := sickDays.Mul(navDaily)
	employerSick := decimal.Zero
	if inputs.EmployerCoversSykeAbove6G {
		employerSick = sickDays.Mul(aboveNav)
	}

	cappedSickDays := counts.Sick
	if cappedSickDays > navSickVacationCapDays {
		cappedSickDays = navSickVacationCapDays
	}
	navSickVacation := decimal.NewFromInt(int64(cappedSickDays)).Mul(navDaily).Mul(pct)
	employerSickVacation := decimal.Zero
	if inputs.EmployerPaysVacationOnNavSick && counts.Sick > navSickVacationCapDays {
		over := decimal.NewFromInt(int64(counts.Sick - navSickVacationCapDays))
		employerSickVacation = over.Mul(navDaily).Mul(pct)
	}

	// Vacation pay accrues on the base plus the employer-paid leave shares;
	// Nav-sourced components are added raw.
	vacationPay := base.Add(employerParental).Add(employerSick).Mul(pct)

	earnings := base.
		Add(vacationPay).
		Add(navParental).
		Add(employerParental).
		Add(navSick).
		Add(employerSick).
		Add(navSickVacation).
		Add(employerSickVacation)

	workedDays := actualWorkDays - counts.leaveTotal()
	hoursWorked := decimal.Zero
	if workedDays > 0 {
		hoursWorked = decimal.NewFromInt(int64(workedDays)).Mul(inputs.HoursPerDay)
	}

	hourlyRate := decimal.Zero
	if hoursWorked.IsPositive() {
		hourlyRate = earnings.Div(hoursWorked)
	}

	result := Result{
		Base:                    base.Round(2),
		VacationPay:             vacationPay.Round(2),
		NominalHourlyRate:       nominalHourly.Round(2),
		NavParentalPay:          navParental.Round(2),
		EmployerParentalPay:     employerParental.Round(2),
		NavSickPay:              navSick.Round(2),
		EmployerSickPay:         employerSick.Round(2),
		NavSickVacationPay:      navSickVacation.Round(2),
		EmployerSickVacationPay: employerSickVacation.Round(2),
		ActualWorkDays:          actualWorkDays,
		ActualHoursWorked:       hoursWorked,
		ActualEarnings:          earnings.Round(2),
		ActualHourlyRate:        hourlyRate.Round(2),
	}
	result.Explanation = explain(method, inputs, counts, result)
	return result, nil
}
