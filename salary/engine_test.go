package salary_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fastlonn/kalkulator/salary"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

// workdays2024 is the working-day count of 2024: 262 weekdays minus the 10
// public holidays, all of which fell on weekdays that year.
const workdays2024 = 252

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func baseInputs() salary.Inputs {
	return salary.Inputs{
		YearlyIncome:       dec("600000"),
		HoursPerDay:        dec("7.5"),
		VacationPayPercent: dec("12"),
		Method:             "standard",
	}
}

func assertMoney(t *testing.T, expected string, got decimal.Decimal, label string) {
	t.Helper()
	assert.True(t, got.Equal(dec(expected)), "%s: expected %s, got %s", label, expected, got)
}

// =============================================================================
// STANDARD SCENARIO (reference numbers)
// =============================================================================

func TestCompute_StandardNoLeave(t *testing.T) {
	// GIVEN: 600 000 kr, 7.5 h/day, 12% vacation pay, nothing painted
	// THEN:  base = 600000 * 11/12 = 550000, earnings = 550000 * 1.12 = 616000

	result, err := salary.Compute(baseInputs(), salary.DayCounts{}, 2024, workdays2024)
	require.NoError(t, err)

	assertMoney(t, "550000", result.Base, "base")
	assertMoney(t, "66000", result.VacationPay, "vacation pay")
	assertMoney(t, "616000", result.ActualEarnings, "earnings")

	// 252 working days * 7.5 h = 1890 h; 616000 / 1890 = 325.93 kr/h
	assert.True(t, result.ActualHoursWorked.Equal(dec("1890")))
	assertMoney(t, "325.93", result.ActualHourlyRate, "hourly rate")
	assert.NotEmpty(t, result.Explanation)
}

func TestCompute_UnknownMethodFallsBackToStandard(t *testing.T) {
	inputs := baseInputs()
	inputs.Method = "imaginary"

	result, err := salary.Compute(inputs, salary.DayCounts{}, 2024, workdays2024)
	require.NoError(t, err)
	assertMoney(t, "550000", result.Base, "base")
}

// =============================================================================
// BASE METHOD STRATEGIES
// =============================================================================

func methodContext() salary.BaseContext {
	// 600000 kr at 7.5 h/day: nominal hourly = 600000 / 1950.
	return salary.BaseContext{
		NominalSalary:     dec("600000"),
		UnpaidDeduction:   decimal.Zero,
		NominalHourlyRate: dec("600000").Div(dec("1950")),
		HoursPerDay:       dec("7.5"),
		FerieDays:         25,
		UnpaidDays:        0,
		ActualWorkDays:    workdays2024,
	}
}

func TestMethodStandard_ElevenTwelfths(t *testing.T) {
	base := salary.MethodStandard{}.Base(methodContext())
	assertMoney(t, "550000", base.Round(2), "standard base")
}

func TestMethodGenerous_FullSalary(t *testing.T) {
	base := salary.MethodGenerous{}.Base(methodContext())
	assertMoney(t, "600000", base.Round(2), "generous base")
}

func TestMethodStingy_DeductsVacationAtNominalRate(t *testing.T) {
	// 25 days * 7.5 h * (600000/1950) = 57692.31 deducted.
	base := salary.MethodStingy{}.Base(methodContext())
	assertMoney(t, "542307.69", base.Round(2), "stingy base")
}

func TestMethodPedantic_DeductsAtRealRate(t *testing.T) {
	// Real hourly = 600000 / (252 * 7.5) = 317.46; 187.5 h deducted.
	base := salary.MethodPedantic{}.Base(methodContext())
	assertMoney(t, "540476.19", base.Round(2), "pedantic base")
}

func TestMethodStandard_UnpaidDeduction(t *testing.T) {
	ctx := methodContext()
	ctx.UnpaidDeduction = dec("4615.38")
	base := salary.MethodStandard{}.Base(ctx)
	assertMoney(t, "545384.62", base.Round(2), "standard base with unpaid leave")
}

func TestMethodByName(t *testing.T) {
	m, ok := salary.MethodByName("anal")
	require.True(t, ok)
	assert.IsType(t, salary.MethodPedantic{}, m)

	_, ok = salary.MethodByName("nope")
	assert.False(t, ok)
}

// =============================================================================
// PARENTAL LEAVE
// =============================================================================

func TestCompute_ParentalAbove6G_EmployerTopUp(t *testing.T) {
	// GIVEN: 900 000 kr salary, above the 2024 6G ceiling of 744 168 kr,
	//        10 parental days, employer tops up above 6G
	// THEN:  Nav pays 744168/252 per day, employer the remainder, and only
	//        the employer share accrues vacation pay

	inputs := baseInputs()
	inputs.YearlyIncome = dec("900000")
	inputs.Method = "generous"
	inputs.EmployerCoversAbove6G = true

	counts := salary.DayCounts{Parental: 6, Parental80: 4}

	result, err := salary.Compute(inputs, counts, 2024, workdays2024)
	require.NoError(t, err)

	assertMoney(t, "29530.48", result.NavParentalPay, "Nav parental")
	assertMoney(t, "6183.81", result.EmployerParentalPay, "employer parental")

	// Vacation pay covers base + employer share, never the Nav share.
	assertMoney(t, "108742.06", result.VacationPay, "vacation pay")
}

func TestCompute_Parental80SameNavPerDay(t *testing.T) {
	// The 80%-rate variant counts the same Nav per-day amount as the 100%
	// variant in this model.
	inputs := baseInputs()

	full, err := salary.Compute(inputs, salary.DayCounts{Parental: 5}, 2024, workdays2024)
	require.NoError(t, err)
	reduced, err := salary.Compute(inputs, salary.DayCounts{Parental80: 5}, 2024, workdays2024)
	require.NoError(t, err)

	assert.True(t, full.NavParentalPay.Equal(reduced.NavParentalPay))
}

func TestCompute_ParentalWithout6GToggle_NoEmployerShare(t *testing.T) {
	inputs := baseInputs()
	inputs.YearlyIncome = dec("900000")

	result, err := salary.Compute(inputs, salary.DayCounts{Parental: 10}, 2024, workdays2024)
	require.NoError(t, err)

	assert.True(t, result.EmployerParentalPay.IsZero())
	assert.True(t, result.NavParentalPay.IsPositive())
}

// =============================================================================
// SICK LEAVE AND THE 48-DAY CAP
// =============================================================================

func TestCompute_SickVacationPay_CappedAt48Days(t *testing.T) {
	// GIVEN: 60 sick days, no employer toggles
	// THEN:  Nav vacation pay accrues on exactly 48 days' worth of the Nav
	//        rate; the remaining 12 days accrue nothing

	inputs := baseInputs()
	counts := salary.DayCounts{Sick: 60}

	result, err := salary.Compute(inputs, counts, 2024, workdays2024)
	require.NoError(t, err)

	// navDaily = 600000/252; 48 * navDaily * 0.12 = 13714.29
	assertMoney(t, "13714.29", result.NavSickVacationPay, "Nav sick vacation pay")
	assert.True(t, result.EmployerSickVacationPay.IsZero())
}

func TestCompute_SickVacationPay_EmployerCoversBeyondCap(t *testing.T) {
	inputs := baseInputs()
	inputs.EmployerPaysVacationOnNavSick = true
	counts := salary.DayCounts{Sick: 60}

	result, err := salary.Compute(inputs, counts, 2024, workdays2024)
	require.NoError(t, err)

	// The 12 days past the cap: 12 * (600000/252) * 0.12 = 3428.57
	assertMoney(t, "3428.57", result.EmployerSickVacationPay, "employer sick vacation pay")
	assertMoney(t, "13714.29", result.NavSickVacationPay, "Nav sick vacation pay unchanged")
}

func TestCompute_SickUnderCap_NoEmployerVacationShare(t *testing.T) {
	inputs := baseInputs()
	inputs.EmployerPaysVacationOnNavSick = true

	result, err := salary.Compute(inputs, salary.DayCounts{Sick: 20}, 2024, workdays2024)
	require.NoError(t, err)

	assert.True(t, result.EmployerSickVacationPay.IsZero())
}

// =============================================================================
// ZERO GUARDS
// =============================================================================

func TestCompute_ZeroHoursPerDay_ZeroRate(t *testing.T) {
	inputs := baseInputs()
	inputs.HoursPerDay = decimal.Zero

	result, err := salary.Compute(inputs, salary.DayCounts{}, 2024, workdays2024)
	require.NoError(t, err)

	assert.True(t, result.ActualHourlyRate.IsZero())
	assert.True(t, result.NominalHourlyRate.IsZero())
}

func TestCompute_LeaveExceedsWorkdays_ZeroRate(t *testing.T) {
	// More painted days than working days leaves zero hours worked; the
	// rate must short-circuit to zero, never NaN or infinity.
	inputs := baseInputs()

	result, err := salary.Compute(inputs, salary.DayCounts{Ferie: 300}, 2024, workdays2024)
	require.NoError(t, err)

	assert.True(t, result.ActualHoursWorked.IsZero())
	assert.True(t, result.ActualHourlyRate.IsZero())
}

func TestCompute_ZeroWorkdays_ZeroPerDayRates(t *testing.T) {
	inputs := baseInputs()

	result, err := salary.Compute(inputs, salary.DayCounts{Sick: 5}, 2024, 0)
	require.NoError(t, err)

	assert.True(t, result.NavSickPay.IsZero())
	assert.True(t, result.ActualHourlyRate.IsZero())
}
