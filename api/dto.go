/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  JSON structures for the HTTP surface. They decouple the domain types
  (decimal money, composite date keys) from the wire format: money travels
  as strings to keep øre precision, dates as "YYYY-MM-DD".

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

VALIDATION:
  Done in handlers, not here. DTOs are pure data carriers.

SEE ALSO:
  - handlers.go: Uses these types
*/
package api

// =============================================================================
// CALENDAR AND HOLIDAYS
// =============================================================================

// HolidayDTO is one public holiday.
type HolidayDTO struct {
	Date string `json:"date"`
	Name string `json:"name"`
}

// CellDTO is one cell of a month's 7x6 grid. Day is 0 for filler cells
// outside the month.
type CellDTO struct {
	Day       int    `json:"day"`
	Paintable bool   `json:"paintable"`
	Status    string `json:"status,omitempty"`
	Holiday   string `json:"holiday,omitempty"`
}

// MonthDTO is one rendered month: 6 rows of 7 cells, Monday first.
type MonthDTO struct {
	Month int         `json:"month"`
	Name  string      `json:"name"`
	Cells [][]CellDTO `json:"cells"`
}

// CalendarDTO is the full year the grid renderer consumes.
type CalendarDTO struct {
	Year     int        `json:"year"`
	Workdays int        `json:"workdays"`
	Months   []MonthDTO `json:"months"`
}

// GrunnbelopDTO carries the base amount for a year.
type GrunnbelopDTO struct {
	Year       int    `json:"year"`
	Grunnbelop string `json:"grunnbelop"`
	SixG       string `json:"six_g"`
	Estimate   bool   `json:"estimate"`
}

// =============================================================================
// SESSION
// =============================================================================

// SessionDTO mirrors the persisted form state.
type SessionDTO struct {
	SelectedYear                  int    `json:"selected_year"`
	YearlyIncome                  string `json:"yearly_income"`
	VacationPay                   string `json:"vacation_pay"`
	HoursPerDay                   string `json:"hours_per_day"`
	CalculationMethod             string `json:"calculation_method"`
	EmployerCoversAbove6G         bool   `json:"employer_covers_above_6g"`
	EmployerCoversSykeAbove6G     bool   `json:"employer_covers_syke_above_6g"`
	EmployerPaysVacationOnNavSick bool   `json:"employer_pays_vacation_on_nav_sick"`
}

// UpdateSessionRequest is a partial update: nil fields are left untouched.
type UpdateSessionRequest struct {
	SelectedYear                  *int    `json:"selected_year,omitempty"`
	YearlyIncome                  *string `json:"yearly_income,omitempty"`
	VacationPay                   *string `json:"vacation_pay,omitempty"`
	HoursPerDay                   *string `json:"hours_per_day,omitempty"`
	CalculationMethod             *string `json:"calculation_method,omitempty"`
	EmployerCoversAbove6G         *bool   `json:"employer_covers_above_6g,omitempty"`
	EmployerCoversSykeAbove6G     *bool   `json:"employer_covers_syke_above_6g,omitempty"`
	EmployerPaysVacationOnNavSick *bool   `json:"employer_pays_vacation_on_nav_sick,omitempty"`
}

// =============================================================================
// DAY STATES AND GESTURES
// =============================================================================

// DayStateDTO is one painted day.
type DayStateDTO struct {
	Date   string `json:"date"`
	Status string `json:"status"`
}

// DayStatesDTO is a year's painted days plus the per-type counts the
// salary form shows.
type DayStatesDTO struct {
	Year   int            `json:"year"`
	Days   []DayStateDTO  `json:"days"`
	Counts map[string]int `json:"counts"`
}

// SetDayRequest sets or clears one day. Empty status clears.
type SetDayRequest struct {
	Status string `json:"status"`
}

// PointDTO is one sampled pointer position.
type PointDTO struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// GeometryDTO is the bounding box of the month grid the gesture happened on.
type GeometryDTO struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// GestureRequest replays one drag gesture: pointer down at the first
// point, moves through the rest, pointer up at the end.
type GestureRequest struct {
	Month     int         `json:"month"`
	Selection string      `json:"selection"`
	Geometry  GeometryDTO `json:"geometry"`
	Points    []PointDTO  `json:"points"`
}

// =============================================================================
// COMPUTATION
// =============================================================================

// ComputeRequest selects the year to compute; 0 means the session's
// selected year.
type ComputeRequest struct {
	Year int `json:"year,omitempty"`
}

// ComputeResponse is the earnings breakdown. Ready is false while required
// inputs are missing or non-numeric; all other fields are then omitted.
type ComputeResponse struct {
	Ready bool `json:"ready"`
	Year  int  `json:"year"`

	Base              string `json:"base,omitempty"`
	VacationPay       string `json:"vacation_pay,omitempty"`
	NominalHourlyRate string `json:"nominal_hourly_rate,omitempty"`

	NavParentalPay      string `json:"nav_parental_pay,omitempty"`
	EmployerParentalPay string `json:"employer_parental_pay,omitempty"`

	NavSickPay              string `json:"nav_sick_pay,omitempty"`
	EmployerSickPay         string `json:"employer_sick_pay,omitempty"`
	NavSickVacationPay      string `json:"nav_sick_vacation_pay,omitempty"`
	EmployerSickVacationPay string `json:"employer_sick_vacation_pay,omitempty"`

	ActualWorkDays    int    `json:"actual_work_days,omitempty"`
	ActualHoursWorked string `json:"actual_hours_worked,omitempty"`
	ActualEarnings    string `json:"actual_earnings,omitempty"`
	ActualHourlyRate  string `json:"actual_hourly_rate,omitempty"`

	Explanation string `json:"explanation,omitempty"`
}

// ErrorResponse is the uniform error envelope.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
