/*
handlers.go - HTTP handlers for the calculator

PURPOSE:
  Exposes the calendar, day-state store and salary engine over REST.
  Handlers parse and validate, then delegate to the domain packages.

ENDPOINTS:
  Calendar:
    GET  /api/holidays/{year}    Public holidays with names
    GET  /api/grunnbelop/{year}  G and 6G, estimate-flagged
    GET  /api/calendar/{year}    12 month grids + paintability + statuses

  Session:
    GET  /api/session            Persisted form state
    PUT  /api/session            Partial update
    POST /api/session/reset      Wipe form + the visible year's days

  Day states:
    GET  /api/days/{year}                   Painted days + counts
    PUT  /api/days/{year}/{month}/{day}     Set/clear one day
    POST /api/days/{year}/gesture           Replay a drag gesture

  Computation:
    POST /api/compute            Run the salary engine

ERROR HANDLING:
  Errors come back as JSON with appropriate status:
  - 400: malformed path or body
  - 422: unpaintable day (weekend/holiday), unknown status tag
  - 500: persistence failures surfacing on reads

SEE ALSO:
  - dto.go: wire types
  - server.go: router setup and middleware
*/
package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/fastlonn/kalkulator/calendar"
	"github.com/fastlonn/kalkulator/daystate"
	"github.com/fastlonn/kalkulator/grunnbelop"
	"github.com/fastlonn/kalkulator/paint"
	"github.com/fastlonn/kalkulator/salary"
	"github.com/fastlonn/kalkulator/state"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Calendar *calendar.Calendar
	Days     *daystate.Store
	Session  *state.Session
}

func NewHandler(cal *calendar.Calendar, days *daystate.Store, session *state.Session) *Handler {
	return &Handler{Calendar: cal, Days: days, Session: session}
}

func yearParam(r *http.Request) (int, error) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil || year < 1 {
		return 0, fmt.Errorf("invalid year %q", chi.URLParam(r, "year"))
	}
	return year, nil
}

// =============================================================================
// CALENDAR HANDLERS
// =============================================================================

// GetHolidays returns the year's public holidays, sorted by date.
func (h *Handler) GetHolidays(w http.ResponseWriter, r *http.Request) {
	year, err := yearParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid year", err)
		return
	}

	set := calendar.HolidaysForYear(year)
	dtos := make([]HolidayDTO, 0, len(set))
	for d, name := range set {
		dtos = append(dtos, HolidayDTO{Date: d.String(), Name: name})
	}
	sort.Slice(dtos, func(i, j int) bool { return dtos[i].Date < dtos[j].Date })

	writeJSON(w, http.StatusOK, dtos)
}

// GetGrunnbelop returns G and 6G for a year.
func (h *Handler) GetGrunnbelop(w http.ResponseWriter, r *http.Request) {
	year, err := yearParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid year", err)
		return
	}

	writeJSON(w, http.StatusOK, GrunnbelopDTO{
		Year:       year,
		Grunnbelop: grunnbelop.ForYear(year).String(),
		SixG:       grunnbelop.SixG(year).String(),
		Estimate:   grunnbelop.IsEstimate(year),
	})
}

// GetCalendar returns the 12 month grids the renderer consumes.
func (h *Handler) GetCalendar(w http.ResponseWriter, r *http.Request) {
	year, err := yearParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid year", err)
		return
	}
	if err := h.Days.Load(r.Context(), year); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load day states", err)
		return
	}

	months := make([]MonthDTO, 0, 12)
	for m := time.January; m <= time.December; m++ {
		grid := calendar.NewMonthGrid(year, m)
		cells := make([][]CellDTO, calendar.GridRows)
		for row := 0; row < calendar.GridRows; row++ {
			cells[row] = make([]CellDTO, calendar.GridCols)
			for col := 0; col < calendar.GridCols; col++ {
				date, ok := grid.DateAt(row, col)
				if !ok {
					continue
				}
				cells[row][col] = CellDTO{
					Day:       date.Day,
					Paintable: h.Calendar.IsWorkday(date),
					Status:    string(h.Days.Get(date)),
					Holiday:   h.Calendar.HolidayName(date),
				}
			}
		}
		months = append(months, MonthDTO{
			Month: int(m),
			Name:  calendar.MonthNames[m],
			Cells: cells,
		})
	}

	writeJSON(w, http.StatusOK, CalendarDTO{
		Year:     year,
		Workdays: h.Calendar.WorkdaysInYear(year),
		Months:   months,
	})
}

// =============================================================================
// SESSION HANDLERS
// =============================================================================

func (h *Handler) sessionDTO() SessionDTO {
	return SessionDTO{
		SelectedYear:                  h.Session.SelectedYear(),
		YearlyIncome:                  h.Session.Get(state.KeyYearlyIncome),
		VacationPay:                   h.Session.Get(state.KeyVacationPay),
		HoursPerDay:                   h.Session.Get(state.KeyHoursPerDay),
		CalculationMethod:             h.Session.Get(state.KeyCalculationMethod),
		EmployerCoversAbove6G:         h.Session.Get(state.KeyEmployerCoversAbove6G) == "true",
		EmployerCoversSykeAbove6G:     h.Session.Get(state.KeyEmployerCoversSykeAbove6G) == "true",
		EmployerPaysVacationOnNavSick: h.Session.Get(state.KeyEmployerPaysVacationOnNavSick) == "true",
	}
}

// GetSession returns the persisted form state.
func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.sessionDTO())
}

// UpdateSession applies a partial form update.
func (h *Handler) UpdateSession(w http.ResponseWriter, r *http.Request) {
	var req UpdateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	ctx := r.Context()
	if req.SelectedYear != nil {
		h.Session.SetSelectedYear(ctx, *req.SelectedYear)
	}
	if req.YearlyIncome != nil {
		h.Session.Set(ctx, state.KeyYearlyIncome, *req.YearlyIncome)
	}
	if req.VacationPay != nil {
		h.Session.Set(ctx, state.KeyVacationPay, *req.VacationPay)
	}
	if req.HoursPerDay != nil {
		h.Session.Set(ctx, state.KeyHoursPerDay, *req.HoursPerDay)
	}
	if req.CalculationMethod != nil {
		if _, ok := salary.MethodByName(*req.CalculationMethod); !ok {
			writeError(w, http.StatusUnprocessableEntity, "Unknown calculation method", nil)
			return
		}
		h.Session.Set(ctx, state.KeyCalculationMethod, *req.CalculationMethod)
	}
	if req.EmployerCoversAbove6G != nil {
		h.Session.Set(ctx, state.KeyEmployerCoversAbove6G, strconv.FormatBool(*req.EmployerCoversAbove6G))
	}
	if req.EmployerCoversSykeAbove6G != nil {
		h.Session.Set(ctx, state.KeyEmployerCoversSykeAbove6G, strconv.FormatBool(*req.EmployerCoversSykeAbove6G))
	}
	if req.EmployerPaysVacationOnNavSick != nil {
		h.Session.Set(ctx, state.KeyEmployerPaysVacationOnNavSick, strconv.FormatBool(*req.EmployerPaysVacationOnNavSick))
	}

	writeJSON(w, http.StatusOK, h.sessionDTO())
}

// ResetSession wipes the form and the visible year's painted days. Other
// years' day states are untouched.
func (h *Handler) ResetSession(w http.ResponseWriter, r *http.Request) {
	year := h.Session.SelectedYear()
	h.Session.Reset(r.Context())
	h.Days.ResetYear(year)

	writeJSON(w, http.StatusOK, h.sessionDTO())
}

// =============================================================================
// DAY-STATE HANDLERS
// =============================================================================

func (h *Handler) dayStatesDTO(year int) DayStatesDTO {
	all := h.Days.All(year)
	days := make([]DayStateDTO, 0, len(all))
	for d, status := range all {
		days = append(days, DayStateDTO{Date: d.String(), Status: string(status)})
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date < days[j].Date })

	counts := make(map[string]int)
	for status, n := range h.Days.CountsByType(year) {
		counts[string(status)] = n
	}
	return DayStatesDTO{Year: year, Days: days, Counts: counts}
}

// GetDayStates returns a year's painted days and counts.
func (h *Handler) GetDayStates(w http.ResponseWriter, r *http.Request) {
	year, err := yearParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid year", err)
		return
	}
	if err := h.Days.Load(r.Context(), year); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load day states", err)
		return
	}
	writeJSON(w, http.StatusOK, h.dayStatesDTO(year))
}

// SetDayState sets or clears a single day directly (the non-drag path).
// Weekends and holidays are rejected, matching the paint rules.
func (h *Handler) SetDayState(w http.ResponseWriter, r *http.Request) {
	year, err := yearParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid year", err)
		return
	}
	month, err := strconv.Atoi(chi.URLParam(r, "month"))
	if err != nil || month < 1 || month > 12 {
		writeError(w, http.StatusBadRequest, "Invalid month", err)
		return
	}
	day, err := strconv.Atoi(chi.URLParam(r, "day"))
	if err != nil || day < 1 || day > calendar.DaysInMonth(year, time.Month(month)) {
		writeError(w, http.StatusBadRequest, "Invalid day", err)
		return
	}

	var req SetDayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	status := daystate.StatusUnset
	if req.Status != "" {
		var ok bool
		if status, ok = daystate.ParseStatus(req.Status); !ok {
			writeError(w, http.StatusUnprocessableEntity, "Unknown day status", nil)
			return
		}
	}

	date := calendar.NewDate(year, time.Month(month), day)
	if status.IsSet() && !h.Calendar.IsWorkday(date) {
		writeError(w, http.StatusUnprocessableEntity, "Weekends and holidays cannot be marked", nil)
		return
	}

	if err := h.Days.Load(r.Context(), year); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load day states", err)
		return
	}
	h.Days.Set(date, status)
	writeJSON(w, http.StatusOK, h.dayStatesDTO(year))
}

// ReplayGesture feeds one recorded drag gesture through the paint
// controller: pointer down at the first point, moves through the rest,
// then pointer up.
func (h *Handler) ReplayGesture(w http.ResponseWriter, r *http.Request) {
	year, err := yearParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid year", err)
		return
	}

	var req GestureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.Month < 1 || req.Month > 12 {
		writeError(w, http.StatusBadRequest, "Invalid month", nil)
		return
	}
	if len(req.Points) == 0 {
		writeError(w, http.StatusBadRequest, "Gesture needs at least one point", nil)
		return
	}

	if err := h.Days.Load(r.Context(), year); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load day states", err)
		return
	}

	ctrl := paint.NewController(h.Calendar, h.Days)
	if req.Selection != "" {
		selection, ok := daystate.ParseStatus(req.Selection)
		if !ok {
			writeError(w, http.StatusUnprocessableEntity, "Unknown selection status", nil)
			return
		}
		ctrl.SetSelection(selection)
	}

	grid := calendar.NewMonthGrid(year, time.Month(req.Month))
	geom := paint.Geometry{
		Left:   req.Geometry.Left,
		Top:    req.Geometry.Top,
		Width:  req.Geometry.Width,
		Height: req.Geometry.Height,
	}

	ctrl.PointerDown(grid, geom, req.Points[0].X, req.Points[0].Y)
	for _, p := range req.Points[1:] {
		ctrl.PointerMove(p.X, p.Y)
	}
	ctrl.PointerUp()

	writeJSON(w, http.StatusOK, h.dayStatesDTO(year))
}

// =============================================================================
// COMPUTATION HANDLER
// =============================================================================

// Compute runs the salary engine against the session inputs and the
// painted days of the requested (or selected) year.
func (h *Handler) Compute(w http.ResponseWriter, r *http.Request) {
	var req ComputeRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body", err)
			return
		}
	}
	year := req.Year
	if year == 0 {
		year = h.Session.SelectedYear()
	}

	inputs, ok := h.Session.Inputs()
	if !ok {
		// Not an error: results are withheld until all fields parse.
		writeJSON(w, http.StatusOK, ComputeResponse{Ready: false, Year: year})
		return
	}

	if err := h.Days.Load(r.Context(), year); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load day states", err)
		return
	}

	counts := salary.CountsFrom(h.Days.CountsByType(year))
	workdays := h.Calendar.WorkdaysInYear(year)

	result, err := salary.Compute(inputs, counts, year, workdays)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Computation failed", err)
		return
	}

	writeJSON(w, http.StatusOK, ComputeResponse{
		Ready:                   true,
		Year:                    year,
		Base:                    result.Base.String(),
		VacationPay:             result.VacationPay.String(),
		NominalHourlyRate:       result.NominalHourlyRate.String(),
		NavParentalPay:          result.NavParentalPay.String(),
		EmployerParentalPay:     result.EmployerParentalPay.String(),
		NavSickPay:              result.NavSickPay.String(),
		EmployerSickPay:         result.EmployerSickPay.String(),
		NavSickVacationPay:      result.NavSickVacationPay.String(),
		EmployerSickVacationPay: result.EmployerSickVacationPay.String(),
		ActualWorkDays:          result.ActualWorkDays,
		ActualHoursWorked:       result.ActualHoursWorked.String(),
		ActualEarnings:          result.ActualEarnings.String(),
		ActualHourlyRate:        result.ActualHourlyRate.String(),
		Explanation:             result.Explanation,
	})
}

// =============================================================================
// RESPONSE HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
