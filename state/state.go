/*
Package state persists the calculator's form state between sessions.

PURPOSE:
  The user's inputs (income, hours, vacation percentage, method, employer
  toggles, selected year) survive restarts. This package is the explicit
  state-store object the handlers are given - a flat string key-value map
  with typed accessors on top and a pluggable Adapter underneath
  (in-memory for tests, SQLite in production).

FAILURE MODE:
  A failed persistence write is logged and forgotten; the in-memory map
  stays authoritative for the session. Durability degrades, functionality
  does not.

SEE ALSO:
  - store/sqlite: production adapter
  - api/handlers.go: the consumer
*/
package state

import (
	"context"
	"log"
	"strconv"
	"sync"
	"time"

	"github.com/fastlonn/kalkulator/salary"
)

// =============================================================================
// KEYS AND DEFAULTS
// =============================================================================

const (
	KeySelectedYear                  = "selectedYear"
	KeyYearlyIncome                  = "yearlyIncome"
	KeyVacationPay                   = "vacationPay"
	KeyVacationPayDisplay            = "vacationPayDisplay"
	KeyHoursPerDay                   = "hoursPerDay"
	KeyHoursPerDayDisplay            = "hoursPerDayDisplay"
	KeyCalculationMethod             = "calculationMethod"
	KeyEmployerCoversAbove6G         = "employerCoversAbove6G"
	KeyEmployerCoversSykeAbove6G     = "employerCoversSykeAbove6G"
	KeyEmployerPaysVacationOnNavSick = "employerPaysVacationOnNavSick"
)

const (
	DefaultVacationPay = "12"
	DefaultHoursPerDay = "7,5"
)

// allKeys is what Reset wipes.
var allKeys = []string{
	KeySelectedYear,
	KeyYearlyIncome,
	KeyVacationPay,
	KeyVacationPayDisplay,
	KeyHoursPerDay,
	KeyHoursPerDayDisplay,
	KeyCalculationMethod,
	KeyEmployerCoversAbove6G,
	KeyEmployerCoversSykeAbove6G,
	KeyEmployerPaysVacationOnNavSick,
}

// =============================================================================
// ADAPTER
// =============================================================================

// Adapter persists the flat key-value map.
type Adapter interface {
	Load(ctx context.Context) (map[string]string, error)
	Save(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// Memory is the in-memory adapter used by tests.
type Memory struct {
	mu     sync.Mutex
	values map[string]string
}

func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

func (m *Memory) Load(context.Context) (map[string]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[string]string, len(m.values))
	for k, v := range m.values {
		out[k] = v
	}
	return out, nil
}

func (m *Memory) Save(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}

// =============================================================================
// SESSION
// =============================================================================

// Session is the live form state, write-through to its adapter.
type Session struct {
	mu      sync.Mutex
	adapter Adapter
	values  map[string]string
}

// NewSession loads persisted state through the adapter. A load failure is
// logged and yields an empty session rather than an error.
func NewSession(ctx context.Context, adapter Adapter) *Session {
	values, err := adapter.Load(ctx)
	if err != nil {
		log.Printf("state: load failed, starting empty: %v", err)
		values = nil
	}
	if values == nil {
		values = make(map[string]string)
	}
	return &Session{adapter: adapter, values: values}
}

// Get returns the raw stored value, or "" when unset.
func (s *Session) Get(key string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.values[key]
}

// Set stores a value and writes it through. Equal writes are no-ops.
func (s *Session) Set(ctx context.Context, key, value string) {
	s.mu.Lock()
	if s.values[key] == value {
		s.mu.Unlock()
		return
	}
	s.values[key] = value
	adapter := s.adapter
	s.mu.Unlock()

	if err := adapter.Save(ctx, key, value); err != nil {
		log.Printf("state: persist %q failed, keeping in-memory value: %v", key, err)
	}
}

// Reset wipes all form keys back to their defaults.
func (s *Session) Reset(ctx context.Context) {
	s.mu.Lock()
	s.values = make(map[string]string)
	adapter := s.adapter
	s.mu.Unlock()

	for _, key := range allKeys {
		if err := adapter.Delete(ctx, key); err != nil {
			log.Printf("state: reset of %q failed: %v", key, err)
		}
	}
}

// =============================================================================
// TYPED ACCESSORS
// =============================================================================

// SelectedYear returns the active calendar year, defaulting to the current
// wall-clock year when nothing is stored.
func (s *Session) SelectedYear() int {
	if year, err := strconv.Atoi(s.Get(KeySelectedYear)); err == nil && year > 0 {
		return year
	}
	return time.Now().Year()
}

func (s *Session) SetSelectedYear(ctx context.Context, year int) {
	s.Set(ctx, KeySelectedYear, strconv.Itoa(year))
}

func (s *Session) boolValue(key string) bool {
	return s.Get(key) == "true"
}

// Inputs assembles the salary engine inputs from the stored form fields.
// ok is false while required fields are missing or non-numeric; the engine
// withholds results until then.
func (s *Session) Inputs() (salary.Inputs, bool) {
	income, okIncome := salary.ParseNumber(s.Get(KeyYearlyIncome))

	hoursRaw := s.Get(KeyHoursPerDay)
	if hoursRaw == "" {
		hoursRaw = DefaultHoursPerDay
	}
	hours, okHours := salary.ParseNumber(hoursRaw)

	vacationRaw := s.Get(KeyVacationPay)
	if vacationRaw == "" {
		vacationRaw = DefaultVacationPay
	}
	vacation, okVacation := salary.ParseNumber(vacationRaw)

	method := s.Get(KeyCalculationMethod)
	if method == "" {
		method = salary.DefaultMethod.Name()
	}

	inputs := salary.Inputs{
		YearlyIncome:                  income,
		HoursPerDay:                   hours,
		VacationPayPercent:            vacation,
		Method:                        method,
		EmployerCoversAbove6G:         s.boolValue(KeyEmployerCoversAbove6G),
		EmployerCoversSykeAbove6G:     s.boolValue(KeyEmployerCoversSykeAbove6G),
		EmployerPaysVacationOnNavSick: s.boolValue(KeyEmployerPaysVacationOnNavSick),
	}
	return inputs, okIncome && okHours && okVacation
}
