/*
store.go - Per-year day-state map with debounced persistence

PERSISTENCE MODEL:
  Every effective mutation marks the year dirty and (re)arms a short flush
  timer. When the timer fires, all dirty years are written through the
  Adapter as whole-year snapshots. A failed write is logged as a warning
  and the in-memory state stays authoritative for the session - degraded
  durability, never degraded functionality.

  Flush() forces a synchronous write; Close() flushes and stops the timer.
  Each new mutation cancels and re-arms the pending timer, so a burst of
  paint strokes costs one write.

ADAPTER:
  The Adapter interface keeps the store persistence-agnostic: the sqlite
  store implements it for production, tests run with a nil or in-memory
  adapter.
*/
package daystate

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/fastlonn/kalkulator/calendar"
)

// DefaultFlushDelay is the debounce window between a mutation and its
// persistence write.
const DefaultFlushDelay = 150 * time.Millisecond

// =============================================================================
// ADAPTER - Pluggable persistence
// =============================================================================

// Adapter persists day states per year. Implementations must tolerate
// years they have never seen (LoadYear returns an empty map).
type Adapter interface {
	LoadYear(ctx context.Context, year int) (map[calendar.Date]Status, error)
	SaveYear(ctx context.Context, year int, states map[calendar.Date]Status) error
}

// =============================================================================
// STORE
// =============================================================================

// Store holds the painted days, keyed per year. A nil adapter gives a
// memory-only store.
type Store struct {
	mu      sync.Mutex
	adapter Adapter
	delay   time.Duration

	years map[int]map[calendar.Date]Status
	dirty map[int]bool
	timer *time.Timer
}

func NewStore(adapter Adapter) *Store {
	return &Store{
		adapter: adapter,
		delay:   DefaultFlushDelay,
		years:   make(map[int]map[calendar.Date]Status),
		dirty:   make(map[int]bool),
	}
}

// SetFlushDelay overrides the debounce window. Tests use a tiny delay or
// call Flush directly.
func (s *Store) SetFlushDelay(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.delay = d
}

// Load pulls a year from the adapter into memory. Already-loaded years are
// not reloaded; in-memory state is authoritative once touched.
func (s *Store) Load(ctx context.Context, year int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.years[year]; ok {
		return nil
	}
	if s.adapter == nil {
		s.years[year] = make(map[calendar.Date]Status)
		return nil
	}

	states, err := s.adapter.LoadYear(ctx, year)
	if err != nil {
		log.Printf("daystate: load year %d failed, starting empty: %v", year, err)
		states = nil
	}
	if states == nil {
		states = make(map[calendar.Date]Status)
	}
	s.years[year] = states
	return nil
}

// Get returns the status of a day, or StatusUnset when nothing is stored.
func (s *Store) Get(d calendar.Date) Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.years[d.Year][d]
}

// Set writes a status. Setting the value already present is a no-op and
// schedules nothing; setting StatusUnset deletes the entry. Returns whether
// the store changed.
func (s *Store) Set(d calendar.Date, status Status) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	year := s.years[d.Year]
	if year == nil {
		year = make(map[calendar.Date]Status)
		s.years[d.Year] = year
	}

	current := year[d]
	if current == status {
		return false
	}

	if status == StatusUnset {
		delete(year, d)
	} else {
		year[d] = status
	}

	s.dirty[d.Year] = true
	s.scheduleFlushLocked()
	return true
}

// CountsByType aggregates the painted days of a year per status. Unset
// days are absent by construction.
func (s *Store) CountsByType(year int) map[Status]int {
	s.mu.Lock()
	defer s.mu.Unlock()

	counts := make(map[Status]int)
	for _, status := range s.years[year] {
		counts[status]++
	}
	return counts
}

// DaysWithStatus returns the dates of a year carrying the given status.
func (s *Store) DaysWithStatus(year int, status Status) []calendar.Date {
	s.mu.Lock()
	defer s.mu.Unlock()

	var days []calendar.Date
	for d, st := range s.years[year] {
		if st == status {
			days = append(days, d)
		}
	}
	return days
}

// All returns a copy of a year's map, for rendering and DTO building.
func (s *Store) All(year int) map[calendar.Date]Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[calendar.Date]Status, len(s.years[year]))
	for d, st := range s.years[year] {
		out[d] = st
	}
	return out
}

// ResetYear wipes one year's day states and persists the wipe. Other years
// are untouched.
func (s *Store) ResetYear(year int) {
	s.mu.Lock()
	s.years[year] = make(map[calendar.Date]Status)
	s.dirty[year] = true
	s.scheduleFlushLocked()
	s.mu.Unlock()
}

// =============================================================================
// DEBOUNCED FLUSH
// =============================================================================

func (s *Store) scheduleFlushLocked() {
	if s.adapter == nil {
		s.dirty = make(map[int]bool)
		return
	}
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.delay, func() { s.Flush(context.Background()) })
}

// Flush writes all dirty years through the adapter now. Write failures are
// logged and the years stay dirty for the next attempt.
func (s *Store) Flush(ctx context.Context) {
	s.mu.Lock()
	if s.adapter == nil || len(s.dirty) == 0 {
		s.mu.Unlock()
		return
	}

	type snapshot struct {
		year   int
		states map[calendar.Date]Status
	}
	var pending []snapshot
	for year := range s.dirty {
		states := make(map[calendar.Date]Status, len(s.years[year]))
		for d, st := range s.years[year] {
			states[d] = st
		}
		pending = append(pending, snapshot{year: year, states: states})
	}
	adapter := s.adapter
	s.mu.Unlock()

	for _, snap := range pending {
		if err := adapter.SaveYear(ctx, snap.year, snap.states); err != nil {
			log.Printf("daystate: persist year %d failed, keeping in-memory state: %v", snap.year, err)
			continue
		}
		s.mu.Lock()
		delete(s.dirty, snap.year)
		s.mu.Unlock()
	}
}

// Close flushes pending writes and stops the debounce timer.
func (s *Store) Close(ctx context.Context) {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.mu.Unlock()
	s.Flush(ctx)
}
