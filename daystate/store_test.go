package daystate_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fastlonn/kalkulator/calendar"
	"github.com/fastlonn/kalkulator/daystate"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

// recordingAdapter counts writes and can be told to fail.
type recordingAdapter struct {
	mu    sync.Mutex
	saves int
	fail  bool
	data  map[int]map[calendar.Date]daystate.Status
}

func newRecordingAdapter() *recordingAdapter {
	return &recordingAdapter{data: make(map[int]map[calendar.Date]daystate.Status)}
}

func (a *recordingAdapter) LoadYear(_ context.Context, year int) (map[calendar.Date]daystate.Status, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make(map[calendar.Date]daystate.Status, len(a.data[year]))
	for d, st := range a.data[year] {
		out[d] = st
	}
	return out, nil
}

func (a *recordingAdapter) SaveYear(_ context.Context, year int, states map[calendar.Date]daystate.Status) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.fail {
		return errors.New("storage unavailable")
	}
	a.saves++
	a.data[year] = states
	return nil
}

func (a *recordingAdapter) saveCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.saves
}

func day(year int, month time.Month, d int) calendar.Date {
	return calendar.NewDate(year, month, d)
}

// =============================================================================
// MUTATION SEMANTICS
// =============================================================================

func TestSet_SameValueIsNoOp(t *testing.T) {
	// GIVEN: A day already painted as vacation
	// WHEN: Painting it as vacation again
	// THEN: The store reports no change and counts stay flat

	store := daystate.NewStore(nil)
	d := day(2025, time.March, 10)

	require.True(t, store.Set(d, daystate.Ferie))
	assert.False(t, store.Set(d, daystate.Ferie))

	counts := store.CountsByType(2025)
	assert.Equal(t, 1, counts[daystate.Ferie])
}

func TestSet_UnsetDeletesEntry(t *testing.T) {
	store := daystate.NewStore(nil)
	d := day(2025, time.March, 10)

	store.Set(d, daystate.Sykemelding)
	require.True(t, store.Set(d, daystate.StatusUnset))

	assert.Equal(t, daystate.StatusUnset, store.Get(d))
	assert.Empty(t, store.CountsByType(2025))
	assert.False(t, store.Set(d, daystate.StatusUnset), "unsetting an absent day is a no-op")
}

func TestSet_RetaggingReplaces(t *testing.T) {
	// A day holds exactly one tag: painting sick over parental replaces it.
	store := daystate.NewStore(nil)
	d := day(2025, time.June, 2)

	store.Set(d, daystate.Foreldrepermisjon)
	store.Set(d, daystate.Sykemelding)

	counts := store.CountsByType(2025)
	assert.Equal(t, 1, counts[daystate.Sykemelding])
	assert.Zero(t, counts[daystate.Foreldrepermisjon])
}

func TestCountsByType_PerYearScope(t *testing.T) {
	store := daystate.NewStore(nil)

	store.Set(day(2024, time.July, 1), daystate.Ferie)
	store.Set(day(2025, time.July, 1), daystate.Ferie)
	store.Set(day(2025, time.July, 2), daystate.PermisjonUtenLonn)

	assert.Equal(t, map[daystate.Status]int{daystate.Ferie: 1}, store.CountsByType(2024))
	assert.Equal(t, 1, store.CountsByType(2025)[daystate.Ferie])
	assert.Equal(t, 1, store.CountsByType(2025)[daystate.PermisjonUtenLonn])
}

func TestResetYear_LeavesOtherYearsAlone(t *testing.T) {
	store := daystate.NewStore(nil)
	store.Set(day(2024, time.July, 1), daystate.Ferie)
	store.Set(day(2025, time.July, 1), daystate.Ferie)

	store.ResetYear(2025)

	assert.Empty(t, store.CountsByType(2025))
	assert.Equal(t, 1, store.CountsByType(2024)[daystate.Ferie])
}

// =============================================================================
// PERSISTENCE
// =============================================================================

func TestFlush_DebouncedSingleWrite(t *testing.T) {
	// GIVEN: A burst of paint strokes
	// WHEN:  Flushing once
	// THEN:  The adapter sees a single whole-year write

	adapter := newRecordingAdapter()
	store := daystate.NewStore(adapter)
	store.SetFlushDelay(time.Hour) // keep the timer out of the way

	store.Set(day(2025, time.March, 3), daystate.Ferie)
	store.Set(day(2025, time.March, 4), daystate.Ferie)
	store.Set(day(2025, time.March, 5), daystate.Ferie)

	store.Flush(context.Background())

	assert.Equal(t, 1, adapter.saveCount())
	assert.Len(t, adapter.data[2025], 3)
}

func TestFlush_NoOpWriteSchedulesNothing(t *testing.T) {
	adapter := newRecordingAdapter()
	store := daystate.NewStore(adapter)
	store.SetFlushDelay(time.Hour)

	store.Set(day(2025, time.March, 3), daystate.Ferie)
	store.Flush(context.Background())
	require.Equal(t, 1, adapter.saveCount())

	// Identical write: nothing dirty, nothing flushed.
	store.Set(day(2025, time.March, 3), daystate.Ferie)
	store.Flush(context.Background())
	assert.Equal(t, 1, adapter.saveCount())
}

func TestFlush_FailureKeepsMemoryAuthoritative(t *testing.T) {
	adapter := newRecordingAdapter()
	adapter.fail = true
	store := daystate.NewStore(adapter)
	store.SetFlushDelay(time.Hour)

	d := day(2025, time.March, 3)
	store.Set(d, daystate.Ferie)
	store.Flush(context.Background())

	// The write failed but the session state survives...
	assert.Equal(t, daystate.Ferie, store.Get(d))

	// ...and the year stays dirty, so a later flush retries.
	adapter.fail = false
	store.Flush(context.Background())
	assert.Equal(t, 1, adapter.saveCount())
	assert.Len(t, adapter.data[2025], 1)
}

func TestLoad_PullsPersistedYear(t *testing.T) {
	adapter := newRecordingAdapter()
	adapter.data[2025] = map[calendar.Date]daystate.Status{
		day(2025, time.May, 5): daystate.Foreldrepermisjon80,
	}

	store := daystate.NewStore(adapter)
	require.NoError(t, store.Load(context.Background(), 2025))

	assert.Equal(t, daystate.Foreldrepermisjon80, store.Get(day(2025, time.May, 5)))
}

func TestParseStatus(t *testing.T) {
	st, ok := daystate.ParseStatus("foreldrepermisjon_80")
	require.True(t, ok)
	assert.Equal(t, daystate.Foreldrepermisjon80, st)

	_, ok = daystate.ParseStatus("helgedag")
	assert.False(t, ok)
}
