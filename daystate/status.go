/*
Package daystate tracks which calendar days carry a leave marking.

PURPOSE:
  The day-state store is the single source of truth for painted days: a
  per-year mapping from calendar date to a leave category. The paint
  controller mutates it, the grid renderer and the salary engine read it.

KEY CONCEPTS:
  - Status: closed tag set of leave categories (status.go)
  - Store:  per-year date->Status map with counting and debounced
            persistence through a pluggable Adapter (store.go)

INVARIANTS:
  1. Absence of an entry IS the unset state; unset is never stored
  2. Writing the value already present is a no-op (no persist scheduled)
  3. A day holds exactly one tag; re-tagging replaces

SEE ALSO:
  - paint/controller.go: the only writer during drag gestures
  - salary/engine.go: consumes CountsByType
*/
package daystate

// Status is a leave category tag on a single day. The zero value is
// StatusUnset, which is never stored.
type Status string

const (
	StatusUnset Status = ""

	Ferie               Status = "ferie"                // vacation
	PermisjonMedLonn    Status = "permisjon_med_lonn"   // paid leave
	PermisjonUtenLonn   Status = "permisjon_uten_lonn"  // unpaid leave
	Foreldrepermisjon   Status = "foreldrepermisjon"    // parental leave, 100% rate
	Foreldrepermisjon80 Status = "foreldrepermisjon_80" // parental leave, 80% rate
	Sykemelding         Status = "sykemelding"          // sick leave
)

// AllStatuses lists the paintable tags in selection-mode order.
var AllStatuses = []Status{
	Ferie,
	PermisjonMedLonn,
	PermisjonUtenLonn,
	Foreldrepermisjon,
	Foreldrepermisjon80,
	Sykemelding,
}

// ParseStatus maps a wire string to a Status. Unknown strings come back as
// StatusUnset with ok=false.
func ParseStatus(s string) (Status, bool) {
	for _, st := range AllStatuses {
		if string(st) == s {
			return st, true
		}
	}
	return StatusUnset, false
}

func (s Status) IsSet() bool { return s != StatusUnset }
