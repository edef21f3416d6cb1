/*
Package paint implements the drag-to-paint interaction over month grids.

PURPOSE:
  Translates a stream of pointer events (down, move, over, up) into
  day-state mutations. The controller is an explicit two-state machine:

    Idle --PointerDown on paintable cell--> Dragging
    Dragging --PointerUp (anywhere)--> Idle

  The whole gesture carries ONE action, decided at pointer-down: if the
  first cell already bears the selected tag the gesture removes, otherwise
  it adds. Re-clicking a painted cell therefore toggles it off, and the
  removal propagates to every cell the drag crosses.

FAST DRAGS:
  Pointer move events are sampled, so a quick drag can skip several cells
  between samples. PointerMove rasterizes the segment between the previous
  and current pointer position through the grid (raster.go) and processes
  every crossed cell exactly once per gesture, deduplicated by a touched
  set. PointerOver is the coarse fallback for the same dedup path.

EDGE POLICY:
  Weekends and public holidays are never paintable. They still enter the
  touched set so repeated crossings don't recompute them. Missing grid
  geometry makes the gesture a no-op; the controller never panics on
  layout it cannot see.

SEE ALSO:
  - raster.go: segment-to-cells traversal
  - daystate/store.go: the mutation target
*/
package paint

import (
	"github.com/fastlonn/kalkulator/calendar"
	"github.com/fastlonn/kalkulator/daystate"
)

const (
	GridCols = calendar.GridCols
	GridRows = calendar.GridRows
)

// Action is decided once per gesture, at pointer-down.
type Action int

const (
	ActionAdd Action = iota
	ActionRemove
)

// Geometry is the bounding box of one month grid, in the same coordinate
// space as the pointer events. A zero-size geometry means layout is not
// available and gestures no-op.
type Geometry struct {
	Left   float64
	Top    float64
	Width  float64
	Height float64
}

func (g Geometry) valid() bool { return g.Width > 0 && g.Height > 0 }

// fractional converts pointer coordinates into grid-fractional cell
// coordinates (1.0 = one cell edge).
func (g Geometry) fractional(x, y float64) (fx, fy float64) {
	return (x - g.Left) / (g.Width / GridCols), (y - g.Top) / (g.Height / GridRows)
}

// Controller drives one drag gesture at a time against the day-state store.
type Controller struct {
	cal   *calendar.Calendar
	store *daystate.Store

	// selection is the tag painted by Add gestures.
	selection daystate.Status

	dragging bool
	action   Action
	touched  map[calendar.Date]struct{}
	grid     calendar.MonthGrid
	geom     Geometry
	lastX    float64
	lastY    float64
}

func NewController(cal *calendar.Calendar, store *daystate.Store) *Controller {
	return &Controller{
		cal:       cal,
		store:     store,
		selection: daystate.Ferie,
	}
}

// SetSelection changes which tag Add gestures paint. No effect on a
// gesture already in flight.
func (c *Controller) SetSelection(status daystate.Status) {
	c.selection = status
}

func (c *Controller) Selection() daystate.Status { return c.selection }

// Dragging reports whether a gesture is in flight.
func (c *Controller) Dragging() bool { return c.dragging }

// =============================================================================
// EVENT TRANSITIONS
// =============================================================================

// PointerDown starts a gesture on the given month grid. Events on
// unpaintable cells (weekend, holiday, outside the month) or with missing
// geometry are silently ignored and the controller stays Idle.
func (c *Controller) PointerDown(grid calendar.MonthGrid, geom Geometry, x, y float64) {
	if c.dragging || !geom.valid() {
		return
	}

	fx, fy := geom.fractional(x, y)
	if fx < 0 || fx >= GridCols || fy < 0 || fy >= GridRows {
		return
	}
	cell := Cell{Row: int(fy), Col: int(fx)}
	date, ok := grid.DateAt(cell.Row, cell.Col)
	if !ok || !c.cal.IsWorkday(date) {
		return
	}

	// The first cell's state fixes the action for the whole gesture.
	if c.store.Get(date) == c.selection {
		c.action = ActionRemove
	} else {
		c.action = ActionAdd
	}
	c.apply(date)

	c.dragging = true
	c.touched = map[calendar.Date]struct{}{date: {}}
	c.grid = grid
	c.geom = geom
	c.lastX = x
	c.lastY = y
}

// PointerMove processes every cell between the previous and current
// pointer position while dragging.
func (c *Controller) PointerMove(x, y float64) {
	if !c.dragging || !c.geom.valid() {
		return
	}

	fx0, fy0 := c.geom.fractional(c.lastX, c.lastY)
	fx1, fy1 := c.geom.fractional(x, y)

	for _, cell := range cellsOnSegment(fx0, fy0, fx1, fy1) {
		c.touch(cell)
	}

	c.lastX = x
	c.lastY = y
}

// PointerOver is the fallback path for coarse-grained move events: the
// single hovered cell, same dedup as the rasterized path.
func (c *Controller) PointerOver(row, col int) {
	if !c.dragging {
		return
	}
	c.touch(Cell{Row: row, Col: col})
}

// PointerUp ends the gesture unconditionally, wherever the pointer is.
// Callers hook this at window level so gestures cannot get stuck.
func (c *Controller) PointerUp() {
	c.dragging = false
	c.touched = nil
	c.geom = Geometry{}
}

// =============================================================================
// CELL PROCESSING
// =============================================================================

func (c *Controller) touch(cell Cell) {
	date, ok := c.grid.DateAt(cell.Row, cell.Col)
	if !ok {
		return
	}
	if _, seen := c.touched[date]; seen {
		return
	}
	// Marked touched even when unpaintable, so the cell is never
	// reprocessed within this gesture.
	c.touched[date] = struct{}{}

	if c.cal.IsWorkday(date) {
		c.apply(date)
	}
}

func (c *Controller) apply(date calendar.Date) {
	if c.action == ActionRemove {
		c.store.Set(date, daystate.StatusUnset)
		return
	}
	c.store.Set(date, c.selection)
}
