package paint

import "math"

// =============================================================================
// GRID TRAVERSAL - Which cells does a pointer segment cross?
// =============================================================================

// Cell is a position in the 7x6 month grid.
type Cell struct {
	Row int
	Col int
}

// cellsOnSegment returns every grid cell the segment from (fx0,fy0) to
// (fx1,fy1) crosses, in traversal order. Coordinates are grid-fractional
// (1.0 = one cell). Cells are clamped into the 7x6 bounds, so segments
// that leave the grid keep contributing their nearest edge cells.
//
// The traversal steps one axis at a time, whichever boundary the segment
// reaches first, so no cell between consecutive pointer samples is skipped
// no matter how fast the drag moved.
func cellsOnSegment(fx0, fy0, fx1, fy1 float64) []Cell {
	cx := int(math.Floor(fx0))
	cy := int(math.Floor(fy0))
	ex := int(math.Floor(fx1))
	ey := int(math.Floor(fy1))

	cells := []Cell{clampCell(cx, cy)}
	if cx == ex && cy == ey {
		return cells
	}

	dx := fx1 - fx0
	dy := fy1 - fy0

	stepX, tMaxX, tDeltaX := axisSetup(fx0, dx)
	stepY, tMaxY, tDeltaY := axisSetup(fy0, dy)

	// Upper bound on boundary crossings keeps degenerate float input from
	// looping forever.
	for i := 0; i < 4*(GridCols+GridRows); i++ {
		if tMaxX <= tMaxY {
			if tMaxX > 1 {
				break
			}
			cx += stepX
			tMaxX += tDeltaX
		} else {
			if tMaxY > 1 {
				break
			}
			cy += stepY
			tMaxY += tDeltaY
		}
		cells = append(cells, clampCell(cx, cy))
		if cx == ex && cy == ey {
			break
		}
	}
	return cells
}

// axisSetup returns the step direction, the segment-relative t of the first
// cell boundary on this axis, and the t cost of one full cell.
func axisSetup(f0, delta float64) (step int, tMax, tDelta float64) {
	if delta > 0 {
		boundary := math.Floor(f0) + 1
		return 1, (boundary - f0) / delta, 1 / delta
	}
	if delta < 0 {
		boundary := math.Floor(f0)
		return -1, (boundary - f0) / delta, -1 / delta
	}
	return 0, math.Inf(1), math.Inf(1)
}

func clampCell(col, row int) Cell {
	if col < 0 {
		col = 0
	}
	if col >= GridCols {
		col = GridCols - 1
	}
	if row < 0 {
		row = 0
	}
	if row >= GridRows {
		row = GridRows - 1
	}
	return Cell{Row: row, Col: col}
}
