// Package spatial implements the uniform-grid spatial index the world
// loop rebuilds every frame and behaviors query for nearby entities,
// keyed (id, kind) entries against the tagged-sum entity model instead
// of an ECS archetype.
package spatial

import "github.com/mbolaris/tankcore/components"

// MaxQueryResults caps the number of neighbors a single query can
// return, so a density spike never turns one query into unbounded
// work.
const MaxQueryResults = 128

// Entry is one indexed entity's position and kind.
type Entry struct {
	ID   components.ID
	Kind components.Kind
	X, Y float64
}

// Neighbor is a query result with the toroidal (or clamped) delta and
// squared distance precomputed, so callers can skip recomputing
// distance in a hot path.
type Neighbor struct {
	ID     components.ID
	Kind   components.Kind
	DX, DY float64
	DistSq float64
}

// Grid is a cell-bucketed spatial index over a bounded or toroidal
// rectangle.
type Grid struct {
	cellSize       float64
	cols, rows     int
	width, height  float64
	toroidal       bool
	cells          [][]Entry
}

// New builds an empty grid covering (width, height) with the given
// cell size. toroidal selects wrap-around neighbor queries and
// deltas; false clamps them to the rectangle instead.
func New(width, height, cellSize float64, toroidal bool) *Grid {
	cols := int(width/cellSize) + 1
	rows := int(height/cellSize) + 1
	cells := make([][]Entry, cols*rows)
	for i := range cells {
		cells[i] = make([]Entry, 0, 8)
	}
	return &Grid{
		cellSize: cellSize,
		cols:     cols,
		rows:     rows,
		width:    width,
		height:   height,
		toroidal: toroidal,
		cells:    cells,
	}
}

// Clear empties every cell without releasing backing arrays, so a
// per-frame rebuild reuses the grid's allocations.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = g.cells[i][:0]
	}
}

// Insert adds an entity at (x,y) to the grid.
func (g *Grid) Insert(id components.ID, kind components.Kind, x, y float64) {
	idx := g.cellIndex(x, y)
	g.cells[idx] = append(g.cells[idx], Entry{ID: id, Kind: kind, X: x, Y: y})
}

// Delta returns the shortest-path offset from (x1,y1) to (x2,y2),
// wrapping around the grid's bounds when toroidal.
func (g *Grid) Delta(x1, y1, x2, y2 float64) (dx, dy float64) {
	dx = x2 - x1
	dy = y2 - y1
	if !g.toroidal {
		return dx, dy
	}
	if dx > g.width/2 {
		dx -= g.width
	} else if dx < -g.width/2 {
		dx += g.width
	}
	if dy > g.height/2 {
		dy -= g.height
	} else if dy < -g.height/2 {
		dy += g.height
	}
	return dx, dy
}

// QueryRadiusInto appends every entity within radius of (x,y), except
// excludeID, to dst and returns the updated slice, up to
// MaxQueryResults. Passing a reused dst[:0] across calls avoids
// per-query allocation. kindFilter, if non-nil, restricts results to
// entities of that kind.
func (g *Grid) QueryRadiusInto(dst []Neighbor, x, y, radius float64, excludeID components.ID, kindFilter *components.Kind) []Neighbor {
	cellRadius := int(radius/g.cellSize) + 1
	centerCol := int(x / g.cellSize)
	centerRow := int(y / g.cellSize)
	radiusSq := radius * radius

	firstCol, colSpan := centerCol-cellRadius, 2*cellRadius+1
	firstRow, rowSpan := centerRow-cellRadius, 2*cellRadius+1
	if g.toroidal {
		// The last column and row extend past the world's edge, so a scan
		// that wraps across the seam reaches one cell further on each
		// side; the span is capped so no cell is visited twice.
		firstCol, colSpan = firstCol-1, clampInt(colSpan+2, 1, g.cols)
		firstRow, rowSpan = firstRow-1, clampInt(rowSpan+2, 1, g.rows)
	}

	for dc := 0; dc < colSpan; dc++ {
		for dr := 0; dr < rowSpan; dr++ {
			col, row, ok := g.wrapCell(firstCol+dc, firstRow+dr)
			if !ok {
				continue
			}
			idx := row*g.cols + col
			for _, e := range g.cells[idx] {
				if e.ID == excludeID {
					continue
				}
				if kindFilter != nil && e.Kind != *kindFilter {
					continue
				}
				dx, dy := g.Delta(x, y, e.X, e.Y)
				distSq := dx*dx + dy*dy
				if distSq <= radiusSq {
					dst = append(dst, Neighbor{ID: e.ID, Kind: e.Kind, DX: dx, DY: dy, DistSq: distSq})
					if len(dst) >= MaxQueryResults {
						return dst
					}
				}
			}
		}
	}
	return dst
}

func (g *Grid) cellIndex(x, y float64) int {
	col := int(x / g.cellSize)
	row := int(y / g.cellSize)
	if g.toroidal {
		col = ((col % g.cols) + g.cols) % g.cols
		row = ((row % g.rows) + g.rows) % g.rows
	} else {
		col = clampInt(col, 0, g.cols-1)
		row = clampInt(row, 0, g.rows-1)
	}
	return row*g.cols + col
}

func (g *Grid) wrapCell(col, row int) (int, int, bool) {
	if g.toroidal {
		col = ((col % g.cols) + g.cols) % g.cols
		row = ((row % g.rows) + g.rows) % g.rows
		return col, row, true
	}
	if col < 0 || col >= g.cols || row < 0 || row >= g.rows {
		return 0, 0, false
	}
	return col, row, true
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
