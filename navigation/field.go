package navigation

// Direction constants for the BFS field
// Index into DirVectors: N=0, E=1, S=2, W=3
const (
	DirNone   int8 = -1 // Blocked or unreachable
	DirSource int8 = -2 // At source cell
	DirN      int8 = 0
	DirE      int8 = 1
	DirS      int8 = 2
	DirW      int8 = 3
	DirCount  int8 = 4
)

// Direction vectors matching DirN..DirW
var DirVectors = [4][2]int{
	{0, -1}, {1, 0}, {0, 1}, {-1, 0},
}

// Unreached marks cells the last Compute never visited
const Unreached = -1

// WallChecker is a function that returns true if cell blocks navigation
type WallChecker func(x, y int) bool

// Field stores a breadth-first distance table from a single source cell
// Cardinal moves only, every step costs 1
type Field struct {
	Width, Height int
	Distances     []int  // Step count from source, Unreached if not visited
	Directions    []int8 // Per-cell direction index toward source, DirNone if unreached

	SourceX, SourceY int
	Valid            bool

	// Reusable queue buffer to reduce allocations across recomputes
	queue []int
}

// NewField creates an empty field for the given dimensions
func NewField(width, height int) *Field {
	size := width * height
	return &Field{
		Width:      width,
		Height:     height,
		Distances:  make([]int, size),
		Directions: make([]int8, size),
		SourceX:    -1,
		SourceY:    -1,
		queue:      make([]int, 0, size/2),
	}
}

// Resize adjusts field dimensions, invalidates cache
func (f *Field) Resize(width, height int) {
	size := width * height
	if cap(f.Distances) < size {
		f.Distances = make([]int, size)
		f.Directions = make([]int8, size)
	} else {
		f.Distances = f.Distances[:size]
		f.Directions = f.Directions[:size]
	}
	f.Width = width
	f.Height = height
	f.Valid = false
}

// Invalidate marks field for recomputation
func (f *Field) Invalidate() {
	f.Valid = false
}

func (f *Field) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < f.Width && y < f.Height
}

// Compute runs BFS from (sourceX, sourceY) over cells not blocked by isBlocked.
// A blocked or out-of-bounds source leaves the field invalid.
func (f *Field) Compute(sourceX, sourceY int, isBlocked WallChecker) {
	if !f.inBounds(sourceX, sourceY) || isBlocked(sourceX, sourceY) {
		f.Valid = false
		return
	}

	w := f.Width
	for i := range f.Distances {
		f.Distances[i] = Unreached
		f.Directions[i] = DirNone
	}

	srcIdx := sourceY*w + sourceX
	f.Distances[srcIdx] = 0
	f.Directions[srcIdx] = DirSource

	// Head index instead of reslicing keeps the backing array reusable
	f.queue = append(f.queue[:0], srcIdx)
	for head := 0; head < len(f.queue); head++ {
		idx := f.queue[head]
		cx, cy := idx%w, idx/w

		for dirIdx := int8(0); dirIdx < DirCount; dirIdx++ {
			nx := cx + DirVectors[dirIdx][0]
			ny := cy + DirVectors[dirIdx][1]
			if !f.inBounds(nx, ny) || isBlocked(nx, ny) {
				continue
			}

			nIdx := ny*w + nx
			if f.Distances[nIdx] != Unreached {
				continue
			}
			f.Distances[nIdx] = f.Distances[idx] + 1
			// Neighbor steps back toward the cell it was discovered from
			f.Directions[nIdx] = (dirIdx + 2) % DirCount
			f.queue = append(f.queue, nIdx)
		}
	}

	f.SourceX = sourceX
	f.SourceY = sourceY
	f.Valid = true
}

// Distance returns step count from source, Unreached if invalid or not visited
func (f *Field) Distance(x, y int) int {
	if !f.Valid || !f.inBounds(x, y) {
		return Unreached
	}
	return f.Distances[y*f.Width+x]
}

// Reached reports whether BFS visited (x, y)
func (f *Field) Reached(x, y int) bool {
	return f.Distance(x, y) != Unreached
}

// Direction returns flow direction at cell, DirNone if invalid/unreached
func (f *Field) Direction(x, y int) int8 {
	if !f.Valid || !f.inBounds(x, y) {
		return DirNone
	}
	return f.Directions[y*f.Width+x]
}

// Next returns the neighbor one step closer to the source.
// ok is false at the source itself and for unreached cells.
func (f *Field) Next(x, y int) (nx, ny int, ok bool) {
	dir := f.Direction(x, y)
	if dir < 0 {
		return x, y, false
	}
	return x + DirVectors[dir][0], y + DirVectors[dir][1], true
}

// PathFrom returns the cells from (x, y) to the source inclusive, nil if unreached
func (f *Field) PathFrom(x, y int) [][2]int {
	d := f.Distance(x, y)
	if d == Unreached {
		return nil
	}

	path := make([][2]int, 0, d+1)
	path = append(path, [2]int{x, y})
	for {
		nx, ny, ok := f.Next(x, y)
		if !ok {
			break
		}
		x, y = nx, ny
		path = append(path, [2]int{x, y})
	}
	return path
}

// Farthest returns a reached cell with the largest distance, first in row-major order on ties
func (f *Field) Farthest() (x, y, dist int) {
	x, y, dist = -1, -1, Unreached
	if !f.Valid {
		return
	}
	for i, d := range f.Distances {
		if d > dist {
			dist = d
			x, y = i%f.Width, i/f.Width
		}
	}
	return
}
