package maze

import "strings"

// Cell is the state of one grid square
type Cell uint8

const (
	Wall Cell = iota
	Passage
	Start
	End
)

// Passable reports whether a player can stand on the cell
func (c Cell) Passable() bool {
	return c != Wall
}

func (c Cell) String() string {
	switch c {
	case Wall:
		return "wall"
	case Passage:
		return "passage"
	case Start:
		return "start"
	case End:
		return "end"
	}
	return "unknown"
}

// Point is a grid coordinate, X is column and Y is row
type Point struct {
	X, Y int
}

// Add returns p offset by d
func (p Point) Add(d Point) Point {
	return Point{p.X + d.X, p.Y + d.Y}
}

// Cardinal unit steps: up, down, left, right
var cardinals = [4]Point{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}

// Grid is a square maze, indexed [row][col]
type Grid [][]Cell

// NewGrid allocates a size×size grid filled with walls
func NewGrid(size int) Grid {
	g := make(Grid, size)
	for y := range g {
		g[y] = make([]Cell, size)
	}
	return g
}

// Size returns the side length
func (g Grid) Size() int {
	return len(g)
}

// InBounds reports whether p lies on the grid
func (g Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.Y < len(g) && p.X < len(g[p.Y])
}

// At returns the cell at p, Wall when out of bounds
func (g Grid) At(p Point) Cell {
	if !g.InBounds(p) {
		return Wall
	}
	return g[p.Y][p.X]
}

// Set writes c at p, ignoring out-of-bounds writes
func (g Grid) Set(p Point, c Cell) {
	if g.InBounds(p) {
		g[p.Y][p.X] = c
	}
}

// Passable reports whether p is in bounds and not a wall
func (g Grid) Passable(p Point) bool {
	return g.At(p).Passable()
}

// Blocked adapts the grid to navigation.WallChecker
func (g Grid) Blocked(x, y int) bool {
	return !g.Passable(Point{x, y})
}

// OpenNeighbors counts passable cardinal neighbors of p
func (g Grid) OpenNeighbors(p Point) int {
	n := 0
	for _, d := range cardinals {
		if g.Passable(p.Add(d)) {
			n++
		}
	}
	return n
}

// Clone returns a deep copy
func (g Grid) Clone() Grid {
	c := make(Grid, len(g))
	for y := range g {
		c[y] = append([]Cell(nil), g[y]...)
	}
	return c
}

// String renders the grid one character per cell: '#' wall, ' ' passage, 'S' start, 'E' end
func (g Grid) String() string {
	var sb strings.Builder
	sb.Grow(len(g) * (len(g) + 1))
	for _, row := range g {
		for _, c := range row {
			switch c {
			case Wall:
				sb.WriteByte('#')
			case Start:
				sb.WriteByte('S')
			case End:
				sb.WriteByte('E')
			default:
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
