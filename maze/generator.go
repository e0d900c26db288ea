package maze

import (
	"math/rand"
	"time"

	"github.com/lixenwraith/kid-maze/navigation"
)

const (
	// MinSize is the smallest grid that can hold two dead ends on the lattice
	MinSize = 5

	DefaultMaxAttempts = 16
	DefaultSampleSize  = 10
)

type Config struct {
	// Rand takes precedence over Seed when set
	Rand *rand.Rand
	Seed int64 // Optional (0 = Random)

	MaxAttempts int // Full regenerations before giving up (0 = DefaultMaxAttempts)
	SampleSize  int // Endpoint candidates compared pairwise (0 = DefaultSampleSize)
}

type Result struct {
	Grid       Grid
	Start, End Point
	PathLength int     // BFS steps from Start to End
	Path       []Point // Start to End inclusive
}

// Generator carves perfect mazes and picks far-apart endpoints.
// A Generator owns its rng and must not be shared between goroutines.
type Generator struct {
	rng         *rand.Rand
	maxAttempts int
	sampleSize  int

	// candidates lists endpoint candidates of a carved grid, deadEnds unless replaced in tests
	candidates func(Grid) []Point
}

// New creates a generator from cfg, filling defaults
func New(cfg Config) *Generator {
	rng := cfg.Rand
	if rng == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng = rand.New(rand.NewSource(seed))
	}

	g := &Generator{
		rng:         rng,
		maxAttempts: cfg.MaxAttempts,
		sampleSize:  cfg.SampleSize,
		candidates:  deadEnds,
	}
	if g.maxAttempts <= 0 {
		g.maxAttempts = DefaultMaxAttempts
	}
	if g.sampleSize < 2 {
		g.sampleSize = DefaultSampleSize
	}
	return g
}

// Generate builds a size×size perfect maze with Start and End marked.
// The endpoints are a far-apart pair among a bounded sample of dead ends,
// not necessarily the farthest pair in the maze.
func (g *Generator) Generate(size int) (Result, error) {
	if size < MinSize {
		return Result{}, ErrSizeTooSmall
	}
	if size%2 == 0 {
		return Result{}, ErrEvenSize
	}

	field := navigation.NewField(size, size)

	for attempt := 0; attempt < g.maxAttempts; attempt++ {
		grid := NewGrid(size)
		carve(grid, Point{(size / 2) | 1, (size / 2) | 1}, g.rng)

		candidates := g.candidates(grid)
		if len(candidates) < 2 {
			continue
		}
		shuffle(candidates, g.rng)

		start, end := g.selectEndpoints(grid, candidates, field)
		grid.Set(start, Start)
		grid.Set(end, End)

		field.Compute(start.X, start.Y, grid.Blocked)
		return Result{
			Grid:       grid,
			Start:      start,
			End:        end,
			PathLength: field.Distance(end.X, end.Y),
			Path:       pathTo(field, end),
		}, nil
	}

	return Result{}, &GenerationError{Size: size, Attempts: g.maxAttempts}
}

// --- Core Algorithms ---

// carve runs a recursive backtracker with an explicit stack on the odd lattice.
// Produces a spanning tree over lattice cells, border stays wall.
func carve(grid Grid, start Point, rng *rand.Rand) {
	size := grid.Size()

	stack := []Point{start}
	grid.Set(start, Passage)

	dirs := [4]Point{{0, -2}, {0, 2}, {-2, 0}, {2, 0}}
	candidates := make([]Point, 0, 4)

	for len(stack) > 0 {
		curr := stack[len(stack)-1]
		candidates = candidates[:0]

		for _, d := range dirs {
			next := curr.Add(d)
			// Leave 1 cell border for walls
			if next.X > 0 && next.X < size-1 && next.Y > 0 && next.Y < size-1 {
				if grid.At(next) == Wall {
					candidates = append(candidates, d)
				}
			}
		}

		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		d := candidates[rng.Intn(len(candidates))]
		next := curr.Add(d)
		grid.Set(Point{curr.X + d.X/2, curr.Y + d.Y/2}, Passage)
		grid.Set(next, Passage)
		stack = append(stack, next)
	}
}

// deadEnds returns passages with exactly one open neighbor, in row-major order
func deadEnds(grid Grid) []Point {
	var points []Point
	for y := range grid {
		for x := range grid[y] {
			p := Point{x, y}
			if grid.At(p) == Passage && grid.OpenNeighbors(p) == 1 {
				points = append(points, p)
			}
		}
	}
	return points
}

// shuffle is an in-place Fisher–Yates permutation
func shuffle(points []Point, rng *rand.Rand) {
	for i := len(points) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		points[i], points[j] = points[j], points[i]
	}
}

// selectEndpoints compares the first sampleSize candidates pairwise by BFS
// path length and returns the longest pair, or the first two if none connect.
func (g *Generator) selectEndpoints(grid Grid, candidates []Point, field *navigation.Field) (Point, Point) {
	k := min(len(candidates), g.sampleSize)

	start, end := candidates[0], candidates[1]
	best := navigation.Unreached

	// One BFS per source covers every later partner
	for i := 0; i < k-1; i++ {
		p1 := candidates[i]
		field.Compute(p1.X, p1.Y, grid.Blocked)
		for j := i + 1; j < k; j++ {
			p2 := candidates[j]
			if d := field.Distance(p2.X, p2.Y); d > best {
				best = d
				start, end = p1, p2
			}
		}
	}

	return start, end
}

func pathTo(field *navigation.Field, end Point) []Point {
	cells := field.PathFrom(end.X, end.Y)
	path := make([]Point, len(cells))
	// PathFrom walks toward the source, reverse to read Start to End
	for i, c := range cells {
		path[len(cells)-1-i] = Point{c[0], c[1]}
	}
	return path
}
