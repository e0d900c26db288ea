package game

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/kid-maze/maze"
)

// Metric selects the distance used for the fog radius
type Metric uint8

const (
	Chebyshev Metric = iota // Square window, radius 2 reveals 5x5
	Manhattan               // Diamond window
)

func (m Metric) String() string {
	switch m {
	case Chebyshev:
		return "chebyshev"
	case Manhattan:
		return "manhattan"
	}
	return fmt.Sprintf("metric(%d)", uint8(m))
}

// ParseMetric accepts "chebyshev" or "manhattan", case-insensitive
func ParseMetric(s string) (Metric, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "chebyshev", "":
		return Chebyshev, nil
	case "manhattan":
		return Manhattan, nil
	}
	return 0, fmt.Errorf("unknown fog metric %q", s)
}

// DefaultFogRadius matches a 5x5 window around the player
const DefaultFogRadius = 2

// Fog restricts which cells are revealed around the player
type Fog struct {
	Enabled bool
	Radius  int
	Metric  Metric
}

// Distance between a and b under the fog metric
func (f Fog) Distance(a, b maze.Point) int {
	dx := abs(a.X - b.X)
	dy := abs(a.Y - b.Y)
	if f.Metric == Manhattan {
		return dx + dy
	}
	return max(dx, dy)
}

// Within reports whether cell lies inside the radius around player
func (f Fog) Within(player, cell maze.Point) bool {
	return f.Distance(player, cell) <= f.Radius
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
