package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/lixenwraith/kid-maze/maze"
	"github.com/lixenwraith/kid-maze/navigation"
)

func main() {
	if err := run(bufio.NewReader(os.Stdin), os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Output failed: %v\n", err)
		os.Exit(1)
	}
}

// run prompts for maze parameters until the user declines another round.
// Returns only output errors; generation errors are reported inline.
func run(r *bufio.Reader, w io.Writer) error {
	for {
		fmt.Fprintln(w, "\n=== KID MAZE GENERATOR ===")

		size := getInt(r, w, "Size [odd, >= 5] (default 15): ", 15)
		seed := getInt64(r, w, "Seed [0 = random] (default 0): ", 0)
		sample := getInt(r, w, fmt.Sprintf("Endpoint sample size (default %d): ", maze.DefaultSampleSize), maze.DefaultSampleSize)

		gen := maze.New(maze.Config{Seed: seed, SampleSize: sample})

		fmt.Fprintln(w, "\nGenerating...")
		startT := time.Now()
		res, err := gen.Generate(size)
		dur := time.Since(startT)

		var genErr *maze.GenerationError
		switch {
		case errors.As(err, &genErr):
			fmt.Fprintf(w, "Status: no valid maze after %d attempts\n", genErr.Attempts)
		case err != nil:
			fmt.Fprintf(w, "Error: %v\n", err)
		default:
			fmt.Fprintf(w, "Done in %v\n", dur)
			fmt.Fprintf(w, "Grid Dimensions: %dx%d\n", res.Grid.Size(), res.Grid.Size())
			fmt.Fprintf(w, "Solution Path Length: %d steps\n", res.PathLength)
			fx, fy, fd := farthestFrom(res)
			fmt.Fprintf(w, "Farthest Cell From Start: (%d, %d) at %d steps\n", fx, fy, fd)
			if err := draw(w, res); err != nil {
				return err
			}
		}

		fmt.Fprint(w, "\nGenerate another? [Y/n]: ")
		cont, readErr := r.ReadString('\n')
		if readErr != nil || strings.ToLower(strings.TrimSpace(cont)) == "n" {
			return nil
		}
	}
}

// farthestFrom reports the cell deepest in the maze as seen from Start
func farthestFrom(res maze.Result) (x, y, dist int) {
	size := res.Grid.Size()
	field := navigation.NewField(size, size)
	field.Compute(res.Start.X, res.Start.Y, res.Grid.Blocked)
	return field.Farthest()
}

func draw(w io.Writer, res maze.Result) error {
	pathMap := make(map[maze.Point]bool, len(res.Path))
	for _, p := range res.Path {
		pathMap[p] = true
	}

	var sb strings.Builder
	for y, row := range res.Grid {
		for x, cell := range row {
			p := maze.Point{X: x, Y: y}

			switch {
			case p == res.Start:
				sb.WriteString("S")
			case p == res.End:
				sb.WriteString("E")
			case cell == maze.Wall:
				sb.WriteString("█")
			case pathMap[p]:
				sb.WriteString("•")
			default:
				sb.WriteString(" ")
			}
		}
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// --- Input Helpers ---

func getInt(r *bufio.Reader, w io.Writer, prompt string, def int) int {
	return int(getInt64(r, w, prompt, int64(def)))
}

func getInt64(r *bufio.Reader, w io.Writer, prompt string, def int64) int64 {
	fmt.Fprint(w, prompt)
	s, _ := r.ReadString('\n')
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return def
	}
	return v
}
