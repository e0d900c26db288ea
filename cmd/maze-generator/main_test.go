package main

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/kid-maze/maze"
)

func runScript(t *testing.T, input string) string {
	t.Helper()
	log.SetOutput(io.Discard)
	var out bytes.Buffer
	require.NoError(t, run(bufio.NewReader(strings.NewReader(input)), &out))
	return out.String()
}

// failingWriter rejects every write
type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) { return 0, errors.New("disk full") }

func TestRunDrawsMaze(t *testing.T) {
	out := runScript(t, "9\n42\n\nn\n")

	assert.Contains(t, out, "Grid Dimensions: 9x9")
	assert.Contains(t, out, "Solution Path Length:")

	var grid []string
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "█") {
			grid = append(grid, line)
		}
	}
	assert.Len(t, grid, 9)
	joined := strings.Join(grid, "\n")
	assert.Equal(t, 1, strings.Count(joined, "S"), "one start marker")
	assert.Equal(t, 1, strings.Count(joined, "E"), "one end marker")
	assert.Contains(t, joined, "•")
}

func TestRunDefaultsOnBlankInput(t *testing.T) {
	out := runScript(t, "\n7\n\nn\n")
	assert.Contains(t, out, "Grid Dimensions: 15x15")
}

func TestRunReportsInvalidSize(t *testing.T) {
	out := runScript(t, "8\n1\n\nn\n")
	assert.Contains(t, out, "Error:")
	assert.NotContains(t, out, "Grid Dimensions")
}

func TestRunRepeatsUntilDeclined(t *testing.T) {
	out := runScript(t, "5\n1\n\ny\n7\n2\n\nn\n")
	assert.Equal(t, 2, strings.Count(out, "=== KID MAZE GENERATOR ==="))
}

func TestRunStopsAtEOF(t *testing.T) {
	out := runScript(t, "5\n1\n\n")
	assert.Equal(t, 1, strings.Count(out, "=== KID MAZE GENERATOR ==="))
}

func TestRunReportsFarthestCell(t *testing.T) {
	out := runScript(t, "11\n5\n\nn\n")

	var pathLen, fx, fy, fd int
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "Solution Path Length:") {
			_, err := fmt.Sscanf(line, "Solution Path Length: %d steps", &pathLen)
			require.NoError(t, err)
		}
		if strings.HasPrefix(line, "Farthest Cell From Start:") {
			_, err := fmt.Sscanf(line, "Farthest Cell From Start: (%d, %d) at %d steps", &fx, &fy, &fd)
			require.NoError(t, err)
		}
	}
	require.Positive(t, pathLen)
	assert.GreaterOrEqual(t, fd, pathLen, "no cell is closer than the end would allow")
	assert.True(t, maze.NewGrid(11).InBounds(maze.Point{X: fx, Y: fy}))
}

func TestRunReturnsWriteError(t *testing.T) {
	err := run(bufio.NewReader(strings.NewReader("9\n1\n\nn\n")), failingWriter{})
	assert.EqualError(t, err, "disk full")
}
