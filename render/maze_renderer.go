package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/kid-maze/game"
	"github.com/lixenwraith/kid-maze/maze"
)

const (
	// CellWidth is the terminal columns per maze cell, keeps cells roughly square
	CellWidth = 2

	titleY  = 0
	statusY = 1
	gridY   = 3
	gridX   = 2
)

// Two-column glyphs per cell kind
var (
	glyphWall    = [CellWidth]rune{'█', '█'}
	glyphPassage = [CellWidth]rune{' ', ' '}
	glyphFog     = [CellWidth]rune{'░', '░'}
	glyphPlayer  = [CellWidth]rune{'(', ')'}
	glyphEnd     = [CellWidth]rune{'[', ']'}
	glyphStart   = [CellWidth]rune{'.', '.'}
	glyphHint    = [CellWidth]rune{'<', '>'}
)

const (
	Title     = "Maze Adventure"
	HelpLine  = "arrows/hjkl move  n new maze  +/- size  f fog  ? hint  q quit"
	WinLine   = "You solved the maze!"
	SmallLine = "Terminal too small, please enlarge"
)

// MazeRenderer draws a game view onto a tcell screen.
// Output depends only on the view and screen size.
type MazeRenderer struct{}

// NewMazeRenderer creates a renderer
func NewMazeRenderer() *MazeRenderer {
	return &MazeRenderer{}
}

// RequiredSize returns the minimum screen dimensions for a maze of side n
func RequiredSize(n int) (width, height int) {
	width = max(gridX+n*CellWidth+gridX, len(HelpLine)+gridX)
	// Grid, blank, help, blank, three win lines
	height = gridY + n + 6
	return width, height
}

// Draw renders v and shows the frame
func (r *MazeRenderer) Draw(screen tcell.Screen, v game.View) {
	screen.Clear()
	w, h := screen.Size()
	fill(screen, w, h)

	needW, needH := RequiredSize(v.Grid.Size())
	if w < needW || h < needH {
		drawText(screen, 0, 0, StyleTitle, SmallLine)
		screen.Show()
		return
	}

	drawText(screen, gridX, titleY, StyleTitle, Title)
	drawText(screen, gridX, statusY, StyleStatus, StatusLine(v))

	r.drawGrid(screen, v)

	y := gridY + v.Grid.Size() + 1
	drawText(screen, gridX, y, StyleStatus, HelpLine)

	if v.Won {
		y += 2
		drawText(screen, gridX, y, StyleWin, WinLine)
		drawText(screen, gridX, y+1, StyleWin, fmt.Sprintf("Total time: %s", game.FormatElapsed(v.Elapsed)))
		drawText(screen, gridX, y+2, StyleWin, fmt.Sprintf("Moves: %d (shortest %d)", v.Moves, v.Optimal))
	}

	screen.Show()
}

// StatusLine formats counters shown above the maze
func StatusLine(v game.View) string {
	fog := "off"
	if v.Fog.Enabled {
		fog = "on"
	}
	line := fmt.Sprintf("Moves: %d  Time: %s  Fog: %s", v.Moves, game.FormatElapsed(v.Elapsed), fog)
	if v.Hints > 0 {
		line += fmt.Sprintf("  Hints: %d", v.Hints)
		// Distance is only revealed once the player has asked for help
		if !v.Won {
			line += fmt.Sprintf("  Steps left: %d", v.Remaining)
		}
	}
	return line
}

func (r *MazeRenderer) drawGrid(screen tcell.Screen, v game.View) {
	for y, row := range v.Grid {
		for x := range row {
			glyph, style := cellAppearance(v, maze.Point{X: x, Y: y})
			sx := gridX + x*CellWidth
			for i, ch := range glyph {
				screen.SetContent(sx+i, gridY+y, ch, nil, style)
			}
		}
	}
}

// cellAppearance resolves what a single cell looks like; the player wins over fog
func cellAppearance(v game.View, p maze.Point) ([CellWidth]rune, tcell.Style) {
	if p == v.Player {
		return glyphPlayer, StylePlayer
	}
	if !v.Visible(p) {
		return glyphFog, StyleFog
	}
	if v.Hint != nil && *v.Hint == p {
		return glyphHint, StyleHint
	}

	switch v.Grid.At(p) {
	case maze.Wall:
		return glyphWall, StyleWall
	case maze.End:
		return glyphEnd, StyleEnd
	case maze.Start:
		return glyphStart, StyleStart
	}
	return glyphPassage, StylePassage
}

func fill(screen tcell.Screen, w, h int) {
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			screen.SetContent(x, y, ' ', nil, StyleDefault)
		}
	}
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, ch := range []rune(text) {
		screen.SetContent(x+i, y, ch, nil, style)
	}
}
