package main

import (
	"io"
	"log"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/kid-maze/game"
	"github.com/lixenwraith/kid-maze/maze"
)

func newTestHandler(t *testing.T) (*InputHandler, *game.Session) {
	t.Helper()
	log.SetOutput(io.Discard)

	s, err := game.NewSession(maze.New(maze.Config{Seed: 11}), game.Options{
		Size: 15,
		Fog:  game.Fog{Enabled: true, Radius: game.DefaultFogRadius},
	})
	require.NoError(t, err)
	return NewInputHandler(s), s
}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

// openDirection finds a direction the player can walk from its current cell
func openDirection(t *testing.T, s *game.Session) game.Direction {
	t.Helper()
	for _, d := range []game.Direction{game.Up, game.Down, game.Left, game.Right} {
		if s.Maze().Grid.Passable(s.Player().Add(d.Delta())) {
			return d
		}
	}
	t.Fatal("start cell has no open neighbor")
	return game.Up
}

func TestHandleEventQuit(t *testing.T) {
	h, _ := newTestHandler(t)

	assert.False(t, h.HandleEvent(runeKey('q')))
	assert.False(t, h.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
	assert.False(t, h.HandleEvent(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModNone)))
}

func TestHandleEventArrowMoves(t *testing.T) {
	h, s := newTestHandler(t)
	dir := openDirection(t, s)
	keys := map[game.Direction]tcell.Key{
		game.Up: tcell.KeyUp, game.Down: tcell.KeyDown,
		game.Left: tcell.KeyLeft, game.Right: tcell.KeyRight,
	}
	start := s.Player()

	assert.True(t, h.HandleEvent(tcell.NewEventKey(keys[dir], 0, tcell.ModNone)))
	assert.Equal(t, start.Add(dir.Delta()), s.Player())
	assert.Equal(t, 1, s.Moves())
}

func TestHandleEventLetterMoves(t *testing.T) {
	h, s := newTestHandler(t)
	dir := openDirection(t, s)
	vi := map[game.Direction]rune{game.Up: 'k', game.Down: 'j', game.Left: 'h', game.Right: 'l'}
	wasd := map[game.Direction]rune{game.Up: 'w', game.Down: 's', game.Left: 'a', game.Right: 'd'}
	start := s.Player()

	h.HandleEvent(runeKey(vi[dir]))
	assert.Equal(t, start.Add(dir.Delta()), s.Player())

	// Step back the opposite way with WASD
	back := map[game.Direction]game.Direction{game.Up: game.Down, game.Down: game.Up, game.Left: game.Right, game.Right: game.Left}
	h.HandleEvent(runeKey(wasd[back[dir]]))
	assert.Equal(t, start, s.Player())
	assert.Equal(t, 2, s.Moves())
}

func TestHandleEventNewMaze(t *testing.T) {
	h, s := newTestHandler(t)
	h.HandleEvent(runeKey(map[game.Direction]rune{game.Up: 'k', game.Down: 'j', game.Left: 'h', game.Right: 'l'}[openDirection(t, s)]))
	require.Equal(t, 1, s.Moves())

	assert.True(t, h.HandleEvent(runeKey('n')))
	assert.Equal(t, 0, s.Moves())
	assert.Equal(t, s.Maze().Start, s.Player())
}

func TestHandleEventFogAndHint(t *testing.T) {
	h, s := newTestHandler(t)

	h.HandleEvent(runeKey('f'))
	assert.False(t, s.Fog().Enabled)
	h.HandleEvent(runeKey('f'))
	assert.True(t, s.Fog().Enabled)

	h.HandleEvent(runeKey('?'))
	v := s.View()
	require.NotNil(t, v.Hint)
	assert.Equal(t, 1, v.Hints)
}

func TestHandleEventIgnoresOtherEvents(t *testing.T) {
	h, s := newTestHandler(t)
	assert.True(t, h.HandleEvent(tcell.NewEventResize(80, 24)))
	assert.True(t, h.HandleEvent(runeKey('z')))
	assert.Equal(t, 0, s.Moves())
}

func TestHandleEventMazeSize(t *testing.T) {
	h, s := newTestHandler(t)

	h.HandleEvent(runeKey('+'))
	assert.Equal(t, 17, s.Size())
	assert.Equal(t, 17, s.Maze().Grid.Size())

	h.HandleEvent(runeKey('-'))
	h.HandleEvent(runeKey('-'))
	assert.Equal(t, 13, s.Size())
	assert.Equal(t, 13, s.Maze().Grid.Size())
}

func TestHandleEventMazeSizeBounds(t *testing.T) {
	h, s := newTestHandler(t)

	for i := 0; i < 10; i++ {
		h.HandleEvent(runeKey('-'))
	}
	assert.Equal(t, maze.MinSize, s.Size(), "shrinking stops at the minimum")
	assert.Equal(t, maze.MinSize, s.Maze().Grid.Size())

	for i := 0; i < 30; i++ {
		h.HandleEvent(runeKey('='))
	}
	assert.Equal(t, maxMazeSize, s.Size())
}
