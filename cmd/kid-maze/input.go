package main

import (
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/kid-maze/game"
)

// Letter keys map to directions alongside arrows: vi keys and WASD
var runeDirections = map[rune]game.Direction{
	'k': game.Up, 'w': game.Up,
	'j': game.Down, 's': game.Down,
	'h': game.Left, 'a': game.Left,
	'l': game.Right, 'd': game.Right,
}

var keyDirections = map[tcell.Key]game.Direction{
	tcell.KeyUp:    game.Up,
	tcell.KeyDown:  game.Down,
	tcell.KeyLeft:  game.Left,
	tcell.KeyRight: game.Right,
}

// Largest maze reachable with the size keys; the lattice steps by 2
const (
	maxMazeSize  = 41
	mazeSizeStep = 2
)

// InputHandler translates terminal events into session actions
type InputHandler struct {
	session *game.Session
}

func NewInputHandler(session *game.Session) *InputHandler {
	return &InputHandler{session: session}
}

// HandleEvent applies ev and returns false when the game should exit
func (h *InputHandler) HandleEvent(ev tcell.Event) bool {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return true
	}

	switch key.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyRune:
		return h.handleRune(key.Rune())
	}

	if dir, ok := keyDirections[key.Key()]; ok {
		h.session.Move(dir)
	}
	return true
}

func (h *InputHandler) handleRune(r rune) bool {
	if dir, ok := runeDirections[r]; ok {
		h.session.Move(dir)
		return true
	}

	switch r {
	case 'q', 'Q':
		return false
	case 'n', 'N':
		if err := h.session.Reset(); err != nil {
			// Current maze stays playable
			log.Printf("[MAZE] new maze failed: %v", err)
		}
	case '+', '=':
		h.resize(mazeSizeStep)
	case '-', '_':
		h.resize(-mazeSizeStep)
	case 'f', 'F':
		on := h.session.ToggleFog()
		log.Printf("[GAME] fog toggled, enabled=%v", on)
	case '?':
		h.session.Hint()
	}
	return true
}

func (h *InputHandler) resize(delta int) {
	size := h.session.Size() + delta
	if size > maxMazeSize {
		return
	}
	if err := h.session.SetSize(size); err != nil {
		log.Printf("[MAZE] size %d rejected: %v", size, err)
		return
	}
	log.Printf("[GAME] maze size now %d", size)
}
