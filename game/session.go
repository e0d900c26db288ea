package game

import (
	"fmt"
	"log"
	"time"

	"github.com/lixenwraith/kid-maze/maze"
	"github.com/lixenwraith/kid-maze/navigation"
)

// Direction is a single-cell player move
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

var directionDeltas = [4]maze.Point{
	Up:    {X: 0, Y: -1},
	Down:  {X: 0, Y: 1},
	Left:  {X: -1, Y: 0},
	Right: {X: 1, Y: 0},
}

// Delta returns the unit offset for d
func (d Direction) Delta() maze.Point {
	return directionDeltas[d]
}

// MoveOutcome reports what a Move did
type MoveOutcome uint8

const (
	MoveOK      MoveOutcome = iota // Player stepped onto a passage
	MoveBlocked                    // Wall or grid edge, nothing changed
	MoveWon                        // Player reached the end cell
	MoveIgnored                    // Game already won
)

// MazeSource produces finished mazes, satisfied by *maze.Generator
type MazeSource interface {
	Generate(size int) (maze.Result, error)
}

// Sounds receives feedback cues, all methods must be non-blocking
type Sounds interface {
	Step()
	Bump()
	Victory()
}

type Options struct {
	Size   int
	Fog    Fog
	Clock  Clock  // nil = TimeProvider
	Sounds Sounds // nil = silent
}

// Session is one player working through a sequence of mazes
type Session struct {
	source MazeSource
	size   int
	fog    Fog
	clock  Clock
	sounds Sounds

	maze   maze.Result
	player maze.Point
	moves  int
	hints  int
	won    bool

	// Clock starts on the first accepted move and freezes on victory
	started   bool
	startedAt time.Time
	frozen    time.Duration

	hintField *navigation.FieldCache
	hintCell  *maze.Point
}

// NewSession builds a session and generates its first maze
func NewSession(source MazeSource, opts Options) (*Session, error) {
	if opts.Clock == nil {
		opts.Clock = TimeProvider{}
	}
	s := &Session{
		source: source,
		size:   opts.Size,
		fog:    opts.Fog,
		clock:  opts.Clock,
		sounds: opts.Sounds,
	}
	if err := s.Reset(); err != nil {
		return nil, err
	}
	return s, nil
}

// Reset replaces the maze and clears counters, fog setting is kept
func (s *Session) Reset() error {
	res, err := s.source.Generate(s.size)
	if err != nil {
		return fmt.Errorf("new maze: %w", err)
	}
	log.Printf("[MAZE] generated size=%d start=%v end=%v path=%d", s.size, res.Start, res.End, res.PathLength)

	s.maze = res
	s.player = res.Start
	s.moves = 0
	s.hints = 0
	s.won = false
	s.started = false
	s.frozen = 0
	s.hintCell = nil

	switch {
	case s.hintField == nil:
		s.hintField = navigation.NewFieldCache(s.size, s.size)
	case s.hintField.Field.Width != s.size:
		s.hintField.Resize(s.size, s.size)
	default:
		s.hintField.MarkDirty()
	}
	return nil
}

// SetSize switches to a new maze of side size. On error the current maze and size are kept.
func (s *Session) SetSize(size int) error {
	prev := s.size
	s.size = size
	if err := s.Reset(); err != nil {
		s.size = prev
		return err
	}
	return nil
}

// Size is the side length of mazes this session generates
func (s *Session) Size() int { return s.size }

// Move steps the player one cell in dir
func (s *Session) Move(dir Direction) MoveOutcome {
	if s.won {
		return MoveIgnored
	}

	next := s.player.Add(dir.Delta())
	if !s.maze.Grid.Passable(next) {
		s.cue(Sounds.Bump)
		return MoveBlocked
	}

	if !s.started {
		s.started = true
		s.startedAt = s.clock.Now()
	}
	s.player = next
	s.moves++
	s.hintCell = nil

	if next == s.maze.End {
		s.won = true
		s.frozen = s.clock.Now().Sub(s.startedAt)
		log.Printf("[MAZE] solved moves=%d optimal=%d time=%s hints=%d", s.moves, s.maze.PathLength, FormatElapsed(s.frozen), s.hints)
		s.cue(Sounds.Victory)
		return MoveWon
	}

	s.cue(Sounds.Step)
	return MoveOK
}

func (s *Session) cue(play func(Sounds)) {
	if s.sounds != nil {
		play(s.sounds)
	}
}

// Hint marks the next cell on the shortest route to the end.
// Returns false once the game is won.
func (s *Session) Hint() (maze.Point, bool) {
	if s.won {
		return maze.Point{}, false
	}
	end := s.maze.End
	s.hintField.Update(end.X, end.Y, s.maze.Grid.Blocked)

	x, y, ok := s.hintField.Next(s.player.X, s.player.Y)
	if !ok {
		return maze.Point{}, false
	}
	p := maze.Point{X: x, Y: y}
	s.hintCell = &p
	s.hints++
	return p, true
}

// RemainingSteps is the shortest distance from the player to the end
func (s *Session) RemainingSteps() int {
	end := s.maze.End
	s.hintField.Update(end.X, end.Y, s.maze.Grid.Blocked)
	return s.hintField.Distance(s.player.X, s.player.Y)
}

// ToggleFog flips fog of war without resetting progress
func (s *Session) ToggleFog() bool {
	s.fog.Enabled = !s.fog.Enabled
	return s.fog.Enabled
}

// Visible reports whether cell p is revealed to the player
func (s *Session) Visible(p maze.Point) bool {
	return s.View().Visible(p)
}

// Elapsed is play time since the first move, frozen at victory
func (s *Session) Elapsed() time.Duration {
	switch {
	case !s.started:
		return 0
	case s.won:
		return s.frozen
	}
	return s.clock.Now().Sub(s.startedAt)
}

func (s *Session) Player() maze.Point { return s.player }
func (s *Session) Moves() int         { return s.moves }
func (s *Session) Won() bool          { return s.won }
func (s *Session) Maze() maze.Result  { return s.maze }
func (s *Session) Fog() Fog           { return s.fog }

// View is a snapshot handed to the renderer, Grid is shared with the session
type View struct {
	Grid    maze.Grid
	Player  maze.Point
	End     maze.Point
	Fog     Fog
	Moves   int
	Hints   int
	Optimal int
	Elapsed time.Duration
	Won     bool
	Hint    *maze.Point

	// Remaining is the shortest distance left to the end
	Remaining int
}

// View snapshots the session for drawing
func (s *Session) View() View {
	v := View{
		Grid:    s.maze.Grid,
		Player:  s.player,
		End:     s.maze.End,
		Fog:     s.fog,
		Moves:   s.moves,
		Hints:   s.hints,
		Optimal: s.maze.PathLength,
		Elapsed: s.Elapsed(),
		Won:     s.won,

		Remaining: s.RemainingSteps(),
	}
	if s.hintCell != nil {
		h := *s.hintCell
		v.Hint = &h
	}
	return v
}

// Visible applies fog of war: the end cell is always revealed
func (v View) Visible(p maze.Point) bool {
	if !v.Fog.Enabled || p == v.End {
		return true
	}
	return v.Fog.Within(v.Player, p)
}
