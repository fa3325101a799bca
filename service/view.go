package service

import (
	"github.com/beka-birhanu/invisible-maze/maze"
	"github.com/google/uuid"
)

// Status returns the match-level state.
func (m *Match) Status() Status { return m.status }

// Mode returns whether the match is a duel or a practice run.
func (m *Match) Mode() Mode { return m.mode }

// Round returns the current round, starting at 1.
func (m *Match) Round() int { return m.round }

// Games returns the number of completed games in the match.
func (m *Match) Games() int { return m.games }

// Attempts returns the attempt number within the current game.
func (m *Match) Attempts() int { return m.attempts }

// Difficulty returns the current maze tier.
func (m *Match) Difficulty() Difficulty { return m.difficulty }

// Turn returns the player controlling the token.
func (m *Match) Turn() Player { return m.turn }

// Phase returns the reveal phase of the current game.
func (m *Match) Phase() Phase { return m.reveal.Phase() }

// CanMove reports whether a move would be applied right now.
func (m *Match) CanMove() bool { return m.status == StatusInProgress && m.reveal.CanMove() }

// Game returns the current game, or nil when none has been started.
func (m *Match) Game() *Game {
	return m.game
}

// Hearts returns the hearts left for p.
func (m *Match) Hearts(p Player) int {
	if p != PlayerA && p != PlayerB {
		return 0
	}
	return m.hearts[p]
}

// Wins returns the win tally of p.
func (m *Match) Wins(p Player) int {
	if p != PlayerA && p != PlayerB {
		return 0
	}
	return m.wins[p]
}

// WallView tells a renderer how to draw the wall of (x, y) facing d under the
// current reveal phase and override.
func (m *Match) WallView(x, y int, d maze.Direction) (WallView, error) {
	if m.game == nil {
		return WallNone, ErrNoGame
	}
	wall, err := m.game.maze.IsWall(x, y, d)
	if err != nil {
		return WallNone, err
	}
	switch {
	case !wall:
		return WallNone, nil
	case m.game.struck(maze.Position{X: x, Y: y}, d):
		return WallHit, nil
	case m.reveal.WallsVisible():
		return WallShown, nil
	default:
		return WallHidden, nil
	}
}

// Snapshot is a point-in-time copy of everything a renderer or status panel reads.
type Snapshot struct {
	Status     Status
	Mode       Mode
	Phase      Phase
	Round      int
	Games      int
	Attempts   int
	Difficulty Difficulty
	Turn       Player
	Hearts     [2]int
	Wins       [2]int
	Remaining  int  // Countdown seconds left.
	Override   bool // Manual visibility override.
	CanMove    bool

	GameID         uuid.UUID
	Maze           *maze.Maze // Read-only; nil before the first game.
	Player         maze.Position
	Start          maze.Position
	Goal           maze.Position
	MarkersVisible bool
	Walls          [][][4]WallView // Walls[y][x][d]
}

// Snapshot copies the current match state.
func (m *Match) Snapshot() Snapshot {
	s := Snapshot{
		Status:     m.status,
		Mode:       m.mode,
		Phase:      m.reveal.Phase(),
		Round:      m.round,
		Games:      m.games,
		Attempts:   m.attempts,
		Difficulty: m.difficulty,
		Turn:       m.turn,
		Hearts:     m.hearts,
		Wins:       m.wins,
		Remaining:  m.reveal.Remaining(),
		Override:   m.reveal.Override(),
		CanMove:    m.CanMove(),
	}
	if m.game == nil {
		return s
	}

	g := m.game
	s.GameID = g.ID()
	s.Maze = g.Maze()
	s.Player = g.Player()
	s.Start = g.Start()
	s.Goal = g.Goal()
	s.MarkersVisible = m.reveal.MarkersVisible()
	s.Walls = make([][][4]WallView, g.maze.Height())
	for y := range s.Walls {
		s.Walls[y] = make([][4]WallView, g.maze.Width())
		for x := range s.Walls[y] {
			for _, d := range maze.Directions {
				s.Walls[y][x][d], _ = m.WallView(x, y, d)
			}
		}
	}
	return s
}
