package service

import (
	"errors"
	"fmt"

	"github.com/beka-birhanu/invisible-maze/maze"
	"github.com/google/uuid"
)

// Game-related errors.
var (
	ErrNoGame             = errors.New("no game has been started")
	ErrInvalidDifficulty  = errors.New("invalid difficulty")
	ErrInvalidConfig      = errors.New("invalid configuration")
	ErrInvalidPlayerStart = errors.New("placement is out of the maze")
)

// Game is one maze attempt: the maze, its spawn and goal, the shared player
// token, and which walls have been struck. It is discarded when the game ends.
type Game struct {
	id        uuid.UUID      // Identity used to discard stale countdown ticks.
	maze      *maze.Maze     // The maze structure.
	placement maze.Placement // Spawn and goal.
	player    maze.Position  // Current token position.
	hits      [][][4]bool    // hits[y][x][d] is set once the wall is struck.
	visible   [][]bool       // visible[y][x] is set once any wall of the cell is struck.
}

// NewGame creates a Game on m with the token at the placement's start.
func NewGame(m *maze.Maze, p maze.Placement) (*Game, error) {
	if !m.InBound(p.Start.X, p.Start.Y) || !m.InBound(p.Goal.X, p.Goal.Y) {
		return nil, fmt.Errorf("%w: start %s goal %s", ErrInvalidPlayerStart, p.Start, p.Goal)
	}

	hits := make([][][4]bool, m.Height())
	visible := make([][]bool, m.Height())
	for y := range hits {
		hits[y] = make([][4]bool, m.Width())
		visible[y] = make([]bool, m.Width())
	}

	return &Game{
		id:        uuid.New(),
		maze:      m,
		placement: p,
		player:    p.Start,
		hits:      hits,
		visible:   visible,
	}, nil
}

// ID returns the game instance identity.
func (g *Game) ID() uuid.UUID {
	return g.id
}

// Maze returns the maze being played.
func (g *Game) Maze() *maze.Maze {
	return g.maze
}

// Start returns the spawn point the token resets to.
func (g *Game) Start() maze.Position {
	return g.placement.Start
}

// Goal returns the goal cell.
func (g *Game) Goal() maze.Position {
	return g.placement.Goal
}

// Player returns the token position.
func (g *Game) Player() maze.Position {
	return g.player
}

// BestEffort reports whether the placement missed the distance constraint.
func (g *Game) BestEffort() bool {
	return g.placement.BestEffort
}

// IsHit reports whether the wall of (x, y) facing d has been struck.
func (g *Game) IsHit(x, y int, d maze.Direction) (bool, error) {
	if !g.maze.InBound(x, y) {
		return false, fmt.Errorf("%w: (%d,%d)", maze.ErrOutOfBounds, x, y)
	}
	if !d.Valid() {
		return false, fmt.Errorf("%w: %d", maze.ErrInvalidDirection, int(d))
	}
	return g.hits[y][x][d], nil
}

// IsVisible reports whether the walls of (x, y) stay drawn once walls turn invisible.
func (g *Game) IsVisible(x, y int) (bool, error) {
	if !g.maze.InBound(x, y) {
		return false, fmt.Errorf("%w: (%d,%d)", maze.ErrOutOfBounds, x, y)
	}
	return g.visible[y][x], nil
}

// struck reports whether the physical wall between p and its neighbour in d
// was hit from either side.
func (g *Game) struck(p maze.Position, d maze.Direction) bool {
	if g.hits[p.Y][p.X][d] {
		return true
	}
	n := p.Step(d)
	return g.maze.InBound(n.X, n.Y) && g.hits[n.Y][n.X][d.Opposite()]
}

func (g *Game) markHit(p maze.Position, d maze.Direction) {
	g.hits[p.Y][p.X][d] = true
	g.visible[p.Y][p.X] = true
}

func (g *Game) resetPlayer() {
	g.player = g.placement.Start
}

func (g *Game) atGoal() bool {
	return g.player == g.placement.Goal
}
