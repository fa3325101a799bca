/*
Package maze provides rectangular perfect mazes for the invisible maze duel.

A Maze is a grid of cells, each carrying four wall flags keyed by Direction.
Mazes are carved with a randomized depth-first walk (recursive backtracker),
so the open passages always form a spanning tree over every cell. Once
generated a Maze is read-only.

The package also samples start/goal placements that keep a minimum
per-axis distance and renders mazes as ASCII for terminal front-ends.
*/
package maze

import (
	"errors"
	"fmt"
	"strings"

	"github.com/zyedidia/generic/mapset"
)

// Maze-related errors.
var (
	ErrOutOfBounds            = errors.New("coordinates out of bounds")
	ErrInvalidDimensions      = errors.New("invalid maze dimensions")
	ErrInvalidDirection       = errors.New("invalid direction")
	ErrPlacementUnsatisfiable = errors.New("placement distance constraint unsatisfiable")
	ErrInvalidLayout          = errors.New("invalid maze layout") // Parse input is not a rendered maze.
)

// Cell holds the wall flags of a single maze cell.
type Cell struct {
	Walls [4]bool // Walls is indexed by Direction; true means the wall is present.
}

// Wall reports whether the wall facing d is present.
func (c Cell) Wall(d Direction) bool {
	return c.Walls[d]
}

// Position is a cell coordinate, 0-indexed from the top-left corner.
type Position struct {
	X int
	Y int
}

// Step returns the position one unit away in direction d.
func (p Position) Step(d Direction) Position {
	dx, dy := d.Delta()
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// String formats p as (x,y).
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Maze is a rectangular grid of cells.
type Maze struct {
	width  int
	height int
	grid   [][]Cell // grid[y][x]
}

// newWalled returns a maze whose every wall is present.
func newWalled(width, height int) *Maze {
	grid := make([][]Cell, height)
	for y := range grid {
		grid[y] = make([]Cell, width)
		for x := range grid[y] {
			grid[y][x] = Cell{Walls: [4]bool{true, true, true, true}}
		}
	}
	return &Maze{width: width, height: height, grid: grid}
}

// Width returns the number of columns.
func (m *Maze) Width() int {
	return m.width
}

// Height returns the number of rows.
func (m *Maze) Height() int {
	return m.height
}

// InBound reports whether (x, y) addresses a cell of the maze.
func (m *Maze) InBound(x, y int) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}

// IsWall reports whether the cell at (x, y) has a wall facing d.
func (m *Maze) IsWall(x, y int, d Direction) (bool, error) {
	if !m.InBound(x, y) {
		return false, fmt.Errorf("%w: (%d,%d) in %dx%d maze", ErrOutOfBounds, x, y, m.width, m.height)
	}
	if !d.Valid() {
		return false, fmt.Errorf("%w: %d", ErrInvalidDirection, int(d))
	}
	return m.grid[y][x].Walls[d], nil
}

// Cell returns a copy of the cell at (x, y).
func (m *Maze) Cell(x, y int) (Cell, error) {
	if !m.InBound(x, y) {
		return Cell{}, fmt.Errorf("%w: (%d,%d) in %dx%d maze", ErrOutOfBounds, x, y, m.width, m.height)
	}
	return m.grid[y][x], nil
}

// openWall removes the wall between p and its neighbour in direction d on both sides.
func (m *Maze) openWall(p Position, d Direction) {
	n := p.Step(d)
	m.grid[p.Y][p.X].Walls[d] = false
	m.grid[n.Y][n.X].Walls[d.Opposite()] = false
}

// OpenPassages counts the inter-cell walls that are open. Each passage is counted once.
func (m *Maze) OpenPassages() int {
	open := 0
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			if x+1 < m.width && !m.grid[y][x].Walls[East] {
				open++
			}
			if y+1 < m.height && !m.grid[y][x].Walls[South] {
				open++
			}
		}
	}
	return open
}

// Reachable returns the number of cells reachable from p through open walls.
func (m *Maze) Reachable(p Position) (int, error) {
	if !m.InBound(p.X, p.Y) {
		return 0, fmt.Errorf("%w: %s", ErrOutOfBounds, p)
	}

	visited := mapset.New[Position]()
	visited.Put(p)
	queue := []Position{p}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, d := range Directions {
			if m.grid[cur.Y][cur.X].Walls[d] {
				continue
			}
			next := cur.Step(d)
			if !m.InBound(next.X, next.Y) || visited.Has(next) {
				continue
			}
			visited.Put(next)
			queue = append(queue, next)
		}
	}
	return visited.Size(), nil
}

// String provides a textual representation of the maze.
func (m *Maze) String() string {
	return m.Render(nil, nil)
}

// WallFunc decides whether the wall of cell p facing d is drawn.
type WallFunc func(p Position, d Direction) bool

// Render draws the maze as ASCII. marks places a rune in the centre of the
// given cells; show filters which walls are drawn (nil draws every wall).
func (m *Maze) Render(marks map[Position]rune, show WallFunc) string {
	drawn := func(x, y int, d Direction) bool {
		if !m.grid[y][x].Walls[d] {
			return false
		}
		return show == nil || show(Position{X: x, Y: y}, d)
	}

	var b strings.Builder
	b.WriteString("+")
	for x := 0; x < m.width; x++ {
		if drawn(x, 0, North) {
			b.WriteString("---+")
		} else {
			b.WriteString("   +")
		}
	}
	b.WriteString("\n")

	for y := 0; y < m.height; y++ {
		if drawn(0, y, West) {
			b.WriteString("|")
		} else {
			b.WriteString(" ")
		}
		for x := 0; x < m.width; x++ {
			if r, ok := marks[Position{X: x, Y: y}]; ok {
				b.WriteString(" " + string(r) + " ")
			} else {
				b.WriteString("   ")
			}
			if drawn(x, y, East) {
				b.WriteString("|")
			} else {
				b.WriteString(" ")
			}
		}
		b.WriteString("\n+")
		for x := 0; x < m.width; x++ {
			if drawn(x, y, South) {
				b.WriteString("---+")
			} else {
				b.WriteString("   +")
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}
