package maze

import (
	"fmt"
	"strings"
)

// Parse reads a maze drawn in the format produced by String. Walls are
// mirrored onto both adjacent cells; any rune inside a cell is ignored.
// It exists to build fixed mazes for tests and fixtures; games use Generate.
func Parse(layout string) (*Maze, error) {
	lines := strings.Split(strings.Trim(layout, "\n"), "\n")
	if len(lines) < 3 || len(lines)%2 == 0 {
		return nil, fmt.Errorf("%w: %d lines", ErrInvalidLayout, len(lines))
	}

	top := strings.TrimRight(lines[0], " ")
	if len(top) < 5 || (len(top)-1)%4 != 0 {
		return nil, fmt.Errorf("%w: top border %q", ErrInvalidLayout, top)
	}
	width := (len(top) - 1) / 4
	height := (len(lines) - 1) / 2

	at := func(line string, i int) byte {
		if i < len(line) {
			return line[i]
		}
		return ' '
	}

	m := newWalled(width, height)
	for y := 0; y < height; y++ {
		row, below := lines[2*y+1], lines[2*y+2]
		for x := 0; x < width; x++ {
			c := &m.grid[y][x]
			if y == 0 {
				c.Walls[North] = at(top, 4*x+1) == '-'
			} else {
				c.Walls[North] = m.grid[y-1][x].Walls[South]
			}
			if x == 0 {
				c.Walls[West] = at(row, 0) == '|'
			} else {
				c.Walls[West] = m.grid[y][x-1].Walls[East]
			}
			c.Walls[East] = at(row, 4*x+4) == '|'
			c.Walls[South] = at(below, 4*x+1) == '-'
		}
	}
	return m, nil
}
