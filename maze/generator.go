package maze

import (
	"fmt"
	"math/rand/v2"
)

// Generate carves a perfect maze of the given dimensions with a randomized
// depth-first walk. The same rng state always yields the same maze.
func Generate(width, height int, rng *rand.Rand) (*Maze, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}

	m := newWalled(width, height)

	visited := make([][]bool, height)
	for y := range visited {
		visited[y] = make([]bool, width)
	}

	start := Position{X: rng.IntN(width), Y: rng.IntN(height)}
	visited[start.Y][start.X] = true
	stack := []Position{start}

	candidates := make([]Direction, 0, len(Directions))
	for len(stack) > 0 {
		cur := stack[len(stack)-1]

		candidates = candidates[:0]
		for _, d := range Directions {
			n := cur.Step(d)
			if m.InBound(n.X, n.Y) && !visited[n.Y][n.X] {
				candidates = append(candidates, d)
			}
		}

		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		d := candidates[rng.IntN(len(candidates))]
		next := cur.Step(d)
		m.openWall(cur, d)
		visited[next.Y][next.X] = true
		stack = append(stack, next)
	}

	return m, nil
}

// NewRand returns a deterministic PCG-backed generator for seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
