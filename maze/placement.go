package maze

import (
	"fmt"
	"math/rand/v2"
)

// Placement defaults.
const (
	DefaultMinDistance       = 3
	DefaultPlacementAttempts = 1000
)

// Placement is the spawn and goal of one maze instance.
type Placement struct {
	Start      Position
	Goal       Position
	BestEffort bool // BestEffort is set when the distance constraint could not be met.
}

// Sampler draws start/goal pairs whose per-axis distance is at least MinDistance.
type Sampler struct {
	MinDistance int // Minimum |dx| and |dy| between start and goal.
	MaxAttempts int // Goal/start pairs drawn before falling back to the best pair seen.
}

// Sample draws the goal first and then a start against that goal, retrying
// the pair up to MaxAttempts times. When no pair satisfies the constraint the
// farthest pair seen is returned together with ErrPlacementUnsatisfiable; the
// placement is still usable in that case.
func (s Sampler) Sample(m *Maze, rng *rand.Rand) (Placement, error) {
	attempts := s.MaxAttempts
	if attempts <= 0 {
		attempts = DefaultPlacementAttempts
	}

	var best Placement
	bestScore := -1
	for range attempts {
		goal := Position{X: rng.IntN(m.Width()), Y: rng.IntN(m.Height())}
		start := Position{X: rng.IntN(m.Width()), Y: rng.IntN(m.Height())}

		dx, dy := abs(start.X-goal.X), abs(start.Y-goal.Y)
		if dx >= s.MinDistance && dy >= s.MinDistance {
			return Placement{Start: start, Goal: goal}, nil
		}

		if score := min(dx, dy)*(m.Width()+m.Height()) + dx + dy; score > bestScore {
			bestScore = score
			best = Placement{Start: start, Goal: goal, BestEffort: true}
		}
	}

	return best, fmt.Errorf("%w: distance %d in %dx%d maze after %d attempts, using start %s goal %s",
		ErrPlacementUnsatisfiable, s.MinDistance, m.Width(), m.Height(), attempts, best.Start, best.Goal)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
