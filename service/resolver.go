package service

import (
	"fmt"

	"github.com/beka-birhanu/invisible-maze/maze"
)

// resolveMove steps the token one cell in d for the player whose turn it is.
// A wall in the way (the outer boundary included) is a collision: the wall is
// marked struck and the player loses a heart. Losing the last heart sends the
// token back to the spawn, refills the hearts and hands the turn over.
func (m *Match) resolveMove(d maze.Direction) []Outcome {
	g := m.game
	from := g.player

	// Walls are checked before bounds: the outer boundary is a wall like any
	// other and bumping into it costs a heart.
	wall, err := g.maze.IsWall(from.X, from.Y, d)
	if err != nil {
		m.logger.Error(fmt.Sprintf("player %s outside the maze at %s: %s", m.turn, from, err))
		return []Outcome{m.moveOutcome(OutcomeMoveIgnored, d)}
	}

	if !wall {
		to := from.Step(d)
		if !g.maze.InBound(to.X, to.Y) {
			return []Outcome{m.moveOutcome(OutcomeMoveIgnored, d)}
		}
		g.player = to
		return []Outcome{m.moveOutcome(OutcomeMoved, d)}
	}

	g.markHit(from, d)
	m.hearts[m.turn]--
	outcomes := []Outcome{m.moveOutcome(OutcomeWallHit, d), m.moveOutcome(OutcomeHeartLost, d)}
	m.logger.Info(fmt.Sprintf("player %s hit a wall at %s facing %s, hearts left %d", m.turn, from, d, m.hearts[m.turn]))

	if m.hearts[m.turn] > 0 {
		return outcomes
	}

	eliminated := m.turn
	g.resetPlayer()
	m.hearts[eliminated] = m.hearts0
	m.attempts++
	if m.mode == ModeDuel {
		m.turn = eliminated.Other()
	}

	o := m.moveOutcome(OutcomePlayerEliminated, d)
	o.Player = eliminated
	o.Hearts = m.hearts[eliminated]
	m.logger.Info(fmt.Sprintf("player %s lost all hearts, attempt %d, player %s's turn", eliminated, m.attempts, m.turn))
	return append(outcomes, o)
}

func (m *Match) moveOutcome(kind OutcomeKind, d maze.Direction) Outcome {
	o := m.outcome(kind)
	o.Direction = d
	return o
}
