package service

import (
	"fmt"

	"github.com/beka-birhanu/invisible-maze/maze"
	"github.com/google/uuid"
)

// OutcomeKind enumerates the events a command can produce.
type OutcomeKind int

const (
	OutcomeGameStarted OutcomeKind = iota
	OutcomeCountdownTicked
	OutcomeRevealed
	OutcomeVisibilityToggled
	OutcomeMoveIgnored
	OutcomeMoved
	OutcomeWallHit
	OutcomeHeartLost
	OutcomePlayerEliminated
	OutcomeGoalReached
	OutcomeGameLost
	OutcomeRoundAdvanced
	OutcomeMatchEnded
	OutcomePracticeCompleted
	OutcomeMatchReset
)

var outcomeNames = map[OutcomeKind]string{
	OutcomeGameStarted:       "GAME_STARTED",
	OutcomeCountdownTicked:   "COUNTDOWN_TICKED",
	OutcomeRevealed:          "REVEALED",
	OutcomeVisibilityToggled: "VISIBILITY_TOGGLED",
	OutcomeMoveIgnored:       "MOVE_IGNORED",
	OutcomeMoved:             "MOVED",
	OutcomeWallHit:           "WALL_HIT",
	OutcomeHeartLost:         "HEART_LOST",
	OutcomePlayerEliminated:  "PLAYER_ELIMINATED",
	OutcomeGoalReached:       "GOAL_REACHED",
	OutcomeGameLost:          "GAME_LOST",
	OutcomeRoundAdvanced:     "ROUND_ADVANCED",
	OutcomeMatchEnded:        "MATCH_ENDED",
	OutcomePracticeCompleted: "PRACTICE_COMPLETED",
	OutcomeMatchReset:        "MATCH_RESET",
}

// Name returns the upper-case outcome label.
func (k OutcomeKind) Name() string {
	if name, ok := outcomeNames[k]; ok {
		return name
	}
	return fmt.Sprintf("n/a:%d", k)
}

// Outcome is a single event emitted by the match. Only the fields relevant
// to Kind are populated.
type Outcome struct {
	Kind       OutcomeKind
	GameID     uuid.UUID      // Game instance the event belongs to.
	Player     Player         // Acting player, or the player whose turn begins.
	Position   maze.Position  // Player position after the event; the struck cell for WallHit.
	Direction  maze.Direction // Requested direction for move events.
	Hearts     int            // Hearts left for Player after the event.
	Remaining  int            // Countdown seconds left.
	Round      int
	Games      int
	Difficulty Difficulty
	Wins       [2]int // Win tallies, indexed by Player.
	Winner     Player // Match winner, NoPlayer on draw.
	Draw       bool
	Visible    bool // Manual visibility override after a toggle.
}

// String formats o as a single log line with the fields relevant to its kind.
func (o Outcome) String() string {
	switch o.Kind {
	case OutcomeMoved, OutcomeMoveIgnored:
		return fmt.Sprintf("%s player=%s dir=%s pos=%s", o.Kind.Name(), o.Player, o.Direction, o.Position)
	case OutcomeWallHit:
		return fmt.Sprintf("%s player=%s dir=%s cell=%s", o.Kind.Name(), o.Player, o.Direction, o.Position)
	case OutcomeHeartLost, OutcomePlayerEliminated:
		return fmt.Sprintf("%s player=%s hearts=%d", o.Kind.Name(), o.Player, o.Hearts)
	case OutcomeCountdownTicked:
		return fmt.Sprintf("%s remaining=%d", o.Kind.Name(), o.Remaining)
	case OutcomeMatchEnded:
		if o.Draw {
			return fmt.Sprintf("%s draw wins=%d-%d", o.Kind.Name(), o.Wins[PlayerA], o.Wins[PlayerB])
		}
		return fmt.Sprintf("%s winner=%s wins=%d-%d", o.Kind.Name(), o.Winner, o.Wins[PlayerA], o.Wins[PlayerB])
	case OutcomeVisibilityToggled:
		return fmt.Sprintf("%s visible=%t", o.Kind.Name(), o.Visible)
	default:
		return fmt.Sprintf("%s player=%s round=%d games=%d", o.Kind.Name(), o.Player, o.Round, o.Games)
	}
}

// HasKind reports whether any outcome in outcomes is of kind k.
func HasKind(outcomes []Outcome, k OutcomeKind) bool {
	for _, o := range outcomes {
		if o.Kind == k {
			return true
		}
	}
	return false
}
