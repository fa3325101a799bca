package service

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/beka-birhanu/invisible-maze/maze"
	general_i "github.com/beka-birhanu/vinom-common/interfaces/general"
	"github.com/google/uuid"
)

// Match rules.
const (
	defaultHearts = 3
	maxAttempts   = 2 // Attempts per game before both players lose it.
	winsToWin     = 4 // Win tally that ends the match.
	drawWins      = 3 // Tally both players must reach for a forced draw.
	finalRound    = 3 // Rounds beyond this end the match on score.
)

// MazeFactory builds the maze for a new game.
type MazeFactory func(width, height int, rng *rand.Rand) (*maze.Maze, error)

// Placer picks spawn and goal on a freshly built maze. Returning
// maze.ErrPlacementUnsatisfiable alongside a placement is a usable fallback.
type Placer func(m *maze.Maze, rng *rand.Rand) (maze.Placement, error)

// Config configures a Match. Zero values fall back to the defaults noted.
type Config struct {
	MazeFactory   MazeFactory      // maze.Generate
	Placer        Placer           // maze.Sampler with MinDistance and PlacementAttempts
	Rand          *rand.Rand       // seeded from the clock
	Logger        general_i.Logger // required
	Hearts        int              // 3
	RevealSeconds int              // countdown length; 0 starts every game revealed

	MinDistance       int // maze.DefaultMinDistance
	PlacementAttempts int // maze.DefaultPlacementAttempts
}

// Match is the state of a two-player duel (or a practice run) across games
// and rounds. It is not safe for concurrent use; Session serializes access.
type Match struct {
	mazeFactory   MazeFactory
	placer        Placer
	rng           *rand.Rand
	logger        general_i.Logger
	hearts0       int
	revealSeconds int

	status     Status
	mode       Mode
	round      int        // Current round, starting at 1.
	games      int        // Completed games in the match.
	attempts   int        // Attempt within the current game, starting at 1.
	difficulty Difficulty // Current maze tier.
	hearts     [2]int     // Hearts left, indexed by Player.
	wins       [2]int     // Win tallies, indexed by Player.
	turn       Player     // Player controlling the token.
	game       *Game      // Current game, nil before the first start or after a reset.
	reveal     Reveal
}

// NewMatch creates a match awaiting its first game.
func NewMatch(c *Config) (*Match, error) {
	if c.Logger == nil {
		return nil, fmt.Errorf("%w: logger is required", ErrInvalidConfig)
	}
	if c.Hearts < 0 || c.RevealSeconds < 0 || c.MinDistance < 0 || c.PlacementAttempts < 0 {
		return nil, fmt.Errorf("%w: negative setting", ErrInvalidConfig)
	}

	m := &Match{
		mazeFactory:   c.MazeFactory,
		placer:        c.Placer,
		rng:           c.Rand,
		logger:        c.Logger,
		hearts0:       c.Hearts,
		revealSeconds: c.RevealSeconds,
	}

	if m.mazeFactory == nil {
		m.mazeFactory = maze.Generate
	}
	if m.placer == nil {
		minDistance := c.MinDistance
		if minDistance == 0 {
			minDistance = maze.DefaultMinDistance
		}
		m.placer = maze.Sampler{MinDistance: minDistance, MaxAttempts: c.PlacementAttempts}.Sample
	}
	if m.rng == nil {
		m.rng = maze.NewRand(uint64(time.Now().UnixNano()))
	}
	if m.hearts0 == 0 {
		m.hearts0 = defaultHearts
	}

	m.resetCounters()
	return m, nil
}

// resetCounters restores every match counter to its initial value.
func (m *Match) resetCounters() {
	m.round = 1
	m.games = 0
	m.attempts = 1
	m.difficulty = Easy
	m.wins = [2]int{}
	m.hearts = [2]int{m.hearts0, m.hearts0}
	m.turn = PlayerA
}

// StartGame begins a fresh match in mode at tier d and generates its first game.
func (m *Match) StartGame(mode Mode, d Difficulty) ([]Outcome, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDifficulty, int(d))
	}

	m.resetCounters()
	m.mode = mode
	m.difficulty = d
	m.logger.Info(fmt.Sprintf("starting %s match at %s difficulty", mode, d))
	return m.beginGame()
}

// beginGame generates a maze at the current difficulty and places the token.
func (m *Match) beginGame() ([]Outcome, error) {
	size := m.difficulty.Size()
	mz, err := m.mazeFactory(size, size, m.rng)
	if err != nil {
		m.abort()
		return nil, fmt.Errorf("creating maze for a new game: %w", err)
	}

	placement, err := m.placer(mz, m.rng)
	if errors.Is(err, maze.ErrPlacementUnsatisfiable) {
		m.logger.Warning(fmt.Sprintf("using best-effort placement: %s", err))
	} else if err != nil {
		m.abort()
		return nil, fmt.Errorf("placing players for a new game: %w", err)
	}

	game, err := NewGame(mz, placement)
	if err != nil {
		m.abort()
		return nil, fmt.Errorf("creating new game: %w", err)
	}

	m.game = game
	m.hearts = [2]int{m.hearts0, m.hearts0}
	m.attempts = 1
	m.turn = m.openingPlayer()
	m.reveal = NewReveal(m.revealSeconds)
	m.status = StatusInProgress

	outcomes := []Outcome{m.outcome(OutcomeGameStarted)}
	if m.reveal.CanMove() {
		outcomes = append(outcomes, m.outcome(OutcomeRevealed))
	}
	m.logger.Info(fmt.Sprintf("game %s started: round %d, game %d, %dx%d, player %s", game.ID(), m.round, m.games+1, size, size, m.turn))
	return outcomes, nil
}

// openingPlayer alternates who opens each game: even completed-game counts
// start with Player A, odd ones with Player B.
func (m *Match) openingPlayer() Player {
	if m.mode == ModePractice || m.games%2 == 0 {
		return PlayerA
	}
	return PlayerB
}

func (m *Match) abort() {
	m.game = nil
	m.status = StatusAwaitingStart
}

// Move applies a movement command for the player whose turn it is.
func (m *Match) Move(d maze.Direction) ([]Outcome, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("%w: %d", maze.ErrInvalidDirection, int(d))
	}
	if m.status != StatusInProgress || m.game == nil || !m.reveal.CanMove() {
		o := m.outcome(OutcomeMoveIgnored)
		o.Direction = d
		return []Outcome{o}, nil
	}

	outcomes := m.resolveMove(d)
	return m.evaluate(outcomes)
}

// Tick advances the reveal countdown of game id. Ticks for any other game,
// or after the reveal, are dropped.
func (m *Match) Tick(id uuid.UUID) []Outcome {
	if m.status != StatusInProgress || m.game == nil || m.game.ID() != id {
		return nil
	}

	remaining, revealed, ok := m.reveal.Tick()
	if !ok {
		return nil
	}

	tick := m.outcome(OutcomeCountdownTicked)
	tick.Remaining = remaining
	outcomes := []Outcome{tick}
	if revealed {
		outcomes = append(outcomes, m.outcome(OutcomeRevealed))
		m.logger.Info(fmt.Sprintf("walls are now invisible, player %s's turn", m.turn))
	}
	return outcomes
}

// ToggleVisibility flips the manual override that forces every wall and
// marker visible. Movement permission is unaffected.
func (m *Match) ToggleVisibility() []Outcome {
	o := m.outcome(OutcomeVisibilityToggled)
	o.Visible = m.reveal.Toggle()
	return []Outcome{o}
}

// ResetMatch drops the current game and restores every counter.
func (m *Match) ResetMatch() []Outcome {
	m.resetCounters()
	m.game = nil
	m.reveal = Reveal{}
	m.status = StatusAwaitingStart
	return []Outcome{m.outcome(OutcomeMatchReset)}
}

// evaluate runs the goal and attempt-exhaustion checks after a move.
func (m *Match) evaluate(outcomes []Outcome) ([]Outcome, error) {
	switch {
	case m.game.atGoal():
		return m.goalReached(outcomes)
	case m.attempts > maxAttempts:
		return m.gameLost(outcomes)
	default:
		return outcomes, nil
	}
}

func (m *Match) goalReached(outcomes []Outcome) ([]Outcome, error) {
	m.status = StatusGameEnded
	m.attempts = 1

	if m.mode == ModePractice {
		outcomes = append(outcomes, m.outcome(OutcomeGoalReached), m.outcome(OutcomePracticeCompleted))
		m.logger.Info("practice completed")
		m.endMatch()
		return outcomes, nil
	}

	m.games++
	m.wins[m.turn]++
	outcomes = append(outcomes, m.outcome(OutcomeGoalReached))
	m.logger.Info(fmt.Sprintf("player %s reached the goal, wins %d-%d", m.turn, m.wins[PlayerA], m.wins[PlayerB]))

	switch {
	case m.wins[PlayerA] >= winsToWin:
		return append(outcomes, m.finish(PlayerA)), nil
	case m.wins[PlayerB] >= winsToWin:
		return append(outcomes, m.finish(PlayerB)), nil
	case m.wins[PlayerA] >= drawWins && m.wins[PlayerB] >= drawWins:
		return append(outcomes, m.finish(NoPlayer)), nil
	}
	return m.advance(outcomes)
}

func (m *Match) gameLost(outcomes []Outcome) ([]Outcome, error) {
	m.status = StatusGameEnded
	m.attempts = 1

	if m.mode == ModePractice {
		outcomes = append(outcomes, m.outcome(OutcomeGameLost))
		return append(outcomes, m.finish(NoPlayer)), nil
	}

	m.games++
	outcomes = append(outcomes, m.outcome(OutcomeGameLost))
	m.logger.Info("both players lost the game, starting a new one")
	return m.advance(outcomes)
}

// advance starts the next game, moving to the next round after every second game.
func (m *Match) advance(outcomes []Outcome) ([]Outcome, error) {
	if m.games%2 == 0 {
		m.status = StatusRoundEnded
		m.round++
		if m.round > finalRound {
			winner := NoPlayer
			switch {
			case m.wins[PlayerA] > m.wins[PlayerB]:
				winner = PlayerA
			case m.wins[PlayerB] > m.wins[PlayerA]:
				winner = PlayerB
			}
			return append(outcomes, m.finish(winner)), nil
		}
		if m.difficulty < Hard {
			m.difficulty++
		}
		outcomes = append(outcomes, m.outcome(OutcomeRoundAdvanced))
	}

	next, err := m.beginGame()
	if err != nil {
		return outcomes, err
	}
	return append(outcomes, next...), nil
}

// finish ends the match with winner (NoPlayer for a draw) and resets the counters.
func (m *Match) finish(winner Player) Outcome {
	o := m.outcome(OutcomeMatchEnded)
	o.Winner = winner
	o.Draw = winner == NoPlayer && m.mode == ModeDuel
	switch {
	case m.mode == ModePractice:
		m.logger.Info("practice ended without reaching the goal")
	case o.Draw:
		m.logger.Info(fmt.Sprintf("match ended in a draw, wins %d-%d", m.wins[PlayerA], m.wins[PlayerB]))
	default:
		m.logger.Info(fmt.Sprintf("match ended, winner %s, wins %d-%d", winner, m.wins[PlayerA], m.wins[PlayerB]))
	}
	m.endMatch()
	return o
}

func (m *Match) endMatch() {
	m.resetCounters()
	m.status = StatusMatchEnded
}

// outcome fills the fields common to every outcome from the current state.
func (m *Match) outcome(kind OutcomeKind) Outcome {
	o := Outcome{
		Kind:       kind,
		Player:     m.turn,
		Hearts:     m.hearts[m.turn],
		Remaining:  m.reveal.Remaining(),
		Round:      m.round,
		Games:      m.games,
		Difficulty: m.difficulty,
		Wins:       m.wins,
		Winner:     NoPlayer,
	}
	if m.game != nil {
		o.GameID = m.game.ID()
		o.Position = m.game.Player()
	}
	return o
}
