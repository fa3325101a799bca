package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/beka-birhanu/invisible-maze/maze"
	"github.com/beka-birhanu/invisible-maze/service/i"
	general_i "github.com/beka-birhanu/vinom-common/interfaces/general"
	"github.com/google/uuid"
)

const (
	defaultTickInterval  = time.Second
	defaultOutcomeBuffer = 64
)

// ErrSessionStopped is returned by commands issued after Stop.
var ErrSessionStopped = errors.New("session stopped")

// SessionConfig configures a Session.
type SessionConfig struct {
	Match         *Match
	Logger        general_i.Logger
	TickInterval  time.Duration                // Countdown tick period, one second by default.
	NewTicker     func(time.Duration) i.Ticker // NewTimeTicker by default.
	OutcomeBuffer int                          // Capacity of the Outcomes channel.
}

// command is a unit of work applied to the match on the session goroutine.
type command struct {
	run   func(m *Match) ([]Outcome, error)
	reply chan result // nil for countdown ticks
}

type result struct {
	outcomes []Outcome
	err      error
}

// Session is the single writer of a Match. Player commands and countdown
// ticks are queued on one channel and applied in order by Start.
type Session struct {
	match        *Match
	logger       general_i.Logger
	tickInterval time.Duration
	newTicker    func(time.Duration) i.Ticker

	commands chan command
	outcomes chan []Outcome
	done     chan struct{}
	exited   chan struct{} // Closed when Start returns.
	running  atomic.Bool
	stopOnce sync.Once

	countdownID     uuid.UUID          // Game the running countdown belongs to.
	cancelCountdown context.CancelFunc // nil when no countdown runs.
	Wg              sync.WaitGroup     // Tracks countdown goroutines.
}

// NewSession wraps a match in a session. Call Start to begin processing.
func NewSession(c *SessionConfig) (*Session, error) {
	if c.Match == nil || c.Logger == nil {
		return nil, fmt.Errorf("%w: session needs a match and a logger", ErrInvalidConfig)
	}

	s := &Session{
		match:        c.Match,
		logger:       c.Logger,
		tickInterval: c.TickInterval,
		newTicker:    c.NewTicker,
		commands:     make(chan command),
		done:         make(chan struct{}),
		exited:       make(chan struct{}),
	}
	if s.tickInterval <= 0 {
		s.tickInterval = defaultTickInterval
	}
	if s.newTicker == nil {
		s.newTicker = NewTimeTicker
	}
	buffer := c.OutcomeBuffer
	if buffer <= 0 {
		buffer = defaultOutcomeBuffer
	}
	s.outcomes = make(chan []Outcome, buffer)
	return s, nil
}

// Start processes commands until Stop is called. On return every countdown
// goroutine has exited and the Outcomes channel is closed.
func (s *Session) Start() {
	if !s.running.CompareAndSwap(false, true) {
		return
	}
	defer close(s.exited)
	defer close(s.outcomes)

	s.logger.Info("session started")
	for {
		select {
		case <-s.done:
			s.stopCountdown()
			s.Wg.Wait()
			s.logger.Info("session stopped")
			return
		case cmd := <-s.commands:
			outcomes, err := cmd.run(s.match)
			if err != nil {
				s.logger.Error(fmt.Sprintf("applying command: %s", err))
			}
			s.armCountdown()
			s.publish(outcomes)
			if cmd.reply != nil {
				cmd.reply <- result{outcomes: outcomes, err: err}
			}
		}
	}
}

// Stop ends the session and waits for Start and the countdown goroutines to
// exit.
func (s *Session) Stop() {
	s.stopOnce.Do(func() {
		close(s.done)
	})
	if s.running.Load() {
		<-s.exited
	}
	s.Wg.Wait()
}

// Outcomes delivers every outcome batch, including those caused by countdown
// ticks. Batches are dropped when the buffer is full. The channel is closed
// once Start returns.
func (s *Session) Outcomes() <-chan []Outcome {
	return s.outcomes
}

// StartGame begins a fresh match in mode at tier d.
func (s *Session) StartGame(mode Mode, d Difficulty) ([]Outcome, error) {
	return s.do(func(m *Match) ([]Outcome, error) {
		return m.StartGame(mode, d)
	})
}

// Move moves the token for the player whose turn it is.
func (s *Session) Move(d maze.Direction) ([]Outcome, error) {
	return s.do(func(m *Match) ([]Outcome, error) {
		return m.Move(d)
	})
}

// ToggleVisibility flips the manual visibility override.
func (s *Session) ToggleVisibility() ([]Outcome, error) {
	return s.do(func(m *Match) ([]Outcome, error) {
		return m.ToggleVisibility(), nil
	})
}

// ResetMatch abandons the current game and restores every counter.
func (s *Session) ResetMatch() ([]Outcome, error) {
	return s.do(func(m *Match) ([]Outcome, error) {
		return m.ResetMatch(), nil
	})
}

// Snapshot returns a copy of the match state taken on the session goroutine.
func (s *Session) Snapshot() (Snapshot, error) {
	var snap Snapshot
	_, err := s.do(func(m *Match) ([]Outcome, error) {
		snap = m.Snapshot()
		return nil, nil
	})
	return snap, err
}

// do queues fn and waits for its result.
func (s *Session) do(fn func(m *Match) ([]Outcome, error)) ([]Outcome, error) {
	select {
	case <-s.done:
		return nil, ErrSessionStopped
	default:
	}

	reply := make(chan result, 1)
	select {
	case s.commands <- command{run: fn, reply: reply}:
	case <-s.done:
		return nil, ErrSessionStopped
	}

	select {
	case r := <-reply:
		return r.outcomes, r.err
	case <-s.done:
		return nil, ErrSessionStopped
	}
}

// armCountdown keeps exactly one countdown running for the current game while
// it is in its countdown phase, cancelling any countdown of an older game.
func (s *Session) armCountdown() {
	select {
	case <-s.done:
		s.stopCountdown()
		return
	default:
	}

	game := s.match.Game()
	counting := game != nil && s.match.Status() == StatusInProgress && s.match.Phase() == PhaseCountdown

	if s.cancelCountdown != nil && counting && s.countdownID == game.ID() {
		return
	}
	s.stopCountdown()
	if !counting {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.cancelCountdown = cancel
	s.countdownID = game.ID()

	ticker := s.newTicker(s.tickInterval)
	s.Wg.Add(1)
	go s.runCountdown(ctx, game.ID(), ticker)
}

func (s *Session) stopCountdown() {
	if s.cancelCountdown != nil {
		s.cancelCountdown()
		s.cancelCountdown = nil
		s.countdownID = uuid.Nil
	}
}

// runCountdown forwards ticks for game id into the command queue.
func (s *Session) runCountdown(ctx context.Context, id uuid.UUID, ticker i.Ticker) {
	defer s.Wg.Done()
	defer ticker.Stop()

	tick := command{run: func(m *Match) ([]Outcome, error) {
		return m.Tick(id), nil
	}}
	for {
		select {
		case <-ctx.Done():
			return
		case <-s.done:
			return
		case <-ticker.C():
			select {
			case s.commands <- tick:
			case <-ctx.Done():
				return
			case <-s.done:
				return
			}
		}
	}
}

func (s *Session) publish(outcomes []Outcome) {
	if len(outcomes) == 0 {
		return
	}
	select {
	case s.outcomes <- outcomes:
	default:
		s.logger.Warning(fmt.Sprintf("outcome buffer full, dropping %d outcomes", len(outcomes)))
	}
}

// timeTicker adapts time.Ticker to i.Ticker.
type timeTicker struct {
	t *time.Ticker
}

// NewTimeTicker returns a wall-clock ticker firing every d.
func NewTimeTicker(d time.Duration) i.Ticker {
	return timeTicker{t: time.NewTicker(d)}
}

func (t timeTicker) C() <-chan time.Time {
	return t.t.C
}

func (t timeTicker) Stop() {
	t.t.Stop()
}
