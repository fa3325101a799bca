package service

import (
	"math/rand/v2"
	"sync"
	"testing"
	"time"

	"github.com/beka-birhanu/invisible-maze/maze"
	"github.com/beka-birhanu/invisible-maze/service/i"
	general_i "github.com/beka-birhanu/vinom-common/interfaces/general"
	"github.com/stretchr/testify/require"
)

// serpentine is a 5x5 perfect maze whose only path winds row by row from
// (0,0) to (4,4).
const serpentine = `
+---+---+---+---+---+
|                   |
+---+---+---+---+   +
|                   |
+   +---+---+---+---+
|                   |
+---+---+---+---+   +
|                   |
+   +---+---+---+---+
|                   |
+---+---+---+---+---+
`

// recordingLogger keeps every message. Logger methods it does not override
// are never called by the services.
type recordingLogger struct {
	general_i.Logger

	mu       sync.Mutex
	infos    []string
	warnings []string
	errors   []string
}

func (l *recordingLogger) Info(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.infos = append(l.infos, msg)
}

func (l *recordingLogger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warnings = append(l.warnings, msg)
}

func (l *recordingLogger) Error(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errors = append(l.errors, msg)
}

func (l *recordingLogger) Warnings() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.warnings...)
}

// fixture builds matches on the serpentine maze with a fixed placement and
// records the sizes mazes were requested at.
type fixture struct {
	maze      *maze.Maze
	placement maze.Placement
	sizes     []int
	logger    *recordingLogger
}

func newFixture(t *testing.T, start, goal maze.Position) *fixture {
	t.Helper()
	m, err := maze.Parse(serpentine)
	require.NoError(t, err)
	return &fixture{
		maze:      m,
		placement: maze.Placement{Start: start, Goal: goal},
		logger:    &recordingLogger{},
	}
}

func (f *fixture) match(t *testing.T, revealSeconds int) *Match {
	t.Helper()
	m, err := NewMatch(&Config{
		MazeFactory: func(width, height int, _ *rand.Rand) (*maze.Maze, error) {
			f.sizes = append(f.sizes, width)
			return f.maze, nil
		},
		Placer: func(*maze.Maze, *rand.Rand) (maze.Placement, error) {
			return f.placement, nil
		},
		Rand:          maze.NewRand(1),
		Logger:        f.logger,
		RevealSeconds: revealSeconds,
	})
	require.NoError(t, err)
	return m
}

// manualTicker is an i.Ticker driven by the test.
type manualTicker struct {
	c       chan time.Time
	stopped chan struct{}
	once    sync.Once
}

func (t *manualTicker) C() <-chan time.Time {
	return t.c
}

func (t *manualTicker) Stop() {
	t.once.Do(func() { close(t.stopped) })
}

func (t *manualTicker) isStopped() bool {
	select {
	case <-t.stopped:
		return true
	default:
		return false
	}
}

// fire delivers one tick, failing the test if nobody is listening.
func (t *manualTicker) fire(tb testing.TB) {
	tb.Helper()
	select {
	case t.c <- time.Now():
	case <-time.After(time.Second):
		tb.Fatal("countdown goroutine did not receive tick")
	}
}

type tickerFactory struct {
	mu      sync.Mutex
	tickers []*manualTicker
}

func (f *tickerFactory) New(time.Duration) i.Ticker {
	f.mu.Lock()
	defer f.mu.Unlock()
	t := &manualTicker{c: make(chan time.Time), stopped: make(chan struct{})}
	f.tickers = append(f.tickers, t)
	return t
}

func (f *tickerFactory) Get(n int) *manualTicker {
	f.mu.Lock()
	defer f.mu.Unlock()
	if n >= len(f.tickers) {
		return nil
	}
	return f.tickers[n]
}

func (f *tickerFactory) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.tickers)
}

func kinds(outcomes []Outcome) []OutcomeKind {
	ks := make([]OutcomeKind, 0, len(outcomes))
	for _, o := range outcomes {
		ks = append(ks, o.Kind)
	}
	return ks
}

func mustMove(t *testing.T, m *Match, d maze.Direction) []Outcome {
	t.Helper()
	outcomes, err := m.Move(d)
	require.NoError(t, err)
	return outcomes
}

// eliminate strikes the boundary north of the spawn until the current player
// runs out of hearts. The token must be on row 0.
func eliminate(t *testing.T, m *Match) []Outcome {
	t.Helper()
	var outcomes []Outcome
	for hearts := m.Hearts(m.Turn()); hearts > 0; hearts-- {
		outcomes = append(outcomes, mustMove(t, m, maze.North)...)
	}
	return outcomes
}

// winFor makes p reach a goal placed one step east of the spawn, eliminating
// the opponent first when it holds the turn.
func winFor(t *testing.T, m *Match, p Player) []Outcome {
	t.Helper()
	var outcomes []Outcome
	if m.Turn() != p {
		outcomes = append(outcomes, eliminate(t, m)...)
	}
	require.Equal(t, p, m.Turn())
	return append(outcomes, mustMove(t, m, maze.East)...)
}

// loseBoth exhausts both players' hearts.
func loseBoth(t *testing.T, m *Match) []Outcome {
	t.Helper()
	outcomes := eliminate(t, m)
	return append(outcomes, eliminate(t, m)...)
}

func lastOf(outcomes []Outcome, k OutcomeKind) (Outcome, bool) {
	for idx := len(outcomes) - 1; idx >= 0; idx-- {
		if outcomes[idx].Kind == k {
			return outcomes[idx], true
		}
	}
	return Outcome{}, false
}
