package service

// Phase is the reveal phase of a game.
type Phase int

const (
	PhaseCountdown Phase = iota // movement locked, walls visible
	PhaseRevealed               // movement unlocked, walls invisible unless struck
)

// String returns the lowercase phase name.
func (p Phase) String() string {
	if p == PhaseRevealed {
		return "revealed"
	}
	return "countdown"
}

// Reveal is the per-game countdown that flips the maze into invisible-walls
// mode. The flip happens once; later ticks are ignored.
type Reveal struct {
	phase     Phase
	remaining int
	override  bool
}

// NewReveal starts a countdown of seconds ticks. A non-positive value skips
// the countdown and starts revealed.
func NewReveal(seconds int) Reveal {
	if seconds <= 0 {
		return Reveal{phase: PhaseRevealed}
	}
	return Reveal{phase: PhaseCountdown, remaining: seconds}
}

// Tick consumes one countdown second. ok is false when the countdown has
// already finished.
func (r *Reveal) Tick() (remaining int, revealed, ok bool) {
	if r.phase != PhaseCountdown {
		return 0, false, false
	}
	r.remaining--
	if r.remaining <= 0 {
		r.remaining = 0
		r.phase = PhaseRevealed
		r.override = false
		return 0, true, true
	}
	return r.remaining, false, true
}

// Toggle flips the manual visibility override and returns its new value.
func (r *Reveal) Toggle() bool {
	r.override = !r.override
	return r.override
}

// Phase returns the current reveal phase.
func (r *Reveal) Phase() Phase {
	return r.phase
}

// Remaining returns the countdown seconds left, 0 once revealed.
func (r *Reveal) Remaining() int {
	return r.remaining
}

// Override reports whether the manual visibility override is on.
func (r *Reveal) Override() bool {
	return r.override
}

// CanMove reports whether movement is unlocked. The override never changes it.
func (r *Reveal) CanMove() bool {
	return r.phase == PhaseRevealed
}

// WallsVisible reports whether unstruck walls are drawn.
func (r *Reveal) WallsVisible() bool {
	return r.phase == PhaseCountdown || r.override
}

// MarkersVisible reports whether the player and goal markers are drawn.
func (r *Reveal) MarkersVisible() bool {
	return r.phase == PhaseRevealed || r.override
}
