package service

import (
	"fmt"
	"strings"
)

// Player identifies one of the two duelling players.
type Player int

const (
	NoPlayer Player = iota - 1
	PlayerA
	PlayerB
)

// Other returns the opponent of p.
func (p Player) Other() Player {
	if p == PlayerA {
		return PlayerB
	}
	return PlayerA
}

// String returns "A", "B" or "none".
func (p Player) String() string {
	switch p {
	case PlayerA:
		return "A"
	case PlayerB:
		return "B"
	default:
		return "none"
	}
}

// Mode selects between a scored duel and a single-player practice run.
type Mode int

const (
	ModeDuel Mode = iota
	ModePractice
)

// String returns the lowercase mode name.
func (m Mode) String() string {
	if m == ModePractice {
		return "practice"
	}
	return "duel"
}

// Difficulty is a maze size tier.
type Difficulty int

const (
	Easy Difficulty = iota + 1
	Medium
	Hard
)

var tierSizes = map[Difficulty]int{Easy: 5, Medium: 7, Hard: 9}

// Size returns the side length of the square maze for d.
func (d Difficulty) Size() int {
	return tierSizes[d]
}

// Valid reports whether d is a known tier.
func (d Difficulty) Valid() bool {
	_, ok := tierSizes[d]
	return ok
}

// String returns the lowercase tier name.
func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	default:
		return fmt.Sprintf("n/a:%d", int(d))
	}
}

// ParseDifficulty parses a tier name or its number (1 to 3).
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy", "1":
		return Easy, nil
	case "medium", "2":
		return Medium, nil
	case "hard", "3":
		return Hard, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDifficulty, s)
}

// Status is the match-level state.
type Status int

const (
	StatusAwaitingStart Status = iota
	StatusInProgress
	StatusGameEnded
	StatusRoundEnded
	StatusMatchEnded
)

// Name returns the upper-case status label.
func (s Status) Name() string {
	switch s {
	case StatusAwaitingStart:
		return "AWAITING_START"
	case StatusInProgress:
		return "IN_PROGRESS"
	case StatusGameEnded:
		return "GAME_ENDED"
	case StatusRoundEnded:
		return "ROUND_ENDED"
	case StatusMatchEnded:
		return "MATCH_ENDED"
	default:
		return fmt.Sprintf("n/a:%d", s)
	}
}

// WallView tells a renderer how to draw one wall.
type WallView int

const (
	WallNone   WallView = iota // no wall
	WallShown                  // wall drawn normally
	WallHidden                 // wall present but invisible
	WallHit                    // wall struck at least once
)
