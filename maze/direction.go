package maze

import (
	"fmt"
	"strings"
)

// Direction is one of the four cardinal directions a wall can face.
type Direction int

const (
	North Direction = iota
	South
	West
	East
)

// Directions lists every direction in index order.
var Directions = [4]Direction{North, South, West, East}

var opposites = [4]Direction{North: South, South: North, West: East, East: West}

// Opposite returns the direction facing back from d.
func (d Direction) Opposite() Direction {
	return opposites[d]
}

// Delta returns the unit step taken when moving in d.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case South:
		return 0, 1
	case West:
		return -1, 0
	case East:
		return 1, 0
	}
	return 0, 0
}

// Valid reports whether d is one of the four known directions.
func (d Direction) Valid() bool {
	return d >= North && d <= East
}

// String returns the compass name of d.
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case South:
		return "South"
	case West:
		return "West"
	case East:
		return "East"
	default:
		return fmt.Sprintf("n/a:%d", int(d))
	}
}

// ParseDirection accepts a direction name or a WASD key.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "north", "n", "up", "w":
		return North, nil
	case "south", "s", "down":
		return South, nil
	case "west", "left", "a":
		return West, nil
	case "east", "e", "right", "d":
		return East, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
}
