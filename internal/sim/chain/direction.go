package chain

import (
	"errors"
	"fmt"
)

var ErrUnknownDirection = errors.New("unknown direction")

type Direction byte

const (
	Up    Direction = 'U'
	Down  Direction = 'D'
	Left  Direction = 'L'
	Right Direction = 'R'
)

// ParseDirection accepts the single-letter tokens U, D, L and R.
func ParseDirection(tok string) (Direction, error) {
	if len(tok) == 1 {
		switch d := Direction(tok[0]); d {
		case Up, Down, Left, Right:
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDirection, tok)
}

// Unit returns the unit vector for d and false for an invalid direction.
func (d Direction) Unit() (Point, bool) {
	switch d {
	case Up:
		return Point{0, 1}, true
	case Down:
		return Point{0, -1}, true
	case Left:
		return Point{-1, 0}, true
	case Right:
		return Point{1, 0}, true
	}
	return Point{}, false
}

func (d Direction) String() string { return string(rune(d)) }
