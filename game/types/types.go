package types

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidDirection is returned when a direction name cannot be parsed
var ErrInvalidDirection = errors.New("invalid direction")

// Coordinate is a grid cell addressed by row and column, 0-indexed
type Coordinate struct {
	Row int
	Col int
}

// Add returns the coordinate shifted by delta
func (c Coordinate) Add(delta Coordinate) Coordinate {
	return Coordinate{Row: c.Row + delta.Row, Col: c.Col + delta.Col}
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Direction is one of the four cardinal moves. The zero value is not a valid move.
type Direction int

const (
	None Direction = iota
	Up
	Down
	Left
	Right
)

// Valid reports whether d is one of the four movement directions
func (d Direction) Valid() bool {
	return d >= Up && d <= Right
}

// Delta returns the unit step in (row, col) for d
func (d Direction) Delta() Coordinate {
	switch d {
	case Up:
		return Coordinate{Row: -1}
	case Down:
		return Coordinate{Row: 1}
	case Left:
		return Coordinate{Col: -1}
	case Right:
		return Coordinate{Col: 1}
	}
	return Coordinate{}
}

// Opposite returns the reverse direction, or None for an invalid value
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	}
	return None
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "none"
}

// ParseDirection maps a name such as "up" or "Left" to its Direction
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up":
		return Up, nil
	case "down":
		return Down, nil
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	}
	return None, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
}

// Grid represents the game grid dimensions
type Grid struct {
	Rows int
	Cols int
}

// Contains reports whether c lies inside the grid
func (g Grid) Contains(c Coordinate) bool {
	return c.Row >= 0 && c.Row < g.Rows && c.Col >= 0 && c.Col < g.Cols
}

// Cells returns the number of cells in the grid
func (g Grid) Cells() int {
	if g.Rows <= 0 || g.Cols <= 0 {
		return 0
	}
	return g.Rows * g.Cols
}

// Each calls fn for every cell in row-major order
func (g Grid) Each(fn func(Coordinate)) {
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			fn(Coordinate{Row: r, Col: c})
		}
	}
}

// Phase is the coarse engine state
type Phase int

const (
	Active Phase = iota
	GameOver
)

func (p Phase) String() string {
	if p == GameOver {
		return "game over"
	}
	return "active"
}

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	}
	return "none"
}
