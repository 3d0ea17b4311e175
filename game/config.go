package game

import (
	"errors"
	"fmt"
	"time"

	"gridsnake/game/types"
)

// ErrInvalidConfig is wrapped by every configuration validation failure
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds every parameter the engine is built from
type Config struct {
	Rows int
	Cols int

	Start          types.Coordinate // head position at session start
	StartDirection types.Direction
	StartLength    int // body length including the head

	StartInterval time.Duration // delay between ticks at session start
	IntervalStep  time.Duration // interval reduction per food eaten
	MinInterval   time.Duration // floor for the interval
}

// DefaultConfig returns the classic 20x15 board with a three-cell snake
func DefaultConfig() Config {
	return Config{
		Rows:           15,
		Cols:           20,
		Start:          types.Coordinate{Row: 7, Col: 10},
		StartDirection: types.Right,
		StartLength:    3,
		StartInterval:  250 * time.Millisecond,
		IntervalStep:   5 * time.Millisecond,
		MinInterval:    60 * time.Millisecond,
	}
}

// Grid returns the bounded grid described by the config
func (c Config) Grid() types.Grid {
	return types.Grid{Rows: c.Rows, Cols: c.Cols}
}

// Validate reports the first problem found, wrapped in ErrInvalidConfig
func (c Config) Validate() error {
	switch {
	case c.Rows <= 0 || c.Cols <= 0:
		return fmt.Errorf("%w: grid must be at least 1x1, got %dx%d", ErrInvalidConfig, c.Rows, c.Cols)
	case !c.Grid().Contains(c.Start):
		return fmt.Errorf("%w: start %v outside %dx%d grid", ErrInvalidConfig, c.Start, c.Rows, c.Cols)
	case !c.StartDirection.Valid():
		return fmt.Errorf("%w: start direction %d", ErrInvalidConfig, c.StartDirection)
	case c.StartLength <= 0:
		return fmt.Errorf("%w: start length must be positive, got %d", ErrInvalidConfig, c.StartLength)
	case c.StartInterval <= 0:
		return fmt.Errorf("%w: start interval must be positive, got %v", ErrInvalidConfig, c.StartInterval)
	case c.IntervalStep < 0:
		return fmt.Errorf("%w: interval step must not be negative, got %v", ErrInvalidConfig, c.IntervalStep)
	case c.MinInterval <= 0 || c.MinInterval > c.StartInterval:
		return fmt.Errorf("%w: min interval %v must be in (0, %v]", ErrInvalidConfig, c.MinInterval, c.StartInterval)
	}

	if c.StartLength-1 > c.roomBehindStart() {
		return fmt.Errorf("%w: body of length %d facing %v does not fit behind %v",
			ErrInvalidConfig, c.StartLength, c.StartDirection, c.Start)
	}
	return nil
}

// roomBehindStart counts the cells between the start and the wall the
// initial body extends towards
func (c Config) roomBehindStart() int {
	switch c.StartDirection {
	case types.Up:
		return c.Rows - 1 - c.Start.Row
	case types.Down:
		return c.Start.Row
	case types.Left:
		return c.Cols - 1 - c.Start.Col
	case types.Right:
		return c.Start.Col
	}
	return 0
}
