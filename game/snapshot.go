package game

import (
	"sort"
	"time"

	"gridsnake/game/types"
)

// Snapshot is a read-only copy of the game state for renderers
type Snapshot struct {
	SessionID string
	Grid      types.Grid
	Head      types.Coordinate
	Direction types.Direction
	Trail     []types.Coordinate // oldest first, last entry is the head
	Food      types.Coordinate
	HasFood   bool
	Score     int
	Length    int
	Phase     types.Phase
	Collision types.CollisionType
	Interval  time.Duration
	Tick      int64
}

// Body returns the trail without the head
func (s Snapshot) Body() []types.Coordinate {
	if len(s.Trail) == 0 {
		return nil
	}
	return s.Trail[:len(s.Trail)-1]
}

// Cell is what a renderer draws on a grid cell
type Cell int

const (
	Empty Cell = iota
	Body
	Head
	Food
)

// Cells maps every non-empty cell to its content
func (s Snapshot) Cells() map[types.Coordinate]Cell {
	cells := make(map[types.Coordinate]Cell, len(s.Trail)+1)
	for _, p := range s.Body() {
		cells[p] = Body
	}
	if len(s.Trail) > 0 {
		cells[s.Head] = Head
	}
	if s.HasFood {
		cells[s.Food] = Food
	}
	return cells
}

// CellChange is a cell whose content differs between two snapshots
type CellChange struct {
	At   types.Coordinate
	Cell Cell
}

// Diff lists the cells a renderer must repaint to turn prev into next, in
// row-major order. Vacated cells come back as Empty.
func Diff(prev, next Snapshot) []CellChange {
	before, after := prev.Cells(), next.Cells()

	var changes []CellChange
	for at, cell := range after {
		if before[at] != cell {
			changes = append(changes, CellChange{At: at, Cell: cell})
		}
	}
	for at := range before {
		if _, ok := after[at]; !ok {
			changes = append(changes, CellChange{At: at, Cell: Empty})
		}
	}

	sort.Slice(changes, func(i, j int) bool {
		a, b := changes[i].At, changes[j].At
		if a.Row != b.Row {
			return a.Row < b.Row
		}
		return a.Col < b.Col
	})
	return changes
}
