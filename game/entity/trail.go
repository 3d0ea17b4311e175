package entity

import "gridsnake/game/types"

// Trail keeps the most recent cells visited by the snake, oldest first.
// Pushing past capacity evicts the oldest cell, so at a steady capacity the
// trail slides forward one cell per push. An occupancy index is kept in
// lockstep with the ring so membership tests are O(1).
type Trail struct {
	ring     []types.Coordinate
	start    int
	size     int
	occupied map[types.Coordinate]int
}

// NewTrail creates an empty trail holding at most capacity cells
func NewTrail(capacity int) *Trail {
	if capacity < 1 {
		capacity = 1
	}
	return &Trail{
		ring:     make([]types.Coordinate, capacity),
		occupied: make(map[types.Coordinate]int, capacity),
	}
}

// Len returns the number of cells currently held
func (t *Trail) Len() int { return t.size }

// Cap returns the current capacity
func (t *Trail) Cap() int { return len(t.ring) }

// SetCapacity changes the capacity. Shrinking evicts from the oldest end until
// the trail fits; growing never evicts.
func (t *Trail) SetCapacity(n int) {
	if n < 1 {
		n = 1
	}
	if n == len(t.ring) {
		return
	}
	for t.size > n {
		t.evict()
	}
	ring := make([]types.Coordinate, n)
	for i := 0; i < t.size; i++ {
		ring[i] = t.at(i)
	}
	t.ring = ring
	t.start = 0
}

// WillEvict reports whether the next Push evicts the oldest cell
func (t *Trail) WillEvict() bool {
	return t.size == len(t.ring)
}

// Push appends c as the newest cell, evicting the oldest one when full
func (t *Trail) Push(c types.Coordinate) {
	if t.WillEvict() {
		t.evict()
	}
	t.ring[(t.start+t.size)%len(t.ring)] = c
	t.size++
	t.occupied[c]++
}

// Contains reports whether c is one of the held cells
func (t *Trail) Contains(c types.Coordinate) bool {
	return t.occupied[c] > 0
}

// Oldest returns the cell that the next eviction removes
func (t *Trail) Oldest() (types.Coordinate, bool) {
	if t.size == 0 {
		return types.Coordinate{}, false
	}
	return t.ring[t.start], true
}

// Newest returns the most recently pushed cell
func (t *Trail) Newest() (types.Coordinate, bool) {
	if t.size == 0 {
		return types.Coordinate{}, false
	}
	return t.at(t.size - 1), true
}

// Items returns a copy of the held cells, oldest first
func (t *Trail) Items() []types.Coordinate {
	items := make([]types.Coordinate, t.size)
	for i := range items {
		items[i] = t.at(i)
	}
	return items
}

func (t *Trail) at(i int) types.Coordinate {
	return t.ring[(t.start+i)%len(t.ring)]
}

func (t *Trail) evict() {
	if t.size == 0 {
		return
	}
	old := t.ring[t.start]
	if t.occupied[old] <= 1 {
		delete(t.occupied, old)
	} else {
		t.occupied[old]--
	}
	t.start = (t.start + 1) % len(t.ring)
	t.size--
}
