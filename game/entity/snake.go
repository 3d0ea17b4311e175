package entity

import "gridsnake/game/types"

// Snake is the moving head plus the trail of cells its body occupies.
// The trail includes the head cell, so Trail.Len is the body length.
type Snake struct {
	Head      types.Coordinate
	Direction types.Direction
	Trail     *Trail
}

// NewSnake lays out a snake of the given length on the cells directly behind
// head, facing dir
func NewSnake(head types.Coordinate, dir types.Direction, length int) *Snake {
	if length < 1 {
		length = 1
	}
	s := &Snake{
		Head:      head,
		Direction: dir,
		Trail:     NewTrail(length),
	}
	for _, p := range InitialBody(head, dir, length) {
		s.Trail.Push(p)
	}
	return s
}

// InitialBody returns the cells a fresh snake occupies, oldest first, ending at head
func InitialBody(head types.Coordinate, dir types.Direction, length int) []types.Coordinate {
	back := dir.Opposite().Delta()
	body := make([]types.Coordinate, length)
	for i := 0; i < length; i++ {
		steps := length - 1 - i
		body[i] = types.Coordinate{
			Row: head.Row + back.Row*steps,
			Col: head.Col + back.Col*steps,
		}
	}
	return body
}

// SetDirection changes the heading unless dir is invalid or the direct
// reverse of the current heading
func (s *Snake) SetDirection(dir types.Direction) bool {
	if !dir.Valid() || dir == s.Direction.Opposite() {
		return false
	}
	s.Direction = dir
	return true
}

// NextHead returns the cell the head moves into on the next step
func (s *Snake) NextHead() types.Coordinate {
	return s.Head.Add(s.Direction.Delta())
}

// Advance records newHead in the trail and moves the head there
func (s *Snake) Advance(newHead types.Coordinate) {
	s.Trail.Push(newHead)
	s.Head = newHead
}

// Grow raises the body length by one; the next Advance does not evict
func (s *Snake) Grow() {
	s.Trail.SetCapacity(s.Trail.Cap() + 1)
}

// Length returns the body length including the head
func (s *Snake) Length() int {
	return s.Trail.Cap()
}

// Body returns the occupied cells excluding the head, oldest first
func (s *Snake) Body() []types.Coordinate {
	items := s.Trail.Items()
	if len(items) == 0 {
		return items
	}
	return items[:len(items)-1]
}
