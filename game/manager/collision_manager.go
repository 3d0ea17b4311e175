package manager

import (
	"gridsnake/game/entity"
	"gridsnake/game/types"
)

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// Check classifies a move of the head into pos against the walls and the trail
func (cm *CollisionManager) Check(pos types.Coordinate, trail *entity.Trail) types.CollisionType {
	if cm.isWallCollision(pos) {
		return types.WallCollision
	}
	if cm.isSelfCollision(pos, trail) {
		return types.SelfCollision
	}
	return types.NoCollision
}

// isWallCollision checks if a position lies outside the grid
func (cm *CollisionManager) isWallCollision(pos types.Coordinate) bool {
	return !cm.grid.Contains(pos)
}

// isSelfCollision checks pos against the trail. The oldest cell does not count
// when the coming push evicts it: the tail leaves that cell on the same step.
func (cm *CollisionManager) isSelfCollision(pos types.Coordinate, trail *entity.Trail) bool {
	if !trail.Contains(pos) {
		return false
	}
	if oldest, ok := trail.Oldest(); ok && oldest == pos && trail.WillEvict() {
		return false
	}
	return true
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos, food types.Coordinate) bool {
	return pos == food
}
