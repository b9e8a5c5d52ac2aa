package manager

import (
	"retro-snake/game/types"
)

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// Classify checks a candidate head against the walls, the given body cells and
// the obstacle set. Walls are checked first since they are the cheapest.
func (cm *CollisionManager) Classify(pos types.Point, body map[types.Point]struct{}, obstacles map[types.Point]struct{}) types.CollisionType {
	if cm.isWallCollision(pos) {
		return types.WallCollision
	}
	if _, hit := body[pos]; hit {
		return types.SelfCollision
	}
	if _, hit := obstacles[pos]; hit {
		return types.ObstacleCollision
	}
	return types.NoCollision
}

// isWallCollision checks if a position collides with walls
func (cm *CollisionManager) isWallCollision(pos types.Point) bool {
	return !cm.grid.Contains(pos)
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Point, food types.Point) bool {
	return pos == food
}

// ValidateSpawnPosition reports whether a cell is inside the grid and free of
// both the body and the obstacles.
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Point, body []types.Point, obstacles map[types.Point]struct{}) bool {
	if cm.isWallCollision(pos) {
		return false
	}
	if _, hit := obstacles[pos]; hit {
		return false
	}
	for _, part := range body {
		if pos == part {
			return false
		}
	}
	return true
}
