package manager

import (
	"errors"

	"retro-snake/game/types"
)

// ErrBoardFull is returned when no free cell is left for food.
var ErrBoardFull = errors.New("board full")

// Random sampling attempts per board cell before falling back to a scan.
const foodAttemptsPerCell = 4

type FoodManager struct {
	grid         types.Grid
	rng          Random
	collisionMgr *CollisionManager
}

func NewFoodManager(grid types.Grid, rng Random, collisionMgr *CollisionManager) *FoodManager {
	return &FoodManager{
		grid:         grid,
		rng:          rng,
		collisionMgr: collisionMgr,
	}
}

// GenerateFood samples uniform cells until one is free of body and obstacles.
// Sampling is bounded; after that the free cells are enumerated and one of
// them is picked, so ErrBoardFull means the board really has no room.
func (fm *FoodManager) GenerateFood(body []types.Point, obstacles map[types.Point]struct{}) (types.Point, error) {
	maxAttempts := fm.grid.Cells() * foodAttemptsPerCell
	for attempts := 0; attempts < maxAttempts; attempts++ {
		food := types.Point{
			X: fm.rng.Intn(fm.grid.Width),
			Y: fm.rng.Intn(fm.grid.Height),
		}
		if fm.collisionMgr.ValidateSpawnPosition(food, body, obstacles) {
			return food, nil
		}
	}

	free := fm.freeCells(body, obstacles)
	if len(free) == 0 {
		return types.Point{}, ErrBoardFull
	}
	return free[fm.rng.Intn(len(free))], nil
}

func (fm *FoodManager) freeCells(body []types.Point, obstacles map[types.Point]struct{}) []types.Point {
	taken := make(map[types.Point]struct{}, len(body))
	for _, part := range body {
		taken[part] = struct{}{}
	}

	free := make([]types.Point, 0)
	for y := 0; y < fm.grid.Height; y++ {
		for x := 0; x < fm.grid.Width; x++ {
			p := types.Point{X: x, Y: y}
			if _, hit := taken[p]; hit {
				continue
			}
			if _, hit := obstacles[p]; hit {
				continue
			}
			free = append(free, p)
		}
	}
	return free
}
