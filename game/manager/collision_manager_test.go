package manager

import (
	"testing"

	"retro-snake/game/types"
)

func TestCollisionManager_Classify(t *testing.T) {
	cm := NewCollisionManager(types.Square(20))
	body := map[types.Point]struct{}{
		{X: 5, Y: 5}: {},
		{X: 4, Y: 5}: {},
	}
	obstacles := map[types.Point]struct{}{
		{X: 10, Y: 10}: {},
		{X: 4, Y: 5}:   {},
		{X: -1, Y: 3}:  {},
	}

	tests := []struct {
		name     string
		pos      types.Point
		expected types.CollisionType
	}{
		{"free cell", types.Point{X: 6, Y: 5}, types.NoCollision},
		{"left of board", types.Point{X: -1, Y: 5}, types.WallCollision},
		{"below board", types.Point{X: 3, Y: 20}, types.WallCollision},
		{"wall before obstacle", types.Point{X: -1, Y: 3}, types.WallCollision},
		{"body", types.Point{X: 5, Y: 5}, types.SelfCollision},
		{"body before obstacle", types.Point{X: 4, Y: 5}, types.SelfCollision},
		{"obstacle", types.Point{X: 10, Y: 10}, types.ObstacleCollision},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := cm.Classify(tc.pos, body, obstacles); got != tc.expected {
				t.Errorf("Expected %v, got %v", tc.expected, got)
			}
		})
	}
}

func TestCollisionManager_ValidateSpawnPosition(t *testing.T) {
	cm := NewCollisionManager(types.Square(20))
	body := []types.Point{{X: 1, Y: 1}}
	obstacles := map[types.Point]struct{}{{X: 2, Y: 2}: {}}

	if cm.ValidateSpawnPosition(types.Point{X: 1, Y: 1}, body, obstacles) {
		t.Error("Body cell should not be a valid spawn")
	}
	if cm.ValidateSpawnPosition(types.Point{X: 2, Y: 2}, body, obstacles) {
		t.Error("Obstacle cell should not be a valid spawn")
	}
	if cm.ValidateSpawnPosition(types.Point{X: 20, Y: 0}, body, obstacles) {
		t.Error("Out of bounds cell should not be a valid spawn")
	}
	if !cm.ValidateSpawnPosition(types.Point{X: 3, Y: 3}, body, obstacles) {
		t.Error("Free cell should be a valid spawn")
	}
}
