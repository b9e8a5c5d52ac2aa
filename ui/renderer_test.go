package ui

import (
	"testing"

	"retro-snake/game/types"
)

func TestComputeLayout(t *testing.T) {
	l := computeLayout(1000, 620, 30)

	if l.cellSize != 20 {
		t.Errorf("Expected cell size 20, got %d", l.cellSize)
	}
	if l.gridSize != 600 {
		t.Errorf("Expected grid size 600, got %d", l.gridSize)
	}
	if l.offsetY != 10 {
		t.Errorf("Expected vertical offset 10, got %d", l.offsetY)
	}
	if l.panelX != l.offsetX+l.gridSize+borderPadding {
		t.Errorf("Panel should start right of the board, got %d", l.panelX)
	}
	if l.panelWidth < minPanelWidth {
		t.Errorf("Expected panel at least %d wide, got %d", minPanelWidth, l.panelWidth)
	}
}

func TestComputeLayout_TinyWindow(t *testing.T) {
	l := computeLayout(100, 50, 100)
	if l.cellSize != 1 {
		t.Errorf("Expected cell size clamped to 1, got %d", l.cellSize)
	}
}

func TestEyeCenters(t *testing.T) {
	tests := []struct {
		dir  types.Direction
		edge func(x, y float32) bool
	}{
		{types.Up, func(x, y float32) bool { return y < 0.5 }},
		{types.Down, func(x, y float32) bool { return y > 0.5 }},
		{types.Left, func(x, y float32) bool { return x < 0.5 }},
		{types.Right, func(x, y float32) bool { return x > 0.5 }},
	}

	for _, tc := range tests {
		t.Run(tc.dir.String(), func(t *testing.T) {
			eyes := eyeCenters(tc.dir)
			if eyes[0] == eyes[1] {
				t.Errorf("Eyes overlap at %v", eyes[0])
			}
			for _, e := range eyes {
				if !tc.edge(e.X, e.Y) {
					t.Errorf("Eye %v is not on the leading edge", e)
				}
			}
		})
	}
}
