package types

import (
	"errors"
	"testing"
	"time"
)

func TestDirection_OffsetAndOpposite(t *testing.T) {
	tests := []struct {
		dir      Direction
		offset   Point
		opposite Direction
	}{
		{Up, Point{X: 0, Y: -1}, Down},
		{Down, Point{X: 0, Y: 1}, Up},
		{Left, Point{X: -1, Y: 0}, Right},
		{Right, Point{X: 1, Y: 0}, Left},
	}

	for _, tc := range tests {
		t.Run(tc.dir.String(), func(t *testing.T) {
			if got := tc.dir.Offset(); got != tc.offset {
				t.Errorf("Expected offset %v, got %v", tc.offset, got)
			}
			if got := tc.dir.Opposite(); got != tc.opposite {
				t.Errorf("Expected opposite %v, got %v", tc.opposite, got)
			}
			if !tc.dir.IsOpposite(tc.opposite) {
				t.Errorf("Expected %v to be opposite of %v", tc.dir, tc.opposite)
			}
			if tc.dir.IsOpposite(tc.dir) {
				t.Errorf("Direction %v should not be its own opposite", tc.dir)
			}
		})
	}
}

func TestParseDirection(t *testing.T) {
	d, err := ParseDirection("left")
	if err != nil {
		t.Fatalf("ParseDirection failed: %v", err)
	}
	if d != Left {
		t.Errorf("Expected LEFT, got %v", d)
	}

	if _, err := ParseDirection("sideways"); !errors.Is(err, ErrUnknownDirection) {
		t.Errorf("Expected ErrUnknownDirection, got %v", err)
	}
}

func TestLevel_Tuning(t *testing.T) {
	tests := []struct {
		level    Level
		name     string
		interval time.Duration
		points   int
	}{
		{Easy, "easy", 200 * time.Millisecond, 10},
		{Medium, "medium", 150 * time.Millisecond, 20},
		{Hard, "hard", 100 * time.Millisecond, 30},
		{Expert, "expert", 70 * time.Millisecond, 40},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.level.String() != tc.name {
				t.Errorf("Expected name %q, got %q", tc.name, tc.level.String())
			}
			if tc.level.TickInterval() != tc.interval {
				t.Errorf("Expected interval %v, got %v", tc.interval, tc.level.TickInterval())
			}
			if tc.level.FoodPoints() != tc.points {
				t.Errorf("Expected %d points per food, got %d", tc.points, tc.level.FoodPoints())
			}
			parsed, err := ParseLevel(tc.name)
			if err != nil || parsed != tc.level {
				t.Errorf("ParseLevel(%q) = %v, %v", tc.name, parsed, err)
			}
		})
	}
}

func TestLevel_NextWraps(t *testing.T) {
	if Easy.Next() != Medium {
		t.Errorf("Expected medium after easy, got %v", Easy.Next())
	}
	if Expert.Next() != Easy {
		t.Errorf("Expected easy after expert, got %v", Expert.Next())
	}
}

func TestLevel_Invalid(t *testing.T) {
	bad := Level(7)
	if bad.Valid() {
		t.Error("Level(7) should not be valid")
	}
	if bad.TickInterval() != Easy.TickInterval() {
		t.Errorf("Invalid level should fall back to easy tuning, got %v", bad.TickInterval())
	}
	if _, err := ParseLevel("nightmare"); !errors.Is(err, ErrUnknownLevel) {
		t.Errorf("Expected ErrUnknownLevel, got %v", err)
	}
	if l, err := ParseLevel("HARD"); err != nil || l != Hard {
		t.Errorf("ParseLevel should ignore case, got %v, %v", l, err)
	}
}

func TestGrid(t *testing.T) {
	g := Square(30)
	if g.Center() != (Point{X: 15, Y: 15}) {
		t.Errorf("Expected center (15,15), got %v", g.Center())
	}
	if g.Cells() != 900 {
		t.Errorf("Expected 900 cells, got %d", g.Cells())
	}

	for _, p := range []Point{{-1, 0}, {0, -1}, {30, 0}, {0, 30}} {
		if g.Contains(p) {
			t.Errorf("Grid should not contain %v", p)
		}
	}
	for _, p := range []Point{{0, 0}, {29, 29}, {15, 15}} {
		if !g.Contains(p) {
			t.Errorf("Grid should contain %v", p)
		}
	}
}

func TestStateAndCollisionNames(t *testing.T) {
	if GameOver.String() != "GAME_OVER" {
		t.Errorf("Expected GAME_OVER, got %s", GameOver.String())
	}
	if BoardFullCollision.String() != "board full" {
		t.Errorf("Expected \"board full\", got %q", BoardFullCollision.String())
	}
}
