package manager

import (
	"sort"

	"retro-snake/game/types"
)

// Obstacle layout tuning
const (
	StartClearance      = 5  // Chebyshev distance kept free around the start cell
	MaxPlacementRetries = 100

	MediumMinWalls  = 2
	MediumMaxWalls  = 3
	MediumMinLength = 5
	MediumMaxLength = 10 // exclusive

	HardMinWalls  = 3
	HardMaxWalls  = 5
	HardMinLength = 4
	HardMaxLength = 8 // exclusive
	HardMargin    = 4 // interior walls keep this far from the border
)

// Obstacles is the set of impassable cells of one round.
type Obstacles map[types.Point]struct{}

func (o Obstacles) Contains(p types.Point) bool {
	_, ok := o[p]
	return ok
}

// Sorted lists the cells row by row, for stable rendering and snapshots.
func (o Obstacles) Sorted() []types.Point {
	cells := make([]types.Point, 0, len(o))
	for p := range o {
		cells = append(cells, p)
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Y != cells[j].Y {
			return cells[i].Y < cells[j].Y
		}
		return cells[i].X < cells[j].X
	})
	return cells
}

type ObstacleManager struct {
	grid types.Grid
	rng  Random
}

func NewObstacleManager(grid types.Grid, rng Random) *ObstacleManager {
	return &ObstacleManager{
		grid: grid,
		rng:  rng,
	}
}

// Generate builds the obstacle layout for a level. The start cell is never
// part of the result.
func (om *ObstacleManager) Generate(level types.Level, start types.Point) Obstacles {
	obstacles := make(Obstacles)

	switch level {
	case types.Medium:
		count := MediumMinWalls + om.rng.Intn(MediumMaxWalls-MediumMinWalls+1)
		for i := 0; i < count; i++ {
			om.placeWall(obstacles, start, MediumMinLength, MediumMaxLength, 0)
		}
	case types.Hard:
		om.addPerimeter(obstacles)
		count := HardMinWalls + om.rng.Intn(HardMaxWalls-HardMinWalls+1)
		for i := 0; i < count; i++ {
			om.placeWall(obstacles, start, HardMinLength, HardMaxLength, HardMargin)
		}
	case types.Expert:
		om.addPerimeter(obstacles)
		om.addCrossWalls(obstacles)
	}

	delete(obstacles, start)
	return obstacles
}

// addPerimeter walls off every border row and column.
func (om *ObstacleManager) addPerimeter(obstacles Obstacles) {
	for x := 0; x < om.grid.Width; x++ {
		obstacles[types.Point{X: x, Y: 0}] = struct{}{}
		obstacles[types.Point{X: x, Y: om.grid.Height - 1}] = struct{}{}
	}
	for y := 0; y < om.grid.Height; y++ {
		obstacles[types.Point{X: 0, Y: y}] = struct{}{}
		obstacles[types.Point{X: om.grid.Width - 1, Y: y}] = struct{}{}
	}
}

// placeWall samples a straight segment until none of its cells falls inside
// the start clearance. The origin is drawn from [margin, size-margin) on both
// axes and cells outside that band are clipped. The segment is dropped once
// the retries run out.
func (om *ObstacleManager) placeWall(obstacles Obstacles, start types.Point, minLen, maxLen, margin int) {
	for attempt := 0; attempt < MaxPlacementRetries; attempt++ {
		horizontal := om.rng.Intn(2) == 0
		length := minLen + om.rng.Intn(maxLen-minLen)
		origin := types.Point{
			X: margin + om.rng.Intn(om.grid.Width-2*margin),
			Y: margin + om.rng.Intn(om.grid.Height-2*margin),
		}

		step := types.Point{X: 0, Y: 1}
		if horizontal {
			step = types.Point{X: 1, Y: 0}
		}

		cells := make([]types.Point, 0, length)
		p := origin
		for i := 0; i < length; i++ {
			if om.inside(p, margin) {
				cells = append(cells, p)
			}
			p = p.Add(step)
		}

		if tooClose(cells, start) {
			continue
		}
		for _, c := range cells {
			obstacles[c] = struct{}{}
		}
		return
	}
}

// addCrossWalls lays two horizontal and two vertical interior walls, each with
// a single random gap. Horizontal walls sit a quarter of the board in from the
// top and bottom; vertical walls sit a quarter in from the sides and fill every
// row between the horizontal walls. The open columns at both ends of the
// horizontal walls and the gaps keep the board connected.
func (om *ObstacleManager) addCrossWalls(obstacles Obstacles) {
	w, h := om.grid.Width, om.grid.Height
	qx, qy := w/4, h/4

	for _, y := range []int{qy, h - 1 - qy} {
		om.addGappedWall(obstacles, types.Point{X: 3, Y: y}, types.Point{X: 1, Y: 0}, w-6)
	}
	for _, x := range []int{qx, w - 1 - qx} {
		om.addGappedWall(obstacles, types.Point{X: x, Y: qy + 1}, types.Point{X: 0, Y: 1}, h-2-2*qy)
	}
}

// addGappedWall lays length cells from origin along step, leaving out one
// cell picked uniformly from the open interior of the wall.
func (om *ObstacleManager) addGappedWall(obstacles Obstacles, origin, step types.Point, length int) {
	if length <= 0 {
		return
	}
	gap := -1
	if length > 2 {
		gap = 1 + om.rng.Intn(length-2)
	}

	p := origin
	for i := 0; i < length; i++ {
		if i != gap && om.grid.Contains(p) {
			obstacles[p] = struct{}{}
		}
		p = p.Add(step)
	}
}

func (om *ObstacleManager) inside(p types.Point, margin int) bool {
	return p.X >= margin && p.X < om.grid.Width-margin &&
		p.Y >= margin && p.Y < om.grid.Height-margin
}

func tooClose(cells []types.Point, start types.Point) bool {
	for _, c := range cells {
		if chebyshevDistance(c, start) < StartClearance {
			return true
		}
	}
	return false
}

// chebyshevDistance is the larger of the two axis distances.
func chebyshevDistance(p1, p2 types.Point) int {
	dx := abs(p2.X - p1.X)
	dy := abs(p2.Y - p1.Y)
	if dx > dy {
		return dx
	}
	return dy
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
