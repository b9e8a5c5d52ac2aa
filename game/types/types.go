package types

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrUnknownLevel     = errors.New("unknown level")
	ErrUnknownDirection = errors.New("unknown direction")
)

// Board constants
const (
	DefaultBoardSize = 30
	MinBoardSize     = 16
	MaxBoardSize     = 100
	MaxScores        = 10 // Entries kept in the score ledger
	PointsPerFood    = 10 // Multiplied by level ordinal + 1
)

// Point is a single board cell.
type Point struct {
	X, Y int
}

func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// Square returns a size x size grid.
func Square(size int) Grid {
	return Grid{Width: size, Height: size}
}

func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Center is the cell every round starts from.
func (g Grid) Center() Point {
	return Point{X: g.Width / 2, Y: g.Height / 2}
}

func (g Grid) Cells() int {
	return g.Width * g.Height
}

// Direction is a cardinal direction of travel.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

var directionNames = [...]string{"UP", "DOWN", "LEFT", "RIGHT"}

func (d Direction) String() string {
	if d < Up || d > Right {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// Offset converts a Direction into a unit movement vector. Y grows downwards.
func (d Direction) Offset() Point {
	switch d {
	case Up:
		return Point{X: 0, Y: -1}
	case Down:
		return Point{X: 0, Y: 1}
	case Left:
		return Point{X: -1, Y: 0}
	case Right:
		return Point{X: 1, Y: 0}
	default:
		return Point{}
	}
}

func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

func (d Direction) IsOpposite(o Direction) bool {
	return d.Opposite() == o
}

func ParseDirection(s string) (Direction, error) {
	for i, name := range directionNames {
		if strings.EqualFold(s, name) {
			return Direction(i), nil
		}
	}
	return Up, fmt.Errorf("%w: %q", ErrUnknownDirection, s)
}

// Level selects speed and obstacle layout. The ordinal doubles as score multiplier.
type Level int

const (
	Easy Level = iota
	Medium
	Hard
	Expert
)

// LevelConfig holds the per-level tuning.
type LevelConfig struct {
	Name         string
	Title        string
	TickInterval time.Duration
}

var levels = [...]LevelConfig{
	Easy:   {Name: "easy", Title: "Easy", TickInterval: 200 * time.Millisecond},
	Medium: {Name: "medium", Title: "Medium", TickInterval: 150 * time.Millisecond},
	Hard:   {Name: "hard", Title: "Hard", TickInterval: 100 * time.Millisecond},
	Expert: {Name: "expert", Title: "Expert", TickInterval: 70 * time.Millisecond},
}

// Levels lists every level in ordinal order.
func Levels() []Level {
	return []Level{Easy, Medium, Hard, Expert}
}

func (l Level) Valid() bool {
	return l >= Easy && l <= Expert
}

func (l Level) Config() LevelConfig {
	if !l.Valid() {
		return levels[Easy]
	}
	return levels[l]
}

func (l Level) String() string {
	if !l.Valid() {
		return fmt.Sprintf("Level(%d)", int(l))
	}
	return levels[l].Name
}

func (l Level) Title() string {
	return l.Config().Title
}

func (l Level) TickInterval() time.Duration {
	return l.Config().TickInterval
}

// FoodPoints is the score awarded for one food on this level.
func (l Level) FoodPoints() int {
	return PointsPerFood * (int(l) + 1)
}

// Next cycles through the levels, wrapping after Expert.
func (l Level) Next() Level {
	return Level((int(l) + 1) % len(levels))
}

func ParseLevel(s string) (Level, error) {
	for i, cfg := range levels {
		if strings.EqualFold(s, cfg.Name) {
			return Level(i), nil
		}
	}
	return Easy, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
}

// RoundState is the engine's position in the round state machine.
type RoundState int

const (
	Idle RoundState = iota
	Running
	Paused
	GameOver
)

func (s RoundState) String() string {
	switch s {
	case Idle:
		return "IDLE"
	case Running:
		return "RUNNING"
	case Paused:
		return "PAUSED"
	case GameOver:
		return "GAME_OVER"
	default:
		return fmt.Sprintf("RoundState(%d)", int(s))
	}
}

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
	ObstacleCollision
	BoardFullCollision // no free cell left for food
)

func (c CollisionType) String() string {
	switch c {
	case NoCollision:
		return "none"
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	case ObstacleCollision:
		return "obstacle"
	case BoardFullCollision:
		return "board full"
	default:
		return fmt.Sprintf("CollisionType(%d)", int(c))
	}
}
