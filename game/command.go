package game

import (
	"time"

	"retro-snake/game/types"
)

// CommandKind names an input intent.
type CommandKind int

const (
	CmdStart CommandKind = iota
	CmdPause
	CmdTogglePause
	CmdRestart
	CmdReset
	CmdSetLevel
	CmdSetDirection
)

func (k CommandKind) String() string {
	switch k {
	case CmdStart:
		return "start"
	case CmdPause:
		return "pause"
	case CmdTogglePause:
		return "toggle-pause"
	case CmdRestart:
		return "restart"
	case CmdReset:
		return "reset"
	case CmdSetLevel:
		return "set-level"
	case CmdSetDirection:
		return "set-direction"
	default:
		return "unknown"
	}
}

// Command is an input intent delivered to the engine between ticks. Level is
// read by CmdReset and CmdSetLevel, Direction by CmdSetDirection.
type Command struct {
	Kind      CommandKind
	Level     types.Level
	Direction types.Direction
}

func DirectionCommand(d types.Direction) Command {
	return Command{Kind: CmdSetDirection, Direction: d}
}

func LevelCommand(l types.Level) Command {
	return Command{Kind: CmdSetLevel, Level: l}
}

func ResetCommand(l types.Level) Command {
	return Command{Kind: CmdReset, Level: l}
}

// Snapshot is a read-only copy of the game state for renderers.
type Snapshot struct {
	RoundID      string
	BoardSize    int
	Snake        []types.Point // head first
	Food         types.Point
	HasFood      bool
	Obstacles    []types.Point
	Score        int
	Level        types.Level
	State        types.RoundState
	Direction    types.Direction
	TickInterval time.Duration
	Ticks        int
	EndReason    types.CollisionType
}

func (s Snapshot) Head() types.Point {
	if len(s.Snake) == 0 {
		return types.Point{}
	}
	return s.Snake[0]
}

// CellKind is what occupies a board cell.
type CellKind int

const (
	CellEmpty CellKind = iota
	CellObstacle
	CellFood
	CellBody
	CellHead
)

// Grid renders the snapshot as rows of CellKind, indexed [y][x].
func (s Snapshot) Grid() [][]CellKind {
	rows := make([][]CellKind, s.BoardSize)
	for y := range rows {
		rows[y] = make([]CellKind, s.BoardSize)
	}
	set := func(p types.Point, k CellKind) {
		if p.X >= 0 && p.X < s.BoardSize && p.Y >= 0 && p.Y < s.BoardSize {
			rows[p.Y][p.X] = k
		}
	}
	for _, o := range s.Obstacles {
		set(o, CellObstacle)
	}
	if s.HasFood {
		set(s.Food, CellFood)
	}
	for i := len(s.Snake) - 1; i >= 0; i-- {
		if i == 0 {
			set(s.Snake[i], CellHead)
		} else {
			set(s.Snake[i], CellBody)
		}
	}
	return rows
}
