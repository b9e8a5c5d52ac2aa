package ui

import (
	"retro-snake/game"
	"retro-snake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// dialogs is the overlay state of the window frontend.
type dialogs struct {
	showGameOver bool
	showRanking  bool
	scores       []int
}

func (d dialogs) open() bool {
	return d.showGameOver || d.showRanking
}

type action int

const (
	actNone action = iota
	actCommand
	actQuit
	actToggleRanking
	actCloseDialog
)

// watchedKeys are polled once per frame, in this order.
var watchedKeys = []int32{
	rl.KeyUp, rl.KeyDown, rl.KeyLeft, rl.KeyRight,
	rl.KeyW, rl.KeyS, rl.KeyA, rl.KeyD,
	rl.KeyEnter, rl.KeySpace, rl.KeyR, rl.KeyL, rl.KeyT,
	rl.KeyEscape, rl.KeyQ,
}

// commandForKey maps a pressed key to an engine command or a window action.
// Level changes and the ranking view are refused while the round is running.
func commandForKey(key int32, snap game.Snapshot, d dialogs) (game.Command, action) {
	switch key {
	case rl.KeyUp, rl.KeyW:
		return game.DirectionCommand(types.Up), actCommand
	case rl.KeyDown, rl.KeyS:
		return game.DirectionCommand(types.Down), actCommand
	case rl.KeyLeft, rl.KeyA:
		return game.DirectionCommand(types.Left), actCommand
	case rl.KeyRight, rl.KeyD:
		return game.DirectionCommand(types.Right), actCommand
	case rl.KeyEnter:
		if snap.State == types.GameOver {
			return game.Command{Kind: game.CmdRestart}, actCommand
		}
		return game.Command{Kind: game.CmdStart}, actCommand
	case rl.KeySpace:
		if snap.State == types.GameOver {
			return game.Command{}, actNone
		}
		return game.Command{Kind: game.CmdTogglePause}, actCommand
	case rl.KeyR:
		return game.ResetCommand(snap.Level), actCommand
	case rl.KeyL:
		if snap.State == types.Running {
			return game.Command{}, actNone
		}
		return game.LevelCommand(snap.Level.Next()), actCommand
	case rl.KeyT:
		if snap.State == types.Running {
			return game.Command{}, actNone
		}
		return game.Command{}, actToggleRanking
	case rl.KeyEscape:
		if d.open() {
			return game.Command{}, actCloseDialog
		}
		return game.Command{}, actQuit
	case rl.KeyQ:
		return game.Command{}, actQuit
	}
	return game.Command{}, actNone
}
