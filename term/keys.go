package term

import (
	"retro-snake/game"
	"retro-snake/game/types"

	"github.com/gdamore/tcell/v2"
)

// action is what a key press asks the terminal frontend to do.
type action int

const (
	actNone action = iota
	actCommand
	actQuit
	actToggleRanking
	actCloseDialog
)

// translate maps a key to an engine command or a frontend action. Level
// changes and the ranking view are refused while the round is running.
func translate(ev *tcell.EventKey, snap game.Snapshot, v view) (game.Command, action) {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return game.Command{}, actQuit
	case tcell.KeyEscape:
		if v.dialogOpen() {
			return game.Command{}, actCloseDialog
		}
		return game.Command{}, actQuit
	case tcell.KeyUp:
		return game.DirectionCommand(types.Up), actCommand
	case tcell.KeyDown:
		return game.DirectionCommand(types.Down), actCommand
	case tcell.KeyLeft:
		return game.DirectionCommand(types.Left), actCommand
	case tcell.KeyRight:
		return game.DirectionCommand(types.Right), actCommand
	case tcell.KeyEnter:
		if snap.State == types.GameOver {
			return game.Command{Kind: game.CmdRestart}, actCommand
		}
		return game.Command{Kind: game.CmdStart}, actCommand
	case tcell.KeyRune:
	default:
		return game.Command{}, actNone
	}

	switch ev.Rune() {
	case 'w', 'W':
		return game.DirectionCommand(types.Up), actCommand
	case 's', 'S':
		return game.DirectionCommand(types.Down), actCommand
	case 'a', 'A':
		return game.DirectionCommand(types.Left), actCommand
	case 'd', 'D':
		return game.DirectionCommand(types.Right), actCommand
	case ' ':
		if snap.State == types.GameOver {
			return game.Command{}, actNone
		}
		return game.Command{Kind: game.CmdTogglePause}, actCommand
	case 'r', 'R':
		return game.ResetCommand(snap.Level), actCommand
	case 'l', 'L':
		if snap.State == types.Running {
			return game.Command{}, actNone
		}
		return game.LevelCommand(snap.Level.Next()), actCommand
	case 't', 'T':
		if snap.State == types.Running {
			return game.Command{}, actNone
		}
		return game.Command{}, actToggleRanking
	case 'q', 'Q':
		return game.Command{}, actQuit
	}
	return game.Command{}, actNone
}
