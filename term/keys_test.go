package term

import (
	"testing"

	"retro-snake/game"
	"retro-snake/game/types"

	"github.com/gdamore/tcell/v2"
)

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestTranslate(t *testing.T) {
	idle := game.Snapshot{State: types.Idle, Level: types.Medium}
	running := game.Snapshot{State: types.Running, Level: types.Medium}
	over := game.Snapshot{State: types.GameOver, Level: types.Medium}

	tests := []struct {
		name    string
		ev      *tcell.EventKey
		snap    game.Snapshot
		v       view
		wantAct action
		wantCmd game.Command
	}{
		{"arrow up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), running, view{}, actCommand, game.DirectionCommand(types.Up)},
		{"arrow left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), running, view{}, actCommand, game.DirectionCommand(types.Left)},
		{"wasd down", runeKey('s'), running, view{}, actCommand, game.DirectionCommand(types.Down)},
		{"wasd right", runeKey('D'), running, view{}, actCommand, game.DirectionCommand(types.Right)},
		{"enter starts", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), idle, view{}, actCommand, game.Command{Kind: game.CmdStart}},
		{"enter restarts", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), over, view{}, actCommand, game.Command{Kind: game.CmdRestart}},
		{"space toggles", runeKey(' '), running, view{}, actCommand, game.Command{Kind: game.CmdTogglePause}},
		{"space after game over", runeKey(' '), over, view{}, actNone, game.Command{}},
		{"reset keeps level", runeKey('r'), running, view{}, actCommand, game.ResetCommand(types.Medium)},
		{"next level", runeKey('l'), idle, view{}, actCommand, game.LevelCommand(types.Hard)},
		{"no level while running", runeKey('l'), running, view{}, actNone, game.Command{}},
		{"ranking", runeKey('t'), over, view{}, actToggleRanking, game.Command{}},
		{"no ranking while running", runeKey('t'), running, view{}, actNone, game.Command{}},
		{"escape closes dialog", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), over, view{showGameOver: true}, actCloseDialog, game.Command{}},
		{"escape quits", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), idle, view{}, actQuit, game.Command{}},
		{"ctrl-c quits", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), running, view{}, actQuit, game.Command{}},
		{"q quits", runeKey('q'), running, view{}, actQuit, game.Command{}},
		{"unbound", runeKey('z'), running, view{}, actNone, game.Command{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cmd, act := translate(tc.ev, tc.snap, tc.v)
			if act != tc.wantAct {
				t.Errorf("Expected action %d, got %d", tc.wantAct, act)
			}
			if act == actCommand && cmd != tc.wantCmd {
				t.Errorf("Expected command %+v, got %+v", tc.wantCmd, cmd)
			}
		})
	}
}
