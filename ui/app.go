// Package ui is the raylib window frontend. It drives the engine from the
// frame loop: key presses are applied first, then the board advances once per
// tick interval.
package ui

import (
	"time"

	"retro-snake/game"
	"retro-snake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const windowTitle = "Retro Snake"

// Run opens a window sized for cellSize pixels per board cell and plays g
// until the window is closed. It returns the last state drawn.
func Run(g *game.Game, cellSize int) game.Snapshot {
	snap := g.Snapshot()
	side := int32(snap.BoardSize*cellSize + borderPadding*2)

	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(side+minPanelWidth, side, windowTitle)
	rl.SetWindowState(rl.FlagWindowResizable)
	defer rl.CloseWindow()

	// Escape closes dialogs, so it must not close the window.
	rl.SetExitKey(0)
	rl.SetTargetFPS(60)

	renderer := NewRenderer()
	var d dialogs
	lastUpdate := time.Now()

	for !rl.WindowShouldClose() {
		if rl.IsWindowResized() {
			renderer.UpdateDimensions()
		}

		quit := false
		for _, key := range watchedKeys {
			if !rl.IsKeyPressed(key) {
				continue
			}
			cmd, act := commandForKey(key, snap, d)
			switch act {
			case actQuit:
				quit = true
			case actCloseDialog:
				d.showGameOver = false
				d.showRanking = false
			case actToggleRanking:
				if !d.showRanking {
					d.scores = g.TopScores()
					d.showGameOver = false
				}
				d.showRanking = !d.showRanking
			case actCommand:
				g.Apply(cmd)
			}
			snap = g.Snapshot()
		}
		if quit {
			break
		}

		// Update game state at fixed interval
		if time.Since(lastUpdate) >= g.TickInterval() {
			prev := snap.State
			g.Tick()
			lastUpdate = time.Now()
			snap = g.Snapshot()
			if prev != types.GameOver && snap.State == types.GameOver {
				d.showGameOver = true
				d.scores = g.TopScores()
			}
		}
		if snap.State != types.GameOver {
			d.showGameOver = false
		}

		renderer.Draw(snap, d)
	}
	return snap
}
