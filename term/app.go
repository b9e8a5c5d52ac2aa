// Package term is the terminal frontend. It forwards key presses to a
// game.Loop and redraws whenever a new snapshot arrives.
package term

import (
	"context"

	"retro-snake/game"
	"retro-snake/game/types"

	"github.com/gdamore/tcell/v2"
)

// Run plays g on screen until the player quits or ctx ends, and returns the
// last state it drew. The screen is initialised and finalised here.
func Run(ctx context.Context, g *game.Game, s tcell.Screen) (game.Snapshot, error) {
	if err := s.Init(); err != nil {
		return game.Snapshot{}, err
	}
	defer s.Fini()
	s.HideCursor()

	loop := game.NewLoop(g)
	loop.Start()
	defer loop.Stop()

	events := make(chan tcell.Event, 32)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := s.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	snap := g.Snapshot()
	var v view
	draw(s, snap, v, defaultTheme)

	for {
		select {
		case <-ctx.Done():
			return snap, nil
		case next := <-loop.Snapshots():
			if next.State == types.GameOver && snap.State != types.GameOver {
				v.showGameOver = true
			}
			if next.State != types.GameOver {
				v.showGameOver = false
			}
			snap = next
		case ev := <-events:
			switch e := ev.(type) {
			case *tcell.EventResize:
				s.Sync()
			case *tcell.EventKey:
				cmd, act := translate(e, snap, v)
				switch act {
				case actQuit:
					return snap, nil
				case actCloseDialog:
					v.showGameOver = false
					v.showRanking = false
				case actToggleRanking:
					if !v.showRanking {
						v.scores = g.TopScores()
						v.showGameOver = false
					}
					v.showRanking = !v.showRanking
				case actCommand:
					loop.Submit(cmd)
				}
			}
		}
		draw(s, snap, v, defaultTheme)
	}
}
