package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"retro-snake/config"
	"retro-snake/game"
	"retro-snake/game/manager"
	"retro-snake/ranking"
	"retro-snake/term"
	"retro-snake/ui"

	"github.com/gdamore/tcell/v2"
)

func main() {
	configPath := flag.String("config", config.DefaultPath, "Path to the ini config file")
	level := flag.String("level", "", "Starting level: easy, medium, hard or expert")
	size := flag.Int("size", 0, "Board side length in cells")
	seed := flag.Int64("seed", 0, "Random seed (0 seeds from the clock)")
	frontend := flag.String("frontend", "", "Frontend: window or terminal")
	scoresFile := flag.String("scores-file", "", "Path to the JSON score file")
	debug := flag.Bool("debug", false, "Write debug logs")
	showScores := flag.Bool("scores", false, "Print the top scores and exit")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	// Flags given on the command line win over the file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "level":
			cfg.Game.Level = *level
		case "size":
			cfg.Game.BoardSize = *size
		case "seed":
			cfg.Game.Seed = *seed
		case "frontend":
			cfg.App.Frontend = *frontend
		case "scores-file":
			cfg.App.ScoresFile = *scoresFile
		case "debug":
			cfg.App.Debug = *debug
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	if logFile := setupLogging(cfg.App.Debug, cfg.App.LogDir); logFile != nil {
		defer logFile.Close()
	}

	ledger := manager.NewScoreManager(manager.NewFileStore(cfg.App.ScoresFile))

	if *showScores {
		scores, err := ledger.TopScores()
		if err != nil {
			fmt.Fprintf(os.Stderr, "scores: %v\n", err)
			os.Exit(1)
		}
		ranking.Print(os.Stdout, scores)
		return
	}

	g, err := game.New(game.Options{
		BoardSize: cfg.Game.BoardSize,
		Level:     cfg.Level(),
		Random:    manager.NewRandom(uint64(cfg.Game.Seed)),
		Ledger:    ledger,
		Strict:    cfg.App.Debug,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "game: %v\n", err)
		os.Exit(1)
	}
	log.Printf("starting %s frontend: size=%d level=%s scores=%s",
		cfg.App.Frontend, cfg.Game.BoardSize, cfg.Level(), cfg.App.ScoresFile)

	switch cfg.App.Frontend {
	case config.FrontendTerminal:
		if err := runTerminal(g); err != nil {
			fmt.Fprintf(os.Stderr, "terminal: %v\n", err)
			os.Exit(1)
		}
	default:
		snap := ui.Run(g, cfg.App.CellSize)
		log.Printf("window closed: score=%d state=%s", snap.Score, snap.State)
	}
}

func runTerminal(g *game.Game) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	snap, err := term.Run(ctx, g, screen)
	if err != nil {
		return err
	}
	ranking.PrintSummary(os.Stdout, snap.Score, g.TopScores())
	return nil
}
