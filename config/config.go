// Package config loads the game settings from an ini file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"retro-snake/game/types"

	"gopkg.in/ini.v1"
)

var ErrInvalidConfig = errors.New("invalid config")

// Frontends
const (
	FrontendWindow   = "window"
	FrontendTerminal = "terminal"
)

const DefaultPath = "retro-snake.ini"

// Config mirrors the ini file: one struct per section.
type Config struct {
	Game GameConfig `ini:"game"`
	App  AppConfig  `ini:"app"`
}

type GameConfig struct {
	BoardSize int    `ini:"board_size"`
	Level     string `ini:"level"`
	Seed      int64  `ini:"seed" comment:"0 seeds from the clock"`
}

type AppConfig struct {
	Frontend   string `ini:"frontend" comment:"window or terminal"`
	ScoresFile string `ini:"scores_file"`
	CellSize   int    `ini:"cell_size" comment:"window pixels per board cell"`
	Debug      bool   `ini:"debug"`
	LogDir     string `ini:"log_dir"`
}

func Default() *Config {
	return &Config{
		Game: GameConfig{
			BoardSize: types.DefaultBoardSize,
			Level:     types.Easy.String(),
			Seed:      0,
		},
		App: AppConfig{
			Frontend:   FrontendWindow,
			ScoresFile: filepath.Join("data", "scores.json"),
			CellSize:   20,
			Debug:      false,
			LogDir:     "logs",
		},
	}
}

// Load reads path over the defaults. A missing file is created with the
// defaults so it can be edited later. Values are not validated here; callers
// apply their overrides first and then call Validate.
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := Save(path, cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	iniFile, err := ini.Load(path)
	if err != nil {
		return cfg, fmt.Errorf("load %s: %w", path, err)
	}
	if err := iniFile.MapTo(cfg); err != nil {
		return cfg, fmt.Errorf("map %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	iniFile := ini.Empty()
	if err := iniFile.ReflectFrom(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("save %s: %w", path, err)
		}
	}
	if err := iniFile.SaveTo(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

func (c *Config) Validate() error {
	if c.Game.BoardSize < types.MinBoardSize || c.Game.BoardSize > types.MaxBoardSize {
		return fmt.Errorf("%w: board_size %d not in [%d,%d]", ErrInvalidConfig, c.Game.BoardSize, types.MinBoardSize, types.MaxBoardSize)
	}
	if _, err := types.ParseLevel(c.Game.Level); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	switch c.App.Frontend {
	case FrontendWindow, FrontendTerminal:
	default:
		return fmt.Errorf("%w: frontend %q", ErrInvalidConfig, c.App.Frontend)
	}
	if c.App.ScoresFile == "" {
		return fmt.Errorf("%w: scores_file is empty", ErrInvalidConfig)
	}
	if c.App.CellSize <= 0 {
		return fmt.Errorf("%w: cell_size %d", ErrInvalidConfig, c.App.CellSize)
	}
	return nil
}

// Level returns the configured level, falling back to easy.
func (c *Config) Level() types.Level {
	level, err := types.ParseLevel(c.Game.Level)
	if err != nil {
		return types.Easy
	}
	return level
}
