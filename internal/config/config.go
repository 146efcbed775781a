// Package config provides YAML-based configuration loading for the
// falling-block game: board geometry, queue depth, scoring, mode rules and
// timing.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-blocks/internal/games/blocks/engine"
)

// BlocksConfig contains all configuration for the falling-block game.
type BlocksConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Queue   QueueConfig   `yaml:"queue"`
	Scoring ScoringConfig `yaml:"scoring"`
	Modes   ModesConfig   `yaml:"modes"`
	Timing  TimingConfig  `yaml:"timing"`
}

// BoardConfig defines the playfield geometry.
type BoardConfig struct {
	Width        int `yaml:"width"`
	Height       int `yaml:"height"`      // Includes hidden rows
	HiddenRows   int `yaml:"hidden_rows"` // Spawn rows above the visible field
	DangerRows   int `yaml:"danger_rows"` // Rows below the hidden band checked for danger
	SpawnXOffset int `yaml:"spawn_x_offset"`
}

// VisibleRows returns the number of rows drawn on screen.
func (b BoardConfig) VisibleRows() int {
	return b.Height - b.HiddenRows
}

// QueueConfig defines how far ahead pieces are generated and shown.
type QueueConfig struct {
	Lookahead int `yaml:"lookahead"`
	Preview   int `yaml:"preview"`
}

// ScoringConfig defines point values and level progression.
type ScoringConfig struct {
	LinePoints         int `yaml:"line_points"` // Multiplied by lines squared
	LinesPerLevel      int `yaml:"lines_per_level"`
	HardDropMultiplier int `yaml:"hard_drop_multiplier"`
}

// ModesConfig defines per-mode rules.
type ModesConfig struct {
	StandardUndo int `yaml:"standard_undo"`
}

// TimingConfig defines fall speed per level and presentation delays.
type TimingConfig struct {
	LevelSpeedsMs []int `yaml:"level_speeds_ms"` // Index is level-1
	CountdownSec  int   `yaml:"countdown_sec"`
	BannerMs      int   `yaml:"banner_ms"`
}

// Validate reports every setting that would make the game unplayable.
func (c BlocksConfig) Validate() error {
	var errs []error
	if c.Board.Width <= 0 || c.Board.Height <= 0 {
		errs = append(errs, fmt.Errorf("config: board must be positive, got %dx%d", c.Board.Width, c.Board.Height))
	} else if p := c.Board.Engine().BlockedAtSpawn(); p != engine.PieceNone {
		errs = append(errs, fmt.Errorf("config: %s piece does not fit at spawn on a %dx%d board with spawn_x_offset %d",
			p, c.Board.Width, c.Board.Height, c.Board.SpawnXOffset))
	}
	if c.Board.HiddenRows < 0 || c.Board.HiddenRows >= c.Board.Height {
		errs = append(errs, fmt.Errorf("config: hidden_rows %d outside [0, %d)", c.Board.HiddenRows, c.Board.Height))
	}
	if c.Board.DangerRows < 0 {
		errs = append(errs, fmt.Errorf("config: danger_rows must not be negative, got %d", c.Board.DangerRows))
	}
	if c.Queue.Lookahead < 1 {
		errs = append(errs, fmt.Errorf("config: lookahead must be at least 1, got %d", c.Queue.Lookahead))
	}
	if c.Queue.Preview < 0 {
		errs = append(errs, fmt.Errorf("config: preview must not be negative, got %d", c.Queue.Preview))
	}
	if c.Scoring.LinesPerLevel <= 0 {
		errs = append(errs, fmt.Errorf("config: lines_per_level must be positive, got %d", c.Scoring.LinesPerLevel))
	}
	if c.Scoring.HardDropMultiplier < 0 {
		errs = append(errs, fmt.Errorf("config: hard_drop_multiplier must not be negative, got %d", c.Scoring.HardDropMultiplier))
	}
	if c.Modes.StandardUndo < 0 {
		errs = append(errs, fmt.Errorf("config: standard_undo must not be negative, got %d", c.Modes.StandardUndo))
	}
	if len(c.Timing.LevelSpeedsMs) == 0 {
		errs = append(errs, errors.New("config: level_speeds_ms is empty"))
	}
	for i, ms := range c.Timing.LevelSpeedsMs {
		if ms <= 0 {
			errs = append(errs, fmt.Errorf("config: level_speeds_ms[%d] must be positive, got %d", i, ms))
		}
	}
	return errors.Join(errs...)
}

// Engine returns the board geometry in the form the engine takes.
func (b BoardConfig) Engine() engine.BoardConfig {
	return engine.BoardConfig{
		Width:        b.Width,
		Height:       b.Height,
		HiddenRows:   b.HiddenRows,
		DangerRows:   b.DangerRows,
		SpawnXOffset: b.SpawnXOffset,
	}
}
