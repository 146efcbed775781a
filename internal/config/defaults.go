package config

import (
	_ "embed"
)

//go:embed defaults/blocks.yaml
var defaultBlocksYAML []byte

// DefaultBlocksConfig returns the default game configuration.
func DefaultBlocksConfig() BlocksConfig {
	return BlocksConfig{
		Board: BoardConfig{
			Width:        10,
			Height:       24,
			HiddenRows:   4,
			DangerRows:   5,
			SpawnXOffset: 2,
		},
		Queue: QueueConfig{
			Lookahead: 4,
			Preview:   4,
		},
		Scoring: ScoringConfig{
			LinePoints:         50,
			LinesPerLevel:      10,
			HardDropMultiplier: 1,
		},
		Modes: ModesConfig{
			StandardUndo: 3,
		},
		Timing: TimingConfig{
			LevelSpeedsMs: []int{400, 360, 320, 280, 240, 200, 160, 120, 100, 80},
			CountdownSec:  3,
			BannerMs:      1000,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "blocks", "blocks_relaxed":
		return defaultBlocksYAML
	default:
		return nil
	}
}
