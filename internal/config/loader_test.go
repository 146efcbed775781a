package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/vovakirdan/tui-blocks/internal/games/blocks/engine"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "blocks.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestEmbeddedMatchesDefaults(t *testing.T) {
	cfg, err := parseBlocks(defaultBlocksYAML)
	if err != nil {
		t.Fatalf("embedded config invalid: %v", err)
	}
	if diff := cmp.Diff(DefaultBlocksConfig(), cfg); diff != "" {
		t.Errorf("embedded YAML drifted from DefaultBlocksConfig (-want +got):\n%s", diff)
	}
}

func TestLoadBlocksFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadBlocks("")
	if err != nil {
		t.Fatalf("LoadBlocks() error = %v", err)
	}
	if diff := cmp.Diff(DefaultBlocksConfig(), cfg); diff != "" {
		t.Errorf("LoadBlocks() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadBlocksUserDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	dir := filepath.Join(home, ".arcade", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	writeConfig(t, dir, "modes:\n  standard_undo: 7\n")

	cfg, err := LoadBlocks("")
	if err != nil {
		t.Fatalf("LoadBlocks() error = %v", err)
	}
	if cfg.Modes.StandardUndo != 7 {
		t.Errorf("StandardUndo = %d, want 7 from user config", cfg.Modes.StandardUndo)
	}
}

func TestLoadBlocksZeroUndo(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "modes:\n  standard_undo: 0\n")

	cfg, err := LoadBlocks(path)
	if err != nil {
		t.Fatalf("LoadBlocks() error = %v", err)
	}
	if cfg.Modes.StandardUndo != 0 {
		t.Errorf("StandardUndo = %d, want 0 from file", cfg.Modes.StandardUndo)
	}
	if got := engine.ModeStandard.Policy(cfg.Modes.StandardUndo).UndoBudget; got != 0 {
		t.Errorf("standard undo budget = %d, want 0", got)
	}
}

func TestLoadBlocksPartialOverride(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
board:
  width: 12
timing:
  level_speeds_ms: [500, 250]
`)

	cfg, err := LoadBlocks(path)
	if err != nil {
		t.Fatalf("LoadBlocks() error = %v", err)
	}

	want := DefaultBlocksConfig()
	want.Board.Width = 12
	want.Timing.LevelSpeedsMs = []int{500, 250}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("LoadBlocks() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadBlocksCustomPathErrors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name    string
		path    string
		wantErr string
	}{
		{"missing file", filepath.Join(dir, "nope.yaml"), "failed to read"},
		{"bad yaml", writeConfig(t, t.TempDir(), "board: [1, 2"), "failed to parse"},
		{"invalid values", writeConfig(t, t.TempDir(), "queue:\n  lookahead: 0\n"), "lookahead"},
		{"no room to spawn", writeConfig(t, t.TempDir(), "board:\n  width: 3\n"), "spawn"},
		{"negative multiplier", writeConfig(t, t.TempDir(), "scoring:\n  hard_drop_multiplier: -2\n"), "hard_drop_multiplier"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadBlocks(tt.path)
			if err == nil {
				t.Fatal("LoadBlocks() succeeded, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*BlocksConfig)
		ok     bool
	}{
		{"defaults", func(*BlocksConfig) {}, true},
		{"zero width", func(c *BlocksConfig) { c.Board.Width = 0 }, false},
		{"hidden fills board", func(c *BlocksConfig) { c.Board.HiddenRows = c.Board.Height }, false},
		{"negative danger", func(c *BlocksConfig) { c.Board.DangerRows = -1 }, false},
		{"no lookahead", func(c *BlocksConfig) { c.Queue.Lookahead = 0 }, false},
		{"no preview is fine", func(c *BlocksConfig) { c.Queue.Preview = 0 }, true},
		{"zero lines per level", func(c *BlocksConfig) { c.Scoring.LinesPerLevel = 0 }, false},
		{"no undo is fine", func(c *BlocksConfig) { c.Modes.StandardUndo = 0 }, true},
		{"negative undo", func(c *BlocksConfig) { c.Modes.StandardUndo = -1 }, false},
		{"negative hard drop multiplier", func(c *BlocksConfig) { c.Scoring.HardDropMultiplier = -1 }, false},
		{"board narrower than a piece", func(c *BlocksConfig) { c.Board.Width = 3 }, false},
		{"spawn left of the board", func(c *BlocksConfig) { c.Board.SpawnXOffset = 6 }, false},
		{"spawn right of the board", func(c *BlocksConfig) { c.Board.SpawnXOffset = -4 }, false},
		{"narrow board with shifted spawn", func(c *BlocksConfig) {
			c.Board.Width = 4
			c.Board.SpawnXOffset = 2
		}, true},
		{"empty speeds", func(c *BlocksConfig) { c.Timing.LevelSpeedsMs = nil }, false},
		{"zero speed", func(c *BlocksConfig) { c.Timing.LevelSpeedsMs = []int{100, 0} }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultBlocksConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); (err == nil) != tt.ok {
				t.Errorf("Validate() = %v, want ok=%v", err, tt.ok)
			}
		})
	}
}

func TestSpeedCurve(t *testing.T) {
	c := NewSpeedCurve(DefaultBlocksConfig().Timing)

	tests := []struct {
		level int
		want  time.Duration
	}{
		{0, 400 * time.Millisecond},
		{1, 400 * time.Millisecond},
		{2, 360 * time.Millisecond},
		{10, 80 * time.Millisecond},
		{25, 80 * time.Millisecond},
	}
	for _, tt := range tests {
		if got := c.Interval(tt.level); got != tt.want {
			t.Errorf("Interval(%d) = %v, want %v", tt.level, got, tt.want)
		}
	}

	if got := c.Ticks(1, 60); got != 24 {
		t.Errorf("Ticks(1, 60) = %d, want 24", got)
	}
	if got := c.Ticks(10, 10); got != 1 {
		t.Errorf("Ticks(10, 10) = %d, want 1", got)
	}
	if got := c.Ticks(1, 0); got != 1 {
		t.Errorf("Ticks with zero tick rate = %d, want 1", got)
	}
	if c.Levels() != 10 {
		t.Errorf("Levels() = %d, want 10", c.Levels())
	}
}

func TestSpeedCurveEmptyTable(t *testing.T) {
	c := NewSpeedCurve(TimingConfig{})
	if got := c.Interval(1); got != 400*time.Millisecond {
		t.Errorf("Interval(1) on empty table = %v, want default 400ms", got)
	}
}
