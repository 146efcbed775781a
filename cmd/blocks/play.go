package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/games/blocks"
	"github.com/vovakirdan/tui-blocks/internal/platform/tui"
	"github.com/vovakirdan/tui-blocks/internal/registry"
	"github.com/vovakirdan/tui-blocks/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [standard|relaxed]",
	Short: "Play a mode",
	Long: `Start playing the given mode (standard if omitted).

Controls:
  Left/Right, A/D   - Move
  Up, W, X          - Rotate
  Down, S           - Soft drop
  Space             - Hard drop
  C                 - Hold
  U, Z, Backspace   - Undo last piece
  N                 - New game
  P/Esc             - Pause
  R                 - Restart (after game over)
  Q/Ctrl+C          - Quit
  Ctrl+S            - Save a screenshot

Examples:
  blocks play
  blocks play relaxed
  blocks play --seed 42
  blocks play --config ./my-blocks.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

// modeID resolves a mode name or game ID to a registered game ID.
func modeID(name string) (string, error) {
	switch strings.ToLower(name) {
	case "", "standard", blocks.IDStandard:
		return blocks.IDStandard, nil
	case "relaxed", blocks.IDRelaxed:
		return blocks.IDRelaxed, nil
	}
	return "", fmt.Errorf("unknown mode %q (run 'blocks list' to see available modes)", name)
}

// terminalSize returns the stdout terminal size, or 80x24 when it is not a terminal.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}

// runtimeConfig builds the game runtime from the global flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := terminalSize()
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the score database, degrading to no storage on failure.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

func runPlay(_ *cobra.Command, args []string) error {
	name := ""
	if len(args) > 0 {
		name = args[0]
	}
	gameID, err := modeID(name)
	if err != nil {
		return err
	}
	if err := checkConfig(); err != nil {
		return err
	}

	logger, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	// Continue without storage - game still works
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	if err := tui.Run(game, store, runtimeConfig(), logger, flagPlayer); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
