// Package blocks adapts the falling-block engine to the game platform:
// fixed-tick gravity, countdown, pause, banners and terminal rendering.
package blocks

import (
	"math/rand"
	"strings"

	"github.com/vovakirdan/tui-blocks/internal/config"
	"github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/games/blocks/engine"
	"github.com/vovakirdan/tui-blocks/internal/registry"
)

// Registered game IDs.
const (
	IDStandard = "blocks"
	IDRelaxed  = "blocks_relaxed"
)

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

func init() {
	registry.Register(IDStandard, func() registry.Game {
		return New()
	})
	registry.Register(IDRelaxed, func() registry.Game {
		return NewRelaxed()
	})
}

// Game implements the falling-block game on top of an engine session.
type Game struct {
	mode    engine.Mode
	session *engine.Session
	cfg     config.BlocksConfig
	speed   *config.SpeedCurve
	runtime core.RuntimeConfig
	best    int

	tick         uint64
	countdown    int // Ticks left before gravity starts
	gravityTicks int // Ticks since the last gravity step
	paused       bool
	tooSmall     bool
	newHigh      bool

	banner      string
	bannerTicks int
}

// New creates a standard game: leveling, three undos, game over.
func New() *Game {
	return &Game{mode: engine.ModeStandard}
}

// NewRelaxed creates a relaxed game: no leveling, unlimited undo, the board
// wipes instead of ending.
func NewRelaxed() *Game {
	return &Game{mode: engine.ModeRelaxed}
}

// ForMode returns a new game for mode.
func ForMode(mode engine.Mode) *Game {
	return &Game{mode: mode}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == engine.ModeRelaxed {
		return IDRelaxed
	}
	return IDStandard
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == engine.ModeRelaxed {
		return "Blocks (Relaxed)"
	}
	return "Blocks"
}

// SetHighScore seeds the best score a standard run has to beat.
func (g *Game) SetHighScore(score int) {
	g.best = score
}

// ShouldRecord reports whether the finished run belongs on the scoreboard.
func (g *Game) ShouldRecord() bool {
	return g.session != nil && g.session.Over() && g.session.Policy().HighScore && g.session.Score() > 0
}

// IsNewHighScore reports whether the finished run beat the seeded best.
func (g *Game) IsNewHighScore() bool {
	return g.newHigh
}

// Reset loads the config and starts a fresh session.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	if g.runtime.TickRate <= 0 {
		g.runtime.TickRate = core.DefaultConfig().TickRate
	}

	cfg, err := config.LoadBlocks(configPath)
	if err != nil {
		cfg = config.DefaultBlocksConfig()
	}
	g.cfg = cfg
	g.speed = config.NewSpeedCurve(cfg.Timing)

	rng := rand.New(rand.NewSource(runtime.Seed))
	g.session = engine.NewSession(engineConfig(cfg), g.mode, rng, g.best)

	g.tick = 0
	g.paused = false
	g.newHigh = false
	g.banner = ""
	g.bannerTicks = 0
	g.startCountdown()
	g.Resize(runtime.ScreenW, runtime.ScreenH)
}

// engineConfig maps the YAML sections onto the engine rules.
func engineConfig(cfg config.BlocksConfig) engine.Config {
	return engine.Config{
		Board: cfg.Board.Engine(),
		Score: engine.ScoreConfig{
			LinePoints:         cfg.Scoring.LinePoints,
			LinesPerLevel:      cfg.Scoring.LinesPerLevel,
			HardDropMultiplier: cfg.Scoring.HardDropMultiplier,
		},
		Lookahead:    cfg.Queue.Lookahead,
		Preview:      cfg.Queue.Preview,
		StandardUndo: cfg.Modes.StandardUndo,
	}
}

func (g *Game) startCountdown() {
	g.countdown = g.cfg.Timing.CountdownSec * g.runtime.TickRate
	g.gravityTicks = 0
}

// Resize follows a terminal resize without touching the session.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	minW, minH := g.minSize()
	g.tooSmall = w < minW || h < minH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	var notices []string

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.session.Over() {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if g.bannerTicks > 0 {
		g.bannerTicks--
		if g.bannerTicks == 0 {
			g.banner = ""
		}
	}

	// Game over waits for the platform to Reset on restart.
	if g.session.Over() {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionNewGame) {
		notices = g.apply(notices, g.session.NewGame())
		g.newHigh = false
		g.startCountdown()
		return core.StepResult{State: g.State(), Notices: notices}
	}

	if g.countdown > 0 {
		g.countdown--
		return core.StepResult{State: g.State()}
	}

	for _, a := range []struct {
		action core.Action
		op     func() engine.TurnResult
	}{
		{core.ActionUndo, g.session.Undo},
		{core.ActionHold, g.session.Hold},
		{core.ActionRotate, g.session.Rotate},
		{core.ActionLeft, g.session.Left},
		{core.ActionRight, g.session.Right},
		{core.ActionSoftDrop, g.session.SoftDrop},
		{core.ActionHardDrop, g.session.HardDrop},
	} {
		if g.session.Over() {
			break
		}
		if in.Has(a.action) {
			notices = g.apply(notices, a.op())
		}
	}

	if !g.session.Over() {
		g.gravityTicks++
		if g.gravityTicks >= g.speed.Ticks(g.session.Level(), g.runtime.TickRate) {
			g.gravityTicks = 0
			notices = g.apply(notices, g.session.Gravity())
		}
	}

	return core.StepResult{State: g.State(), Notices: notices}
}

// apply turns an engine result into banners and platform notices.
func (g *Game) apply(notices []string, r engine.TurnResult) []string {
	for _, e := range r.Events() {
		switch e.Kind {
		case engine.EventPieceLanded:
			g.gravityTicks = 0
		case engine.EventLinesCleared:
			if e.Label != "" {
				g.showBanner(strings.ToUpper(e.Label) + "!")
				notices = append(notices, e.Label)
			}
		case engine.EventDangerChanged:
			if e.Danger {
				notices = append(notices, "danger")
			} else {
				notices = append(notices, "safe")
			}
		case engine.EventGameOver:
			notices = append(notices, "game over")
		}
	}

	switch r.Kind {
	case engine.TurnRestarted:
		g.showBanner("FRESH START")
		notices = append(notices, "restarted")
	case engine.TurnUndone:
		g.showBanner("UNDO")
	}
	if r.NewHighScore {
		g.newHigh = true
		g.best = g.session.Best()
		notices = append(notices, "new high score")
	}
	return notices
}

func (g *Game) showBanner(text string) {
	g.banner = text
	g.bannerTicks = max(g.cfg.Timing.BannerMs*g.runtime.TickRate/1000, 1)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.session.Score(),
		Lines:    g.session.Lines(),
		Level:    g.session.Level(),
		GameOver: g.session.Over(),
		Paused:   g.paused || g.tooSmall, // The start countdown is not a pause
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "←→ Move | ↑ Rotate | ↓ Soft | Space Drop | C Hold | U Undo | N New | P Pause | Q Quit"
}
