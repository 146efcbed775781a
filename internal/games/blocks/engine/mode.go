package engine

import (
	"fmt"
	"math"
	"strings"
)

// Mode selects the rule variant of a session.
type Mode uint8

const (
	ModeStandard Mode = iota
	ModeRelaxed
)

// DefaultUndoBudget is the number of undos a standard game allows.
const DefaultUndoBudget = 3

// GameOverBehavior says what happens when a new piece cannot spawn.
type GameOverBehavior uint8

const (
	// GameOverEnd stops the session.
	GameOverEnd GameOverBehavior = iota
	// GameOverRestart wipes the board and keeps playing.
	GameOverRestart
)

// Policy is the rule set a mode fixes for a whole session.
type Policy struct {
	Leveling   bool
	HighScore  bool // New bests may be persisted
	Danger     bool // Danger state changes are surfaced
	UndoBudget int
	OnGameOver GameOverBehavior
}

// Unlimited reports whether the undo budget is effectively infinite.
func (p Policy) Unlimited() bool {
	return p.UndoBudget == math.MaxInt
}

// Policy returns the rules of the mode. standardUndo is the undo budget of
// the standard mode; zero disables undo and a negative value selects
// DefaultUndoBudget.
func (m Mode) Policy(standardUndo int) Policy {
	switch m {
	case ModeRelaxed:
		return Policy{
			UndoBudget: math.MaxInt,
			OnGameOver: GameOverRestart,
		}
	default:
		if standardUndo < 0 {
			standardUndo = DefaultUndoBudget
		}
		return Policy{
			Leveling:   true,
			HighScore:  true,
			Danger:     true,
			UndoBudget: standardUndo,
			OnGameOver: GameOverEnd,
		}
	}
}

// String returns the mode name used in flags and config.
func (m Mode) String() string {
	switch m {
	case ModeRelaxed:
		return "relaxed"
	default:
		return "standard"
	}
}

// ParseMode accepts "standard"/"normal" and "relaxed"/"zen".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "standard", "normal":
		return ModeStandard, nil
	case "relaxed", "zen":
		return ModeRelaxed, nil
	default:
		return ModeStandard, fmt.Errorf("engine: unknown mode %q", s)
	}
}
