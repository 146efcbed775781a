package blocks

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateCountdown   GameStateType = "countdown"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Mode      string // "standard" or "relaxed"
	Score     int
	Best      int
	Level     int
	Lines     int
	UndosLeft int
	Danger    bool
	Piece     string
	X, Y      int
	Grid      [][]int // Locked cells, hidden rows included
	Upcoming  []string
	Held      string
	Banner    string
	State     GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.session.Over():
		state = StateGameOver
	case g.paused:
		state = StatePaused
	case g.countdown > 0:
		state = StateCountdown
	}

	view := g.session.View()
	upcoming := make([]string, len(view.UpcomingPieces))
	for i, p := range view.UpcomingPieces {
		upcoming[i] = p.String()
	}
	held := ""
	if view.HasHeld {
		held = view.HeldPiece.String()
	}

	return Snapshot{
		Tick:      g.tick,
		Mode:      g.mode.String(),
		Score:     g.session.Score(),
		Best:      g.best,
		Level:     g.session.Level(),
		Lines:     g.session.Lines(),
		UndosLeft: g.session.UndosLeft(),
		Danger:    g.session.Danger(),
		Piece:     view.Piece.String(),
		X:         view.X,
		Y:         view.Y,
		Grid:      g.session.Grid().Rows(),
		Upcoming:  upcoming,
		Held:      held,
		Banner:    g.banner,
		State:     state,
	}
}
