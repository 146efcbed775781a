package engine

import "math/rand"

// Config gathers everything a session needs besides the mode.
type Config struct {
	Board        BoardConfig
	Score        ScoreConfig
	Lookahead    int // Minimum buffered upcoming pieces
	Preview      int // Upcoming pieces exposed in the view
	StandardUndo int // Undo budget of the standard mode, 0 disables undo
}

// DefaultConfig returns the classic rules.
func DefaultConfig() Config {
	return Config{
		Board:        DefaultBoardConfig(),
		Score:        DefaultScoreConfig(),
		Lookahead:    DefaultLookahead,
		Preview:      DefaultLookahead,
		StandardUndo: DefaultUndoBudget,
	}
}

// TurnKind tags the outcome of a session operation.
type TurnKind uint8

const (
	TurnNoop      TurnKind = iota // Nothing changed
	TurnMoved                     // Active piece moved or rotated
	TurnHeld                      // Hold slot swapped
	TurnLocked                    // Piece locked, rows cleared, next piece spawned
	TurnGameOver                  // Next piece blocked, session ended
	TurnRestarted                 // Board wiped and play continues
	TurnUndone                    // Last lock reverted
)

// String returns a short name for logs and tests.
func (k TurnKind) String() string {
	switch k {
	case TurnNoop:
		return "noop"
	case TurnMoved:
		return "moved"
	case TurnHeld:
		return "held"
	case TurnLocked:
		return "locked"
	case TurnGameOver:
		return "game_over"
	case TurnRestarted:
		return "restarted"
	case TurnUndone:
		return "undone"
	default:
		return "unknown"
	}
}

// TurnResult describes what a single operation did.
type TurnResult struct {
	Kind          TurnKind
	Landed        bool   // A piece was locked into the grid
	Dropped       int    // Rows covered by a hard drop
	Points        int    // Points awarded by this operation
	Lines         int    // Rows cleared by the lock
	Label         string // ClearLabel(Lines)
	DangerChanged bool
	Danger        bool // Danger state after the operation
	NewHighScore  bool // Final score beats the known best and may be saved
}

// EventKind names a discrete notification for presentation layers.
type EventKind uint8

const (
	EventPieceLanded EventKind = iota
	EventLinesCleared
	EventDangerChanged
	EventGameOver
)

// Event is a presentation notification derived from a TurnResult.
type Event struct {
	Kind   EventKind
	Lines  int
	Label  string
	Danger bool
}

// Events expands the result into the notifications it implies, in the
// order they happened.
func (r TurnResult) Events() []Event {
	var events []Event
	if r.Landed {
		events = append(events, Event{Kind: EventPieceLanded})
	}
	if r.Lines > 0 {
		events = append(events, Event{Kind: EventLinesCleared, Lines: r.Lines, Label: r.Label})
	}
	if r.DangerChanged {
		events = append(events, Event{Kind: EventDangerChanged, Danger: r.Danger})
	}
	if r.Kind == TurnGameOver {
		events = append(events, Event{Kind: EventGameOver})
	}
	return events
}

// ClearLabel names a multi-line clear. Counts outside 1..4 have no name.
func ClearLabel(lines int) string {
	switch lines {
	case 1:
		return "single"
	case 2:
		return "double"
	case 3:
		return "triple"
	case 4:
		return "tetris"
	default:
		return ""
	}
}

// View is a read-only copy of everything needed to draw the active piece
// and the side panels.
type View struct {
	Piece          PieceType
	Rotation       int
	Mask           Mask
	X, Y           int
	GhostY         int
	UpcomingPieces []PieceType
	Upcoming       []Mask
	HeldPiece      PieceType
	Held           Mask
	HasHeld        bool
	CanHold        bool
}

// Session runs the turn sequence over a board, a score tracker and the undo
// history under the rules of one mode.
type Session struct {
	cfg          Config
	mode         Mode
	policy       Policy
	board        *Board
	tracker      *Tracker
	history      History
	danger       bool
	over         bool
	scoreAtSpawn int
	best         int
}

// NewSession starts a game. best is the persisted high score the session
// has to beat before it reports a new one.
func NewSession(cfg Config, mode Mode, rng *rand.Rand, best int) *Session {
	policy := mode.Policy(cfg.StandardUndo)
	s := &Session{
		cfg:     cfg,
		mode:    mode,
		policy:  policy,
		board:   NewBoard(cfg.Board, NewQueue(rng, cfg.Lookahead)),
		tracker: NewTracker(cfg.Score, policy.Leveling),
		best:    best,
	}
	s.NewGame()
	return s
}

// NewGame wipes the board, score and undo history and spawns a piece.
func (s *Session) NewGame() TurnResult {
	r := TurnResult{Kind: TurnRestarted}
	s.restart(&r)
	return r
}

func (s *Session) restart(r *TurnResult) {
	blocked := s.board.FullReset()
	s.tracker.Reset()
	s.history.Reset()
	s.scoreAtSpawn = 0
	s.over = blocked
	if s.danger {
		s.danger = false
		r.DangerChanged = true
	}
	r.Danger = false
}

func (s *Session) Mode() Mode     { return s.mode }
func (s *Session) Policy() Policy { return s.policy }
func (s *Session) Score() int     { return s.tracker.Score() }
func (s *Session) Level() int     { return s.tracker.Level() }
func (s *Session) Lines() int     { return s.tracker.Lines() }
func (s *Session) Best() int      { return s.best }
func (s *Session) Danger() bool   { return s.danger }
func (s *Session) Over() bool     { return s.over }
func (s *Session) Config() Config { return s.cfg }
func (s *Session) Grid() *Grid    { return s.board.Grid() }
func (s *Session) CanUndo() bool  { return s.history.Pending() && s.UndosLeft() > 0 }
func (s *Session) UndosUsed() int { return s.history.Used() }

// UndosLeft returns the remaining undo budget.
func (s *Session) UndosLeft() int {
	if s.policy.Unlimited() {
		return s.policy.UndoBudget
	}
	return max(s.policy.UndoBudget-s.history.Used(), 0)
}

// Left moves the active piece one column left.
func (s *Session) Left() TurnResult { return s.shift(-1) }

// Right moves the active piece one column right.
func (s *Session) Right() TurnResult { return s.shift(1) }

func (s *Session) shift(dx int) TurnResult {
	if s.over || !s.board.Move(dx, 0) {
		return TurnResult{Kind: TurnNoop, Danger: s.danger}
	}
	return TurnResult{Kind: TurnMoved, Danger: s.danger}
}

// Rotate turns the active piece with wall kicks.
func (s *Session) Rotate() TurnResult {
	if s.over || !s.board.Rotate() {
		return TurnResult{Kind: TurnNoop, Danger: s.danger}
	}
	return TurnResult{Kind: TurnMoved, Danger: s.danger}
}

// SoftDrop is a player-driven step down worth one point.
func (s *Session) SoftDrop() TurnResult { return s.step(true) }

// Gravity is a timer-driven step down worth nothing.
func (s *Session) Gravity() TurnResult { return s.step(false) }

func (s *Session) step(user bool) TurnResult {
	if s.over {
		return TurnResult{Kind: TurnNoop}
	}
	if s.board.Move(0, 1) {
		r := TurnResult{Kind: TurnMoved, Danger: s.danger}
		if user {
			r.Points = s.tracker.OnSoftDrop()
		}
		return r
	}
	return s.land(TurnResult{})
}

// HardDrop drops the active piece to the floor and locks it.
func (s *Session) HardDrop() TurnResult {
	if s.over {
		return TurnResult{Kind: TurnNoop}
	}
	rows := s.board.HardDrop()
	r := TurnResult{Dropped: rows}
	r.Points = s.tracker.OnHardDrop(rows)
	return s.land(r)
}

// land runs the lock sequence once the active piece can no longer fall.
func (s *Session) land(r TurnResult) TurnResult {
	s.history.Save(NewSnapshot(s.board.grid, s.scoreAtSpawn, s.tracker.Level()))

	s.board.LockPiece()
	n := s.board.ClearRows()

	r.Kind = TurnLocked
	r.Landed = true
	r.Lines = n
	r.Label = ClearLabel(n)
	r.Points += s.tracker.OnLinesCleared(n)
	s.refreshDanger(&r)

	if s.board.SpawnNewPiece() {
		return s.gameOver(r)
	}
	s.scoreAtSpawn = s.tracker.Score()
	return r
}

// Hold swaps the active piece with the hold slot.
func (s *Session) Hold() TurnResult {
	if s.over || !s.board.CanHold() {
		return TurnResult{Kind: TurnNoop, Danger: s.danger}
	}
	r := TurnResult{Kind: TurnHeld, Danger: s.danger}
	if s.board.HoldSwap() {
		return s.gameOver(r)
	}
	return r
}

// Undo reverts the board, score and level to just before the last lock.
// The active piece returns to the spawn position.
func (s *Session) Undo() TurnResult {
	if s.over {
		return TurnResult{Kind: TurnNoop}
	}
	snap, ok := s.history.Pop(s.policy.UndoBudget)
	if !ok {
		return TurnResult{Kind: TurnNoop, Danger: s.danger}
	}
	s.board.Restore(snap.grid)
	s.tracker.Restore(snap.Score(), snap.Level())
	s.board.ResetActiveToSpawn()
	s.scoreAtSpawn = snap.Score()

	r := TurnResult{Kind: TurnUndone}
	s.refreshDanger(&r)
	return r
}

func (s *Session) refreshDanger(r *TurnResult) {
	d := s.policy.Danger && s.board.Danger()
	if d != s.danger {
		s.danger = d
		r.DangerChanged = true
	}
	r.Danger = s.danger
}

func (s *Session) gameOver(r TurnResult) TurnResult {
	if s.policy.OnGameOver == GameOverRestart {
		r.Kind = TurnRestarted
		s.restart(&r)
		return r
	}
	s.over = true
	r.Kind = TurnGameOver
	if s.policy.HighScore && s.tracker.Score() > s.best {
		s.best = s.tracker.Score()
		r.NewHighScore = true
	}
	return r
}

// View returns a copy of the render state.
func (s *Session) View() View {
	p, rot, x, y := s.board.Active()
	v := View{
		Piece:     p,
		Rotation:  rot,
		Mask:      s.board.ActiveMask(),
		X:         x,
		Y:         y,
		GhostY:    s.board.GhostRow(),
		HeldPiece: s.board.Held(),
		HasHeld:   s.board.Held() != PieceNone,
		CanHold:   s.board.CanHold(),
	}
	if v.HasHeld {
		v.Held = v.HeldPiece.Mask(0)
	}

	upcoming := s.board.Queue().PeekUpcoming()
	depth := min(max(s.cfg.Preview, 0), len(upcoming))
	v.UpcomingPieces = upcoming[:depth]
	v.Upcoming = make([]Mask, depth)
	for i, up := range v.UpcomingPieces {
		v.Upcoming[i] = up.Mask(0)
	}
	return v
}
