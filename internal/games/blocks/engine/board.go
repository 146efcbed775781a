package engine

// BoardConfig fixes the playfield geometry.
type BoardConfig struct {
	Width        int // Columns
	Height       int // Rows, hidden rows included
	HiddenRows   int // Leading rows above the visible field
	DangerRows   int // Rows below the hidden band checked for danger
	SpawnXOffset int // Spawn column is Width/2 - SpawnXOffset
}

// DefaultBoardConfig returns the classic 10x20 visible field with four
// hidden spawn rows.
func DefaultBoardConfig() BoardConfig {
	return BoardConfig{
		Width:        10,
		Height:       24,
		HiddenRows:   4,
		DangerRows:   5,
		SpawnXOffset: 2,
	}
}

// SpawnPosition returns the offset new pieces start at.
func (c BoardConfig) SpawnPosition() (x, y int) {
	return c.Width/2 - c.SpawnXOffset, 0
}

// BlockedAtSpawn returns the first piece that does not fit at the spawn
// position of an empty board, or PieceNone when every piece fits. The
// dimensions must be positive.
func (c BoardConfig) BlockedAtSpawn() PieceType {
	g := NewGrid(c.Width, c.Height)
	x, y := c.SpawnPosition()
	for _, p := range AllPieces {
		if Overlaps(g, p.Mask(0), x, y) {
			return p
		}
	}
	return PieceNone
}

// Board owns the locked grid, the active piece and the hold slot.
type Board struct {
	cfg     BoardConfig
	grid    *Grid
	queue   *Queue
	rot     Rotator
	x, y    int
	held    PieceType
	canHold bool
}

// NewBoard creates an empty board fed by q. No piece is active until
// SpawnNewPiece is called. It panics on non-positive dimensions.
func NewBoard(cfg BoardConfig, q *Queue) *Board {
	return &Board{
		cfg:     cfg,
		grid:    NewGrid(cfg.Width, cfg.Height),
		queue:   q,
		canHold: true,
	}
}

// Config returns the board geometry.
func (b *Board) Config() BoardConfig { return b.cfg }

// Grid returns a copy of the locked grid.
func (b *Board) Grid() *Grid { return b.grid.Clone() }

// Queue returns the piece queue feeding the board.
func (b *Board) Queue() *Queue { return b.queue }

// Active returns the active piece, its rotation index and offset.
func (b *Board) Active() (p PieceType, rotation, x, y int) {
	return b.rot.Piece(), b.rot.Index(), b.x, b.y
}

// ActiveMask returns the mask of the active piece in its current rotation.
func (b *Board) ActiveMask() Mask { return b.rot.CurrentMask() }

// Held returns the held piece, PieceNone when the slot is empty.
func (b *Board) Held() PieceType { return b.held }

// CanHold reports whether hold is still available this turn.
func (b *Board) CanHold() bool { return b.canHold }

// SpawnPosition returns the offset new pieces start at.
func (b *Board) SpawnPosition() (x, y int) {
	return b.cfg.SpawnPosition()
}

// Move shifts the active piece by (dx, dy) if the target is free.
func (b *Board) Move(dx, dy int) bool {
	if !b.rot.Piece().Valid() {
		return false
	}
	nx, ny := b.x+dx, b.y+dy
	if Overlaps(b.grid, b.rot.CurrentMask(), nx, ny) {
		return false
	}
	b.x, b.y = nx, ny
	return true
}

// Rotate turns the active piece to its next orientation, trying the kick
// candidates of its class in order. Nothing changes when none fits.
func (b *Board) Rotate() bool {
	p := b.rot.Piece()
	if !p.Valid() {
		return false
	}
	mask, next := b.rot.PreviewNext()
	for _, k := range p.Kick().Kicks() {
		nx, ny := b.x+k.DX, b.y+k.DY
		if !Overlaps(b.grid, mask, nx, ny) {
			b.rot.Commit(next)
			b.x, b.y = nx, ny
			return true
		}
	}
	return false
}

// HardDrop moves the active piece down until it rests and returns the
// number of rows travelled.
func (b *Board) HardDrop() int {
	rows := 0
	for b.Move(0, 1) {
		rows++
	}
	return rows
}

// SpawnNewPiece draws the next piece and places it at the spawn position.
// It reports true when the spawned piece is blocked.
func (b *Board) SpawnNewPiece() bool {
	b.rot.Assign(b.queue.Draw())
	b.x, b.y = b.SpawnPosition()
	b.canHold = true
	return Overlaps(b.grid, b.rot.CurrentMask(), b.x, b.y)
}

// LockPiece merges the active piece into the grid.
func (b *Board) LockPiece() {
	b.grid = Merge(b.grid, b.rot.CurrentMask(), b.x, b.y)
}

// ClearRows removes full rows from the grid and returns how many went.
func (b *Board) ClearRows() int {
	n, g := ClearFullRows(b.grid)
	b.grid = g
	return n
}

// HoldSwap parks the active piece in the hold slot. The first hold spawns
// a fresh piece; later holds swap the held piece back in at the spawn
// position. Hold is then disabled until the next spawn. The result reports
// whether the incoming piece is blocked.
func (b *Board) HoldSwap() bool {
	if !b.canHold || !b.rot.Piece().Valid() {
		return false
	}
	current := b.rot.Piece()
	if b.held == PieceNone {
		b.held = current
		blocked := b.SpawnNewPiece()
		b.canHold = false
		return blocked
	}
	b.rot.Assign(b.held)
	b.held = current
	b.x, b.y = b.SpawnPosition()
	b.canHold = false
	return Overlaps(b.grid, b.rot.CurrentMask(), b.x, b.y)
}

// GhostRow returns the row the active piece would land on.
func (b *Board) GhostRow() int {
	mask := b.rot.CurrentMask()
	y := b.y
	for !Overlaps(b.grid, mask, b.x, y+1) {
		y++
		if y >= b.grid.h {
			break
		}
	}
	return y
}

// Danger reports whether any cell in the band just below the hidden rows is
// occupied. Boards too short to hold the band never report danger.
func (b *Board) Danger() bool {
	top := b.cfg.HiddenRows
	bottom := top + b.cfg.DangerRows
	if b.grid.h < bottom || top < 0 {
		return false
	}
	for y := top; y < bottom; y++ {
		for x := range b.grid.w {
			if b.grid.At(x, y) != 0 {
				return true
			}
		}
	}
	return false
}

// Restore replaces the grid with a copy of g.
func (b *Board) Restore(g *Grid) {
	b.grid = g.Clone()
}

// ResetActiveToSpawn moves the active piece back to the spawn position,
// keeping its type and rotation.
func (b *Board) ResetActiveToSpawn() {
	b.x, b.y = b.SpawnPosition()
}

// FullReset empties the grid and the hold slot and spawns a new piece.
func (b *Board) FullReset() bool {
	b.grid = NewGrid(b.cfg.Width, b.cfg.Height)
	b.held = PieceNone
	b.canHold = true
	return b.SpawnNewPiece()
}
