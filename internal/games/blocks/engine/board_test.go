package engine

import (
	"math/rand"
	"testing"
)

func newTestBoard(seed int64) *Board {
	return NewBoard(DefaultBoardConfig(), NewQueue(rand.New(rand.NewSource(seed)), DefaultLookahead))
}

// force replaces the active piece with p at the spawn position.
func (b *Board) force(p PieceType) {
	b.rot.Assign(p)
	b.x, b.y = b.SpawnPosition()
	b.canHold = true
}

// filledGrid returns a grid of the board's size with every cell set except
// those listed as holes.
func filledGrid(cfg BoardConfig, holes func(x, y int) bool) *Grid {
	g := NewGrid(cfg.Width, cfg.Height)
	for y := range cfg.Height {
		for x := range cfg.Width {
			if !holes(x, y) {
				g.set(x, y, 8)
			}
		}
	}
	return g
}

func TestSpawnPosition(t *testing.T) {
	b := newTestBoard(1)
	x, y := b.SpawnPosition()
	if x != 3 || y != 0 {
		t.Errorf("SpawnPosition() = (%d, %d), want (3, 0)", x, y)
	}
}

func TestSpawnNeverBlockedOnEmptyBoard(t *testing.T) {
	for _, p := range AllPieces {
		b := newTestBoard(1)
		b.force(p)
		x, y := b.SpawnPosition()
		if Overlaps(b.grid, b.ActiveMask(), x, y) {
			t.Errorf("%s is blocked at spawn on an empty board", p)
		}
	}

	b := newTestBoard(5)
	for i := range 30 {
		if b.SpawnNewPiece() {
			t.Fatalf("spawn %d reported blocked on an empty board", i)
		}
	}
}

func TestBlockedAtSpawn(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*BoardConfig)
		want   PieceType
	}{
		{"default board", func(*BoardConfig) {}, PieceNone},
		{"four wide at the left edge", func(c *BoardConfig) { c.Width, c.SpawnXOffset = 4, 2 }, PieceNone},
		{"three wide", func(c *BoardConfig) { c.Width = 3 }, PieceI},
		{"spawn past the right edge", func(c *BoardConfig) { c.SpawnXOffset = -4 }, PieceI},
		{"two rows tall", func(c *BoardConfig) { c.Height, c.HiddenRows = 2, 0 }, PieceJ},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultBoardConfig()
			tt.mutate(&cfg)
			if got := cfg.BlockedAtSpawn(); got != tt.want {
				t.Errorf("BlockedAtSpawn() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestSpawnBlocked(t *testing.T) {
	b := newTestBoard(1)
	b.Restore(filledGrid(b.cfg, func(x, y int) bool { return false }))
	if !b.SpawnNewPiece() {
		t.Error("spawn on a full board should report blocked")
	}
}

func TestMoveStopsAtWalls(t *testing.T) {
	b := newTestBoard(1)
	b.force(PieceO)

	left := 0
	for b.Move(-1, 0) {
		left++
	}
	if _, _, x, _ := b.Active(); left != 4 || x != -1 {
		t.Errorf("moved left %d times to x=%d, want 4 to x=-1", left, x)
	}

	b.force(PieceO)
	right := 0
	for b.Move(1, 0) {
		right++
	}
	if _, _, x, _ := b.Active(); right != 4 || x != 7 {
		t.Errorf("moved right %d times to x=%d, want 4 to x=7", right, x)
	}
}

func TestMoveFailureKeepsState(t *testing.T) {
	b := newTestBoard(1)
	b.force(PieceT)
	b.Restore(filledGrid(b.cfg, func(x, y int) bool { return y < 3 }))

	before := b.Grid()
	_, rot, x, y := b.Active()
	if b.Move(0, 1) {
		t.Fatal("move into occupied row succeeded")
	}
	_, rot2, x2, y2 := b.Active()
	if rot != rot2 || x != x2 || y != y2 {
		t.Errorf("failed move changed the piece: (%d,%d,%d) -> (%d,%d,%d)", rot, x, y, rot2, x2, y2)
	}
	if !before.Equal(b.grid) {
		t.Error("failed move changed the grid")
	}
}

func TestRotateLongKick(t *testing.T) {
	b := newTestBoard(1)
	b.force(PieceI)

	if !b.Rotate() {
		t.Fatal("rotating I on an empty board failed")
	}
	moves := 0
	for b.Move(1, 0) {
		moves++
	}
	if _, rot, x, _ := b.Active(); moves != 5 || rot != 1 || x != 8 {
		t.Fatalf("vertical I at rot=%d x=%d after %d moves, want rot=1 x=8 after 5", rot, x, moves)
	}

	// Horizontal at x=8 sticks out; the (-2,0) kick fits.
	if !b.Rotate() {
		t.Fatal("rotation against the right wall should kick")
	}
	if _, rot, x, y := b.Active(); rot != 0 || x != 6 || y != 0 {
		t.Errorf("after kick rot=%d at (%d,%d), want rot=0 at (6,0)", rot, x, y)
	}
}

func TestRotateStandardKick(t *testing.T) {
	b := newTestBoard(1)
	b.force(PieceT)

	if !b.Rotate() {
		t.Fatal("rotating T on an empty board failed")
	}
	moves := 0
	for b.Move(-1, 0) {
		moves++
	}
	if _, _, x, _ := b.Active(); moves != 4 || x != -1 {
		t.Fatalf("T reached x=%d after %d moves, want x=-1 after 4", x, moves)
	}

	// State 2 at x=-1 crosses the left wall; (-1,0) is worse, (1,0) fits.
	if !b.Rotate() {
		t.Fatal("rotation against the left wall should kick")
	}
	if _, rot, x, y := b.Active(); rot != 2 || x != 0 || y != 0 {
		t.Errorf("after kick rot=%d at (%d,%d), want rot=2 at (0,0)", rot, x, y)
	}
}

func TestRotateBlockedLeavesStateAlone(t *testing.T) {
	b := newTestBoard(1)
	b.force(PieceI)
	if !b.Rotate() {
		t.Fatal("rotating I on an empty board failed")
	}

	// Only column 4, where the vertical bar sits, is free.
	b.Restore(filledGrid(b.cfg, func(x, y int) bool { return x == 4 }))

	if b.Rotate() {
		t.Fatal("rotation succeeded with no room for a horizontal bar")
	}
	if _, rot, x, y := b.Active(); rot != 1 || x != 3 || y != 0 {
		t.Errorf("failed rotation moved piece to rot=%d (%d,%d)", rot, x, y)
	}
}

func TestHardDropAndGhost(t *testing.T) {
	b := newTestBoard(1)
	b.force(PieceO)

	if got := b.GhostRow(); got != 21 {
		t.Errorf("GhostRow() = %d, want 21", got)
	}
	if _, _, _, y := b.Active(); y != 0 {
		t.Fatalf("GhostRow moved the piece to y=%d", y)
	}
	if rows := b.HardDrop(); rows != 21 {
		t.Errorf("HardDrop() = %d, want 21", rows)
	}
	if b.HardDrop() != 0 {
		t.Error("second HardDrop should not move")
	}
}

func TestLastCellClearsLine(t *testing.T) {
	b := newTestBoard(1)
	bottom := b.cfg.Height - 1
	b.Restore(filledGrid(b.cfg, func(x, y int) bool { return y != bottom || x >= 6 }))

	b.force(PieceI)
	for range 3 {
		b.Move(1, 0)
	}
	b.HardDrop()
	b.LockPiece()

	if n := b.ClearRows(); n != 1 {
		t.Fatalf("ClearRows() = %d, want 1", n)
	}
	for x := range b.cfg.Width {
		if v := b.grid.At(x, bottom); v != 0 {
			t.Errorf("bottom row cell %d = %d after clear, want 0", x, v)
		}
	}
}

func TestHoldSwap(t *testing.T) {
	b := newTestBoard(11)
	b.SpawnNewPiece()
	first, _, _, _ := b.Active()
	next := b.queue.PeekUpcoming()[0]

	if b.HoldSwap() {
		t.Fatal("first hold reported blocked")
	}
	if b.Held() != first {
		t.Errorf("Held() = %s, want %s", b.Held(), first)
	}
	if p, _, _, _ := b.Active(); p != next {
		t.Errorf("active after first hold = %s, want queued %s", p, next)
	}
	if b.CanHold() {
		t.Error("hold should be disabled until the next spawn")
	}

	// Second hold in the same turn is a no-op.
	b.HoldSwap()
	if p, _, _, _ := b.Active(); p != next || b.Held() != first {
		t.Error("second hold in one turn changed pieces")
	}

	b.SpawnNewPiece()
	current, _, _, _ := b.Active()
	b.Rotate()
	b.Move(1, 0)
	b.Move(0, 1)

	if b.HoldSwap() {
		t.Fatal("swap reported blocked on an empty board")
	}
	p, rot, x, y := b.Active()
	sx, sy := b.SpawnPosition()
	if p != first || rot != 0 || x != sx || y != sy {
		t.Errorf("swapped in %s rot=%d at (%d,%d), want %s rot=0 at (%d,%d)", p, rot, x, y, first, sx, sy)
	}
	if b.Held() != current {
		t.Errorf("Held() = %s, want %s", b.Held(), current)
	}
}

func TestDanger(t *testing.T) {
	cfg := DefaultBoardConfig()
	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"hidden row only", 0, 3, false},
		{"first danger row", 0, 4, true},
		{"last danger row", 9, 8, true},
		{"below the band", 5, 9, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBoard(cfg, NewQueue(rand.New(rand.NewSource(1)), 4))
			if b.Danger() {
				t.Fatal("empty board reports danger")
			}
			g := NewGrid(cfg.Width, cfg.Height)
			g.set(tt.x, tt.y, 1)
			b.Restore(g)
			if got := b.Danger(); got != tt.want {
				t.Errorf("Danger() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDangerOnShortBoard(t *testing.T) {
	cfg := BoardConfig{Width: 4, Height: 6, HiddenRows: 4, DangerRows: 5}
	b := NewBoard(cfg, NewQueue(rand.New(rand.NewSource(1)), 4))
	b.Restore(filledGrid(cfg, func(x, y int) bool { return false }))
	if b.Danger() {
		t.Error("board shorter than the danger band should never report danger")
	}
}

func TestRestoreDoesNotAlias(t *testing.T) {
	b := newTestBoard(1)
	g := NewGrid(b.cfg.Width, b.cfg.Height)
	g.set(2, 20, 3)
	b.Restore(g)

	g.set(2, 20, 0)
	if b.grid.At(2, 20) != 3 {
		t.Error("mutating the restored grid leaked into the board")
	}

	out := b.Grid()
	out.set(2, 20, 0)
	if b.grid.At(2, 20) != 3 {
		t.Error("mutating Grid() leaked into the board")
	}
}

func TestResetActiveToSpawnKeepsRotation(t *testing.T) {
	b := newTestBoard(1)
	b.force(PieceT)
	b.Rotate()
	b.Move(-1, 0)
	b.HardDrop()

	b.ResetActiveToSpawn()
	p, rot, x, y := b.Active()
	if p != PieceT || rot != 1 || x != 3 || y != 0 {
		t.Errorf("after reset got %s rot=%d at (%d,%d), want T rot=1 at (3,0)", p, rot, x, y)
	}
}

func TestFullReset(t *testing.T) {
	b := newTestBoard(1)
	b.SpawnNewPiece()
	b.HoldSwap()
	b.Restore(filledGrid(b.cfg, func(x, y int) bool { return y < 10 }))

	if b.FullReset() {
		t.Fatal("spawn after reset reported blocked")
	}
	if !b.grid.Empty() {
		t.Error("grid not empty after FullReset")
	}
	if b.Held() != PieceNone || !b.CanHold() {
		t.Errorf("hold slot not cleared: held=%s canHold=%v", b.Held(), b.CanHold())
	}
}
