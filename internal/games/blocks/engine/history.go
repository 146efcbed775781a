package engine

// Snapshot is a point-in-time copy of the state undo returns to.
type Snapshot struct {
	grid  *Grid
	score int
	level int
}

// NewSnapshot copies g so later changes to it do not leak into the
// snapshot.
func NewSnapshot(g *Grid, score, level int) Snapshot {
	return Snapshot{grid: g.Clone(), score: score, level: level}
}

// Grid returns a copy of the saved grid.
func (s Snapshot) Grid() *Grid { return s.grid.Clone() }

func (s Snapshot) Score() int { return s.score }
func (s Snapshot) Level() int { return s.level }

// History keeps the most recent snapshot and counts undos.
type History struct {
	pending *Snapshot
	pops    int
}

// Save replaces any pending snapshot with s.
func (h *History) Save(s Snapshot) {
	h.pending = &s
}

// Pop hands out the pending snapshot unless none is held or budget undos
// have already been used. A failed pop changes nothing.
func (h *History) Pop(budget int) (Snapshot, bool) {
	if h.pending == nil || h.pops >= budget {
		return Snapshot{}, false
	}
	s := *h.pending
	h.pending = nil
	h.pops++
	return s, true
}

// Pending reports whether a snapshot is waiting.
func (h *History) Pending() bool { return h.pending != nil }

// Used returns the number of successful pops.
func (h *History) Used() int { return h.pops }

// Reset drops the pending snapshot and the pop count.
func (h *History) Reset() {
	h.pending = nil
	h.pops = 0
}
