package engine

import "math/rand"

// DefaultLookahead is the minimum number of upcoming pieces kept ready.
const DefaultLookahead = 4

// Queue deals pieces from a shuffled seven-piece bag and keeps a small
// buffer of upcoming pieces for previews.
type Queue struct {
	rng       *rand.Rand
	lookahead int
	bag       []PieceType
	buffer    []PieceType
}

// NewQueue creates a queue drawing from rng. A lookahead below 1 falls back
// to DefaultLookahead.
func NewQueue(rng *rand.Rand, lookahead int) *Queue {
	if lookahead < 1 {
		lookahead = DefaultLookahead
	}
	q := &Queue{
		rng:       rng,
		lookahead: lookahead,
		buffer:    make([]PieceType, 0, lookahead+1),
	}
	q.fill()
	return q
}

// Lookahead returns the configured lookahead depth.
func (q *Queue) Lookahead() int {
	return q.lookahead
}

// Draw removes and returns the next piece, then tops the buffer up again.
func (q *Queue) Draw() PieceType {
	next := q.buffer[0]
	q.buffer = append(q.buffer[:0], q.buffer[1:]...)
	q.fill()
	return next
}

// PeekUpcoming returns a copy of the buffered upcoming pieces.
func (q *Queue) PeekUpcoming() []PieceType {
	out := make([]PieceType, len(q.buffer))
	copy(out, q.buffer)
	return out
}

func (q *Queue) fill() {
	for len(q.buffer) < q.lookahead+1 {
		if len(q.bag) == 0 {
			q.bag = q.newBag()
		}
		q.buffer = append(q.buffer, q.bag[0])
		q.bag = q.bag[1:]
	}
}

func (q *Queue) newBag() []PieceType {
	bag := make([]PieceType, PieceCount)
	copy(bag, AllPieces[:])
	q.rng.Shuffle(len(bag), func(i, j int) {
		bag[i], bag[j] = bag[j], bag[i]
	})
	return bag
}
