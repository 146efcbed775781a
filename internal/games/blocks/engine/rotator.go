package engine

// Rotator tracks the orientation of the active piece.
type Rotator struct {
	piece PieceType
	index int
}

// Assign binds the rotator to a new piece in its first orientation.
func (r *Rotator) Assign(p PieceType) {
	r.piece = p
	r.index = 0
}

// Piece returns the bound piece.
func (r *Rotator) Piece() PieceType { return r.piece }

// Index returns the current rotation index.
func (r *Rotator) Index() int { return r.index }

// CurrentMask returns the mask of the current orientation.
func (r *Rotator) CurrentMask() Mask {
	return r.piece.Mask(r.index)
}

// PreviewNext returns the next orientation and its index without
// committing to it.
func (r *Rotator) PreviewNext() (Mask, int) {
	n := r.piece.States()
	if n == 0 {
		return Mask{}, 0
	}
	next := (r.index + 1) % n
	return r.piece.Mask(next), next
}

// Commit makes a previewed index current.
func (r *Rotator) Commit(index int) {
	r.index = index
}
