package engine

// PieceType identifies one of the seven tetrominoes.
// The numeric value doubles as the color id written into the grid.
type PieceType uint8

const (
	PieceNone PieceType = iota
	PieceI
	PieceJ
	PieceL
	PieceO
	PieceS
	PieceT
	PieceZ
)

// PieceCount is the number of distinct pieces in a bag.
const PieceCount = 7

// AllPieces lists the pieces in catalog order.
var AllPieces = [PieceCount]PieceType{PieceI, PieceJ, PieceL, PieceO, PieceS, PieceT, PieceZ}

// String returns the single-letter name of the piece.
func (p PieceType) String() string {
	switch p {
	case PieceI:
		return "I"
	case PieceJ:
		return "J"
	case PieceL:
		return "L"
	case PieceO:
		return "O"
	case PieceS:
		return "S"
	case PieceT:
		return "T"
	case PieceZ:
		return "Z"
	default:
		return "-"
	}
}

// Valid reports whether p is a catalog piece.
func (p PieceType) Valid() bool {
	return p >= PieceI && p <= PieceZ
}

// KickClass selects the wall-kick table used when rotating a piece.
type KickClass uint8

const (
	// KickStandard is used by every rotating piece except the bar.
	KickStandard KickClass = iota
	// KickLong is used by the four-long bar.
	KickLong
)

// Offset is a wall-kick displacement.
type Offset struct {
	DX, DY int
}

var (
	standardKicks = []Offset{{0, 0}, {-1, 0}, {1, 0}, {0, -1}, {-1, -1}, {1, -1}}
	longKicks     = []Offset{{0, 0}, {-2, 0}, {1, 0}, {-2, 1}, {1, -2}}
)

// Kicks returns the ordered kick candidates for the class.
// The first candidate that fits wins.
func (k KickClass) Kicks() []Offset {
	var src []Offset
	switch k {
	case KickLong:
		src = longKicks
	default:
		src = standardKicks
	}
	out := make([]Offset, len(src))
	copy(out, src)
	return out
}

type pieceDef struct {
	kick   KickClass
	states []Mask
}

var catalog = map[PieceType]pieceDef{
	PieceI: {
		kick: KickLong,
		states: []Mask{
			{{0, 0, 0, 0}, {1, 1, 1, 1}, {0, 0, 0, 0}, {0, 0, 0, 0}},
			{{0, 1, 0, 0}, {0, 1, 0, 0}, {0, 1, 0, 0}, {0, 1, 0, 0}},
		},
	},
	PieceJ: {
		states: []Mask{
			{{0, 0, 0, 0}, {2, 2, 2, 0}, {0, 0, 2, 0}, {0, 0, 0, 0}},
			{{0, 0, 0, 0}, {0, 2, 2, 0}, {0, 2, 0, 0}, {0, 2, 0, 0}},
			{{0, 0, 0, 0}, {0, 2, 0, 0}, {0, 2, 2, 2}, {0, 0, 0, 0}},
			{{0, 0, 2, 0}, {0, 0, 2, 0}, {0, 2, 2, 0}, {0, 0, 0, 0}},
		},
	},
	PieceL: {
		states: []Mask{
			{{0, 0, 0, 0}, {0, 3, 3, 3}, {0, 3, 0, 0}, {0, 0, 0, 0}},
			{{0, 0, 0, 0}, {0, 3, 3, 0}, {0, 0, 3, 0}, {0, 0, 3, 0}},
			{{0, 0, 0, 0}, {0, 0, 3, 0}, {3, 3, 3, 0}, {0, 0, 0, 0}},
			{{0, 3, 0, 0}, {0, 3, 0, 0}, {0, 3, 3, 0}, {0, 0, 0, 0}},
		},
	},
	PieceO: {
		states: []Mask{
			{{0, 0, 0, 0}, {0, 4, 4, 0}, {0, 4, 4, 0}, {0, 0, 0, 0}},
		},
	},
	PieceS: {
		states: []Mask{
			{{0, 0, 0, 0}, {0, 5, 5, 0}, {5, 5, 0, 0}, {0, 0, 0, 0}},
			{{5, 0, 0, 0}, {5, 5, 0, 0}, {0, 5, 0, 0}, {0, 0, 0, 0}},
		},
	},
	PieceT: {
		states: []Mask{
			{{0, 0, 0, 0}, {6, 6, 6, 0}, {0, 6, 0, 0}, {0, 0, 0, 0}},
			{{0, 6, 0, 0}, {0, 6, 6, 0}, {0, 6, 0, 0}, {0, 0, 0, 0}},
			{{0, 6, 0, 0}, {6, 6, 6, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}},
			{{0, 6, 0, 0}, {6, 6, 0, 0}, {0, 6, 0, 0}, {0, 0, 0, 0}},
		},
	},
	PieceZ: {
		states: []Mask{
			{{0, 0, 0, 0}, {7, 7, 0, 0}, {0, 7, 7, 0}, {0, 0, 0, 0}},
			{{0, 7, 0, 0}, {7, 7, 0, 0}, {7, 0, 0, 0}, {0, 0, 0, 0}},
		},
	},
}

// Kick returns the kick class of the piece.
func (p PieceType) Kick() KickClass {
	return catalog[p].kick
}

// States returns the number of rotation states of the piece.
func (p PieceType) States() int {
	return len(catalog[p].states)
}

// Mask returns the mask for rotation state i, wrapping i modulo the number
// of states. Unknown pieces yield an empty mask.
func (p PieceType) Mask(i int) Mask {
	states := catalog[p].states
	if len(states) == 0 {
		return Mask{}
	}
	i %= len(states)
	if i < 0 {
		i += len(states)
	}
	return states[i]
}
