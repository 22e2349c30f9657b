package gomoku

// Move is a flattened row-major cell index. Its row and column only make
// sense together with the side length of the board it was generated on.
type Move struct {
	index uint16
}

const nullIndex = 0xFFFF

// NullMove never addresses a cell on any supported board.
var NullMove = Move{index: nullIndex}

// MoveAt wraps a raw index without bounds checks.
func MoveAt(i int) Move { return Move{index: uint16(i)} }

func MoveFromRowCol(row, col, side int) Move { return MoveAt(row*side + col) }

func (m Move) Index() int   { return int(m.index) }
func (m Move) IsNull() bool { return m.index == nullIndex }

func (m Move) RowCol(side int) (row, col int) {
	return int(m.index) / side, int(m.index) % side
}
