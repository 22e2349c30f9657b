package gomoku

import (
	"errors"
	"fmt"
	"iter"
)

const (
	MaxSide  = 19
	MaxCells = MaxSide * MaxSide

	winLength = 5
)

var (
	ErrBoardSize   = errors.New("gomoku: unsupported board size")
	ErrInvalidMove = errors.New("gomoku: invalid move")
)

// Board is a plain value: assigning it copies the whole grid, so a copy can
// be mutated without affecting the original. Only the first Side()*Side()
// cells are used.
type Board struct {
	cells    [MaxCells]Player
	key      Key
	side     uint8
	ply      uint16
	lastMove Move
}

// New returns an empty side x side board. Side must be in [1, MaxSide].
func New(side int) (Board, error) {
	if side < 1 || side > MaxSide {
		return Board{}, fmt.Errorf("%w: %d (want 1..%d)", ErrBoardSize, side, MaxSide)
	}
	return Board{side: uint8(side), key: newKey(side), lastMove: NullMove}, nil
}

// MustNew is New for sizes known to be valid; it panics otherwise.
func MustNew(side int) Board {
	b, err := New(side)
	if err != nil {
		panic(err)
	}
	return b
}

func (b *Board) Side() int      { return int(b.side) }
func (b *Board) NumCells() int  { return int(b.side) * int(b.side) }
func (b *Board) Ply() int       { return int(b.ply) }
func (b *Board) LastMove() Move { return b.lastMove }
func (b *Board) Key() Key       { return b.key }

// Turn is derived from ply parity; First moves on even plies.
func (b *Board) Turn() Player {
	if b.ply%2 == 0 {
		return First
	}
	return Second
}

func (b *Board) At(m Move) Player { return b.cells[m.index] }

func (b *Board) Cell(row, col int) Player { return b.cells[row*int(b.side)+col] }

func (b *Board) onBoard(row, col int) bool {
	n := int(b.side)
	return row >= 0 && row < n && col >= 0 && col < n
}

// GenerateMoves yields every empty cell in ascending index order and stops
// as soon as yield returns false. The method value is an iter.Seq[Move].
func (b *Board) GenerateMoves(yield func(Move) bool) {
	n := b.NumCells()
	for i := 0; i < n; i++ {
		if b.cells[i] == Empty && !yield(Move{index: uint16(i)}) {
			return
		}
	}
}

func (b *Board) Moves() iter.Seq[Move] { return b.GenerateMoves }

// CountMoves is the number of empty cells.
func (b *Board) CountMoves() int { return b.NumCells() - int(b.ply) }

// FeatureMap yields (index, player) for every cell in row-major order.
func (b *Board) FeatureMap() iter.Seq2[int, Player] {
	return func(yield func(int, Player) bool) {
		n := b.NumCells()
		for i := 0; i < n; i++ {
			if !yield(i, b.cells[i]) {
				return
			}
		}
	}
}

// Apply places the side to move on m. m must be a non-null move onto an
// empty cell; the check panics with ErrInvalidMove unless the package is
// built with the gomoku_nocheck tag, in which case a bad move corrupts the
// board.
func (b *Board) Apply(m Move) {
	if checkMoves {
		if err := b.validate(m); err != nil {
			panic(err)
		}
	}
	b.place(m)
}

// TryApply always validates m and leaves the board untouched on error.
func (b *Board) TryApply(m Move) error {
	if err := b.validate(m); err != nil {
		return err
	}
	b.place(m)
	return nil
}

func (b *Board) validate(m Move) error {
	switch {
	case m.IsNull():
		return fmt.Errorf("%w: null move", ErrInvalidMove)
	case m.Index() >= b.NumCells():
		return fmt.Errorf("%w: index %d outside %dx%d board", ErrInvalidMove, m.Index(), b.side, b.side)
	case b.cells[m.index] != Empty:
		return fmt.Errorf("%w: cell %d occupied by %v", ErrInvalidMove, m.Index(), b.cells[m.index])
	}
	return nil
}

func (b *Board) place(m Move) {
	p := b.Turn()
	b.cells[m.index] = p
	b.key.set(int(m.index), p)
	b.lastMove = m
	b.ply++
}
