package gomoku

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	ErrNotation  = errors.New("gomoku: malformed move label")
	ErrMoveRange = errors.New("gomoku: move outside board")
)

// FormatMove labels m as column letter plus 1-based row, e.g. "A1", "S19".
func FormatMove(m Move, side int) string {
	if m.IsNull() {
		return "null"
	}
	row, col := m.RowCol(side)
	return string(rune('A'+col)) + strconv.Itoa(row+1)
}

func ParseMove(s string, side int) (Move, error) {
	if len(s) < 2 || len(s) > 3 {
		return NullMove, fmt.Errorf("%w: %q", ErrNotation, s)
	}
	letter := s[0]
	if letter >= 'a' && letter <= 'z' {
		letter -= 'a' - 'A'
	}
	if letter < 'A' || letter > 'Z' {
		return NullMove, fmt.Errorf("%w: %q", ErrNotation, s)
	}
	num, err := strconv.Atoi(s[1:])
	if err != nil || s[1] < '0' || s[1] > '9' {
		return NullMove, fmt.Errorf("%w: %q", ErrNotation, s)
	}
	row, col := num-1, int(letter-'A')
	if row < 0 || row >= side || col >= side {
		return NullMove, fmt.Errorf("%w: %q on %dx%d", ErrMoveRange, s, side, side)
	}
	return MoveFromRowCol(row, col, side), nil
}
