package gomoku

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Text form: rows top to bottom joined by '/', then the side to move and
// the ply, e.g. "...../...../..x../...../..... o 1".

var (
	ErrFormat       = errors.New("gomoku: malformed board text")
	ErrRowCount     = errors.New("gomoku: bad row count")
	ErrColumnCount  = errors.New("gomoku: bad column count")
	ErrSymbol       = errors.New("gomoku: invalid symbol")
	ErrPly          = errors.New("gomoku: bad ply")
	ErrTurnMismatch = errors.New("gomoku: side to move does not match ply")
)

func playerToChar(p Player) byte {
	switch p {
	case First:
		return 'x'
	case Second:
		return 'o'
	}
	return '.'
}

func charToPlayer(ch byte) (Player, bool) {
	switch ch {
	case '.':
		return Empty, true
	case 'x':
		return First, true
	case 'o':
		return Second, true
	}
	return Empty, false
}

func (b *Board) Encode() string {
	n := int(b.side)
	var sb strings.Builder
	sb.Grow(n*(n+1) + 8)
	for r := 0; r < n; r++ {
		if r > 0 {
			sb.WriteByte('/')
		}
		for c := 0; c < n; c++ {
			sb.WriteByte(playerToChar(b.Cell(r, c)))
		}
	}
	sb.WriteByte(' ')
	sb.WriteByte(playerToChar(b.Turn()))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(int(b.ply)))
	return sb.String()
}

// Decode parses the output of Encode. The decoded board has no last move,
// so its Outcome is InProgress until the next move is applied.
func Decode(s string) (Board, error) {
	fields := strings.Split(s, " ")
	if len(fields) != 3 {
		return Board{}, fmt.Errorf("%w: want 3 space-separated fields, got %d", ErrFormat, len(fields))
	}
	rows := strings.Split(fields[0], "/")
	n := len(rows)
	if n < 1 || n > MaxSide {
		return Board{}, fmt.Errorf("%w: %d", ErrRowCount, n)
	}
	b := MustNew(n)

	stones := 0
	for r, row := range rows {
		if len(row) != n {
			return Board{}, fmt.Errorf("%w: row %d has %d cells, want %d", ErrColumnCount, r+1, len(row), n)
		}
		for c := 0; c < n; c++ {
			p, ok := charToPlayer(row[c])
			if !ok {
				return Board{}, fmt.Errorf("%w: %q at row %d column %d", ErrSymbol, row[c], r+1, c+1)
			}
			if p == Empty {
				continue
			}
			i := r*n + c
			b.cells[i] = p
			b.key.set(i, p)
			stones++
		}
	}

	ply, err := strconv.Atoi(fields[2])
	if err != nil || ply < 0 {
		return Board{}, fmt.Errorf("%w: %q", ErrPly, fields[2])
	}
	if ply != stones {
		return Board{}, fmt.Errorf("%w: ply %d but %d stones on the board", ErrPly, ply, stones)
	}
	b.ply = uint16(ply)

	if len(fields[1]) != 1 {
		return Board{}, fmt.Errorf("%w: %q", ErrSymbol, fields[1])
	}
	turn, ok := charToPlayer(fields[1][0])
	if !ok || turn == Empty {
		return Board{}, fmt.Errorf("%w: side to move %q", ErrSymbol, fields[1])
	}
	if turn != b.Turn() {
		return Board{}, fmt.Errorf("%w: %q to move at ply %d", ErrTurnMismatch, fields[1], ply)
	}
	return b, nil
}
