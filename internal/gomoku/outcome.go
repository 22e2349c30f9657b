package gomoku

// line axes: horizontal, vertical, diagonal, anti-diagonal
var axes = [4][2]int{{0, 1}, {1, 0}, {1, 1}, {1, -1}}

// Outcome only inspects the lines through the last move, so it is O(side)
// per call. It reports "five or more": the scan stops the moment a run of
// five is found, so overlines count as wins too.
func (b *Board) Outcome() Outcome {
	if b.lastMove.IsNull() {
		return Outcome{}
	}
	row, col := b.lastMove.RowCol(int(b.side))
	mover := b.Turn().Opponent()
	for _, d := range axes {
		if b.fiveThrough(row, col, d[0], d[1], mover) {
			return WinFor(mover)
		}
	}
	if int(b.ply) == b.NumCells() {
		return Outcome{Status: Draw}
	}
	return Outcome{}
}

// fiveThrough walks +d then -d from (row, col), sharing one running count
// that starts at the stone on (row, col).
func (b *Board) fiveThrough(row, col, dr, dc int, p Player) bool {
	n := int(b.side)
	count := 1
	for r, c := row+dr, col+dc; b.onBoard(r, c); r, c = r+dr, c+dc {
		if b.cells[r*n+c] != p {
			break
		}
		count++
		if count == winLength {
			return true
		}
	}
	for r, c := row-dr, col-dc; b.onBoard(r, c); r, c = r-dr, c-dc {
		if b.cells[r*n+c] != p {
			break
		}
		count++
		if count == winLength {
			return true
		}
	}
	return false
}
