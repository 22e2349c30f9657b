package gomoku

// Sampler returns a uniformly distributed integer in [lo, hi).
type Sampler func(lo, hi int) int

// ApplyRandom plays a uniformly chosen empty cell and returns it. Below 95%
// fill it rejection-samples raw indices (about 20 tries at worst); above
// that it lists the empty cells and picks one. On a full board it returns
// NullMove and leaves the board alone.
func (b *Board) ApplyRandom(sample Sampler) Move {
	n := b.NumCells()
	if int(b.ply) >= n {
		return NullMove
	}

	var m Move
	if int(b.ply)*100 > n*95 {
		var buf [MaxCells]Move
		k := 0
		for mv := range b.Moves() {
			buf[k] = mv
			k++
		}
		m = buf[sample(0, k)]
	} else {
		for {
			i := sample(0, n)
			if b.cells[i] == Empty {
				m = Move{index: uint16(i)}
				break
			}
		}
	}
	b.Apply(m)
	return m
}
