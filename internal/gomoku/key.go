package gomoku

const (
	keyWords = (MaxCells*2 + 63) / 64

	// cells end at bit 18 of the last word; the side length sits above them
	keySideShift = 56
)

// Key packs the side length and the cell contents of a board, two bits per
// cell. It ignores ply and last move: boards of one size with the same
// stones have the same Key. Key is comparable and can be used directly as a
// map key.
type Key [keyWords]uint64

func newKey(side int) Key {
	var k Key
	k[keyWords-1] = uint64(side) << keySideShift
	return k
}

func (k Key) Side() int { return int(k[keyWords-1] >> keySideShift) }

func (k *Key) set(i int, p Player) {
	shift := uint(i%32) * 2
	w := &k[i/32]
	*w = *w&^(3<<shift) | uint64(p)<<shift
}

// Hash is FNV-1a over the packed words, for picking cache shards.
func (k Key) Hash() uint64 {
	const (
		offset64 = 1469598103934665603
		prime64  = 1099511628211
	)
	h := uint64(offset64)
	for _, w := range k {
		for s := 0; s < 64; s += 8 {
			h ^= (w >> s) & 0xFF
			h *= prime64
		}
	}
	return h
}
