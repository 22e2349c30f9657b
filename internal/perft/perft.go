// Package perft counts the leaves of the gomoku game tree to a fixed depth.
// The counts validate move generation and win detection and double as a
// throughput benchmark.
//
// Counting does not stop at decided positions: every empty cell is a
// continuation, as long as one remains.
package perft

import "gomokugen/internal/gomoku"

// Perft returns the number of leaf nodes depth plies below b.
func Perft(b gomoku.Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	if depth == 1 {
		return uint64(countMoves(&b))
	}

	var count uint64
	for mv := range b.Moves() {
		child := b
		child.Apply(mv)
		count += Perft(child, depth-1)
	}
	return count
}

// PerftCached is Perft with positions at depth >= 2 memoized in cache under
// (board size and cell contents, depth).
func PerftCached(b gomoku.Board, depth int, cache Cache) uint64 {
	if depth <= 0 {
		return 1
	}
	if depth == 1 {
		return uint64(countMoves(&b))
	}

	key := b.Key()
	if count, ok := cache.Lookup(key, depth); ok {
		return count
	}

	var count uint64
	for mv := range b.Moves() {
		child := b
		child.Apply(mv)
		count += PerftCached(child, depth-1, cache)
	}
	cache.Store(key, depth, count)
	return count
}

// countMoves walks the generator rather than trusting the ply counter, so
// depth-1 counts exercise move generation.
func countMoves(b *gomoku.Board) int {
	n := 0
	for range b.Moves() {
		n++
	}
	return n
}

type MoveCount struct {
	Move  gomoku.Move
	Nodes uint64
}

// Divide splits Perft(b, depth) by root move, in move generation order.
func Divide(b gomoku.Board, depth int) []MoveCount {
	if depth <= 0 {
		return nil
	}
	out := make([]MoveCount, 0, b.CountMoves())
	for mv := range b.Moves() {
		child := b
		child.Apply(mv)
		out = append(out, MoveCount{Move: mv, Nodes: Perft(child, depth-1)})
	}
	return out
}
