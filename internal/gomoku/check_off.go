//go:build gomoku_nocheck

package gomoku

// Benchmark builds trust the caller; see Board.Apply.
const checkMoves = false
