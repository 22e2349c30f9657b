//go:build !gomoku_nocheck

package gomoku

const checkMoves = true
