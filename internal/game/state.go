package game

import (
	"time"

	"gomokugen/internal/gomoku"
)

// GameState is a snapshot of one registered game; Board is a copy.
type GameState struct {
	ID        string
	Board     gomoku.Board
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (g *GameState) Outcome() gomoku.Outcome { return g.Board.Outcome() }
