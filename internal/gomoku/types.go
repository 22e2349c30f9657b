package gomoku

import "errors"

type Player int8

const (
	Empty  Player = 0
	First  Player = 1 // x, always moves first
	Second Player = 2 // o
)

var ErrNoPlayer = errors.New("gomoku: Empty has no opponent")

// Opponent returns the other player. It panics for Empty.
func (p Player) Opponent() Player {
	switch p {
	case First:
		return Second
	case Second:
		return First
	}
	panic(ErrNoPlayer)
}

// Opponent is the function form of Player.Opponent.
func Opponent(p Player) Player { return p.Opponent() }

func (p Player) String() string {
	switch p {
	case First:
		return "First"
	case Second:
		return "Second"
	default:
		return "Empty"
	}
}

type Status int8

const (
	InProgress Status = iota
	Draw
	Win
)

// Outcome of a position. Winner is Empty unless Status == Win.
type Outcome struct {
	Status Status
	Winner Player
}

func WinFor(p Player) Outcome { return Outcome{Status: Win, Winner: p} }

// Decided reports whether the game is over (win or draw).
func (o Outcome) Decided() bool { return o.Status != InProgress }

func (o Outcome) String() string {
	switch o.Status {
	case Draw:
		return "draw"
	case Win:
		return o.Winner.String() + " wins"
	default:
		return "in progress"
	}
}
