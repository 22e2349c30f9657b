package gomoku

import (
	"errors"
	"testing"
)

func TestMoveLabelRoundTrip(t *testing.T) {
	for _, side := range testSides {
		for i := 0; i < side*side; i++ {
			label := FormatMove(MoveAt(i), side)
			m, err := ParseMove(label, side)
			if err != nil {
				t.Fatalf("side %d: ParseMove(%q): %v", side, label, err)
			}
			if m.Index() != i {
				t.Fatalf("side %d: %d -> %q -> %d", side, i, label, m.Index())
			}
		}
	}
}

func TestFormatMove(t *testing.T) {
	cases := []struct {
		m    Move
		side int
		want string
	}{
		{MoveAt(0), 15, "A1"},
		{MoveFromRowCol(0, 14, 15), 15, "O1"},
		{MoveFromRowCol(9, 2, 15), 15, "C10"},
		{MoveAt(360), 19, "S19"},
	}
	for _, c := range cases {
		if got := FormatMove(c.m, c.side); got != c.want {
			t.Fatalf("FormatMove(%d, %d) = %q want %q", c.m.Index(), c.side, got, c.want)
		}
	}
}

func TestParseMoveErrors(t *testing.T) {
	cases := []struct {
		s    string
		want error
	}{
		{"", ErrNotation},
		{"A", ErrNotation},
		{"A100", ErrNotation},
		{"11", ErrNotation},
		{"A+1", ErrNotation},
		{"Ax", ErrNotation},
		{"A0", ErrMoveRange},
		{"A16", ErrMoveRange},
		{"P1", ErrMoveRange},
		{"z3", ErrMoveRange},
	}
	for _, c := range cases {
		if _, err := ParseMove(c.s, 15); !errors.Is(err, c.want) {
			t.Fatalf("ParseMove(%q): err=%v want %v", c.s, err, c.want)
		}
	}
	if m, err := ParseMove("h8", 15); err != nil || m != MoveFromRowCol(7, 7, 15) {
		t.Fatalf("ParseMove(h8) = %v, %v", m, err)
	}
}
