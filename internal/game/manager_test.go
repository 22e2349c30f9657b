package game

import (
	"errors"
	"math/rand"
	"sync"
	"testing"

	"github.com/google/uuid"

	"gomokugen/internal/gomoku"
)

func TestNewGame(t *testing.T) {
	m := NewManager()
	g, err := m.NewGame(15)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	if _, err := uuid.Parse(g.ID); err != nil {
		t.Fatalf("game id %q is not a uuid: %v", g.ID, err)
	}
	if g.Board.Side() != 15 || g.Board.Ply() != 0 {
		t.Fatalf("unexpected board: side=%d ply=%d", g.Board.Side(), g.Board.Ply())
	}
	if _, err := m.NewGame(21); !errors.Is(err, gomoku.ErrBoardSize) {
		t.Fatalf("NewGame(21): err=%v", err)
	}
	if m.Len() != 1 {
		t.Fatalf("Len = %d", m.Len())
	}
}

func TestPlayUntilWin(t *testing.T) {
	m := NewManager()
	g, _ := m.NewGame(9)

	moves := []int{0, 9, 1, 10, 2, 11, 3, 12}
	for _, i := range moves {
		o, err := m.Play(g.ID, gomoku.MoveAt(i))
		if err != nil || o.Decided() {
			t.Fatalf("move %d: outcome %v err %v", i, o, err)
		}
	}
	if _, err := m.Play(g.ID, gomoku.MoveAt(0)); !errors.Is(err, gomoku.ErrInvalidMove) {
		t.Fatalf("occupied cell: err=%v", err)
	}
	o, err := m.Play(g.ID, gomoku.MoveAt(4))
	if err != nil || o != gomoku.WinFor(gomoku.First) {
		t.Fatalf("winning move: outcome %v err %v", o, err)
	}
	if _, err := m.Play(g.ID, gomoku.MoveAt(40)); !errors.Is(err, ErrGameOver) {
		t.Fatalf("move after win: err=%v", err)
	}

	got, err := m.Get(g.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Board.Ply() != 9 || got.Outcome() != gomoku.WinFor(gomoku.First) {
		t.Fatalf("stored game: ply=%d outcome=%v", got.Board.Ply(), got.Outcome())
	}
	if got.UpdatedAt.Before(got.CreatedAt) {
		t.Fatalf("UpdatedAt before CreatedAt")
	}
}

func TestGetReturnsCopy(t *testing.T) {
	m := NewManager()
	g, _ := m.NewGame(9)
	snap, _ := m.Get(g.ID)
	snap.Board.Apply(gomoku.MoveAt(0))

	again, _ := m.Get(g.ID)
	if again.Board.Ply() != 0 {
		t.Fatalf("mutating a snapshot changed the stored game")
	}
}

func TestUnknownGame(t *testing.T) {
	m := NewManager()
	if _, err := m.Get("nope"); !errors.Is(err, ErrGameNotFound) {
		t.Fatalf("Get: err=%v", err)
	}
	if _, err := m.Play("nope", gomoku.MoveAt(0)); !errors.Is(err, ErrGameNotFound) {
		t.Fatalf("Play: err=%v", err)
	}
	if err := m.Remove("nope"); !errors.Is(err, ErrGameNotFound) {
		t.Fatalf("Remove: err=%v", err)
	}
}

func TestConcurrentRandomGames(t *testing.T) {
	m := NewManager()
	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(seed))
			sample := func(lo, hi int) int { return lo + rng.Intn(hi-lo) }
			g, err := m.NewGame(7)
			if err != nil {
				t.Errorf("NewGame: %v", err)
				return
			}
			for {
				_, o, err := m.PlayRandom(g.ID, sample)
				if err != nil {
					t.Errorf("PlayRandom: %v", err)
					return
				}
				if o.Decided() {
					break
				}
			}
			if err := m.Remove(g.ID); err != nil {
				t.Errorf("Remove: %v", err)
			}
		}(int64(w))
	}
	wg.Wait()
	if m.Len() != 0 {
		t.Fatalf("%d games left", m.Len())
	}
}
