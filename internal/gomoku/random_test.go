package gomoku

import (
	"math/rand"
	"testing"
)

func seededSampler(seed int64) Sampler {
	rng := rand.New(rand.NewSource(seed))
	return func(lo, hi int) int { return lo + rng.Intn(hi-lo) }
}

func TestApplyRandomFillsBoard(t *testing.T) {
	for _, side := range []int{5, 9} {
		b := MustNew(side)
		sample := seededSampler(int64(side))
		seen := make(map[int]bool)
		for i := 0; i < side*side; i++ {
			turn := b.Turn()
			m := b.ApplyRandom(sample)
			if m.IsNull() || seen[m.Index()] {
				t.Fatalf("side %d ply %d: bad move %d", side, i, m.Index())
			}
			seen[m.Index()] = true
			if b.At(m) != turn || b.LastMove() != m || b.Ply() != i+1 {
				t.Fatalf("side %d ply %d: move not applied", side, i)
			}
		}
		if m := b.ApplyRandom(sample); !m.IsNull() || b.Ply() != side*side {
			t.Fatalf("full board: got move %d", m.Index())
		}
	}
}

func TestApplyRandomNearlyFullUsesMoveList(t *testing.T) {
	b := MustNew(5)
	for i := 0; i < 24; i++ {
		b.Apply(MoveAt(i))
	}
	calls := 0
	m := b.ApplyRandom(func(lo, hi int) int {
		calls++
		if lo != 0 || hi != 1 {
			t.Fatalf("sample(%d, %d), want sample(0, 1)", lo, hi)
		}
		return lo
	})
	if m != MoveAt(24) || calls != 1 {
		t.Fatalf("move %d after %d samples", m.Index(), calls)
	}
}

func TestApplyRandomRejectsOccupied(t *testing.T) {
	b := MustNew(9)
	b.Apply(MoveAt(3))
	picks := []int{3, 3, 7}
	m := b.ApplyRandom(func(lo, hi int) int {
		if hi != 81 {
			t.Fatalf("sample(%d, %d), want the whole grid", lo, hi)
		}
		p := picks[0]
		picks = picks[1:]
		return p
	})
	if m != MoveAt(7) {
		t.Fatalf("got %d want 7", m.Index())
	}
}
