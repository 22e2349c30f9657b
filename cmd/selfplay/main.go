package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"gomokugen/internal/game"
	"gomokugen/internal/gomoku"
)

type tally struct {
	mu     sync.Mutex
	first  int
	second int
	draws  int
	plies  int
}

func (t *tally) add(o gomoku.Outcome, plies int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	switch {
	case o.Status == gomoku.Draw:
		t.draws++
	case o.Winner == gomoku.First:
		t.first++
	default:
		t.second++
	}
	t.plies += plies
}

func main() {
	side := flag.Int("side", 15, "board side length (1..19)")
	totalGames := flag.Int("games", 100, "number of random games to play")
	workers := flag.Int("workers", 4, "games played concurrently")
	seed := flag.Int64("seed", time.Now().UnixNano(), "random seed")
	verbose := flag.Bool("v", false, "log every finished game")
	flag.Parse()

	mgr := game.NewManager()
	var res tally

	start := time.Now()
	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(*workers)
	for i := 0; i < *totalGames; i++ {
		gameSeed := *seed + int64(i)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return playGame(mgr, *side, gameSeed, &res, *verbose)
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatalf("Selfplay failed: %v", err)
	}

	games := res.first + res.second + res.draws
	fmt.Printf("\n=== %d random games on %dx%d in %v ===\n", games, *side, *side, time.Since(start))
	fmt.Printf("First wins:  %d\n", res.first)
	fmt.Printf("Second wins: %d\n", res.second)
	fmt.Printf("Draws:       %d\n", res.draws)
	if games > 0 {
		fmt.Printf("Avg length:  %.1f plies\n", float64(res.plies)/float64(games))
	}
}

func playGame(mgr *game.Manager, side int, seed int64, res *tally, verbose bool) error {
	st, err := mgr.NewGame(side)
	if err != nil {
		return err
	}
	defer func() {
		if err := mgr.Remove(st.ID); err != nil {
			log.Printf("remove game %s: %v", st.ID, err)
		}
	}()

	rng := rand.New(rand.NewSource(seed))
	sample := func(lo, hi int) int { return lo + rng.Intn(hi-lo) }

	var last gomoku.Move
	for {
		mv, o, err := mgr.PlayRandom(st.ID, sample)
		if err != nil {
			return fmt.Errorf("game %s: %w", st.ID, err)
		}
		last = mv
		if !o.Decided() {
			continue
		}
		final, err := mgr.Get(st.ID)
		if err != nil {
			return err
		}
		if verbose {
			log.Printf("game %s: %v after %d plies, last move %s", st.ID, o, final.Board.Ply(), gomoku.FormatMove(last, side))
		}
		res.add(o, final.Board.Ply())
		return nil
	}
}
