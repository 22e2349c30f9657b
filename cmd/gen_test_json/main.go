package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"

	"gomokugen/internal/gomoku"
	"gomokugen/internal/perft"
)

// TestCase is one position from a random game, with reference counts for
// checking other move generators against this one.
type TestCase struct {
	Position string   `json:"position"`
	LastMove string   `json:"last_move,omitempty"`
	Outcome  string   `json:"outcome"`
	Moves    int      `json:"moves"`
	Perft    []uint64 `json:"perft"`
}

func main() {
	side := flag.Int("side", 9, "board side length")
	numGames := flag.Int("games", 10, "random games to sample")
	depth := flag.Int("depth", 2, "deepest perft count stored per position")
	seed := flag.Int64("seed", 1, "random seed")
	out := flag.String("out", "perft_test_data.json", "output file")
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))
	sample := func(lo, hi int) int { return lo + rng.Intn(hi-lo) }

	var testCases []TestCase
	for g := 0; g < *numGames; g++ {
		b, err := gomoku.New(*side)
		if err != nil {
			log.Fatal(err)
		}
		for {
			tc := TestCase{
				Position: b.Encode(),
				Outcome:  b.Outcome().String(),
				Moves:    b.CountMoves(),
			}
			if lm := b.LastMove(); !lm.IsNull() {
				tc.LastMove = gomoku.FormatMove(lm, *side)
			}
			for d := 0; d <= *depth; d++ {
				tc.Perft = append(tc.Perft, perft.Perft(b, d))
			}
			testCases = append(testCases, tc)

			if b.Outcome().Decided() {
				break
			}
			b.ApplyRandom(sample)
		}
	}

	data, err := json.MarshalIndent(testCases, "", "  ")
	if err != nil {
		log.Fatal(err)
	}
	if err := os.WriteFile(*out, data, 0644); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Generated %d test cases from %d random games to %s\n", len(testCases), *numGames, *out)
}
