package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"gomokugen/internal/gomoku"
	"gomokugen/internal/perft"
)

func main() {
	side := flag.Int("side", 15, "board side length (1..19)")
	depth := flag.Int("depth", 4, "perft depth in plies")
	fen := flag.String("fen", "", "start from an encoded position instead of the empty board")
	cached := flag.Bool("cached", false, "memoize subtree counts")
	cacheCap := flag.Int("cache-cap", 0, "max cache entries before reset (0 = unbounded)")
	parallel := flag.Bool("parallel", false, "search root moves concurrently")
	workers := flag.Int("workers", 0, "parallel workers (0 = GOMAXPROCS)")
	divide := flag.Bool("divide", false, "print node counts per root move")
	pprofAddr := flag.String("pprof", "", "serve pprof on this address, e.g. localhost:6060")
	flag.Parse()

	if *pprofAddr != "" {
		go func() {
			log.Printf("pprof listening on %s", *pprofAddr)
			if err := http.ListenAndServe(*pprofAddr, nil); err != nil {
				log.Printf("pprof failed: %v", err)
			}
		}()
	}

	var (
		board gomoku.Board
		err   error
	)
	if *fen != "" {
		board, err = gomoku.Decode(*fen)
	} else {
		board, err = gomoku.New(*side)
	}
	if err != nil {
		log.Fatalf("Failed to set up board: %v", err)
	}

	if *divide {
		runDivide(board, *depth)
		return
	}

	start := time.Now()
	var count uint64
	switch {
	case *parallel:
		opts := perft.Options{Workers: *workers}
		if *cached {
			opts.Cache = perft.NewShardedCache(64, *cacheCap)
		}
		count, err = perft.Parallel(context.Background(), board, *depth, opts)
		if err != nil {
			log.Fatalf("Parallel perft failed: %v", err)
		}
	case *cached:
		count = perft.PerftCached(board, *depth, perft.NewMapCache(*cacheCap))
	default:
		count = perft.Perft(board, *depth)
	}
	elapsed := time.Since(start)

	n := board.Side()
	fmt.Printf("perft depth %d on a %dx%d board: %d nodes in %v\n", *depth, n, n, count, elapsed)
	fmt.Printf("nodes per second: %.2f\n", float64(count)/elapsed.Seconds())
}

func runDivide(board gomoku.Board, depth int) {
	var total uint64
	for _, mc := range perft.Divide(board, depth) {
		fmt.Printf("%s: %d\n", gomoku.FormatMove(mc.Move, board.Side()), mc.Nodes)
		total += mc.Nodes
	}
	fmt.Printf("\ntotal: %d\n", total)
}
