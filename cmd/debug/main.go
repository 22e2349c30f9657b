package main

import (
	"flag"
	"fmt"
	"log"

	"gomokugen/internal/gomoku"
)

func main() {
	side := flag.Int("side", 15, "board side length")
	flag.Parse()

	b, err := gomoku.New(*side)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("FEN:", b.Encode())
	fmt.Println("Legal moves:", b.CountMoves())
	fmt.Println("Outcome:", b.Outcome())
}
