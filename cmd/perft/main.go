// Command perft counts leaf nodes of the legal move tree from the standard starting position,
// a movegen correctness check. See: https://www.chessprogramming.org/Perft_Results.
package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/dalequinn/octane/pkg/board"
	"github.com/seekerror/logw"
)

var (
	depth  = flag.Int("depth", 4, "Search depth")
	divide = flag.Bool("divide", false, "Print per-root-move counts at the final depth")
)

func main() {
	ctx := context.Background()
	flag.Parse()

	if *depth < 1 {
		logw.Exitf(ctx, "depth must be >= 1, got %v", *depth)
	}

	for i := 1; i <= *depth; i++ {
		pos := board.NewStandardPosition()

		start := time.Now()
		nodes := perft(pos, i, *divide && i == *depth)
		duration := time.Since(start)

		fmt.Printf("perft,%v,%v,%v\n", i, nodes, duration.Microseconds())
	}
}

// perft counts the leaf nodes reachable from pos at the given depth. At depth 0, the position
// itself counts as a single node. When divide is set, it prints each root move alongside its
// own subtree count, for comparing against known-good perft dividers move by move.
func perft(pos *board.Position, depth int, divide bool) int64 {
	if depth == 0 {
		return 1
	}

	var nodes int64
	for _, m := range pos.GenerateLegalMoves() {
		pos.Make(m)
		count := perft(pos, depth-1, false)
		pos.Unmake(m)

		if divide {
			fmt.Printf("%v: %v\n", m, count)
		}
		nodes += count
	}
	return nodes
}
