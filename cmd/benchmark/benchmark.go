package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/pprof"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"muninn/pkg/engine"
	"muninn/pkg/rules"
)

var (
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
	depth      = flag.Int("depth", 4, "search depth in plies")
)

// benchFENs covers the opening position, a tactical middlegame and a sharp
// endgame, so the run exercises wide and narrow trees alike.
var benchFENs = []string{
	"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
	"r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4",
	"5B2/PP1k2P1/p3pr1p/7p/1p2p3/8/3K2Rn/4r3 w - - 0 1",
}

func main() {
	flag.Parse()
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal().Err(err).Msg("create profile file")
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	fmt.Println("---- BEGIN MUNINN BENCHMARK ----")
	for _, fen := range benchFENs {
		benchmarkSearch(fen, *depth)
	}
	fmt.Println("---- END MUNINN BENCHMARK ----")
}

// benchmarkSearch runs an iterative search on the position and prints the
// node throughput of each depth.
func benchmarkSearch(fen string, depth int) {
	board, err := rules.FromFEN(fen)
	if err != nil {
		log.Fatal().Err(err).Str("fen", fen).Msg("invalid benchmark position")
	}
	fmt.Printf("position %s\n", fen)
	eng := engine.New(board)
	start := time.Now()
	mv := eng.FindBestMoveIterative(depth)
	total := time.Since(start)
	for _, rep := range eng.Reports() {
		nps := float64(rep.Nodes) / rep.Elapsed.Seconds()
		fmt.Printf("  depth %d: %s score %d nodes %d time %v (%.0f nodes/s)\n",
			rep.Depth, rep.Move, rep.Score, rep.Nodes, rep.Elapsed, nps)
	}
	fmt.Printf("  best %s in %v\n", mv, total)
}
