// Command perft drives the move generator over a FEN position to a fixed
// depth, reporting node counts (and optionally the full capture/EP/castle/
// promotion/check breakdown and a per-root-move divide). It is an external
// collaborator of the core package: it only composes Legal, MakeMove, and
// UndoMove, plus the ambient stack (flags, structured logging, profiling,
// colorized board printing) the core package stays free of.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/pprof"
	"time"

	"github.com/fatih/color"
	"go.uber.org/zap"

	chego "github.com/turbochess/chego"
)

func main() {
	fen := flag.String("fen", chego.InitialPositionFEN, "FEN of the position to search")
	depth := flag.Int("depth", 5, "perft depth")
	verbose := flag.Bool("verbose", false, "print the full capture/EP/castle/promotion/check breakdown")
	divide := flag.Bool("divide", false, "print per-root-move subtree node counts")
	board := flag.Bool("board", false, "print the starting position before searching")
	cpuProfile := flag.String("cpuprofile", "", "write a CPU profile to this file")
	memProfile := flag.String("memprofile", "", "write a heap profile to this file")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to initialize logger:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	pos, err := chego.ParseFEN(*fen)
	if err != nil {
		logger.Fatal("invalid FEN", zap.Error(err), zap.String("fen", *fen))
	}

	if *board {
		fmt.Print(FormatPosition(pos))
	}

	if *cpuProfile != "" {
		f, err := os.Create(*cpuProfile)
		if err != nil {
			logger.Fatal("failed to create CPU profile", zap.Error(err))
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			logger.Fatal("failed to start CPU profile", zap.Error(err))
		}
		defer pprof.StopCPUProfile()
	}

	start := time.Now()

	switch {
	case *divide:
		results := chego.DividePerft(pos, *depth)
		var total uint64
		for _, r := range results {
			fmt.Printf("%s: %d\n", chego.MoveToUCI(r.Move), r.Nodes)
			total += r.Nodes
		}
		fmt.Printf("\ntotal: %d\n", total)
		logger.Info("divide complete", zap.Uint64("nodes", total), zap.Duration("elapsed", time.Since(start)))

	case *verbose:
		result := chego.PerftComplete(pos, *depth)
		logger.Info("perft complete",
			zap.Int("depth", *depth),
			zap.Uint64("nodes", result.Nodes),
			zap.Uint64("captures", result.Captures),
			zap.Uint64("enPassants", result.EnPassants),
			zap.Uint64("castles", result.Castles),
			zap.Uint64("promotions", result.Promotions),
			zap.Uint64("checks", result.Checks),
			zap.Uint64("checkmates", result.Checkmates),
			zap.Duration("elapsed", time.Since(start)),
		)

	default:
		nodes := chego.Perft(pos, *depth)
		elapsed := time.Since(start)
		color.Cyan("perft(%d) = %d nodes in %s", *depth, nodes, elapsed)
	}

	if *memProfile != "" {
		f, err := os.Create(*memProfile)
		if err != nil {
			logger.Fatal("failed to create heap profile", zap.Error(err))
		}
		defer f.Close()
		if err := pprof.WriteHeapProfile(f); err != nil {
			logger.Fatal("failed to write heap profile", zap.Error(err))
		}
	}
}
