package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"ticksim.ai/internal/input"
	"ticksim.ai/internal/sim/chain"
	"ticksim.ai/internal/sim/scenario"
)

func main() {
	var (
		knots        = flag.Int("knots", 0, "number of links including head (default: scenario value, else 2)")
		inputPath    = flag.String("input", "-", "move list (\"-\" for stdin, .zst supported)")
		scenarioPath = flag.String("scenario", "", "scenario yaml with a chain block (overrides -input)")
		showDigest   = flag.Bool("digest", false, "print the final state digest")
	)
	flag.Parse()

	logger := log.New(os.Stderr, "[rope] ", log.LstdFlags|log.Lmicroseconds)

	moves, n, err := loadMoves(*inputPath, *scenarioPath)
	if err != nil {
		logger.Fatalf("load: %v", err)
	}
	if *knots != 0 {
		n = *knots
	}

	c, err := chain.New(n)
	if err != nil {
		logger.Fatalf("config: %v", err)
	}
	if err := input.ApplyMoves(c, moves); err != nil {
		logger.Fatalf("run: %v", err)
	}
	logger.Printf("applied %d moves (%d steps) to %d knots", len(moves), c.Tick(), c.Len())

	report(os.Stdout, c, *showDigest)
}

func report(w io.Writer, c *chain.Chain, digest bool) {
	fmt.Fprintln(w, c.VisitedCount())
	if digest {
		fmt.Fprintf(w, "digest %s\n", c.Digest())
	}
}

func loadMoves(inputPath, scenarioPath string) ([]input.Move, int, error) {
	if scenarioPath != "" {
		s, err := scenario.Load(scenarioPath)
		if err != nil {
			return nil, 0, err
		}
		if s.Chain == nil {
			return nil, 0, fmt.Errorf("%s: no chain block", scenarioPath)
		}
		moves, err := s.Chain.ParsedMoves()
		return moves, s.Chain.Knots, err
	}

	rc, err := input.Open(inputPath)
	if err != nil {
		return nil, 0, err
	}
	defer rc.Close()
	moves, err := input.ParseMoves(rc)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", inputPath, err)
	}
	return moves, scenario.DefaultKnots, nil
}
