package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"ticksim.ai/internal/input"
	"ticksim.ai/internal/sim/queue"
	"ticksim.ai/internal/sim/scenario"
)

func main() {
	var (
		notesPath    = flag.String("notes", "", "monkey notes file (\"-\" for stdin, .zst supported)")
		scenarioPath = flag.String("scenario", "", "scenario yaml with a queue block")
		rounds       = flag.Int("rounds", 0, "rounds to play (default: scenario value, else 20)")
		worry        = flag.String("worry", "", "worry reducer override: divide | modulo")
		showDigest   = flag.Bool("digest", false, "print the final state digest")
		verbose      = flag.Bool("v", false, "log per-actor inspection counts")
	)
	flag.Parse()

	logger := log.New(os.Stderr, "[monkey] ", log.LstdFlags|log.Lmicroseconds)

	if (*notesPath == "") == (*scenarioPath == "") {
		fmt.Fprintln(os.Stderr, "exactly one of -notes or -scenario is required")
		os.Exit(2)
	}

	actors, n, err := loadActors(*notesPath, *scenarioPath)
	if err != nil {
		logger.Fatalf("load: %v", err)
	}
	if *rounds != 0 {
		n = *rounds
	}

	if r, ok, err := reducerOverride(*worry); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	} else if ok {
		for i := range actors {
			rr := r
			actors[i].Reducer = &rr
		}
	}

	sim, err := queue.New(actors)
	if err != nil {
		logger.Fatalf("config: %v", err)
	}
	start := time.Now()
	if err := sim.RunRounds(n); err != nil {
		logger.Fatalf("run: %v", err)
	}
	logger.Printf("played %d rounds with %d actors in %s", n, sim.Len(), time.Since(start))
	if *verbose {
		for i, c := range sim.Inspections() {
			logger.Printf("actor %d inspected items %d times", i, c)
		}
	}

	report(os.Stdout, sim, *showDigest)
}

// report prints the product of the two busiest actors' counts, then the
// digest when asked.
func report(w io.Writer, sim *queue.Simulator, digest bool) {
	a, b := sim.TopTwo()
	fmt.Fprintf(w, "%d * %d = %d\n", a, b, int64(a)*int64(b))
	if digest {
		fmt.Fprintf(w, "digest %s\n", sim.Digest())
	}
}

func loadActors(notesPath, scenarioPath string) ([]queue.ActorConfig, int, error) {
	if scenarioPath != "" {
		s, err := scenario.Load(scenarioPath)
		if err != nil {
			return nil, 0, err
		}
		if s.Queue == nil {
			return nil, 0, fmt.Errorf("%s: no queue block", scenarioPath)
		}
		return s.Queue.Actors(), s.Queue.Rounds, nil
	}

	rc, err := input.Open(notesPath)
	if err != nil {
		return nil, 0, err
	}
	defer rc.Close()
	actors, err := input.ParseNotes(rc)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", notesPath, err)
	}
	return actors, scenario.DefaultRounds, nil
}

func reducerOverride(mode string) (queue.Reducer, bool, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "":
		return queue.Reducer{}, false, nil
	case "divide":
		return queue.DefaultReducer, true, nil
	case "modulo":
		return queue.ModuloProduct(), true, nil
	}
	return queue.Reducer{}, false, fmt.Errorf("unknown -worry %q (want divide or modulo)", mode)
}
