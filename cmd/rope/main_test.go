package main

import (
	"bytes"
	"testing"

	"ticksim.ai/internal/input"
	"ticksim.ai/internal/sim/chain"
)

func TestLoadMoves_InputFile(t *testing.T) {
	moves, n, err := loadMoves("../../internal/input/testdata/moves_large.txt", "")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if n != 2 || len(moves) != 8 {
		t.Fatalf("knots=%d moves=%d", n, len(moves))
	}
	for knots, want := range map[int]int{2: 88, 10: 36} {
		c, err := chain.New(knots)
		if err != nil {
			t.Fatalf("new chain: %v", err)
		}
		if err := input.ApplyMoves(c, moves); err != nil {
			t.Fatalf("apply: %v", err)
		}
		if got := c.VisitedCount(); got != want {
			t.Fatalf("%d knots: visited %d want %d", knots, got, want)
		}
	}
}

func TestLoadMoves_Scenario(t *testing.T) {
	moves, n, err := loadMoves("-", "../../configs/scenarios/rope_long.yaml")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if n != 10 || len(moves) != 8 {
		t.Fatalf("knots=%d moves=%d", n, len(moves))
	}
	if _, _, err := loadMoves("-", "../../configs/scenarios/monkeys_part1.yaml"); err == nil {
		t.Fatalf("expected error for queue scenario")
	}
}

func TestReport(t *testing.T) {
	moves, n, err := loadMoves("../../internal/input/testdata/moves_small.txt", "")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	c, err := chain.New(n)
	if err != nil {
		t.Fatalf("new chain: %v", err)
	}
	if err := input.ApplyMoves(c, moves); err != nil {
		t.Fatalf("apply: %v", err)
	}

	var buf bytes.Buffer
	report(&buf, c, false)
	if got := buf.String(); got != "13\n" {
		t.Fatalf("report: got %q", got)
	}
	buf.Reset()
	report(&buf, c, true)
	if want := "13\ndigest " + c.Digest() + "\n"; buf.String() != want {
		t.Fatalf("report with digest: got %q want %q", buf.String(), want)
	}
}
