package scenario

import (
	"errors"
	"strings"
	"testing"

	"ticksim.ai/internal/input"
	"ticksim.ai/internal/sim/chain"
	"ticksim.ai/internal/sim/queue"
)

const scenariosDir = "../../../configs/scenarios/"

func TestLoad_MonkeysPart1(t *testing.T) {
	s, err := Load(scenariosDir + "monkeys_part1.yaml")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.Queue == nil || s.Chain != nil {
		t.Fatalf("expected a queue scenario")
	}
	if s.Queue.Rounds != 20 || len(s.Queue.Monkeys) != 4 {
		t.Fatalf("queue block: rounds=%d monkeys=%d", s.Queue.Rounds, len(s.Queue.Monkeys))
	}
	if s.Queue.Monkeys[2].Op != queue.Square() {
		t.Fatalf("monkey 2 op: %v", s.Queue.Monkeys[2].Op)
	}
	sim, err := queue.New(s.Queue.Actors())
	if err != nil {
		t.Fatalf("new simulator: %v", err)
	}
	if err := sim.RunRounds(s.Queue.Rounds); err != nil {
		t.Fatalf("run: %v", err)
	}
	if a, b := sim.TopTwo(); a*b != 10605 {
		t.Fatalf("monkey business: %d * %d", a, b)
	}
}

func TestLoad_MonkeysPart2(t *testing.T) {
	s, err := Load(scenariosDir + "monkeys_part2.yaml")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.Queue.Rounds != 10000 || s.Queue.Reducer.Kind != queue.ReduceModulo {
		t.Fatalf("queue block: rounds=%d reducer=%v", s.Queue.Rounds, s.Queue.Reducer)
	}
	sim, err := queue.New(s.Queue.Actors())
	if err != nil {
		t.Fatalf("new simulator: %v", err)
	}
	if err := sim.RunRounds(s.Queue.Rounds); err != nil {
		t.Fatalf("run: %v", err)
	}
	a, b := sim.TopTwo()
	if got := int64(a) * int64(b); got != 2713310158 {
		t.Fatalf("monkey business: %d", got)
	}
}

func TestLoad_Ropes(t *testing.T) {
	for file, want := range map[string]int{"rope_short.yaml": 13, "rope_long.yaml": 36} {
		s, err := Load(scenariosDir + file)
		if err != nil {
			t.Fatalf("load %s: %v", file, err)
		}
		moves, err := s.Chain.ParsedMoves()
		if err != nil {
			t.Fatalf("%s moves: %v", file, err)
		}
		c, err := chain.New(s.Chain.Knots)
		if err != nil {
			t.Fatalf("%s chain: %v", file, err)
		}
		if err := input.ApplyMoves(c, moves); err != nil {
			t.Fatalf("%s apply: %v", file, err)
		}
		if got := c.VisitedCount(); got != want {
			t.Fatalf("%s visited: got %d want %d", file, got, want)
		}
	}
}

func TestParse_Defaults(t *testing.T) {
	s, err := Parse([]byte(`
queue:
  monkeys:
    - {items: [1], op: {kind: add, value: 1}, divisor: 2, if_true: 1, if_false: 1}
    - {op: {kind: square}, divisor: 3, if_true: 0, if_false: 0, reducer: {kind: none}}
`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if s.Queue.Rounds != DefaultRounds {
		t.Fatalf("rounds default: %d", s.Queue.Rounds)
	}
	actors := s.Queue.Actors()
	if *actors[0].Reducer != queue.DefaultReducer {
		t.Fatalf("monkey 0 should inherit default reducer, got %v", actors[0].Reducer)
	}
	if actors[1].Reducer.Kind != queue.ReduceNone {
		t.Fatalf("monkey 1 should keep its own reducer, got %v", actors[1].Reducer)
	}

	s, err = Parse([]byte("chain:\n  moves: [\"U 1\"]\n"))
	if err != nil {
		t.Fatalf("parse chain: %v", err)
	}
	if s.Chain.Knots != DefaultKnots {
		t.Fatalf("knots default: %d", s.Chain.Knots)
	}
}

func TestParse_SchemaRejects(t *testing.T) {
	cases := map[string]string{
		"empty":        ``,
		"both":         "queue: {monkeys: [{op: {kind: square}, divisor: 2, if_true: 0, if_false: 0}]}\nchain: {moves: []}\n",
		"neither":      "name: x\n",
		"zero divisor": "queue: {monkeys: [{op: {kind: square}, divisor: 0, if_true: 0, if_false: 0}]}\n",
		"unknown op":   "queue: {monkeys: [{op: {kind: cube}, divisor: 2, if_true: 0, if_false: 0}]}\n",
		"extra field":  "queue: {monkeys: [{op: {kind: square}, divisor: 2, if_true: 0, if_false: 0, mood: sad}]}\n",
		"bad move":     "chain: {moves: [\"X 2\"]}\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			if err == nil || !strings.Contains(err.Error(), "scenario schema") {
				t.Fatalf("expected schema error, got %v", err)
			}
		})
	}
}

func TestParse_SemanticErrors(t *testing.T) {
	_, err := Parse([]byte("queue: {monkeys: [{op: {kind: square}, divisor: 2, if_true: 0, if_false: 0}]}\n"))
	if !errors.Is(err, queue.ErrSelfThrow) {
		t.Fatalf("expected ErrSelfThrow, got %v", err)
	}
	_, err = Parse([]byte("chain: {knots: 1, moves: [\"U 1\"]}\n"))
	if !errors.Is(err, chain.ErrShortChain) {
		t.Fatalf("expected ErrShortChain, got %v", err)
	}
}
