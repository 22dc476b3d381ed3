package input

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"ticksim.ai/internal/sim/queue"
)

const (
	seenItems = 1 << iota
	seenOp
	seenTest
	seenTrue
	seenFalse

	seenAll = seenItems | seenOp | seenTest | seenTrue | seenFalse
)

var noteKeys = map[string]int{
	"Starting items": seenItems,
	"Operation":      seenOp,
	"Test":           seenTest,
	"If true":        seenTrue,
	"If false":       seenFalse,
}

// ParseNotes reads monkey blocks of the form
//
//	Monkey 0:
//	  Starting items: 79, 98
//	  Operation: new = old * 19
//	  Test: divisible by 23
//	    If true: throw to monkey 2
//	    If false: throw to monkey 3
//
// Monkeys must be numbered 0..N-1 in order and each key appears once per
// monkey. Reducers are left nil.
func ParseNotes(r io.Reader) ([]queue.ActorConfig, error) {
	var (
		out  []queue.ActorConfig
		cur  *queue.ActorConfig
		seen int
	)
	finish := func(line int) error {
		if cur == nil {
			return nil
		}
		if seen != seenAll {
			return fmt.Errorf("line %d: %w: monkey %d is incomplete", line, ErrMalformed, len(out)-1)
		}
		cur = nil
		return nil
	}

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		bad := func(what string) error {
			return fmt.Errorf("line %d: %w: %s: %q", line, ErrMalformed, what, text)
		}

		if rest, ok := strings.CutPrefix(text, "Monkey "); ok {
			if err := finish(line); err != nil {
				return nil, err
			}
			id, err := strconv.Atoi(strings.TrimSuffix(rest, ":"))
			if err != nil || !strings.HasSuffix(rest, ":") {
				return nil, bad("monkey header")
			}
			if id != len(out) {
				return nil, fmt.Errorf("line %d: %w: monkey %d out of order, want %d", line, ErrMalformed, id, len(out))
			}
			out = append(out, queue.ActorConfig{})
			cur = &out[len(out)-1]
			seen = 0
			continue
		}
		if cur == nil {
			return nil, bad("expected monkey header")
		}

		key, val, ok := strings.Cut(text, ":")
		if !ok {
			return nil, bad("expected key: value")
		}
		val = strings.TrimSpace(val)
		if seen&noteKeys[key] != 0 {
			return nil, bad("duplicate key")
		}
		switch key {
		case "Starting items":
			items, err := parseItems(val)
			if err != nil {
				return nil, bad(err.Error())
			}
			cur.Items = items
			seen |= seenItems
		case "Operation":
			op, err := parseOp(val)
			if err != nil {
				return nil, bad(err.Error())
			}
			cur.Op = op
			seen |= seenOp
		case "Test":
			n, err := parseTail(val, "divisible by ")
			if err != nil {
				return nil, bad("test")
			}
			cur.Divisor = int64(n)
			seen |= seenTest
		case "If true":
			n, err := parseTail(val, "throw to monkey ")
			if err != nil {
				return nil, bad("true branch")
			}
			cur.IfTrue = n
			seen |= seenTrue
		case "If false":
			n, err := parseTail(val, "throw to monkey ")
			if err != nil {
				return nil, bad("false branch")
			}
			cur.IfFalse = n
			seen |= seenFalse
		default:
			return nil, bad("unknown key")
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if err := finish(line); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: no monkeys", ErrMalformed)
	}
	return out, nil
}

func parseItems(val string) ([]int64, error) {
	if val == "" {
		return nil, nil
	}
	parts := strings.Split(val, ",")
	items := make([]int64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("item %q", strings.TrimSpace(p))
		}
		items = append(items, v)
	}
	return items, nil
}

// parseOp understands "new = old <op> <operand>" with op + or *.
func parseOp(val string) (queue.Op, error) {
	f := strings.Fields(val)
	if len(f) != 5 || f[0] != "new" || f[1] != "=" || f[2] != "old" {
		return queue.Op{}, fmt.Errorf("operation")
	}
	sym, operand := f[3], f[4]
	if operand == "old" {
		switch sym {
		case "*":
			return queue.Square(), nil
		case "+":
			return queue.Multiply(2), nil
		}
		return queue.Op{}, fmt.Errorf("operator %q", sym)
	}
	k, err := strconv.ParseInt(operand, 10, 64)
	if err != nil {
		return queue.Op{}, fmt.Errorf("operand %q", operand)
	}
	switch sym {
	case "*":
		return queue.Multiply(k), nil
	case "+":
		return queue.Add(k), nil
	}
	return queue.Op{}, fmt.Errorf("operator %q", sym)
}

func parseTail(val, prefix string) (int, error) {
	rest, ok := strings.CutPrefix(val, prefix)
	if !ok {
		return 0, ErrMalformed
	}
	return strconv.Atoi(rest)
}
