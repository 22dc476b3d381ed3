package input

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"ticksim.ai/internal/sim/chain"
)

type Move struct {
	Dir   chain.Direction
	Steps int
}

// ParseMoves reads "<D> <steps>" lines. Blank lines are skipped.
func ParseMoves(r io.Reader) ([]Move, error) {
	var out []Move
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 2 {
			return nil, fmt.Errorf("line %d: %w: want \"<D> <steps>\", got %q", line, ErrMalformed, sc.Text())
		}
		dir, err := chain.ParseDirection(fields[0])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		steps, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w: steps %q", line, ErrMalformed, fields[1])
		}
		if steps < 0 {
			return nil, fmt.Errorf("line %d: %w: %d", line, chain.ErrNegativeSteps, steps)
		}
		out = append(out, Move{Dir: dir, Steps: steps})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ApplyMoves feeds moves to c in order.
func ApplyMoves(c *chain.Chain, moves []Move) error {
	for i, m := range moves {
		if err := c.ApplyMove(m.Dir, m.Steps); err != nil {
			return fmt.Errorf("move %d (%s %d): %w", i+1, m.Dir, m.Steps, err)
		}
	}
	return nil
}
