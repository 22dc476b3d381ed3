// Package chain simulates a rope of links following a moving head.
package chain

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"sort"

	"golang.org/x/exp/maps"

	"ticksim.ai/internal/sim/digestcodec"
)

var (
	ErrShortChain    = errors.New("chain needs at least 2 links")
	ErrNegativeSteps = errors.New("step count must not be negative")
)

type Chain struct {
	links   []Point
	visited map[Point]struct{}
	tick    uint64
}

// New places length links at the origin. The origin counts as visited.
func New(length int) (*Chain, error) {
	if length < 2 {
		return nil, fmt.Errorf("%w (got %d)", ErrShortChain, length)
	}
	return &Chain{
		links:   make([]Point, length),
		visited: map[Point]struct{}{{}: {}},
	}, nil
}

// ApplyMove moves the head steps times in dir, settling the rest of the
// chain and recording the tail after every unit step.
func (c *Chain) ApplyMove(dir Direction, steps int) error {
	unit, ok := dir.Unit()
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownDirection, byte(dir))
	}
	if steps < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeSteps, steps)
	}
	for i := 0; i < steps; i++ {
		c.step(unit)
	}
	return nil
}

func (c *Chain) step(unit Point) {
	c.tick++
	c.links[0] = c.links[0].Add(unit)
	for i := 1; i < len(c.links); i++ {
		d := c.links[i-1].Sub(c.links[i])
		if d.SqLen() <= 2 {
			// Touching; later links cannot have moved either.
			break
		}
		c.links[i] = c.links[i].Add(d.Clamp1())
	}
	c.visited[c.links[len(c.links)-1]] = struct{}{}
}

func (c *Chain) VisitedCount() int { return len(c.visited) }

// Visited returns the tail's visited positions ordered by Y then X.
func (c *Chain) Visited() []Point {
	pts := maps.Keys(c.visited)
	sort.Slice(pts, func(i, j int) bool {
		if pts[i].Y != pts[j].Y {
			return pts[i].Y < pts[j].Y
		}
		return pts[i].X < pts[j].X
	})
	return pts
}

func (c *Chain) Links() []Point { return append([]Point(nil), c.links...) }
func (c *Chain) Head() Point    { return c.links[0] }
func (c *Chain) Tail() Point    { return c.links[len(c.links)-1] }
func (c *Chain) Len() int       { return len(c.links) }

// Tick is the number of unit steps applied so far.
func (c *Chain) Tick() uint64 { return c.tick }

// Digest hashes the tick, every link and the sorted visited set.
func (c *Chain) Digest() string {
	h := sha256.New()
	var tmp [8]byte

	digestcodec.WriteU64(h, &tmp, c.tick)
	digestcodec.WriteU64(h, &tmp, uint64(len(c.links)))
	for _, p := range c.links {
		digestWritePoint(h, &tmp, p)
	}
	visited := c.Visited()
	digestcodec.WriteU64(h, &tmp, uint64(len(visited)))
	for _, p := range visited {
		digestWritePoint(h, &tmp, p)
	}
	return hex.EncodeToString(h.Sum(nil))
}

func digestWritePoint(h digestcodec.Writer, tmp *[8]byte, p Point) {
	digestcodec.WriteI64(h, tmp, int64(p.X))
	digestcodec.WriteI64(h, tmp, int64(p.Y))
}
