// Package queue simulates actors passing integer items between FIFO queues.
//
// Every round visits actors in index order. An actor drains its whole queue,
// including items thrown to it earlier in the same round, and routes each
// item to one of two other actors by a divisibility test.
package queue

import (
	"errors"
	"fmt"
	"sort"

	"ticksim.ai/internal/sim/logic/mathx"
)

var (
	ErrNoActors      = errors.New("no actors")
	ErrZeroDivisor   = errors.New("divisor must be positive")
	ErrBadDest       = errors.New("destination out of range")
	ErrSelfThrow     = errors.New("actor cannot throw to itself")
	ErrUnknownOp     = errors.New("unknown op")
	ErrBadReducer    = errors.New("invalid worry reducer")
	ErrNegativeCount = errors.New("round count must not be negative")
	ErrWorryOverflow = errors.New("value overflows int64")
)

// ActorConfig is the static description of one actor. A nil Reducer means
// DefaultReducer.
type ActorConfig struct {
	Items   []int64  `yaml:"items" json:"items"`
	Op      Op       `yaml:"op" json:"op"`
	Divisor int64    `yaml:"divisor" json:"divisor"`
	IfTrue  int      `yaml:"if_true" json:"if_true"`
	IfFalse int      `yaml:"if_false" json:"if_false"`
	Reducer *Reducer `yaml:"reducer,omitempty" json:"reducer,omitempty"`
}

// Throw describes one inspection: the item left From and landed on To.
type Throw struct {
	Round uint64
	From  int
	To    int
	Worry Worry
}

type actor struct {
	op        Op
	divisor   int64
	ifTrue    int
	ifFalse   int
	reducer   Reducer
	inspected int
}

type Simulator struct {
	actors []actor
	queues [][]Worry
	round  uint64

	onThrow func(Throw)
}

type Option func(*Simulator)

// WithThrowHook registers fn to observe every inspection in order.
func WithThrowHook(fn func(Throw)) Option {
	return func(s *Simulator) { s.onThrow = fn }
}

func New(configs []ActorConfig, opts ...Option) (*Simulator, error) {
	if len(configs) == 0 {
		return nil, ErrNoActors
	}
	product := int64(1)
	for i, c := range configs {
		if c.Divisor <= 0 {
			return nil, fmt.Errorf("actor %d: %w (got %d)", i, ErrZeroDivisor, c.Divisor)
		}
		p, ok := mathx.MulInt64(product, c.Divisor)
		if !ok {
			return nil, fmt.Errorf("actor %d: divisor product: %w", i, ErrWorryOverflow)
		}
		product = p
	}

	s := &Simulator{
		actors: make([]actor, len(configs)),
		queues: make([][]Worry, len(configs)),
	}
	for i, c := range configs {
		if err := c.Op.validate(); err != nil {
			return nil, fmt.Errorf("actor %d: %w", i, err)
		}
		for _, dst := range []int{c.IfTrue, c.IfFalse} {
			if dst < 0 || dst >= len(configs) {
				return nil, fmt.Errorf("actor %d: %w: %d", i, ErrBadDest, dst)
			}
			if dst == i {
				return nil, fmt.Errorf("actor %d: %w", i, ErrSelfThrow)
			}
		}
		r := DefaultReducer
		if c.Reducer != nil {
			r = *c.Reducer
		}
		r, err := r.resolve(product)
		if err != nil {
			return nil, fmt.Errorf("actor %d: %w", i, err)
		}
		s.actors[i] = actor{
			op:      c.Op,
			divisor: c.Divisor,
			ifTrue:  c.IfTrue,
			ifFalse: c.IfFalse,
			reducer: r,
		}
		q := make([]Worry, len(c.Items))
		for k, v := range c.Items {
			q[k] = Small(v)
		}
		s.queues[i] = q
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// RunRounds plays n full rounds.
func (s *Simulator) RunRounds(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeCount, n)
	}
	for r := 0; r < n; r++ {
		s.round++
		for i := range s.actors {
			s.drain(i)
		}
	}
	return nil
}

func (s *Simulator) drain(i int) {
	a := &s.actors[i]
	// Destinations never equal i, so nothing is appended to queue i while
	// it drains.
	items := s.queues[i]
	s.queues[i] = nil
	for _, worry := range items {
		v := a.reducer.Apply(a.op.Apply(worry))
		dst := a.ifFalse
		if v.divisible(a.divisor) {
			dst = a.ifTrue
		}
		s.queues[dst] = append(s.queues[dst], v)
		a.inspected++
		if s.onThrow != nil {
			s.onThrow(Throw{Round: s.round, From: i, To: dst, Worry: v})
		}
	}
}

// TopTwo returns the two highest inspection counts, a >= b. With a single
// actor b is 0.
func (s *Simulator) TopTwo() (a, b int) {
	counts := s.Inspections()
	sort.SliceStable(counts, func(i, j int) bool { return counts[i] > counts[j] })
	if len(counts) > 0 {
		a = counts[0]
	}
	if len(counts) > 1 {
		b = counts[1]
	}
	return a, b
}

func (s *Simulator) Inspections() []int {
	out := make([]int, len(s.actors))
	for i, a := range s.actors {
		out[i] = a.inspected
	}
	return out
}

// Queues returns a copy of every actor's queue, front first.
func (s *Simulator) Queues() [][]Worry {
	out := make([][]Worry, len(s.queues))
	for i, q := range s.queues {
		out[i] = append([]Worry(nil), q...)
	}
	return out
}

// ItemCount is the number of items in flight across all queues.
func (s *Simulator) ItemCount() int {
	n := 0
	for _, q := range s.queues {
		n += len(q)
	}
	return n
}

func (s *Simulator) Round() uint64 { return s.round }
func (s *Simulator) Len() int      { return len(s.actors) }
