package queue

import (
	"fmt"
	"math/big"

	"ticksim.ai/internal/sim/logic/mathx"
)

type OpKind string

const (
	OpAdd      OpKind = "add"
	OpMultiply OpKind = "multiply"
	OpSquare   OpKind = "square"
)

// Op is the per-actor worry transform. Value is ignored for OpSquare.
type Op struct {
	Kind  OpKind `yaml:"kind" json:"kind"`
	Value int64  `yaml:"value,omitempty" json:"value,omitempty"`
}

func Add(k int64) Op      { return Op{Kind: OpAdd, Value: k} }
func Multiply(k int64) Op { return Op{Kind: OpMultiply, Value: k} }
func Square() Op          { return Op{Kind: OpSquare} }

// Apply evaluates the op, switching to big.Int arithmetic when the int64
// result would overflow.
func (o Op) Apply(old Worry) Worry {
	if n, ok := old.Int64(); ok {
		var (
			v    int64
			fits bool
		)
		switch o.Kind {
		case OpAdd:
			v, fits = mathx.AddInt64(n, o.Value)
		case OpMultiply:
			v, fits = mathx.MulInt64(n, o.Value)
		case OpSquare:
			v, fits = mathx.MulInt64(n, n)
		default:
			return old
		}
		if fits {
			return Small(v)
		}
	}
	x := old.BigInt()
	switch o.Kind {
	case OpAdd:
		x.Add(x, big.NewInt(o.Value))
	case OpMultiply:
		x.Mul(x, big.NewInt(o.Value))
	case OpSquare:
		x.Mul(x, x)
	}
	return fromOwned(x)
}

func (o Op) validate() error {
	switch o.Kind {
	case OpAdd, OpMultiply, OpSquare:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownOp, o.Kind)
}

func (o Op) String() string {
	switch o.Kind {
	case OpAdd:
		return fmt.Sprintf("old + %d", o.Value)
	case OpMultiply:
		return fmt.Sprintf("old * %d", o.Value)
	case OpSquare:
		return "old * old"
	}
	return string(o.Kind)
}

type ReducerKind string

const (
	ReduceDivide ReducerKind = "divide"
	ReduceModulo ReducerKind = "modulo"
	ReduceNone   ReducerKind = "none"
)

// Reducer manages worry after each transform. A modulo reducer with a zero
// Value reduces by the product of every actor's divisor.
type Reducer struct {
	Kind  ReducerKind `yaml:"kind" json:"kind"`
	Value int64       `yaml:"value,omitempty" json:"value,omitempty"`
}

func DivideBy(k int64) Reducer { return Reducer{Kind: ReduceDivide, Value: k} }
func Modulo(k int64) Reducer   { return Reducer{Kind: ReduceModulo, Value: k} }
func ModuloProduct() Reducer   { return Reducer{Kind: ReduceModulo} }
func NoReduction() Reducer     { return Reducer{Kind: ReduceNone} }

// DefaultReducer applies when an actor config carries no reducer.
var DefaultReducer = DivideBy(3)

// Apply reduces w. A divide or modulo reducer without a positive Value
// leaves w unchanged.
func (r Reducer) Apply(w Worry) Worry {
	if r.Value <= 0 {
		return w
	}
	switch r.Kind {
	case ReduceDivide:
		if n, ok := w.Int64(); ok {
			return Small(n / r.Value)
		}
		x := w.BigInt()
		return fromOwned(x.Quo(x, big.NewInt(r.Value)))
	case ReduceModulo:
		if n, ok := w.Int64(); ok {
			return Small(mathx.Mod(n, r.Value))
		}
		x := w.BigInt()
		return fromOwned(x.Mod(x, big.NewInt(r.Value)))
	}
	return w
}

// resolve checks the reducer and fills in the divisor product for an
// unsized modulo reducer.
func (r Reducer) resolve(product int64) (Reducer, error) {
	switch r.Kind {
	case ReduceDivide:
		if r.Value <= 0 {
			return r, fmt.Errorf("%w: divide by %d", ErrBadReducer, r.Value)
		}
	case ReduceModulo:
		if r.Value < 0 {
			return r, fmt.Errorf("%w: modulo %d", ErrBadReducer, r.Value)
		}
		if r.Value == 0 {
			r.Value = product
		}
	case ReduceNone:
	default:
		return r, fmt.Errorf("%w: %q", ErrBadReducer, r.Kind)
	}
	return r, nil
}

func (r Reducer) String() string {
	switch r.Kind {
	case ReduceDivide:
		return fmt.Sprintf("divide by %d", r.Value)
	case ReduceModulo:
		if r.Value == 0 {
			return "modulo divisor product"
		}
		return fmt.Sprintf("modulo %d", r.Value)
	}
	return string(r.Kind)
}
