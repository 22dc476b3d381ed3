package queue

import (
	"math/big"
	"strconv"
)

// Worry is an item's value. It stays an int64 while it fits and is
// promoted to a big.Int otherwise; big is nil for small values.
type Worry struct {
	n   int64
	big *big.Int
}

func Small(v int64) Worry { return Worry{n: v} }

// FromBig returns v as a Worry, demoting it when it fits in an int64.
func FromBig(v *big.Int) Worry {
	if v.IsInt64() {
		return Worry{n: v.Int64()}
	}
	return Worry{big: new(big.Int).Set(v)}
}

func (w Worry) IsBig() bool { return w.big != nil }

// Int64 returns the value and false if it does not fit.
func (w Worry) Int64() (int64, bool) {
	if w.big != nil {
		return 0, false
	}
	return w.n, true
}

// BigInt returns a copy of the value.
func (w Worry) BigInt() *big.Int {
	if w.big != nil {
		return new(big.Int).Set(w.big)
	}
	return big.NewInt(w.n)
}

// divisible reports w % d == 0 for d > 0.
func (w Worry) divisible(d int64) bool {
	if w.big == nil {
		return w.n%d == 0
	}
	return new(big.Int).Rem(w.big, big.NewInt(d)).Sign() == 0
}

func (w Worry) Equal(o Worry) bool {
	if w.big == nil && o.big == nil {
		return w.n == o.n
	}
	return w.BigInt().Cmp(o.BigInt()) == 0
}

func (w Worry) String() string {
	if w.big != nil {
		return w.big.String()
	}
	return strconv.FormatInt(w.n, 10)
}

// fromOwned is FromBig without the copy; x must not be used afterwards.
func fromOwned(x *big.Int) Worry {
	if x.IsInt64() {
		return Worry{n: x.Int64()}
	}
	return Worry{big: x}
}
