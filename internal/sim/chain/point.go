package chain

import "ticksim.ai/internal/sim/logic/mathx"

// Point is a link position on the integer plane; Y grows upward.
type Point struct{ X, Y int }

func (p Point) Add(o Point) Point { return Point{p.X + o.X, p.Y + o.Y} }
func (p Point) Sub(o Point) Point { return Point{p.X - o.X, p.Y - o.Y} }

// SqLen is the squared Euclidean length of p.
func (p Point) SqLen() int { return p.X*p.X + p.Y*p.Y }

// Clamp1 clamps each component of p to {-1, 0, 1}.
func (p Point) Clamp1() Point { return Point{mathx.Sign(p.X), mathx.Sign(p.Y)} }

// Touching reports whether p and o differ by at most 1 on each axis.
func (p Point) Touching(o Point) bool {
	d := p.Sub(o)
	return mathx.Abs(d.X) <= 1 && mathx.Abs(d.Y) <= 1
}
