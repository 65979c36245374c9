package problemgen

import (
	"math/rand/v2"
	"time"
)

// Generator produces arithmetic problems.
type Generator interface {
	// Generate produces a fresh problem for op at the given digit-width level.
	// Returns ErrUnknownOperation or ErrInvalidLevel for bad input.
	Generate(op Operation, level int) (Problem, error)
}

// Source is the randomness a RandomGenerator draws from.
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	// IntN returns a value in [0, n). n is always > 0.
	IntN(n int) int
}

// RandomGenerator samples operands uniformly from a Source.
type RandomGenerator struct {
	src Source
}

var _ Generator = (*RandomGenerator)(nil)

// New creates a RandomGenerator drawing from src.
func New(src Source) *RandomGenerator {
	return &RandomGenerator{src: src}
}

// NewSeeded creates a RandomGenerator backed by a PCG source, so the same
// seed always yields the same sequence of problems.
func NewSeeded(seed uint64) *RandomGenerator {
	return New(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// NewTimeSeeded creates a RandomGenerator seeded from the wall clock.
func NewTimeSeeded() *RandomGenerator {
	return NewSeeded(uint64(time.Now().UnixNano()))
}

func (g *RandomGenerator) Generate(op Operation, level int) (Problem, error) {
	if !op.Valid() {
		return Problem{}, ErrUnknownOperation
	}
	lo, hi, err := Bounds(level)
	if err != nil {
		return Problem{}, err
	}

	// Divisors are capped at hi/2 to keep the rescaled dividend small.
	hiB := hi
	if op == OpDivide {
		hiB = hi / 2
	}

	for {
		a := g.between(lo, hi)
		b := g.between(lo, hiB)

		p := Problem{Op: op, A: a, B: b}
		switch op {
		case OpAdd:
			p.Answer = a + b
		case OpSubtract:
			if p.A < p.B {
				p.A, p.B = p.B, p.A
			}
			p.Answer = p.A - p.B
		case OpMultiply:
			p.Answer = a * b
		case OpDivide:
			if b == 0 {
				continue
			}
			p.A = a * b
			p.Answer = p.A / b
		}
		return p, nil
	}
}

// between returns a uniform value in [lo, hi].
func (g *RandomGenerator) between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + g.src.IntN(hi-lo+1)
}
