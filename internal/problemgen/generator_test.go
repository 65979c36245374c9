package problemgen

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seqSource replays a fixed sequence of offsets, wrapping each into [0, n).
type seqSource struct {
	vals []int
	i    int
}

func (s *seqSource) IntN(n int) int {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v % n
}

func TestGenerate_FixedSequence(t *testing.T) {
	tests := []struct {
		name  string
		op    Operation
		level int
		seq   []int
		want  Problem
	}{
		{"add level 2", OpAdd, 2, []int{2, 7}, Problem{Op: OpAdd, A: 12, B: 17, Answer: 29}},
		{"add level 1", OpAdd, 1, []int{1, 6}, Problem{Op: OpAdd, A: 2, B: 7, Answer: 9}},
		{"subtract swaps", OpSubtract, 2, []int{2, 7}, Problem{Op: OpSubtract, A: 17, B: 12, Answer: 5}},
		{"subtract keeps order", OpSubtract, 2, []int{7, 2}, Problem{Op: OpSubtract, A: 17, B: 12, Answer: 5}},
		{"multiply level 1", OpMultiply, 1, []int{2, 3}, Problem{Op: OpMultiply, A: 3, B: 4, Answer: 12}},
		{"divide rescales dividend", OpDivide, 2, []int{2, 7}, Problem{Op: OpDivide, A: 204, B: 17, Answer: 12}},
		{"divide level 1 caps divisor", OpDivide, 1, []int{4, 1}, Problem{Op: OpDivide, A: 10, B: 2, Answer: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := New(&seqSource{vals: tt.seq})
			got, err := gen.Generate(tt.op, tt.level)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGenerate_Properties(t *testing.T) {
	gen := NewSeeded(42)

	for level := MinLevel; level <= MaxLevel; level++ {
		lo, hi, err := Bounds(level)
		require.NoError(t, err)

		for i := 0; i < 200; i++ {
			p, err := gen.Generate(OpAdd, level)
			require.NoError(t, err)
			if p.A < lo || p.A > hi || p.B < lo || p.B > hi {
				t.Fatalf("level %d add: operands %d, %d outside [%d, %d]", level, p.A, p.B, lo, hi)
			}
			if p.Answer != p.A+p.B {
				t.Fatalf("level %d add: %d + %d != %d", level, p.A, p.B, p.Answer)
			}

			p, err = gen.Generate(OpSubtract, level)
			require.NoError(t, err)
			if p.A < p.B || p.Answer != p.A-p.B || p.Answer < 0 {
				t.Fatalf("level %d subtract: bad problem %+v", level, p)
			}

			p, err = gen.Generate(OpMultiply, level)
			require.NoError(t, err)
			if p.Answer != p.A*p.B {
				t.Fatalf("level %d multiply: bad problem %+v", level, p)
			}

			p, err = gen.Generate(OpDivide, level)
			require.NoError(t, err)
			if p.B == 0 || p.A%p.B != 0 || p.Answer != p.A/p.B {
				t.Fatalf("level %d divide: bad problem %+v", level, p)
			}
			if p.B < lo || p.B > max(lo, hi/2) {
				t.Fatalf("level %d divide: divisor %d outside [%d, %d]", level, p.B, lo, hi/2)
			}
			if p.Answer < lo || p.Answer > hi {
				t.Fatalf("level %d divide: quotient %d outside [%d, %d]", level, p.Answer, lo, hi)
			}
		}
	}
}

func TestGenerate_SameSeedSameSequence(t *testing.T) {
	a := NewSeeded(7)
	b := NewSeeded(7)

	for i := 0; i < 50; i++ {
		op := Operations()[i%4]
		pa, err := a.Generate(op, 3)
		require.NoError(t, err)
		pb, err := b.Generate(op, 3)
		require.NoError(t, err)
		assert.Equal(t, pa, pb, "problem %d", i)
	}
}

func TestGenerate_InvalidInput(t *testing.T) {
	gen := NewSeeded(1)

	for _, level := range []int{-1, 0, MaxLevel + 1} {
		_, err := gen.Generate(OpAdd, level)
		if !errors.Is(err, ErrInvalidLevel) {
			t.Errorf("level %d: expected ErrInvalidLevel, got %v", level, err)
		}
	}

	_, err := gen.Generate(Operation("modulo"), 1)
	if !errors.Is(err, ErrUnknownOperation) {
		t.Errorf("expected ErrUnknownOperation, got %v", err)
	}
}

func TestBounds(t *testing.T) {
	tests := []struct {
		level  int
		lo, hi int
	}{
		{1, 1, 9},
		{2, 10, 99},
		{3, 100, 999},
		{9, 100000000, 999999999},
	}
	for _, tt := range tests {
		lo, hi, err := Bounds(tt.level)
		if err != nil {
			t.Fatalf("Bounds(%d): %v", tt.level, err)
		}
		if lo != tt.lo || hi != tt.hi {
			t.Errorf("Bounds(%d) = [%d, %d], want [%d, %d]", tt.level, lo, hi, tt.lo, tt.hi)
		}
	}
}
