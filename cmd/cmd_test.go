package cmd

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathdrill/internal/problemgen"
	"github.com/abhisek/mathdrill/internal/store"
)

func playFlags(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	c := &cobra.Command{Use: "test"}
	addPlayFlags(c)
	require.NoError(t, c.ParseFlags(args))
	return c
}

func TestStartOptions(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		op      problemgen.Operation
		level   int
		mastery bool
		wantErr bool
	}{
		{name: "no flags"},
		{name: "op only", args: []string{"--op", "add"}, op: problemgen.OpAdd},
		{name: "symbol", args: []string{"--op", "x", "--level", "3"}, op: problemgen.OpMultiply, level: 3},
		{name: "mastery", args: []string{"--op", "/", "--mastery"}, op: problemgen.OpDivide, mastery: true},
		{name: "level without op", args: []string{"--level", "2"}, wantErr: true},
		{name: "mastery without op", args: []string{"--mastery"}, wantErr: true},
		{name: "unknown op", args: []string{"--op", "pow"}, wantErr: true},
		{name: "level out of range", args: []string{"--op", "add", "--level", "10"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := startOptions(playFlags(t, tt.args...))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.op, opts.StartOp)
			assert.Equal(t, tt.level, opts.StartLevel)
			assert.Equal(t, tt.mastery, opts.Mastery)
		})
	}
}

func TestRenderStats_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderStats(&buf, nil, nil))
	assert.Contains(t, buf.String(), "No quizzes yet")
}

func TestRenderStats(t *testing.T) {
	best := 95 * time.Second
	ops := []store.OperationStats{
		{Operation: "add", Sessions: 2, Answered: 20, Correct: 15, LevelUps: 1, HighestLevel: 2, BestMastery: &best},
	}
	sessions := []store.SessionRecord{
		{SessionID: "s1", Operation: "add", Mode: "mastery", StartLevel: 1, EndLevel: 1, Answered: 10, Correct: 9, StartedAt: time.Now(), MasteryTime: &best},
	}

	var buf bytes.Buffer
	require.NoError(t, renderStats(&buf, ops, sessions))
	out := buf.String()

	assert.Contains(t, out, "+ add")
	assert.Contains(t, out, "75%")
	assert.Contains(t, out, "1:35")
	assert.Contains(t, out, "9/10")
	assert.True(t, strings.Contains(out, "By operation"))
}

func problems(t *testing.T, gen problemgen.Generator) []problemgen.Problem {
	t.Helper()
	var out []problemgen.Problem
	for range 5 {
		p, err := gen.Generate(problemgen.OpAdd, 2)
		require.NoError(t, err)
		out = append(out, p)
	}
	return out
}

func TestNewGenerator(t *testing.T) {
	envSeed := uint64(42)
	tests := []struct {
		name      string
		args      []string
		env       *uint64
		wantLabel string
		wantSeed  uint64
	}{
		{name: "unseeded", wantLabel: "time"},
		{name: "explicit zero", args: []string{"--seed", "0"}, wantLabel: "0", wantSeed: 0},
		{name: "flag", args: []string{"--seed", "7"}, wantLabel: "7", wantSeed: 7},
		{name: "env", env: &envSeed, wantLabel: "42", wantSeed: 42},
		{name: "zero flag overrides env", args: []string{"--seed", "0"}, env: &envSeed, wantLabel: "0", wantSeed: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen, label := newGenerator(playFlags(t, tt.args...), tt.env)
			assert.Equal(t, tt.wantLabel, label)
			if tt.wantLabel == "time" {
				return
			}
			assert.Equal(t, problems(t, problemgen.NewSeeded(tt.wantSeed)), problems(t, gen))
		})
	}
}

func TestOpLabel(t *testing.T) {
	assert.Equal(t, "÷ divide", opLabel("divide"))
	assert.Equal(t, "modulo", opLabel("modulo"))
}
