package ltl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Solve_atomSuffices(t *testing.T) {
	// p0 is true throughout every positive trace and false throughout every
	// negative trace, so the smallest consistent formula is the bare atom.
	positive := []Trace{trace([]bool{true, false})}
	negative := []Trace{trace([]bool{false, false})}

	sample, err := NewSample(2, positive, negative)
	require.NoError(t, err)

	phi, ok := Solve(sample, SolveOptions{})
	require.True(t, ok)
	assert.Equal(t, 1, phi.Size())
	assert.True(t, sample.Consistent(phi))
}

func Test_Solve_needsNegation(t *testing.T) {
	positive := []Trace{trace([]bool{false})}
	negative := []Trace{trace([]bool{true})}

	sample, err := NewSample(1, positive, negative)
	require.NoError(t, err)

	phi, ok := Solve(sample, SolveOptions{})
	require.True(t, ok)
	assert.Equal(t, KindNot, phi.Kind())
	assert.True(t, sample.Consistent(phi))
}

func Test_Solve_needsGlobally(t *testing.T) {
	positive := []Trace{trace([]bool{true}, []bool{true}, []bool{true})}
	negative := []Trace{trace([]bool{true}, []bool{true}, []bool{false})}

	sample, err := NewSample(1, positive, negative)
	require.NoError(t, err)

	phi, ok := Solve(sample, SolveOptions{})
	require.True(t, ok)
	assert.True(t, sample.Consistent(phi))
	for _, lesser := range enumerateUpTo(phi.Size()-1, sample.Vars) {
		assert.False(t, sample.Consistent(lesser), "smaller formula %s should not have been consistent", lesser)
	}
}

func Test_Solve_needsTwoVars(t *testing.T) {
	// Neither p0 nor p1 alone separates the samples, only their conjunction.
	positive := []Trace{trace([]bool{true, true})}
	negative := []Trace{trace([]bool{true, false}), trace([]bool{false, true})}

	sample, err := NewSample(2, positive, negative)
	require.NoError(t, err)

	phi, ok := Solve(sample, SolveOptions{})
	require.True(t, ok)
	assert.True(t, sample.Consistent(phi))
	assert.GreaterOrEqual(t, phi.Size(), 2)
}

func Test_Solve_unsatisfiableWithinMaxSize(t *testing.T) {
	// The same trace is both positive and negative, so no formula can be
	// consistent, and bounding MaxSize must make Solve give up instead of
	// looping forever.
	positive := []Trace{trace([]bool{true})}
	negative := []Trace{trace([]bool{true})}

	sample := &Sample{Vars: 1, Positive: positive, Negative: negative}

	_, ok := Solve(sample, SolveOptions{MaxSize: 3})
	assert.False(t, ok)
}

func Test_Solve_resumeSkipsSmallerSizes(t *testing.T) {
	positive := []Trace{trace([]bool{true}, []bool{true}, []bool{true})}
	negative := []Trace{trace([]bool{true}, []bool{false}, []bool{true})}
	sample, err := NewSample(1, positive, negative)
	require.NoError(t, err)

	unrestricted, ok := Solve(sample, SolveOptions{})
	require.True(t, ok)

	var seen []int
	_, ok = Solve(sample, SolveOptions{
		MaxSize: unrestricted.Size() - 1,
		Resume:  &CheckpointState{NextSize: unrestricted.Size()},
		Logger:  func(event string, size int) { seen = append(seen, size) },
	})
	assert.False(t, ok, "resuming past the known answer's size with MaxSize below it must fail")
	assert.Empty(t, seen, "resume must skip straight past sizes below NextSize")
}

func Test_Solve_isMonotonicInSize(t *testing.T) {
	// Solve must never return a formula larger than the smallest consistent
	// one: check that no strictly smaller formula is consistent.
	positive := []Trace{trace([]bool{true}, []bool{true}, []bool{false})}
	negative := []Trace{trace([]bool{true}, []bool{false}, []bool{false})}
	sample, err := NewSample(1, positive, negative)
	require.NoError(t, err)

	phi, ok := Solve(sample, SolveOptions{})
	require.True(t, ok)
	for _, lesser := range enumerateUpTo(phi.Size()-1, sample.Vars) {
		assert.False(t, sample.Consistent(lesser))
	}
}

func Test_Solve_serialAndParallelAgreeOnSize(t *testing.T) {
	positive := []Trace{trace([]bool{true}, []bool{true}, []bool{true})}
	negative := []Trace{trace([]bool{true}, []bool{false}, []bool{true})}
	sample, err := NewSample(1, positive, negative)
	require.NoError(t, err)

	serial, ok := Solve(sample, SolveOptions{})
	require.True(t, ok)

	parallel, ok := Solve(sample, SolveOptions{Parallel: true, ParallelThreshold: 1})
	require.True(t, ok)

	assert.Equal(t, serial.Size(), parallel.Size())
	assert.True(t, sample.Consistent(parallel))
}

// enumerateUpTo returns every formula (filtered) of size 1..maxSize over n
// variables, used to assert that no smaller formula could have solved a
// sample Solve claims needs a particular size.
func enumerateUpTo(maxSize, n int) []*Formula {
	var out []*Formula
	for size := 1; size <= maxSize; size++ {
		for _, skel := range GenSkeletons(size) {
			out = append(out, GenFormulae(skel, n)...)
		}
	}
	return out
}
