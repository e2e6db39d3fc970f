package ltl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_GenSkeletons_counts(t *testing.T) {
	// Catalan-adjacent counting: size 1 has exactly one shape (Leaf); size 2
	// has exactly two (Unary(Leaf), Binary(Leaf,Leaf)); size 3 has a Unary
	// over each of the two size-2 shapes plus two shapes from each of the
	// binary splits (1,2) and (2,1), six in all.
	testCases := []struct {
		size   int
		expect int
	}{
		{1, 1},
		{2, 2},
		{3, 6},
	}

	for _, tc := range testCases {
		got := GenSkeletons(tc.size)
		assert.Len(t, got, tc.expect, "size %d", tc.size)
		for _, s := range got {
			assert.Equal(t, tc.size, s.Size())
		}
	}
}

func Test_GenSkeletons_shapes(t *testing.T) {
	skels := GenSkeletons(1)
	assert.True(t, skels[0].IsLeaf())

	skels2 := GenSkeletons(2)
	var sawUnary, sawBinary bool
	for _, s := range skels2 {
		if s.IsUnary() {
			sawUnary = true
			assert.True(t, s.Child().IsLeaf())
		}
		if s.IsBinary() {
			sawBinary = true
			assert.True(t, s.Left().IsLeaf())
			assert.True(t, s.Right().IsLeaf())
		}
	}
	assert.True(t, sawUnary)
	assert.True(t, sawBinary)
}

func Test_GenSkeletons_panicsOnZero(t *testing.T) {
	assert.Panics(t, func() { GenSkeletons(0) })
}
