package ltl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Formula_Size(t *testing.T) {
	testCases := []struct {
		name   string
		input  *Formula
		expect int
	}{
		{"atom", Atom(0), 1},
		{"negated atom", Not(Atom(0)), 1},
		{"globally atom", Globally(Atom(1)), 1},
		{"and of two atoms", And(Atom(0), Atom(1)), 2},
		{"until nested in next", Next(Until(Atom(0), Atom(1))), 2},
		{"implies of and/or", Implies(And(Atom(0), Atom(1)), Or(Atom(2), Atom(3))), 4},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expect, tc.input.Size())
		})
	}
}

func Test_Formula_Equal(t *testing.T) {
	testCases := []struct {
		name   string
		a, b   *Formula
		expect bool
	}{
		{"same atom", Atom(0), Atom(0), true},
		{"different atom index", Atom(0), Atom(1), false},
		{"same shape shared leaf", And(Atom(0), Atom(1)), And(Atom(0), Atom(1)), true},
		{"different operator same children", And(Atom(0), Atom(1)), Or(Atom(0), Atom(1)), false},
		{"different kind entirely", Next(Atom(0)), Globally(Atom(0)), false},
		{"deep structural match", Until(Not(Atom(0)), Finally(Atom(1))), Until(Not(Atom(0)), Finally(Atom(1))), true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expect, tc.a.Equal(tc.b))
			assert.Equal(t, tc.expect, tc.b.Equal(tc.a), "Equal must be symmetric")
		})
	}
}

func Test_Formula_Less_isTotalOrder(t *testing.T) {
	// Less must be a strict total order over any set of distinct formulae:
	// irreflexive, asymmetric, and giving exactly one true/false outcome
	// per unordered pair.
	formulae := []*Formula{
		Atom(0), Atom(1), Atom(2),
		Not(Atom(0)), Next(Atom(0)), Globally(Atom(0)), Finally(Atom(0)),
		And(Atom(0), Atom(1)), Or(Atom(0), Atom(1)),
		Implies(Atom(0), Atom(1)), Until(Atom(0), Atom(1)),
	}

	for i, a := range formulae {
		assert.False(t, a.Less(a), "Less must be irreflexive")
		for j, b := range formulae {
			if i == j {
				continue
			}
			if a.Equal(b) {
				continue
			}
			aLessB := a.Less(b)
			bLessA := b.Less(a)
			assert.NotEqual(t, aLessB, bLessA, "exactly one of a<b, b<a must hold for distinct a=%s b=%s", a, b)
		}
	}
}

func Test_Formula_String(t *testing.T) {
	testCases := []struct {
		name   string
		input  *Formula
		expect string
	}{
		{"atom", Atom(0), "p0"},
		{"not", Not(Atom(1)), "!(p1)"},
		{"globally then and", Globally(And(Atom(0), Atom(1))), "G((p0 && p1))"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expect, tc.input.String())
		})
	}
}

func Test_Kind_Arity(t *testing.T) {
	assert.Equal(t, 0, KindAtom.Arity())
	assert.Equal(t, 1, KindNot.Arity())
	assert.Equal(t, 2, KindUntil.Arity())
}
