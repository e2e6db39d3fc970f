package ltl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func trace(states ...[]bool) Trace {
	tr := make(Trace, len(states))
	for i, s := range states {
		tr[i] = State(s)
	}
	return tr
}

func Test_Eval_basicOperators(t *testing.T) {
	tr := trace([]bool{true, false}, []bool{false, true}, []bool{true, true})

	testCases := []struct {
		name   string
		phi    *Formula
		pos    int
		expect bool
	}{
		{"atom true at 0", Atom(0), 0, true},
		{"atom false at 0", Atom(1), 0, false},
		{"not", Not(Atom(0)), 0, false},
		{"and both true", And(Atom(0), Atom(1)), 2, true},
		{"and one false", And(Atom(0), Atom(1)), 0, false},
		{"or one true", Or(Atom(0), Atom(1)), 0, true},
		{"implies false antecedent", Implies(Atom(1), Atom(0)), 0, true},
		{"next moves forward", Next(Atom(1)), 0, true},
		{"next moves forward true", Next(Atom(0)), 1, true},
		{"globally fails partway", Globally(Atom(0)), 0, false},
		{"globally holds from 2", Globally(Atom(0)), 2, true},
		{"finally true eventually", Finally(Atom(1)), 0, true},
		{"until", Until(Atom(0), Atom(1)), 1, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expect, Eval(tc.phi, tr, tc.pos))
		})
	}
}

func Test_Eval_totality(t *testing.T) {
	// Every well-formed formula evaluates without panicking on a non-empty
	// trace, for every position in range.
	tr := trace([]bool{true, false, true}, []bool{false, true, false})
	formulae := []*Formula{
		Atom(0), Not(Atom(1)), Next(Atom(0)), Globally(Atom(0)), Finally(Atom(1)),
		And(Atom(0), Atom(1)), Or(Atom(0), Atom(1)), Implies(Atom(0), Atom(1)),
		Until(Atom(0), Atom(1)),
	}
	for _, phi := range formulae {
		for pos := 0; pos < tr.Len(); pos++ {
			assert.NotPanics(t, func() { Eval(phi, tr, pos) })
		}
	}
}

func Test_Eval_nextStuttersAtEnd(t *testing.T) {
	tr := trace([]bool{true, false}, []bool{false, true}, []bool{true, true})
	last := tr.Len() - 1

	formulae := []*Formula{Atom(0), Atom(1), Not(Atom(0)), And(Atom(0), Atom(1)), Globally(Atom(0))}
	for _, phi := range formulae {
		assert.Equal(t, Eval(phi, tr, last), Eval(Next(phi), tr, last),
			"Next(%s) must equal %s at the last position", phi, phi)
	}
}

func Test_Eval_dualities(t *testing.T) {
	tr := trace([]bool{true, false}, []bool{false, false}, []bool{true, true})
	tautology := Or(Atom(0), Not(Atom(0)))

	formulae := []*Formula{Atom(0), Atom(1), And(Atom(0), Atom(1)), Not(Atom(1))}
	for _, phi := range formulae {
		for pos := 0; pos < tr.Len(); pos++ {
			// G phi == !F(!phi)
			assert.Equal(t, Eval(Globally(phi), tr, pos), !Eval(Finally(Not(phi)), tr, pos))
			// F phi == (true U phi)
			assert.Equal(t, Eval(Finally(phi), tr, pos), Eval(Until(tautology, phi), tr, pos))
		}
	}
}

func Test_Sample_Consistent(t *testing.T) {
	p0 := trace([]bool{true, false}, []bool{true, false})
	n0 := trace([]bool{true, false}, []bool{false, false})

	sample := &Sample{Vars: 1, Positive: []Trace{p0}, Negative: []Trace{n0}}

	assert.True(t, sample.Consistent(Globally(Atom(0))))
	assert.False(t, sample.Consistent(Atom(0)))
}

func Test_NewSample_rejectsInconsistentWidth(t *testing.T) {
	bad := trace([]bool{true, false, true})
	_, err := NewSample(2, []Trace{bad}, nil)
	assert.Error(t, err)
}

func Test_NewSample_rejectsEmptyTrace(t *testing.T) {
	_, err := NewSample(2, []Trace{{}}, nil)
	assert.Error(t, err)
}
