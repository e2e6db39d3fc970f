package ltl

import (
	"fmt"

	"github.com/dekarrin/ltlsynth/internal/ltlerrors"
)

// State is a fixed-width boolean valuation of the propositional variables
// p0..p(N-1) at a single point in a Trace.
type State []bool

// Trace is a finite, non-empty, ordered sequence of States, all of the same
// width. Traces are indexed from 0 to Len()-1.
type Trace []State

// Len returns the number of states in the trace.
func (t Trace) Len() int { return len(t) }

// Width returns the number of propositional variables each state carries,
// i.e. N. Width panics on an empty trace; traces are required to be
// non-empty by construction (see Sample.validate and sampleio.Load).
func (t Trace) Width() int {
	if len(t) == 0 {
		panic("ltl: trace has no states")
	}
	return len(t[0])
}

// at returns the boolean value of proposition i at position t[pos], with the
// stuttering convention applied: positions at or past the end of the trace
// stutter on the last state.
func (tr Trace) at(pos, i int) bool {
	if pos >= len(tr) {
		pos = len(tr) - 1
	}
	return tr[pos][i]
}

// successor returns the position Next moves to from pos, applying the
// stuttering convention: the last state is its own successor.
func (tr Trace) successor(pos int) int {
	if pos+1 >= len(tr) {
		return len(tr) - 1
	}
	return pos + 1
}

// Sample is a pair of trace multisets, tagged positive and negative. No
// membership invariant is enforced between the two: a trace duplicated in
// both simply makes no formula consistent, which is a property of the
// input, not an error this package rejects.
type Sample struct {
	// Vars is N, the number of propositional variables every trace in the
	// sample is defined over.
	Vars int

	// Positive holds every trace the target formula must satisfy.
	Positive []Trace

	// Negative holds every trace the target formula must reject.
	Negative []Trace
}

// NewSample constructs a Sample over the given number of variables,
// validating that every trace is non-empty and that every state has width
// vars. It returns an error wrapping ErrEmptyTrace for an empty trace, or
// ErrInconsistentWidth for a state of another width (see
// internal/ltlerrors); callers that already trust their traces (e.g.
// property tests) may build a Sample literal directly and skip validation.
func NewSample(vars int, positive, negative []Trace) (*Sample, error) {
	s := &Sample{Vars: vars, Positive: positive, Negative: negative}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Sample) validate() error {
	check := func(traces []Trace, label string) error {
		for i, tr := range traces {
			if tr.Len() == 0 {
				return ltlerrors.New(fmt.Sprintf("%s trace %d", label, i), ltlerrors.ErrEmptyTrace)
			}
			for j, st := range tr {
				if len(st) != s.Vars {
					return ltlerrors.New(fmt.Sprintf("%s trace %d state %d: width %d, want %d", label, i, j, len(st), s.Vars), ltlerrors.ErrInconsistentWidth)
				}
			}
		}
		return nil
	}
	if err := check(s.Positive, "positive"); err != nil {
		return err
	}
	return check(s.Negative, "negative")
}

// Consistent reports whether phi is satisfied by every positive trace and by
// no negative trace: the definition of a consistent formula from §4.1.
func (s *Sample) Consistent(phi *Formula) bool {
	// A fresh evaluator (and memoization cache) per trace: the cache is
	// keyed on (node, position), not on the trace, so reusing one across
	// traces would return another trace's cached verdict.
	for _, tr := range s.Positive {
		if !newEvaluator(phi).satisfiesAt(tr, 0) {
			return false
		}
	}
	for _, tr := range s.Negative {
		if newEvaluator(phi).satisfiesAt(tr, 0) {
			return false
		}
	}
	return true
}
