package ltl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_GenFormulae_leafProducesOneAtomPerVar(t *testing.T) {
	leaf := GenSkeletons(1)[0]
	formulae := GenFormulae(leaf, 3)
	assert.Len(t, formulae, 3)
	for i, f := range formulae {
		assert.Equal(t, KindAtom, f.Kind())
		assert.Equal(t, i, f.AtomIndex())
	}
}

func Test_GenFormulae_filteredNeverExceedsUnfiltered(t *testing.T) {
	for size := 1; size <= 4; size++ {
		for _, skel := range GenSkeletons(size) {
			filtered := GenFormulae(skel, 2)
			unfiltered := GenFormulaeUnfiltered(skel, 2)
			assert.LessOrEqual(t, len(filtered), len(unfiltered))
		}
	}
}

func Test_GenFormulae_filteredAreDistinct(t *testing.T) {
	// The filter's And/Or commutativity and other canonicalization rules
	// should never let two structurally-equal formulae survive together.
	for size := 1; size <= 4; size++ {
		var formulae []*Formula
		for _, skel := range GenSkeletons(size) {
			formulae = append(formulae, GenFormulae(skel, 2)...)
		}
		for i := range formulae {
			for j := i + 1; j < len(formulae); j++ {
				assert.False(t, formulae[i].Equal(formulae[j]),
					"duplicate survived filter: %s", formulae[i])
			}
		}
	}
}

// allTraces returns every trace over n propositional variables with length
// 1..maxLen, used as a saturating test set for the filter-soundness check.
func allTraces(n, maxLen int) []Trace {
	var states []State
	for mask := 0; mask < (1 << n); mask++ {
		s := make(State, n)
		for i := 0; i < n; i++ {
			s[i] = mask&(1<<i) != 0
		}
		states = append(states, s)
	}

	var traces []Trace
	var build func(prefix Trace, remaining int)
	build = func(prefix Trace, remaining int) {
		if len(prefix) > 0 {
			cp := make(Trace, len(prefix))
			copy(cp, prefix)
			traces = append(traces, cp)
		}
		if remaining == 0 {
			return
		}
		for _, s := range states {
			build(append(prefix, s), remaining-1)
		}
	}
	build(nil, maxLen)
	return traces
}

// evalEquivalent reports whether a and b evaluate identically at every
// position of every given trace.
func evalEquivalent(a, b *Formula, traces []Trace) bool {
	for _, tr := range traces {
		for pos := 0; pos < tr.Len(); pos++ {
			if Eval(a, tr, pos) != Eval(b, tr, pos) {
				return false
			}
		}
	}
	return true
}

// Test_Filter_soundness is the property required by spec §8: for every
// dropped formula (one GenFormulaeUnfiltered produces that GenFormulae does
// not), some retained formula of equal or smaller size is semantically
// equivalent on a saturating test set of bounded-length traces. The bounds
// here (N<=2, size<=4, trace length<=3) are smaller than the spec's
// illustrative N<=3/size<=5 to keep the test's runtime reasonable; the
// property itself does not depend on the bound chosen.
func Test_Filter_soundness(t *testing.T) {
	const maxN = 2
	const maxSize = 4
	const maxTraceLen = 3

	for n := 1; n <= maxN; n++ {
		traces := allTraces(n, maxTraceLen)

		filteredBySize := make(map[int][]*Formula, maxSize)
		for size := 1; size <= maxSize; size++ {
			var fs []*Formula
			for _, skel := range GenSkeletons(size) {
				fs = append(fs, GenFormulae(skel, n)...)
			}
			filteredBySize[size] = fs
		}

		for size := 1; size <= maxSize; size++ {
			var unfiltered []*Formula
			for _, skel := range GenSkeletons(size) {
				unfiltered = append(unfiltered, GenFormulaeUnfiltered(skel, n)...)
			}

			for _, u := range unfiltered {
				keptDirectly := false
				for _, f := range filteredBySize[size] {
					if u.Equal(f) {
						keptDirectly = true
						break
					}
				}
				if keptDirectly {
					continue
				}

				foundEquivalent := false
				for s := 1; s <= size && !foundEquivalent; s++ {
					for _, f := range filteredBySize[s] {
						if evalEquivalent(u, f, traces) {
							foundEquivalent = true
							break
						}
					}
				}
				assert.True(t, foundEquivalent,
					"N=%d size=%d: dropped formula %s has no surviving equivalent", n, size, u)
			}
		}
	}
}
