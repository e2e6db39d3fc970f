package ltl

// GenFormulae lifts skel to every concrete formula over n propositional
// variables whose shape matches it, discarding candidates the equivalence
// filter (filter.go) can prove are redundant with some other formula of
// equal or smaller size that will also be enumerated. See GenFormulaeUnfiltered
// for the same generation with the filter disabled, kept as a cross-check
// harness for the filter-soundness property (spec §8).
func GenFormulae(skel *Skeleton, n int) []*Formula {
	return genFormulae(skel, n, true)
}

// GenFormulaeUnfiltered produces every formula GenFormulae would, plus every
// one the equivalence filter would have rejected. It exists purely as a
// cross-check harness: the filter is sound (never drops a formula whose
// equivalent survives) but not proven complete, so tests compare the two
// enumerations against each other rather than trusting the filtered one
// alone. It should not be used by Solve; besides defeating the point of the
// filter, the unfiltered set grows enormously faster with size.
func GenFormulaeUnfiltered(skel *Skeleton, n int) []*Formula {
	return genFormulae(skel, n, false)
}

func genFormulae(skel *Skeleton, n int, filtered bool) []*Formula {
	switch {
	case skel.IsLeaf():
		atoms := make([]*Formula, n)
		for i := 0; i < n; i++ {
			atoms[i] = Atom(i)
		}
		return atoms

	case skel.IsUnary():
		children := genFormulae(skel.Child(), n, filtered)
		trees := make([]*Formula, 0, 4*len(children))
		for _, child := range children {
			if !filtered || filterNot(child) {
				trees = append(trees, Not(child))
			}
			if !filtered || filterNext(child) {
				trees = append(trees, Next(child))
			}
			if !filtered || filterGlobally(child) {
				trees = append(trees, Globally(child))
			}
			if !filtered || filterFinally(child) {
				trees = append(trees, Finally(child))
			}
		}
		return trees

	default: // binary
		lefts := genFormulae(skel.Left(), n, filtered)
		rights := genFormulae(skel.Right(), n, filtered)
		trees := make([]*Formula, 0, 4*len(lefts)*len(rights))
		for _, l := range lefts {
			for _, r := range rights {
				if !filtered || filterAnd(l, r) {
					trees = append(trees, And(l, r))
				}
				if !filtered || filterOr(l, r) {
					trees = append(trees, Or(l, r))
				}
				if !filtered || filterImplies(l, r) {
					trees = append(trees, Implies(l, r))
				}
				if !filtered || filterUntil(l, r) {
					trees = append(trees, Until(l, r))
				}
			}
		}
		return trees
	}
}
