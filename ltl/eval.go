package ltl

// evalKey is the memoization key for one (node, position) evaluation. It is
// keyed on the Formula's pointer identity, not its structural value: two
// Equal-but-separately-built trees are cached independently, which is
// correct (and cheap to get right) because sharing in this package is
// always achieved by reusing the same *Formula, never by interning equal
// ones.
type evalKey struct {
	node *Formula
	pos  int
}

// evaluator interprets one Formula against one Trace, memoizing per
// (node, position) within a single top-level call. It is not safe for
// concurrent use; Sample.Consistent builds a fresh one for each trace it
// checks.
type evaluator struct {
	root  *Formula
	cache map[evalKey]bool
}

func newEvaluator(root *Formula) *evaluator {
	return &evaluator{root: root, cache: make(map[evalKey]bool)}
}

// satisfiesAt reports whether the evaluator's root formula holds at the
// given position of trace.
func (ev *evaluator) satisfiesAt(trace Trace, pos int) bool {
	return ev.eval(ev.root, trace, pos)
}

func (ev *evaluator) eval(f *Formula, trace Trace, pos int) bool {
	key := evalKey{node: f, pos: pos}
	if v, ok := ev.cache[key]; ok {
		return v
	}
	v := ev.evalUncached(f, trace, pos)
	ev.cache[key] = v
	return v
}

func (ev *evaluator) evalUncached(f *Formula, trace Trace, pos int) bool {
	last := trace.Len() - 1
	switch f.kind {
	case KindAtom:
		return trace.at(pos, f.atom)
	case KindNot:
		return !ev.eval(f.a, trace, pos)
	case KindNext:
		return ev.eval(f.a, trace, trace.successor(pos))
	case KindGlobally:
		for s := pos; s <= last; s++ {
			if !ev.eval(f.a, trace, s) {
				return false
			}
		}
		return true
	case KindFinally:
		for s := pos; s <= last; s++ {
			if ev.eval(f.a, trace, s) {
				return true
			}
		}
		return false
	case KindAnd:
		return ev.eval(f.a, trace, pos) && ev.eval(f.b, trace, pos)
	case KindOr:
		return ev.eval(f.a, trace, pos) || ev.eval(f.b, trace, pos)
	case KindImplies:
		return !ev.eval(f.a, trace, pos) || ev.eval(f.b, trace, pos)
	case KindUntil:
		for s := pos; s <= last; s++ {
			if ev.eval(f.b, trace, s) {
				allBefore := true
				for r := pos; r < s; r++ {
					if !ev.eval(f.a, trace, r) {
						allBefore = false
						break
					}
				}
				if allBefore {
					return true
				}
			}
		}
		return false
	default:
		panic("ltl: unreachable formula kind in eval")
	}
}

// Eval reports whether phi holds at position pos of trace, under the
// stuttering-at-end convention: eval(Next(phi), trace, len-1) ==
// eval(phi, trace, len-1).
func Eval(phi *Formula, trace Trace, pos int) bool {
	return newEvaluator(phi).satisfiesAt(trace, pos)
}

// Satisfies reports trace ⊨ phi, i.e. Eval(phi, trace, 0).
func Satisfies(phi *Formula, trace Trace) bool {
	return Eval(phi, trace, 0)
}
