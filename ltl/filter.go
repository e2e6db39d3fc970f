package ltl

// This file implements the equivalence filter: local, root-and-children-only
// syntactic side conditions on tree construction that reject a candidate
// formula whenever it is detectable, by inspection of the candidate and its
// direct children alone, that some other formula of equal or smaller size
// (that will also be enumerated, or whose equivalent companion is preferred
// under Formula.Less) is semantically equivalent to it. The filter is sound
// — it never drops a formula whose equivalent survives — but not complete;
// GenFormulaeUnfiltered exists specifically so tests can check that claim
// empirically rather than trust it blindly.
//
// Each filterX predicate below reports whether a candidate built from the
// given child(ren) should be KEPT (true) or dropped (false); every reject
// condition from each predicate is an independent disjunct, matching the
// flat "reject when: ..." bullet lists of the specification rather than any
// particular priority ordering between them — there is never a case where
// two reject conditions disagree about whether to drop a candidate, since
// rejecting on a genuine equivalence is always sound no matter how many
// other reasons also applied.

func filterNot(child *Formula) bool {
	switch child.Kind() {
	case KindNot, KindImplies, KindFinally:
		return false
	case KindAnd, KindOr:
		if child.Left().Kind() == KindNot || child.Right().Kind() == KindNot {
			return false
		}
	}
	return true
}

func filterNext(child *Formula) bool {
	switch child.Kind() {
	case KindNot, KindGlobally, KindFinally:
		return false
	}
	return true
}

func filterGlobally(child *Formula) bool {
	return child.Kind() != KindGlobally
}

func filterFinally(child *Formula) bool {
	return child.Kind() != KindFinally
}

// isNegationOf reports whether a is syntactically ¬b.
func isNegationOf(a, b *Formula) bool {
	return a.Kind() == KindNot && a.Child().Equal(b)
}

func excludedMiddle(left, right *Formula) bool {
	return isNegationOf(left, right) || isNegationOf(right, left)
}

// asNextOf reports whether f is X(k g) for the given wrapped Kind k, and if
// so returns g's child (g's own single child). It is used for both the
// X(Gφ') unrolling check (wrapped=KindGlobally) and the X(Fφ') one
// (wrapped=KindFinally).
func asNextOf(f *Formula, wrapped Kind) (*Formula, bool) {
	if f.Kind() != KindNext {
		return nil, false
	}
	inner := f.Child()
	if inner.Kind() != wrapped {
		return nil, false
	}
	return inner.Child(), true
}

// unrollingPair reports whether {left,right} is {X(wrapped φ'), φ'} in
// either order: the syntactic unrolling of G or F that And/Or's filters
// reject.
func unrollingPair(left, right *Formula, wrapped Kind) bool {
	if phi, ok := asNextOf(left, wrapped); ok && phi.Equal(right) {
		return true
	}
	if phi, ok := asNextOf(right, wrapped); ok && phi.Equal(left) {
		return true
	}
	return false
}

// isUntilUnrollConjunction reports whether conjunction is And(a,b) where one
// of a,b is X(φ U psi) and the other equals φ — i.e. conjunction is the
// "φ ∧ X(φ U ψ)" half of the Until-unrolling identity
// φ U ψ ≡ ψ ∨ (φ ∧ X(φ U ψ)), for the given psi.
func isUntilUnrollConjunction(conjunction, psi *Formula) bool {
	if conjunction.Kind() != KindAnd {
		return false
	}
	c0, c1 := conjunction.Left(), conjunction.Right()

	check := func(nextCandidate, phiCandidate *Formula) bool {
		if nextCandidate.Kind() != KindNext {
			return false
		}
		inner := nextCandidate.Child()
		if inner.Kind() != KindUntil {
			return false
		}
		return inner.Left().Equal(phiCandidate) && inner.Right().Equal(psi)
	}

	return check(c1, c0) || check(c0, c1)
}

func filterAnd(left, right *Formula) bool {
	if !left.Less(right) {
		return false
	}
	if excludedMiddle(left, right) {
		return false
	}
	// force right-leaning association
	if left.Kind() == KindAnd {
		return false
	}
	// De Morgan / X distributes over And / G distributes over And
	if left.Kind() == KindNot && right.Kind() == KindNot {
		return false
	}
	if left.Kind() == KindNext && right.Kind() == KindNext {
		return false
	}
	if left.Kind() == KindGlobally && right.Kind() == KindGlobally {
		return false
	}
	// (φ->ψ1)∧(φ->ψ2) ≡ φ->(ψ1∧ψ2); (φ1->ψ)∧(φ2->ψ) ≡ (φ1∨φ2)->ψ
	if left.Kind() == KindImplies && right.Kind() == KindImplies {
		if left.Left().Equal(right.Left()) || left.Right().Equal(right.Right()) {
			return false
		}
	}
	// (φ1 U ψ)∧(φ2 U ψ) ≡ (φ1∧φ2) U ψ
	if left.Kind() == KindUntil && right.Kind() == KindUntil {
		if left.Right().Equal(right.Right()) {
			return false
		}
	}
	// (a∨b)∧a ≡ a
	if left.Kind() == KindOr && (left.Left().Equal(right) || left.Right().Equal(right)) {
		return false
	}
	if right.Kind() == KindOr && (right.Left().Equal(left) || right.Right().Equal(left)) {
		return false
	}
	// distributive canonicalization
	if left.Kind() == KindOr && right.Kind() == KindOr {
		if left.Left().Equal(right.Left()) || left.Left().Equal(right.Right()) ||
			left.Right().Equal(right.Left()) || left.Right().Equal(right.Right()) {
			return false
		}
	}
	// Gφ ≡ φ∧X(Gφ)
	if unrollingPair(left, right, KindGlobally) {
		return false
	}
	return true
}

func filterOr(left, right *Formula) bool {
	if !left.Less(right) {
		return false
	}
	if excludedMiddle(left, right) {
		return false
	}
	// force right-leaning association
	if left.Kind() == KindOr {
		return false
	}
	// ¬φ∨ψ ≡ φ->ψ, subsumes De Morgan
	if left.Kind() == KindNot {
		return false
	}
	if left.Kind() == KindNext && right.Kind() == KindNext {
		return false
	}
	if left.Kind() == KindFinally && right.Kind() == KindFinally {
		return false
	}
	if left.Kind() == KindImplies && right.Kind() == KindImplies {
		if left.Left().Equal(right.Left()) || left.Right().Equal(right.Right()) {
			return false
		}
	}
	// (φ U ψ1)∨(φ U ψ2) ≡ φ U (ψ1∨ψ2)
	if left.Kind() == KindUntil && right.Kind() == KindUntil {
		if left.Left().Equal(right.Left()) {
			return false
		}
	}
	// absorption against an inner And
	if left.Kind() == KindAnd && (left.Left().Equal(right) || left.Right().Equal(right)) {
		return false
	}
	if right.Kind() == KindAnd && (right.Left().Equal(left) || right.Right().Equal(left)) {
		return false
	}
	if left.Kind() == KindAnd && right.Kind() == KindAnd {
		if left.Left().Equal(right.Left()) || left.Left().Equal(right.Right()) ||
			left.Right().Equal(right.Left()) || left.Right().Equal(right.Right()) {
			return false
		}
	}
	// Fφ ≡ φ∨X(Fφ)
	if unrollingPair(left, right, KindFinally) {
		return false
	}
	// φUψ ≡ ψ∨(φ∧X(φUψ))
	if isUntilUnrollConjunction(right, left) || isUntilUnrollConjunction(left, right) {
		return false
	}
	return true
}

func filterImplies(left, right *Formula) bool {
	if left.Equal(right) {
		return false
	}
	if left.Kind() == KindNot {
		return false
	}
	if right.Kind() == KindNot {
		return false
	}
	// currying: φ1->(φ2->ψ) ≡ (φ1∧φ2)->ψ
	if right.Kind() == KindImplies {
		return false
	}
	return true
}

func filterUntil(left, right *Formula) bool {
	if left.Equal(right) {
		return false
	}
	// X(φ U ψ) ≡ (Xφ) U (Xψ)
	if left.Kind() == KindNext && right.Kind() == KindNext {
		return false
	}
	// φ U (φ U ψ) ≡ φ U ψ
	if right.Kind() == KindUntil && right.Left().Equal(left) {
		return false
	}
	return true
}
