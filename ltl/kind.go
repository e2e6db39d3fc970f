package ltl

import "fmt"

// Kind identifies the variant of a Formula node: which LTL operator (or
// atomic proposition) it is. It plays the role that NodeType plays for
// tunascript's AST: a small closed enum used to dispatch without a type
// switch when only the operator identity is needed (e.g. in String()).
type Kind int

const (
	KindAtom Kind = iota
	KindNot
	KindNext
	KindGlobally
	KindFinally
	KindAnd
	KindOr
	KindImplies
	KindUntil
)

// Arity returns the number of child formulae a node of this Kind holds: 0 for
// KindAtom, 1 for the unary temporal/propositional operators, 2 for the
// binary ones.
func (k Kind) Arity() int {
	switch k {
	case KindAtom:
		return 0
	case KindNot, KindNext, KindGlobally, KindFinally:
		return 1
	case KindAnd, KindOr, KindImplies, KindUntil:
		return 2
	default:
		panic(fmt.Sprintf("unknown formula kind: %d", k))
	}
}

// Symbol returns the conventional LTL notation for the operator, e.g. "G" for
// KindGlobally or "U" for KindUntil. KindAtom has no symbol of its own.
func (k Kind) Symbol() string {
	switch k {
	case KindAtom:
		return ""
	case KindNot:
		return "!"
	case KindNext:
		return "X"
	case KindGlobally:
		return "G"
	case KindFinally:
		return "F"
	case KindAnd:
		return "&&"
	case KindOr:
		return "||"
	case KindImplies:
		return "->"
	case KindUntil:
		return "U"
	default:
		panic(fmt.Sprintf("unknown formula kind: %d", k))
	}
}

// String gives the all-caps name used in debug rendering of trees, mirroring
// the teacher's BinaryOperation/UnaryOperation String() methods.
func (k Kind) String() string {
	switch k {
	case KindAtom:
		return "ATOM"
	case KindNot:
		return "NOT"
	case KindNext:
		return "NEXT"
	case KindGlobally:
		return "GLOBALLY"
	case KindFinally:
		return "FINALLY"
	case KindAnd:
		return "AND"
	case KindOr:
		return "OR"
	case KindImplies:
		return "IMPLIES"
	case KindUntil:
		return "UNTIL"
	default:
		panic(fmt.Sprintf("unknown formula kind: %d", k))
	}
}

// rank gives the position of a Kind in the fixed total order used for tree
// comparison (see Formula.Less). It is deliberately distinct from the Kind's
// integer value so that the two can evolve independently.
func (k Kind) rank() int {
	switch k {
	case KindAtom:
		return 0
	case KindNot:
		return 1
	case KindNext:
		return 2
	case KindGlobally:
		return 3
	case KindFinally:
		return 4
	case KindAnd:
		return 5
	case KindOr:
		return 6
	case KindImplies:
		return 7
	case KindUntil:
		return 8
	default:
		panic(fmt.Sprintf("unknown formula kind: %d", k))
	}
}
