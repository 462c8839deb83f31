package expr

import (
	"errors"
	"strings"

	"github.com/lumo-dev/xcoll/lib/infra"
)

// MaxPrecedence is the precedence of leaves and function calls; no
// operator binds tighter.
const MaxPrecedence = 20

const Pi = 3.141592653589793238462643383279502884

// ErrIncompleteExpression is returned when a tree with missing child
// nodes is evaluated.
var ErrIncompleteExpression = errors.New("expr: incomplete expression")

// Expression is one node of an algebraic expression tree.
type Expression interface {
	// Eval computes the numerical result of the whole subtree. An
	// incomplete subtree yields ErrIncompleteExpression; numerical edge
	// cases keep IEEE 754 semantics (x/0 is ±Inf, sqrt(-1) is NaN).
	Eval() (float64, error)
	// Arity returns the number of child slots.
	Arity() int
	// Child returns the child expression at index, or nil when the slot
	// is empty or out of range.
	Child(index int) Expression
	// IsComplete reports whether every child slot of the subtree is
	// filled. Recursive.
	IsComplete() bool
	// Precedence orders nodes for infix rendering: a child with lower
	// precedence needs parentheses.
	Precedence() int
	// Token is the written notation of this single node.
	Token() string
	// Infix renders the whole subtree in infix notation, printing "#"
	// for empty child slots.
	Infix() string
	// Clone returns a deep copy of the subtree. Empty slots stay empty.
	Clone() Expression
}

// evalChild evaluates e, treating an empty slot as an incomplete tree.
func evalChild(e Expression) (float64, error) {
	if e == nil {
		return 0, infra.WrapErrorStack(ErrIncompleteExpression)
	}
	return e.Eval()
}

func cloneOrNil(e Expression) Expression {
	if e == nil {
		return nil
	}
	return e.Clone()
}

// writeInfix renders a child subtree, parenthesized when its precedence
// is lower than the parent's, with "#" standing in for an empty slot.
func writeInfix(sb *strings.Builder, child Expression, parentPrecedence int) {
	if child == nil {
		sb.WriteByte('#')
		return
	}
	parenthesized := child.Precedence() < parentPrecedence
	if parenthesized {
		sb.WriteByte('(')
	}
	sb.WriteString(child.Infix())
	if parenthesized {
		sb.WriteByte(')')
	}
}
