package expr

import (
	"strconv"
	"strings"
)

var _ Expression = (*Number)(nil) // Type check assertion

// Number is a constant leaf.
type Number struct {
	value float64
}

func NewNumber(value float64) *Number {
	return &Number{value: value}
}

func (n *Number) Eval() (float64, error) { return n.value, nil }
func (n *Number) Arity() int             { return 0 }
func (n *Number) Child(int) Expression   { return nil }
func (n *Number) IsComplete() bool       { return true }
func (n *Number) Precedence() int        { return MaxPrecedence }
func (n *Number) Token() string          { return strconv.FormatFloat(n.value, 'g', -1, 64) }
func (n *Number) Infix() string          { return n.Token() }
func (n *Number) Clone() Expression      { return &Number{value: n.value} }

// unaryExpr holds the single child slot shared by unary operators and
// functions.
type unaryExpr struct {
	first Expression
}

func (e *unaryExpr) Arity() int { return 1 }

func (e *unaryExpr) Child(index int) Expression {
	if index == 0 {
		return e.first
	}
	return nil
}

func (e *unaryExpr) IsComplete() bool {
	return e.first != nil && e.first.IsComplete()
}

func (e *unaryExpr) First() Expression         { return e.first }
func (e *unaryExpr) SetFirst(first Expression) { e.first = first }

// binaryExpr holds the two child slots shared by binary operators and
// functions.
type binaryExpr struct {
	first  Expression
	second Expression
}

func (e *binaryExpr) Arity() int { return 2 }

func (e *binaryExpr) Child(index int) Expression {
	switch index {
	case 0:
		return e.first
	case 1:
		return e.second
	}
	return nil
}

func (e *binaryExpr) IsComplete() bool {
	return e.first != nil && e.second != nil &&
		e.first.IsComplete() && e.second.IsComplete()
}

func (e *binaryExpr) First() Expression           { return e.first }
func (e *binaryExpr) Second() Expression          { return e.second }
func (e *binaryExpr) SetFirst(first Expression)   { e.first = first }
func (e *binaryExpr) SetSecond(second Expression) { e.second = second }

// prefixInfix renders a prefix unary operator: token, then the operand.
func prefixInfix(token string, first Expression, precedence int) string {
	var sb strings.Builder
	sb.WriteString(token)
	writeInfix(&sb, first, precedence)
	return sb.String()
}

// operatorInfix renders a binary operator: "a <op> b".
func operatorInfix(token string, first, second Expression, precedence int) string {
	var sb strings.Builder
	writeInfix(&sb, first, precedence)
	sb.WriteByte(' ')
	sb.WriteString(token)
	sb.WriteByte(' ')
	writeInfix(&sb, second, precedence)
	return sb.String()
}

// callInfix renders a function call: "name(a)" or "name(a, b)".
func callInfix(token string, children ...Expression) string {
	var sb strings.Builder
	sb.WriteString(token)
	sb.WriteByte('(')
	for i, child := range children {
		if i > 0 {
			sb.WriteString(", ")
		}
		if child == nil {
			sb.WriteByte('#')
		} else {
			sb.WriteString(child.Infix())
		}
	}
	sb.WriteByte(')')
	return sb.String()
}
