package expr

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustEval(t *testing.T, e Expression) float64 {
	t.Helper()
	v, err := e.Eval()
	require.NoError(t, err)
	return v
}

func TestEvalArithmetic(t *testing.T) {
	// (1 + 2) * 3 - 4 / 8
	e := NewSubtraction(
		NewMultiplication(NewAddition(NewNumber(1), NewNumber(2)), NewNumber(3)),
		NewDivision(NewNumber(4), NewNumber(8)),
	)
	require.True(t, e.IsComplete())
	assert.InDelta(t, 8.5, mustEval(t, e), 1e-12)

	neg := NewNegation(NewAddition(NewNumber(1), NewNumber(2)))
	assert.InDelta(t, -3, mustEval(t, neg), 1e-12)
}

func TestEvalFunctions(t *testing.T) {
	assert.InDelta(t, 1, mustEval(t, NewSin(NewNumber(Pi/2))), 1e-12)
	assert.InDelta(t, 1, mustEval(t, NewCos(NewNumber(0))), 1e-12)
	assert.InDelta(t, 3, mustEval(t, NewSqrt(NewNumber(9))), 1e-12)
	assert.InDelta(t, 1024, mustEval(t, NewPow(NewNumber(2), NewNumber(10))), 1e-9)
}

func TestEvalKeepsIEEESemantics(t *testing.T) {
	v := mustEval(t, NewDivision(NewNumber(1), NewNumber(0)))
	require.True(t, math.IsInf(v, 1))

	v = mustEval(t, NewDivision(NewNumber(0), NewNumber(0)))
	require.True(t, math.IsNaN(v))

	v = mustEval(t, NewSqrt(NewNumber(-1)))
	require.True(t, math.IsNaN(v))
}

func TestIncompleteExpression(t *testing.T) {
	e := NewAddition(NewNumber(1), nil)
	require.False(t, e.IsComplete())

	_, err := e.Eval()
	require.ErrorIs(t, err, ErrIncompleteExpression)

	deep := NewMultiplication(NewNumber(2), NewNegation(nil))
	require.False(t, deep.IsComplete())
	_, err = deep.Eval()
	require.ErrorIs(t, err, ErrIncompleteExpression)

	// Filling the slot completes the tree.
	e.SetSecond(NewNumber(2))
	require.True(t, e.IsComplete())
	assert.InDelta(t, 3, mustEval(t, e), 1e-12)
}

func TestInfixRendering(t *testing.T) {
	testcases := []struct {
		name string
		e    Expression
		want string
	}{
		{
			"parenthesizes lower precedence",
			NewMultiplication(NewAddition(NewNumber(1), NewNumber(2)), NewNumber(3)),
			"(1 + 2) * 3",
		},
		{
			"no parentheses for higher precedence",
			NewAddition(NewNumber(1), NewMultiplication(NewNumber(2), NewNumber(3))),
			"1 + 2 * 3",
		},
		{
			"prefix negation",
			NewNegation(NewAddition(NewNumber(1), NewNumber(2))),
			"-(1 + 2)",
		},
		{
			"negation of a leaf",
			NewNegation(NewNumber(5)),
			"-5",
		},
		{
			"function call",
			NewSin(NewDivision(NewNumber(1), NewNumber(2))),
			"sin(1 / 2)",
		},
		{
			"binary function call",
			NewPow(NewNumber(2), NewAddition(NewNumber(1), NewNumber(1))),
			"pow(2, 1 + 1)",
		},
		{
			"placeholders for empty slots",
			NewAddition(NewNumber(1), nil),
			"1 + #",
		},
		{
			"placeholder inside a call",
			NewPow(nil, NewNumber(3)),
			"pow(#, 3)",
		},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.e.Infix())
		})
	}
}

func TestChildAndArity(t *testing.T) {
	one, two := NewNumber(1), NewNumber(2)
	add := NewAddition(one, two)

	require.Equal(t, 2, add.Arity())
	require.Same(t, Expression(one), add.Child(0))
	require.Same(t, Expression(two), add.Child(1))
	require.Nil(t, add.Child(2))

	neg := NewNegation(one)
	require.Equal(t, 1, neg.Arity())
	require.Same(t, Expression(one), neg.Child(0))
	require.Nil(t, neg.Child(1))

	require.Equal(t, 0, one.Arity())
	require.Nil(t, one.Child(0))
}

func TestCloneIsDeep(t *testing.T) {
	e := NewPow(NewNumber(2), NewAddition(NewNumber(1), NewNumber(1)))
	dup := e.Clone()
	require.IsType(t, (*Pow)(nil), dup)
	require.Equal(t, e.Infix(), dup.Infix())

	// Mutating the original must not leak into the clone.
	e.SetSecond(NewNumber(5))
	require.Equal(t, "pow(2, 5)", e.Infix())
	require.Equal(t, "pow(2, 1 + 1)", dup.Infix())

	// Cloning an incomplete tree keeps its empty slots.
	incomplete := NewAddition(nil, NewNumber(3)).Clone()
	require.False(t, incomplete.IsComplete())
	require.Equal(t, "# + 3", incomplete.Infix())
}
