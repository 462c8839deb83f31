package expr

import "math"

var (
	_ Expression = (*Sin)(nil)
	_ Expression = (*Cos)(nil)
	_ Expression = (*Sqrt)(nil)
	_ Expression = (*Pow)(nil)
)

type Sin struct {
	unaryExpr
}

func NewSin(first Expression) *Sin {
	return &Sin{unaryExpr{first: first}}
}

func (e *Sin) Eval() (float64, error) {
	v, err := evalChild(e.first)
	if err != nil {
		return 0, err
	}
	return math.Sin(v), nil
}

func (e *Sin) Precedence() int { return MaxPrecedence }
func (e *Sin) Token() string   { return "sin" }
func (e *Sin) Infix() string   { return callInfix(e.Token(), e.first) }

func (e *Sin) Clone() Expression {
	return &Sin{unaryExpr{first: cloneOrNil(e.first)}}
}

type Cos struct {
	unaryExpr
}

func NewCos(first Expression) *Cos {
	return &Cos{unaryExpr{first: first}}
}

func (e *Cos) Eval() (float64, error) {
	v, err := evalChild(e.first)
	if err != nil {
		return 0, err
	}
	return math.Cos(v), nil
}

func (e *Cos) Precedence() int { return MaxPrecedence }
func (e *Cos) Token() string   { return "cos" }
func (e *Cos) Infix() string   { return callInfix(e.Token(), e.first) }

func (e *Cos) Clone() Expression {
	return &Cos{unaryExpr{first: cloneOrNil(e.first)}}
}

// Sqrt keeps IEEE semantics: the square root of a negative value is NaN.
type Sqrt struct {
	unaryExpr
}

func NewSqrt(first Expression) *Sqrt {
	return &Sqrt{unaryExpr{first: first}}
}

func (e *Sqrt) Eval() (float64, error) {
	v, err := evalChild(e.first)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(v), nil
}

func (e *Sqrt) Precedence() int { return MaxPrecedence }
func (e *Sqrt) Token() string   { return "sqrt" }
func (e *Sqrt) Infix() string   { return callInfix(e.Token(), e.first) }

func (e *Sqrt) Clone() Expression {
	return &Sqrt{unaryExpr{first: cloneOrNil(e.first)}}
}

type Pow struct {
	binaryExpr
}

func NewPow(first, second Expression) *Pow {
	return &Pow{binaryExpr{first: first, second: second}}
}

func (e *Pow) Eval() (float64, error) {
	base, err := evalChild(e.first)
	if err != nil {
		return 0, err
	}
	exp, err := evalChild(e.second)
	if err != nil {
		return 0, err
	}
	return math.Pow(base, exp), nil
}

func (e *Pow) Precedence() int { return MaxPrecedence }
func (e *Pow) Token() string   { return "pow" }
func (e *Pow) Infix() string   { return callInfix(e.Token(), e.first, e.second) }

func (e *Pow) Clone() Expression {
	return &Pow{binaryExpr{first: cloneOrNil(e.first), second: cloneOrNil(e.second)}}
}
