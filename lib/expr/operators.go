package expr

var (
	_ Expression = (*Negation)(nil)
	_ Expression = (*Addition)(nil)
	_ Expression = (*Subtraction)(nil)
	_ Expression = (*Multiplication)(nil)
	_ Expression = (*Division)(nil)
)

// Negation is the prefix minus.
type Negation struct {
	unaryExpr
}

func NewNegation(first Expression) *Negation {
	return &Negation{unaryExpr{first: first}}
}

func (e *Negation) Eval() (float64, error) {
	v, err := evalChild(e.first)
	if err != nil {
		return 0, err
	}
	return -v, nil
}

func (e *Negation) Precedence() int { return 12 }
func (e *Negation) Token() string   { return "-" }

func (e *Negation) Infix() string {
	return prefixInfix(e.Token(), e.first, e.Precedence())
}

func (e *Negation) Clone() Expression {
	return &Negation{unaryExpr{first: cloneOrNil(e.first)}}
}

type Addition struct {
	binaryExpr
}

func NewAddition(first, second Expression) *Addition {
	return &Addition{binaryExpr{first: first, second: second}}
}

func (e *Addition) Eval() (float64, error) {
	a, err := evalChild(e.first)
	if err != nil {
		return 0, err
	}
	b, err := evalChild(e.second)
	if err != nil {
		return 0, err
	}
	return a + b, nil
}

func (e *Addition) Precedence() int { return 8 }
func (e *Addition) Token() string   { return "+" }

func (e *Addition) Infix() string {
	return operatorInfix(e.Token(), e.first, e.second, e.Precedence())
}

func (e *Addition) Clone() Expression {
	return &Addition{binaryExpr{first: cloneOrNil(e.first), second: cloneOrNil(e.second)}}
}

type Subtraction struct {
	binaryExpr
}

func NewSubtraction(first, second Expression) *Subtraction {
	return &Subtraction{binaryExpr{first: first, second: second}}
}

func (e *Subtraction) Eval() (float64, error) {
	a, err := evalChild(e.first)
	if err != nil {
		return 0, err
	}
	b, err := evalChild(e.second)
	if err != nil {
		return 0, err
	}
	return a - b, nil
}

func (e *Subtraction) Precedence() int { return 8 }
func (e *Subtraction) Token() string   { return "-" }

func (e *Subtraction) Infix() string {
	return operatorInfix(e.Token(), e.first, e.second, e.Precedence())
}

func (e *Subtraction) Clone() Expression {
	return &Subtraction{binaryExpr{first: cloneOrNil(e.first), second: cloneOrNil(e.second)}}
}

type Multiplication struct {
	binaryExpr
}

func NewMultiplication(first, second Expression) *Multiplication {
	return &Multiplication{binaryExpr{first: first, second: second}}
}

func (e *Multiplication) Eval() (float64, error) {
	a, err := evalChild(e.first)
	if err != nil {
		return 0, err
	}
	b, err := evalChild(e.second)
	if err != nil {
		return 0, err
	}
	return a * b, nil
}

func (e *Multiplication) Precedence() int { return 10 }
func (e *Multiplication) Token() string   { return "*" }

func (e *Multiplication) Infix() string {
	return operatorInfix(e.Token(), e.first, e.second, e.Precedence())
}

func (e *Multiplication) Clone() Expression {
	return &Multiplication{binaryExpr{first: cloneOrNil(e.first), second: cloneOrNil(e.second)}}
}

// Division keeps IEEE semantics: dividing by zero yields ±Inf or NaN
// rather than an error.
type Division struct {
	binaryExpr
}

func NewDivision(first, second Expression) *Division {
	return &Division{binaryExpr{first: first, second: second}}
}

func (e *Division) Eval() (float64, error) {
	a, err := evalChild(e.first)
	if err != nil {
		return 0, err
	}
	b, err := evalChild(e.second)
	if err != nil {
		return 0, err
	}
	return a / b, nil
}

func (e *Division) Precedence() int { return 10 }
func (e *Division) Token() string   { return "/" }

func (e *Division) Infix() string {
	return operatorInfix(e.Token(), e.first, e.second, e.Precedence())
}

func (e *Division) Clone() Expression {
	return &Division{binaryExpr{first: cloneOrNil(e.first), second: cloneOrNil(e.second)}}
}
