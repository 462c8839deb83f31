package main

import (
	"github.com/samber/lo"
	"go.uber.org/zap"

	_ "go.uber.org/automaxprocs"

	"github.com/lumo-dev/xcoll/lib/expr"
)

func main() {
	logger := zap.Must(zap.NewDevelopment()).Sugar()
	defer func() { _ = logger.Sync() }()

	// (1 + 2) * 3
	e := expr.NewMultiplication(
		expr.NewAddition(expr.NewNumber(1), expr.NewNumber(2)),
		expr.NewNumber(3),
	)
	logger.Infow("built an expression", "infix", e.Infix(), "value", lo.Must(e.Eval()))

	// sqrt(pow(3, 2) + pow(4, 2))
	hypot := expr.NewSqrt(expr.NewAddition(
		expr.NewPow(expr.NewNumber(3), expr.NewNumber(2)),
		expr.NewPow(expr.NewNumber(4), expr.NewNumber(2)),
	))
	logger.Infow("computed a hypotenuse", "infix", hypot.Infix(), "value", lo.Must(hypot.Eval()))

	// sin(pi / 6)
	wave := expr.NewSin(expr.NewDivision(expr.NewNumber(expr.Pi), expr.NewNumber(6)))
	logger.Infow("evaluated a function", "infix", wave.Infix(), "value", lo.Must(wave.Eval()))

	incomplete := expr.NewAddition(expr.NewNumber(1), nil)
	if _, err := incomplete.Eval(); err != nil {
		logger.Infow("evaluating an incomplete tree fails",
			"infix", incomplete.Infix(), "err", err)
	}

	clone := incomplete.Clone().(*expr.Addition)
	clone.SetSecond(expr.NewNegation(expr.NewNumber(2)))
	logger.Infow("completed a cloned tree",
		"infix", clone.Infix(), "value", lo.Must(clone.Eval()))
}
