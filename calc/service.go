package calc

import (
	"context"
	"fmt"
	"github.com/shopspring/decimal"
	"wizmon"
)

// Service evaluates wizard money expressions
type Service interface {
	Evaluate(ctx context.Context, expr Expression) (Result, error)
}

// Expression an operation applied to an amount of wizard money
type Expression struct {
	Op    wizmon.Op
	Money wizmon.WizardMoney

	// Operand a wizmon.WizardMoney for add and sub, an integer for mul, div
	// and mod, nil otherwise.
	Operand interface{}
}

// Result of an evaluated Expression
type Result struct {
	Money wizmon.WizardMoney

	// Value worth of Money in knuts
	Value decimal.Decimal
}

type service struct{}

// NewService constructs a valid Service
func NewService() Service {
	return &service{}
}

// Evaluate applies expr.Op to expr.Money and expr.Operand.
func (s *service) Evaluate(ctx context.Context, expr Expression) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	money, err := expr.Money.Apply(expr.Op, expr.Operand)
	if err != nil {
		return Result{}, fmt.Errorf("evaluate [%v]: %w", expr.Op, err)
	}

	return Result{
		Money: money,
		Value: money.Value(),
	}, nil
}
