package calc

import (
	"context"
	"errors"
	"github.com/stretchr/testify/assert"
	"testing"
	"wizmon"
)

func TestService_Evaluate(t *testing.T) {
	service := NewService()

	type args struct {
		op      wizmon.Op
		money   wizmon.WizardMoney
		operand interface{}
	}
	tests := []struct {
		name    string
		args    args
		want    wizmon.WizardMoney
		value   string
		wantErr error
	}{
		{
			"as knuts",
			args{wizmon.OpKnuts, wizmon.New(5, 2, 10), nil},
			wizmon.New(0, 0, 2533),
			"2533",
			nil,
		},
		{
			"add is field-wise",
			args{wizmon.OpAdd, wizmon.New(5, 2, 10), wizmon.New(5, 0, 0)},
			wizmon.New(10, 2, 10),
			"4998",
			nil,
		},
		{
			"sub may go negative",
			args{wizmon.OpSub, wizmon.New(5, 100, 0), wizmon.New(0, 25, 3)},
			wizmon.New(5, 75, -3),
			"4637",
			nil,
		},
		{
			"mul by ten",
			args{wizmon.OpMul, wizmon.New(5, 2, 10), 10},
			wizmon.New(50, 20, 100),
			"25330",
			nil,
		},
		{
			"mul by float",
			args{wizmon.OpMul, wizmon.New(5, 2, 10), 2.5},
			wizmon.WizardMoney{},
			"",
			wizmon.ErrInvalidOperand,
		},
		{
			"mod by zero",
			args{wizmon.OpMod, wizmon.New(5, 2, 10), 0},
			wizmon.WizardMoney{},
			"",
			wizmon.ErrDivisionByZero,
		},
		{
			"unknown op",
			args{wizmon.Op("pow"), wizmon.New(5, 2, 10), 2},
			wizmon.WizardMoney{},
			"",
			wizmon.ErrUnknownOp,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := service.Evaluate(context.Background(), Expression{
				Op:      tt.args.op,
				Money:   tt.args.money,
				Operand: tt.args.operand,
			})
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Evaluate() error = %v, wantErr %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Errorf("Evaluate() unexpected error = %v", err)
				return
			}
			if !got.Money.Equal(tt.want) {
				t.Errorf("Evaluate() got = %v, want %v", got.Money, tt.want)
			}
			assert.Equal(t, tt.value, got.Value.String())
		})
	}
}

func TestService_EvaluateWrapsErrors(t *testing.T) {
	_, err := NewService().Evaluate(context.Background(), Expression{Op: wizmon.OpAdd, Operand: 5})

	assert.EqualError(t, err, "evaluate [add]: add: invalid operand type: 5 (int)")
}

func TestService_EvaluateCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewService().Evaluate(ctx, Expression{Op: wizmon.OpNeg})

	assert.True(t, errors.Is(err, context.Canceled))
}
