package wizmon

import (
	"fmt"
	"github.com/shopspring/decimal"
	"math/big"
)

// Op names an operation Apply can perform.
type Op string

const (
	OpAdd      Op = "add"
	OpSub      Op = "sub"
	OpMul      Op = "mul"
	OpDiv      Op = "div"
	OpMod      Op = "mod"
	OpNeg      Op = "neg"
	OpKnuts    Op = "knuts"
	OpSickles  Op = "sickles"
	OpGalleons Op = "galleons"
)

// Known reports whether Apply implements op.
func (op Op) Known() bool {
	switch op {
	case OpAdd, OpSub, OpMul, OpDiv, OpMod, OpNeg, OpKnuts, OpSickles, OpGalleons:
		return true
	}
	return false
}

// Add sums each denomination separately. Nothing is carried: 20 sickles plus
// 0 sickles is 20 sickles.
func (m WizardMoney) Add(other WizardMoney) WizardMoney {
	return WizardMoney{
		galleons: m.galleons.Add(other.galleons),
		sickles:  m.sickles.Add(other.sickles),
		knuts:    m.knuts.Add(other.knuts),
	}
}

// Sub subtracts each denomination separately. Nothing is borrowed, so counts
// may go negative.
//
//	New(5, 100, 0).Sub(New(0, 25, 3)) // WizardMoney(galleons=5, sickles=75, knuts=-3)
func (m WizardMoney) Sub(other WizardMoney) WizardMoney {
	return WizardMoney{
		galleons: m.galleons.Sub(other.galleons),
		sickles:  m.sickles.Sub(other.sickles),
		knuts:    m.knuts.Sub(other.knuts),
	}
}

// Mul scales each denomination by n.
func (m WizardMoney) Mul(n int64) WizardMoney {
	return m.scale(decimal.NewFromInt(n))
}

// MulDecimal scales each denomination by n, which must be a whole number.
func (m WizardMoney) MulDecimal(n decimal.Decimal) (WizardMoney, error) {
	if !n.IsInteger() {
		return WizardMoney{}, &OperandError{Op: OpMul, Operand: n}
	}
	return m.scale(n), nil
}

func (m WizardMoney) scale(n decimal.Decimal) WizardMoney {
	return WizardMoney{
		galleons: m.galleons.Mul(n),
		sickles:  m.sickles.Mul(n),
		knuts:    m.knuts.Mul(n),
	}
}

// Neg negates every denomination.
func (m WizardMoney) Neg() WizardMoney {
	return WizardMoney{
		galleons: m.galleons.Neg(),
		sickles:  m.sickles.Neg(),
		knuts:    m.knuts.Neg(),
	}
}

// Div divides the value of m by n, rounding toward negative infinity, and
// returns the quotient in the largest denominations possible.
func (m WizardMoney) Div(n int64) (WizardMoney, error) {
	q, _, err := m.divMod(decimal.NewFromInt(n))
	return q, err
}

// Mod returns the remainder of dividing the value of m by n in the largest
// denominations possible. The remainder has the sign of n.
func (m WizardMoney) Mod(n int64) (WizardMoney, error) {
	_, r, err := m.divMod(decimal.NewFromInt(n))
	return r, err
}

// DivMod returns both Div and Mod. q.Mul(n).Add(r) is worth as much as m.
func (m WizardMoney) DivMod(n int64) (q WizardMoney, r WizardMoney, err error) {
	return m.divMod(decimal.NewFromInt(n))
}

func (m WizardMoney) divMod(n decimal.Decimal) (WizardMoney, WizardMoney, error) {
	if n.IsZero() {
		return WizardMoney{}, WizardMoney{}, ErrDivisionByZero
	}
	q, r := floorDivMod(m.Value(), n)
	return WizardMoney{knuts: q}.AsGalleons(), WizardMoney{knuts: r}.AsGalleons(), nil
}

// Apply performs op with an operand whose type is only known at run time.
// OpAdd and OpSub take a WizardMoney, OpMul, OpDiv and OpMod take an integer
// or integral decimal.Decimal, and the remaining ops take nil. Any other
// operand fails with an *OperandError.
func (m WizardMoney) Apply(op Op, operand interface{}) (WizardMoney, error) {
	switch op {
	case OpAdd, OpSub:
		var other WizardMoney
		switch o := operand.(type) {
		case WizardMoney:
			other = o
		case *WizardMoney:
			if o == nil {
				return WizardMoney{}, &OperandError{Op: op, Operand: operand}
			}
			other = *o
		default:
			return WizardMoney{}, &OperandError{Op: op, Operand: operand}
		}
		if op == OpAdd {
			return m.Add(other), nil
		}
		return m.Sub(other), nil
	case OpMul, OpDiv, OpMod:
		n, ok := integer(operand)
		if !ok {
			return WizardMoney{}, &OperandError{Op: op, Operand: operand}
		}
		switch op {
		case OpMul:
			return m.scale(n), nil
		case OpDiv:
			q, _, err := m.divMod(n)
			return q, err
		default:
			_, r, err := m.divMod(n)
			return r, err
		}
	case OpNeg, OpKnuts, OpSickles, OpGalleons:
		if operand != nil {
			return WizardMoney{}, &OperandError{Op: op, Operand: operand}
		}
		switch op {
		case OpNeg:
			return m.Neg(), nil
		case OpKnuts:
			return m.AsKnuts(), nil
		case OpSickles:
			return m.AsSickles(), nil
		default:
			return m.AsGalleons(), nil
		}
	}
	return WizardMoney{}, fmt.Errorf("%w: %q", ErrUnknownOp, op)
}

// integer converts the integer kinds Apply accepts to a decimal.
func integer(v interface{}) (decimal.Decimal, bool) {
	switch n := v.(type) {
	case int:
		return decimal.NewFromInt(int64(n)), true
	case int8:
		return decimal.NewFromInt(int64(n)), true
	case int16:
		return decimal.NewFromInt(int64(n)), true
	case int32:
		return decimal.NewFromInt(int64(n)), true
	case int64:
		return decimal.NewFromInt(n), true
	case uint:
		return decimal.NewFromBigInt(new(big.Int).SetUint64(uint64(n)), 0), true
	case uint8:
		return decimal.NewFromInt(int64(n)), true
	case uint16:
		return decimal.NewFromInt(int64(n)), true
	case uint32:
		return decimal.NewFromInt(int64(n)), true
	case uint64:
		return decimal.NewFromBigInt(new(big.Int).SetUint64(n), 0), true
	case *big.Int:
		if n == nil {
			return decimal.Decimal{}, false
		}
		return decimal.NewFromBigInt(n, 0), true
	case decimal.Decimal:
		return n, n.IsInteger()
	}
	return decimal.Decimal{}, false
}
