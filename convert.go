package wizmon

import (
	"github.com/shopspring/decimal"
)

// Value the total worth of the amount in knuts.
func (m WizardMoney) Value() decimal.Decimal {
	return m.galleons.Mul(knutsPerGalleon).
		Add(m.sickles.Mul(knutsPerSickle)).
		Add(m.knuts)
}

// AsKnuts returns the same value held entirely as knuts.
//
//	New(5, 2, 10).AsKnuts() // WizardMoney(galleons=0, sickles=0, knuts=2533)
func (m WizardMoney) AsKnuts() WizardMoney {
	return WizardMoney{knuts: m.Value()}
}

// AsSickles returns the same value with galleons and whole sickles' worth of
// knuts converted to sickles. Leftover knuts are always in [0, 29).
func (m WizardMoney) AsSickles() WizardMoney {
	carried, knuts := floorDivMod(m.knuts, knutsPerSickle)
	return WizardMoney{
		sickles: m.sickles.Add(m.galleons.Mul(sicklesPerGalleon)).Add(carried),
		knuts:   knuts,
	}
}

// AsGalleons returns the same value in the largest denominations possible:
// knuts are carried into sickles, then sickles into galleons.
//
//	New(5, 2, 1000).AsGalleons() // WizardMoney(galleons=7, sickles=2, knuts=14)
func (m WizardMoney) AsGalleons() WizardMoney {
	carriedSickles, knuts := floorDivMod(m.knuts, knutsPerSickle)
	carriedGalleons, sickles := floorDivMod(m.sickles.Add(carriedSickles), sicklesPerGalleon)
	return WizardMoney{
		galleons: m.galleons.Add(carriedGalleons),
		sickles:  sickles,
		knuts:    knuts,
	}
}

// ConvertToKnuts rewrites m in place as AsKnuts would return it.
// Calling it again is a no-op. Not safe for concurrent use of a shared value;
// prefer AsKnuts.
func (m *WizardMoney) ConvertToKnuts() {
	*m = m.AsKnuts()
}

// ConvertToSickles rewrites m in place as AsSickles would return it.
func (m *WizardMoney) ConvertToSickles() {
	*m = m.AsSickles()
}

// ConvertToGalleons rewrites m in place as AsGalleons would return it.
func (m *WizardMoney) ConvertToGalleons() {
	*m = m.AsGalleons()
}

// floorDivMod divides a by b rounding the quotient toward negative infinity.
// The remainder takes the sign of b. b must not be zero.
func floorDivMod(a, b decimal.Decimal) (decimal.Decimal, decimal.Decimal) {
	q, r := a.QuoRem(b, 0)
	if !r.IsZero() && r.Sign() != b.Sign() {
		q = q.Sub(decimal.NewFromInt(1))
		r = r.Add(b)
	}
	return q, r
}
