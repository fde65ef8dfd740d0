// Package wizmon models wizard money: an amount held as separate counts of
// galleons, sickles and knuts.
//
// Arithmetic is field-wise. Adding 20 sickles to 0 sickles gives 20 sickles,
// never 1 galleon 3 sickles; use the As* conversions to redistribute an amount
// across denominations.
package wizmon

import (
	"fmt"
	"github.com/shopspring/decimal"
)

// Conversion ratios between the denominations.
const (
	KnutsPerSickle    = 29
	SicklesPerGalleon = 17
	KnutsPerGalleon   = SicklesPerGalleon * KnutsPerSickle
)

var (
	knutsPerSickle    = decimal.NewFromInt(KnutsPerSickle)
	sicklesPerGalleon = decimal.NewFromInt(SicklesPerGalleon)
	knutsPerGalleon   = decimal.NewFromInt(KnutsPerGalleon)
)

// WizardMoney an amount of wizard money. Counts may be negative (money owed)
// and are not bounded.
//
// The zero value is an amount of 0 galleons, 0 sickles and 0 knuts.
// Values are immutable except through the ConvertTo* methods, which rewrite
// the receiver in place.
type WizardMoney struct {
	galleons decimal.Decimal
	sickles  decimal.Decimal
	knuts    decimal.Decimal
}

// New returns an amount made of the given counts.
func New(galleons, sickles, knuts int64) WizardMoney {
	return WizardMoney{
		galleons: decimal.NewFromInt(galleons),
		sickles:  decimal.NewFromInt(sickles),
		knuts:    decimal.NewFromInt(knuts),
	}
}

// NewFromDecimal returns an amount made of counts too large for New.
// Every count must be a whole number.
func NewFromDecimal(galleons, sickles, knuts decimal.Decimal) (WizardMoney, error) {
	for _, c := range []struct {
		unit  string
		count decimal.Decimal
	}{
		{"galleons", galleons},
		{"sickles", sickles},
		{"knuts", knuts},
	} {
		if !c.count.IsInteger() {
			return WizardMoney{}, fmt.Errorf("%w: %v %v is not a whole number", ErrInvalidOperand, c.unit, c.count)
		}
	}
	return WizardMoney{galleons: galleons, sickles: sickles, knuts: knuts}, nil
}

func (m WizardMoney) Galleons() decimal.Decimal {
	return m.galleons
}

func (m WizardMoney) Sickles() decimal.Decimal {
	return m.sickles
}

func (m WizardMoney) Knuts() decimal.Decimal {
	return m.knuts
}

// Equal reports whether both amounts hold the same count of every
// denomination. Amounts are not normalized first: 493 knuts is not Equal to
// 1 galleon. See EqualValue.
func (m WizardMoney) Equal(other WizardMoney) bool {
	return m.galleons.Equal(other.galleons) &&
		m.sickles.Equal(other.sickles) &&
		m.knuts.Equal(other.knuts)
}

// EqualValue reports whether both amounts are worth the same number of knuts.
func (m WizardMoney) EqualValue(other WizardMoney) bool {
	return m.Value().Equal(other.Value())
}

// IsZero reports whether every count is zero.
func (m WizardMoney) IsZero() bool {
	return m.galleons.IsZero() && m.sickles.IsZero() && m.knuts.IsZero()
}

func (m WizardMoney) String() string {
	return fmt.Sprintf("WizardMoney(galleons=%v, sickles=%v, knuts=%v)", m.galleons, m.sickles, m.knuts)
}
