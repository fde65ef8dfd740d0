package wizmon

import (
	"bytes"
	"encoding/json"
	"fmt"
	"github.com/shopspring/decimal"
	"strings"
)

// maxCountDigits bounds the digits of a count or operand read from text
const maxCountDigits = 1000

// moneyJSON wire form of WizardMoney. Counts are plain JSON numbers so that
// clients need not quote them.
type moneyJSON struct {
	Galleons json.Number `json:"galleons"`
	Sickles  json.Number `json:"sickles"`
	Knuts    json.Number `json:"knuts"`
}

// MarshalJSON encodes m as {"galleons":G,"sickles":S,"knuts":K}.
func (m WizardMoney) MarshalJSON() ([]byte, error) {
	return json.Marshal(moneyJSON{
		Galleons: json.Number(m.galleons.String()),
		Sickles:  json.Number(m.sickles.String()),
		Knuts:    json.Number(m.knuts.String()),
	})
}

// UnmarshalJSON decodes the form written by MarshalJSON. Missing counts are
// zero. Every present count must be an unquoted integer literal accepted by
// ParseCount, otherwise decoding fails with ErrInvalidOperand.
func (m *WizardMoney) UnmarshalJSON(data []byte) error {
	var raw struct {
		Galleons json.RawMessage `json:"galleons"`
		Sickles  json.RawMessage `json:"sickles"`
		Knuts    json.RawMessage `json:"knuts"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decoding wizard money: %w", err)
	}

	galleons, err := count(raw.Galleons)
	if err != nil {
		return fmt.Errorf("galleons: %w", err)
	}
	sickles, err := count(raw.Sickles)
	if err != nil {
		return fmt.Errorf("sickles: %w", err)
	}
	knuts, err := count(raw.Knuts)
	if err != nil {
		return fmt.Errorf("knuts: %w", err)
	}

	decoded, err := NewFromDecimal(galleons, sickles, knuts)
	if err != nil {
		return err
	}
	*m = decoded
	return nil
}

func count(raw json.RawMessage) (decimal.Decimal, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return decimal.Zero, nil
	}
	if trimmed[0] == '"' {
		return decimal.Decimal{}, fmt.Errorf("%w: quoted count %.20s", ErrInvalidOperand, trimmed)
	}
	return ParseCount(string(trimmed))
}

// ParseCount parses a plain base-10 integer literal such as "-42", the form
// MarshalJSON writes counts in. Anything else, including exponent notation or
// a literal longer than 1000 digits, fails with ErrInvalidOperand.
func ParseCount(s string) (decimal.Decimal, error) {
	digits := strings.TrimPrefix(s, "-")
	if digits == "" || len(digits) > maxCountDigits {
		return decimal.Decimal{}, fmt.Errorf("%w: %.20q is not a whole number of at most %d digits", ErrInvalidOperand, s, maxCountDigits)
	}
	for _, c := range digits {
		if c < '0' || c > '9' {
			return decimal.Decimal{}, fmt.Errorf("%w: %.20q is not a whole number", ErrInvalidOperand, s)
		}
	}
	return decimal.NewFromString(s)
}
