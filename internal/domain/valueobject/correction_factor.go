package valueobject

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)

// CorrectionFactor is an immutable multiplicative monetary-correction factor.
// Factors carry full decimal precision; only currency amounts are ever
// rounded, so compounding error never accumulates across periods.
type CorrectionFactor struct {
	value decimal.Decimal
}

// NewCorrectionFactor creates a CorrectionFactor after validating it is positive.
func NewCorrectionFactor(value decimal.Decimal) (CorrectionFactor, error) {
	if !value.IsPositive() {
		return CorrectionFactor{}, fmt.Errorf("correction factor must be positive, got %s", value.String())
	}
	return CorrectionFactor{value: value}, nil
}

// NeutralFactor returns the factor 1.0, which leaves an amount unchanged.
func NeutralFactor() CorrectionFactor {
	return CorrectionFactor{value: one}
}

// Compound returns a new factor multiplied by (1 + variationPct/100),
// the contribution of one period's percentage variation.
func (f CorrectionFactor) Compound(variationPct decimal.Decimal) CorrectionFactor {
	return CorrectionFactor{value: f.value.Mul(one.Add(variationPct.Div(hundred)))}
}

// Apply multiplies an amount by the factor, at full precision.
func (f CorrectionFactor) Apply(amount decimal.Decimal) decimal.Decimal {
	return amount.Mul(f.value)
}

// Value returns the underlying decimal value.
func (f CorrectionFactor) Value() decimal.Decimal { return f.value }

// IsNeutral reports whether the factor is exactly 1.0.
func (f CorrectionFactor) IsNeutral() bool { return f.value.Equal(one) }

// IsZero reports whether the factor is the zero value (uninitialised).
func (f CorrectionFactor) IsZero() bool { return f.value.IsZero() }

// Equal reports whether both factors are numerically equal.
func (f CorrectionFactor) Equal(other CorrectionFactor) bool {
	return f.value.Equal(other.value)
}

// String formats the factor to six decimal places for report columns.
func (f CorrectionFactor) String() string {
	return f.value.StringFixed(6)
}
