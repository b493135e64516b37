package valueobject

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var thirty = decimal.NewFromInt(30)

// MonthlyRate is a simple (non-compounding) interest rate per 30-day month,
// expressed as a fraction: 0.01 is the statutory 1% a.m.
type MonthlyRate struct {
	rate decimal.Decimal
}

// NewMonthlyRate creates a MonthlyRate after validating it is not negative.
func NewMonthlyRate(rate decimal.Decimal) (MonthlyRate, error) {
	if rate.IsNegative() {
		return MonthlyRate{}, fmt.Errorf("monthly rate must not be negative, got %s", rate.String())
	}
	return MonthlyRate{rate: rate}, nil
}

// LegalArrearsRate returns the 1% per month rate applied to judicial debts.
func LegalArrearsRate() MonthlyRate {
	return MonthlyRate{rate: decimal.RequireFromString("0.01")}
}

// Daily returns the pro-rata-die rate, the monthly rate over a 30-day month.
func (r MonthlyRate) Daily() decimal.Decimal {
	return r.rate.Div(thirty)
}

// Value returns the monthly rate as a fraction.
func (r MonthlyRate) Value() decimal.Decimal { return r.rate }

// IsZero reports whether the rate is zero.
func (r MonthlyRate) IsZero() bool { return r.rate.IsZero() }

// String formats the rate as a percentage, e.g. "1.00% a.m.".
func (r MonthlyRate) String() string {
	return r.rate.Mul(hundred).StringFixed(2) + "% a.m."
}
