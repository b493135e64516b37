package service

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/MarinhoBortone/calculadora-jur-dica/internal/domain/valueobject"
)

// InterestCalculator accrues simple pro-rata-die arrears interest:
// principal times the daily rate times the elapsed day count. Interest is
// always simple; it never capitalises into the base.
type InterestCalculator struct{}

func NewInterestCalculator() *InterestCalculator {
	return &InterestCalculator{}
}

// EffectiveAccrualStart returns the later of the configured accrual start
// and the installment's due date. Interest on an installment never runs
// before the installment itself exists.
func (c *InterestCalculator) EffectiveAccrualStart(configured, due time.Time) time.Time {
	return maxDate(dateOnly(configured), dateOnly(due))
}

// Interest computes the accrued amount from start to reference, with the
// day count used. A non-positive day count accrues nothing.
func (c *InterestCalculator) Interest(principal decimal.Decimal, start, reference time.Time, rate valueobject.MonthlyRate) (decimal.Decimal, int) {
	days := daysBetween(start, reference)
	if days <= 0 {
		return decimal.Zero, 0
	}
	amount := principal.Mul(rate.Daily()).Mul(decimal.NewFromInt(int64(days)))
	return amount, days
}
