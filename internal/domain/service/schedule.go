package service

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MarinhoBortone/calculadora-jur-dica/internal/domain/apperrors"
	"github.com/MarinhoBortone/calculadora-jur-dica/internal/domain/model"
	"github.com/MarinhoBortone/calculadora-jur-dica/internal/domain/valueobject"
)

// ScheduleGenerator expands a debt period and a monthly base amount into
// dated installments under one of the two schedule conventions.
type ScheduleGenerator struct{}

func NewScheduleGenerator() *ScheduleGenerator {
	return &ScheduleGenerator{}
}

// Generate expands [periodStart, periodEnd] into installments.
//
// A period of a single day yields exactly one full installment regardless
// of convention. An inverted period is rejected up front.
func (g *ScheduleGenerator) Generate(
	convention valueobject.ScheduleConvention,
	periodStart, periodEnd time.Time,
	monthlyBase decimal.Decimal,
) ([]model.Installment, error) {
	periodStart = dateOnly(periodStart)
	periodEnd = dateOnly(periodEnd)

	if periodEnd.Before(periodStart) {
		return nil, &apperrors.InvalidConfigurationError{
			Reason: fmt.Sprintf("period end %s precedes period start %s",
				periodEnd.Format("2006-01-02"), periodStart.Format("2006-01-02")),
		}
	}
	if !monthlyBase.IsPositive() {
		return nil, &apperrors.InvalidConfigurationError{
			Reason: fmt.Sprintf("monthly base amount must be positive, got %s", monthlyBase),
		}
	}

	if periodStart.Equal(periodEnd) {
		inst, err := model.NewInstallment(periodEnd, monthlyBase)
		if err != nil {
			return nil, err
		}
		return []model.Installment{inst}, nil
	}

	switch convention {
	case valueobject.ConventionFixedCycle:
		return g.fixedCycle(periodStart, periodEnd, monthlyBase)
	case valueobject.ConventionCalendarMonth:
		return g.calendarMonth(periodStart, periodEnd, monthlyBase)
	default:
		return nil, &apperrors.InvalidConfigurationError{
			Reason: fmt.Sprintf("unknown schedule convention %q", convention),
		}
	}
}

// fixedCycle steps whole one-month cycles from the period start. Every
// cycle owes the full base; a truncated final cycle only has its due date
// clipped to the period end.
func (g *ScheduleGenerator) fixedCycle(start, end time.Time, base decimal.Decimal) ([]model.Installment, error) {
	var out []model.Installment
	for start.Before(end) {
		next := addMonthClamped(start)
		due := minDate(next.AddDate(0, 0, -1), end)

		inst, err := model.NewInstallment(due, base)
		if err != nil {
			return nil, err
		}
		out = append(out, inst)
		start = next
	}
	return out, nil
}

// addMonthClamped advances exactly one calendar month, clamping to the
// last day of the target month when the source day does not exist there
// (Jan 31 advances to Feb 28, not Mar 3).
func addMonthClamped(t time.Time) time.Time {
	next := valueobject.ReferenceMonthOf(t).Next()
	day := t.Day()
	if day > next.Days() {
		day = next.Days()
	}
	return next.FirstDay().AddDate(0, 0, day-1)
}

// calendarMonth emits one installment per calendar month touched by the
// period, pro-rated by active days over civil days in the month.
func (g *ScheduleGenerator) calendarMonth(start, end time.Time, base decimal.Decimal) ([]model.Installment, error) {
	month := valueobject.ReferenceMonthOf(start)
	last := valueobject.ReferenceMonthOf(end)

	var out []model.Installment
	for !month.After(last) {
		activeStart := maxDate(month.FirstDay(), start)
		activeEnd := minDate(month.LastDay(), end)
		daysActive := daysBetween(activeStart, activeEnd) + 1
		daysInMonth := month.Days()

		var inst model.Installment
		var err error
		if daysActive == daysInMonth {
			inst, err = model.NewInstallment(activeEnd, base)
		} else {
			amount := base.
				Mul(decimal.NewFromInt(int64(daysActive))).
				Div(decimal.NewFromInt(int64(daysInMonth)))
			inst, err = model.NewProRataInstallment(activeEnd, amount, daysActive, daysInMonth)
		}
		if err != nil {
			return nil, err
		}
		out = append(out, inst)
		month = month.Next()
	}
	return out, nil
}
