package service

import (
	"errors"
	"time"

	"github.com/MarinhoBortone/calculadora-jur-dica/internal/domain/apperrors"
	"github.com/MarinhoBortone/calculadora-jur-dica/internal/domain/model"
	"github.com/MarinhoBortone/calculadora-jur-dica/internal/domain/valueobject"
)

// RegimeCalculator computes one line item per installment, dispatching on
// the regime kind.
type RegimeCalculator struct {
	compounder *CompoundingEngine
	interest   *InterestCalculator
	rate       valueobject.MonthlyRate
}

func NewRegimeCalculator(compounder *CompoundingEngine, interest *InterestCalculator, rate valueobject.MonthlyRate) *RegimeCalculator {
	return &RegimeCalculator{compounder: compounder, interest: interest, rate: rate}
}

// Calculate corrects and accrues a single installment up to referenceDate.
// Series failures are returned annotated with the installment's due date.
func (c *RegimeCalculator) Calculate(inst model.Installment, regime valueobject.Regime, referenceDate time.Time) (model.LineItem, error) {
	due := dateOnly(inst.DueDate())
	referenceDate = dateOnly(referenceDate)

	var (
		item model.LineItem
		err  error
	)
	switch regime.Kind() {
	case valueobject.RegimeStandard:
		item, err = c.standard(inst, regime, due, referenceDate)
	case valueobject.RegimeReferenceRate:
		item, err = c.referenceRate(inst, regime.ReferenceSeries(), due, referenceDate)
	case valueobject.RegimeHybrid:
		item, err = c.hybrid(inst, regime, due, referenceDate)
	default:
		return model.LineItem{}, &apperrors.InvalidConfigurationError{
			Reason: "regime kind is not set",
		}
	}
	if err != nil {
		var unavail *apperrors.SeriesUnavailableError
		if errors.As(err, &unavail) && unavail.InstallmentDue.IsZero() {
			unavail.InstallmentDue = due
		}
		return model.LineItem{}, err
	}
	if pr, ok := inst.ProRata(); ok {
		item = item.WithProRata(pr)
	}
	return item, nil
}

func (c *RegimeCalculator) standard(inst model.Installment, regime valueobject.Regime, due, referenceDate time.Time) (model.LineItem, error) {
	factor, err := c.compounder.Compound(regime.IndexSeries(), due, referenceDate)
	if err != nil {
		return model.LineItem{}, err
	}
	corrected := factor.Apply(inst.BaseAmount())

	start := c.interest.EffectiveAccrualStart(regime.AccrualStart(), due)
	interest, days := c.interest.Interest(corrected, start, referenceDate, c.rate)

	return model.NewCorrectedLineItem(due, inst.BaseAmount(), factor, corrected, c.rate, days, interest), nil
}

func (c *RegimeCalculator) referenceRate(inst model.Installment, series valueobject.SeriesCode, due, referenceDate time.Time) (model.LineItem, error) {
	factor, err := c.compounder.Compound(series, due, referenceDate)
	if err != nil {
		return model.LineItem{}, err
	}
	corrected := factor.Apply(inst.BaseAmount())
	return model.NewReferenceLineItem(due, inst.BaseAmount(), factor, corrected), nil
}

// hybrid runs index correction plus interest up to the cutover, freezes
// the interest there, then applies the reference factor over the bare
// corrected principal. Installments falling due on or after the cutover
// never see the first phase at all.
func (c *RegimeCalculator) hybrid(inst model.Installment, regime valueobject.Regime, due, referenceDate time.Time) (model.LineItem, error) {
	cutover := dateOnly(regime.Cutover())

	if !due.Before(cutover) {
		return c.referenceRate(inst, regime.ReferenceSeries(), due, referenceDate)
	}

	factor1, err := c.compounder.Compound(regime.IndexSeries(), due, cutover)
	if err != nil {
		return model.LineItem{}, err
	}
	corrected1 := factor1.Apply(inst.BaseAmount())

	start := c.interest.EffectiveAccrualStart(regime.AccrualStart(), due)
	interest1, days := c.interest.Interest(corrected1, start, cutover, c.rate)

	factor2, err := c.compounder.Compound(regime.ReferenceSeries(), cutover, referenceDate)
	if err != nil {
		return model.LineItem{}, err
	}
	phaseTwo := factor2.Apply(corrected1)

	return model.NewHybridLineItem(due, inst.BaseAmount(),
		factor1, corrected1, c.rate, days, interest1, factor2, phaseTwo), nil
}
