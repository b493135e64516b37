package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/MarinhoBortone/calculadora-jur-dica/internal/domain/valueobject"
)

// LineItem is the fully calculated result for one installment. It is
// immutable; the constructors encode how each regime composes correction
// and interest into the line total, so callers cannot assemble an
// inconsistent line.
type LineItem struct {
	dueDate time.Time
	base    decimal.Decimal
	proRata *ProRata

	settled bool

	factor    valueobject.CorrectionFactor
	corrected decimal.Decimal
	hasFactor bool

	rate        valueobject.MonthlyRate
	days        int
	interest    decimal.Decimal
	hasInterest bool

	secondFactor     valueobject.CorrectionFactor
	phaseTwoAmount   decimal.Decimal
	phaseOneSubtotal decimal.Decimal
	hasSecondPhase   bool

	total decimal.Decimal
}

// NewSettledLineItem records an obligation with nothing outstanding. The
// engine is bypassed entirely and the line total is zero.
func NewSettledLineItem(dueDate time.Time, base decimal.Decimal) LineItem {
	return LineItem{
		dueDate: dueDate,
		base:    base,
		settled: true,
		total:   decimal.Zero,
	}
}

// NewCorrectedLineItem builds a standard-regime line: monetary correction
// plus simple interest, both computed over the same installment.
func NewCorrectedLineItem(
	dueDate time.Time,
	base decimal.Decimal,
	factor valueobject.CorrectionFactor,
	corrected decimal.Decimal,
	rate valueobject.MonthlyRate,
	days int,
	interest decimal.Decimal,
) LineItem {
	return LineItem{
		dueDate:     dueDate,
		base:        base,
		factor:      factor,
		corrected:   corrected,
		hasFactor:   true,
		rate:        rate,
		days:        days,
		interest:    interest,
		hasInterest: true,
		total:       corrected.Add(interest).Round(2),
	}
}

// NewReferenceLineItem builds a reference-rate line: the accumulated
// reference factor already embeds remuneration, so no separate interest
// applies.
func NewReferenceLineItem(
	dueDate time.Time,
	base decimal.Decimal,
	factor valueobject.CorrectionFactor,
	corrected decimal.Decimal,
) LineItem {
	return LineItem{
		dueDate:   dueDate,
		base:      base,
		factor:    factor,
		corrected: corrected,
		hasFactor: true,
		total:     corrected.Round(2),
	}
}

// NewHybridLineItem builds a two-phase line. Phase-one interest is frozen
// at the cutover: the second-phase factor applies only to the phase-one
// corrected principal, never to principal plus interest.
func NewHybridLineItem(
	dueDate time.Time,
	base decimal.Decimal,
	factor valueobject.CorrectionFactor,
	corrected decimal.Decimal,
	rate valueobject.MonthlyRate,
	days int,
	interest decimal.Decimal,
	secondFactor valueobject.CorrectionFactor,
	phaseTwoAmount decimal.Decimal,
) LineItem {
	return LineItem{
		dueDate:          dueDate,
		base:             base,
		factor:           factor,
		corrected:        corrected,
		hasFactor:        true,
		rate:             rate,
		days:             days,
		interest:         interest,
		hasInterest:      true,
		secondFactor:     secondFactor,
		phaseTwoAmount:   phaseTwoAmount,
		phaseOneSubtotal: corrected.Add(interest),
		hasSecondPhase:   true,
		total:            phaseTwoAmount.Add(interest).Round(2),
	}
}

func (l LineItem) DueDate() time.Time          { return l.dueDate }
func (l LineItem) BaseAmount() decimal.Decimal { return l.base }
func (l LineItem) IsSettled() bool             { return l.settled }

// WithProRata returns a copy carrying the day fraction the installment
// base was scaled by, so pro-rated lines report it.
func (l LineItem) WithProRata(p ProRata) LineItem {
	l.proRata = &p
	return l
}

// ProRata returns the day fraction and true when the underlying
// installment was pro-rated, false for full installments.
func (l LineItem) ProRata() (ProRata, bool) {
	if l.proRata == nil {
		return ProRata{}, false
	}
	return *l.proRata, true
}

// Factor returns the primary correction factor, false when the line was
// settled and no correction ran.
func (l LineItem) Factor() (valueobject.CorrectionFactor, bool) {
	return l.factor, l.hasFactor
}

func (l LineItem) CorrectedAmount() (decimal.Decimal, bool) {
	return l.corrected, l.hasFactor
}

// Interest returns the simple interest amount, the rate applied and the
// day count it was computed over.
func (l LineItem) Interest() (amount decimal.Decimal, rate valueobject.MonthlyRate, days int, ok bool) {
	return l.interest, l.rate, l.days, l.hasInterest
}

// SecondPhase returns the reference factor and the re-corrected principal
// for hybrid lines.
func (l LineItem) SecondPhase() (factor valueobject.CorrectionFactor, amount decimal.Decimal, ok bool) {
	return l.secondFactor, l.phaseTwoAmount, l.hasSecondPhase
}

// PhaseOneSubtotal is the corrected principal plus frozen interest at the
// cutover, retained for reporting on hybrid lines.
func (l LineItem) PhaseOneSubtotal() (decimal.Decimal, bool) {
	return l.phaseOneSubtotal, l.hasSecondPhase
}

// Total is the line's contribution to its component subtotal, rounded to
// cents.
func (l LineItem) Total() decimal.Decimal { return l.total }
