package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ProRata records the day fraction of a partially covered calendar month.
type ProRata struct {
	DaysActive  int
	DaysInMonth int
}

// Fraction returns days active over civil days in the month.
func (p ProRata) Fraction() decimal.Decimal {
	return decimal.NewFromInt(int64(p.DaysActive)).
		Div(decimal.NewFromInt(int64(p.DaysInMonth)))
}

// Installment is a single dated obligation fed to the correction engine:
// a due date and the nominal amount owed on that date. When the amount
// was pro-rated from a monthly base the day fraction is retained for
// reporting.
type Installment struct {
	dueDate time.Time
	base    decimal.Decimal
	proRata *ProRata
}

// NewInstallment builds a full (non-prorated) installment.
func NewInstallment(dueDate time.Time, base decimal.Decimal) (Installment, error) {
	if dueDate.IsZero() {
		return Installment{}, fmt.Errorf("installment requires a due date")
	}
	if base.IsNegative() {
		return Installment{}, fmt.Errorf("installment base cannot be negative, got %s", base)
	}
	return Installment{dueDate: dueDate, base: base}, nil
}

// NewProRataInstallment builds an installment whose base was scaled by a
// day fraction of its calendar month.
func NewProRataInstallment(dueDate time.Time, base decimal.Decimal, daysActive, daysInMonth int) (Installment, error) {
	inst, err := NewInstallment(dueDate, base)
	if err != nil {
		return Installment{}, err
	}
	if daysActive <= 0 || daysInMonth <= 0 || daysActive > daysInMonth {
		return Installment{}, fmt.Errorf("invalid pro-rata fraction %d/%d", daysActive, daysInMonth)
	}
	inst.proRata = &ProRata{DaysActive: daysActive, DaysInMonth: daysInMonth}
	return inst, nil
}

func (i Installment) DueDate() time.Time          { return i.dueDate }
func (i Installment) BaseAmount() decimal.Decimal { return i.base }

// ProRata returns the day fraction and true when the installment was
// pro-rated, or a zero value and false for full installments.
func (i Installment) ProRata() (ProRata, bool) {
	if i.proRata == nil {
		return ProRata{}, false
	}
	return *i.proRata, true
}
