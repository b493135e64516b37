package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntry pairs an obligation with the amount actually paid against
// it, so the engine corrects only the outstanding remainder.
type LedgerEntry struct {
	dueDate time.Time
	due     decimal.Decimal
	paid    decimal.Decimal
}

// NewLedgerEntry validates and builds a ledger entry. Paid amounts above
// the amount due are allowed; overpayment nets to zero, it never produces
// a credit.
func NewLedgerEntry(dueDate time.Time, due, paid decimal.Decimal) (LedgerEntry, error) {
	if dueDate.IsZero() {
		return LedgerEntry{}, fmt.Errorf("ledger entry requires a due date")
	}
	if due.IsNegative() {
		return LedgerEntry{}, fmt.Errorf("amount due cannot be negative, got %s", due)
	}
	if paid.IsNegative() {
		return LedgerEntry{}, fmt.Errorf("amount paid cannot be negative, got %s", paid)
	}
	return LedgerEntry{dueDate: dueDate, due: due, paid: paid}, nil
}

func (e LedgerEntry) DueDate() time.Time          { return e.dueDate }
func (e LedgerEntry) AmountDue() decimal.Decimal  { return e.due }
func (e LedgerEntry) AmountPaid() decimal.Decimal { return e.paid }

// NetBase returns the outstanding principal: due minus paid, floored at
// zero. Netting happens before any correction or interest.
func (e LedgerEntry) NetBase() decimal.Decimal {
	net := e.due.Sub(e.paid)
	if net.IsNegative() {
		return decimal.Zero
	}
	return net
}

// IsSettled reports whether nothing remains outstanding.
func (e LedgerEntry) IsSettled() bool {
	return !e.due.GreaterThan(e.paid)
}
