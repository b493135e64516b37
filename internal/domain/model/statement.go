package model

import (
	"github.com/shopspring/decimal"

	"github.com/MarinhoBortone/calculadora-jur-dica/internal/domain/valueobject"
)

// StatementComponent groups the calculated lines of one debt category.
type StatementComponent struct {
	category valueobject.DebtCategory
	items    []LineItem
	subtotal decimal.Decimal
}

// NewStatementComponent sums the line totals into the component subtotal.
func NewStatementComponent(category valueobject.DebtCategory, items []LineItem) StatementComponent {
	subtotal := decimal.Zero
	for _, it := range items {
		subtotal = subtotal.Add(it.Total())
	}
	cp := make([]LineItem, len(items))
	copy(cp, items)
	return StatementComponent{category: category, items: cp, subtotal: subtotal}
}

func (c StatementComponent) Category() valueobject.DebtCategory { return c.category }

func (c StatementComponent) Items() []LineItem {
	cp := make([]LineItem, len(c.items))
	copy(cp, c.items)
	return cp
}

func (c StatementComponent) Subtotal() decimal.Decimal { return c.subtotal }

// SettlementStatement is the final consolidated demand: all component
// subtotals combined, plus any execution-phase penalties applied on the
// combined amount.
type SettlementStatement struct {
	components []StatementComponent
	combined   decimal.Decimal
	fine       decimal.Decimal
	feeAward   decimal.Decimal
	finalTotal decimal.Decimal
}

// NewSettlementStatement assembles a statement. The fine and fee award
// must each have been computed on the combined subtotal independently.
func NewSettlementStatement(components []StatementComponent, combined, fine, feeAward decimal.Decimal) SettlementStatement {
	cp := make([]StatementComponent, len(components))
	copy(cp, components)
	return SettlementStatement{
		components: cp,
		combined:   combined,
		fine:       fine,
		feeAward:   feeAward,
		finalTotal: combined.Add(fine).Add(feeAward),
	}
}

func (s SettlementStatement) Components() []StatementComponent {
	cp := make([]StatementComponent, len(s.components))
	copy(cp, s.components)
	return cp
}

func (s SettlementStatement) Combined() decimal.Decimal   { return s.combined }
func (s SettlementStatement) Fine() decimal.Decimal       { return s.fine }
func (s SettlementStatement) FeeAward() decimal.Decimal   { return s.feeAward }
func (s SettlementStatement) FinalTotal() decimal.Decimal { return s.finalTotal }
