package service

import (
	"github.com/shopspring/decimal"

	"github.com/MarinhoBortone/calculadora-jur-dica/internal/domain/model"
)

// art523Rate is the 10% execution-phase penalty rate of art. 523 §1º CPC,
// applied once as a fine and once as a fee award when the debtor fails to
// pay voluntarily.
var art523Rate = decimal.RequireFromString("0.10")

// Aggregator folds component subtotals into the final statement.
type Aggregator struct{}

func NewAggregator() *Aggregator {
	return &Aggregator{}
}

// Aggregate combines the component subtotals and applies the requested
// penalties. Fine and fee award are independent: each is 10% of the
// combined subtotal, neither compounds on the other.
func (a *Aggregator) Aggregate(components []model.StatementComponent, applyFine, applyFeeAward bool) model.SettlementStatement {
	combined := decimal.Zero
	for _, c := range components {
		combined = combined.Add(c.Subtotal())
	}

	fine := decimal.Zero
	if applyFine {
		fine = combined.Mul(art523Rate).Round(2)
	}
	feeAward := decimal.Zero
	if applyFeeAward {
		feeAward = combined.Mul(art523Rate).Round(2)
	}

	return model.NewSettlementStatement(components, combined, fine, feeAward)
}
