package service

import (
	"sort"
	"time"

	"github.com/MarinhoBortone/calculadora-jur-dica/internal/domain/model"
	"github.com/MarinhoBortone/calculadora-jur-dica/internal/domain/valueobject"
)

// Reconciler nets payments against obligations and corrects only the
// outstanding remainders.
type Reconciler struct {
	calc *RegimeCalculator
}

func NewReconciler(calc *RegimeCalculator) *Reconciler {
	return &Reconciler{calc: calc}
}

// Reconcile produces one line per ledger entry in due-date order. Settled
// entries bypass the engine entirely and contribute zero; outstanding
// remainders run through the regime calculator like any installment.
func (r *Reconciler) Reconcile(entries []model.LedgerEntry, regime valueobject.Regime, referenceDate time.Time) ([]model.LineItem, error) {
	sorted := make([]model.LedgerEntry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].DueDate().Before(sorted[j].DueDate())
	})

	items := make([]model.LineItem, 0, len(sorted))
	for _, e := range sorted {
		if e.IsSettled() {
			items = append(items, model.NewSettledLineItem(dateOnly(e.DueDate()), e.AmountDue()))
			continue
		}

		inst, err := model.NewInstallment(e.DueDate(), e.NetBase())
		if err != nil {
			return nil, err
		}
		item, err := r.calc.Calculate(inst, regime, referenceDate)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
