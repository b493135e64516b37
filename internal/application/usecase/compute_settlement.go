// Package usecase orchestrates the application's operations: parsing and
// validating requests, prefetching series data, driving the domain
// services and shaping responses.
package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MarinhoBortone/calculadora-jur-dica/internal/application/dto"
	"github.com/MarinhoBortone/calculadora-jur-dica/internal/domain/apperrors"
	"github.com/MarinhoBortone/calculadora-jur-dica/internal/domain/event"
	"github.com/MarinhoBortone/calculadora-jur-dica/internal/domain/model"
	"github.com/MarinhoBortone/calculadora-jur-dica/internal/domain/port"
	"github.com/MarinhoBortone/calculadora-jur-dica/internal/domain/service"
	"github.com/MarinhoBortone/calculadora-jur-dica/internal/domain/valueobject"
	moneylib "github.com/MarinhoBortone/calculadora-jur-dica/pkg/money"
)

const dateLayout = "2006-01-02"

// ComputeSettlement runs one full settlement computation: expand every
// component into installments, prefetch the required series ranges,
// correct and accrue each installment, aggregate and report.
type ComputeSettlement struct {
	provider  port.IndexProvider
	publisher port.EventPublisher
	logger    *slog.Logger
}

func NewComputeSettlement(provider port.IndexProvider, publisher port.EventPublisher, logger *slog.Logger) *ComputeSettlement {
	return &ComputeSettlement{provider: provider, publisher: publisher, logger: logger}
}

// componentPlan is a component after parsing: either a list of
// installments to correct or a ledger to reconcile.
type componentPlan struct {
	category valueobject.DebtCategory
	items    []model.Installment
	ledger   []model.LedgerEntry
}

func (uc *ComputeSettlement) Execute(ctx context.Context, req dto.ComputeSettlementRequest) (dto.ComputeSettlementResponse, error) {
	referenceDate, err := parseDate(req.ReferenceDate, "reference_date")
	if err != nil {
		return dto.ComputeSettlementResponse{}, err
	}

	rate, err := parseMonthlyRate(req.MonthlyInterestRate)
	if err != nil {
		return dto.ComputeSettlementResponse{}, err
	}

	regime, err := buildRegime(req.Regime)
	if err != nil {
		return dto.ComputeSettlementResponse{}, err
	}

	if len(req.Components) == 0 {
		return dto.ComputeSettlementResponse{}, &apperrors.InvalidConfigurationError{
			Reason: "at least one debt component is required",
		}
	}

	plans := make([]componentPlan, 0, len(req.Components))
	for i, c := range req.Components {
		plan, err := uc.buildPlan(c)
		if err != nil {
			return dto.ComputeSettlementResponse{}, &apperrors.InvalidConfigurationError{
				Reason: fmt.Sprintf("component %d (%s): %v", i, c.Category, err),
			}
		}
		plans = append(plans, plan)
	}

	earliestDue, hasWork := earliestEngineDue(plans)
	if hasWork {
		if err := regime.ValidateSchedule(earliestDue); err != nil {
			return dto.ComputeSettlementResponse{}, err
		}
	}

	cache := service.NewSeriesCache()
	if hasWork {
		if err := uc.prefetch(ctx, cache, regime, earliestDue, referenceDate); err != nil {
			return dto.ComputeSettlementResponse{}, err
		}
	}

	engine := service.NewCompoundingEngine(cache)
	calc := service.NewRegimeCalculator(engine, service.NewInterestCalculator(), rate)
	reconciler := service.NewReconciler(calc)

	components := make([]model.StatementComponent, 0, len(plans))
	for _, plan := range plans {
		var items []model.LineItem
		if plan.ledger != nil {
			items, err = reconciler.Reconcile(plan.ledger, regime, referenceDate)
		} else {
			items, err = calculateAll(calc, plan.items, regime, referenceDate)
		}
		if err != nil {
			return dto.ComputeSettlementResponse{}, err
		}
		components = append(components, model.NewStatementComponent(plan.category, items))
	}

	statement := service.NewAggregator().Aggregate(components, req.ApplyArt523Fine, req.ApplyArt523FeeAward)

	runID := uuid.New()
	uc.publish(ctx, runID, referenceDate, regime, statement)

	return buildResponse(runID, referenceDate, statement), nil
}

// buildPlan parses one component input into installments or a ledger.
// Exactly one source shape must be present.
func (uc *ComputeSettlement) buildPlan(c dto.DebtComponentInput) (componentPlan, error) {
	category, err := valueobject.ParseDebtCategory(c.Category)
	if err != nil {
		return componentPlan{}, err
	}

	hasPeriod := c.PeriodStart != "" || c.PeriodEnd != ""
	hasLedger := len(c.Ledger) > 0
	hasSingle := c.DueDate != "" || c.Amount != ""
	if countTrue(hasPeriod, hasLedger, hasSingle) != 1 {
		return componentPlan{}, fmt.Errorf("exactly one of period, ledger or single amount must be provided")
	}

	switch {
	case hasLedger:
		entries := make([]model.LedgerEntry, 0, len(c.Ledger))
		for _, l := range c.Ledger {
			due, err := parseDate(l.DueDate, "due_date")
			if err != nil {
				return componentPlan{}, err
			}
			owed, err := parseAmount(l.AmountDue, "amount_due")
			if err != nil {
				return componentPlan{}, err
			}
			paid, err := parseAmount(l.AmountPaid, "amount_paid")
			if err != nil {
				return componentPlan{}, err
			}
			entry, err := model.NewLedgerEntry(due, owed, paid)
			if err != nil {
				return componentPlan{}, err
			}
			entries = append(entries, entry)
		}
		return componentPlan{category: category, ledger: entries}, nil

	case hasSingle:
		due, err := parseDate(c.DueDate, "due_date")
		if err != nil {
			return componentPlan{}, err
		}
		amount, err := parseAmount(c.Amount, "amount")
		if err != nil {
			return componentPlan{}, err
		}
		inst, err := model.NewInstallment(due, amount)
		if err != nil {
			return componentPlan{}, err
		}
		return componentPlan{category: category, items: []model.Installment{inst}}, nil

	default:
		start, err := parseDate(c.PeriodStart, "period_start")
		if err != nil {
			return componentPlan{}, err
		}
		end, err := parseDate(c.PeriodEnd, "period_end")
		if err != nil {
			return componentPlan{}, err
		}
		convention, err := valueobject.ParseScheduleConvention(c.Convention)
		if err != nil {
			return componentPlan{}, err
		}
		base, err := monthlyBase(c)
		if err != nil {
			return componentPlan{}, err
		}
		items, err := service.NewScheduleGenerator().Generate(convention, start, end, base)
		if err != nil {
			return componentPlan{}, err
		}
		return componentPlan{category: category, items: items}, nil
	}
}

// monthlyBase resolves the periodic amount, either given directly or
// derived as a percentage of a contract value.
func monthlyBase(c dto.DebtComponentInput) (decimal.Decimal, error) {
	if c.MonthlyBase != "" {
		if c.ContractValue != "" || c.MonthlyPercent != "" {
			return decimal.Decimal{}, fmt.Errorf("monthly_base and contract_value are mutually exclusive")
		}
		return parseAmount(c.MonthlyBase, "monthly_base")
	}
	if c.ContractValue == "" || c.MonthlyPercent == "" {
		return decimal.Decimal{}, fmt.Errorf("either monthly_base or contract_value with monthly_percent is required")
	}
	contract, err := parseAmount(c.ContractValue, "contract_value")
	if err != nil {
		return decimal.Decimal{}, err
	}
	pct, err := parseAmount(c.MonthlyPercent, "monthly_percent")
	if err != nil {
		return decimal.Decimal{}, err
	}
	return contract.Mul(pct).Div(decimal.NewFromInt(100)), nil
}

// earliestEngineDue finds the earliest due date that will actually hit
// the correction engine. Settled ledger entries are excluded; they never
// constrain the regime schedule.
func earliestEngineDue(plans []componentPlan) (time.Time, bool) {
	var earliest time.Time
	found := false
	consider := func(due time.Time) {
		if !found || due.Before(earliest) {
			earliest = due
			found = true
		}
	}
	for _, p := range plans {
		for _, inst := range p.items {
			consider(inst.DueDate())
		}
		for _, e := range p.ledger {
			if !e.IsSettled() {
				consider(e.DueDate())
			}
		}
	}
	return earliest, found
}

// prefetch loads every series range the run can need, one provider call
// per series, and seeds the computation cache.
func (uc *ComputeSettlement) prefetch(ctx context.Context, cache *service.SeriesCache, regime valueobject.Regime, earliestDue, referenceDate time.Time) error {
	fetch := func(code valueobject.SeriesCode, start, end time.Time) error {
		points, err := uc.provider.FetchVariations(ctx, code, start, end)
		if err != nil {
			return &apperrors.SeriesUnavailableError{
				Series: code.String(),
				Start:  start,
				End:    end,
				Cause:  err,
			}
		}
		series, err := model.NewIndexSeries(code, points)
		if err != nil {
			return &apperrors.SeriesUnavailableError{
				Series: code.String(),
				Start:  start,
				End:    end,
				Cause:  err,
			}
		}
		cache.Put(series)
		uc.logger.Debug("series prefetched",
			"series", code.String(),
			"start", start.Format(dateLayout),
			"end", end.Format(dateLayout),
			"points", series.Len())
		return nil
	}

	switch regime.Kind() {
	case valueobject.RegimeStandard:
		return fetch(regime.IndexSeries(), earliestDue, referenceDate)
	case valueobject.RegimeReferenceRate:
		return fetch(regime.ReferenceSeries(), earliestDue, referenceDate)
	case valueobject.RegimeHybrid:
		refStart := earliestDue
		if earliestDue.Before(regime.Cutover()) {
			if err := fetch(regime.IndexSeries(), earliestDue, regime.Cutover()); err != nil {
				return err
			}
			refStart = regime.Cutover()
		}
		return fetch(regime.ReferenceSeries(), refStart, referenceDate)
	default:
		return &apperrors.InvalidConfigurationError{Reason: "regime kind is not set"}
	}
}

func calculateAll(calc *service.RegimeCalculator, items []model.Installment, regime valueobject.Regime, referenceDate time.Time) ([]model.LineItem, error) {
	sorted := make([]model.Installment, len(items))
	copy(sorted, items)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].DueDate().Before(sorted[j].DueDate())
	})

	out := make([]model.LineItem, 0, len(sorted))
	for _, inst := range sorted {
		item, err := calc.Calculate(inst, regime, referenceDate)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

func (uc *ComputeSettlement) publish(ctx context.Context, runID uuid.UUID, referenceDate time.Time, regime valueobject.Regime, statement model.SettlementStatement) {
	evt, err := event.NewSettlementComputed(event.SettlementComputedPayload{
		RunID:         runID,
		ReferenceDate: referenceDate,
		RegimeKind:    string(regime.Kind()),
		Combined:      statement.Combined(),
		FinalTotal:    statement.FinalTotal(),
	})
	if err != nil {
		uc.logger.Warn("building settlement event failed", "error", err)
		return
	}
	// Publishing is best effort; the computation result stands either way.
	if err := uc.publisher.Publish(ctx, event.TopicSettlements, evt); err != nil {
		uc.logger.Warn("publishing settlement event failed", "run_id", runID.String(), "error", err)
	}
}

func buildResponse(runID uuid.UUID, referenceDate time.Time, statement model.SettlementStatement) dto.ComputeSettlementResponse {
	components := make([]dto.ComponentResult, 0, len(statement.Components()))
	for _, c := range statement.Components() {
		lines := make([]dto.LineRecord, 0, len(c.Items()))
		for _, item := range c.Items() {
			lines = append(lines, buildLineRecord(item))
		}
		components = append(components, dto.ComponentResult{
			Category: c.Category().String(),
			Subtotal: money(c.Subtotal()),
			Lines:    lines,
			Numeric:  c.Subtotal(),
		})
	}

	return dto.ComputeSettlementResponse{
		RunID:         runID.String(),
		ReferenceDate: referenceDate.Format(dateLayout),
		Currency:      moneylib.BRL.Code(),
		Components:    components,
		Combined:      money(statement.Combined()),
		Fine:          money(statement.Fine()),
		FeeAward:      money(statement.FeeAward()),
		FinalTotal:    money(statement.FinalTotal()),
	}
}

const blank = "-"

func buildLineRecord(item model.LineItem) dto.LineRecord {
	rec := dto.LineRecord{
		DueDate:           item.DueDate().Format(dateLayout),
		BaseAmount:        money(item.BaseAmount()),
		ProRata:           blank,
		Factor:            blank,
		CorrectedAmount:   blank,
		InterestRate:      blank,
		InterestDays:      blank,
		InterestAmount:    blank,
		PhaseOneSubtotal:  blank,
		SecondFactor:      blank,
		SecondPhaseAmount: blank,
		Total:             money(item.Total()),
		NumericTotal:      item.Total(),
	}

	if pr, ok := item.ProRata(); ok {
		rec.ProRata = fmt.Sprintf("%d/%d", pr.DaysActive, pr.DaysInMonth)
	}
	if factor, ok := item.Factor(); ok {
		rec.Factor = factor.String()
	}
	if corrected, ok := item.CorrectedAmount(); ok {
		rec.CorrectedAmount = money(corrected)
	}
	if interest, rate, days, ok := item.Interest(); ok {
		rec.InterestRate = rate.String()
		rec.InterestDays = strconv.Itoa(days)
		rec.InterestAmount = money(interest)
	}
	if subtotal, ok := item.PhaseOneSubtotal(); ok {
		rec.PhaseOneSubtotal = money(subtotal)
	}
	if factor, amount, ok := item.SecondPhase(); ok {
		rec.SecondFactor = factor.String()
		rec.SecondPhaseAmount = money(amount)
	}
	return rec
}

// money formats an amount as it appears on the statement: BRL, rounded
// to cents.
func money(d decimal.Decimal) string {
	return moneylib.New(d, moneylib.BRL).RoundCents().Amount().StringFixed(2)
}

func parseDate(s, field string) (time.Time, error) {
	if s == "" {
		return time.Time{}, &apperrors.InvalidConfigurationError{
			Reason: field + " is required",
		}
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, &apperrors.InvalidConfigurationError{
			Reason: fmt.Sprintf("%s: invalid date %q, want YYYY-MM-DD", field, s),
		}
	}
	return t.UTC(), nil
}

func parseAmount(s, field string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%s: invalid amount %q", field, s)
	}
	return d, nil
}

// parseMonthlyRate reads an interest rate given in percent per month,
// defaulting to the statutory 1%.
func parseMonthlyRate(s string) (valueobject.MonthlyRate, error) {
	if s == "" {
		return valueobject.LegalArrearsRate(), nil
	}
	pct, err := decimal.NewFromString(s)
	if err != nil {
		return valueobject.MonthlyRate{}, &apperrors.InvalidConfigurationError{
			Reason: fmt.Sprintf("monthly_interest_rate: invalid value %q", s),
		}
	}
	rate, err := valueobject.NewMonthlyRate(pct.Div(decimal.NewFromInt(100)))
	if err != nil {
		return valueobject.MonthlyRate{}, &apperrors.InvalidConfigurationError{
			Reason: "monthly_interest_rate: " + err.Error(),
		}
	}
	return rate, nil
}

func buildRegime(in dto.RegimeInput) (valueobject.Regime, error) {
	kind, err := valueobject.ParseRegimeKind(in.Kind)
	if err != nil {
		return valueobject.Regime{}, &apperrors.InvalidConfigurationError{Reason: err.Error()}
	}

	wrap := func(r valueobject.Regime, err error) (valueobject.Regime, error) {
		if err != nil {
			return valueobject.Regime{}, &apperrors.InvalidConfigurationError{Reason: err.Error()}
		}
		return r, nil
	}

	switch kind {
	case valueobject.RegimeStandard:
		accrual, err := parseDate(in.AccrualStart, "regime.accrual_start")
		if err != nil {
			return valueobject.Regime{}, err
		}
		return wrap(valueobject.NewStandardRegime(valueobject.SeriesCode(in.IndexSeries), accrual))
	case valueobject.RegimeReferenceRate:
		return wrap(valueobject.NewReferenceRateRegime(valueobject.SeriesCode(in.ReferenceSeries)))
	default:
		accrual, err := parseDate(in.AccrualStart, "regime.accrual_start")
		if err != nil {
			return valueobject.Regime{}, err
		}
		cutover, err := parseDate(in.Cutover, "regime.cutover")
		if err != nil {
			return valueobject.Regime{}, err
		}
		return wrap(valueobject.NewHybridRegime(
			valueobject.SeriesCode(in.IndexSeries), accrual, cutover,
			valueobject.SeriesCode(in.ReferenceSeries)))
	}
}

func countTrue(bs ...bool) int {
	n := 0
	for _, b := range bs {
		if b {
			n++
		}
	}
	return n
}
