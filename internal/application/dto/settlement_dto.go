// Package dto defines the transport-neutral request and response shapes
// of the application layer. Dates travel as "2006-01-02" strings and
// amounts as plain decimal strings; parsing and validation happen in the
// use cases.
package dto

import "github.com/shopspring/decimal"

// RegimeInput selects and configures the correction regime for a run.
type RegimeInput struct {
	Kind            string `json:"kind"`
	IndexSeries     string `json:"index_series,omitempty"`
	AccrualStart    string `json:"accrual_start,omitempty"`
	Cutover         string `json:"cutover,omitempty"`
	ReferenceSeries string `json:"reference_series,omitempty"`
}

// LedgerEntryInput is one due/paid pair of a reconciled component.
type LedgerEntryInput struct {
	DueDate    string `json:"due_date"`
	AmountDue  string `json:"amount_due"`
	AmountPaid string `json:"amount_paid"`
}

// DebtComponentInput describes one debt category's source data. Exactly
// one of three shapes must be provided: a period with a monthly base (or
// a contract value and percentage it derives from), a ledger of due/paid
// entries, or a single dated amount.
type DebtComponentInput struct {
	Category   string `json:"category"`
	Convention string `json:"convention,omitempty"`

	PeriodStart string `json:"period_start,omitempty"`
	PeriodEnd   string `json:"period_end,omitempty"`
	MonthlyBase string `json:"monthly_base,omitempty"`

	// ContractValue and MonthlyPercent derive the monthly base as a
	// percentage of a contract amount, the rent-adjustment shape.
	ContractValue  string `json:"contract_value,omitempty"`
	MonthlyPercent string `json:"monthly_percent,omitempty"`

	Ledger []LedgerEntryInput `json:"ledger,omitempty"`

	// DueDate and Amount describe a single-shot debt such as a fee award
	// fixed by the court on one date.
	DueDate string `json:"due_date,omitempty"`
	Amount  string `json:"amount,omitempty"`
}

// ComputeSettlementRequest is the full input of one computation run.
type ComputeSettlementRequest struct {
	ReferenceDate       string               `json:"reference_date"`
	Regime              RegimeInput          `json:"regime"`
	MonthlyInterestRate string               `json:"monthly_interest_rate,omitempty"`
	ApplyArt523Fine     bool                 `json:"apply_art523_fine"`
	ApplyArt523FeeAward bool                 `json:"apply_art523_fee_award"`
	Components          []DebtComponentInput `json:"components"`
}

// LineRecord is one calculated installment as it appears on the report.
// Columns that do not apply to the line's regime carry "-"; NumericTotal
// keeps the exact value alongside the formatted one.
type LineRecord struct {
	DueDate           string          `json:"due_date"`
	BaseAmount        string          `json:"base_amount"`
	ProRata           string          `json:"pro_rata"`
	Factor            string          `json:"factor"`
	CorrectedAmount   string          `json:"corrected_amount"`
	InterestRate      string          `json:"interest_rate"`
	InterestDays      string          `json:"interest_days"`
	InterestAmount    string          `json:"interest_amount"`
	PhaseOneSubtotal  string          `json:"phase_one_subtotal"`
	SecondFactor      string          `json:"second_factor"`
	SecondPhaseAmount string          `json:"second_phase_amount"`
	Total             string          `json:"total"`
	NumericTotal      decimal.Decimal `json:"numeric_total"`
}

// ComponentResult is one category's lines and subtotal.
type ComponentResult struct {
	Category string          `json:"category"`
	Subtotal string          `json:"subtotal"`
	Lines    []LineRecord    `json:"lines"`
	Numeric  decimal.Decimal `json:"numeric_subtotal"`
}

// ComputeSettlementResponse is the consolidated statement of a run. All
// amounts are in Currency, formatted to cents.
type ComputeSettlementResponse struct {
	RunID         string            `json:"run_id"`
	ReferenceDate string            `json:"reference_date"`
	Currency      string            `json:"currency"`
	Components    []ComponentResult `json:"components"`
	Combined      string            `json:"combined"`
	Fine          string            `json:"fine"`
	FeeAward      string            `json:"fee_award"`
	FinalTotal    string            `json:"final_total"`
}
