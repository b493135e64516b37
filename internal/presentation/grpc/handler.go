package grpc

import (
	"context"
	"errors"
	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/MarinhoBortone/calculadora-jur-dica/internal/application/dto"
	"github.com/MarinhoBortone/calculadora-jur-dica/internal/application/usecase"
	"github.com/MarinhoBortone/calculadora-jur-dica/internal/domain/apperrors"
)

// Compile-time assertion that Handler implements CalcServiceServer.
var _ CalcServiceServer = (*Handler)(nil)

// Handler implements the CalcServiceServer gRPC interface.
type Handler struct {
	UnimplementedCalcServiceServer
	compute *usecase.ComputeSettlement
	refresh *usecase.RefreshIndexSeries
	get     *usecase.GetIndexSeries
	logger  *slog.Logger
}

// NewHandler creates a new gRPC Handler.
func NewHandler(
	compute *usecase.ComputeSettlement,
	refresh *usecase.RefreshIndexSeries,
	get *usecase.GetIndexSeries,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		compute: compute,
		refresh: refresh,
		get:     get,
		logger:  logger,
	}
}

// Proto-aligned request/response message types.

// RegimeMsg represents the proto Regime message.
type RegimeMsg struct {
	Kind            string `json:"kind"`
	IndexSeries     string `json:"index_series"`
	AccrualStart    string `json:"accrual_start"`
	Cutover         string `json:"cutover"`
	ReferenceSeries string `json:"reference_series"`
}

// LedgerEntryMsg represents the proto LedgerEntry message.
type LedgerEntryMsg struct {
	DueDate    string `json:"due_date"`
	AmountDue  string `json:"amount_due"`
	AmountPaid string `json:"amount_paid"`
}

// DebtComponentMsg represents the proto DebtComponent message.
type DebtComponentMsg struct {
	Category       string            `json:"category"`
	Convention     string            `json:"convention"`
	PeriodStart    string            `json:"period_start"`
	PeriodEnd      string            `json:"period_end"`
	MonthlyBase    string            `json:"monthly_base"`
	ContractValue  string            `json:"contract_value"`
	MonthlyPercent string            `json:"monthly_percent"`
	Ledger         []*LedgerEntryMsg `json:"ledger"`
	DueDate        string            `json:"due_date"`
	Amount         string            `json:"amount"`
}

// ComputeSettlementRequest represents the proto ComputeSettlementRequest message.
type ComputeSettlementRequest struct {
	ReferenceDate       string              `json:"reference_date"`
	Regime              *RegimeMsg          `json:"regime"`
	MonthlyInterestRate string              `json:"monthly_interest_rate"`
	ApplyArt523Fine     bool                `json:"apply_art523_fine"`
	ApplyArt523FeeAward bool                `json:"apply_art523_fee_award"`
	Components          []*DebtComponentMsg `json:"components"`
}

// LineRecordMsg represents the proto LineRecord message.
type LineRecordMsg struct {
	DueDate           string `json:"due_date"`
	BaseAmount        string `json:"base_amount"`
	ProRata           string `json:"pro_rata"`
	Factor            string `json:"factor"`
	CorrectedAmount   string `json:"corrected_amount"`
	InterestRate      string `json:"interest_rate"`
	InterestDays      string `json:"interest_days"`
	InterestAmount    string `json:"interest_amount"`
	PhaseOneSubtotal  string `json:"phase_one_subtotal"`
	SecondFactor      string `json:"second_factor"`
	SecondPhaseAmount string `json:"second_phase_amount"`
	Total             string `json:"total"`
}

// ComponentResultMsg represents the proto ComponentResult message.
type ComponentResultMsg struct {
	Category string           `json:"category"`
	Subtotal string           `json:"subtotal"`
	Lines    []*LineRecordMsg `json:"lines"`
}

// ComputeSettlementResponse represents the proto ComputeSettlementResponse message.
type ComputeSettlementResponse struct {
	RunId         string                `json:"run_id"`
	ReferenceDate string                `json:"reference_date"`
	Currency      string                `json:"currency"`
	Components    []*ComponentResultMsg `json:"components"`
	Combined      string                `json:"combined"`
	Fine          string                `json:"fine"`
	FeeAward      string                `json:"fee_award"`
	FinalTotal    string                `json:"final_total"`
}

// RefreshIndexSeriesRequest represents the proto RefreshIndexSeriesRequest message.
type RefreshIndexSeriesRequest struct {
	SeriesCode string `json:"series_code"`
	Start      string `json:"start"`
	End        string `json:"end"`
}

// RefreshIndexSeriesResponse represents the proto RefreshIndexSeriesResponse message.
type RefreshIndexSeriesResponse struct {
	SeriesCode string `json:"series_code"`
	Points     int32  `json:"points"`
}

// GetIndexSeriesRequest represents the proto GetIndexSeriesRequest message.
type GetIndexSeriesRequest struct {
	SeriesCode string `json:"series_code"`
	Start      string `json:"start"`
	End        string `json:"end"`
}

// IndexPointMsg represents the proto IndexPoint message.
type IndexPointMsg struct {
	Month     string `json:"month"`
	Variation string `json:"variation"`
}

// GetIndexSeriesResponse represents the proto GetIndexSeriesResponse message.
type GetIndexSeriesResponse struct {
	SeriesCode string           `json:"series_code"`
	Points     []*IndexPointMsg `json:"points"`
}

// mapError converts domain errors into gRPC status errors.
func mapError(err error) error {
	var cfgErr *apperrors.InvalidConfigurationError
	if errors.As(err, &cfgErr) {
		return status.Error(codes.InvalidArgument, cfgErr.Error())
	}
	var unavail *apperrors.SeriesUnavailableError
	if errors.As(err, &unavail) {
		return status.Error(codes.Unavailable, unavail.Error())
	}
	return status.Error(codes.Internal, "internal error")
}

// ComputeSettlement runs one settlement computation.
func (h *Handler) ComputeSettlement(ctx context.Context, req *ComputeSettlementRequest) (*ComputeSettlementResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	if req.Regime == nil {
		return nil, status.Error(codes.InvalidArgument, "regime is required")
	}
	if len(req.Components) == 0 {
		return nil, status.Error(codes.InvalidArgument, "at least one component is required")
	}

	dtoReq := dto.ComputeSettlementRequest{
		ReferenceDate: req.ReferenceDate,
		Regime: dto.RegimeInput{
			Kind:            req.Regime.Kind,
			IndexSeries:     req.Regime.IndexSeries,
			AccrualStart:    req.Regime.AccrualStart,
			Cutover:         req.Regime.Cutover,
			ReferenceSeries: req.Regime.ReferenceSeries,
		},
		MonthlyInterestRate: req.MonthlyInterestRate,
		ApplyArt523Fine:     req.ApplyArt523Fine,
		ApplyArt523FeeAward: req.ApplyArt523FeeAward,
	}
	for _, c := range req.Components {
		if c == nil {
			return nil, status.Error(codes.InvalidArgument, "component must not be null")
		}
		comp := dto.DebtComponentInput{
			Category:       c.Category,
			Convention:     c.Convention,
			PeriodStart:    c.PeriodStart,
			PeriodEnd:      c.PeriodEnd,
			MonthlyBase:    c.MonthlyBase,
			ContractValue:  c.ContractValue,
			MonthlyPercent: c.MonthlyPercent,
			DueDate:        c.DueDate,
			Amount:         c.Amount,
		}
		for _, l := range c.Ledger {
			if l == nil {
				continue
			}
			comp.Ledger = append(comp.Ledger, dto.LedgerEntryInput{
				DueDate:    l.DueDate,
				AmountDue:  l.AmountDue,
				AmountPaid: l.AmountPaid,
			})
		}
		dtoReq.Components = append(dtoReq.Components, comp)
	}

	resp, err := h.compute.Execute(ctx, dtoReq)
	if err != nil {
		h.logger.Error("ComputeSettlement failed", "error", err)
		return nil, mapError(err)
	}

	out := &ComputeSettlementResponse{
		RunId:         resp.RunID,
		ReferenceDate: resp.ReferenceDate,
		Currency:      resp.Currency,
		Combined:      resp.Combined,
		Fine:          resp.Fine,
		FeeAward:      resp.FeeAward,
		FinalTotal:    resp.FinalTotal,
	}
	for _, c := range resp.Components {
		compMsg := &ComponentResultMsg{Category: c.Category, Subtotal: c.Subtotal}
		for _, line := range c.Lines {
			compMsg.Lines = append(compMsg.Lines, &LineRecordMsg{
				DueDate:           line.DueDate,
				BaseAmount:        line.BaseAmount,
				ProRata:           line.ProRata,
				Factor:            line.Factor,
				CorrectedAmount:   line.CorrectedAmount,
				InterestRate:      line.InterestRate,
				InterestDays:      line.InterestDays,
				InterestAmount:    line.InterestAmount,
				PhaseOneSubtotal:  line.PhaseOneSubtotal,
				SecondFactor:      line.SecondFactor,
				SecondPhaseAmount: line.SecondPhaseAmount,
				Total:             line.Total,
			})
		}
		out.Components = append(out.Components, compMsg)
	}

	h.logger.Info("ComputeSettlement succeeded",
		"run_id", resp.RunID,
		"components", len(resp.Components),
		"final_total", resp.FinalTotal)
	return out, nil
}

// RefreshIndexSeries fetches and archives a series range.
func (h *Handler) RefreshIndexSeries(ctx context.Context, req *RefreshIndexSeriesRequest) (*RefreshIndexSeriesResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	if req.SeriesCode == "" {
		return nil, status.Error(codes.InvalidArgument, "series_code is required")
	}

	resp, err := h.refresh.Execute(ctx, dto.RefreshIndexSeriesRequest{
		SeriesCode: req.SeriesCode,
		Start:      req.Start,
		End:        req.End,
	})
	if err != nil {
		h.logger.Error("RefreshIndexSeries failed", "error", err, "series", req.SeriesCode)
		return nil, mapError(err)
	}

	h.logger.Info("RefreshIndexSeries succeeded", "series", req.SeriesCode, "points", resp.Points)
	return &RefreshIndexSeriesResponse{
		SeriesCode: resp.SeriesCode,
		Points:     int32(resp.Points),
	}, nil
}

// GetIndexSeries reads archived observations of a series.
func (h *Handler) GetIndexSeries(ctx context.Context, req *GetIndexSeriesRequest) (*GetIndexSeriesResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	if req.SeriesCode == "" {
		return nil, status.Error(codes.InvalidArgument, "series_code is required")
	}

	resp, err := h.get.Execute(ctx, dto.GetIndexSeriesRequest{
		SeriesCode: req.SeriesCode,
		Start:      req.Start,
		End:        req.End,
	})
	if err != nil {
		h.logger.Error("GetIndexSeries failed", "error", err, "series", req.SeriesCode)
		return nil, mapError(err)
	}

	out := &GetIndexSeriesResponse{SeriesCode: resp.SeriesCode}
	for _, p := range resp.Points {
		out.Points = append(out.Points, &IndexPointMsg{Month: p.Month, Variation: p.Variation})
	}
	return out, nil
}
