// Package event defines the domain events emitted after state-changing
// operations complete.
package event

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MarinhoBortone/calculadora-jur-dica/pkg/events"
)

const (
	TopicSettlements = "calcjus.settlements"
	TopicIndexSeries = "calcjus.index-series"

	TypeSettlementComputed   = "settlement.computed"
	TypeIndexSeriesRefreshed = "index_series.refreshed"
)

// SettlementComputedPayload is the wire body of a settlement event.
type SettlementComputedPayload struct {
	RunID         uuid.UUID       `json:"run_id"`
	ReferenceDate time.Time       `json:"reference_date"`
	RegimeKind    string          `json:"regime_kind"`
	Combined      decimal.Decimal `json:"combined"`
	FinalTotal    decimal.Decimal `json:"final_total"`
}

// NewSettlementComputed builds the event emitted when a settlement run
// finishes.
func NewSettlementComputed(p SettlementComputedPayload) (events.DomainEvent, error) {
	body, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	return events.NewBaseEvent(TypeSettlementComputed, p.RunID, "settlement", body), nil
}

// IndexSeriesRefreshedPayload is the wire body of a series refresh event.
type IndexSeriesRefreshedPayload struct {
	SeriesCode string    `json:"series_code"`
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
	Points     int       `json:"points"`
}

// NewIndexSeriesRefreshed builds the event emitted when a series archive
// refresh completes.
func NewIndexSeriesRefreshed(p IndexSeriesRefreshedPayload) (events.DomainEvent, error) {
	body, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	return events.NewBaseEvent(TypeIndexSeriesRefreshed, uuid.New(), "index_series", body), nil
}
