package valueobject

import (
	"fmt"
	"time"

	"github.com/MarinhoBortone/calculadora-jur-dica/internal/domain/apperrors"
)

// RegimeKind distinguishes the three legal correction regimes. The set is
// closed: a computation run carries exactly one regime and the calculator
// matches on it exhaustively.
type RegimeKind string

const (
	// RegimeStandard corrects by an index series and adds simple interest.
	RegimeStandard RegimeKind = "STANDARD"
	// RegimeReferenceRate applies a statutory rate series that already
	// embodies both correction and interest; no interest is added on top.
	RegimeReferenceRate RegimeKind = "REFERENCE_RATE"
	// RegimeHybrid applies index+interest until a cutover date, then the
	// reference rate over the bare corrected principal.
	RegimeHybrid RegimeKind = "HYBRID"
)

// ParseRegimeKind converts a string into a RegimeKind.
func ParseRegimeKind(s string) (RegimeKind, error) {
	switch RegimeKind(s) {
	case RegimeStandard, RegimeReferenceRate, RegimeHybrid:
		return RegimeKind(s), nil
	default:
		return "", fmt.Errorf("unknown regime kind %q", s)
	}
}

// Regime is the immutable configuration of a correction regime for one
// computation run.
type Regime struct {
	kind            RegimeKind
	indexSeries     SeriesCode
	accrualStart    time.Time
	cutover         time.Time
	referenceSeries SeriesCode
}

// NewStandardRegime creates an index-correction-plus-interest regime.
// accrualStart is the citation/notice date from which arrears interest runs.
func NewStandardRegime(indexSeries SeriesCode, accrualStart time.Time) (Regime, error) {
	if indexSeries.IsZero() {
		return Regime{}, fmt.Errorf("standard regime: index series is required")
	}
	if accrualStart.IsZero() {
		return Regime{}, fmt.Errorf("standard regime: accrual start date is required")
	}
	return Regime{
		kind:         RegimeStandard,
		indexSeries:  indexSeries,
		accrualStart: accrualStart.UTC(),
	}, nil
}

// NewReferenceRateRegime creates a reference-rate-only regime.
func NewReferenceRateRegime(referenceSeries SeriesCode) (Regime, error) {
	if referenceSeries.IsZero() {
		return Regime{}, fmt.Errorf("reference rate regime: rate series is required")
	}
	return Regime{
		kind:            RegimeReferenceRate,
		referenceSeries: referenceSeries,
	}, nil
}

// NewHybridRegime creates a regime that corrects by index plus interest up to
// the cutover date and by the reference rate series afterward.
func NewHybridRegime(indexSeries SeriesCode, accrualStart, cutover time.Time, referenceSeries SeriesCode) (Regime, error) {
	if indexSeries.IsZero() {
		return Regime{}, fmt.Errorf("hybrid regime: index series is required")
	}
	if referenceSeries.IsZero() {
		return Regime{}, fmt.Errorf("hybrid regime: reference rate series is required")
	}
	if accrualStart.IsZero() {
		return Regime{}, fmt.Errorf("hybrid regime: accrual start date is required")
	}
	if cutover.IsZero() {
		return Regime{}, fmt.Errorf("hybrid regime: cutover date is required")
	}
	return Regime{
		kind:            RegimeHybrid,
		indexSeries:     indexSeries,
		accrualStart:    accrualStart.UTC(),
		cutover:         cutover.UTC(),
		referenceSeries: referenceSeries,
	}, nil
}

func (r Regime) Kind() RegimeKind            { return r.kind }
func (r Regime) IndexSeries() SeriesCode     { return r.indexSeries }
func (r Regime) ReferenceSeries() SeriesCode { return r.referenceSeries }
func (r Regime) AccrualStart() time.Time     { return r.accrualStart }
func (r Regime) Cutover() time.Time          { return r.cutover }
func (r Regime) IsZero() bool                { return r.kind == "" }

// ValidateSchedule rejects regime/schedule combinations before any
// installment is processed. A hybrid cutover preceding the earliest due date
// is a caller error, never silently corrected.
func (r Regime) ValidateSchedule(earliestDue time.Time) error {
	if r.kind == RegimeHybrid && r.cutover.Before(earliestDue) {
		return &apperrors.InvalidConfigurationError{
			Reason: fmt.Sprintf("hybrid cutover %s precedes earliest installment due date %s",
				r.cutover.Format("2006-01-02"), earliestDue.Format("2006-01-02")),
		}
	}
	return nil
}
