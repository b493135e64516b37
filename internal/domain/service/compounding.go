package service

import (
	"time"

	"github.com/MarinhoBortone/calculadora-jur-dica/internal/domain/apperrors"
	"github.com/MarinhoBortone/calculadora-jur-dica/internal/domain/valueobject"
)

// CompoundingEngine turns a cached index series and a date interval into
// a multiplicative correction factor, compounding the monthly variations
// in chronological order.
type CompoundingEngine struct {
	cache *SeriesCache

	// Now supplies the current date for the future-start guard.
	// Overridable in tests.
	Now func() time.Time
}

func NewCompoundingEngine(cache *SeriesCache) *CompoundingEngine {
	return &CompoundingEngine{cache: cache, Now: time.Now}
}

// Compound computes the accumulated factor for [start, end].
//
// Degenerate intervals (end on or before start) and intervals starting in
// the future yield the neutral factor: the obligation simply has not aged.
// A window that is valid but for which the series holds no observations is
// different: that is missing data and aborts with SeriesUnavailableError.
func (e *CompoundingEngine) Compound(code valueobject.SeriesCode, start, end time.Time) (valueobject.CorrectionFactor, error) {
	start = dateOnly(start)
	end = dateOnly(end)

	if !end.After(start) {
		return valueobject.NeutralFactor(), nil
	}
	if start.After(dateOnly(e.Now())) {
		return valueobject.NeutralFactor(), nil
	}

	series, ok := e.cache.Get(code)
	if !ok {
		return valueobject.CorrectionFactor{}, &apperrors.SeriesUnavailableError{
			Series: code.String(),
			Start:  start,
			End:    end,
		}
	}

	points := series.PointsWithin(start, end)
	if len(points) == 0 {
		return valueobject.CorrectionFactor{}, &apperrors.SeriesUnavailableError{
			Series: code.String(),
			Start:  start,
			End:    end,
		}
	}

	factor := valueobject.NeutralFactor()
	for _, p := range points {
		factor = factor.Compound(p.Variation)
	}
	return factor, nil
}
