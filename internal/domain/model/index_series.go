package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MarinhoBortone/calculadora-jur-dica/internal/domain/valueobject"
)

// IndexPoint is one monthly observation of an economic index: the
// percentage variation published for a reference month. Fields are
// exported so points can travel through caches and repositories as-is.
type IndexPoint struct {
	Month     valueobject.ReferenceMonth `json:"month"`
	Variation decimal.Decimal            `json:"variation"`
}

// IndexSeries holds the ordered monthly observations of a single series.
type IndexSeries struct {
	code   valueobject.SeriesCode
	points []IndexPoint
}

// NewIndexSeries builds a series from points already sorted by month.
// Months must be strictly ascending; duplicates are rejected here rather
// than silently collapsed, providers are expected to dedupe upstream.
func NewIndexSeries(code valueobject.SeriesCode, points []IndexPoint) (IndexSeries, error) {
	if code.IsZero() {
		return IndexSeries{}, fmt.Errorf("index series requires a series code")
	}
	for i := 1; i < len(points); i++ {
		if !points[i-1].Month.Before(points[i].Month) {
			return IndexSeries{}, fmt.Errorf("series %s: points out of order at %s",
				code, points[i].Month)
		}
	}
	cp := make([]IndexPoint, len(points))
	copy(cp, points)
	return IndexSeries{code: code, points: cp}, nil
}

func (s IndexSeries) Code() valueobject.SeriesCode { return s.code }

// Len reports the number of observations held.
func (s IndexSeries) Len() int { return len(s.points) }

// Points returns a copy of all observations.
func (s IndexSeries) Points() []IndexPoint {
	cp := make([]IndexPoint, len(s.points))
	copy(cp, s.points)
	return cp
}

// PointsWithin selects the observations whose reference month begins
// inside [start, end]. A month belongs to the window when the first day
// of that month falls on or after start and on or before end.
func (s IndexSeries) PointsWithin(start, end time.Time) []IndexPoint {
	var out []IndexPoint
	for _, p := range s.points {
		first := p.Month.FirstDay()
		if first.Before(start) || first.After(end) {
			continue
		}
		out = append(out, p)
	}
	return out
}
