package provider

import (
	"context"
	"fmt"
	"time"

	"github.com/MarinhoBortone/calculadora-jur-dica/internal/domain/model"
	"github.com/MarinhoBortone/calculadora-jur-dica/internal/domain/port"
	"github.com/MarinhoBortone/calculadora-jur-dica/internal/domain/valueobject"
)

// StaticProvider serves variations from in-memory fixtures. Used in
// tests and demo deployments where the SGS API is unreachable.
type StaticProvider struct {
	series map[valueobject.SeriesCode][]model.IndexPoint
}

var _ port.IndexProvider = (*StaticProvider)(nil)

func NewStaticProvider() *StaticProvider {
	return &StaticProvider{series: make(map[valueobject.SeriesCode][]model.IndexPoint)}
}

// Add registers fixture points for a series, appended in call order.
// Points must be added in ascending month order.
func (p *StaticProvider) Add(code valueobject.SeriesCode, points ...model.IndexPoint) {
	p.series[code] = append(p.series[code], points...)
}

func (p *StaticProvider) FetchVariations(_ context.Context, code valueobject.SeriesCode, start, end time.Time) ([]model.IndexPoint, error) {
	if !end.After(start) {
		return nil, nil
	}
	points, ok := p.series[code]
	if !ok {
		return nil, fmt.Errorf("static provider: no fixture for series %s", code)
	}
	var out []model.IndexPoint
	for _, pt := range points {
		first := pt.Month.FirstDay()
		if first.Before(start) || first.After(end) {
			continue
		}
		out = append(out, pt)
	}
	return out, nil
}
