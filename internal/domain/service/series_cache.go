package service

import (
	"github.com/MarinhoBortone/calculadora-jur-dica/internal/domain/model"
	"github.com/MarinhoBortone/calculadora-jur-dica/internal/domain/valueobject"
)

// SeriesCache holds the prefetched series of one computation run. Each
// required series is fetched exactly once before the installment loop;
// the loop itself only reads from here.
type SeriesCache struct {
	series map[valueobject.SeriesCode]model.IndexSeries
}

func NewSeriesCache() *SeriesCache {
	return &SeriesCache{series: make(map[valueobject.SeriesCode]model.IndexSeries)}
}

// Put stores a fetched series, replacing any previous entry for the code.
func (c *SeriesCache) Put(s model.IndexSeries) {
	c.series[s.Code()] = s
}

// Get returns the cached series for the code.
func (c *SeriesCache) Get(code valueobject.SeriesCode) (model.IndexSeries, bool) {
	s, ok := c.series[code]
	return s, ok
}
