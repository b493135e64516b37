// Package port declares the driven-side interfaces the domain depends on.
// Infrastructure adapters implement them; use cases consume them.
package port

import (
	"context"
	"time"

	"github.com/MarinhoBortone/calculadora-jur-dica/internal/domain/model"
	"github.com/MarinhoBortone/calculadora-jur-dica/internal/domain/valueobject"
	"github.com/MarinhoBortone/calculadora-jur-dica/pkg/events"
)

// IndexProvider fetches the monthly variations of an economic series for
// a date range. Implementations return the points sorted by month with
// duplicates collapsed; a range with no published observations yields an
// empty slice and no error, distinguishing "nothing published" from
// "could not fetch".
type IndexProvider interface {
	FetchVariations(ctx context.Context, code valueobject.SeriesCode, start, end time.Time) ([]model.IndexPoint, error)
}

// IndexSeriesRepository persists fetched index points for later reuse.
type IndexSeriesRepository interface {
	SavePoints(ctx context.Context, code valueobject.SeriesCode, points []model.IndexPoint) error
	FindRange(ctx context.Context, code valueobject.SeriesCode, start, end time.Time) ([]model.IndexPoint, error)
}

// EventPublisher emits domain events to the outside world.
type EventPublisher interface {
	Publish(ctx context.Context, topic string, evts ...events.DomainEvent) error
	Close() error
}
