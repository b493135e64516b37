// Package cache decorates index providers with a redis read-through
// layer, so repeated computations over the same ranges do not hammer the
// upstream API.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MarinhoBortone/calculadora-jur-dica/internal/domain/model"
	"github.com/MarinhoBortone/calculadora-jur-dica/internal/domain/port"
	"github.com/MarinhoBortone/calculadora-jur-dica/internal/domain/valueobject"
)

// CachingProvider wraps an IndexProvider with a TTL'd redis cache keyed
// by series and range. Cache failures degrade to the inner provider;
// they are logged, never surfaced.
type CachingProvider struct {
	inner  port.IndexProvider
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

var _ port.IndexProvider = (*CachingProvider)(nil)

func NewCachingProvider(inner port.IndexProvider, client *redis.Client, ttl time.Duration, logger *slog.Logger) *CachingProvider {
	return &CachingProvider{inner: inner, client: client, ttl: ttl, logger: logger}
}

func cacheKey(code valueobject.SeriesCode, start, end time.Time) string {
	return fmt.Sprintf("calcjus:series:%s:%s:%s",
		code, start.Format("2006-01-02"), end.Format("2006-01-02"))
}

func (p *CachingProvider) FetchVariations(ctx context.Context, code valueobject.SeriesCode, start, end time.Time) ([]model.IndexPoint, error) {
	key := cacheKey(code, start, end)

	if raw, err := p.client.Get(ctx, key).Bytes(); err == nil {
		var points []model.IndexPoint
		if err := json.Unmarshal(raw, &points); err == nil {
			return points, nil
		}
		p.logger.Warn("discarding undecodable cache entry", "key", key)
	} else if err != redis.Nil {
		p.logger.Warn("series cache read failed", "key", key, "error", err)
	}

	points, err := p.inner.FetchVariations(ctx, code, start, end)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(points); err == nil {
		if err := p.client.Set(ctx, key, raw, p.ttl).Err(); err != nil {
			p.logger.Warn("series cache write failed", "key", key, "error", err)
		}
	}
	return points, nil
}
