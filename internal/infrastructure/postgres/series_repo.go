// Package postgres implements the persistence adapters on pgx.
package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/MarinhoBortone/calculadora-jur-dica/internal/domain/model"
	"github.com/MarinhoBortone/calculadora-jur-dica/internal/domain/port"
	"github.com/MarinhoBortone/calculadora-jur-dica/internal/domain/valueobject"
)

// IndexSeriesRepo archives fetched index points in postgres, keyed by
// series code and reference month.
type IndexSeriesRepo struct {
	pool *pgxpool.Pool
}

var _ port.IndexSeriesRepository = (*IndexSeriesRepo)(nil)

func NewIndexSeriesRepo(pool *pgxpool.Pool) *IndexSeriesRepo {
	return &IndexSeriesRepo{pool: pool}
}

// SavePoints upserts the points in one transaction; a re-fetch of the
// same month overwrites the stored variation.
func (r *IndexSeriesRepo) SavePoints(ctx context.Context, code valueobject.SeriesCode, points []model.IndexPoint) error {
	if len(points) == 0 {
		return nil
	}

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	const q = `
		INSERT INTO index_points (series_code, ref_month, variation, fetched_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (series_code, ref_month)
		DO UPDATE SET variation = EXCLUDED.variation, fetched_at = EXCLUDED.fetched_at`

	for _, p := range points {
		if _, err := tx.Exec(ctx, q, code.String(), p.Month.FirstDay(), p.Variation); err != nil {
			return fmt.Errorf("upserting point %s/%s: %w", code, p.Month, err)
		}
	}
	return tx.Commit(ctx)
}

// FindRange reads the archived points whose reference month starts
// within [start, end], in month order.
func (r *IndexSeriesRepo) FindRange(ctx context.Context, code valueobject.SeriesCode, start, end time.Time) ([]model.IndexPoint, error) {
	const q = `
		SELECT ref_month, variation
		FROM index_points
		WHERE series_code = $1 AND ref_month >= $2 AND ref_month <= $3
		ORDER BY ref_month`

	rows, err := r.pool.Query(ctx, q, code.String(), start, end)
	if err != nil {
		return nil, fmt.Errorf("querying series %s: %w", code, err)
	}
	defer rows.Close()

	var points []model.IndexPoint
	for rows.Next() {
		var (
			refMonth  time.Time
			variation decimal.Decimal
		)
		if err := rows.Scan(&refMonth, &variation); err != nil {
			return nil, fmt.Errorf("scanning series %s: %w", code, err)
		}
		month, err := valueobject.NewReferenceMonth(refMonth.Year(), refMonth.Month())
		if err != nil {
			return nil, err
		}
		points = append(points, model.IndexPoint{Month: month, Variation: variation})
	}
	return points, rows.Err()
}
