package service_test

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MarinhoBortone/calculadora-jur-dica/internal/domain/apperrors"
	"github.com/MarinhoBortone/calculadora-jur-dica/internal/domain/model"
	"github.com/MarinhoBortone/calculadora-jur-dica/internal/domain/service"
	"github.com/MarinhoBortone/calculadora-jur-dica/internal/domain/valueobject"
)

func mustMonth(t *testing.T, year int, month time.Month) valueobject.ReferenceMonth {
	t.Helper()
	rm, err := valueobject.NewReferenceMonth(year, month)
	require.NoError(t, err)
	return rm
}

func cacheWith(t *testing.T, code valueobject.SeriesCode, points ...model.IndexPoint) *service.SeriesCache {
	t.Helper()
	s, err := model.NewIndexSeries(code, points)
	require.NoError(t, err)
	cache := service.NewSeriesCache()
	cache.Put(s)
	return cache
}

func fixedNow(year int, month time.Month, day int) func() time.Time {
	return func() time.Time {
		return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	}
}

func TestCompoundingEngine_Compound(t *testing.T) {
	cache := cacheWith(t, valueobject.SeriesINPC,
		model.IndexPoint{Month: mustMonth(t, 2024, time.January), Variation: decimal.RequireFromString("0.5")},
		model.IndexPoint{Month: mustMonth(t, 2024, time.February), Variation: decimal.RequireFromString("0.25")},
		model.IndexPoint{Month: mustMonth(t, 2024, time.March), Variation: decimal.RequireFromString("-0.1")},
	)
	engine := service.NewCompoundingEngine(cache)
	engine.Now = fixedNow(2025, time.January, 1)

	t.Run("compounds monthly variations across the window", func(t *testing.T) {
		start := time.Date(2023, time.December, 15, 0, 0, 0, 0, time.UTC)
		end := time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC)

		f, err := engine.Compound(valueobject.SeriesINPC, start, end)
		require.NoError(t, err)

		// 1.005 * 1.0025 * 0.999
		want := decimal.RequireFromString("1.005").
			Mul(decimal.RequireFromString("1.0025")).
			Mul(decimal.RequireFromString("0.999"))
		assert.True(t, f.Value().Equal(want), "got %s want %s", f.Value(), want)
	})

	t.Run("month starting before the window is excluded", func(t *testing.T) {
		start := time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC)
		end := time.Date(2024, time.February, 28, 0, 0, 0, 0, time.UTC)

		f, err := engine.Compound(valueobject.SeriesINPC, start, end)
		require.NoError(t, err)

		want := decimal.RequireFromString("1.0025")
		assert.True(t, f.Value().Equal(want), "got %s", f.Value())
	})
}

func TestCompoundingEngine_DegenerateIntervals(t *testing.T) {
	cache := cacheWith(t, valueobject.SeriesINPC,
		model.IndexPoint{Month: mustMonth(t, 2024, time.January), Variation: decimal.RequireFromString("0.5")},
	)
	engine := service.NewCompoundingEngine(cache)
	engine.Now = fixedNow(2024, time.June, 1)

	day := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)

	t.Run("zero-length interval is neutral", func(t *testing.T) {
		f, err := engine.Compound(valueobject.SeriesINPC, day, day)
		require.NoError(t, err)
		assert.True(t, f.IsNeutral())
	})

	t.Run("inverted interval is neutral", func(t *testing.T) {
		f, err := engine.Compound(valueobject.SeriesINPC, day, day.AddDate(0, -1, 0))
		require.NoError(t, err)
		assert.True(t, f.IsNeutral())
	})

	t.Run("start in the future is neutral", func(t *testing.T) {
		f, err := engine.Compound(valueobject.SeriesINPC,
			time.Date(2030, time.January, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2030, time.June, 1, 0, 0, 0, 0, time.UTC))
		require.NoError(t, err)
		assert.True(t, f.IsNeutral())
	})
}

func TestCompoundingEngine_Unavailable(t *testing.T) {
	cache := cacheWith(t, valueobject.SeriesINPC,
		model.IndexPoint{Month: mustMonth(t, 2024, time.January), Variation: decimal.RequireFromString("0.5")},
	)
	engine := service.NewCompoundingEngine(cache)
	engine.Now = fixedNow(2024, time.June, 1)

	t.Run("series missing from the cache is fatal", func(t *testing.T) {
		_, err := engine.Compound(valueobject.SeriesSELIC,
			time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC))
		require.Error(t, err)

		var unavail *apperrors.SeriesUnavailableError
		require.True(t, errors.As(err, &unavail))
		assert.Equal(t, valueobject.SeriesSELIC.String(), unavail.Series)
	})

	t.Run("valid window with no observations is fatal, not neutral", func(t *testing.T) {
		_, err := engine.Compound(valueobject.SeriesINPC,
			time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2020, time.June, 1, 0, 0, 0, 0, time.UTC))
		require.Error(t, err)

		var unavail *apperrors.SeriesUnavailableError
		require.True(t, errors.As(err, &unavail))
		assert.Equal(t, time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC), unavail.Start)
		assert.Equal(t, time.Date(2020, time.June, 1, 0, 0, 0, 0, time.UTC), unavail.End)
	})
}
