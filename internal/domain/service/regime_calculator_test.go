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

func newCalculator(t *testing.T, cache *service.SeriesCache, now func() time.Time) *service.RegimeCalculator {
	t.Helper()
	engine := service.NewCompoundingEngine(cache)
	engine.Now = now
	return service.NewRegimeCalculator(engine, service.NewInterestCalculator(), valueobject.LegalArrearsRate())
}

func mustInstallment(t *testing.T, due time.Time, base string) model.Installment {
	t.Helper()
	inst, err := model.NewInstallment(due, decimal.RequireFromString(base))
	require.NoError(t, err)
	return inst
}

func TestRegimeCalculator_Standard(t *testing.T) {
	t.Run("neutral correction accrues thirty days of interest", func(t *testing.T) {
		// Base 1000.00 due 2024-01-10, no index movement, reference
		// 2024-02-09: one full 30-day month of 1% interest.
		cache := cacheWith(t, valueobject.SeriesINPC,
			model.IndexPoint{Month: mustMonth(t, 2024, time.February), Variation: decimal.Zero},
		)
		calc := newCalculator(t, cache, fixedNow(2024, time.June, 1))

		regime, err := valueobject.NewStandardRegime(valueobject.SeriesINPC,
			date(2024, time.January, 10))
		require.NoError(t, err)

		item, err := calc.Calculate(
			mustInstallment(t, date(2024, time.January, 10), "1000.00"),
			regime, date(2024, time.February, 9))
		require.NoError(t, err)

		corrected, ok := item.CorrectedAmount()
		require.True(t, ok)
		assert.True(t, corrected.Equal(decimal.RequireFromString("1000.00")), "got %s", corrected)

		interest, _, days, ok := item.Interest()
		require.True(t, ok)
		assert.Equal(t, 30, days)
		assert.True(t, interest.Round(2).Equal(decimal.RequireFromString("10.00")), "got %s", interest)
		assert.True(t, item.Total().Equal(decimal.RequireFromString("1010.00")), "got %s", item.Total())
	})

	t.Run("interest runs over the corrected amount", func(t *testing.T) {
		cache := cacheWith(t, valueobject.SeriesINPC,
			model.IndexPoint{Month: mustMonth(t, 2024, time.February), Variation: decimal.RequireFromString("10")},
		)
		calc := newCalculator(t, cache, fixedNow(2024, time.June, 1))

		regime, err := valueobject.NewStandardRegime(valueobject.SeriesINPC,
			date(2024, time.January, 10))
		require.NoError(t, err)

		item, err := calc.Calculate(
			mustInstallment(t, date(2024, time.January, 10), "1000.00"),
			regime, date(2024, time.March, 10))
		require.NoError(t, err)

		corrected, _ := item.CorrectedAmount()
		assert.True(t, corrected.Equal(decimal.RequireFromString("1100")), "got %s", corrected)

		// 60 days at 1%/30 over 1100.00 = 22.00.
		interest, _, days, _ := item.Interest()
		assert.Equal(t, 60, days)
		assert.True(t, interest.Round(2).Equal(decimal.RequireFromString("22.00")), "got %s", interest)
	})

	t.Run("pro-rated installment carries its day fraction onto the line", func(t *testing.T) {
		cache := cacheWith(t, valueobject.SeriesINPC,
			model.IndexPoint{Month: mustMonth(t, 2024, time.February), Variation: decimal.Zero},
		)
		calc := newCalculator(t, cache, fixedNow(2024, time.June, 1))

		regime, err := valueobject.NewStandardRegime(valueobject.SeriesINPC,
			date(2024, time.January, 10))
		require.NoError(t, err)

		inst, err := model.NewProRataInstallment(date(2024, time.January, 31),
			decimal.RequireFromString("1200.00"), 12, 31)
		require.NoError(t, err)

		item, err := calc.Calculate(inst, regime, date(2024, time.February, 9))
		require.NoError(t, err)

		pr, ok := item.ProRata()
		require.True(t, ok)
		assert.Equal(t, 12, pr.DaysActive)
		assert.Equal(t, 31, pr.DaysInMonth)
	})

	t.Run("interest never starts before the installment exists", func(t *testing.T) {
		cache := cacheWith(t, valueobject.SeriesINPC,
			model.IndexPoint{Month: mustMonth(t, 2024, time.April), Variation: decimal.Zero},
		)
		calc := newCalculator(t, cache, fixedNow(2024, time.June, 1))

		// Citation long before the due date: accrual starts at due.
		regime, err := valueobject.NewStandardRegime(valueobject.SeriesINPC,
			date(2023, time.January, 1))
		require.NoError(t, err)

		item, err := calc.Calculate(
			mustInstallment(t, date(2024, time.April, 1), "1000.00"),
			regime, date(2024, time.May, 1))
		require.NoError(t, err)

		_, _, days, _ := item.Interest()
		assert.Equal(t, 30, days)
	})
}

func TestRegimeCalculator_ReferenceRate(t *testing.T) {
	cache := cacheWith(t, valueobject.SeriesSELIC,
		model.IndexPoint{Month: mustMonth(t, 2024, time.February), Variation: decimal.RequireFromString("1.0")},
		model.IndexPoint{Month: mustMonth(t, 2024, time.March), Variation: decimal.RequireFromString("1.0")},
	)
	calc := newCalculator(t, cache, fixedNow(2024, time.June, 1))

	regime, err := valueobject.NewReferenceRateRegime(valueobject.SeriesSELIC)
	require.NoError(t, err)

	item, err := calc.Calculate(
		mustInstallment(t, date(2024, time.January, 15), "1000.00"),
		regime, date(2024, time.April, 1))
	require.NoError(t, err)

	// 1000 * 1.01 * 1.01 = 1020.10; the rate series embeds remuneration,
	// so no separate interest line.
	assert.True(t, item.Total().Equal(decimal.RequireFromString("1020.10")), "got %s", item.Total())
	_, _, _, hasInterest := item.Interest()
	assert.False(t, hasInterest)
}

func TestRegimeCalculator_Hybrid(t *testing.T) {
	cutover := date(2024, time.April, 1)

	newHybridCache := func(t *testing.T) *service.SeriesCache {
		t.Helper()
		cache := service.NewSeriesCache()

		index, err := model.NewIndexSeries(valueobject.SeriesINPC, []model.IndexPoint{
			{Month: mustMonth(t, 2024, time.February), Variation: decimal.RequireFromString("10")},
		})
		require.NoError(t, err)
		cache.Put(index)

		ref, err := model.NewIndexSeries(valueobject.SeriesSELIC, []model.IndexPoint{
			{Month: mustMonth(t, 2024, time.April), Variation: decimal.RequireFromString("4")},
		})
		require.NoError(t, err)
		cache.Put(ref)
		return cache
	}

	t.Run("phase-one interest is frozen at the cutover", func(t *testing.T) {
		calc := newCalculator(t, newHybridCache(t), fixedNow(2024, time.June, 1))

		regime, err := valueobject.NewHybridRegime(valueobject.SeriesINPC,
			date(2024, time.January, 1), cutover, valueobject.SeriesSELIC)
		require.NoError(t, err)

		// Due 2024-01-01, base 1000.00. Phase one to the cutover:
		// corrected = 1100.00, interest over 91 days = 33.366...
		// Phase two: 1100.00 * 1.04 = 1144.00, interest untouched.
		item, err := calc.Calculate(
			mustInstallment(t, date(2024, time.January, 1), "1000.00"),
			regime, date(2024, time.May, 1))
		require.NoError(t, err)

		corrected, ok := item.CorrectedAmount()
		require.True(t, ok)
		assert.True(t, corrected.Equal(decimal.RequireFromString("1100")), "got %s", corrected)

		interest, _, days, ok := item.Interest()
		require.True(t, ok)
		assert.Equal(t, 91, days)

		f2, phaseTwo, ok := item.SecondPhase()
		require.True(t, ok)
		assert.True(t, f2.Value().Equal(decimal.RequireFromString("1.04")))
		assert.True(t, phaseTwo.Equal(decimal.RequireFromString("1144")), "got %s", phaseTwo)

		// The second factor must never touch the frozen interest.
		wantTotal := phaseTwo.Add(interest).Round(2)
		assert.True(t, item.Total().Equal(wantTotal), "got %s want %s", item.Total(), wantTotal)

		anatocism := corrected.Add(interest).Mul(decimal.RequireFromString("1.04")).Round(2)
		assert.False(t, item.Total().Equal(anatocism),
			"total must not re-correct phase-one interest")
	})

	t.Run("due on the cutover goes straight to the reference rate", func(t *testing.T) {
		calc := newCalculator(t, newHybridCache(t), fixedNow(2024, time.June, 1))

		regime, err := valueobject.NewHybridRegime(valueobject.SeriesINPC,
			date(2024, time.January, 1), cutover, valueobject.SeriesSELIC)
		require.NoError(t, err)

		item, err := calc.Calculate(
			mustInstallment(t, cutover, "1000.00"),
			regime, date(2024, time.May, 1))
		require.NoError(t, err)

		// Pure reference line: 1000 * 1.04, no interest, no second phase.
		assert.True(t, item.Total().Equal(decimal.RequireFromString("1040.00")), "got %s", item.Total())
		_, _, _, hasInterest := item.Interest()
		assert.False(t, hasInterest)
		_, _, hasSecond := item.SecondPhase()
		assert.False(t, hasSecond)
	})
}

func TestRegimeCalculator_UnavailableSeriesNamesInstallment(t *testing.T) {
	// Cache holds data for 2024 only; an installment needing 2020 data
	// must abort and say which installment needed what.
	cache := cacheWith(t, valueobject.SeriesINPC,
		model.IndexPoint{Month: mustMonth(t, 2024, time.January), Variation: decimal.Zero},
	)
	calc := newCalculator(t, cache, fixedNow(2024, time.June, 1))

	regime, err := valueobject.NewStandardRegime(valueobject.SeriesINPC,
		date(2020, time.January, 1))
	require.NoError(t, err)

	due := date(2020, time.March, 15)
	_, err = calc.Calculate(mustInstallment(t, due, "1000.00"), regime, date(2020, time.December, 1))
	require.Error(t, err)

	var unavail *apperrors.SeriesUnavailableError
	require.True(t, errors.As(err, &unavail))
	assert.Equal(t, valueobject.SeriesINPC.String(), unavail.Series)
	assert.Equal(t, due, unavail.InstallmentDue)
	assert.Equal(t, due, unavail.Start)
}
