package model_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MarinhoBortone/calculadora-jur-dica/internal/domain/model"
)

var entryDue = time.Date(2024, time.May, 10, 0, 0, 0, 0, time.UTC)

func TestLedgerEntry_NetBase(t *testing.T) {
	t.Run("partial payment nets to the remainder", func(t *testing.T) {
		e, err := model.NewLedgerEntry(entryDue,
			decimal.RequireFromString("1000.00"),
			decimal.RequireFromString("400.00"))
		require.NoError(t, err)

		assert.True(t, e.NetBase().Equal(decimal.RequireFromString("600.00")))
		assert.False(t, e.IsSettled())
	})

	t.Run("overpayment floors at zero", func(t *testing.T) {
		e, err := model.NewLedgerEntry(entryDue,
			decimal.RequireFromString("1000.00"),
			decimal.RequireFromString("1200.00"))
		require.NoError(t, err)

		assert.True(t, e.NetBase().IsZero())
		assert.True(t, e.IsSettled())
	})

	t.Run("exact payment settles the entry", func(t *testing.T) {
		e, err := model.NewLedgerEntry(entryDue,
			decimal.RequireFromString("1000.00"),
			decimal.RequireFromString("1000.00"))
		require.NoError(t, err)

		assert.True(t, e.IsSettled())
	})
}

func TestNewLedgerEntry_Validation(t *testing.T) {
	_, err := model.NewLedgerEntry(time.Time{}, decimal.NewFromInt(100), decimal.Zero)
	require.Error(t, err)

	_, err = model.NewLedgerEntry(entryDue, decimal.NewFromInt(-100), decimal.Zero)
	require.Error(t, err)

	_, err = model.NewLedgerEntry(entryDue, decimal.NewFromInt(100), decimal.NewFromInt(-1))
	require.Error(t, err)
}
