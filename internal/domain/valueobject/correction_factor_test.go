package valueobject_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MarinhoBortone/calculadora-jur-dica/internal/domain/valueobject"
)

func TestNewCorrectionFactor(t *testing.T) {
	f, err := valueobject.NewCorrectionFactor(decimal.RequireFromString("1.0456"))
	require.NoError(t, err)
	assert.Equal(t, "1.045600", f.String())

	_, err = valueobject.NewCorrectionFactor(decimal.Zero)
	require.Error(t, err)

	_, err = valueobject.NewCorrectionFactor(decimal.NewFromInt(-1))
	require.Error(t, err)
}

func TestNeutralFactor(t *testing.T) {
	f := valueobject.NeutralFactor()
	assert.True(t, f.IsNeutral())

	base := decimal.RequireFromString("1000.00")
	assert.True(t, f.Apply(base).Equal(base))
}

func TestCorrectionFactor_Compound(t *testing.T) {
	// 0.5% then 0.25%: 1 * 1.005 * 1.0025 = 1.0075125
	f := valueobject.NeutralFactor().
		Compound(decimal.RequireFromString("0.5")).
		Compound(decimal.RequireFromString("0.25"))

	assert.True(t, f.Value().Equal(decimal.RequireFromString("1.0075125")),
		"got %s", f.Value())
	assert.False(t, f.IsNeutral())
}

func TestCorrectionFactor_CompoundNegativeVariation(t *testing.T) {
	// Deflation months produce factors below 1.
	f := valueobject.NeutralFactor().Compound(decimal.RequireFromString("-1.0"))
	assert.True(t, f.Value().Equal(decimal.RequireFromString("0.99")), "got %s", f.Value())
}

func TestCorrectionFactor_Apply(t *testing.T) {
	f := valueobject.NeutralFactor().Compound(decimal.RequireFromString("10"))
	got := f.Apply(decimal.RequireFromString("200.00"))
	assert.True(t, got.Equal(decimal.RequireFromString("220")), "got %s", got)
}
