package valueobject_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MarinhoBortone/calculadora-jur-dica/internal/domain/valueobject"
)

func TestNewReferenceMonth(t *testing.T) {
	rm, err := valueobject.NewReferenceMonth(2024, time.February)
	require.NoError(t, err)
	assert.Equal(t, 2024, rm.Year())
	assert.Equal(t, time.February, rm.Month())

	_, err = valueobject.NewReferenceMonth(1800, time.January)
	require.Error(t, err)

	_, err = valueobject.NewReferenceMonth(2024, time.Month(13))
	require.Error(t, err)
}

func TestReferenceMonth_Days(t *testing.T) {
	feb24, _ := valueobject.NewReferenceMonth(2024, time.February)
	assert.Equal(t, 29, feb24.Days()) // leap year

	feb25, _ := valueobject.NewReferenceMonth(2025, time.February)
	assert.Equal(t, 28, feb25.Days())

	jan, _ := valueobject.NewReferenceMonth(2024, time.January)
	assert.Equal(t, 31, jan.Days())
}

func TestReferenceMonth_Bounds(t *testing.T) {
	rm, _ := valueobject.NewReferenceMonth(2024, time.February)
	assert.Equal(t, time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC), rm.FirstDay())
	assert.Equal(t, time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC), rm.LastDay())
	assert.True(t, rm.Contains(time.Date(2024, time.February, 15, 0, 0, 0, 0, time.UTC)))
	assert.False(t, rm.Contains(time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)))
}

func TestReferenceMonth_Next(t *testing.T) {
	dec, _ := valueobject.NewReferenceMonth(2023, time.December)
	jan := dec.Next()
	assert.Equal(t, 2024, jan.Year())
	assert.Equal(t, time.January, jan.Month())
}

func TestReferenceMonth_Ordering(t *testing.T) {
	a, _ := valueobject.NewReferenceMonth(2024, time.March)
	b, _ := valueobject.NewReferenceMonth(2024, time.July)
	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.False(t, a.Before(a))
}

func TestReferenceMonth_JSONRoundTrip(t *testing.T) {
	rm, _ := valueobject.NewReferenceMonth(2024, time.July)

	data, err := json.Marshal(rm)
	require.NoError(t, err)
	assert.Equal(t, `"07/2024"`, string(data))

	var back valueobject.ReferenceMonth
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, rm, back)
}

func TestParseReferenceMonth(t *testing.T) {
	rm, err := valueobject.ParseReferenceMonth("02/2025")
	require.NoError(t, err)
	assert.Equal(t, "02/2025", rm.String())

	_, err = valueobject.ParseReferenceMonth("2025-02")
	require.Error(t, err)
}
