package provider_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MarinhoBortone/calculadora-jur-dica/internal/domain/valueobject"
	"github.com/MarinhoBortone/calculadora-jur-dica/internal/infrastructure/provider"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSGSClient_FetchVariations(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/dados/serie/bcdata.sgs.188/dados", r.URL.Path)
		assert.Equal(t, "json", r.URL.Query().Get("formato"))
		assert.Equal(t, "01/01/2024", r.URL.Query().Get("dataInicial"))
		assert.Equal(t, "31/03/2024", r.URL.Query().Get("dataFinal"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"data":"01/01/2024","valor":"0.57"},
			{"data":"01/02/2024","valor":"0.81"},
			{"data":"garbage","valor":"0.99"},
			{"data":"01/03/2024","valor":"not-a-number"},
			{"data":"02/02/2024","valor":"0.85"}
		]`))
	}))
	defer srv.Close()

	client := provider.NewSGSClient(srv.URL, 5*time.Second, discardLogger())
	points, err := client.FetchVariations(context.Background(), valueobject.SeriesINPC,
		time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	// Malformed rows dropped, duplicate February collapsed to the last
	// published value.
	require.Len(t, points, 2)
	assert.Equal(t, "01/2024", points[0].Month.String())
	assert.True(t, points[0].Variation.Equal(decimal.RequireFromString("0.57")))
	assert.Equal(t, "02/2024", points[1].Month.String())
	assert.True(t, points[1].Variation.Equal(decimal.RequireFromString("0.85")))
}

func TestSGSClient_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "temporarily unavailable", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := provider.NewSGSClient(srv.URL, 5*time.Second, discardLogger())
	_, err := client.FetchVariations(context.Background(), valueobject.SeriesSELIC,
		time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestSGSClient_DegenerateRangeSkipsNetwork(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		t.Fatal("no request expected for a degenerate range")
	}))
	defer srv.Close()

	client := provider.NewSGSClient(srv.URL, 5*time.Second, discardLogger())
	day := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

	points, err := client.FetchVariations(context.Background(), valueobject.SeriesINPC, day, day)
	require.NoError(t, err)
	assert.Empty(t, points)
}
