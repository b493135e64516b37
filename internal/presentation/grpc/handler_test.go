package grpc_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/MarinhoBortone/calculadora-jur-dica/internal/application/usecase"
	"github.com/MarinhoBortone/calculadora-jur-dica/internal/domain/model"
	"github.com/MarinhoBortone/calculadora-jur-dica/internal/domain/port"
	"github.com/MarinhoBortone/calculadora-jur-dica/internal/domain/valueobject"
	"github.com/MarinhoBortone/calculadora-jur-dica/internal/infrastructure/provider"
	grpcapi "github.com/MarinhoBortone/calculadora-jur-dica/internal/presentation/grpc"
	"github.com/MarinhoBortone/calculadora-jur-dica/pkg/events"
)

type noopPublisher struct{}

func (noopPublisher) Publish(context.Context, string, ...events.DomainEvent) error { return nil }
func (noopPublisher) Close() error                                                { return nil }

var _ port.EventPublisher = noopPublisher{}

func newTestHandler(t *testing.T) *grpcapi.Handler {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	fixtures := provider.NewStaticProvider()
	var points []model.IndexPoint
	for m := time.January; m <= time.December; m++ {
		rm, err := valueobject.NewReferenceMonth(2024, m)
		require.NoError(t, err)
		points = append(points, model.IndexPoint{Month: rm, Variation: decimal.Zero})
	}
	fixtures.Add(valueobject.SeriesINPC, points...)

	compute := usecase.NewComputeSettlement(fixtures, noopPublisher{}, logger)
	return grpcapi.NewHandler(compute, nil, nil, logger)
}

func validRequest() *grpcapi.ComputeSettlementRequest {
	return &grpcapi.ComputeSettlementRequest{
		ReferenceDate: "2024-02-09",
		Regime: &grpcapi.RegimeMsg{
			Kind:         string(valueobject.RegimeStandard),
			IndexSeries:  string(valueobject.SeriesINPC),
			AccrualStart: "2024-01-10",
		},
		Components: []*grpcapi.DebtComponentMsg{{
			Category: string(valueobject.CategoryIndemnity),
			DueDate:  "2024-01-10",
			Amount:   "1000.00",
		}},
	}
}

func TestHandler_ComputeSettlement(t *testing.T) {
	h := newTestHandler(t)

	t.Run("happy path", func(t *testing.T) {
		resp, err := h.ComputeSettlement(context.Background(), validRequest())
		require.NoError(t, err)

		assert.NotEmpty(t, resp.RunId)
		assert.Equal(t, "1010.00", resp.FinalTotal)
		require.Len(t, resp.Components, 1)
		require.Len(t, resp.Components[0].Lines, 1)
		assert.Equal(t, "30", resp.Components[0].Lines[0].InterestDays)
	})

	t.Run("nil request", func(t *testing.T) {
		_, err := h.ComputeSettlement(context.Background(), nil)
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
	})

	t.Run("missing regime", func(t *testing.T) {
		req := validRequest()
		req.Regime = nil
		_, err := h.ComputeSettlement(context.Background(), req)
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
	})

	t.Run("unknown regime kind maps to invalid argument", func(t *testing.T) {
		req := validRequest()
		req.Regime.Kind = "3. Misto"
		_, err := h.ComputeSettlement(context.Background(), req)
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
	})

	t.Run("missing series data maps to unavailable", func(t *testing.T) {
		req := validRequest()
		req.Regime.IndexSeries = string(valueobject.SeriesIGPM) // no fixture
		_, err := h.ComputeSettlement(context.Background(), req)
		assert.Equal(t, codes.Unavailable, status.Code(err))
	})

	t.Run("no components", func(t *testing.T) {
		req := validRequest()
		req.Components = nil
		_, err := h.ComputeSettlement(context.Background(), req)
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
	})
}

func TestHandler_RefreshIndexSeries_Validation(t *testing.T) {
	h := newTestHandler(t)

	_, err := h.RefreshIndexSeries(context.Background(), nil)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = h.RefreshIndexSeries(context.Background(), &grpcapi.RefreshIndexSeriesRequest{})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}
