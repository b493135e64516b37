package usecase

import (
	"context"
	"log/slog"

	"github.com/MarinhoBortone/calculadora-jur-dica/internal/application/dto"
	"github.com/MarinhoBortone/calculadora-jur-dica/internal/domain/apperrors"
	"github.com/MarinhoBortone/calculadora-jur-dica/internal/domain/event"
	"github.com/MarinhoBortone/calculadora-jur-dica/internal/domain/port"
	"github.com/MarinhoBortone/calculadora-jur-dica/internal/domain/valueobject"
)

// RefreshIndexSeries fetches a series range from the upstream provider
// and archives it, so later computations can run off the local archive.
type RefreshIndexSeries struct {
	provider  port.IndexProvider
	repo      port.IndexSeriesRepository
	publisher port.EventPublisher
	logger    *slog.Logger
}

func NewRefreshIndexSeries(provider port.IndexProvider, repo port.IndexSeriesRepository, publisher port.EventPublisher, logger *slog.Logger) *RefreshIndexSeries {
	return &RefreshIndexSeries{provider: provider, repo: repo, publisher: publisher, logger: logger}
}

func (uc *RefreshIndexSeries) Execute(ctx context.Context, req dto.RefreshIndexSeriesRequest) (dto.RefreshIndexSeriesResponse, error) {
	code, err := valueobject.NewSeriesCode(req.SeriesCode)
	if err != nil {
		return dto.RefreshIndexSeriesResponse{}, &apperrors.InvalidConfigurationError{Reason: err.Error()}
	}
	start, err := parseDate(req.Start, "start")
	if err != nil {
		return dto.RefreshIndexSeriesResponse{}, err
	}
	end, err := parseDate(req.End, "end")
	if err != nil {
		return dto.RefreshIndexSeriesResponse{}, err
	}

	points, err := uc.provider.FetchVariations(ctx, code, start, end)
	if err != nil {
		return dto.RefreshIndexSeriesResponse{}, &apperrors.SeriesUnavailableError{
			Series: code.String(),
			Start:  start,
			End:    end,
			Cause:  err,
		}
	}

	if err := uc.repo.SavePoints(ctx, code, points); err != nil {
		return dto.RefreshIndexSeriesResponse{}, err
	}
	uc.logger.Info("index series refreshed",
		"series", code.String(),
		"start", req.Start,
		"end", req.End,
		"points", len(points))

	evt, err := event.NewIndexSeriesRefreshed(event.IndexSeriesRefreshedPayload{
		SeriesCode: code.String(),
		Start:      start,
		End:        end,
		Points:     len(points),
	})
	if err == nil {
		if err := uc.publisher.Publish(ctx, event.TopicIndexSeries, evt); err != nil {
			uc.logger.Warn("publishing refresh event failed", "series", code.String(), "error", err)
		}
	}

	return dto.RefreshIndexSeriesResponse{SeriesCode: code.String(), Points: len(points)}, nil
}
