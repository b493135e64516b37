package usecase

import (
	"context"

	"github.com/MarinhoBortone/calculadora-jur-dica/internal/application/dto"
	"github.com/MarinhoBortone/calculadora-jur-dica/internal/domain/apperrors"
	"github.com/MarinhoBortone/calculadora-jur-dica/internal/domain/port"
	"github.com/MarinhoBortone/calculadora-jur-dica/internal/domain/valueobject"
)

// GetIndexSeries reads archived observations of a series for a range.
type GetIndexSeries struct {
	repo port.IndexSeriesRepository
}

func NewGetIndexSeries(repo port.IndexSeriesRepository) *GetIndexSeries {
	return &GetIndexSeries{repo: repo}
}

func (uc *GetIndexSeries) Execute(ctx context.Context, req dto.GetIndexSeriesRequest) (dto.GetIndexSeriesResponse, error) {
	code, err := valueobject.NewSeriesCode(req.SeriesCode)
	if err != nil {
		return dto.GetIndexSeriesResponse{}, &apperrors.InvalidConfigurationError{Reason: err.Error()}
	}
	start, err := parseDate(req.Start, "start")
	if err != nil {
		return dto.GetIndexSeriesResponse{}, err
	}
	end, err := parseDate(req.End, "end")
	if err != nil {
		return dto.GetIndexSeriesResponse{}, err
	}

	points, err := uc.repo.FindRange(ctx, code, start, end)
	if err != nil {
		return dto.GetIndexSeriesResponse{}, err
	}

	records := make([]dto.IndexPointRecord, 0, len(points))
	for _, p := range points {
		records = append(records, dto.IndexPointRecord{
			Month:     p.Month.String(),
			Variation: p.Variation.String(),
		})
	}
	return dto.GetIndexSeriesResponse{SeriesCode: code.String(), Points: records}, nil
}
