package provider

import (
	"context"
	"time"

	"github.com/MarinhoBortone/calculadora-jur-dica/internal/domain/model"
	"github.com/MarinhoBortone/calculadora-jur-dica/internal/domain/port"
	"github.com/MarinhoBortone/calculadora-jur-dica/internal/domain/valueobject"
)

// ArchiveProvider serves variations from the local postgres archive,
// populated by the refresh operation. Deployments that must not reach
// the public API at computation time run on this provider.
type ArchiveProvider struct {
	repo port.IndexSeriesRepository
}

var _ port.IndexProvider = (*ArchiveProvider)(nil)

func NewArchiveProvider(repo port.IndexSeriesRepository) *ArchiveProvider {
	return &ArchiveProvider{repo: repo}
}

func (p *ArchiveProvider) FetchVariations(ctx context.Context, code valueobject.SeriesCode, start, end time.Time) ([]model.IndexPoint, error) {
	if !end.After(start) {
		return nil, nil
	}
	return p.repo.FindRange(ctx, code, start, end)
}
