// Package provider implements the index data sources: the central bank
// SGS API, the local postgres archive and a static fixture source.
package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MarinhoBortone/calculadora-jur-dica/internal/domain/model"
	"github.com/MarinhoBortone/calculadora-jur-dica/internal/domain/port"
	"github.com/MarinhoBortone/calculadora-jur-dica/internal/domain/valueobject"
)

const sgsDateLayout = "02/01/2006"

// SGSClient fetches monthly series variations from the Banco Central
// SGS API.
type SGSClient struct {
	baseURL string
	client  *http.Client
	logger  *slog.Logger
}

var _ port.IndexProvider = (*SGSClient)(nil)

func NewSGSClient(baseURL string, timeout time.Duration, logger *slog.Logger) *SGSClient {
	return &SGSClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// sgsRow is one element of the SGS JSON response. Both fields arrive as
// strings.
type sgsRow struct {
	Data  string `json:"data"`
	Valor string `json:"valor"`
}

// FetchVariations calls the SGS "dados" endpoint for the series and date
// range. Malformed rows are skipped; duplicate months keep the last
// published value. An empty or inverted range returns no points without
// touching the network.
func (c *SGSClient) FetchVariations(ctx context.Context, code valueobject.SeriesCode, start, end time.Time) ([]model.IndexPoint, error) {
	if !end.After(start) {
		return nil, nil
	}

	endpoint := fmt.Sprintf("%s/dados/serie/bcdata.sgs.%s/dados", c.baseURL, url.PathEscape(code.String()))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	q := req.URL.Query()
	q.Set("formato", "json")
	q.Set("dataInicial", start.Format(sgsDateLayout))
	q.Set("dataFinal", end.Format(sgsDateLayout))
	req.URL.RawQuery = q.Encode()

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sgs: fetching series %s: %w", code, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("sgs: series %s returned status %d: %s", code, resp.StatusCode, body)
	}

	var rows []sgsRow
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return nil, fmt.Errorf("sgs: decoding series %s: %w", code, err)
	}

	return c.toPoints(code, rows), nil
}

func (c *SGSClient) toPoints(code valueobject.SeriesCode, rows []sgsRow) []model.IndexPoint {
	byMonth := make(map[valueobject.ReferenceMonth]decimal.Decimal, len(rows))
	for _, row := range rows {
		day, err := time.Parse(sgsDateLayout, row.Data)
		if err != nil {
			c.logger.Warn("skipping malformed sgs row", "series", code.String(), "data", row.Data)
			continue
		}
		value, err := decimal.NewFromString(row.Valor)
		if err != nil {
			c.logger.Warn("skipping non-numeric sgs value", "series", code.String(), "valor", row.Valor)
			continue
		}
		byMonth[valueobject.ReferenceMonthOf(day)] = value
	}

	points := make([]model.IndexPoint, 0, len(byMonth))
	for month, value := range byMonth {
		points = append(points, model.IndexPoint{Month: month, Variation: value})
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].Month.Before(points[j].Month)
	})
	return points
}
