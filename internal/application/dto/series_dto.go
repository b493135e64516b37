package dto

// RefreshIndexSeriesRequest asks for a series range to be fetched from
// the upstream provider and archived.
type RefreshIndexSeriesRequest struct {
	SeriesCode string `json:"series_code"`
	Start      string `json:"start"`
	End        string `json:"end"`
}

// RefreshIndexSeriesResponse reports how many points were archived.
type RefreshIndexSeriesResponse struct {
	SeriesCode string `json:"series_code"`
	Points     int    `json:"points"`
}

// GetIndexSeriesRequest reads archived observations for a range.
type GetIndexSeriesRequest struct {
	SeriesCode string `json:"series_code"`
	Start      string `json:"start"`
	End        string `json:"end"`
}

// IndexPointRecord is one archived monthly observation.
type IndexPointRecord struct {
	Month     string `json:"month"`
	Variation string `json:"variation"`
}

// GetIndexSeriesResponse lists the archived observations of a series.
type GetIndexSeriesResponse struct {
	SeriesCode string             `json:"series_code"`
	Points     []IndexPointRecord `json:"points"`
}
