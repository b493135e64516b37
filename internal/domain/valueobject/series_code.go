package valueobject

import "fmt"

// SeriesCode identifies a published economic-index series. Codes are opaque
// to the engine; the well-known values below are the SGS identifiers used by
// the central bank API.
type SeriesCode string

// Series published by the Banco Central SGS system.
const (
	SeriesINPC   SeriesCode = "188"   // INPC (IBGE)
	SeriesIGPM   SeriesCode = "189"   // IGP-M (FGV)
	SeriesINCCDI SeriesCode = "192"   // INCC-DI
	SeriesIPCAE  SeriesCode = "10764" // IPCA-E
	SeriesSELIC  SeriesCode = "4390"  // SELIC, monthly accumulated
)

// NewSeriesCode validates and returns a SeriesCode.
func NewSeriesCode(code string) (SeriesCode, error) {
	if code == "" {
		return "", fmt.Errorf("series code must not be empty")
	}
	return SeriesCode(code), nil
}

func (c SeriesCode) String() string { return string(c) }
func (c SeriesCode) IsZero() bool   { return c == "" }
