// Package apperrors defines the typed error kinds shared across the
// settlement computation: data that could not be obtained and configurations
// that are rejected before any installment is processed. Degenerate date
// intervals are deliberately not errors; compounding treats them as neutral.
package apperrors

import (
	"fmt"
	"time"
)

// SeriesUnavailableError reports that an index or rate series could not be
// resolved for a required date range. It aborts the whole schedule
// computation; partial results are never surfaced as final.
type SeriesUnavailableError struct {
	Series string
	Start  time.Time
	End    time.Time
	// InstallmentDue is the due date of the installment whose correction
	// needed the range. Zero when the failure happened during prefetch,
	// before any installment was attributable.
	InstallmentDue time.Time
	Cause          error
}

func (e *SeriesUnavailableError) Error() string {
	msg := fmt.Sprintf("series %s unavailable for range %s to %s",
		e.Series, e.Start.Format("2006-01-02"), e.End.Format("2006-01-02"))
	if !e.InstallmentDue.IsZero() {
		msg = fmt.Sprintf("%s (installment due %s)", msg, e.InstallmentDue.Format("2006-01-02"))
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *SeriesUnavailableError) Unwrap() error { return e.Cause }

// InvalidConfigurationError reports a computation request that is rejected
// up front, e.g. a hybrid cutover date conflicting with the schedule bounds.
type InvalidConfigurationError struct {
	Reason string
}

func (e *InvalidConfigurationError) Error() string {
	return "invalid configuration: " + e.Reason
}
