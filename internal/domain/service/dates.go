// Package service holds the stateless calculation engines: compounding,
// interest accrual, schedule expansion, per-installment regime dispatch,
// ledger reconciliation and final aggregation.
package service

import "time"

// dateOnly truncates a timestamp to midnight UTC. All engine arithmetic
// works on civil dates; wall-clock time and zone offsets never change a
// day count.
func dateOnly(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// daysBetween counts whole days from a to b on truncated dates. Negative
// when b precedes a.
func daysBetween(a, b time.Time) int {
	return int(dateOnly(b).Sub(dateOnly(a)).Hours() / 24)
}

func maxDate(a, b time.Time) time.Time {
	if b.After(a) {
		return b
	}
	return a
}

func minDate(a, b time.Time) time.Time {
	if b.Before(a) {
		return b
	}
	return a
}
