package valueobject

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ReferenceMonth identifies the calendar month a published index variation
// refers to. Monthly series from the central bank are dated on day 01 of the
// reference month.
type ReferenceMonth struct {
	year  int
	month time.Month
}

// NewReferenceMonth creates a ReferenceMonth after validating its bounds.
func NewReferenceMonth(year int, month time.Month) (ReferenceMonth, error) {
	if year < 1900 || year > 2200 {
		return ReferenceMonth{}, fmt.Errorf("invalid reference year %d", year)
	}
	if month < time.January || month > time.December {
		return ReferenceMonth{}, fmt.Errorf("invalid reference month %d", month)
	}
	return ReferenceMonth{year: year, month: month}, nil
}

// ReferenceMonthOf returns the ReferenceMonth containing the given date.
func ReferenceMonthOf(t time.Time) ReferenceMonth {
	return ReferenceMonth{year: t.Year(), month: t.Month()}
}

// ParseReferenceMonth parses the "MM/YYYY" form used in report columns.
func ParseReferenceMonth(s string) (ReferenceMonth, error) {
	parts := strings.Split(s, "/")
	if len(parts) != 2 {
		return ReferenceMonth{}, fmt.Errorf("invalid reference month %q: want MM/YYYY", s)
	}
	m, err := strconv.Atoi(parts[0])
	if err != nil {
		return ReferenceMonth{}, fmt.Errorf("invalid reference month %q: %w", s, err)
	}
	y, err := strconv.Atoi(parts[1])
	if err != nil {
		return ReferenceMonth{}, fmt.Errorf("invalid reference month %q: %w", s, err)
	}
	return NewReferenceMonth(y, time.Month(m))
}

func (rm ReferenceMonth) Year() int         { return rm.year }
func (rm ReferenceMonth) Month() time.Month { return rm.month }
func (rm ReferenceMonth) IsZero() bool      { return rm.year == 0 }

// FirstDay returns midnight UTC on day 01 of the reference month.
func (rm ReferenceMonth) FirstDay() time.Time {
	return time.Date(rm.year, rm.month, 1, 0, 0, 0, 0, time.UTC)
}

// LastDay returns midnight UTC on the final day of the reference month.
func (rm ReferenceMonth) LastDay() time.Time {
	return rm.FirstDay().AddDate(0, 1, -1)
}

// Days returns the number of civil-calendar days in the month.
func (rm ReferenceMonth) Days() int {
	return rm.LastDay().Day()
}

// Next returns the following calendar month.
func (rm ReferenceMonth) Next() ReferenceMonth {
	if rm.month == time.December {
		return ReferenceMonth{year: rm.year + 1, month: time.January}
	}
	return ReferenceMonth{year: rm.year, month: rm.month + 1}
}

// Before reports whether rm precedes other.
func (rm ReferenceMonth) Before(other ReferenceMonth) bool {
	if rm.year != other.year {
		return rm.year < other.year
	}
	return rm.month < other.month
}

// After reports whether rm follows other.
func (rm ReferenceMonth) After(other ReferenceMonth) bool {
	return other.Before(rm)
}

// Contains reports whether the given date falls inside the month.
func (rm ReferenceMonth) Contains(t time.Time) bool {
	return t.Year() == rm.year && t.Month() == rm.month
}

// String formats the month as "MM/YYYY", the form used in report columns.
func (rm ReferenceMonth) String() string {
	return fmt.Sprintf("%02d/%d", rm.month, rm.year)
}

// MarshalJSON encodes the month in its "MM/YYYY" form.
func (rm ReferenceMonth) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(rm.String())), nil
}

// UnmarshalJSON decodes the "MM/YYYY" form.
func (rm *ReferenceMonth) UnmarshalJSON(data []byte) error {
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return fmt.Errorf("invalid reference month json: %w", err)
	}
	parsed, err := ParseReferenceMonth(s)
	if err != nil {
		return err
	}
	*rm = parsed
	return nil
}
