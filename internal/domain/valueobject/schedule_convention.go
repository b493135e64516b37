package valueobject

import "fmt"

// ScheduleConvention selects how a debt period is expanded into installments.
// The two conventions deliberately differ on partial periods: they encode
// distinct legal stipulations, not two roundings of the same rule.
type ScheduleConvention string

const (
	// ConventionFixedCycle steps in whole one-month cycles from the period
	// start. A truncated final cycle still owes the full periodic amount;
	// only its due date is clipped. Used for flat monthly sums stipulated
	// payable in full even for a partial final month.
	ConventionFixedCycle ScheduleConvention = "FIXED_CYCLE"
	// ConventionCalendarMonth emits one installment per calendar month
	// overlapped by the period, pro-rated by active days over civil days
	// in the month.
	ConventionCalendarMonth ScheduleConvention = "CALENDAR_MONTH"
)

// ParseScheduleConvention converts a string into a ScheduleConvention.
func ParseScheduleConvention(s string) (ScheduleConvention, error) {
	switch ScheduleConvention(s) {
	case ConventionFixedCycle, ConventionCalendarMonth:
		return ScheduleConvention(s), nil
	default:
		return "", fmt.Errorf("unknown schedule convention %q", s)
	}
}

func (c ScheduleConvention) String() string { return string(c) }
