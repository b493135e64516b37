package valueobject

import "fmt"

// DebtCategory classifies a debt component for independent subtotalling.
type DebtCategory string

const (
	CategoryIndemnity      DebtCategory = "INDEMNITY"
	CategoryLegalFees      DebtCategory = "LEGAL_FEES"
	CategorySupport        DebtCategory = "SUPPORT"
	CategoryRentAdjustment DebtCategory = "RENT_ADJUSTMENT"
)

// DebtCategories lists every category in its canonical report order.
var DebtCategories = []DebtCategory{
	CategoryIndemnity,
	CategoryLegalFees,
	CategorySupport,
	CategoryRentAdjustment,
}

// ParseDebtCategory converts a string into a DebtCategory.
func ParseDebtCategory(s string) (DebtCategory, error) {
	switch DebtCategory(s) {
	case CategoryIndemnity, CategoryLegalFees, CategorySupport, CategoryRentAdjustment:
		return DebtCategory(s), nil
	default:
		return "", fmt.Errorf("unknown debt category %q", s)
	}
}

func (c DebtCategory) String() string { return string(c) }
