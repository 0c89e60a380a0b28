package domain

import "fmt"

// ItemCategory classifies a priced line on a quote.
// The calculator switches exhaustively over this set; adding a category
// means touching Total() and the category list together.
type ItemCategory string

const (
	// CategoryFood is food and beverage service.
	CategoryFood ItemCategory = "food"

	// CategoryLabor is staffed time (servers, bartenders, chefs).
	// Labor lines may carry an hours multiplier.
	CategoryLabor ItemCategory = "labor"

	// CategoryEquipment is rented or provided equipment.
	CategoryEquipment ItemCategory = "equipment"
)

// ItemCategories returns all valid line item categories.
func ItemCategories() []ItemCategory {
	return []ItemCategory{CategoryFood, CategoryLabor, CategoryEquipment}
}

// Valid reports whether the category is a known member of the set.
func (c ItemCategory) Valid() bool {
	switch c {
	case CategoryFood, CategoryLabor, CategoryEquipment:
		return true
	}

	return false
}

// LineItem is one priced row on a quote.
// Its total is always derived via Total(); it is never stored or edited
// independently of quantity, unit price, and hours.
type LineItem struct {
	// ID is the unique identifier for this line.
	ID string

	// Category determines the total formula.
	Category ItemCategory

	// Description is the staff-facing text for the line.
	Description string

	// Quantity is the unit count. Must be non-negative.
	Quantity float64

	// UnitPrice is the price per unit. Must be non-negative.
	UnitPrice float64

	// Hours is the time multiplier for labor lines. Nil for untimed
	// lines; labor without hours falls back to the plain formula.
	Hours *float64

	// Taxable marks the line as part of the taxable base.
	Taxable bool
}

// Validate checks the line item's fields against business rules.
// Negative amounts are rejected, never clamped.
func (li LineItem) Validate() error {
	if !li.Category.Valid() {
		return NewValidationErrorWithValue("category", "unknown line item category", string(li.Category))
	}

	if li.Quantity < 0 {
		return NewValidationErrorWithValue("quantity", "must not be negative", li.Quantity)
	}

	if li.UnitPrice < 0 {
		return NewValidationErrorWithValue("unitPrice", "must not be negative", li.UnitPrice)
	}

	if li.Hours != nil {
		if li.Category != CategoryLabor {
			return NewValidationError("hours", fmt.Sprintf("only labor lines carry hours, not %s", li.Category))
		}

		if *li.Hours < 0 {
			return NewValidationErrorWithValue("hours", "must not be negative", *li.Hours)
		}
	}

	return nil
}

// Total computes the line total from its fields.
// Labor lines with hours set multiply quantity, unit price, and hours;
// every other line is quantity times unit price. Callers must re-invoke
// this after any field edit rather than caching the result.
func (li LineItem) Total() float64 {
	switch li.Category {
	case CategoryLabor:
		if li.Hours != nil {
			return li.Quantity * li.UnitPrice * *li.Hours
		}

		return li.Quantity * li.UnitPrice

	case CategoryFood, CategoryEquipment:
		return li.Quantity * li.UnitPrice
	}

	// Unknown categories are rejected by Validate before totals matter.
	return li.Quantity * li.UnitPrice
}
