package model

import "strings"

// Category is one of the fixed budget and expense classification labels.
type Category string

const (
	CategoryFood          Category = "Food & Dining"
	CategoryTransport     Category = "Transportation"
	CategoryBooks         Category = "Books & Supplies"
	CategoryEntertainment Category = "Entertainment"
	CategoryHealth        Category = "Health & Wellness"
	CategoryClothing      Category = "Clothing"
	CategoryUtilities     Category = "Utilities"
	CategoryOther         Category = "Other"
)

// Categories lists every category in display order.
var Categories = []Category{
	CategoryFood,
	CategoryTransport,
	CategoryBooks,
	CategoryEntertainment,
	CategoryHealth,
	CategoryClothing,
	CategoryUtilities,
	CategoryOther,
}

// ParseCategory resolves a label to a Category. An exact match wins, then a
// case-insensitive one.
func ParseCategory(label string) (Category, bool) {
	label = strings.TrimSpace(label)
	for _, c := range Categories {
		if string(c) == label {
			return c, true
		}
	}
	for _, c := range Categories {
		if strings.EqualFold(string(c), label) {
			return c, true
		}
	}
	return "", false
}

// Valid reports whether c belongs to the fixed category set.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}
