package models

import (
	"strings"
	"time"
)

// Validation rules shared by create and update. The same rules run in the
// frontend for immediate feedback, but the server is the authority.

// Accepted date layouts, tried in order.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ValidateTitle trims the title and requires at least 3 characters.
// Returns the normalized title.
func ValidateTitle(title string) (string, string) {
	title = strings.TrimSpace(title)
	if len(title) < 3 {
		return "", "Title must be at least 3 characters."
	}
	return title, ""
}

// ValidateAmount requires a value strictly greater than 0.
func ValidateAmount(amount float64) string {
	if !(amount > 0) {
		return "Amount must be a number greater than 0."
	}
	return ""
}

// ValidateCategory requires a non-empty category. The value itself is not
// constrained to the preferred set.
func ValidateCategory(category string) (string, string) {
	category = strings.TrimSpace(category)
	if category == "" {
		return "", "Category is required."
	}
	return category, ""
}

// ParseDate parses a date string against the accepted layouts.
func ParseDate(value string) (time.Time, string) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, "Date must be valid."
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, ""
		}
	}
	return time.Time{}, "Date must be valid."
}
