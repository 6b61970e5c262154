// Package stats derives read-only view-model values (filtering, totals,
// category breakdowns) from an expense list. Every function is pure and
// order-preserving so the results can be tested without a database or UI.
package stats

import (
	"math"

	"expense-tracker/models"
)

// FilterAll is the filter value that selects every category.
const FilterAll = "All"

// CategoryTotal is one row of a category breakdown.
type CategoryTotal struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
	Count    int     `json:"count"`
}

// FilterByCategory returns the expenses matching the category, preserving
// order. FilterAll (or empty) returns the list unchanged.
func FilterByCategory(list []models.Expense, category string) []models.Expense {
	if category == "" || category == FilterAll {
		return list
	}
	filtered := make([]models.Expense, 0, len(list))
	for _, e := range list {
		if e.Category == category {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

// TotalAmount sums the amounts. An empty list sums to 0, and NaN amounts
// count as 0 so one bad record cannot poison the total.
func TotalAmount(list []models.Expense) float64 {
	var total float64
	for _, e := range list {
		total += safeAmount(e.Amount)
	}
	return total
}

// Count returns the number of expenses.
func Count(list []models.Expense) int {
	return len(list)
}

// TotalsByCategory groups amounts by category. The preferred categories come
// first in their fixed order, then any other categories in first-seen order.
// An empty category is bucketed as Uncategorized.
func TotalsByCategory(list []models.Expense) []CategoryTotal {
	preferred := models.Categories()

	totals := make(map[string]*CategoryTotal)
	order := make([]string, 0, len(preferred))
	for _, name := range preferred {
		totals[name] = &CategoryTotal{Category: name}
		order = append(order, name)
	}

	for _, e := range list {
		name := e.Category
		if name == "" {
			name = models.CategoryUncategorized
		}
		row, ok := totals[name]
		if !ok {
			row = &CategoryTotal{Category: name}
			totals[name] = row
			order = append(order, name)
		}
		row.Total += safeAmount(e.Amount)
		row.Count++
	}

	result := make([]CategoryTotal, 0, len(order))
	for _, name := range order {
		if row := totals[name]; row.Count > 0 {
			result = append(result, *row)
		}
	}
	return result
}

func safeAmount(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return v
}
