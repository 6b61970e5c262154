package models

import (
	"time"
)

// Expense is a single recorded spending entry. Records are freestanding:
// there is no owner linkage and no soft delete.
type Expense struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title" gorm:"size:255;not null"`
	Amount    float64   `json:"amount" gorm:"type:decimal(10,2);not null"`
	Category  string    `json:"category" gorm:"size:50;not null"`
	Date      time.Time `json:"date" gorm:"index;not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName sets the table name.
func (Expense) TableName() string {
	return "expenses"
}

// Preferred categories. The UI restricts input to this set; the API and the
// persistence layer accept free text, and unknown values are grouped after
// these in aggregations.
const (
	CategoryFood      = "Food"
	CategoryTransport = "Transport"
	CategoryShopping  = "Shopping"
	CategoryGrocery   = "Grocery"

	// CategoryUncategorized buckets records with an empty category.
	CategoryUncategorized = "Uncategorized"
)

// Categories returns the preferred category set in display order.
func Categories() []string {
	return []string{
		CategoryFood,
		CategoryTransport,
		CategoryShopping,
		CategoryGrocery,
	}
}
