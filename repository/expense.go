package repository

import (
	"errors"
	"fmt"

	"expense-tracker/models"

	"gorm.io/gorm"
)

// ExpenseRepository performs validated CRUD on the expenses table. All
// validation runs here, before any write, so the API layer cannot bypass it.
type ExpenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates an expense repository.
func NewExpenseRepository(db *gorm.DB) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

// CreateExpenseInput carries the fields for a new expense. Date is the raw
// string from the request and is parsed against the accepted layouts.
type CreateExpenseInput struct {
	Title    string
	Amount   float64
	Category string
	Date     string
}

// UpdateExpenseInput carries a partial update. Nil fields are left unchanged.
type UpdateExpenseInput struct {
	Title    *string
	Amount   *float64
	Category *string
	Date     *string
}

// List returns all expenses, most recent first (date, then creation time).
func (r *ExpenseRepository) List() ([]models.Expense, error) {
	// Non-nil so an empty table serializes as [] rather than null.
	expenses := make([]models.Expense, 0)
	if err := r.db.Order("date DESC, created_at DESC").Find(&expenses).Error; err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	return expenses, nil
}

// Get returns a single expense by id.
func (r *ExpenseRepository) Get(id uint) (*models.Expense, error) {
	var expense models.Expense
	if err := r.db.First(&expense, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get expense: %w", err)
	}
	return &expense, nil
}

// Create validates every field and persists a new expense. The stored record
// including the generated id and timestamps is returned.
func (r *ExpenseRepository) Create(in CreateExpenseInput) (*models.Expense, error) {
	title, msg := models.ValidateTitle(in.Title)
	if msg != "" {
		return nil, &ValidationError{Field: "title", Message: msg}
	}
	if msg := models.ValidateAmount(in.Amount); msg != "" {
		return nil, &ValidationError{Field: "amount", Message: msg}
	}
	category, msg := models.ValidateCategory(in.Category)
	if msg != "" {
		return nil, &ValidationError{Field: "category", Message: msg}
	}
	date, msg := models.ParseDate(in.Date)
	if msg != "" {
		return nil, &ValidationError{Field: "date", Message: msg}
	}

	expense := models.Expense{
		Title:    title,
		Amount:   in.Amount,
		Category: category,
		Date:     date,
	}
	if err := r.db.Create(&expense).Error; err != nil {
		return nil, fmt.Errorf("create expense: %w", err)
	}
	return &expense, nil
}

// Update applies a partial update. Supplied fields are validated with the
// same rules as Create; absent fields keep their prior values. The full
// post-update record is returned.
func (r *ExpenseRepository) Update(id uint, in UpdateExpenseInput) (*models.Expense, error) {
	expense, err := r.Get(id)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if in.Title != nil {
		title, msg := models.ValidateTitle(*in.Title)
		if msg != "" {
			return nil, &ValidationError{Field: "title", Message: msg}
		}
		updates["title"] = title
	}
	if in.Amount != nil {
		if msg := models.ValidateAmount(*in.Amount); msg != "" {
			return nil, &ValidationError{Field: "amount", Message: msg}
		}
		updates["amount"] = *in.Amount
	}
	if in.Category != nil {
		category, msg := models.ValidateCategory(*in.Category)
		if msg != "" {
			return nil, &ValidationError{Field: "category", Message: msg}
		}
		updates["category"] = category
	}
	if in.Date != nil {
		date, msg := models.ParseDate(*in.Date)
		if msg != "" {
			return nil, &ValidationError{Field: "date", Message: msg}
		}
		updates["date"] = date
	}

	if len(updates) > 0 {
		if err := r.db.Model(expense).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("update expense: %w", err)
		}
	}

	// Re-read so the returned record carries the refreshed updated_at.
	return r.Get(id)
}

// Delete removes an expense permanently and returns its last snapshot.
func (r *ExpenseRepository) Delete(id uint) (*models.Expense, error) {
	expense, err := r.Get(id)
	if err != nil {
		return nil, err
	}
	if err := r.db.Delete(expense).Error; err != nil {
		return nil, fmt.Errorf("delete expense: %w", err)
	}
	return expense, nil
}
