package api

import (
	"errors"
	"net/http"
	"strconv"

	"expense-tracker/database"
	"expense-tracker/models"
	"expense-tracker/repository"

	"github.com/gin-gonic/gin"
)

// ExpenseHandler serves the expense CRUD endpoints.
type ExpenseHandler struct {
	repo *repository.ExpenseRepository
}

// NewExpenseHandler creates an expense handler backed by the shared database.
func NewExpenseHandler() *ExpenseHandler {
	return &ExpenseHandler{repo: repository.NewExpenseRepository(database.GetDB())}
}

// CreateExpenseRequest is the create payload. All four fields are required;
// the repository validates them and produces the field-level messages.
type CreateExpenseRequest struct {
	Title    string  `json:"title" example:"Coffee"`
	Amount   float64 `json:"amount" example:"4.5"`
	Category string  `json:"category" example:"Food"`
	Date     string  `json:"date" example:"2024-01-10"`
}

// UpdateExpenseRequest is the partial update payload. Absent fields are left
// unchanged, which is why every field is a pointer.
type UpdateExpenseRequest struct {
	Title    *string  `json:"title" example:"Coffee"`
	Amount   *float64 `json:"amount" example:"4.5"`
	Category *string  `json:"category" example:"Food"`
	Date     *string  `json:"date" example:"2024-01-10"`
}

// List returns all expenses
// @Summary List expenses
// @Description Returns every expense, most recent first (date, then creation time).
// @Tags expenses
// @Produce json
// @Success 200 {object} Response{data=[]models.Expense} "expense list"
// @Failure 500 {object} Response "backend error"
// @Router /expenses [get]
func (h *ExpenseHandler) List(c *gin.Context) {
	expenses, err := h.repo.List()
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "Failed to fetch expenses"))
		return
	}
	Success(c, expenses)
}

// Create adds a new expense
// @Summary Create expense
// @Description Validates and stores a new expense, returning the stored record with its id and timestamps.
// @Tags expenses
// @Accept json
// @Produce json
// @Param request body CreateExpenseRequest true "expense fields"
// @Success 201 {object} Response{data=models.Expense} "created"
// @Failure 400 {object} Response "validation error"
// @Router /expenses [post]
func (h *ExpenseHandler) Create(c *gin.Context) {
	var req CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body")
		return
	}

	expense, err := h.repo.Create(repository.CreateExpenseInput{
		Title:    req.Title,
		Amount:   req.Amount,
		Category: req.Category,
		Date:     req.Date,
	})
	if err != nil {
		if repository.IsValidation(err) {
			BadRequest(c, err.Error())
			return
		}
		InternalError(c, SafeErrorMessage(err, "Failed to create expense"))
		return
	}

	Created(c, expense)
}

// Get returns a single expense
// @Summary Get expense
// @Tags expenses
// @Produce json
// @Param id path int true "expense id"
// @Success 200 {object} Response{data=models.Expense} "expense"
// @Failure 404 {object} Response "not found"
// @Router /expenses/{id} [get]
func (h *ExpenseHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	expense, err := h.repo.Get(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "Expense not found")
			return
		}
		InternalError(c, SafeErrorMessage(err, "Failed to fetch expense"))
		return
	}

	Success(c, expense)
}

// Update applies a partial update
// @Summary Update expense
// @Description Updates only the supplied fields, re-validating each one, and returns the full post-update record.
// @Tags expenses
// @Accept json
// @Produce json
// @Param id path int true "expense id"
// @Param request body UpdateExpenseRequest true "fields to change"
// @Success 200 {object} map[string]interface{} "message and updated expense"
// @Failure 400 {object} Response "validation error"
// @Failure 404 {object} Response "not found"
// @Router /expenses/{id} [put]
func (h *ExpenseHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body")
		return
	}

	expense, err := h.repo.Update(id, repository.UpdateExpenseInput{
		Title:    req.Title,
		Amount:   req.Amount,
		Category: req.Category,
		Date:     req.Date,
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			NotFound(c, "Expense not found")
		case repository.IsValidation(err):
			BadRequest(c, err.Error())
		default:
			InternalError(c, SafeErrorMessage(err, "Failed to update expense"))
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "updated",
		"expense": expense,
	})
}

// Delete removes an expense permanently
// @Summary Delete expense
// @Tags expenses
// @Produce json
// @Param id path int true "expense id"
// @Success 200 {object} map[string]interface{} "deleted"
// @Failure 404 {object} Response "not found"
// @Router /expenses/{id} [delete]
func (h *ExpenseHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if _, err := h.repo.Delete(id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "Expense not found")
			return
		}
		InternalError(c, SafeErrorMessage(err, "Failed to delete expense"))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "deleted",
	})
}

// GetCategories returns the preferred category set
// @Summary List categories
// @Description Returns the preferred category set the UI offers. The API itself accepts free-text categories.
// @Tags expenses
// @Produce json
// @Success 200 {object} Response{data=[]string} "categories"
// @Router /categories [get]
func (h *ExpenseHandler) GetCategories(c *gin.Context) {
	Success(c, models.Categories())
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "Invalid id")
		return 0, false
	}
	return uint(id), true
}
