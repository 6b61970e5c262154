package api

import (
	"bytes"
	"net/http"

	"expense-tracker/database"
	"expense-tracker/repository"
	"expense-tracker/stats"

	"github.com/gin-gonic/gin"
	chart "github.com/wcharczuk/go-chart/v2"
)

// StatisticsHandler serves aggregate totals and the category chart.
type StatisticsHandler struct {
	repo *repository.ExpenseRepository
}

// NewStatisticsHandler creates a statistics handler backed by the shared database.
func NewStatisticsHandler() *StatisticsHandler {
	return &StatisticsHandler{repo: repository.NewExpenseRepository(database.GetDB())}
}

// CategoryStat is one breakdown row with its share of the total.
type CategoryStat struct {
	Category   string  `json:"category"`
	Total      float64 `json:"total"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// GetStatistics returns totals and a category breakdown
// @Summary Expense statistics
// @Description Returns the total amount, record count and per-category breakdown, optionally restricted to one category ("All" selects everything).
// @Tags statistics
// @Produce json
// @Param category query string false "category filter" default(All)
// @Success 200 {object} Response "totals and category breakdown"
// @Failure 500 {object} Response "backend error"
// @Router /expenses/statistics [get]
func (h *StatisticsHandler) GetStatistics(c *gin.Context) {
	expenses, err := h.repo.List()
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "Failed to fetch expenses"))
		return
	}

	filtered := stats.FilterByCategory(expenses, c.Query("category"))
	totalAmount := stats.TotalAmount(filtered)

	breakdown := stats.TotalsByCategory(filtered)
	categoryStats := make([]CategoryStat, 0, len(breakdown))
	for _, row := range breakdown {
		stat := CategoryStat{
			Category: row.Category,
			Total:    row.Total,
			Count:    row.Count,
		}
		if totalAmount > 0 {
			stat.Percentage = row.Total / totalAmount * 100
		}
		categoryStats = append(categoryStats, stat)
	}

	Success(c, gin.H{
		"total_amount":   totalAmount,
		"total_count":    stats.Count(filtered),
		"category_stats": categoryStats,
	})
}

// GetChart renders the category breakdown as a PNG bar chart
// @Summary Category chart
// @Description Renders a bar chart of spending per category. Responds 204 when there is nothing to draw.
// @Tags statistics
// @Produce png
// @Success 200 {file} file "PNG chart"
// @Success 204 "no data"
// @Failure 500 {object} Response "backend error"
// @Router /expenses/chart [get]
func (h *StatisticsHandler) GetChart(c *gin.Context) {
	expenses, err := h.repo.List()
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "Failed to fetch expenses"))
		return
	}

	breakdown := stats.TotalsByCategory(expenses)
	bars := make([]chart.Value, 0, len(breakdown))
	for _, row := range breakdown {
		if row.Total > 0 {
			bars = append(bars, chart.Value{Value: row.Total, Label: row.Category})
		}
	}
	if len(bars) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	graph := chart.BarChart{
		Title:    "Spending by Category",
		Width:    800,
		Height:   400,
		BarWidth: 60,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20},
		},
		Bars: bars,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		InternalError(c, SafeErrorMessage(err, "Failed to render chart"))
		return
	}

	c.Data(http.StatusOK, "image/png", buf.Bytes())
}
