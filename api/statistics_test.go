package api

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStatisticsRouter() *gin.Engine {
	router := gin.New()
	h := NewStatisticsHandler()
	router.GET("/expenses/statistics", h.GetStatistics)
	router.GET("/expenses/chart", h.GetChart)
	return router
}

func TestStatisticsHandler_GetStatistics(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()
	ts := time.Now()

	mock.ExpectQuery("SELECT .* FROM `expenses`").
		WillReturnRows(sqlmock.NewRows(expenseColumns()).
			AddRow(1, "Coffee", 10.0, "Food", ts, ts, ts).
			AddRow(2, "Lunch", 20.0, "Food", ts, ts, ts).
			AddRow(3, "Taxi", 30.0, "Transport", ts, ts, ts))

	w := httptest.NewRecorder()
	newStatisticsRouter().ServeHTTP(w, httptest.NewRequest("GET", "/expenses/statistics", nil))

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])

	data := resp["data"].(map[string]interface{})
	assert.Equal(t, 60.0, data["total_amount"])
	assert.Equal(t, float64(3), data["total_count"])

	statsRows := data["category_stats"].([]interface{})
	require.Len(t, statsRows, 2)

	food := statsRows[0].(map[string]interface{})
	assert.Equal(t, "Food", food["category"])
	assert.Equal(t, 30.0, food["total"])
	assert.InDelta(t, 50.0, food["percentage"], 1e-9)

	transport := statsRows[1].(map[string]interface{})
	assert.Equal(t, "Transport", transport["category"])
	assert.Equal(t, 30.0, transport["total"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStatisticsHandler_GetStatistics_Filtered(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()
	ts := time.Now()

	mock.ExpectQuery("SELECT .* FROM `expenses`").
		WillReturnRows(sqlmock.NewRows(expenseColumns()).
			AddRow(1, "Coffee", 10.0, "Food", ts, ts, ts).
			AddRow(2, "Taxi", 30.0, "Transport", ts, ts, ts))

	w := httptest.NewRecorder()
	newStatisticsRouter().ServeHTTP(w, httptest.NewRequest("GET", "/expenses/statistics?category=Transport", nil))

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	data := resp["data"].(map[string]interface{})
	assert.Equal(t, 30.0, data["total_amount"])
	assert.Equal(t, float64(1), data["total_count"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStatisticsHandler_GetChart(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `expenses`").
		WillReturnRows(sampleExpenseRows(time.Now()))

	w := httptest.NewRecorder()
	newStatisticsRouter().ServeHTTP(w, httptest.NewRequest("GET", "/expenses/chart", nil))

	assert.Equal(t, 200, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.NotEmpty(t, w.Body.Bytes())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStatisticsHandler_GetChart_NoData(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `expenses`").
		WillReturnRows(sqlmock.NewRows(expenseColumns()))

	w := httptest.NewRecorder()
	newStatisticsRouter().ServeHTTP(w, httptest.NewRequest("GET", "/expenses/chart", nil))

	assert.Equal(t, 204, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}
