package api

import (
	"testing"
	"time"

	"expense-tracker/database"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupMockDB(t *testing.T) (sqlmock.Sqlmock, func()) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	oldDB := database.DB
	database.DB = gormDB
	return mock, func() {
		database.DB = oldDB
		sqlDB.Close()
	}
}

func expenseColumns() []string {
	return []string{"id", "title", "amount", "category", "date", "created_at", "updated_at"}
}

func sampleExpenseRows(ts time.Time) *sqlmock.Rows {
	return sqlmock.NewRows(expenseColumns()).
		AddRow(1, "Coffee", 4.5, "Food", ts, ts, ts).
		AddRow(2, "Bus ticket", 2.0, "Transport", ts, ts, ts)
}
