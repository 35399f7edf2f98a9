package api

import (
	"net/http/httptest"
	"testing"

	"fundfolio/internal/calculator"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func testContext(t *testing.T, target string) *gin.Context {
	t.Helper()
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", target, nil)
	return c
}

func Test_daysParam(t *testing.T) {
	t.Run("defaults to a year", func(t *testing.T) {
		days, err := daysParam(testContext(t, "/portfolio/metrics"))
		require.NoError(t, err)
		require.Equal(t, 365, days)
	})

	t.Run("accepts an explicit window", func(t *testing.T) {
		days, err := daysParam(testContext(t, "/portfolio/metrics?days=90"))
		require.NoError(t, err)
		require.Equal(t, 90, days)
	})

	t.Run("rejects out of range windows", func(t *testing.T) {
		_, err := daysParam(testContext(t, "/portfolio/metrics?days=0"))
		require.Error(t, err)

		_, err = daysParam(testContext(t, "/portfolio/metrics?days=99999"))
		require.Error(t, err)

		_, err = daysParam(testContext(t, "/portfolio/metrics?days=soon"))
		require.Error(t, err)
	})
}

func Test_riskFreeRateParam(t *testing.T) {
	t.Run("defaults when absent", func(t *testing.T) {
		rate, err := riskFreeRateParam(testContext(t, "/portfolio/metrics"))
		require.NoError(t, err)
		require.Equal(t, calculator.DefaultRiskFreeRate, rate)
	})

	t.Run("parses an explicit rate", func(t *testing.T) {
		rate, err := riskFreeRateParam(testContext(t, "/portfolio/metrics?riskFreeRate=0.04"))
		require.NoError(t, err)
		require.Equal(t, 0.04, rate)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := riskFreeRateParam(testContext(t, "/portfolio/metrics?riskFreeRate=low"))
		require.Error(t, err)
	})
}

func Test_parseDate(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		d, err := parseDate("2025-03-10")
		require.NoError(t, err)
		require.Equal(t, 2025, d.Year())
	})

	t.Run("rejects other layouts", func(t *testing.T) {
		_, err := parseDate("10/03/2025")
		require.ErrorContains(t, err, "expected YYYY-MM-DD")
	})
}
