package api

import (
	"github.com/gin-gonic/gin"
)

func (m ApiHandler) portfolioSummary(c *gin.Context) {
	summary, err := m.PerformanceService.GetSummary(c.Request.Context())
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	c.JSON(200, summary)
}

func (m ApiHandler) portfolioHistory(c *gin.Context) {
	days, err := daysParam(c)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	history, err := m.PerformanceService.GetHistory(c.Request.Context(), days)
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	c.JSON(200, gin.H{"history": history})
}

func (m ApiHandler) portfolioMetrics(c *gin.Context) {
	days, err := daysParam(c)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	riskFreeRate, err := riskFreeRateParam(c)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	metrics, err := m.PerformanceService.GetMetrics(c.Request.Context(), days, riskFreeRate)
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	c.JSON(200, metrics)
}

func (m ApiHandler) portfolioPerformance(c *gin.Context) {
	days, err := daysParam(c)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	riskFreeRate, err := riskFreeRateParam(c)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	perf, err := m.PerformanceService.GetPerformance(c.Request.Context(), days, riskFreeRate)
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	c.JSON(200, perf)
}
