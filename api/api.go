package api

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"fundfolio/internal/calculator"
	"fundfolio/internal/logger"
	"fundfolio/internal/repository"
	"fundfolio/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ApiHandler struct {
	Db                    *sql.DB
	UnitTrustRepository   repository.UnitTrustRepository
	PriceRepository       repository.PriceRepository
	TransactionRepository repository.TransactionRepository
	PerformanceService    service.PerformanceService
	PriceFetchService     service.PriceFetchService
	FixedDepositService   service.FixedDepositService
	NotificationService   service.NotificationService
}

func (m ApiHandler) Router() *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())
	router.Use(requestLogMiddleware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to fundfolio"})
	})

	router.GET("/portfolio/summary", m.portfolioSummary)
	router.GET("/portfolio/history", m.portfolioHistory)
	router.GET("/portfolio/metrics", m.portfolioMetrics)
	router.GET("/portfolio/performance", m.portfolioPerformance)

	router.POST("/unitTrusts", m.createUnitTrust)
	router.GET("/unitTrusts", m.listUnitTrusts)
	router.GET("/unitTrusts/:id", m.getUnitTrust)
	router.PATCH("/unitTrusts/:id", m.updateUnitTrust)
	router.DELETE("/unitTrusts/:id", m.deleteUnitTrust)

	router.POST("/prices", m.createPrice)
	router.GET("/prices", m.listPrices)
	router.PATCH("/prices/:id", m.updatePrice)
	router.DELETE("/prices/:id", m.deletePrice)
	router.POST("/prices/fetch", m.fetchPrices)

	router.POST("/transactions", m.createTransaction)
	router.GET("/transactions", m.listTransactions)
	router.PATCH("/transactions/:id", m.updateTransaction)
	router.DELETE("/transactions/:id", m.deleteTransaction)

	router.POST("/fixedDeposits", m.createFixedDeposit)
	router.GET("/fixedDeposits", m.listFixedDeposits)
	router.GET("/fixedDeposits/:id", m.getFixedDeposit)
	router.PATCH("/fixedDeposits/:id", m.updateFixedDeposit)
	router.DELETE("/fixedDeposits/:id", m.deleteFixedDeposit)
	router.POST("/fixedDeposits/calculateInterest", m.calculateInterest)

	router.GET("/notifications/settings", m.getNotificationSettings)
	router.PUT("/notifications/settings", m.updateNotificationSettings)
	router.POST("/notifications/generate", m.generateNotifications)
	router.GET("/notifications", m.listPendingNotifications)
	router.PATCH("/notifications/:id/display", m.displayNotification)
	router.POST("/notifications/dismiss", m.dismissNotifications)

	return router
}

func (m ApiHandler) StartApi(port int) error {
	return m.Router().Run(fmt.Sprintf(":%d", port))
}

func returnErrorJson(err error, c *gin.Context) {
	if errors.Is(err, repository.ErrNotFound) {
		returnErrorJsonCode(err, c, 404)
		return
	}
	logger.FromContext(c.Request.Context()).Error(err.Error())
	c.AbortWithStatusJSON(500, gin.H{
		"error": err.Error(),
	})
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	logger.FromContext(c.Request.Context()).Warn(err.Error())
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

func requestLogMiddleware(ctx *gin.Context) {
	requestID := uuid.NewString()
	log := logger.New().With("requestId", requestID)
	ctx.Request = ctx.Request.WithContext(context.WithValue(ctx.Request.Context(), logger.ContextKey, log))
	ctx.Header("X-Request-Id", requestID)

	start := time.Now().UTC()
	ctx.Next()

	log.Infow("handled request",
		"method", ctx.Request.Method,
		"route", ctx.Request.URL.Path,
		"status", ctx.Writer.Status(),
		"durationMs", time.Since(start).Milliseconds(),
	)
}

const (
	defaultLookbackDays = 365
	maxLookbackDays     = 3650
)

// daysParam reads the lookback window query param, bounded to keep a typo
// from asking the engine for a millennium of daily points.
func daysParam(c *gin.Context) (int, error) {
	raw := c.DefaultQuery("days", strconv.Itoa(defaultLookbackDays))
	days, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid days param %q", raw)
	}
	if days < 1 || days > maxLookbackDays {
		return 0, fmt.Errorf("days param must be between 1 and %d", maxLookbackDays)
	}
	return days, nil
}

func riskFreeRateParam(c *gin.Context) (float64, error) {
	raw := c.Query("riskFreeRate")
	if raw == "" {
		return calculator.DefaultRiskFreeRate, nil
	}
	rate, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid riskFreeRate param %q", raw)
	}
	return rate, nil
}

func idParam(c *gin.Context) (int32, error) {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return int32(id), nil
}
