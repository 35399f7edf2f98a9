package service

import (
	"context"
	"fmt"
	"time"

	"fundfolio/internal/calculator"
	"fundfolio/internal/domain"
	"fundfolio/internal/logger"
	"fundfolio/internal/repository"
	"fundfolio/internal/util"
)

// PerformanceService reconstructs portfolio state from the transaction log
// and price history and runs the analytics pipeline over it.
type PerformanceService interface {
	GetSummary(ctx context.Context) (*domain.PortfolioSummary, error)
	GetHistory(ctx context.Context, days int) ([]domain.EquityPoint, error)
	GetMetrics(ctx context.Context, days int, riskFreeRate float64) (*domain.PerformanceMetrics, error)
	GetPerformance(ctx context.Context, days int, riskFreeRate float64) (*domain.PortfolioPerformance, error)
}

type performanceServiceHandler struct {
	TransactionRepository repository.TransactionRepository
	PriceRepository       repository.PriceRepository
}

func NewPerformanceService(
	transactionRepository repository.TransactionRepository,
	priceRepository repository.PriceRepository,
) PerformanceService {
	return performanceServiceHandler{
		TransactionRepository: transactionRepository,
		PriceRepository:       priceRepository,
	}
}

func (h performanceServiceHandler) loadInputs() ([]domain.Transaction, []domain.FundPrice, error) {
	txns, err := h.TransactionRepository.ListChronological()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load transactions: %w", err)
	}
	prices, err := h.PriceRepository.ListChronological()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load prices: %w", err)
	}
	return txns, prices, nil
}

func (h performanceServiceHandler) GetSummary(ctx context.Context) (*domain.PortfolioSummary, error) {
	txns, prices, err := h.loadInputs()
	if err != nil {
		return nil, err
	}
	summary := calculator.ComputeSummary(txns, calculator.LatestPrices(prices))
	return &summary, nil
}

func (h performanceServiceHandler) GetHistory(ctx context.Context, days int) ([]domain.EquityPoint, error) {
	txns, prices, err := h.loadInputs()
	if err != nil {
		return nil, err
	}
	asOf := util.StripTime(time.Now().UTC())
	return calculator.BuildEquityCurve(txns, prices, asOf, days), nil
}

func (h performanceServiceHandler) GetMetrics(ctx context.Context, days int, riskFreeRate float64) (*domain.PerformanceMetrics, error) {
	perf, err := h.GetPerformance(ctx, days, riskFreeRate)
	if err != nil {
		return nil, err
	}
	return &perf.Metrics, nil
}

func (h performanceServiceHandler) GetPerformance(ctx context.Context, days int, riskFreeRate float64) (*domain.PortfolioPerformance, error) {
	log := logger.FromContext(ctx)

	txns, prices, err := h.loadInputs()
	if err != nil {
		return nil, err
	}

	asOf := util.StripTime(time.Now().UTC())
	perf := calculator.ComputePerformance(txns, prices, asOf, days, riskFreeRate)

	log.Infow("computed portfolio performance",
		"transactions", len(txns),
		"pricePoints", len(prices),
		"historyPoints", len(perf.History),
		"windowDays", days,
	)

	return &perf, nil
}
