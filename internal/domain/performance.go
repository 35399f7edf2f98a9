package domain

import "time"

// PortfolioSummary aggregates the portfolio at its latest known prices.
type PortfolioSummary struct {
	TotalInvested  float64 `json:"totalInvested"`
	TotalWithdrawn float64 `json:"totalWithdrawn"`
	CurrentValue   float64 `json:"currentValue"`
	TotalGainLoss  float64 `json:"totalGainLoss"`
	ROIPercentage  float64 `json:"roiPercentage"`
	TotalUnits     int64   `json:"totalUnits"`
	HoldingCount   int     `json:"holdingCount"`
}

// EquityPoint is one day on the equity curve: the total portfolio value as
// it stood on that calendar day.
type EquityPoint struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}

// CashFlow is a signed investor cash movement. Buys are negative (money
// out of the investor's pocket), sells positive.
type CashFlow struct {
	Date   time.Time
	Amount float64
}

// PerformanceMetrics is the full return/risk bundle. Pointer fields are nil
// when the underlying statistic is undefined for the data at hand, e.g.
// Sharpe with zero volatility or an XIRR that did not converge.
type PerformanceMetrics struct {
	DailyReturn   float64  `json:"dailyReturn"`
	Volatility    float64  `json:"volatility"`
	MaxDrawdown   float64  `json:"maxDrawdown"`
	SharpeRatio   *float64 `json:"sharpeRatio"`
	NetReturn     float64  `json:"netReturn"`
	UnrealizedROI float64  `json:"unrealizedRoi"`
	TWRAnnualized *float64 `json:"twrAnnualized"`
	MWRAnnualized *float64 `json:"mwrAnnualized"`
	BestDay       *float64 `json:"bestDay"`
	WorstDay      *float64 `json:"worstDay"`
}

type PortfolioPerformance struct {
	Summary PortfolioSummary   `json:"summary"`
	Metrics PerformanceMetrics `json:"metrics"`
	History []EquityPoint      `json:"history"`
}
