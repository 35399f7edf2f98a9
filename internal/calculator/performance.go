package calculator

import (
	"time"

	"fundfolio/internal/domain"
	"fundfolio/internal/util"
)

// ComputePerformance composes the summary, equity curve, and metrics bundle
// from one immutable snapshot of the transaction and price logs. Everything
// is re-derived from the full logs on every call; there is no cached state
// that could drift from the data.
func ComputePerformance(txns []domain.Transaction, prices []domain.FundPrice, asOf time.Time, days int, riskFreeRate float64) domain.PortfolioPerformance {
	summary := ComputeSummary(txns, LatestPrices(prices))
	history := BuildEquityCurve(txns, prices, asOf, days)

	transactionDates := make([]time.Time, 0, len(txns))
	cashFlows := make([]domain.CashFlow, 0, len(txns))
	for _, t := range txns {
		day := util.StripTime(t.Date)
		transactionDates = append(transactionDates, day)
		amount := t.Amount()
		if t.Type == domain.TransactionType_Buy {
			amount = -amount
		}
		cashFlows = append(cashFlows, domain.CashFlow{Date: day, Amount: amount})
	}

	costBasis, _ := FIFOCostBasis(txns)

	metrics := ComputeMetrics(MetricsInput{
		History:          history,
		TransactionDates: transactionDates,
		CashFlows:        cashFlows,
		TotalInvested:    summary.TotalInvested,
		TotalWithdrawn:   summary.TotalWithdrawn,
		CurrentValue:     summary.CurrentValue,
		CostBasis:        costBasis.InexactFloat64(),
		RiskFreeRate:     riskFreeRate,
		AsOf:             asOf,
	})

	return domain.PortfolioPerformance{
		Summary: summary,
		Metrics: metrics,
		History: history,
	}
}
