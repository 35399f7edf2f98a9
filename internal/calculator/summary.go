package calculator

import (
	"fundfolio/internal/domain"
)

// ComputeSummary aggregates the transaction log against the latest known
// price per fund. Funds whose net units are zero or negative are excluded
// from the holding count and current value. A held fund with no price at all
// contributes nothing to the current value rather than erroring.
func ComputeSummary(txns []domain.Transaction, latestPrices map[int32]float64) domain.PortfolioSummary {
	totalInvested := 0.0
	totalWithdrawn := 0.0
	netUnits := map[int32]float64{}

	for _, t := range txns {
		switch t.Type {
		case domain.TransactionType_Buy:
			totalInvested += t.Amount()
		case domain.TransactionType_Sell:
			totalWithdrawn += t.Amount()
		}
		netUnits[t.UnitTrustID] += t.SignedUnits()
	}

	holdingCount := 0
	totalUnits := 0.0
	currentValue := 0.0
	for fundID, units := range netUnits {
		if units <= 0 {
			continue
		}
		holdingCount++
		totalUnits += units
		if price, ok := latestPrices[fundID]; ok {
			currentValue += units * price
		}
	}

	totalGainLoss := currentValue + totalWithdrawn - totalInvested
	roiPercentage := 0.0
	if totalInvested > 0 {
		roiPercentage = totalGainLoss / totalInvested * 100
	}

	return domain.PortfolioSummary{
		TotalInvested:  totalInvested,
		TotalWithdrawn: totalWithdrawn,
		CurrentValue:   currentValue,
		TotalGainLoss:  totalGainLoss,
		ROIPercentage:  roiPercentage,
		TotalUnits:     int64(totalUnits),
		HoldingCount:   holdingCount,
	}
}

// LatestPrices reduces a price history to the most recent price per fund.
func LatestPrices(prices []domain.FundPrice) map[int32]float64 {
	latestDate := map[int32]int64{}
	latest := map[int32]float64{}
	for _, p := range prices {
		ts := p.Date.Unix()
		if prev, ok := latestDate[p.UnitTrustID]; !ok || ts >= prev {
			latestDate[p.UnitTrustID] = ts
			latest[p.UnitTrustID] = p.Price
		}
	}
	return latest
}
