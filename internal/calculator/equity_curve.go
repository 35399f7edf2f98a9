package calculator

import (
	"time"

	"fundfolio/internal/domain"
	"fundfolio/internal/util"
)

// BuildEquityCurve reconstructs the portfolio's daily value over the lookback
// window, using the holdings as they stood on each historical day rather than
// projecting current holdings backward.
//
// The full transaction and price history is required, not just the window:
// holdings on any day are the cumulative sum of all unit deltas up to it, and
// valuation forward-fills the most recent known price on or before the day.
// Prices are never interpolated or back-filled. Net holdings are clamped at
// zero before valuing - an oversold fund contributes nothing, never a
// negative value.
//
// Returns an empty series when there are no transactions or no prices at all.
func BuildEquityCurve(txns []domain.Transaction, prices []domain.FundPrice, asOf time.Time, days int) []domain.EquityPoint {
	if len(txns) == 0 || len(prices) == 0 {
		return []domain.EquityPoint{}
	}

	// Signed unit deltas aggregated by (day, fund). Multiple same-day
	// transactions for one fund collapse into a single delta.
	deltas := map[time.Time]map[int32]float64{}
	for _, t := range txns {
		day := util.StripTime(t.Date)
		if _, ok := deltas[day]; !ok {
			deltas[day] = map[int32]float64{}
		}
		deltas[day][t.UnitTrustID] += t.SignedUnits()
	}

	var earliestTxn time.Time
	for day := range deltas {
		if earliestTxn.IsZero() || day.Before(earliestTxn) {
			earliestTxn = day
		}
	}

	// Prices before the first transaction can never contribute value, so
	// they are left off the axis entirely.
	priceOnDay := map[time.Time]map[int32]float64{}
	for _, p := range prices {
		day := util.StripTime(p.Date)
		if day.Before(earliestTxn) {
			continue
		}
		if _, ok := priceOnDay[day]; !ok {
			priceOnDay[day] = map[int32]float64{}
		}
		priceOnDay[day][p.UnitTrustID] = p.Price
	}
	if len(priceOnDay) == 0 {
		return []domain.EquityPoint{}
	}

	axisStart, axisEnd := axisBounds(deltas, priceOnDay, util.StripTime(asOf))

	// Walk the full day axis once, carrying holdings and last-known prices
	// forward. This is the explicit equivalent of a pivot + cumsum + ffill
	// over a date-by-fund grid.
	holdings := map[int32]float64{}
	lastPrice := map[int32]float64{}
	windowStart := util.StripTime(asOf).AddDate(0, 0, -days)

	series := []domain.EquityPoint{}
	for day := axisStart; !day.After(axisEnd); day = day.AddDate(0, 0, 1) {
		for fundID, delta := range deltas[day] {
			holdings[fundID] += delta
		}
		for fundID, price := range priceOnDay[day] {
			lastPrice[fundID] = price
		}

		if day.Before(windowStart) {
			continue
		}

		value := 0.0
		for fundID, units := range holdings {
			price, ok := lastPrice[fundID]
			if !ok || units <= 0 {
				continue
			}
			value += units * price
		}
		series = append(series, domain.EquityPoint{Date: day, Value: value})
	}

	return series
}

func axisBounds(deltas map[time.Time]map[int32]float64, prices map[time.Time]map[int32]float64, asOf time.Time) (time.Time, time.Time) {
	var start, end time.Time
	observe := func(day time.Time) {
		if start.IsZero() || day.Before(start) {
			start = day
		}
		if end.IsZero() || day.After(end) {
			end = day
		}
	}
	for day := range deltas {
		observe(day)
	}
	for day := range prices {
		observe(day)
	}
	observe(asOf)
	return start, end
}
