package calculator

import (
	"math"
	"sort"
	"time"

	"fundfolio/internal/domain"
	"fundfolio/internal/util"

	"github.com/montanaflynn/stats"
)

const (
	DefaultRiskFreeRate = 0.02
	tradingDaysPerYear  = 252
)

type MetricsInput struct {
	History          []domain.EquityPoint
	TransactionDates []time.Time
	CashFlows        []domain.CashFlow
	TotalInvested    float64
	TotalWithdrawn   float64
	CurrentValue     float64
	CostBasis        float64
	RiskFreeRate     float64

	// AsOf dates the synthetic liquidation cash flow for the IRR. It is an
	// explicit parameter so identical inputs always produce identical output.
	AsOf time.Time
}

// ComputeMetrics derives the return/risk bundle from the equity curve and
// cash-flow data. Data sparsity is not an error here: fewer than two
// positive-value curve points, zero denominators, and solver
// non-convergence all degrade to zero or nil fields. A brand-new portfolio
// has no meaningful volatility, and that is data, not failure.
func ComputeMetrics(in MetricsInput) domain.PerformanceMetrics {
	netReturn := 0.0
	if in.TotalInvested > 0 {
		netReturn = (in.CurrentValue + in.TotalWithdrawn - in.TotalInvested) / in.TotalInvested
	}
	unrealizedROI := 0.0
	if in.CostBasis > 0 {
		unrealizedROI = (in.CurrentValue - in.CostBasis) / in.CostBasis
	}

	m := domain.PerformanceMetrics{
		NetReturn:     netReturn,
		UnrealizedROI: unrealizedROI,
	}

	if len(in.History) < 2 {
		return m
	}

	history := make([]domain.EquityPoint, len(in.History))
	copy(history, in.History)
	sort.Slice(history, func(i, j int) bool {
		return history[i].Date.Before(history[j].Date)
	})

	// Days before the portfolio was funded have no meaningful return; a
	// percentage change off a zero base is undefined.
	positive := []domain.EquityPoint{}
	for _, p := range history {
		if p.Value > 0 {
			positive = append(positive, domain.EquityPoint{
				Date:  util.StripTime(p.Date),
				Value: p.Value,
			})
		}
	}
	if len(positive) < 2 {
		return m
	}

	txnDays := map[time.Time]bool{}
	for _, d := range in.TransactionDates {
		txnDays[util.StripTime(d)] = true
	}

	// Day-over-day changes, excluding any day a transaction landed on: a
	// deposit or withdrawal shows up as a jump unrelated to market movement
	// and would inflate the volatility estimate.
	returns := []float64{}
	for i := 1; i < len(positive); i++ {
		if txnDays[positive[i].Date] {
			continue
		}
		ret := (positive[i].Value - positive[i-1].Value) / positive[i-1].Value
		if math.IsInf(ret, 0) || math.IsNaN(ret) {
			continue
		}
		returns = append(returns, ret)
	}

	if len(returns) > 0 {
		m.DailyReturn, _ = stats.Mean(returns)
		best, _ := stats.Max(returns)
		worst, _ := stats.Min(returns)
		m.BestDay = &best
		m.WorstDay = &worst
	}
	if len(returns) > 1 {
		stdev, err := stats.StandardDeviationSample(returns)
		if err == nil {
			m.Volatility = stdev * math.Sqrt(tradingDaysPerYear)
		}
	}

	// Drawdown is about portfolio value, so transaction days stay in.
	runningMax := positive[0].Value
	maxDrawdown := 0.0
	for _, p := range positive {
		if p.Value > runningMax {
			runningMax = p.Value
		}
		if dd := (p.Value - runningMax) / runningMax; dd < maxDrawdown {
			maxDrawdown = dd
		}
	}
	m.MaxDrawdown = maxDrawdown

	if m.Volatility > 0 {
		sharpe := (m.DailyReturn*tradingDaysPerYear - in.RiskFreeRate) / m.Volatility
		m.SharpeRatio = &sharpe
	}

	m.TWRAnnualized = calculateTWR(positive, txnDays)
	m.MWRAnnualized = calculateMWR(in.CashFlows, in.CurrentValue, in.AsOf)

	return m
}

// calculateTWR links sub-period growth ratios bounded by transaction dates,
// so the result measures investment performance independent of cash-flow
// timing and size. Each sub-period starts at a transaction day's
// post-cash-flow value and ends the day before the next transaction (or at
// the end of the range).
func calculateTWR(curve []domain.EquityPoint, txnDays map[time.Time]bool) *float64 {
	if len(curve) < 2 {
		return nil
	}

	index := map[time.Time]int{}
	for i, p := range curve {
		index[p.Date] = i
	}
	relevant := []time.Time{}
	for day := range txnDays {
		if _, ok := index[day]; ok {
			relevant = append(relevant, day)
		}
	}
	sort.Slice(relevant, func(i, j int) bool { return relevant[i].Before(relevant[j]) })

	days := util.DaysBetween(curve[0].Date, curve[len(curve)-1].Date)
	if days <= 0 {
		return nil
	}

	if len(relevant) == 0 {
		// No flows in range: the simple total return is the TWR.
		start := curve[0].Value
		if start <= 0 {
			return nil
		}
		return annualize(curve[len(curve)-1].Value/start-1, days)
	}

	ratios := []float64{}

	if firstIdx := index[relevant[0]]; firstIdx >= 1 {
		start := curve[0].Value
		if start > 0 {
			ratios = append(ratios, curve[firstIdx-1].Value/start)
		}
	}

	for i, txnDay := range relevant {
		startIdx := index[txnDay]
		endIdx := len(curve) - 1
		if i+1 < len(relevant) {
			endIdx = index[relevant[i+1]] - 1
		}
		start := curve[startIdx].Value
		if start > 0 && endIdx >= startIdx {
			ratios = append(ratios, curve[endIdx].Value/start)
		}
	}

	if len(ratios) == 0 {
		return nil
	}
	linked := 1.0
	for _, r := range ratios {
		linked *= r
	}
	return annualize(linked-1, days)
}

// calculateMWR computes the XIRR over the investor's actual cash flows plus
// a synthetic liquidation inflow of the current value dated asOf (or the day
// after the latest flow, whichever keeps the flows chronological).
func calculateMWR(flows []domain.CashFlow, currentValue float64, asOf time.Time) *float64 {
	if len(flows) == 0 {
		return nil
	}

	dates := make([]time.Time, 0, len(flows)+1)
	amounts := make([]float64, 0, len(flows)+1)
	var maxDate time.Time
	for _, f := range flows {
		day := util.StripTime(f.Date)
		dates = append(dates, day)
		amounts = append(amounts, f.Amount)
		if day.After(maxDate) {
			maxDate = day
		}
	}

	if currentValue > 0 {
		final := util.StripTime(asOf)
		if !final.After(maxDate) {
			final = maxDate.AddDate(0, 0, 1)
		}
		dates = append(dates, final)
		amounts = append(amounts, currentValue)
	}

	hasNegative := false
	hasPositive := false
	for _, a := range amounts {
		if a < 0 {
			hasNegative = true
		}
		if a > 0 {
			hasPositive = true
		}
	}
	if !hasNegative || !hasPositive {
		return nil
	}

	rate, err := XIRR(dates, amounts)
	if err != nil || math.IsNaN(rate) || math.IsInf(rate, 0) {
		// certain cash-flow patterns have no real root, or several
		return nil
	}
	return &rate
}

func annualize(totalReturn float64, days int) *float64 {
	r := math.Pow(1+totalReturn, 365/float64(days)) - 1
	return &r
}
