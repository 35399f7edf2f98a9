package calculator

import (
	"testing"
	"time"

	"fundfolio/internal/domain"
	"fundfolio/internal/util"

	"github.com/stretchr/testify/require"
)

func point(y, m, d int, value float64) domain.EquityPoint {
	return domain.EquityPoint{Date: util.NewDate(y, m, d), Value: value}
}

func TestComputeMetrics(t *testing.T) {
	t.Run("net return identity", func(t *testing.T) {
		m := ComputeMetrics(MetricsInput{
			TotalInvested: 1000,
			CurrentValue:  1100,
		})
		require.InDelta(t, 0.1, m.NetReturn, 1e-9)
	})

	t.Run("net return counts withdrawals as realized", func(t *testing.T) {
		m := ComputeMetrics(MetricsInput{
			TotalInvested:  1000,
			TotalWithdrawn: 300,
			CurrentValue:   800,
		})
		require.InDelta(t, 0.1, m.NetReturn, 1e-9)
	})

	t.Run("unrealized roi against cost basis", func(t *testing.T) {
		m := ComputeMetrics(MetricsInput{
			CostBasis:    1000,
			CurrentValue: 1200,
		})
		require.InDelta(t, 0.2, m.UnrealizedROI, 1e-9)
	})

	t.Run("zero denominators degrade to zero, not panic", func(t *testing.T) {
		m := ComputeMetrics(MetricsInput{})
		require.Equal(t, 0.0, m.NetReturn)
		require.Equal(t, 0.0, m.UnrealizedROI)
		require.Nil(t, m.SharpeRatio)
	})

	t.Run("short history returns only the ratio metrics", func(t *testing.T) {
		m := ComputeMetrics(MetricsInput{
			History:       []domain.EquityPoint{point(2024, 1, 1, 1000)},
			TotalInvested: 1000,
			CurrentValue:  1000,
		})
		require.Equal(t, 0.0, m.Volatility)
		require.Nil(t, m.TWRAnnualized)
		require.Nil(t, m.BestDay)
	})

	t.Run("max drawdown is the worst peak to trough", func(t *testing.T) {
		m := ComputeMetrics(MetricsInput{
			History: []domain.EquityPoint{
				point(2024, 1, 1, 1000),
				point(2024, 1, 2, 1100),
				point(2024, 1, 3, 900),
				point(2024, 1, 4, 950),
			},
		})
		require.InDelta(t, -200.0/1100.0, m.MaxDrawdown, 1e-9)
	})

	t.Run("sharpe is nil at zero volatility", func(t *testing.T) {
		m := ComputeMetrics(MetricsInput{
			History: []domain.EquityPoint{
				point(2024, 1, 1, 1000),
				point(2024, 1, 2, 1000),
				point(2024, 1, 3, 1000),
			},
			RiskFreeRate: DefaultRiskFreeRate,
		})
		require.Equal(t, 0.0, m.Volatility)
		require.Nil(t, m.SharpeRatio)
	})

	t.Run("transaction day jumps do not pollute volatility", func(t *testing.T) {
		// steady 1% market growth with a deposit doubling the value on
		// Jan 3; excluding that day leaves identical daily returns, so
		// volatility collapses to zero
		m := ComputeMetrics(MetricsInput{
			History: []domain.EquityPoint{
				point(2024, 1, 1, 100),
				point(2024, 1, 2, 101),
				point(2024, 1, 3, 202.01),
				point(2024, 1, 4, 204.0301),
			},
			TransactionDates: []time.Time{util.NewDate(2024, 1, 3)},
		})
		require.InDelta(t, 0.01, m.DailyReturn, 1e-9)
		require.Equal(t, 0.0, m.Volatility)
	})

	t.Run("best and worst day", func(t *testing.T) {
		m := ComputeMetrics(MetricsInput{
			History: []domain.EquityPoint{
				point(2024, 1, 1, 100),
				point(2024, 1, 2, 103),
				point(2024, 1, 3, 101),
			},
		})
		require.NotNil(t, m.BestDay)
		require.NotNil(t, m.WorstDay)
		require.InDelta(t, 0.03, *m.BestDay, 1e-9)
		require.InDelta(t, -2.0/103.0, *m.WorstDay, 1e-9)
	})

	t.Run("days before funding are ignored", func(t *testing.T) {
		m := ComputeMetrics(MetricsInput{
			History: []domain.EquityPoint{
				point(2024, 1, 1, 0),
				point(2024, 1, 2, 0),
				point(2024, 1, 3, 100),
				point(2024, 1, 4, 101),
			},
		})
		// the 0 -> 100 jump never becomes an infinite return
		require.InDelta(t, 0.01, m.DailyReturn, 1e-9)
	})
}

func TestCalculateTWR(t *testing.T) {
	t.Run("no flows: simple total return, annualized", func(t *testing.T) {
		curve := []domain.EquityPoint{
			point(2023, 1, 1, 100),
			point(2024, 1, 1, 110),
		}
		twr := calculateTWR(curve, map[time.Time]bool{})
		require.NotNil(t, twr)
		require.InDelta(t, 0.1, *twr, 1e-6)
	})

	t.Run("insulated from flow size and timing", func(t *testing.T) {
		// identical market movement, one scenario takes a mid-stream
		// deposit on a flat day
		noFlow := []domain.EquityPoint{
			point(2024, 1, 1, 100),
			point(2024, 1, 2, 101),
			point(2024, 1, 3, 101),
			point(2024, 1, 4, 102.01),
		}
		withFlow := []domain.EquityPoint{
			point(2024, 1, 1, 100),
			point(2024, 1, 2, 101),
			point(2024, 1, 3, 201),
			point(2024, 1, 4, 203.01),
		}

		twrA := calculateTWR(noFlow, map[time.Time]bool{})
		twrB := calculateTWR(withFlow, map[time.Time]bool{
			util.NewDate(2024, 1, 3): true,
		})

		require.NotNil(t, twrA)
		require.NotNil(t, twrB)
		require.InDelta(t, *twrA, *twrB, 1e-9)
	})

	t.Run("single point is undefined", func(t *testing.T) {
		require.Nil(t, calculateTWR([]domain.EquityPoint{point(2024, 1, 1, 100)}, nil))
	})
}

func TestCalculateMWR(t *testing.T) {
	t.Run("single deposit held one year", func(t *testing.T) {
		flows := []domain.CashFlow{
			{Date: util.NewDate(2023, 1, 1), Amount: -1000},
		}
		mwr := calculateMWR(flows, 1100, util.NewDate(2024, 1, 1))
		require.NotNil(t, mwr)
		require.InDelta(t, 0.10, *mwr, 0.01)
	})

	t.Run("no flows is undefined", func(t *testing.T) {
		require.Nil(t, calculateMWR(nil, 1000, util.NewDate(2024, 1, 1)))
	})

	t.Run("deposits only with zero value is undefined", func(t *testing.T) {
		flows := []domain.CashFlow{
			{Date: util.NewDate(2023, 1, 1), Amount: -1000},
		}
		require.Nil(t, calculateMWR(flows, 0, util.NewDate(2024, 1, 1)))
	})

	t.Run("asOf before the latest flow shifts liquidation a day after", func(t *testing.T) {
		flows := []domain.CashFlow{
			{Date: util.NewDate(2023, 1, 1), Amount: -1000},
			{Date: util.NewDate(2023, 6, 1), Amount: 200},
		}
		mwr := calculateMWR(flows, 900, util.NewDate(2023, 1, 15))
		require.NotNil(t, mwr)
	})
}
