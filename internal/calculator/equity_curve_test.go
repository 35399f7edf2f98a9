package calculator

import (
	"testing"

	"fundfolio/internal/domain"
	"fundfolio/internal/util"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func price(fund int32, p float64, y, m, d int) domain.FundPrice {
	return domain.FundPrice{
		UnitTrustID: fund,
		Date:        util.NewDate(y, m, d),
		Price:       p,
	}
}

func TestBuildEquityCurve(t *testing.T) {
	t.Run("empty inputs produce an empty series", func(t *testing.T) {
		require.Empty(t, BuildEquityCurve(nil, nil, util.NewDate(2024, 6, 1), 365))
		require.Empty(t, BuildEquityCurve(
			[]domain.Transaction{buy(1, 10, 10, 2024, 1, 1)},
			nil, util.NewDate(2024, 6, 1), 365,
		))
		require.Empty(t, BuildEquityCurve(
			nil,
			[]domain.FundPrice{price(1, 10, 2024, 1, 1)},
			util.NewDate(2024, 6, 1), 365,
		))
	})

	t.Run("prices before the first transaction are excluded", func(t *testing.T) {
		txns := []domain.Transaction{buy(1, 10, 10, 2024, 1, 10)}
		prices := []domain.FundPrice{
			price(1, 8, 2024, 1, 2),
			price(1, 10, 2024, 1, 10),
		}

		curve := BuildEquityCurve(txns, prices, util.NewDate(2024, 1, 11), 365)

		require.NotEmpty(t, curve)
		require.Equal(t, util.NewDate(2024, 1, 10), curve[0].Date)
		require.Equal(t, 100.0, curve[0].Value)
	})

	t.Run("forward fills prices across gaps, never backward", func(t *testing.T) {
		txns := []domain.Transaction{buy(1, 10, 10, 2024, 1, 1)}
		prices := []domain.FundPrice{
			price(1, 10, 2024, 1, 1),
			price(1, 12, 2024, 1, 3),
		}

		curve := BuildEquityCurve(txns, prices, util.NewDate(2024, 1, 4), 365)

		want := []domain.EquityPoint{
			{Date: util.NewDate(2024, 1, 1), Value: 100},
			{Date: util.NewDate(2024, 1, 2), Value: 100},
			{Date: util.NewDate(2024, 1, 3), Value: 120},
			{Date: util.NewDate(2024, 1, 4), Value: 120},
		}
		require.Empty(t, cmp.Diff(want, curve))
	})

	t.Run("fund with no price yet contributes nothing", func(t *testing.T) {
		txns := []domain.Transaction{
			buy(1, 10, 10, 2024, 1, 1),
			buy(2, 5, 20, 2024, 1, 1),
		}
		prices := []domain.FundPrice{
			price(1, 10, 2024, 1, 1),
			price(2, 20, 2024, 1, 3),
		}

		curve := BuildEquityCurve(txns, prices, util.NewDate(2024, 1, 3), 365)

		require.Equal(t, 100.0, curve[0].Value)
		require.Equal(t, 100.0, curve[1].Value)
		require.Equal(t, 200.0, curve[2].Value)
	})

	t.Run("negative holdings are clamped to zero", func(t *testing.T) {
		txns := []domain.Transaction{
			buy(1, 10, 10, 2024, 1, 1),
			sell(1, 15, 10, 2024, 1, 2),
		}
		prices := []domain.FundPrice{price(1, 10, 2024, 1, 1)}

		curve := BuildEquityCurve(txns, prices, util.NewDate(2024, 1, 3), 365)

		require.Equal(t, 100.0, curve[0].Value)
		require.Equal(t, 0.0, curve[1].Value)
		require.Equal(t, 0.0, curve[2].Value)
	})

	t.Run("window restricts output but not state accumulation", func(t *testing.T) {
		txns := []domain.Transaction{buy(1, 10, 10, 2024, 1, 1)}
		prices := []domain.FundPrice{
			price(1, 10, 2024, 1, 1),
			price(1, 11, 2024, 1, 5),
		}

		curve := BuildEquityCurve(txns, prices, util.NewDate(2024, 1, 6), 2)

		// only days within the 2-day lookback appear, holding and price
		// state from before the window still apply
		require.Len(t, curve, 3)
		require.Equal(t, util.NewDate(2024, 1, 4), curve[0].Date)
		require.Equal(t, 100.0, curve[0].Value)
		require.Equal(t, 110.0, curve[1].Value)
		require.Equal(t, 110.0, curve[2].Value)
	})

	t.Run("same day buys and sells collapse into one delta", func(t *testing.T) {
		txns := []domain.Transaction{
			buy(1, 10, 10, 2024, 1, 1),
			sell(1, 4, 10, 2024, 1, 1),
		}
		prices := []domain.FundPrice{price(1, 10, 2024, 1, 1)}

		curve := BuildEquityCurve(txns, prices, util.NewDate(2024, 1, 1), 365)

		require.Len(t, curve, 1)
		require.Equal(t, 60.0, curve[0].Value)
	})
}
