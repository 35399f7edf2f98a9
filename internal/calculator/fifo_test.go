package calculator

import (
	"testing"

	"fundfolio/internal/domain"
	"fundfolio/internal/util"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func buy(fund int32, units, price float64, y, m, d int) domain.Transaction {
	return domain.Transaction{
		UnitTrustID:  fund,
		Type:         domain.TransactionType_Buy,
		Units:        units,
		PricePerUnit: price,
		Date:         util.NewDate(y, m, d),
	}
}

func sell(fund int32, units, price float64, y, m, d int) domain.Transaction {
	return domain.Transaction{
		UnitTrustID:  fund,
		Type:         domain.TransactionType_Sell,
		Units:        units,
		PricePerUnit: price,
		Date:         util.NewDate(y, m, d),
	}
}

func TestFIFOCostBasis(t *testing.T) {
	t.Run("sell drains oldest lots first", func(t *testing.T) {
		txns := []domain.Transaction{
			buy(1, 100, 10, 2024, 1, 1),
			buy(1, 50, 15, 2024, 2, 1),
			sell(1, 120, 16, 2024, 3, 1),
		}

		total, perFund := FIFOCostBasis(txns)

		// 120 sold: all 100 @ 10 plus 20 of the 50 @ 15, leaving 30 @ 15
		require.True(t, total.Equal(decimal.NewFromInt(450)), "total = %s", total)
		require.True(t, perFund[1].Equal(decimal.NewFromInt(450)))
	})

	t.Run("no transactions", func(t *testing.T) {
		total, perFund := FIFOCostBasis(nil)
		require.True(t, total.IsZero())
		require.Empty(t, perFund)
	})

	t.Run("oversell drains the queue and drops the excess", func(t *testing.T) {
		txns := []domain.Transaction{
			buy(1, 100, 10, 2024, 1, 1),
			sell(1, 150, 12, 2024, 2, 1),
		}

		total, perFund := FIFOCostBasis(txns)

		require.True(t, total.IsZero())
		require.True(t, perFund[1].IsZero())
	})

	t.Run("sell with no prior buys is a no-op", func(t *testing.T) {
		txns := []domain.Transaction{
			sell(1, 50, 12, 2024, 1, 1),
		}

		total, perFund := FIFOCostBasis(txns)

		require.True(t, total.IsZero())
		require.True(t, perFund[1].IsZero())
	})

	t.Run("funds are independent", func(t *testing.T) {
		txns := []domain.Transaction{
			buy(1, 100, 10, 2024, 1, 1),
			buy(2, 10, 50, 2024, 1, 2),
			sell(1, 100, 11, 2024, 2, 1),
		}

		total, perFund := FIFOCostBasis(txns)

		require.True(t, perFund[1].IsZero())
		require.True(t, perFund[2].Equal(decimal.NewFromInt(500)))
		require.True(t, total.Equal(decimal.NewFromInt(500)))
	})

	t.Run("input order does not matter", func(t *testing.T) {
		txns := []domain.Transaction{
			sell(1, 120, 16, 2024, 3, 1),
			buy(1, 50, 15, 2024, 2, 1),
			buy(1, 100, 10, 2024, 1, 1),
		}

		total, _ := FIFOCostBasis(txns)
		require.True(t, total.Equal(decimal.NewFromInt(450)))
	})

	t.Run("partial lot consumption keeps the remainder at its cost", func(t *testing.T) {
		txns := []domain.Transaction{
			buy(1, 100, 10, 2024, 1, 1),
			sell(1, 40, 12, 2024, 2, 1),
		}

		total, _ := FIFOCostBasis(txns)
		require.True(t, total.Equal(decimal.NewFromInt(600)))
	})
}
