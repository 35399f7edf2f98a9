package calculator

import (
	"testing"

	"fundfolio/internal/domain"
	"fundfolio/internal/util"

	"github.com/stretchr/testify/require"
)

func TestSimpleInterest(t *testing.T) {
	t.Run("one year", func(t *testing.T) {
		require.Equal(t, 800.0, SimpleInterest(10000, 8, 365))
	})

	t.Run("half year", func(t *testing.T) {
		require.Equal(t, 398.90, SimpleInterest(10000, 8, 182))
	})

	t.Run("high rate", func(t *testing.T) {
		require.Equal(t, 625.0, SimpleInterest(5000, 12.5, 365))
	})

	t.Run("ninety days", func(t *testing.T) {
		require.InDelta(t, 20000*0.075*(90.0/365.0), SimpleInterest(20000, 7.5, 90), 0.005)
	})

	t.Run("degenerate inputs accrue nothing", func(t *testing.T) {
		require.Equal(t, 0.0, SimpleInterest(10000, 8, 0))
		require.Equal(t, 0.0, SimpleInterest(-10000, 8, 365))
		require.Equal(t, 0.0, SimpleInterest(10000, -8, 365))
		require.Equal(t, 0.0, SimpleInterest(0, 8, 365))
	})
}

func TestCompoundInterest(t *testing.T) {
	t.Run("annually over one year matches simple", func(t *testing.T) {
		require.Equal(t, 800.0, CompoundInterest(10000, 8, 365, domain.PayoutFrequency_Annually))
	})

	t.Run("at maturity compounds once a year", func(t *testing.T) {
		require.Equal(t, 800.0, CompoundInterest(10000, 8, 365, domain.PayoutFrequency_AtMaturity))
	})

	t.Run("monthly over one year", func(t *testing.T) {
		require.InDelta(t, 830.0, CompoundInterest(10000, 8, 365, domain.PayoutFrequency_Monthly), 0.01)
	})

	t.Run("quarterly over one year", func(t *testing.T) {
		require.Equal(t, 824.32, CompoundInterest(10000, 8, 365, domain.PayoutFrequency_Quarterly))
	})

	t.Run("monthly beats simple interest", func(t *testing.T) {
		require.Greater(t, CompoundInterest(5000, 12.5, 365, domain.PayoutFrequency_Monthly), 625.0)
	})

	t.Run("two years monthly", func(t *testing.T) {
		require.InDelta(t, 1728.88, CompoundInterest(10000, 8, 730, domain.PayoutFrequency_Monthly), 0.01)
	})

	t.Run("degenerate inputs accrue nothing", func(t *testing.T) {
		require.Equal(t, 0.0, CompoundInterest(10000, 8, 0, domain.PayoutFrequency_Monthly))
		require.Equal(t, 0.0, CompoundInterest(-10000, 8, 365, domain.PayoutFrequency_Monthly))
	})
}

func TestDepositValue(t *testing.T) {
	fd := domain.FixedDeposit{
		Principal:       10000,
		AnnualRate:      8,
		StartDate:       util.NewDate(2024, 1, 1),
		MaturityDate:    util.NewDate(2025, 1, 1),
		PayoutFrequency: domain.PayoutFrequency_AtMaturity,
		InterestType:    domain.InterestType_Simple,
	}

	t.Run("active deposit accrues to date", func(t *testing.T) {
		value, accrued, daysToMaturity := DepositValue(fd, util.NewDate(2024, 7, 1))

		expected := SimpleInterest(10000, 8, 182)
		require.Equal(t, expected, accrued)
		require.Equal(t, 10000+expected, value)
		require.Equal(t, 184, daysToMaturity)
	})

	t.Run("accrual caps at maturity", func(t *testing.T) {
		value, accrued, daysToMaturity := DepositValue(fd, util.NewDate(2025, 6, 1))

		require.Equal(t, 802.19, accrued) // 366 days in 2024
		require.Equal(t, 10802.19, value)
		require.Negative(t, daysToMaturity)
	})

	t.Run("before the start it is worth its principal", func(t *testing.T) {
		value, accrued, _ := DepositValue(fd, util.NewDate(2023, 6, 1))
		require.Equal(t, 10000.0, value)
		require.Equal(t, 0.0, accrued)
	})

	t.Run("compound deposit uses its payout frequency", func(t *testing.T) {
		compound := fd
		compound.InterestType = domain.InterestType_Compound
		compound.PayoutFrequency = domain.PayoutFrequency_Monthly

		_, accrued, _ := DepositValue(compound, util.NewDate(2025, 1, 1))
		require.Greater(t, accrued, 800.0)
	})
}
