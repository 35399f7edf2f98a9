package calculator

import (
	"math"
	"testing"
	"time"

	"fundfolio/internal/util"

	"github.com/stretchr/testify/require"
)

func TestXIRR(t *testing.T) {
	t.Run("single deposit, 10% over one year", func(t *testing.T) {
		rate, err := XIRR(
			[]time.Time{util.NewDate(2023, 1, 1), util.NewDate(2024, 1, 1)},
			[]float64{-1000, 1100},
		)
		require.NoError(t, err)
		require.InDelta(t, 0.10, rate, 1e-6)
	})

	t.Run("negative return", func(t *testing.T) {
		rate, err := XIRR(
			[]time.Time{util.NewDate(2023, 1, 1), util.NewDate(2024, 1, 1)},
			[]float64{-1000, 900},
		)
		require.NoError(t, err)
		require.InDelta(t, -0.10, rate, 1e-6)
	})

	t.Run("multiple flows", func(t *testing.T) {
		dates := []time.Time{
			util.NewDate(2023, 1, 1),
			util.NewDate(2023, 7, 1),
			util.NewDate(2024, 1, 1),
		}
		amounts := []float64{-1000, -500, 1700}

		rate, err := XIRR(dates, amounts)
		require.NoError(t, err)

		// the solved rate must zero the npv
		npv := 0.0
		earliest := dates[0]
		for i, a := range amounts {
			years := float64(util.DaysBetween(earliest, dates[i])) / 365.0
			npv += a / math.Pow(1+rate, years)
		}
		require.InDelta(t, 0, npv, 1e-6)
	})

	t.Run("unordered dates still anchor on the earliest", func(t *testing.T) {
		rate, err := XIRR(
			[]time.Time{util.NewDate(2024, 1, 1), util.NewDate(2023, 1, 1)},
			[]float64{1100, -1000},
		)
		require.NoError(t, err)
		require.InDelta(t, 0.10, rate, 1e-6)
	})

	t.Run("mismatched lengths", func(t *testing.T) {
		_, err := XIRR([]time.Time{util.NewDate(2023, 1, 1)}, []float64{-1000, 1100})
		require.Error(t, err)
	})

	t.Run("fewer than two flows", func(t *testing.T) {
		_, err := XIRR([]time.Time{util.NewDate(2023, 1, 1)}, []float64{-1000})
		require.Error(t, err)
	})

	t.Run("no sign change has no root", func(t *testing.T) {
		_, err := XIRR(
			[]time.Time{util.NewDate(2023, 1, 1), util.NewDate(2024, 1, 1)},
			[]float64{1000, 1100},
		)
		require.Error(t, err)
	})

	t.Run("steep loss falls back to bisection", func(t *testing.T) {
		// losing nearly everything pushes Newton's iterate below -1
		rate, err := XIRR(
			[]time.Time{util.NewDate(2023, 1, 1), util.NewDate(2024, 1, 1)},
			[]float64{-1000, 1},
		)
		require.NoError(t, err)
		require.InDelta(t, -0.999, rate, 1e-3)
	})
}
