package service

import (
	"context"
	"testing"
	"time"

	"fundfolio/internal/calculator"
	"fundfolio/internal/db/models/postgres/public/model"
	mock_repository "fundfolio/internal/repository/mocks"
	"fundfolio/internal/util"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestFixedDepositService_List(t *testing.T) {
	t.Run("decorates each deposit with its valuation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		fixedDepositRepository := mock_repository.NewMockFixedDepositRepository(ctrl)

		handler := fixedDepositServiceHandler{
			FixedDepositRepository: fixedDepositRepository,
		}

		now := time.Now().UTC()
		fixedDepositRepository.EXPECT().List().Return([]model.FixedDeposit{
			{
				ID:                      1,
				PrincipalAmount:         100000,
				InterestRate:            10,
				StartDate:               util.StripTime(now.AddDate(0, 0, -100)),
				MaturityDate:            util.StripTime(now.AddDate(1, 0, 0)),
				InstitutionName:         "Commercial Bank",
				InterestPayoutFrequency: "at_maturity",
				InterestCalculationType: "simple",
			},
			{
				ID:                      2,
				PrincipalAmount:         50000,
				InterestRate:            8,
				StartDate:               util.StripTime(now.AddDate(-2, 0, 0)),
				MaturityDate:            util.StripTime(now.AddDate(-1, 0, 0)),
				InstitutionName:         "Sampath Bank",
				InterestPayoutFrequency: "at_maturity",
				InterestCalculationType: "simple",
			},
		}, nil)

		enriched, err := handler.List(context.Background())
		require.NoError(t, err)
		require.Len(t, enriched, 2)

		active := enriched[0]
		require.False(t, active.IsMatured)
		require.Positive(t, active.DaysToMaturity)
		require.InDelta(t, calculator.SimpleInterest(100000, 10, 100), active.AccruedInterest, 30)
		require.InDelta(t, active.PrincipalAmount+active.AccruedInterest, active.CurrentValue, 0.01)

		matured := enriched[1]
		require.True(t, matured.IsMatured)
		require.Negative(t, matured.DaysToMaturity)
		require.InDelta(t, calculator.SimpleInterest(50000, 8, 365), matured.AccruedInterest, 12)
	})

	t.Run("rejects rows with unknown enum values", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		fixedDepositRepository := mock_repository.NewMockFixedDepositRepository(ctrl)

		handler := fixedDepositServiceHandler{
			FixedDepositRepository: fixedDepositRepository,
		}

		fixedDepositRepository.EXPECT().List().Return([]model.FixedDeposit{
			{
				ID:                      9,
				PrincipalAmount:         1000,
				InterestRate:            5,
				StartDate:               util.NewDate(2024, 1, 1),
				MaturityDate:            util.NewDate(2025, 1, 1),
				InterestPayoutFrequency: "weekly",
				InterestCalculationType: "simple",
			},
		}, nil)

		_, err := handler.List(context.Background())
		require.ErrorContains(t, err, "invalid payout frequency")
	})
}

func TestFixedDepositService_Update(t *testing.T) {
	t.Run("preserves the original creation timestamp", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		fixedDepositRepository := mock_repository.NewMockFixedDepositRepository(ctrl)

		handler := fixedDepositServiceHandler{
			FixedDepositRepository: fixedDepositRepository,
		}

		createdAt := util.NewDate(2024, 6, 15)
		incoming := model.FixedDeposit{
			ID:                      3,
			PrincipalAmount:         200000,
			InterestRate:            11,
			StartDate:               util.NewDate(2025, 1, 1),
			MaturityDate:            util.NewDate(2026, 1, 1),
			InstitutionName:         "HNB",
			InterestPayoutFrequency: "monthly",
			InterestCalculationType: "compound",
		}

		fixedDepositRepository.EXPECT().Get(int32(3)).Return(&model.FixedDeposit{
			ID:        3,
			CreatedAt: createdAt,
		}, nil)
		fixedDepositRepository.EXPECT().Update(gomock.Any()).DoAndReturn(
			func(fd model.FixedDeposit) (*model.FixedDeposit, error) {
				require.Equal(t, createdAt, fd.CreatedAt)
				return &fd, nil
			})

		updated, err := handler.Update(context.Background(), incoming)
		require.NoError(t, err)
		require.Equal(t, createdAt, updated.CreatedAt)
	})
}

func TestFixedDepositService_PreviewInterest(t *testing.T) {
	t.Run("computes the full term and the position today", func(t *testing.T) {
		handler := fixedDepositServiceHandler{}

		now := time.Now().UTC()
		preview, err := handler.PreviewInterest(context.Background(), InterestPreviewInput{
			Principal:       10000,
			AnnualRate:      8,
			StartDate:       util.StripTime(now.AddDate(-1, 0, 0)),
			MaturityDate:    util.StripTime(now.AddDate(1, 0, 0)),
			InterestType:    "simple",
			PayoutFrequency: "at_maturity",
		})
		require.NoError(t, err)

		require.InDelta(t, 1600, preview.TotalInterest, 5)
		require.InDelta(t, 10000+preview.TotalInterest, preview.MaturityValue, 0.01)
		require.InDelta(t, 730, preview.TermDays, 2)
		require.InDelta(t, 800, preview.CurrentInterest, 5)
		require.InDelta(t, 365, preview.DaysElapsed, 2)
		require.Positive(t, preview.DaysRemaining)
	})

	t.Run("maturity must follow the start", func(t *testing.T) {
		handler := fixedDepositServiceHandler{}

		_, err := handler.PreviewInterest(context.Background(), InterestPreviewInput{
			Principal:    10000,
			AnnualRate:   8,
			StartDate:    util.NewDate(2025, 1, 1),
			MaturityDate: util.NewDate(2025, 1, 1),
			InterestType: "simple",
		})
		require.ErrorContains(t, err, "maturity date must be after start date")
	})
}
