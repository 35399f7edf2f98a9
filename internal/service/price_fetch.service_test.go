package service

import (
	"context"
	"testing"
	"time"

	"fundfolio/internal/db/models/postgres/public/model"
	"fundfolio/internal/domain"
	"fundfolio/internal/provider"
	mock_repository "fundfolio/internal/repository/mocks"
	"fundfolio/internal/util"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type stubProvider struct {
	lastSymbol string
	prices     []domain.FetchedPrice
	err        error
}

func (s *stubProvider) FetchPrices(ctx context.Context, symbol string, start, end time.Time) ([]domain.FetchedPrice, error) {
	s.lastSymbol = symbol
	return s.prices, s.err
}

func TestPriceFetchService(t *testing.T) {
	t.Run("stores fetched prices against the fund", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		unitTrustRepository := mock_repository.NewMockUnitTrustRepository(ctrl)
		priceRepository := mock_repository.NewMockPriceRepository(ctrl)

		stub := &stubProvider{
			prices: []domain.FetchedPrice{
				{Date: util.NewDate(2025, 3, 10), Price: 12.5},
				{Date: util.NewDate(2025, 3, 11), Price: 12.75},
			},
		}
		handler := priceFetchServiceHandler{
			UnitTrustRepository: unitTrustRepository,
			PriceRepository:     priceRepository,
			Providers:           provider.Registry{provider.Name_CAL: stub},
		}

		unitTrustRepository.EXPECT().Get(int32(7)).Return(&model.UnitTrust{
			ID:     7,
			Name:   "CAL Income Fund",
			Symbol: "CALIF",
		}, nil)
		priceRepository.EXPECT().AddMany([]model.Price{
			{UnitTrustID: 7, Date: util.NewDate(2025, 3, 10), Price: 12.5},
			{UnitTrustID: 7, Date: util.NewDate(2025, 3, 11), Price: 12.75},
		}).Return(nil)

		result, err := handler.FetchPrices(context.Background(), FetchPricesInput{
			UnitTrustID: 7,
			Provider:    "cal",
			Start:       util.NewDate(2025, 3, 10),
			End:         util.NewDate(2025, 3, 11),
		})
		require.NoError(t, err)

		require.Equal(t, &FetchPricesResult{
			UnitTrustID: 7,
			Symbol:      "CALIF",
			Provider:    "cal",
			FetchedRows: 2,
		}, result)
		require.Equal(t, "CALIF", stub.lastSymbol)
	})

	t.Run("symbol override wins over the stored symbol", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		unitTrustRepository := mock_repository.NewMockUnitTrustRepository(ctrl)
		priceRepository := mock_repository.NewMockPriceRepository(ctrl)

		stub := &stubProvider{}
		handler := priceFetchServiceHandler{
			UnitTrustRepository: unitTrustRepository,
			PriceRepository:     priceRepository,
			Providers:           provider.Registry{provider.Name_Yahoo: stub},
		}

		unitTrustRepository.EXPECT().Get(int32(7)).Return(&model.UnitTrust{
			ID:     7,
			Symbol: "NDBWG",
		}, nil)
		priceRepository.EXPECT().AddMany(gomock.Any()).Return(nil)

		result, err := handler.FetchPrices(context.Background(), FetchPricesInput{
			UnitTrustID: 7,
			Provider:    "yahoo",
			Symbol:      util.StrPtr("NDBWG.N0000"),
			Start:       util.NewDate(2025, 3, 10),
			End:         util.NewDate(2025, 3, 11),
		})
		require.NoError(t, err)

		require.Equal(t, "NDBWG.N0000", stub.lastSymbol)
		require.Equal(t, "NDBWG.N0000", result.Symbol)
	})

	t.Run("unknown provider names the alternatives", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler := priceFetchServiceHandler{
			UnitTrustRepository: mock_repository.NewMockUnitTrustRepository(ctrl),
			PriceRepository:     mock_repository.NewMockPriceRepository(ctrl),
			Providers:           provider.Registry{provider.Name_CAL: &stubProvider{}},
		}

		_, err := handler.FetchPrices(context.Background(), FetchPricesInput{
			UnitTrustID: 7,
			Provider:    "bloomberg",
		})
		require.ErrorContains(t, err, `unknown price provider "bloomberg"`)
		require.ErrorContains(t, err, "cal")
	})

	t.Run("provider failures surface untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		unitTrustRepository := mock_repository.NewMockUnitTrustRepository(ctrl)

		stub := &stubProvider{
			err: provider.ProviderError{Provider: provider.Name_Yahoo, Symbol: "CALIF", Message: "rate limited"},
		}
		handler := priceFetchServiceHandler{
			UnitTrustRepository: unitTrustRepository,
			PriceRepository:     mock_repository.NewMockPriceRepository(ctrl),
			Providers:           provider.Registry{provider.Name_Yahoo: stub},
		}

		unitTrustRepository.EXPECT().Get(int32(7)).Return(&model.UnitTrust{ID: 7, Symbol: "CALIF"}, nil)

		_, err := handler.FetchPrices(context.Background(), FetchPricesInput{
			UnitTrustID: 7,
			Provider:    "yahoo",
			Start:       util.NewDate(2025, 3, 10),
			End:         util.NewDate(2025, 3, 11),
		})

		var perr provider.ProviderError
		require.ErrorAs(t, err, &perr)
		require.Equal(t, "rate limited", perr.Message)
	})
}
