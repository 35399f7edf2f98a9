package provider

import (
	"context"
	"time"

	"fundfolio/internal/domain"
	"fundfolio/internal/logger"
	"fundfolio/internal/util"

	"github.com/alpacahq/alpaca-trade-api-go/v3/marketdata"
)

type AlpacaProvider struct {
	MdClient *marketdata.Client
}

func NewAlpacaProvider(apiKey, apiSecret, endpoint string) *AlpacaProvider {
	mdClient := marketdata.NewClient(marketdata.ClientOpts{
		BaseURL:   endpoint,
		APIKey:    apiKey,
		APISecret: apiSecret,
	})

	return &AlpacaProvider{
		MdClient: mdClient,
	}
}

func (p *AlpacaProvider) FetchPrices(ctx context.Context, symbol string, start, end time.Time) ([]domain.FetchedPrice, error) {
	log := logger.FromContext(ctx)
	log.Infow("fetching prices", "provider", Name_Alpaca, "symbol", symbol,
		"start", start.Format(time.DateOnly), "end", end.Format(time.DateOnly))

	bars, err := p.MdClient.GetBars(symbol, marketdata.GetBarsRequest{
		TimeFrame: marketdata.OneDay,
		Start:     start,
		End:       end.AddDate(0, 0, 1),
	})
	if err != nil {
		return nil, ProviderError{Provider: Name_Alpaca, Symbol: symbol, Message: err.Error()}
	}
	if len(bars) == 0 {
		return nil, ProviderError{
			Provider: Name_Alpaca,
			Symbol:   symbol,
			Message:  "no bars returned for date range",
		}
	}

	prices := make([]domain.FetchedPrice, 0, len(bars))
	for _, bar := range bars {
		prices = append(prices, domain.FetchedPrice{
			Date:  util.StripTime(bar.Timestamp),
			Price: bar.Close,
		})
	}

	log.Infow("fetched prices", "provider", Name_Alpaca, "symbol", symbol, "count", len(prices))
	return prices, nil
}
