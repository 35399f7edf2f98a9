package provider

import (
	"context"
	"time"

	"fundfolio/internal/domain"
	"fundfolio/internal/logger"
	"fundfolio/internal/util"

	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
)

type YahooProvider struct{}

func NewYahooProvider() YahooProvider {
	return YahooProvider{}
}

func (p YahooProvider) FetchPrices(ctx context.Context, symbol string, start, end time.Time) ([]domain.FetchedPrice, error) {
	log := logger.FromContext(ctx)
	log.Infow("fetching prices", "provider", Name_Yahoo, "symbol", symbol,
		"start", start.Format(time.DateOnly), "end", end.Format(time.DateOnly))

	// the chart endpoint treats the end date as exclusive
	endExclusive := end.AddDate(0, 0, 1)
	params := &chart.Params{
		Start:    datetime.New(&start),
		End:      datetime.New(&endExclusive),
		Symbol:   symbol,
		Interval: datetime.OneDay,
	}
	iter := chart.Get(params)

	prices := []domain.FetchedPrice{}
	for iter.Next() {
		bar := iter.Bar()
		prices = append(prices, domain.FetchedPrice{
			Date:  util.StripTime(time.Unix(int64(bar.Timestamp), 0)),
			Price: bar.Close.InexactFloat64(),
		})
	}
	if err := iter.Err(); err != nil {
		return nil, ProviderError{Provider: Name_Yahoo, Symbol: symbol, Message: err.Error()}
	}
	if len(prices) == 0 {
		return nil, ProviderError{
			Provider: Name_Yahoo,
			Symbol:   symbol,
			Message:  "no price data found for date range",
		}
	}

	log.Infow("fetched prices", "provider", Name_Yahoo, "symbol", symbol, "count", len(prices))
	return prices, nil
}
