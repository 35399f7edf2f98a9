package provider

import (
	"context"
	"hash/fnv"
	"math"
	"math/rand"
	"time"

	"fundfolio/internal/domain"
	"fundfolio/internal/logger"
	"fundfolio/internal/util"
)

// CALProvider stands in for the Capital Alliance fund-price feed, which has
// no public API. It emits deterministic pseudo prices so the ingestion path
// stays exercisable end to end. Seeding on symbol and date keeps repeated
// fetches idempotent.
type CALProvider struct{}

func NewCALProvider() *CALProvider {
	return &CALProvider{}
}

func (p *CALProvider) FetchPrices(ctx context.Context, symbol string, start, end time.Time) ([]domain.FetchedPrice, error) {
	log := logger.FromContext(ctx)
	log.Infow("fetching prices", "provider", Name_CAL, "symbol", symbol,
		"start", start.Format(time.DateOnly), "end", end.Format(time.DateOnly))

	startDay := util.StripTime(start)
	endDay := util.StripTime(end)
	if endDay.Before(startDay) {
		return nil, ProviderError{
			Provider: Name_CAL,
			Symbol:   symbol,
			Message:  "end date precedes start date",
		}
	}

	prices := []domain.FetchedPrice{}
	for day := startDay; !day.After(endDay); day = day.AddDate(0, 0, 1) {
		prices = append(prices, domain.FetchedPrice{
			Date:  day,
			Price: pseudoPrice(symbol, day),
		})
	}

	log.Infow("fetched prices", "provider", Name_CAL, "symbol", symbol, "count", len(prices))
	return prices, nil
}

func pseudoPrice(symbol string, day time.Time) float64 {
	h := fnv.New64a()
	h.Write([]byte(symbol))
	h.Write([]byte(day.Format(time.DateOnly)))
	rng := rand.New(rand.NewSource(int64(h.Sum64())))
	price := 1.0 + rng.Float64()*9.0
	return math.Round(price*10000) / 10000
}
