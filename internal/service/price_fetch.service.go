package service

import (
	"context"
	"fmt"
	"time"

	"fundfolio/internal/db/models/postgres/public/model"
	"fundfolio/internal/logger"
	"fundfolio/internal/provider"
	"fundfolio/internal/repository"
)

// PriceFetchService pulls closing prices for a fund from an external
// provider and upserts them into the price history.
type PriceFetchService interface {
	FetchPrices(ctx context.Context, in FetchPricesInput) (*FetchPricesResult, error)
}

type FetchPricesInput struct {
	UnitTrustID int32
	Provider    string
	// Symbol overrides the fund's stored symbol when the provider keys the
	// instrument differently, e.g. a Yahoo suffix.
	Symbol *string
	Start  time.Time
	End    time.Time
}

type FetchPricesResult struct {
	UnitTrustID int32  `json:"unitTrustId"`
	Symbol      string `json:"symbol"`
	Provider    string `json:"provider"`
	FetchedRows int    `json:"fetchedRows"`
}

type priceFetchServiceHandler struct {
	UnitTrustRepository repository.UnitTrustRepository
	PriceRepository     repository.PriceRepository
	Providers           provider.Registry
}

func NewPriceFetchService(
	unitTrustRepository repository.UnitTrustRepository,
	priceRepository repository.PriceRepository,
	providers provider.Registry,
) PriceFetchService {
	return priceFetchServiceHandler{
		UnitTrustRepository: unitTrustRepository,
		PriceRepository:     priceRepository,
		Providers:           providers,
	}
}

func (h priceFetchServiceHandler) FetchPrices(ctx context.Context, in FetchPricesInput) (*FetchPricesResult, error) {
	log := logger.FromContext(ctx)

	p, ok := h.Providers.Get(in.Provider)
	if !ok {
		return nil, fmt.Errorf("unknown price provider %q, available: %v", in.Provider, h.Providers.Available())
	}

	fund, err := h.UnitTrustRepository.Get(in.UnitTrustID)
	if err != nil {
		return nil, fmt.Errorf("failed to load unit trust %d: %w", in.UnitTrustID, err)
	}

	symbol := fund.Symbol
	if in.Symbol != nil && *in.Symbol != "" {
		symbol = *in.Symbol
	}

	fetched, err := p.FetchPrices(ctx, symbol, in.Start, in.End)
	if err != nil {
		return nil, err
	}

	rows := make([]model.Price, 0, len(fetched))
	for _, fp := range fetched {
		rows = append(rows, model.Price{
			UnitTrustID: fund.ID,
			Date:        fp.Date,
			Price:       fp.Price,
		})
	}
	if err := h.PriceRepository.AddMany(rows); err != nil {
		return nil, fmt.Errorf("failed to store fetched prices: %w", err)
	}

	log.Infow("ingested provider prices",
		"provider", in.Provider,
		"symbol", symbol,
		"unitTrustId", fund.ID,
		"rows", len(rows),
	)

	return &FetchPricesResult{
		UnitTrustID: fund.ID,
		Symbol:      symbol,
		Provider:    in.Provider,
		FetchedRows: len(rows),
	}, nil
}
